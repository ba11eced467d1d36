package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solid-logic-studios/bucketwise-planner/internal/domain"
)

func validDebtInput() DebtInput {
	return DebtInput{
		Name:                "Visa",
		Type:                domain.DebtTypeCreditCard,
		OriginalAmountCents: 250_000,
		CurrentBalanceCents: 180_000,
		InterestRate:        0.1899,
		MinimumPaymentCents: 5_000,
		MinPaymentFrequency: domain.FrequencyMonthly,
		Priority:            1,
	}
}

func TestCreateDebt(t *testing.T) {
	ctx := context.Background()
	svc := NewDebtService(newStubDebtRepo())
	userID := uuid.New()

	d, err := svc.CreateDebt(ctx, userID, validDebtInput())
	require.NoError(t, err)
	assert.Equal(t, userID, d.UserID)
	assert.Equal(t, "Visa", d.Name)
	// Currency defaults to AUD when the input omits it.
	assert.Equal(t, domain.CurrencyAUD, d.CurrentBalance.Currency())

	listed, err := svc.ListDebts(ctx, userID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, d.ID, listed[0].ID)
}

func TestCreateDebt_InvalidInput(t *testing.T) {
	ctx := context.Background()
	svc := NewDebtService(newStubDebtRepo())

	in := validDebtInput()
	in.CurrentBalanceCents = 300_000

	_, err := svc.CreateDebt(ctx, uuid.New(), in)
	assert.ErrorIs(t, err, domain.ErrBalanceExceedsOriginal)
}

func TestListDebts_AttackOrder(t *testing.T) {
	ctx := context.Background()
	svc := NewDebtService(newStubDebtRepo())
	userID := uuid.New()

	big := validDebtInput()
	big.Name = "Big"
	big.CurrentBalanceCents = 200_000

	small := validDebtInput()
	small.Name = "Small"
	small.CurrentBalanceCents = 50_000

	later := validDebtInput()
	later.Name = "Later"
	later.Priority = 3

	for _, in := range []DebtInput{big, later, small} {
		_, err := svc.CreateDebt(ctx, userID, in)
		require.NoError(t, err)
	}

	listed, err := svc.ListDebts(ctx, userID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "Small", listed[0].Name)
	assert.Equal(t, "Big", listed[1].Name)
	assert.Equal(t, "Later", listed[2].Name)
}

func TestUpdateDebt(t *testing.T) {
	ctx := context.Background()
	svc := NewDebtService(newStubDebtRepo())
	userID := uuid.New()

	created, err := svc.CreateDebt(ctx, userID, validDebtInput())
	require.NoError(t, err)

	in := validDebtInput()
	in.CurrentBalanceCents = 90_000
	in.Priority = 2

	updated, err := svc.UpdateDebt(ctx, userID, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, int64(90_000), updated.CurrentBalance.Cents())
	assert.Equal(t, 2, updated.Priority)
}

func TestUpdateDebt_OtherUsersDebtHidden(t *testing.T) {
	ctx := context.Background()
	svc := NewDebtService(newStubDebtRepo())

	created, err := svc.CreateDebt(ctx, uuid.New(), validDebtInput())
	require.NoError(t, err)

	_, err = svc.UpdateDebt(ctx, uuid.New(), created.ID, validDebtInput())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.DeleteDebt(ctx, uuid.New(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteDebt(t *testing.T) {
	ctx := context.Background()
	svc := NewDebtService(newStubDebtRepo())
	userID := uuid.New()

	created, err := svc.CreateDebt(ctx, userID, validDebtInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDebt(ctx, userID, created.ID))

	listed, err := svc.ListDebts(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, listed)

	err = svc.DeleteDebt(ctx, userID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
