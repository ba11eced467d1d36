package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solid-logic-studios/bucketwise-planner/internal/domain"
)

func TestPutProfile(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(newStubProfileRepo())
	userID := uuid.New()

	p, err := svc.PutProfile(ctx, userID, ProfileInput{
		FortnightlyIncomeCents: 400_000,
		Split:                  domain.DefaultBucketSplit(),
	})
	require.NoError(t, err)
	assert.Equal(t, userID, p.UserID)
	assert.Equal(t, domain.CurrencyAUD, p.FortnightlyIncome.Currency())

	got, err := svc.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(400_000), got.FortnightlyIncome.Cents())
}

func TestPutProfile_ReplacesExisting(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(newStubProfileRepo())
	userID := uuid.New()

	_, err := svc.PutProfile(ctx, userID, ProfileInput{
		FortnightlyIncomeCents: 400_000,
		Split:                  domain.DefaultBucketSplit(),
	})
	require.NoError(t, err)

	split := domain.BucketSplit{
		DailyExpensesBps:    5000,
		SplurgeBps:          1000,
		SmileBps:            1000,
		FireExtinguisherBps: 2500,
		MojoBps:             500,
	}
	_, err = svc.PutProfile(ctx, userID, ProfileInput{
		FortnightlyIncomeCents: 500_000,
		Currency:               domain.CurrencyNZD,
		Split:                  split,
	})
	require.NoError(t, err)

	got, err := svc.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(500_000), got.FortnightlyIncome.Cents())
	assert.Equal(t, domain.CurrencyNZD, got.FortnightlyIncome.Currency())
	assert.Equal(t, split, got.Split)
}

func TestPutProfile_Invalid(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(newStubProfileRepo())

	_, err := svc.PutProfile(ctx, uuid.New(), ProfileInput{
		FortnightlyIncomeCents: 0,
		Split:                  domain.DefaultBucketSplit(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidIncome)

	_, err = svc.PutProfile(ctx, uuid.New(), ProfileInput{
		FortnightlyIncomeCents: 400_000,
		Split:                  domain.BucketSplit{DailyExpensesBps: 9000},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAllocation)
}

func TestGetProfile_NotFound(t *testing.T) {
	svc := NewProfileService(newStubProfileRepo())

	_, err := svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAllocation(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(newStubProfileRepo())
	userID := uuid.New()

	_, err := svc.PutProfile(ctx, userID, ProfileInput{
		FortnightlyIncomeCents: 400_000,
		Split:                  domain.DefaultBucketSplit(),
	})
	require.NoError(t, err)

	alloc, err := svc.Allocation(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(240_000), alloc.DailyExpenses.Cents())
	assert.Equal(t, int64(80_000), alloc.FireExtinguisher.Cents())
	assert.Equal(t, int64(400_000), alloc.Total().Cents())
}
