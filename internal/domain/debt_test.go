package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDebt(t *testing.T) {
	userID := uuid.New()

	type args struct {
		name      string
		debtType  DebtType
		original  Money
		balance   Money
		rate      float64
		minimum   Money
		frequency PaymentFrequency
		priority  int
	}

	valid := args{
		name:      "Visa",
		debtType:  DebtTypeCreditCard,
		original:  AUD(250_000),
		balance:   AUD(180_000),
		rate:      0.1899,
		minimum:   AUD(5_000),
		frequency: FrequencyMonthly,
		priority:  1,
	}

	tests := []struct {
		name    string
		mutate  func(*args)
		wantErr error
	}{
		{name: "valid credit card", mutate: func(a *args) {}},
		{
			name: "valid mortgage",
			mutate: func(a *args) {
				a.debtType = DebtTypeMortgage
				a.rate = 0.055
				a.priority = MortgageMinPriority
			},
		},
		{
			name:    "blank name",
			mutate:  func(a *args) { a.name = "   " },
			wantErr: ErrDebtNameRequired,
		},
		{
			name:    "unknown type",
			mutate:  func(a *args) { a.debtType = DebtType("payday_loan") },
			wantErr: ErrInvalidDebtType,
		},
		{
			name:    "unknown frequency",
			mutate:  func(a *args) { a.frequency = PaymentFrequency("WEEKLY") },
			wantErr: ErrInvalidFrequency,
		},
		{
			name:    "balance currency differs",
			mutate:  func(a *args) { a.balance = MustMoney(180_000, CurrencyUSD) },
			wantErr: ErrCurrencyMismatch,
		},
		{
			name:    "negative balance",
			mutate:  func(a *args) { a.balance = AUD(-1) },
			wantErr: ErrNegativeBalance,
		},
		{
			name:    "balance above original",
			mutate:  func(a *args) { a.balance = AUD(250_001) },
			wantErr: ErrBalanceExceedsOriginal,
		},
		{
			name:    "credit card rate above cap",
			mutate:  func(a *args) { a.rate = 1.0 },
			wantErr: ErrInterestOutOfRange,
		},
		{
			name: "mortgage rate above cap",
			mutate: func(a *args) {
				a.debtType = DebtTypeMortgage
				a.rate = 0.30
				a.priority = MortgageMinPriority
			},
			wantErr: ErrInterestOutOfRange,
		},
		{
			name:    "negative rate",
			mutate:  func(a *args) { a.rate = -0.01 },
			wantErr: ErrInterestOutOfRange,
		},
		{
			name:    "zero minimum payment",
			mutate:  func(a *args) { a.minimum = AUD(0) },
			wantErr: ErrInvalidMinimumPayment,
		},
		{
			name:    "priority below one",
			mutate:  func(a *args) { a.priority = 0 },
			wantErr: ErrInvalidPriority,
		},
		{
			name: "mortgage ahead of consumer debt",
			mutate: func(a *args) {
				a.debtType = DebtTypeMortgage
				a.rate = 0.055
				a.priority = MortgageMinPriority - 1
			},
			wantErr: ErrMortgagePriorityTooLow,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := valid
			tc.mutate(&a)

			d, err := NewDebt(userID, a.name, a.debtType, a.original, a.balance,
				a.rate, a.minimum, a.frequency, a.priority)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, d.ID)
			assert.Equal(t, userID, d.UserID)
			assert.Equal(t, d.CreatedAt, d.UpdatedAt)
		})
	}
}

func TestNewDebtTrimsName(t *testing.T) {
	d, err := NewDebt(uuid.New(), "  Visa  ", DebtTypeCreditCard,
		AUD(10_000), AUD(10_000), 0.18, AUD(500), FrequencyFortnightly, 1)
	require.NoError(t, err)
	assert.Equal(t, "Visa", d.Name)
}
