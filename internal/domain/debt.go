package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type DebtType string

const (
	DebtTypeCreditCard DebtType = "credit_card"
	DebtTypeMortgage   DebtType = "mortgage"
)

func (t DebtType) IsValid() bool {
	switch t {
	case DebtTypeCreditCard, DebtTypeMortgage:
		return true
	}
	return false
}

type PaymentFrequency string

const (
	FrequencyFortnightly PaymentFrequency = "FORTNIGHTLY"
	FrequencyMonthly     PaymentFrequency = "MONTHLY"
)

func (f PaymentFrequency) IsValid() bool {
	switch f {
	case FrequencyFortnightly, FrequencyMonthly:
		return true
	}
	return false
}

// Interest rate bounds per debt type (annual, decimal form). A mortgage must
// also sit at priority 5 or later so the snowball attacks consumer debt first.
const (
	maxCreditCardRate   = 0.99
	maxMortgageRate     = 0.25
	MortgageMinPriority = 5
)

// Debt is a read-only snapshot of a liability. The simulators never mutate
// one; they derive working balances keyed by ID.
type Debt struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Name                string
	Type                DebtType
	OriginalAmount      Money
	CurrentBalance      Money
	InterestRate        float64
	MinimumPayment      Money
	MinPaymentFrequency PaymentFrequency
	Priority            int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewDebt validates and constructs a Debt. The simulation core relies on these
// invariants holding and performs no validation of its own.
func NewDebt(
	userID uuid.UUID,
	name string,
	debtType DebtType,
	originalAmount, currentBalance Money,
	interestRate float64,
	minimumPayment Money,
	frequency PaymentFrequency,
	priority int,
) (*Debt, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("NewDebt: %w", ErrDebtNameRequired)
	}
	if !debtType.IsValid() {
		return nil, fmt.Errorf("NewDebt: %q: %w", debtType, ErrInvalidDebtType)
	}
	if !frequency.IsValid() {
		return nil, fmt.Errorf("NewDebt: %q: %w", frequency, ErrInvalidFrequency)
	}
	if currentBalance.Currency() != originalAmount.Currency() ||
		minimumPayment.Currency() != originalAmount.Currency() {
		return nil, fmt.Errorf("NewDebt: %w", ErrCurrencyMismatch)
	}
	if currentBalance.IsNegative() {
		return nil, fmt.Errorf("NewDebt: %w", ErrNegativeBalance)
	}
	if cmp, _ := currentBalance.Cmp(originalAmount); cmp > 0 {
		return nil, fmt.Errorf("NewDebt: %w", ErrBalanceExceedsOriginal)
	}
	if err := validateRate(debtType, interestRate); err != nil {
		return nil, fmt.Errorf("NewDebt: %w", err)
	}
	if !minimumPayment.IsPositive() {
		return nil, fmt.Errorf("NewDebt: %w", ErrInvalidMinimumPayment)
	}
	if priority < 1 {
		return nil, fmt.Errorf("NewDebt: %w", ErrInvalidPriority)
	}
	if debtType == DebtTypeMortgage && priority < MortgageMinPriority {
		return nil, fmt.Errorf("NewDebt: %w", ErrMortgagePriorityTooLow)
	}

	now := time.Now().UTC()
	return &Debt{
		ID:                  uuid.New(),
		UserID:              userID,
		Name:                strings.TrimSpace(name),
		Type:                debtType,
		OriginalAmount:      originalAmount,
		CurrentBalance:      currentBalance,
		InterestRate:        interestRate,
		MinimumPayment:      minimumPayment,
		MinPaymentFrequency: frequency,
		Priority:            priority,
		CreatedAt:           now,
		UpdatedAt:           now,
	}, nil
}

func validateRate(t DebtType, rate float64) error {
	max := maxCreditCardRate
	if t == DebtTypeMortgage {
		max = maxMortgageRate
	}
	if rate < 0 || rate > max {
		return fmt.Errorf("rate %v for %s: %w", rate, t, ErrInterestOutOfRange)
	}
	return nil
}
