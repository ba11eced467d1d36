package domain

import "errors"

var (
	ErrNotFound               = errors.New("not found")
	ErrInvalidCurrency        = errors.New("invalid currency")
	ErrCurrencyMismatch       = errors.New("currency mismatch")
	ErrInvalidAmount          = errors.New("amount must not be negative")
	ErrInvalidRequest         = errors.New("invalid request")
	ErrDebtNameRequired       = errors.New("debt name is required")
	ErrInvalidDebtType        = errors.New("invalid debt type")
	ErrInvalidFrequency       = errors.New("invalid payment frequency")
	ErrNegativeBalance        = errors.New("current balance must not be negative")
	ErrBalanceExceedsOriginal = errors.New("current balance exceeds original amount")
	ErrInterestOutOfRange     = errors.New("interest rate out of range for debt type")
	ErrInvalidMinimumPayment  = errors.New("minimum payment must be greater than zero")
	ErrInvalidPriority        = errors.New("priority must be 1 or higher")
	ErrMortgagePriorityTooLow = errors.New("mortgage priority must be 5 or higher")
	ErrInvalidAllocation      = errors.New("bucket allocations must sum to 10000 basis points")
	ErrInvalidIncome          = errors.New("fortnightly income must be greater than zero")
)
