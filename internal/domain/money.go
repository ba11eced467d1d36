package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	CurrencyAUD Currency = "AUD"
	CurrencyNZD Currency = "NZD"
	CurrencyUSD Currency = "USD"
)

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyAUD, CurrencyNZD, CurrencyUSD:
		return true
	}
	return false
}

// Money is an immutable integer-cents monetary value. All arithmetic stays in
// integer cents; operations mixing currencies are rejected.
type Money struct {
	cents    int64
	currency Currency
}

func NewMoney(cents int64, currency Currency) (Money, error) {
	if !currency.IsValid() {
		return Money{}, fmt.Errorf("NewMoney: %q: %w", currency, ErrInvalidCurrency)
	}
	return Money{cents: cents, currency: currency}, nil
}

func MustMoney(cents int64, currency Currency) Money {
	m, err := NewMoney(cents, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// AUD builds a Money in the default currency.
func AUD(cents int64) Money {
	return Money{cents: cents, currency: CurrencyAUD}
}

func Zero(currency Currency) Money {
	return Money{currency: currency}
}

func (m Money) Cents() int64       { return m.cents }
func (m Money) Currency() Currency { return m.currency }
func (m Money) IsZero() bool       { return m.cents == 0 }
func (m Money) IsPositive() bool   { return m.cents > 0 }
func (m Money) IsNegative() bool   { return m.cents < 0 }

func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("Add: %s + %s: %w", m.currency, other.currency, ErrCurrencyMismatch)
	}
	return Money{cents: m.cents + other.cents, currency: m.currency}, nil
}

func (m Money) Sub(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("Sub: %s - %s: %w", m.currency, other.currency, ErrCurrencyMismatch)
	}
	return Money{cents: m.cents - other.cents, currency: m.currency}, nil
}

// MulRound multiplies by a decimal factor and rounds half away from zero to
// whole cents. Interest accrual uses this rounding everywhere.
func (m Money) MulRound(factor decimal.Decimal) Money {
	cents := decimal.NewFromInt(m.cents).Mul(factor).Round(0).IntPart()
	return Money{cents: cents, currency: m.currency}
}

// DivFloor divides by a positive integer, rounding toward negative infinity.
func (m Money) DivFloor(n int64) Money {
	cents := decimal.NewFromInt(m.cents).Div(decimal.NewFromInt(n)).Floor().IntPart()
	return Money{cents: cents, currency: m.currency}
}

func (m Money) Equal(other Money) bool {
	return m.cents == other.cents && m.currency == other.currency
}

// Cmp returns -1, 0, or 1 comparing m against other.
func (m Money) Cmp(other Money) (int, error) {
	if m.currency != other.currency {
		return 0, fmt.Errorf("Cmp: %s vs %s: %w", m.currency, other.currency, ErrCurrencyMismatch)
	}
	switch {
	case m.cents < other.cents:
		return -1, nil
	case m.cents > other.cents:
		return 1, nil
	}
	return 0, nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.cents, m.currency)
}
