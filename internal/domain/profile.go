package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Bucket names follow the Barefoot Investor method. Daily Expenses, Splurge,
// Smile and Fire Extinguisher are mandatory; Mojo and Grow are optional.
type Bucket string

const (
	BucketDailyExpenses    Bucket = "daily_expenses"
	BucketSplurge          Bucket = "splurge"
	BucketSmile            Bucket = "smile"
	BucketFireExtinguisher Bucket = "fire_extinguisher"
	BucketMojo             Bucket = "mojo"
	BucketGrow             Bucket = "grow"
)

// TotalAllocationBps is the whole of fortnightly income in basis points.
const TotalAllocationBps = 10000

// BucketSplit carries the per-bucket share of income in basis points.
type BucketSplit struct {
	DailyExpensesBps    int
	SplurgeBps          int
	SmileBps            int
	FireExtinguisherBps int
	MojoBps             int
	GrowBps             int
}

// DefaultBucketSplit is the canonical Barefoot allocation: 60% Daily Expenses,
// 10% Splurge, 10% Smile, 20% Fire Extinguisher.
func DefaultBucketSplit() BucketSplit {
	return BucketSplit{
		DailyExpensesBps:    6000,
		SplurgeBps:          1000,
		SmileBps:            1000,
		FireExtinguisherBps: 2000,
	}
}

func (s BucketSplit) TotalBps() int {
	return s.DailyExpensesBps + s.SplurgeBps + s.SmileBps +
		s.FireExtinguisherBps + s.MojoBps + s.GrowBps
}

func (s BucketSplit) Validate() error {
	for _, bps := range []int{
		s.DailyExpensesBps, s.SplurgeBps, s.SmileBps,
		s.FireExtinguisherBps, s.MojoBps, s.GrowBps,
	} {
		if bps < 0 {
			return fmt.Errorf("BucketSplit.Validate: negative share: %w", ErrInvalidAllocation)
		}
	}
	if s.TotalBps() != TotalAllocationBps {
		return fmt.Errorf("BucketSplit.Validate: sum %d: %w", s.TotalBps(), ErrInvalidAllocation)
	}
	return nil
}

// BudgetProfile is a user's fortnightly income and how it splits across
// buckets. The Fire Extinguisher share funds extra debt repayment.
type BudgetProfile struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	FortnightlyIncome Money
	Split             BucketSplit
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewBudgetProfile(userID uuid.UUID, income Money, split BucketSplit) (*BudgetProfile, error) {
	if !income.IsPositive() {
		return nil, fmt.Errorf("NewBudgetProfile: %w", ErrInvalidIncome)
	}
	if err := split.Validate(); err != nil {
		return nil, fmt.Errorf("NewBudgetProfile: %w", err)
	}
	now := time.Now().UTC()
	return &BudgetProfile{
		ID:                uuid.New(),
		UserID:            userID,
		FortnightlyIncome: income,
		Split:             split,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}
