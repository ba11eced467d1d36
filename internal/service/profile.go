package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/solid-logic-studios/bucketwise-planner/internal/budget"
	"github.com/solid-logic-studios/bucketwise-planner/internal/domain"
)

type ProfileInput struct {
	FortnightlyIncomeCents int64
	Currency               domain.Currency
	Split                  domain.BucketSplit
}

type ProfileService struct {
	profiles profileRepository
}

func NewProfileService(profiles profileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.BudgetProfile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("GetProfile: %w", err)
	}
	return p, nil
}

// PutProfile validates and stores the user's bucket split, replacing any
// existing profile.
func (s *ProfileService) PutProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (*domain.BudgetProfile, error) {
	currency := in.Currency
	if currency == "" {
		currency = domain.CurrencyAUD
	}
	income, err := domain.NewMoney(in.FortnightlyIncomeCents, currency)
	if err != nil {
		return nil, fmt.Errorf("PutProfile: %w", err)
	}

	p, err := domain.NewBudgetProfile(userID, income, in.Split)
	if err != nil {
		return nil, fmt.Errorf("PutProfile: %w", err)
	}

	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("PutProfile: %w", err)
	}
	return p, nil
}

// Allocation splits the profile's income across buckets.
func (s *ProfileService) Allocation(ctx context.Context, userID uuid.UUID) (*budget.Allocation, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("Allocation: %w", err)
	}
	alloc := budget.Allocate(p.FortnightlyIncome, p.Split)
	return &alloc, nil
}
