package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/solid-logic-studios/bucketwise-planner/internal/budget"
	"github.com/solid-logic-studios/bucketwise-planner/internal/domain"
	"github.com/solid-logic-studios/bucketwise-planner/internal/logging"
	"github.com/solid-logic-studios/bucketwise-planner/internal/snowball"
)

// SnowballResult is the payoff projection plus the inputs handlers need to
// present it.
type SnowballResult struct {
	Plan         snowball.Plan
	ExtraPayment domain.Money
	GeneratedAt  time.Time
}

// MortgageResult is the mortgage overpayment comparison.
type MortgageResult struct {
	Comparison  snowball.MortgageComparison
	GeneratedAt time.Time
}

type PlanService struct {
	debts    debtRepository
	profiles profileRepository
	now      func() time.Time
}

func NewPlanService(debts debtRepository, profiles profileRepository) *PlanService {
	return &PlanService{
		debts:    debts,
		profiles: profiles,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SnowballPlan loads the user's debts and Fire Extinguisher allocation and
// runs the snowball. No debts means an empty plan, not an error.
func (s *PlanService) SnowballPlan(ctx context.Context, userID uuid.UUID) (*SnowballResult, error) {
	debts, err := s.debts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("SnowballPlan: %w", err)
	}

	extra, err := s.fireExtinguisher(ctx, userID, debts)
	if err != nil {
		return nil, fmt.Errorf("SnowballPlan: %w", err)
	}

	result := &SnowballResult{
		ExtraPayment: extra,
		GeneratedAt:  startOfDay(s.now()),
	}
	if len(debts) == 0 {
		result.Plan = snowball.Plan{TotalInterest: domain.Zero(extra.Currency())}
		return result, nil
	}

	result.Plan = snowball.Calculate(debts, extra)
	if !result.Plan.Converged() {
		logging.FromContext(ctx).Warn("snowball plan did not converge",
			"user_id", userID,
			"debts", len(debts),
			"extra_cents", extra.Cents(),
		)
	}
	return result, nil
}

// MortgagePlan compares mortgage payoff with and without the Fire
// Extinguisher payment. The first mortgage in attack order is simulated; the
// remaining debts gate when the extra payment becomes available.
func (s *PlanService) MortgagePlan(ctx context.Context, userID uuid.UUID) (*MortgageResult, error) {
	debts, err := s.debts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("MortgagePlan: %w", err)
	}

	extra, err := s.fireExtinguisher(ctx, userID, debts)
	if err != nil {
		return nil, fmt.Errorf("MortgagePlan: %w", err)
	}

	var mortgage *domain.Debt
	var nonMortgage []domain.Debt
	for i := range debts {
		if debts[i].Type == domain.DebtTypeMortgage {
			if mortgage == nil {
				mortgage = &debts[i]
			}
			continue
		}
		nonMortgage = append(nonMortgage, debts[i])
	}

	start := startOfDay(s.now())
	return &MortgageResult{
		Comparison:  snowball.SimulateMortgage(mortgage, nonMortgage, extra.Cents(), start),
		GeneratedAt: start,
	}, nil
}

// fireExtinguisher derives the fortnightly extra payment from the profile's
// bucket split. A user without a profile plans with no extra payment, in the
// currency their debts are held in.
func (s *PlanService) fireExtinguisher(ctx context.Context, userID uuid.UUID, debts []domain.Debt) (domain.Money, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			currency := domain.CurrencyAUD
			if len(debts) > 0 {
				currency = debts[0].CurrentBalance.Currency()
			}
			return domain.Zero(currency), nil
		}
		return domain.Money{}, err
	}
	alloc := budget.Allocate(profile.FortnightlyIncome, profile.Split)
	return alloc.FireExtinguisher, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
