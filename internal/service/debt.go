package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/solid-logic-studios/bucketwise-planner/internal/domain"
	"github.com/solid-logic-studios/bucketwise-planner/internal/logging"
)

type DebtInput struct {
	Name                string
	Type                domain.DebtType
	OriginalAmountCents int64
	CurrentBalanceCents int64
	InterestRate        float64
	MinimumPaymentCents int64
	MinPaymentFrequency domain.PaymentFrequency
	Priority            int
	Currency            domain.Currency
}

type DebtService struct {
	debts debtRepository
}

func NewDebtService(debts debtRepository) *DebtService {
	return &DebtService{debts: debts}
}

func (s *DebtService) CreateDebt(ctx context.Context, userID uuid.UUID, in DebtInput) (*domain.Debt, error) {
	d, err := debtFromInput(userID, in)
	if err != nil {
		return nil, fmt.Errorf("CreateDebt: %w", err)
	}

	if err := s.debts.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("CreateDebt: %w", err)
	}

	logging.FromContext(ctx).Info("debt created",
		"debt_id", d.ID,
		"debt_type", d.Type,
		"priority", d.Priority,
		"balance_cents", d.CurrentBalance.Cents(),
	)
	return d, nil
}

func (s *DebtService) ListDebts(ctx context.Context, userID uuid.UUID) ([]domain.Debt, error) {
	debts, err := s.debts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ListDebts: %w", err)
	}
	return debts, nil
}

// UpdateDebt replaces a debt's mutable fields. The stored row is rebuilt
// through NewDebt so construction invariants hold on every write.
func (s *DebtService) UpdateDebt(ctx context.Context, userID, debtID uuid.UUID, in DebtInput) (*domain.Debt, error) {
	existing, err := s.ownedDebt(ctx, userID, debtID)
	if err != nil {
		return nil, fmt.Errorf("UpdateDebt: %w", err)
	}

	updated, err := debtFromInput(userID, in)
	if err != nil {
		return nil, fmt.Errorf("UpdateDebt: %w", err)
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if err := s.debts.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("UpdateDebt: %w", err)
	}
	return updated, nil
}

func (s *DebtService) DeleteDebt(ctx context.Context, userID, debtID uuid.UUID) error {
	if _, err := s.ownedDebt(ctx, userID, debtID); err != nil {
		return fmt.Errorf("DeleteDebt: %w", err)
	}
	if err := s.debts.Delete(ctx, debtID); err != nil {
		return fmt.Errorf("DeleteDebt: %w", err)
	}
	return nil
}

// ownedDebt resolves a debt and hides other users' rows behind ErrNotFound.
func (s *DebtService) ownedDebt(ctx context.Context, userID, debtID uuid.UUID) (*domain.Debt, error) {
	d, err := s.debts.GetByID(ctx, debtID)
	if err != nil {
		return nil, err
	}
	if d.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

func debtFromInput(userID uuid.UUID, in DebtInput) (*domain.Debt, error) {
	currency := in.Currency
	if currency == "" {
		currency = domain.CurrencyAUD
	}

	original, err := domain.NewMoney(in.OriginalAmountCents, currency)
	if err != nil {
		return nil, err
	}
	balance, err := domain.NewMoney(in.CurrentBalanceCents, currency)
	if err != nil {
		return nil, err
	}
	minimum, err := domain.NewMoney(in.MinimumPaymentCents, currency)
	if err != nil {
		return nil, err
	}

	return domain.NewDebt(userID, in.Name, in.Type, original, balance,
		in.InterestRate, minimum, in.MinPaymentFrequency, in.Priority)
}
