package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/solid-logic-studios/bucketwise-planner/internal/domain"
)

type debtRepository interface {
	Create(ctx context.Context, d *domain.Debt) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Debt, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Debt, error)
	Update(ctx context.Context, d *domain.Debt) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type profileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.BudgetProfile, error)
	Upsert(ctx context.Context, p *domain.BudgetProfile) error
}
