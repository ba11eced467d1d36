package service

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/solid-logic-studios/bucketwise-planner/internal/domain"
)

// stubDebtRepo keeps debts in memory and mirrors the real repository's
// ordering and ErrNotFound behavior.
type stubDebtRepo struct {
	debts map[uuid.UUID]*domain.Debt
}

func newStubDebtRepo() *stubDebtRepo {
	return &stubDebtRepo{debts: make(map[uuid.UUID]*domain.Debt)}
}

func (r *stubDebtRepo) Create(_ context.Context, d *domain.Debt) error {
	cp := *d
	r.debts[d.ID] = &cp
	return nil
}

func (r *stubDebtRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Debt, error) {
	d, ok := r.debts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *stubDebtRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Debt, error) {
	var out []domain.Debt
	for _, d := range r.debts {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority < out[j].Priority
		}
		return out[i].CurrentBalance.Cents() < out[j].CurrentBalance.Cents()
	})
	return out, nil
}

func (r *stubDebtRepo) Update(_ context.Context, d *domain.Debt) error {
	if _, ok := r.debts[d.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *d
	r.debts[d.ID] = &cp
	return nil
}

func (r *stubDebtRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.debts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.debts, id)
	return nil
}

type stubProfileRepo struct {
	profiles map[uuid.UUID]*domain.BudgetProfile
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{profiles: make(map[uuid.UUID]*domain.BudgetProfile)}
}

func (r *stubProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*domain.BudgetProfile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProfileRepo) Upsert(_ context.Context, p *domain.BudgetProfile) error {
	cp := *p
	r.profiles[p.UserID] = &cp
	return nil
}
