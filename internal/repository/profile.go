package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/solid-logic-studios/bucketwise-planner/internal/domain"
)

const profileColumns = `id, user_id, currency, fortnightly_income_cents,
	daily_expenses_bps, splurge_bps, smile_bps, fire_extinguisher_bps,
	mojo_bps, grow_bps, created_at, updated_at`

type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.BudgetProfile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM budget_profiles WHERE user_id = $1`, userID,
	)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("GetByUserID: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("GetByUserID: %w", err)
	}
	return p, nil
}

// Upsert writes a user's single budget profile, replacing any prior one.
func (r *ProfileRepository) Upsert(ctx context.Context, p *domain.BudgetProfile) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO budget_profiles (
			id, user_id, currency, fortnightly_income_cents,
			daily_expenses_bps, splurge_bps, smile_bps, fire_extinguisher_bps,
			mojo_bps, grow_bps, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id) DO UPDATE SET
			currency = EXCLUDED.currency,
			fortnightly_income_cents = EXCLUDED.fortnightly_income_cents,
			daily_expenses_bps = EXCLUDED.daily_expenses_bps,
			splurge_bps = EXCLUDED.splurge_bps,
			smile_bps = EXCLUDED.smile_bps,
			fire_extinguisher_bps = EXCLUDED.fire_extinguisher_bps,
			mojo_bps = EXCLUDED.mojo_bps,
			grow_bps = EXCLUDED.grow_bps,
			updated_at = EXCLUDED.updated_at`,
		p.ID, p.UserID, p.FortnightlyIncome.Currency(), p.FortnightlyIncome.Cents(),
		p.Split.DailyExpensesBps, p.Split.SplurgeBps, p.Split.SmileBps,
		p.Split.FireExtinguisherBps, p.Split.MojoBps, p.Split.GrowBps,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("Upsert: %w", err)
	}
	return nil
}

func scanProfile(s scanner) (*domain.BudgetProfile, error) {
	var (
		p           domain.BudgetProfile
		currency    domain.Currency
		incomeCents int64
	)
	err := s.Scan(
		&p.ID, &p.UserID, &currency, &incomeCents,
		&p.Split.DailyExpensesBps, &p.Split.SplurgeBps, &p.Split.SmileBps,
		&p.Split.FireExtinguisherBps, &p.Split.MojoBps, &p.Split.GrowBps,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.FortnightlyIncome, err = domain.NewMoney(incomeCents, currency); err != nil {
		return nil, err
	}
	return &p, nil
}
