package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/solid-logic-studios/bucketwise-planner/internal/domain"
)

const debtColumns = `id, user_id, name, debt_type, currency,
	original_amount_cents, current_balance_cents, interest_rate,
	minimum_payment_cents, min_payment_frequency, priority,
	created_at, updated_at`

type DebtRepository struct {
	db *sql.DB
}

func NewDebtRepository(db *sql.DB) *DebtRepository {
	return &DebtRepository{db: db}
}

func (r *DebtRepository) Create(ctx context.Context, d *domain.Debt) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO debts (
			id, user_id, name, debt_type, currency,
			original_amount_cents, current_balance_cents, interest_rate,
			minimum_payment_cents, min_payment_frequency, priority,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		d.ID, d.UserID, d.Name, d.Type, d.OriginalAmount.Currency(),
		d.OriginalAmount.Cents(), d.CurrentBalance.Cents(), d.InterestRate,
		d.MinimumPayment.Cents(), d.MinPaymentFrequency, d.Priority,
		d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (r *DebtRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Debt, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+debtColumns+` FROM debts WHERE id = $1`, id,
	)
	d, err := scanDebt(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("GetByID: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return d, nil
}

// ListByUser returns a user's debts in snowball attack order.
func (r *DebtRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Debt, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+debtColumns+` FROM debts
		WHERE user_id = $1
		ORDER BY priority, current_balance_cents`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListByUser: %w", err)
	}
	defer rows.Close()

	var debts []domain.Debt
	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("ListByUser: scan: %w", err)
		}
		debts = append(debts, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListByUser: rows: %w", err)
	}
	return debts, nil
}

func (r *DebtRepository) Update(ctx context.Context, d *domain.Debt) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE debts SET
			name = $1, current_balance_cents = $2, interest_rate = $3,
			minimum_payment_cents = $4, min_payment_frequency = $5,
			priority = $6, updated_at = $7
		WHERE id = $8`,
		d.Name, d.CurrentBalance.Cents(), d.InterestRate,
		d.MinimumPayment.Cents(), d.MinPaymentFrequency,
		d.Priority, d.UpdatedAt, d.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("Update: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *DebtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM debts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanDebt(s scanner) (*domain.Debt, error) {
	var (
		d             domain.Debt
		currency      domain.Currency
		originalCents int64
		balanceCents  int64
		minimumCents  int64
	)
	err := s.Scan(
		&d.ID, &d.UserID, &d.Name, &d.Type, &currency,
		&originalCents, &balanceCents, &d.InterestRate,
		&minimumCents, &d.MinPaymentFrequency, &d.Priority,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if d.OriginalAmount, err = domain.NewMoney(originalCents, currency); err != nil {
		return nil, err
	}
	if d.CurrentBalance, err = domain.NewMoney(balanceCents, currency); err != nil {
		return nil, err
	}
	if d.MinimumPayment, err = domain.NewMoney(minimumCents, currency); err != nil {
		return nil, err
	}
	return &d, nil
}
