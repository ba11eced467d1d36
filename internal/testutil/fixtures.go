package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/solid-logic-studios/bucketwise-planner/internal/domain"
)

func SeedTestUser(t *testing.T, db *sql.DB, email, name string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Status:       domain.UserStatusActive,
		CreatedAt:    time.Now().UTC(),
	}

	_, err = db.Exec(
		`INSERT INTO users (id, email, name, password_hash, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Email, u.Name, u.PasswordHash, u.Status, u.CreatedAt,
	)
	if err != nil {
		t.Fatalf("seed test user %s: %v", email, err)
	}
	return u
}

// SeedTestDebt inserts a credit card debt with an 18% rate and a fortnightly
// $50 minimum.
func SeedTestDebt(t *testing.T, db *sql.DB, userID uuid.UUID, name string, balanceCents int64, priority int) *domain.Debt {
	t.Helper()

	d := &domain.Debt{
		ID:                  uuid.New(),
		UserID:              userID,
		Name:                name,
		Type:                domain.DebtTypeCreditCard,
		OriginalAmount:      domain.MustMoney(balanceCents, domain.CurrencyAUD),
		CurrentBalance:      domain.MustMoney(balanceCents, domain.CurrencyAUD),
		InterestRate:        0.18,
		MinimumPayment:      domain.MustMoney(5_000, domain.CurrencyAUD),
		MinPaymentFrequency: domain.FrequencyFortnightly,
		Priority:            priority,
		CreatedAt:           time.Now().UTC(),
		UpdatedAt:           time.Now().UTC(),
	}

	insertDebt(t, db, d)
	return d
}

func SeedTestMortgage(t *testing.T, db *sql.DB, userID uuid.UUID, balanceCents, minimumCents int64) *domain.Debt {
	t.Helper()

	d := &domain.Debt{
		ID:                  uuid.New(),
		UserID:              userID,
		Name:                "Home Loan",
		Type:                domain.DebtTypeMortgage,
		OriginalAmount:      domain.MustMoney(balanceCents, domain.CurrencyAUD),
		CurrentBalance:      domain.MustMoney(balanceCents, domain.CurrencyAUD),
		InterestRate:        0.055,
		MinimumPayment:      domain.MustMoney(minimumCents, domain.CurrencyAUD),
		MinPaymentFrequency: domain.FrequencyMonthly,
		Priority:            domain.MortgageMinPriority,
		CreatedAt:           time.Now().UTC(),
		UpdatedAt:           time.Now().UTC(),
	}

	insertDebt(t, db, d)
	return d
}

func insertDebt(t *testing.T, db *sql.DB, d *domain.Debt) {
	t.Helper()

	_, err := db.Exec(
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
		t.Fatalf("seed test debt %s: %v", d.Name, err)
	}
}

func SeedTestProfile(t *testing.T, db *sql.DB, userID uuid.UUID, incomeCents int64) *domain.BudgetProfile {
	t.Helper()

	p := &domain.BudgetProfile{
		ID:                uuid.New(),
		UserID:            userID,
		FortnightlyIncome: domain.MustMoney(incomeCents, domain.CurrencyAUD),
		Split:             domain.DefaultBucketSplit(),
		CreatedAt:         time.Now().UTC(),
		UpdatedAt:         time.Now().UTC(),
	}

	_, err := db.Exec(
		`INSERT INTO budget_profiles (
			id, user_id, currency, fortnightly_income_cents,
			daily_expenses_bps, splurge_bps, smile_bps, fire_extinguisher_bps,
			mojo_bps, grow_bps, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, p.UserID, p.FortnightlyIncome.Currency(), p.FortnightlyIncome.Cents(),
		p.Split.DailyExpensesBps, p.Split.SplurgeBps, p.Split.SmileBps,
		p.Split.FireExtinguisherBps, p.Split.MojoBps, p.Split.GrowBps,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("seed test profile for %s: %v", userID, err)
	}
	return p
}
