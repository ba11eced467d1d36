// Package snowball projects debt payoff fortnight by fortnight: minimums on
// every debt, the Fire Extinguisher extra on the highest-priority one, debts
// retired as they reach zero. A separate routine compares mortgage
// amortization with and without the extra payment.
package snowball

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/solid-logic-studios/bucketwise-planner/internal/domain"
)

const (
	// MaxFortnights bounds every simulation at roughly 50 years. A plan
	// reporting this many periods did not converge.
	MaxFortnights = 1300

	FortnightsPerYear = 26
	DaysPerFortnight  = 14
)

// maxWorkingBalanceCents caps the working balance of a non-convergent debt.
// Runaway interest compounds geometrically and would overflow int64 well
// before the fortnight cap, wrapping the balance negative and falsely
// retiring the debt. Any real balance sits far below this ceiling.
const maxWorkingBalanceCents int64 = 1 << 50

// Period is one fortnight of the payoff timeline.
type Period struct {
	Fortnight  int
	Continuing []domain.Debt
	Paid       []domain.Debt
	Balances   map[uuid.UUID]int64
	Interest   domain.Money
}

// Plan is the aggregate result of one snowball run.
type Plan struct {
	Fortnights    int
	TotalInterest domain.Money
	Timeline      []Period
}

// Converged reports whether every debt was cleared before the safety cap.
func (p Plan) Converged() bool {
	return p.Fortnights < MaxFortnights
}

// FortnightlyMinimum normalizes a debt's minimum payment to cents per
// fortnight. Monthly minimums convert via round(min × 12 / 26).
func FortnightlyMinimum(d domain.Debt) int64 {
	if d.MinPaymentFrequency != domain.FrequencyMonthly {
		return d.MinimumPayment.Cents()
	}
	return decimal.NewFromInt(d.MinimumPayment.Cents()).
		Mul(decimal.NewFromInt(12)).
		Div(decimal.NewFromInt(FortnightsPerYear)).
		Round(0).
		IntPart()
}

func periodRate(annualRate float64) decimal.Decimal {
	return decimal.NewFromFloat(annualRate).Div(decimal.NewFromInt(FortnightsPerYear))
}

// Calculate simulates the fortnightly debt snowball. Debts are attacked in
// ascending priority order (ties broken by smallest balance): each fortnight
// interest accrues on every active debt, every debt receives its normalized
// minimum, and the first debt in order additionally receives the full extra
// payment. Payments never exceed the outstanding balance. Inputs are treated
// as immutable; balances evolve in a working map owned by this call.
//
// The result is deterministic for identical inputs. Calculate never errors:
// non-convergent inputs simply cap out at MaxFortnights.
func Calculate(debts []domain.Debt, extraPayment domain.Money) Plan {
	ordered := make([]domain.Debt, len(debts))
	copy(ordered, debts)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority < ordered[j].Priority
		}
		return ordered[i].CurrentBalance.Cents() < ordered[j].CurrentBalance.Cents()
	})

	balances := make(map[uuid.UUID]int64, len(ordered))
	rates := make(map[uuid.UUID]decimal.Decimal, len(ordered))
	minimums := make(map[uuid.UUID]int64, len(ordered))
	for _, d := range ordered {
		balances[d.ID] = d.CurrentBalance.Cents()
		rates[d.ID] = periodRate(d.InterestRate)
		minimums[d.ID] = FortnightlyMinimum(d)
	}

	currency := extraPayment.Currency()
	var plan Plan
	var totalInterest int64
	active := ordered

	for fortnight := 1; len(active) > 0 && fortnight <= MaxFortnights; fortnight++ {
		var periodInterest int64
		for _, d := range active {
			interest := decimal.NewFromInt(balances[d.ID]).Mul(rates[d.ID]).Round(0).IntPart()
			balances[d.ID] += interest
			if balances[d.ID] > maxWorkingBalanceCents {
				balances[d.ID] = maxWorkingBalanceCents
			}
			periodInterest += interest
		}

		var continuing, paid []domain.Debt
		for i, d := range active {
			payment := minimums[d.ID]
			if i == 0 {
				payment += extraPayment.Cents()
			}
			if payment > balances[d.ID] {
				payment = balances[d.ID]
			}
			balances[d.ID] -= payment

			if balances[d.ID] == 0 {
				paid = append(paid, d)
			} else {
				continuing = append(continuing, d)
			}
		}

		snapshot := make(map[uuid.UUID]int64, len(balances))
		for id, cents := range balances {
			if cents < 0 {
				cents = 0
			}
			snapshot[id] = cents
		}

		plan.Timeline = append(plan.Timeline, Period{
			Fortnight:  fortnight,
			Continuing: continuing,
			Paid:       paid,
			Balances:   snapshot,
			Interest:   domain.MustMoney(periodInterest, currency),
		})
		totalInterest += periodInterest

		active = continuing
	}

	plan.Fortnights = len(plan.Timeline)
	plan.TotalInterest = domain.MustMoney(totalInterest, currency)
	return plan
}
