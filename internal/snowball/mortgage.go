package snowball

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/solid-logic-studios/bucketwise-planner/internal/domain"
)

// TimelinePoint is one fortnight of a mortgage amortization.
type TimelinePoint struct {
	PeriodIndex    int
	Date           time.Time
	RemainingCents int64
}

// MortgageRun is a single amortization trajectory.
type MortgageRun struct {
	Timeline           []TimelinePoint
	TotalInterestCents int64
}

// MortgageComparison contrasts a minimum-payments-only mortgage trajectory
// with one that adds the Fire Extinguisher payment once the other debts are
// cleared.
type MortgageComparison struct {
	Baseline            MortgageRun
	WithExtra           MortgageRun
	PayoffDateBaseline  *time.Time
	PayoffDateWithExtra *time.Time
	TimeSavedFortnights int
	InterestSavedCents  int64
}

// SimulateMortgage runs the two trajectories. The extra payment only becomes
// available after the snowball on the non-mortgage debts finishes; if that
// sub-simulation caps out, the extra is never available and the with-extra
// run degenerates to the baseline. Dates step DaysPerFortnight from start.
func SimulateMortgage(mortgage *domain.Debt, nonMortgage []domain.Debt, extraCents int64, start time.Time) MortgageComparison {
	if mortgage == nil {
		return MortgageComparison{}
	}

	availableFrom := 0
	if len(nonMortgage) > 0 && extraCents > 0 {
		sub := Calculate(nonMortgage, domain.MustMoney(extraCents, mortgage.CurrentBalance.Currency()))
		availableFrom = sub.Fortnights
		if availableFrom >= MaxFortnights {
			// Non-mortgage debts never clear; the mortgage never sees the extra.
			availableFrom = MaxFortnights
		}
	}

	result := MortgageComparison{
		Baseline:  amortize(*mortgage, 0, 0, start),
		WithExtra: amortize(*mortgage, extraCents, availableFrom, start),
	}

	if n := len(result.Baseline.Timeline); n > 0 {
		d := result.Baseline.Timeline[n-1].Date
		result.PayoffDateBaseline = &d
	}
	if n := len(result.WithExtra.Timeline); n > 0 {
		d := result.WithExtra.Timeline[n-1].Date
		result.PayoffDateWithExtra = &d
	}

	if saved := len(result.Baseline.Timeline) - len(result.WithExtra.Timeline); saved > 0 {
		result.TimeSavedFortnights = saved
	}
	if saved := result.Baseline.TotalInterestCents - result.WithExtra.TotalInterestCents; saved > 0 {
		result.InterestSavedCents = saved
	}

	return result
}

// amortize steps a single mortgage balance: accrue interest, pay the
// normalized minimum plus any available extra (capped at the balance), record
// the point. It stops on payoff, at MaxFortnights, or when the payment no
// longer covers the period's interest; a stalled run records that final point
// and leaves the timeline ending on a positive remaining balance.
func amortize(m domain.Debt, extraCents int64, availableFrom int, start time.Time) MortgageRun {
	rate := periodRate(m.InterestRate)
	minimum := FortnightlyMinimum(m)
	balance := m.CurrentBalance.Cents()

	var run MortgageRun
	for idx := 0; idx < MaxFortnights && balance > 0; idx++ {
		interest := decimal.NewFromInt(balance).Mul(rate).Round(0).IntPart()
		balance += interest
		run.TotalInterestCents += interest

		payment := minimum
		if extraCents > 0 && idx >= availableFrom {
			payment += extraCents
		}
		if payment > balance {
			payment = balance
		}
		balance -= payment

		remaining := balance
		if remaining < 0 {
			remaining = 0
		}
		run.Timeline = append(run.Timeline, TimelinePoint{
			PeriodIndex:    idx,
			Date:           start.AddDate(0, 0, idx*DaysPerFortnight),
			RemainingCents: remaining,
		})

		if payment <= interest && balance > 0 {
			break
		}
	}
	return run
}
