// Package budget splits fortnightly income across Barefoot buckets.
package budget

import (
	"github.com/shopspring/decimal"

	"github.com/solid-logic-studios/bucketwise-planner/internal/domain"
)

// Allocation is the per-bucket share of one fortnight of income.
type Allocation struct {
	DailyExpenses    domain.Money
	Splurge          domain.Money
	Smile            domain.Money
	FireExtinguisher domain.Money
	Mojo             domain.Money
	Grow             domain.Money
}

// Total sums every bucket; it always equals the allocated income.
func (a Allocation) Total() domain.Money {
	total := a.DailyExpenses
	for _, m := range []domain.Money{a.Splurge, a.Smile, a.FireExtinguisher, a.Mojo, a.Grow} {
		total, _ = total.Add(m)
	}
	return total
}

// Allocate splits income by basis points. Each bucket floors its share;
// leftover cents land in Daily Expenses so the split is exact.
func Allocate(income domain.Money, split domain.BucketSplit) Allocation {
	currency := income.Currency()

	alloc := Allocation{
		Splurge:          share(income, split.SplurgeBps),
		Smile:            share(income, split.SmileBps),
		FireExtinguisher: share(income, split.FireExtinguisherBps),
		Mojo:             share(income, split.MojoBps),
		Grow:             share(income, split.GrowBps),
	}

	assigned := int64(0)
	for _, m := range []domain.Money{alloc.Splurge, alloc.Smile, alloc.FireExtinguisher, alloc.Mojo, alloc.Grow} {
		assigned += m.Cents()
	}
	alloc.DailyExpenses = domain.MustMoney(income.Cents()-assigned, currency)

	return alloc
}

func share(income domain.Money, bps int) domain.Money {
	cents := decimal.NewFromInt(income.Cents()).
		Mul(decimal.NewFromInt(int64(bps))).
		Div(decimal.NewFromInt(domain.TotalAllocationBps)).
		Floor().
		IntPart()
	return domain.MustMoney(cents, income.Currency())
}
