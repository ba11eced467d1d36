package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/solid-logic-studios/bucketwise-planner/internal/logging"
	"github.com/solid-logic-studios/bucketwise-planner/internal/service"
	"github.com/solid-logic-studios/bucketwise-planner/internal/snowball"
)

const dateLayout = "2006-01-02"

type planService interface {
	SnowballPlan(ctx context.Context, userID uuid.UUID) (*service.SnowballResult, error)
	MortgagePlan(ctx context.Context, userID uuid.UUID) (*service.MortgageResult, error)
}

type PlanHandler struct {
	plans planService
}

func NewPlanHandler(plans planService) *PlanHandler {
	return &PlanHandler{plans: plans}
}

type snowballPeriodDTO struct {
	Fortnight         int              `json:"fortnight"`
	PaymentDate       string           `json:"payment_date"`
	DebtsContinuing   []string         `json:"debts_continuing"`
	DebtsPaid         []string         `json:"debts_paid"`
	RemainingBalances map[string]int64 `json:"remaining_balances"`
	InterestCents     int64            `json:"interest_cents"`
}

type snowballPlanDTO struct {
	Fortnights         int                 `json:"fortnights"`
	Converged          bool                `json:"converged"`
	TotalInterestCents int64               `json:"total_interest_cents"`
	ExtraPaymentCents  int64               `json:"extra_payment_cents"`
	Currency           string              `json:"currency"`
	GeneratedAt        string              `json:"generated_at"`
	Timeline           []snowballPeriodDTO `json:"timeline"`
}

func toSnowballDTO(res *service.SnowballResult) snowballPlanDTO {
	dto := snowballPlanDTO{
		Fortnights:         res.Plan.Fortnights,
		Converged:          res.Plan.Converged(),
		TotalInterestCents: res.Plan.TotalInterest.Cents(),
		ExtraPaymentCents:  res.ExtraPayment.Cents(),
		Currency:           string(res.ExtraPayment.Currency()),
		GeneratedAt:        res.GeneratedAt.Format(dateLayout),
		Timeline:           make([]snowballPeriodDTO, 0, len(res.Plan.Timeline)),
	}

	for _, period := range res.Plan.Timeline {
		continuing := make([]string, len(period.Continuing))
		for i, d := range period.Continuing {
			continuing[i] = d.Name
		}
		paid := make([]string, len(period.Paid))
		for i, d := range period.Paid {
			paid[i] = d.Name
		}
		balances := make(map[string]int64, len(period.Balances))
		for id, cents := range period.Balances {
			balances[id.String()] = cents
		}

		dto.Timeline = append(dto.Timeline, snowballPeriodDTO{
			Fortnight:         period.Fortnight,
			PaymentDate:       res.GeneratedAt.AddDate(0, 0, period.Fortnight*snowball.DaysPerFortnight).Format(dateLayout),
			DebtsContinuing:   continuing,
			DebtsPaid:         paid,
			RemainingBalances: balances,
			InterestCents:     period.Interest.Cents(),
		})
	}

	return dto
}

type mortgagePointDTO struct {
	PeriodIndex    int    `json:"period_index"`
	Date           string `json:"date"`
	RemainingCents int64  `json:"remaining_cents"`
}

type mortgageRunDTO struct {
	Fortnights         int                `json:"fortnights"`
	TotalInterestCents int64              `json:"total_interest_cents"`
	Timeline           []mortgagePointDTO `json:"timeline"`
}

func toMortgageRunDTO(run snowball.MortgageRun) mortgageRunDTO {
	dto := mortgageRunDTO{
		Fortnights:         len(run.Timeline),
		TotalInterestCents: run.TotalInterestCents,
		Timeline:           make([]mortgagePointDTO, 0, len(run.Timeline)),
	}
	for _, p := range run.Timeline {
		dto.Timeline = append(dto.Timeline, mortgagePointDTO{
			PeriodIndex:    p.PeriodIndex,
			Date:           p.Date.Format(dateLayout),
			RemainingCents: p.RemainingCents,
		})
	}
	return dto
}

type mortgagePlanDTO struct {
	Baseline            mortgageRunDTO `json:"baseline"`
	WithExtra           mortgageRunDTO `json:"with_extra"`
	PayoffDateBaseline  *string        `json:"payoff_date_baseline"`
	PayoffDateWithExtra *string        `json:"payoff_date_with_extra"`
	TimeSavedFortnights int            `json:"time_saved_fortnights"`
	InterestSavedCents  int64          `json:"interest_saved_cents"`
	GeneratedAt         string         `json:"generated_at"`
}

func toMortgageDTO(res *service.MortgageResult) mortgagePlanDTO {
	return mortgagePlanDTO{
		Baseline:            toMortgageRunDTO(res.Comparison.Baseline),
		WithExtra:           toMortgageRunDTO(res.Comparison.WithExtra),
		PayoffDateBaseline:  formatDate(res.Comparison.PayoffDateBaseline),
		PayoffDateWithExtra: formatDate(res.Comparison.PayoffDateWithExtra),
		TimeSavedFortnights: res.Comparison.TimeSavedFortnights,
		InterestSavedCents:  res.Comparison.InterestSavedCents,
		GeneratedAt:         res.GeneratedAt.Format(dateLayout),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func (h *PlanHandler) Snowball(w http.ResponseWriter, r *http.Request) {
	userID, appErr := ownerFromPath(r)
	if appErr != nil {
		RespondAppError(w, appErr, nil)
		return
	}

	res, err := h.plans.SnowballPlan(r.Context(), userID)
	if err != nil {
		logging.FromContext(r.Context()).Error("failed to build snowball plan", "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, toSnowballDTO(res))
}

func (h *PlanHandler) Mortgage(w http.ResponseWriter, r *http.Request) {
	userID, appErr := ownerFromPath(r)
	if appErr != nil {
		RespondAppError(w, appErr, nil)
		return
	}

	res, err := h.plans.MortgagePlan(r.Context(), userID)
	if err != nil {
		logging.FromContext(r.Context()).Error("failed to build mortgage plan", "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, toMortgageDTO(res))
}
