package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/solid-logic-studios/bucketwise-planner/internal/budget"
	"github.com/solid-logic-studios/bucketwise-planner/internal/domain"
	"github.com/solid-logic-studios/bucketwise-planner/internal/logging"
	"github.com/solid-logic-studios/bucketwise-planner/internal/service"
)

type profileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.BudgetProfile, error)
	PutProfile(ctx context.Context, userID uuid.UUID, in service.ProfileInput) (*domain.BudgetProfile, error)
	Allocation(ctx context.Context, userID uuid.UUID) (*budget.Allocation, error)
}

type ProfileHandler struct {
	profiles profileService
}

func NewProfileHandler(profiles profileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type bucketSplitDTO struct {
	DailyExpensesBps    int `json:"daily_expenses_bps"`
	SplurgeBps          int `json:"splurge_bps"`
	SmileBps            int `json:"smile_bps"`
	FireExtinguisherBps int `json:"fire_extinguisher_bps"`
	MojoBps             int `json:"mojo_bps"`
	GrowBps             int `json:"grow_bps"`
}

func (d bucketSplitDTO) toSplit() domain.BucketSplit {
	return domain.BucketSplit{
		DailyExpensesBps:    d.DailyExpensesBps,
		SplurgeBps:          d.SplurgeBps,
		SmileBps:            d.SmileBps,
		FireExtinguisherBps: d.FireExtinguisherBps,
		MojoBps:             d.MojoBps,
		GrowBps:             d.GrowBps,
	}
}

func toSplitDTO(s domain.BucketSplit) bucketSplitDTO {
	return bucketSplitDTO{
		DailyExpensesBps:    s.DailyExpensesBps,
		SplurgeBps:          s.SplurgeBps,
		SmileBps:            s.SmileBps,
		FireExtinguisherBps: s.FireExtinguisherBps,
		MojoBps:             s.MojoBps,
		GrowBps:             s.GrowBps,
	}
}

type profileRequest struct {
	FortnightlyIncomeCents int64           `json:"fortnightly_income_cents"`
	Currency               string          `json:"currency"`
	Split                  *bucketSplitDTO `json:"split"`
}

func (r profileRequest) Validate() []FieldError {
	var errs []FieldError
	if r.FortnightlyIncomeCents <= 0 {
		errs = append(errs, FieldError{Field: "fortnightly_income_cents", Message: "must be greater than 0"})
	}
	if r.Currency != "" && !domain.Currency(r.Currency).IsValid() {
		errs = append(errs, FieldError{Field: "currency", Message: "must be AUD, NZD, or USD"})
	}
	return errs
}

type allocationDTO struct {
	DailyExpensesCents    int64 `json:"daily_expenses_cents"`
	SplurgeCents          int64 `json:"splurge_cents"`
	SmileCents            int64 `json:"smile_cents"`
	FireExtinguisherCents int64 `json:"fire_extinguisher_cents"`
	MojoCents             int64 `json:"mojo_cents"`
	GrowCents             int64 `json:"grow_cents"`
}

func toAllocationDTO(a *budget.Allocation) allocationDTO {
	return allocationDTO{
		DailyExpensesCents:    a.DailyExpenses.Cents(),
		SplurgeCents:          a.Splurge.Cents(),
		SmileCents:            a.Smile.Cents(),
		FireExtinguisherCents: a.FireExtinguisher.Cents(),
		MojoCents:             a.Mojo.Cents(),
		GrowCents:             a.Grow.Cents(),
	}
}

type profileDTO struct {
	ID                     uuid.UUID      `json:"id"`
	FortnightlyIncomeCents int64          `json:"fortnightly_income_cents"`
	Currency               string         `json:"currency"`
	Split                  bucketSplitDTO `json:"split"`
	Allocation             allocationDTO  `json:"allocation"`
}

func toProfileDTO(p *domain.BudgetProfile) profileDTO {
	alloc := budget.Allocate(p.FortnightlyIncome, p.Split)
	return profileDTO{
		ID:                     p.ID,
		FortnightlyIncomeCents: p.FortnightlyIncome.Cents(),
		Currency:               string(p.FortnightlyIncome.Currency()),
		Split:                  toSplitDTO(p.Split),
		Allocation:             toAllocationDTO(&alloc),
	}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, appErr := ownerFromPath(r)
	if appErr != nil {
		RespondAppError(w, appErr, nil)
		return
	}

	p, err := h.profiles.GetProfile(r.Context(), userID)
	if err != nil {
		logging.FromContext(r.Context()).Warn("failed to get budget profile", "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, toProfileDTO(p))
}

// Put replaces the user's budget profile. Omitting the split applies the
// canonical Barefoot allocation.
func (h *ProfileHandler) Put(w http.ResponseWriter, r *http.Request) {
	userID, appErr := ownerFromPath(r)
	if appErr != nil {
		RespondAppError(w, appErr, nil)
		return
	}

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	if fields := req.Validate(); len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	split := domain.DefaultBucketSplit()
	if req.Split != nil {
		split = req.Split.toSplit()
	}

	p, err := h.profiles.PutProfile(r.Context(), userID, service.ProfileInput{
		FortnightlyIncomeCents: req.FortnightlyIncomeCents,
		Currency:               domain.Currency(req.Currency),
		Split:                  split,
	})
	if err != nil {
		logging.FromContext(r.Context()).Warn("failed to store budget profile", "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, toProfileDTO(p))
}
