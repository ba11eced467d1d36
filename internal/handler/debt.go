package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/solid-logic-studios/bucketwise-planner/internal/domain"
	"github.com/solid-logic-studios/bucketwise-planner/internal/logging"
	"github.com/solid-logic-studios/bucketwise-planner/internal/service"
)

type debtService interface {
	CreateDebt(ctx context.Context, userID uuid.UUID, in service.DebtInput) (*domain.Debt, error)
	ListDebts(ctx context.Context, userID uuid.UUID) ([]domain.Debt, error)
	UpdateDebt(ctx context.Context, userID, debtID uuid.UUID, in service.DebtInput) (*domain.Debt, error)
	DeleteDebt(ctx context.Context, userID, debtID uuid.UUID) error
}

type DebtHandler struct {
	debts debtService
}

func NewDebtHandler(debts debtService) *DebtHandler {
	return &DebtHandler{debts: debts}
}

type debtRequest struct {
	Name                string  `json:"name"`
	Type                string  `json:"type"`
	OriginalAmountCents int64   `json:"original_amount_cents"`
	CurrentBalanceCents int64   `json:"current_balance_cents"`
	InterestRate        float64 `json:"interest_rate"`
	MinimumPaymentCents int64   `json:"minimum_payment_cents"`
	MinPaymentFrequency string  `json:"min_payment_frequency"`
	Priority            int     `json:"priority"`
	Currency            string  `json:"currency"`
}

func (r debtRequest) Validate() []FieldError {
	var errs []FieldError

	if r.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	}

	if r.Type == "" {
		errs = append(errs, FieldError{Field: "type", Message: "required"})
	} else if !domain.DebtType(r.Type).IsValid() {
		errs = append(errs, FieldError{Field: "type", Message: "must be credit_card or mortgage"})
	}

	if r.OriginalAmountCents <= 0 {
		errs = append(errs, FieldError{Field: "original_amount_cents", Message: "must be greater than 0"})
	}

	if r.CurrentBalanceCents < 0 {
		errs = append(errs, FieldError{Field: "current_balance_cents", Message: "must not be negative"})
	}

	if r.InterestRate < 0 {
		errs = append(errs, FieldError{Field: "interest_rate", Message: "must not be negative"})
	}

	if r.MinimumPaymentCents <= 0 {
		errs = append(errs, FieldError{Field: "minimum_payment_cents", Message: "must be greater than 0"})
	}

	if r.MinPaymentFrequency == "" {
		errs = append(errs, FieldError{Field: "min_payment_frequency", Message: "required"})
	} else if !domain.PaymentFrequency(r.MinPaymentFrequency).IsValid() {
		errs = append(errs, FieldError{Field: "min_payment_frequency", Message: "must be FORTNIGHTLY or MONTHLY"})
	}

	if r.Priority < 1 {
		errs = append(errs, FieldError{Field: "priority", Message: "must be 1 or higher"})
	}

	if r.Currency != "" && !domain.Currency(r.Currency).IsValid() {
		errs = append(errs, FieldError{Field: "currency", Message: "must be AUD, NZD, or USD"})
	}

	return errs
}

func (r debtRequest) toInput() service.DebtInput {
	return service.DebtInput{
		Name:                r.Name,
		Type:                domain.DebtType(r.Type),
		OriginalAmountCents: r.OriginalAmountCents,
		CurrentBalanceCents: r.CurrentBalanceCents,
		InterestRate:        r.InterestRate,
		MinimumPaymentCents: r.MinimumPaymentCents,
		MinPaymentFrequency: domain.PaymentFrequency(r.MinPaymentFrequency),
		Priority:            r.Priority,
		Currency:            domain.Currency(r.Currency),
	}
}

type debtDTO struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Type                string    `json:"type"`
	OriginalAmountCents int64     `json:"original_amount_cents"`
	CurrentBalanceCents int64     `json:"current_balance_cents"`
	InterestRate        float64   `json:"interest_rate"`
	MinimumPaymentCents int64     `json:"minimum_payment_cents"`
	MinPaymentFrequency string    `json:"min_payment_frequency"`
	Priority            int       `json:"priority"`
	Currency            string    `json:"currency"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func toDebtDTO(d *domain.Debt) debtDTO {
	return debtDTO{
		ID:                  d.ID,
		Name:                d.Name,
		Type:                string(d.Type),
		OriginalAmountCents: d.OriginalAmount.Cents(),
		CurrentBalanceCents: d.CurrentBalance.Cents(),
		InterestRate:        d.InterestRate,
		MinimumPaymentCents: d.MinimumPayment.Cents(),
		MinPaymentFrequency: string(d.MinPaymentFrequency),
		Priority:            d.Priority,
		Currency:            string(d.OriginalAmount.Currency()),
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

func (h *DebtHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, appErr := ownerFromPath(r)
	if appErr != nil {
		RespondAppError(w, appErr, nil)
		return
	}

	var req debtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	if fields := req.Validate(); len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	d, err := h.debts.CreateDebt(r.Context(), userID, req.toInput())
	if err != nil {
		logging.FromContext(r.Context()).Warn("debt creation failed", "error", err)
		RespondDomainError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/users/%s/debts/%s", userID, d.ID))
	RespondSuccess(w, http.StatusCreated, toDebtDTO(d))
}

func (h *DebtHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, appErr := ownerFromPath(r)
	if appErr != nil {
		RespondAppError(w, appErr, nil)
		return
	}

	debts, err := h.debts.ListDebts(r.Context(), userID)
	if err != nil {
		logging.FromContext(r.Context()).Error("failed to list debts", "error", err)
		RespondDomainError(w, err)
		return
	}

	dtos := make([]debtDTO, len(debts))
	for i := range debts {
		dtos[i] = toDebtDTO(&debts[i])
	}

	RespondSuccess(w, http.StatusOK, dtos)
}

func (h *DebtHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, appErr := ownerFromPath(r)
	if appErr != nil {
		RespondAppError(w, appErr, nil)
		return
	}

	debtID, err := uuid.Parse(r.PathValue("debtID"))
	if err != nil {
		RespondAppError(w, ErrResourceNotFound, nil)
		return
	}

	var req debtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	if fields := req.Validate(); len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	d, err := h.debts.UpdateDebt(r.Context(), userID, debtID, req.toInput())
	if err != nil {
		logging.FromContext(r.Context()).Warn("debt update failed", "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, toDebtDTO(d))
}

func (h *DebtHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, appErr := ownerFromPath(r)
	if appErr != nil {
		RespondAppError(w, appErr, nil)
		return
	}

	debtID, err := uuid.Parse(r.PathValue("debtID"))
	if err != nil {
		RespondAppError(w, ErrResourceNotFound, nil)
		return
	}

	if err := h.debts.DeleteDebt(r.Context(), userID, debtID); err != nil {
		logging.FromContext(r.Context()).Warn("debt deletion failed", "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, map[string]string{"deleted": debtID.String()})
}
