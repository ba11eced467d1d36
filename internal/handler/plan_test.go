package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solid-logic-studios/bucketwise-planner/internal/auth"
	"github.com/solid-logic-studios/bucketwise-planner/internal/domain"
	"github.com/solid-logic-studios/bucketwise-planner/internal/service"
	"github.com/solid-logic-studios/bucketwise-planner/internal/snowball"
)

type stubPlanService struct {
	snowball *service.SnowballResult
	mortgage *service.MortgageResult
	err      error
}

func (s *stubPlanService) SnowballPlan(_ context.Context, _ uuid.UUID) (*service.SnowballResult, error) {
	return s.snowball, s.err
}

func (s *stubPlanService) MortgagePlan(_ context.Context, _ uuid.UUID) (*service.MortgageResult, error) {
	return s.mortgage, s.err
}

func planRequest(t *testing.T, userID uuid.UUID, path string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req = req.WithContext(auth.ContextWithUserID(req.Context(), userID))
	req.SetPathValue("id", userID.String())
	return req
}

func TestPlanHandler_Snowball(t *testing.T) {
	userID := uuid.New()
	debtID := uuid.New()
	generated := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	debt := domain.Debt{ID: debtID, Name: "Visa"}
	h := NewPlanHandler(&stubPlanService{
		snowball: &service.SnowballResult{
			Plan: snowball.Plan{
				Fortnights:    1,
				TotalInterest: domain.AUD(123),
				Timeline: []snowball.Period{{
					Fortnight: 1,
					Paid:      []domain.Debt{debt},
					Balances:  map[uuid.UUID]int64{debtID: 0},
					Interest:  domain.AUD(123),
				}},
			},
			ExtraPayment: domain.AUD(50_000),
			GeneratedAt:  generated,
		},
	})

	rec := httptest.NewRecorder()
	h.Snowball(rec, planRequest(t, userID, "/api/v1/users/"+userID.String()+"/plans/snowball"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool            `json:"success"`
		Data    snowballPlanDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)

	assert.Equal(t, 1, resp.Data.Fortnights)
	assert.True(t, resp.Data.Converged)
	assert.Equal(t, int64(123), resp.Data.TotalInterestCents)
	assert.Equal(t, int64(50_000), resp.Data.ExtraPaymentCents)
	assert.Equal(t, "AUD", resp.Data.Currency)
	assert.Equal(t, "2026-08-30", resp.Data.GeneratedAt)

	require.Len(t, resp.Data.Timeline, 1)
	period := resp.Data.Timeline[0]
	assert.Equal(t, "2026-09-13", period.PaymentDate)
	assert.Equal(t, []string{"Visa"}, period.DebtsPaid)
	assert.Empty(t, period.DebtsContinuing)
	assert.Equal(t, int64(0), period.RemainingBalances[debtID.String()])
}

func TestPlanHandler_Mortgage(t *testing.T) {
	userID := uuid.New()
	generated := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	payoff := generated.AddDate(0, 0, snowball.DaysPerFortnight)

	h := NewPlanHandler(&stubPlanService{
		mortgage: &service.MortgageResult{
			Comparison: snowball.MortgageComparison{
				Baseline: snowball.MortgageRun{
					Timeline: []snowball.TimelinePoint{
						{PeriodIndex: 0, Date: generated, RemainingCents: 50_000},
						{PeriodIndex: 1, Date: payoff, RemainingCents: 0},
					},
					TotalInterestCents: 400,
				},
				WithExtra: snowball.MortgageRun{
					Timeline: []snowball.TimelinePoint{
						{PeriodIndex: 0, Date: generated, RemainingCents: 0},
					},
					TotalInterestCents: 200,
				},
				PayoffDateBaseline:  &payoff,
				PayoffDateWithExtra: &generated,
				TimeSavedFortnights: 1,
				InterestSavedCents:  200,
			},
			GeneratedAt: generated,
		},
	})

	rec := httptest.NewRecorder()
	h.Mortgage(rec, planRequest(t, userID, "/api/v1/users/"+userID.String()+"/plans/mortgage"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool            `json:"success"`
		Data    mortgagePlanDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)

	assert.Equal(t, 2, resp.Data.Baseline.Fortnights)
	assert.Equal(t, 1, resp.Data.WithExtra.Fortnights)
	require.NotNil(t, resp.Data.PayoffDateBaseline)
	assert.Equal(t, "2026-09-13", *resp.Data.PayoffDateBaseline)
	require.NotNil(t, resp.Data.PayoffDateWithExtra)
	assert.Equal(t, "2026-08-30", *resp.Data.PayoffDateWithExtra)
	assert.Equal(t, 1, resp.Data.TimeSavedFortnights)
	assert.Equal(t, int64(200), resp.Data.InterestSavedCents)
	assert.Equal(t, "2026-09-13", resp.Data.Baseline.Timeline[1].Date)
}

func TestPlanHandler_OwnershipEnforced(t *testing.T) {
	h := NewPlanHandler(&stubPlanService{})

	// Token user differs from the path user.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/x/plans/snowball", nil)
	req = req.WithContext(auth.ContextWithUserID(req.Context(), uuid.New()))
	req.SetPathValue("id", uuid.NewString())

	rec := httptest.NewRecorder()
	h.Snowball(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlanHandler_MissingToken(t *testing.T) {
	h := NewPlanHandler(&stubPlanService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/x/plans/snowball", nil)
	req.SetPathValue("id", uuid.NewString())

	rec := httptest.NewRecorder()
	h.Snowball(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
