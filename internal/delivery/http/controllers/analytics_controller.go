package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"fitstudio/internal/delivery/http/helpers"
	"fitstudio/internal/domain"
)

// MonthsSuccessResponse is the success response envelope for GET /admin/analytics/months (200).
type MonthsSuccessResponse struct {
	Data  []domain.MonthBucket `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// SummarySuccessResponse is the success response envelope for GET /admin/analytics/summary (200).
type SummarySuccessResponse struct {
	Data  *domain.MonthlySummary `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// DailySuccessResponse is the success response envelope for GET /admin/analytics/daily (200).
type DailySuccessResponse struct {
	Data  []domain.DailyRecord `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type AnalyticsController struct {
	Logger  *slog.Logger
	Service domain.AnalyticsService
	now     func() time.Time
}

func NewAnalyticsController(logger *slog.Logger, svc domain.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		Logger:  logger,
		Service: svc,
		now:     time.Now,
	}
}

// month reads ?month=YYYY-MM, defaulting to the current UTC month.
func (c *AnalyticsController) month(w http.ResponseWriter, r *http.Request) (domain.MonthKey, bool) {
	s := r.URL.Query().Get("month")
	if s == "" {
		return domain.MonthOf(c.now().UTC()), true
	}
	m, err := domain.ParseMonthKey(s)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "month must be YYYY-MM")
		return domain.MonthKey{}, false
	}
	return m, true
}

func (c *AnalyticsController) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidMonth) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
}

// Months godoc
// @Summary List months with data
// @Description Returns every month that has payment or refund records, newest first, as {value: "YYYY-MM", label: "June 2025"}.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.MonthsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/analytics/months [get]
func (c *AnalyticsController) Months(w http.ResponseWriter, r *http.Request) {
	months, err := c.Service.Months(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, months)
}

// Summary godoc
// @Summary Monthly revenue summary
// @Description Totals for the month with percentage change against the previous month.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param month query string false "Month as YYYY-MM (default: current month)"
// @Success 200 {object} controllers.SummarySuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/analytics/summary [get]
func (c *AnalyticsController) Summary(w http.ResponseWriter, r *http.Request) {
	month, ok := c.month(w, r)
	if !ok {
		return
	}
	summary, err := c.Service.MonthlySummary(r.Context(), month)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, summary)
}

// Daily godoc
// @Summary Daily revenue series
// @Description One entry per calendar day of the month, zero-filled where no payments or refunds exist.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param month query string false "Month as YYYY-MM (default: current month)"
// @Success 200 {object} controllers.DailySuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/analytics/daily [get]
func (c *AnalyticsController) Daily(w http.ResponseWriter, r *http.Request) {
	month, ok := c.month(w, r)
	if !ok {
		return
	}
	series, err := c.Service.DailySeries(r.Context(), month)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, series)
}
