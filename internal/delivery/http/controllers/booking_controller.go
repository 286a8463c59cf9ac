package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"fitstudio/internal/delivery/http/helpers"
	"fitstudio/internal/delivery/http/middleware"
	"fitstudio/internal/domain"
)

// SelectionResponse is the body for the selection endpoints.
type SelectionResponse struct {
	Listed     []*domain.SessionSlot `json:"listed"`
	TotalPrice float64               `json:"total_price"`
}

// SelectionSuccessResponse is the success response envelope for the selection endpoints (200).
type SelectionSuccessResponse struct {
	Data  SelectionResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// TrainerScheduleSuccessResponse is the success response envelope for GET /trainers/{trainerID}/schedule (200).
type TrainerScheduleSuccessResponse struct {
	Data  *domain.TrainerSchedule `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// SubmitBookingRequest is the request body for POST /trainers/{trainerID}/booking-requests.
// The body may be omitted when only listed sessions are submitted.
type SubmitBookingRequest struct {
	FixedSessions []domain.SessionKey `json:"fixed_sessions"`
}

// Validate implements Validator.
func (s SubmitBookingRequest) Validate() []string {
	var errs []string
	for _, k := range s.FixedSessions {
		errs = append(errs, k.Validate()...)
	}
	return errs
}

// BookingRequestSuccessResponse is the success response envelope for POST /trainers/{trainerID}/booking-requests (201).
type BookingRequestSuccessResponse struct {
	Data  *domain.BookingRequest `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// ListBookingRequestsResponse is the body for the admin booking request listing.
type ListBookingRequestsResponse struct {
	Items      []*domain.BookingRequest `json:"items"`
	Pagination helpers.PaginationMeta   `json:"pagination"`
}

// ListBookingRequestsSuccessResponse is the success response envelope for GET /admin/trainers/{trainerID}/booking-requests (200).
type ListBookingRequestsSuccessResponse struct {
	Data  ListBookingRequestsResponse `json:"data"`
	Error *helpers.APIError           `json:"error"`
}

type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{
		Logger:  logger,
		Service: svc,
	}
}

// caller extracts the trainer path value and the authenticated principal.
// It writes the error response and returns false when either is missing.
func (c *BookingController) caller(w http.ResponseWriter, r *http.Request) (string, *domain.Principal, bool) {
	trainerID := r.PathValue("trainerID")
	if trainerID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing trainerID")
		return "", nil, false
	}
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok || p.UserID == "" {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return "", nil, false
	}
	return trainerID, p, true
}

func (c *BookingController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrSlotNotSelectable):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	case errors.Is(err, domain.ErrEmptySelection):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
	}
}

// GetSchedule godoc
// @Summary Get a trainer's weekly schedule
// @Description Returns the trainer's week as seven day columns (Monday first). Each cell is a grouped session classified for the caller as booked, listed, bookable, free, on_break or visit_only.
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Param trainerID path string true "Trainer ID"
// @Success 200 {object} controllers.TrainerScheduleSuccessResponse "data contains trainer, grid, listed and total_price"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trainers/{trainerID}/schedule [get]
func (c *BookingController) GetSchedule(w http.ResponseWriter, r *http.Request) {
	trainerID, p, ok := c.caller(w, r)
	if !ok {
		return
	}
	sched, err := c.Service.GetTrainerSchedule(r.Context(), p.UserID, trainerID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sched)
}

// GetSelection godoc
// @Summary Get the caller's selection
// @Description Returns the sessions the caller has listed for this trainer, in insertion order, with their total price.
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Param trainerID path string true "Trainer ID"
// @Success 200 {object} controllers.SelectionSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trainers/{trainerID}/selection [get]
func (c *BookingController) GetSelection(w http.ResponseWriter, r *http.Request) {
	trainerID, p, ok := c.caller(w, r)
	if !ok {
		return
	}
	listed, total, err := c.Service.ListSelection(r.Context(), p.UserID, trainerID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SelectionResponse{Listed: listed, TotalPrice: total})
}

// AddSelection godoc
// @Summary List a session
// @Description Adds the session identified by the key to the caller's selection. Adding an already listed session is a no-op. Booked, break and visit-only sessions cannot be listed.
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param trainerID path string true "Trainer ID"
// @Param key body domain.SessionKey true "Session key"
// @Success 200 {object} controllers.SelectionSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (slot not selectable)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trainers/{trainerID}/selection [post]
func (c *BookingController) AddSelection(w http.ResponseWriter, r *http.Request) {
	trainerID, p, ok := c.caller(w, r)
	if !ok {
		return
	}
	var key domain.SessionKey
	if !helpers.DecodeAndValidate(w, r, &key) {
		return
	}
	listed, err := c.Service.AddSelection(r.Context(), p.UserID, trainerID, key)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SelectionResponse{Listed: listed, TotalPrice: domain.TotalPrice(nil, listed)})
}

// RemoveSelection godoc
// @Summary Unlist a session
// @Description Removes the session identified by the key from the caller's selection. Removing an absent session is a no-op.
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param trainerID path string true "Trainer ID"
// @Param key body domain.SessionKey true "Session key"
// @Success 200 {object} controllers.SelectionSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trainers/{trainerID}/selection [delete]
func (c *BookingController) RemoveSelection(w http.ResponseWriter, r *http.Request) {
	trainerID, p, ok := c.caller(w, r)
	if !ok {
		return
	}
	var key domain.SessionKey
	if !helpers.DecodeAndValidate(w, r, &key) {
		return
	}
	listed, err := c.Service.RemoveSelection(r.Context(), p.UserID, trainerID, key)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SelectionResponse{Listed: listed, TotalPrice: domain.TotalPrice(nil, listed)})
}

// ClearSelection godoc
// @Summary Unlist all sessions
// @Description Empties the caller's selection for this trainer.
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Param trainerID path string true "Trainer ID"
// @Success 200 {object} controllers.SelectionSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trainers/{trainerID}/selection/all [delete]
func (c *BookingController) ClearSelection(w http.ResponseWriter, r *http.Request) {
	trainerID, p, ok := c.caller(w, r)
	if !ok {
		return
	}
	if err := c.Service.ClearSelection(r.Context(), p.UserID, trainerID); err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SelectionResponse{Listed: []*domain.SessionSlot{}, TotalPrice: 0})
}

// SubmitBookingRequest godoc
// @Summary Submit a booking request
// @Description Submits the caller's listed sessions plus any fixed sessions as one booking request. Listed sessions are checked against the current schedule. The trainer is notified by email and the submitted sessions are removed from the selection.
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param trainerID path string true "Trainer ID"
// @Param body body SubmitBookingRequest false "Fixed sessions to include"
// @Success 201 {object} controllers.BookingRequestSuccessResponse "data contains the stored booking request"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (including empty selection)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (a listed session is no longer selectable)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trainers/{trainerID}/booking-requests [post]
func (c *BookingController) SubmitBookingRequest(w http.ResponseWriter, r *http.Request) {
	trainerID, p, ok := c.caller(w, r)
	if !ok {
		return
	}
	var req SubmitBookingRequest
	if !helpers.DecodeOptionalAndValidate(w, r, &req) {
		return
	}
	created, err := c.Service.SubmitBookingRequest(r.Context(), domain.SubmitBookingInput{
		UserID:        p.UserID,
		UserEmail:     p.Email,
		TrainerID:     trainerID,
		FixedSessions: req.FixedSessions,
	})
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// ListBookingRequests godoc
// @Summary List a trainer's booking requests
// @Description Returns submitted booking requests for the trainer, newest first. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param trainerID path string true "Trainer ID"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListBookingRequestsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/trainers/{trainerID}/booking-requests [get]
func (c *BookingController) ListBookingRequests(w http.ResponseWriter, r *http.Request) {
	trainerID := r.PathValue("trainerID")
	if trainerID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing trainerID")
		return
	}
	page := helpers.ParsePagination(r)
	items, total, err := c.Service.ListBookingRequests(r.Context(), trainerID, page)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListBookingRequestsResponse{
		Items:      items,
		Pagination: helpers.NewPaginationMeta(page.Page, page.PageSize, total),
	})
}
