package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/timeoff"
	"github.com/stafftrack/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/stafftrack/timeclock-backend-go/internal/handler/http/response"
	timeoffservice "github.com/stafftrack/timeclock-backend-go/internal/service/timeoff"
)

type TimeOffHandler interface {
	CreateDayOff(w http.ResponseWriter, r *http.Request)
	GetDayOff(w http.ResponseWriter, r *http.Request)
	ListDaysOff(w http.ResponseWriter, r *http.Request)
	UpdateDayOff(w http.ResponseWriter, r *http.Request)
	DeleteDayOff(w http.ResponseWriter, r *http.Request)
	BatchCreateDaysOff(w http.ResponseWriter, r *http.Request)
	BatchDeleteDaysOff(w http.ResponseWriter, r *http.Request)

	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	UpdateRequest(w http.ResponseWriter, r *http.Request)
	DeleteRequest(w http.ResponseWriter, r *http.Request)
}

type TimeOffHandlerImpl struct {
	timeOffService timeoffservice.Service
}

func NewTimeOffHandler(timeOffService timeoffservice.Service) TimeOffHandler {
	return &TimeOffHandlerImpl{timeOffService: timeOffService}
}

// CreateDayOff implements TimeOffHandler.
func (h *TimeOffHandlerImpl) CreateDayOff(w http.ResponseWriter, r *http.Request) {
	var createReq timeoff.CreateDayOffRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateDayOff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actor := middleware.CurrentUser(r.Context())
	created, err := h.timeOffService.CreateDayOff(r.Context(), actor, createReq)
	if err != nil {
		slog.Error("CreateDayOff service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Day off created", created)
}

// GetDayOff implements TimeOffHandler.
func (h *TimeOffHandlerImpl) GetDayOff(w http.ResponseWriter, r *http.Request) {
	actor := middleware.CurrentUser(r.Context())
	d, err := h.timeOffService.GetDayOff(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, d)
}

// ListDaysOff implements TimeOffHandler.
func (h *TimeOffHandlerImpl) ListDaysOff(w http.ResponseWriter, r *http.Request) {
	filter := timeoff.DayOffFilter{
		EmployeeID: queryString(r, "employee_id"),
		RequestID:  queryString(r, "request_id"),
		From:       queryTime(r, "from"),
		To:         queryTime(r, "to"),
	}
	filter.Page, filter.Limit = queryPage(r)

	actor := middleware.CurrentUser(r.Context())
	daysOff, total, err := h.timeOffService.ListDaysOff(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, daysOff, response.PageMeta(filter.Page, filter.Limit, total))
}

// UpdateDayOff implements TimeOffHandler.
func (h *TimeOffHandlerImpl) UpdateDayOff(w http.ResponseWriter, r *http.Request) {
	var updateReq timeoff.UpdateDayOffRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateDayOff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actor := middleware.CurrentUser(r.Context())
	updated, err := h.timeOffService.UpdateDayOff(r.Context(), actor, chi.URLParam(r, "id"), updateReq)
	if err != nil {
		slog.Error("UpdateDayOff service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Day off updated", updated)
}

// DeleteDayOff implements TimeOffHandler.
func (h *TimeOffHandlerImpl) DeleteDayOff(w http.ResponseWriter, r *http.Request) {
	actor := middleware.CurrentUser(r.Context())
	if err := h.timeOffService.DeleteDayOff(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Day off deleted", nil)
}

// BatchCreateDaysOff implements TimeOffHandler. All days are created
// in one transaction; one bad date rolls back the whole batch.
func (h *TimeOffHandlerImpl) BatchCreateDaysOff(w http.ResponseWriter, r *http.Request) {
	var batchReq timeoff.BatchCreateDaysOffRequest

	if err := json.NewDecoder(r.Body).Decode(&batchReq); err != nil {
		slog.Error("BatchCreateDaysOff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actor := middleware.CurrentUser(r.Context())
	created, err := h.timeOffService.BatchCreateDaysOff(r.Context(), actor, batchReq)
	if err != nil {
		slog.Error("BatchCreateDaysOff service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Days off created", created)
}

// BatchDeleteDaysOff implements TimeOffHandler.
func (h *TimeOffHandlerImpl) BatchDeleteDaysOff(w http.ResponseWriter, r *http.Request) {
	var batchReq timeoff.BatchDeleteDaysOffRequest

	if err := json.NewDecoder(r.Body).Decode(&batchReq); err != nil {
		slog.Error("BatchDeleteDaysOff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actor := middleware.CurrentUser(r.Context())
	deleted, err := h.timeOffService.BatchDeleteDaysOff(r.Context(), actor, batchReq)
	if err != nil {
		slog.Error("BatchDeleteDaysOff service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Days off deleted", map[string]int64{"deleted": deleted})
}

// CreateRequest implements TimeOffHandler.
func (h *TimeOffHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var createReq timeoff.CreateRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateDaysOffRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actor := middleware.CurrentUser(r.Context())
	created, err := h.timeOffService.CreateRequest(r.Context(), actor, createReq)
	if err != nil {
		slog.Error("CreateDaysOffRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Days off request created", created)
}

// GetRequest implements TimeOffHandler.
func (h *TimeOffHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	actor := middleware.CurrentUser(r.Context())
	dr, err := h.timeOffService.GetRequest(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, dr)
}

// ListRequests implements TimeOffHandler.
func (h *TimeOffHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	filter := timeoff.RequestFilter{
		EmployeeID: queryString(r, "employee_id"),
		Status:     queryString(r, "status"),
		Seen:       queryBool(r, "seen"),
	}
	filter.Page, filter.Limit = queryPage(r)

	actor := middleware.CurrentUser(r.Context())
	requests, total, err := h.timeOffService.ListRequests(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, requests, response.PageMeta(filter.Page, filter.Limit, total))
}

// UpdateRequest implements TimeOffHandler.
func (h *TimeOffHandlerImpl) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	var updateReq timeoff.UpdateRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateDaysOffRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actor := middleware.CurrentUser(r.Context())
	updated, err := h.timeOffService.UpdateRequest(r.Context(), actor, chi.URLParam(r, "id"), updateReq)
	if err != nil {
		slog.Error("UpdateDaysOffRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Days off request updated", updated)
}

// DeleteRequest implements TimeOffHandler.
func (h *TimeOffHandlerImpl) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	actor := middleware.CurrentUser(r.Context())
	if err := h.timeOffService.DeleteRequest(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Days off request deleted", nil)
}
