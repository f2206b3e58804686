package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/workperiod"
	"github.com/stafftrack/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/stafftrack/timeclock-backend-go/internal/handler/http/response"
	workperiodservice "github.com/stafftrack/timeclock-backend-go/internal/service/workperiod"
)

type WorkPeriodHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Mine(w http.ResponseWriter, r *http.Request)
	Latest(w http.ResponseWriter, r *http.Request)
}

type WorkPeriodHandlerImpl struct {
	workPeriodService workperiodservice.Service
}

func NewWorkPeriodHandler(workPeriodService workperiodservice.Service) WorkPeriodHandler {
	return &WorkPeriodHandlerImpl{workPeriodService: workPeriodService}
}

// Create implements WorkPeriodHandler.
func (h *WorkPeriodHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq workperiod.CreateWorkPeriodRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateWorkPeriod decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actor := middleware.CurrentUser(r.Context())
	created, err := h.workPeriodService.Create(r.Context(), actor, createReq)
	if err != nil {
		slog.Error("CreateWorkPeriod service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work period created", created)
}

// Get implements WorkPeriodHandler.
func (h *WorkPeriodHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor := middleware.CurrentUser(r.Context())
	wp, err := h.workPeriodService.Get(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, wp)
}

func workPeriodFilter(r *http.Request) workperiod.Filter {
	filter := workperiod.Filter{
		EmployeeID: queryString(r, "employee_id"),
		From:       queryTime(r, "from"),
		To:         queryTime(r, "to"),
	}
	filter.Page, filter.Limit = queryPage(r)
	return filter
}

// List implements WorkPeriodHandler.
func (h *WorkPeriodHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := workPeriodFilter(r)

	actor := middleware.CurrentUser(r.Context())
	periods, total, err := h.workPeriodService.List(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, periods, response.PageMeta(filter.Page, filter.Limit, total))
}

// Update implements WorkPeriodHandler.
func (h *WorkPeriodHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq workperiod.UpdateWorkPeriodRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateWorkPeriod decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actor := middleware.CurrentUser(r.Context())
	updated, err := h.workPeriodService.Update(r.Context(), actor, chi.URLParam(r, "id"), updateReq)
	if err != nil {
		slog.Error("UpdateWorkPeriod service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work period updated", updated)
}

// Delete implements WorkPeriodHandler.
func (h *WorkPeriodHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.CurrentUser(r.Context())
	if err := h.workPeriodService.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Work period deleted", nil)
}

// ClockIn implements WorkPeriodHandler. Terminal kiosks only.
func (h *WorkPeriodHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var clockReq workperiod.ClockInRequest

	if err := json.NewDecoder(r.Body).Decode(&clockReq); err != nil {
		slog.Error("ClockIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actor := middleware.CurrentUser(r.Context())
	created, err := h.workPeriodService.ClockIn(r.Context(), actor, clockReq)
	if err != nil {
		slog.Error("ClockIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in", created)
}

// ClockOut implements WorkPeriodHandler. Terminal kiosks only.
func (h *WorkPeriodHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	actor := middleware.CurrentUser(r.Context())
	updated, err := h.workPeriodService.ClockOut(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("ClockOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out", updated)
}

// Mine implements WorkPeriodHandler.
func (h *WorkPeriodHandlerImpl) Mine(w http.ResponseWriter, r *http.Request) {
	filter := workPeriodFilter(r)

	actor := middleware.CurrentUser(r.Context())
	periods, total, err := h.workPeriodService.Mine(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, periods, response.PageMeta(filter.Page, filter.Limit, total))
}

// Latest implements WorkPeriodHandler. With an employee_id it returns
// that employee's most recent period; without one it returns the
// latest period per visible employee.
func (h *WorkPeriodHandlerImpl) Latest(w http.ResponseWriter, r *http.Request) {
	actor := middleware.CurrentUser(r.Context())
	periods, err := h.workPeriodService.Latest(r.Context(), actor, queryString(r, "employee_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, periods)
}
