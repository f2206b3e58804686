package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/employee"
	"github.com/stafftrack/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/stafftrack/timeclock-backend-go/internal/handler/http/response"
	employeeservice "github.com/stafftrack/timeclock-backend-go/internal/service/employee"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListForTerminal(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employeeservice.Service
}

func NewEmployeeHandler(employeeService employeeservice.Service) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actor := middleware.CurrentUser(r.Context())
	created, err := h.employeeService.Create(r.Context(), actor, createReq)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", created)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor := middleware.CurrentUser(r.Context())
	e, err := h.employeeService.Get(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, e)
}

func employeeFilter(r *http.Request) employee.Filter {
	filter := employee.Filter{
		UserID:   queryString(r, "user_id"),
		IsActive: queryBool(r, "is_active"),
		LastName: queryString(r, "last_name"),
	}
	filter.Page, filter.Limit = queryPage(r)
	return filter
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := employeeFilter(r)

	actor := middleware.CurrentUser(r.Context())
	employees, total, err := h.employeeService.List(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, employees, response.PageMeta(filter.Page, filter.Limit, total))
}

// ListForTerminal implements EmployeeHandler. It serves the reduced
// roster a kiosk shows on its clock-in screen.
func (h *EmployeeHandlerImpl) ListForTerminal(w http.ResponseWriter, r *http.Request) {
	filter := employeeFilter(r)

	actor := middleware.CurrentUser(r.Context())
	employees, total, err := h.employeeService.ListForTerminal(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, employees, response.PageMeta(filter.Page, filter.Limit, total))
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq employee.UpdateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actor := middleware.CurrentUser(r.Context())
	updated, err := h.employeeService.Update(r.Context(), actor, chi.URLParam(r, "id"), updateReq)
	if err != nil {
		slog.Error("UpdateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", updated)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.CurrentUser(r.Context())
	if err := h.employeeService.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deleted", nil)
}
