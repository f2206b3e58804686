package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/privilege"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/user"
	"github.com/stafftrack/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/stafftrack/timeclock-backend-go/internal/handler/http/response"
	privilegeservice "github.com/stafftrack/timeclock-backend-go/internal/service/privilege"
)

type PrivilegeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PrivilegeHandlerImpl struct {
	privilegeService privilegeservice.Service
}

func NewPrivilegeHandler(privilegeService privilegeservice.Service) PrivilegeHandler {
	return &PrivilegeHandlerImpl{privilegeService: privilegeService}
}

// Create implements PrivilegeHandler.
func (h *PrivilegeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var writeReq privilege.WriteRequest

	if err := json.NewDecoder(r.Body).Decode(&writeReq); err != nil {
		slog.Error("CreatePrivileges decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actor := middleware.CurrentUser(r.Context())
	created, err := h.privilegeService.Create(r.Context(), actor, writeReq)
	if err != nil {
		slog.Error("CreatePrivileges service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Privileges created", created)
}

// Get implements PrivilegeHandler.
func (h *PrivilegeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor := middleware.CurrentUser(r.Context())
	p, err := h.privilegeService.Get(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, p)
}

// List implements PrivilegeHandler.
func (h *PrivilegeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := privilege.Filter{
		UserID: queryString(r, "user_id"),
	}
	if role := queryString(r, "role"); role != nil {
		rr := user.Role(*role)
		filter.Role = &rr
	}
	filter.Page, filter.Limit = queryPage(r)

	actor := middleware.CurrentUser(r.Context())
	privileges, total, err := h.privilegeService.List(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, privileges, response.PageMeta(filter.Page, filter.Limit, total))
}

// Update implements PrivilegeHandler.
func (h *PrivilegeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var writeReq privilege.WriteRequest

	if err := json.NewDecoder(r.Body).Decode(&writeReq); err != nil {
		slog.Error("UpdatePrivileges decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actor := middleware.CurrentUser(r.Context())
	updated, err := h.privilegeService.Update(r.Context(), actor, chi.URLParam(r, "id"), writeReq)
	if err != nil {
		slog.Error("UpdatePrivileges service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Privileges updated", updated)
}

// Delete implements PrivilegeHandler.
func (h *PrivilegeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.CurrentUser(r.Context())
	if err := h.privilegeService.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Privileges deleted", nil)
}
