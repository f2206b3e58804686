package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/access"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/application"
	"github.com/stafftrack/timeclock-backend-go/internal/handler/http/response"
)

// ApplicationHandler serves the read-only OAuth client registry.
// There is no service layer behind it; the only rule is that every
// mutation is denied, which application.CanAccess enforces.
type ApplicationHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type ApplicationHandlerImpl struct {
	applicationRepo application.Repository
}

func NewApplicationHandler(applicationRepo application.Repository) ApplicationHandler {
	return &ApplicationHandlerImpl{applicationRepo: applicationRepo}
}

// Get implements ApplicationHandler.
func (h *ApplicationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	if err := application.CanAccess(access.ActionRead); err != nil {
		response.HandleError(w, err)
		return
	}

	a, err := h.applicationRepo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, application.ToResponse(a))
}

// List implements ApplicationHandler.
func (h *ApplicationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	if err := application.CanAccess(access.ActionList); err != nil {
		response.HandleError(w, err)
		return
	}

	filter := application.Filter{
		Name: queryString(r, "name"),
	}
	filter.Page, filter.Limit = queryPage(r)

	apps, total, err := h.applicationRepo.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]application.ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		result = append(result, application.ToResponse(a))
	}
	response.SuccessWithMeta(w, result, response.PageMeta(filter.Page, filter.Limit, total))
}
