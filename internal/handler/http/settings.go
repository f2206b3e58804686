package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/settings"
	"github.com/stafftrack/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/stafftrack/timeclock-backend-go/internal/handler/http/response"
	settingsservice "github.com/stafftrack/timeclock-backend-go/internal/service/settings"
)

// SettingsHandler exposes the caller's own display preferences; there
// is no cross-user access.
type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService settingsservice.Service
}

func NewSettingsHandler(settingsService settingsservice.Service) SettingsHandler {
	return &SettingsHandlerImpl{settingsService: settingsService}
}

// Get implements SettingsHandler.
func (h *SettingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor := middleware.CurrentUser(r.Context())
	s, err := h.settingsService.Get(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, s)
}

// Update implements SettingsHandler.
func (h *SettingsHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq settings.UpdateSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateSettings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actor := middleware.CurrentUser(r.Context())
	updated, err := h.settingsService.Update(r.Context(), actor, updateReq)
	if err != nil {
		slog.Error("UpdateSettings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings updated", updated)
}
