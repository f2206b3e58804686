package settings

import (
	"context"
	"errors"
	"time"
)

// UserSettings holds display preferences only; it carries no
// access-control weight.
type UserSettings struct {
	ID           string
	UserID       string
	SummaryText  *string
	SummaryWeeks *int
	SummaryView  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

var ErrSettingsNotFound = errors.New("user settings not found")

type Repository interface {
	GetByUserID(ctx context.Context, userID string) (UserSettings, error)
	Upsert(ctx context.Context, s UserSettings) (UserSettings, error)
}

type UpdateSettingsRequest struct {
	SummaryText  *string `json:"summary_text,omitempty"`
	SummaryWeeks *int    `json:"summary_weeks,omitempty"`
	SummaryView  *bool   `json:"summary_view,omitempty"`
}

type SettingsResponse struct {
	UserID       string  `json:"user_id"`
	SummaryText  *string `json:"summary_text,omitempty"`
	SummaryWeeks *int    `json:"summary_weeks,omitempty"`
	SummaryView  bool    `json:"summary_view"`
}

func ToResponse(s UserSettings) SettingsResponse {
	return SettingsResponse{
		UserID:       s.UserID,
		SummaryText:  s.SummaryText,
		SummaryWeeks: s.SummaryWeeks,
		SummaryView:  s.SummaryView,
	}
}
