package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/settings"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/user"
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/database"
)

type Service interface {
	Get(ctx context.Context, actor *user.User) (settings.SettingsResponse, error)
	Update(ctx context.Context, actor *user.User, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error)
}

type SettingsService struct {
	db *database.DB
	settings.Repository
}

func NewSettingsService(db *database.DB, repo settings.Repository) Service {
	return &SettingsService{db: db, Repository: repo}
}

func (s *SettingsService) Get(ctx context.Context, actor *user.User) (settings.SettingsResponse, error) {
	record, err := s.Repository.GetByUserID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Defaults until the user saves something.
			return settings.ToResponse(settings.UserSettings{UserID: actor.ID}), nil
		}
		return settings.SettingsResponse{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings.ToResponse(record), nil
}

func (s *SettingsService) Update(ctx context.Context, actor *user.User, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	record, err := s.Repository.GetByUserID(ctx, actor.ID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return settings.SettingsResponse{}, fmt.Errorf("failed to get settings: %w", err)
	}
	record.UserID = actor.ID

	if req.SummaryText != nil {
		record.SummaryText = req.SummaryText
	}
	if req.SummaryWeeks != nil {
		record.SummaryWeeks = req.SummaryWeeks
	}
	if req.SummaryView != nil {
		record.SummaryView = *req.SummaryView
	}

	updated, err := s.Repository.Upsert(ctx, record)
	if err != nil {
		return settings.SettingsResponse{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return settings.ToResponse(updated), nil
}
