package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/settings"
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/database"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.Repository {
	return &settingsRepository{db: db}
}

// GetByUserID implements settings.Repository.
func (r *settingsRepository) GetByUserID(ctx context.Context, userID string) (settings.UserSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, summary_text, summary_weeks, summary_view, created_at, updated_at
		FROM user_settings
		WHERE user_id = $1
	`
	var s settings.UserSettings
	err := q.QueryRow(ctx, query, userID).
		Scan(&s.ID, &s.UserID, &s.SummaryText, &s.SummaryWeeks, &s.SummaryView, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.UserSettings{}, settings.ErrSettingsNotFound
		}
		return settings.UserSettings{}, fmt.Errorf("failed to get user settings: %w", err)
	}
	return s, nil
}

// Upsert implements settings.Repository.
func (r *settingsRepository) Upsert(ctx context.Context, s settings.UserSettings) (settings.UserSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_settings (user_id, summary_text, summary_weeks, summary_view)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET summary_text = EXCLUDED.summary_text,
			summary_weeks = EXCLUDED.summary_weeks,
			summary_view = EXCLUDED.summary_view,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query, s.UserID, s.SummaryText, s.SummaryWeeks, s.SummaryView).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return settings.UserSettings{}, fmt.Errorf("failed to upsert user settings: %w", err)
	}
	return s, nil
}
