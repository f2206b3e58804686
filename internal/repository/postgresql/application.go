package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/application"
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/database"
)

type applicationRepository struct {
	db *database.DB
}

func NewApplicationRepository(db *database.DB) application.Repository {
	return &applicationRepository{db: db}
}

const applicationSelect = `
	SELECT id, name, client_id, redirect_uri, grant_type, created_at, updated_at
	FROM applications
`

func scanApplication(row pgx.Row) (application.Application, error) {
	var a application.Application
	err := row.Scan(&a.ID, &a.Name, &a.ClientID, &a.RedirectURI, &a.GrantType, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// GetByID implements application.Repository.
func (r *applicationRepository) GetByID(ctx context.Context, id string) (application.Application, error) {
	q := GetQuerier(ctx, r.db)
	a, err := scanApplication(q.QueryRow(ctx, applicationSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrApplicationNotFound
		}
		return application.Application{}, fmt.Errorf("failed to get application: %w", err)
	}
	return a, nil
}

// List implements application.Repository.
func (r *applicationRepository) List(ctx context.Context, filter application.Filter) ([]application.Application, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.Name != nil {
		where = append(where, fmt.Sprintf("name ILIKE '%%' || $%d || '%%'", argPos))
		args = append(args, *filter.Name)
		argPos++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM applications WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	query := applicationSelect + ` WHERE ` + whereClause + ` ORDER BY name`
	query, args = paginate(query, args, argPos, filter.Page, filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var result []application.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan application: %w", err)
		}
		result = append(result, a)
	}
	return result, total, rows.Err()
}
