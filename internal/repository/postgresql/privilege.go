package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/privilege"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/user"
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/database"
)

type privilegeRepository struct {
	db *database.DB
}

func NewPrivilegeRepository(db *database.DB) privilege.Repository {
	return &privilegeRepository{db: db}
}

const privilegeSelect = `
	SELECT id, user_id, role, is_global_admin, created_at, updated_at
	FROM privileges
`

func scanPrivileges(row pgx.Row) (user.Privileges, error) {
	var p user.Privileges
	err := row.Scan(&p.ID, &p.UserID, &p.Role, &p.IsGlobalAdmin, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// Create implements privilege.Repository.
func (r *privilegeRepository) Create(ctx context.Context, p user.Privileges) (user.Privileges, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO privileges (user_id, role, is_global_admin)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query, p.UserID, p.Role, p.IsGlobalAdmin).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.Privileges{}, user.ErrPrivilegesExist
		}
		return user.Privileges{}, fmt.Errorf("failed to create privileges: %w", err)
	}
	return p, nil
}

// GetByID implements privilege.Repository.
func (r *privilegeRepository) GetByID(ctx context.Context, id string) (user.Privileges, error) {
	q := GetQuerier(ctx, r.db)
	p, err := scanPrivileges(q.QueryRow(ctx, privilegeSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Privileges{}, user.ErrPrivilegesNotFound
		}
		return user.Privileges{}, fmt.Errorf("failed to get privileges: %w", err)
	}
	return p, nil
}

// GetByUserID implements privilege.Repository.
func (r *privilegeRepository) GetByUserID(ctx context.Context, userID string) (user.Privileges, error) {
	q := GetQuerier(ctx, r.db)
	p, err := scanPrivileges(q.QueryRow(ctx, privilegeSelect+` WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Privileges{}, user.ErrPrivilegesNotFound
		}
		return user.Privileges{}, fmt.Errorf("failed to get privileges by user: %w", err)
	}
	return p, nil
}

// List implements privilege.Repository.
func (r *privilegeRepository) List(ctx context.Context, filter privilege.Filter) ([]user.Privileges, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.UserID != nil {
		where = append(where, fmt.Sprintf("user_id = $%d", argPos))
		args = append(args, *filter.UserID)
		argPos++
	}
	if filter.Role != nil {
		where = append(where, fmt.Sprintf("role = $%d", argPos))
		args = append(args, *filter.Role)
		argPos++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM privileges WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count privileges: %w", err)
	}

	query := privilegeSelect + ` WHERE ` + whereClause + ` ORDER BY created_at`
	query, args = paginate(query, args, argPos, filter.Page, filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list privileges: %w", err)
	}
	defer rows.Close()

	var result []user.Privileges
	for rows.Next() {
		p, err := scanPrivileges(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan privileges: %w", err)
		}
		result = append(result, p)
	}
	return result, total, rows.Err()
}

// Update implements privilege.Repository.
func (r *privilegeRepository) Update(ctx context.Context, p user.Privileges) (user.Privileges, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE privileges
		SET role = $1, is_global_admin = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`
	err := q.QueryRow(ctx, query, p.Role, p.IsGlobalAdmin, p.ID).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Privileges{}, user.ErrPrivilegesNotFound
		}
		return user.Privileges{}, fmt.Errorf("failed to update privileges: %w", err)
	}
	return p, nil
}
