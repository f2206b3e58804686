package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/user"
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userSelect = `
	SELECT u.id, u.email, u.username, u.password_hash, u.created_at, u.updated_at,
		   p.id, p.user_id, p.role, p.is_global_admin, p.created_at, p.updated_at,
		   e.id
	FROM users u
	LEFT JOIN privileges p ON p.user_id = u.id
	LEFT JOIN employees e ON e.user_id = u.id
`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	var privID, privUserID, privRole *string
	var privIsGlobalAdmin *bool
	var privCreatedAt, privUpdatedAt *time.Time

	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
		&privID, &privUserID, &privRole, &privIsGlobalAdmin, &privCreatedAt, &privUpdatedAt,
		&u.EmployeeID,
	)
	if err != nil {
		return user.User{}, err
	}

	if privID != nil {
		u.Privileges = &user.Privileges{
			ID:            *privID,
			UserID:        *privUserID,
			Role:          user.Role(*privRole),
			IsGlobalAdmin: *privIsGlobalAdmin,
		}
		if privCreatedAt != nil {
			u.Privileges.CreatedAt = *privCreatedAt
		}
		if privUpdatedAt != nil {
			u.Privileges.UpdatedAt = *privUpdatedAt
		}
	}
	return u, nil
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (email, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query, u.Email, u.Username, u.PasswordHash).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return user.User{}, user.ErrUserEmailExists
			}
			return user.User{}, user.ErrUsernameExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	row := q.QueryRow(ctx, userSelect+` WHERE u.id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	row := q.QueryRow(ctx, userSelect+` WHERE u.email = $1`, email)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// List implements user.UserRepository.
func (r *userRepository) List(ctx context.Context, filter user.UserFilter) ([]user.User, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.Email != nil {
		where = append(where, fmt.Sprintf("u.email = $%d", argPos))
		args = append(args, *filter.Email)
		argPos++
	}
	if filter.Username != nil {
		where = append(where, fmt.Sprintf("u.username = $%d", argPos))
		args = append(args, *filter.Username)
		argPos++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM users u WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query := userSelect + ` WHERE ` + whereClause + ` ORDER BY u.username`
	query, args = paginate(query, args, argPos, filter.Page, filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

// SetResetToken implements user.UserRepository.
func (r *userRepository) SetResetToken(ctx context.Context, userID, token string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET reset_token = $2, reset_token_created_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, userID, token)
	if err != nil {
		return fmt.Errorf("failed to set reset token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// ConsumeResetToken implements user.UserRepository. Tokens are valid
// for one hour from issuance.
func (r *userRepository) ConsumeResetToken(ctx context.Context, token, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET password_hash = $2, reset_token = NULL, reset_token_created_at = NULL, updated_at = NOW()
		WHERE reset_token = $1 AND reset_token_created_at > NOW() - INTERVAL '1 hour'
	`
	tag, err := q.Exec(ctx, query, token, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to consume reset token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrInvalidResetToken
	}
	return nil
}

// Update implements user.UserRepository.
func (r *userRepository) Update(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET email = $2, username = $3, password_hash = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := q.QueryRow(ctx, query, u.ID, u.Email, u.Username, u.PasswordHash).Scan(&u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to update user: %w", err)
	}
	return u, nil
}
