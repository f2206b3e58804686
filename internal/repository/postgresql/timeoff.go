package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/timeoff"
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/database"
)

type dayOffRepository struct {
	db *database.DB
}

func NewDayOffRepository(db *database.DB) timeoff.DayOffRepository {
	return &dayOffRepository{db: db}
}

const dayOffSelect = `
	SELECT d.id, d.employee_id, d.request_id, d.date, d.hours, d.type,
		   d.is_paid, d.note, d.entered_by, d.entered_at, d.updated_by, d.updated_at,
		   e.user_id
	FROM days_off d
	JOIN employees e ON e.id = d.employee_id
`

func scanDayOff(row pgx.Row) (timeoff.DayOff, error) {
	var d timeoff.DayOff
	err := row.Scan(
		&d.ID, &d.EmployeeID, &d.RequestID, &d.Date, &d.Hours, &d.Type,
		&d.IsPaid, &d.Note, &d.EnteredBy, &d.EnteredAt, &d.UpdatedBy, &d.UpdatedAt,
		&d.OwnerUserID,
	)
	return d, err
}

// Create implements timeoff.DayOffRepository.
func (r *dayOffRepository) Create(ctx context.Context, d timeoff.DayOff) (timeoff.DayOff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO days_off (employee_id, request_id, date, hours, type, is_paid, note, entered_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, entered_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		d.EmployeeID, d.RequestID, d.Date, d.Hours, d.Type, d.IsPaid, d.Note, d.EnteredBy, d.UpdatedBy,
	).Scan(&d.ID, &d.EnteredAt, &d.UpdatedAt)
	if err != nil {
		return timeoff.DayOff{}, fmt.Errorf("failed to create day off: %w", err)
	}
	return d, nil
}

// GetByID implements timeoff.DayOffRepository.
func (r *dayOffRepository) GetByID(ctx context.Context, id string) (timeoff.DayOff, error) {
	q := GetQuerier(ctx, r.db)
	d, err := scanDayOff(q.QueryRow(ctx, dayOffSelect+` WHERE d.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeoff.DayOff{}, timeoff.ErrDayOffNotFound
		}
		return timeoff.DayOff{}, fmt.Errorf("failed to get day off: %w", err)
	}
	return d, nil
}

// List implements timeoff.DayOffRepository.
func (r *dayOffRepository) List(ctx context.Context, filter timeoff.DayOffFilter) ([]timeoff.DayOff, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		where = append(where, fmt.Sprintf("d.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.OwnerUserID != nil {
		where = append(where, fmt.Sprintf("e.user_id = $%d", argPos))
		args = append(args, *filter.OwnerUserID)
		argPos++
	}
	if filter.RequestID != nil {
		where = append(where, fmt.Sprintf("d.request_id = $%d", argPos))
		args = append(args, *filter.RequestID)
		argPos++
	}
	if filter.From != nil {
		where = append(where, fmt.Sprintf("d.date >= $%d", argPos))
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		where = append(where, fmt.Sprintf("d.date <= $%d", argPos))
		args = append(args, *filter.To)
		argPos++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM days_off d JOIN employees e ON e.id = d.employee_id WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count days off: %w", err)
	}

	query := dayOffSelect + ` WHERE ` + whereClause + ` ORDER BY d.date DESC`
	query, args = paginate(query, args, argPos, filter.Page, filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list days off: %w", err)
	}
	defer rows.Close()

	var result []timeoff.DayOff
	for rows.Next() {
		d, err := scanDayOff(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan day off: %w", err)
		}
		result = append(result, d)
	}
	return result, total, rows.Err()
}

// Update implements timeoff.DayOffRepository.
func (r *dayOffRepository) Update(ctx context.Context, d timeoff.DayOff) (timeoff.DayOff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE days_off
		SET date = $1, hours = $2, type = $3, is_paid = $4, note = $5,
			updated_by = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`
	err := q.QueryRow(ctx, query, d.Date, d.Hours, d.Type, d.IsPaid, d.Note, d.UpdatedBy, d.ID).
		Scan(&d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeoff.DayOff{}, timeoff.ErrDayOffNotFound
		}
		return timeoff.DayOff{}, fmt.Errorf("failed to update day off: %w", err)
	}
	return d, nil
}

// DeleteByRequestID implements timeoff.DayOffRepository.
func (r *dayOffRepository) DeleteByRequestID(ctx context.Context, requestID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM days_off WHERE request_id = $1`, requestID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete days off for request: %w", err)
	}
	return tag.RowsAffected(), nil
}

type requestRepository struct {
	db *database.DB
}

func NewRequestRepository(db *database.DB) timeoff.RequestRepository {
	return &requestRepository{db: db}
}

const requestSelect = `
	SELECT r.id, r.employee_id, r.start_date, r.end_date, r.type, r.is_paid,
		   r.status, r.note, r.seen, r.seen_at, r.requested_at, r.updated_by, r.updated_at,
		   e.user_id
	FROM days_off_requests r
	JOIN employees e ON e.id = r.employee_id
`

func scanRequest(row pgx.Row) (timeoff.DaysOffRequest, error) {
	var dr timeoff.DaysOffRequest
	err := row.Scan(
		&dr.ID, &dr.EmployeeID, &dr.StartDate, &dr.EndDate, &dr.Type, &dr.IsPaid,
		&dr.Status, &dr.Note, &dr.Seen, &dr.SeenAt, &dr.RequestedAt, &dr.UpdatedBy, &dr.UpdatedAt,
		&dr.OwnerUserID,
	)
	return dr, err
}

// Create implements timeoff.RequestRepository.
func (r *requestRepository) Create(ctx context.Context, dr timeoff.DaysOffRequest) (timeoff.DaysOffRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO days_off_requests (employee_id, start_date, end_date, type, is_paid, status, note, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, requested_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		dr.EmployeeID, dr.StartDate, dr.EndDate, dr.Type, dr.IsPaid, dr.Status, dr.Note, dr.UpdatedBy,
	).Scan(&dr.ID, &dr.RequestedAt, &dr.UpdatedAt)
	if err != nil {
		return timeoff.DaysOffRequest{}, fmt.Errorf("failed to create days off request: %w", err)
	}
	return dr, nil
}

// GetByID implements timeoff.RequestRepository.
func (r *requestRepository) GetByID(ctx context.Context, id string) (timeoff.DaysOffRequest, error) {
	q := GetQuerier(ctx, r.db)
	dr, err := scanRequest(q.QueryRow(ctx, requestSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeoff.DaysOffRequest{}, timeoff.ErrRequestNotFound
		}
		return timeoff.DaysOffRequest{}, fmt.Errorf("failed to get days off request: %w", err)
	}
	return dr, nil
}

// List implements timeoff.RequestRepository.
func (r *requestRepository) List(ctx context.Context, filter timeoff.RequestFilter) ([]timeoff.DaysOffRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		where = append(where, fmt.Sprintf("r.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.OwnerUserID != nil {
		where = append(where, fmt.Sprintf("e.user_id = $%d", argPos))
		args = append(args, *filter.OwnerUserID)
		argPos++
	}
	if filter.Status != nil {
		where = append(where, fmt.Sprintf("r.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.Seen != nil {
		where = append(where, fmt.Sprintf("r.seen = $%d", argPos))
		args = append(args, *filter.Seen)
		argPos++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM days_off_requests r JOIN employees e ON e.id = r.employee_id WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count days off requests: %w", err)
	}

	query := requestSelect + ` WHERE ` + whereClause + ` ORDER BY r.requested_at DESC`
	query, args = paginate(query, args, argPos, filter.Page, filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list days off requests: %w", err)
	}
	defer rows.Close()

	var result []timeoff.DaysOffRequest
	for rows.Next() {
		dr, err := scanRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan days off request: %w", err)
		}
		result = append(result, dr)
	}
	return result, total, rows.Err()
}

// Update implements timeoff.RequestRepository.
func (r *requestRepository) Update(ctx context.Context, dr timeoff.DaysOffRequest) (timeoff.DaysOffRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE days_off_requests
		SET start_date = $1, end_date = $2, type = $3, is_paid = $4,
			status = $5, note = $6, seen = $7, seen_at = $8,
			updated_by = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at
	`
	err := q.QueryRow(ctx, query,
		dr.StartDate, dr.EndDate, dr.Type, dr.IsPaid,
		dr.Status, dr.Note, dr.Seen, dr.SeenAt,
		dr.UpdatedBy, dr.ID,
	).Scan(&dr.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeoff.DaysOffRequest{}, timeoff.ErrRequestNotFound
		}
		return timeoff.DaysOffRequest{}, fmt.Errorf("failed to update days off request: %w", err)
	}
	return dr, nil
}
