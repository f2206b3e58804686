package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/employee"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/workperiod"
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/database"
)

type workPeriodRepository struct {
	db *database.DB
}

func NewWorkPeriodRepository(db *database.DB) workperiod.Repository {
	return &workPeriodRepository{db: db}
}

const workPeriodSelect = `
	SELECT w.id, w.employee_id, w.start_time, w.end_time, w.adjustment,
		   w.note, w.is_deleted, w.created_at, w.updated_at,
		   e.first_name || ' ' || e.last_name, e.user_id
	FROM work_periods w
	JOIN employees e ON e.id = w.employee_id
`

func scanWorkPeriod(row pgx.Row) (workperiod.WorkPeriod, error) {
	var w workperiod.WorkPeriod
	err := row.Scan(
		&w.ID, &w.EmployeeID, &w.StartTime, &w.EndTime, &w.Adjustment,
		&w.Note, &w.IsDeleted, &w.CreatedAt, &w.UpdatedAt,
		&w.EmployeeName, &w.OwnerUserID,
	)
	return w, err
}

// Create implements workperiod.Repository.
func (r *workPeriodRepository) Create(ctx context.Context, w workperiod.WorkPeriod) (workperiod.WorkPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_periods (employee_id, start_time, end_time, adjustment, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query, w.EmployeeID, w.StartTime, w.EndTime, w.Adjustment, w.Note).
		Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return workperiod.WorkPeriod{}, fmt.Errorf("failed to create work period: %w", err)
	}
	return w, nil
}

// GetByID implements workperiod.Repository.
func (r *workPeriodRepository) GetByID(ctx context.Context, id string) (workperiod.WorkPeriod, error) {
	q := GetQuerier(ctx, r.db)
	w, err := scanWorkPeriod(q.QueryRow(ctx, workPeriodSelect+` WHERE w.id = $1 AND NOT w.is_deleted`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workperiod.WorkPeriod{}, workperiod.ErrWorkPeriodNotFound
		}
		return workperiod.WorkPeriod{}, fmt.Errorf("failed to get work period: %w", err)
	}
	return w, nil
}

// List implements workperiod.Repository.
func (r *workPeriodRepository) List(ctx context.Context, filter workperiod.Filter) ([]workperiod.WorkPeriod, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"NOT w.is_deleted"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		where = append(where, fmt.Sprintf("w.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.OwnerUserID != nil {
		where = append(where, fmt.Sprintf("e.user_id = $%d", argPos))
		args = append(args, *filter.OwnerUserID)
		argPos++
	}
	if filter.From != nil {
		where = append(where, fmt.Sprintf("w.start_time >= $%d", argPos))
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		where = append(where, fmt.Sprintf("w.start_time < $%d", argPos))
		args = append(args, *filter.To)
		argPos++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM work_periods w JOIN employees e ON e.id = w.employee_id WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count work periods: %w", err)
	}

	query := workPeriodSelect + ` WHERE ` + whereClause + ` ORDER BY w.start_time DESC`
	query, args = paginate(query, args, argPos, filter.Page, filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list work periods: %w", err)
	}
	defer rows.Close()

	var result []workperiod.WorkPeriod
	for rows.Next() {
		w, err := scanWorkPeriod(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan work period: %w", err)
		}
		result = append(result, w)
	}
	return result, total, rows.Err()
}

// Update implements workperiod.Repository.
func (r *workPeriodRepository) Update(ctx context.Context, w workperiod.WorkPeriod) (workperiod.WorkPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_periods
		SET end_time = $1, adjustment = $2, note = $3, updated_at = NOW()
		WHERE id = $4 AND NOT is_deleted
		RETURNING updated_at
	`
	err := q.QueryRow(ctx, query, w.EndTime, w.Adjustment, w.Note, w.ID).Scan(&w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workperiod.WorkPeriod{}, workperiod.ErrWorkPeriodNotFound
		}
		return workperiod.WorkPeriod{}, fmt.Errorf("failed to update work period: %w", err)
	}
	return w, nil
}

// GetPrevious implements workperiod.Repository.
func (r *workPeriodRepository) GetPrevious(ctx context.Context, employeeID string, t time.Time) (*workperiod.WorkPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := workPeriodSelect + `
		WHERE w.employee_id = $1 AND w.start_time < $2 AND NOT w.is_deleted
		ORDER BY w.start_time DESC
		LIMIT 1
	`
	w, err := scanWorkPeriod(q.QueryRow(ctx, query, employeeID, t))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get previous work period: %w", err)
	}
	return &w, nil
}

// GetNext implements workperiod.Repository.
func (r *workPeriodRepository) GetNext(ctx context.Context, employeeID string, t time.Time) (*workperiod.WorkPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := workPeriodSelect + `
		WHERE w.employee_id = $1 AND w.start_time > $2 AND NOT w.is_deleted
		ORDER BY w.start_time ASC
		LIMIT 1
	`
	w, err := scanWorkPeriod(q.QueryRow(ctx, query, employeeID, t))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get next work period: %w", err)
	}
	return &w, nil
}

// GetLatest implements workperiod.Repository.
func (r *workPeriodRepository) GetLatest(ctx context.Context, employeeID string) (workperiod.WorkPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := workPeriodSelect + `
		WHERE w.employee_id = $1 AND NOT w.is_deleted
		ORDER BY w.start_time DESC
		LIMIT 1
	`
	w, err := scanWorkPeriod(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workperiod.WorkPeriod{}, workperiod.ErrNoWorkPeriods
		}
		return workperiod.WorkPeriod{}, fmt.Errorf("failed to get latest work period: %w", err)
	}
	return w, nil
}

// ListLatest implements workperiod.Repository.
func (r *workPeriodRepository) ListLatest(ctx context.Context, ownerUserID string) ([]workperiod.WorkPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT ON (w.employee_id)
			   w.id, w.employee_id, w.start_time, w.end_time, w.adjustment,
			   w.note, w.is_deleted, w.created_at, w.updated_at,
			   e.first_name || ' ' || e.last_name, e.user_id
		FROM work_periods w
		JOIN employees e ON e.id = w.employee_id
		WHERE NOT w.is_deleted AND ($1 = '' OR e.user_id = $1)
		ORDER BY w.employee_id, w.start_time DESC
	`
	rows, err := q.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest work periods: %w", err)
	}
	defer rows.Close()

	var result []workperiod.WorkPeriod
	for rows.Next() {
		w, err := scanWorkPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work period: %w", err)
		}
		result = append(result, w)
	}
	return result, rows.Err()
}

// LockEmployee implements workperiod.Repository. It must run inside a
// transaction; the row lock serializes all clock writes for the
// employee until commit.
func (r *workPeriodRepository) LockEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	var id string
	err := q.QueryRow(ctx, `SELECT id FROM employees WHERE id = $1 FOR UPDATE`, employeeID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to lock employee: %w", err)
	}
	return nil
}
