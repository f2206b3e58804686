package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/employee"
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{db: db}
}

const employeeSelect = `
	SELECT id, user_id, payroll_id, first_name, last_name, ssn,
		   primary_phone, secondary_phone, address_street, address_secondary,
		   city, state, postal_code, is_active,
		   created_by, created_at, updated_by, updated_at
	FROM employees
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.UserID, &e.PayrollID, &e.FirstName, &e.LastName, &e.SSN,
		&e.PrimaryPhone, &e.SecondaryPhone, &e.AddressStreet, &e.AddressSecondary,
		&e.City, &e.State, &e.PostalCode, &e.IsActive,
		&e.CreatedBy, &e.CreatedAt, &e.UpdatedBy, &e.UpdatedAt,
	)
	return e, err
}

// Create implements employee.Repository.
func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			user_id, payroll_id, first_name, last_name, ssn,
			primary_phone, secondary_phone, address_street, address_secondary,
			city, state, postal_code, is_active, created_by, updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		e.UserID, e.PayrollID, e.FirstName, e.LastName, e.SSN,
		e.PrimaryPhone, e.SecondaryPhone, e.AddressStreet, e.AddressSecondary,
		e.City, e.State, e.PostalCode, e.IsActive, e.CreatedBy, e.UpdatedBy,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "ssn") {
				return employee.Employee{}, employee.ErrSSNExists
			}
			return employee.Employee{}, employee.ErrUserHasEmployee
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return e, nil
}

// GetByID implements employee.Repository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	e, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

// GetByUserID implements employee.Repository.
func (r *employeeRepository) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	e, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by user: %w", err)
	}
	return e, nil
}

// List implements employee.Repository.
func (r *employeeRepository) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.UserID != nil {
		where = append(where, fmt.Sprintf("user_id = $%d", argPos))
		args = append(args, *filter.UserID)
		argPos++
	}
	if filter.IsActive != nil {
		where = append(where, fmt.Sprintf("is_active = $%d", argPos))
		args = append(args, *filter.IsActive)
		argPos++
	}
	if filter.LastName != nil {
		where = append(where, fmt.Sprintf("last_name ILIKE '%%' || $%d || '%%'", argPos))
		args = append(args, *filter.LastName)
		argPos++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := employeeSelect + ` WHERE ` + whereClause + ` ORDER BY last_name, first_name`
	query, args = paginate(query, args, argPos, filter.Page, filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var result []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		result = append(result, e)
	}
	return result, total, rows.Err()
}

// Update implements employee.Repository.
func (r *employeeRepository) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET payroll_id = $1, first_name = $2, last_name = $3, ssn = $4,
			primary_phone = $5, secondary_phone = $6,
			address_street = $7, address_secondary = $8,
			city = $9, state = $10, postal_code = $11, is_active = $12,
			updated_by = $13, updated_at = NOW()
		WHERE id = $14
		RETURNING updated_at
	`
	err := q.QueryRow(ctx, query,
		e.PayrollID, e.FirstName, e.LastName, e.SSN,
		e.PrimaryPhone, e.SecondaryPhone,
		e.AddressStreet, e.AddressSecondary,
		e.City, e.State, e.PostalCode, e.IsActive,
		e.UpdatedBy, e.ID,
	).Scan(&e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrSSNExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return e, nil
}
