package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/access"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/employee"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/user"
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/database"
)

type Service interface {
	Create(ctx context.Context, actor *user.User, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	Get(ctx context.Context, actor *user.User, id string) (employee.EmployeeResponse, error)

	// List returns full records for managers and record owners;
	// terminals receive the reduced roster through ListForTerminal.
	List(ctx context.Context, actor *user.User, filter employee.Filter) ([]employee.EmployeeResponse, int64, error)
	ListForTerminal(ctx context.Context, actor *user.User, filter employee.Filter) ([]employee.TerminalEmployeeResponse, int64, error)

	Update(ctx context.Context, actor *user.User, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	Delete(ctx context.Context, actor *user.User, id string) error
}

type EmployeeService struct {
	db *database.DB
	employee.Repository
}

func NewEmployeeService(db *database.DB, repo employee.Repository) Service {
	return &EmployeeService{db: db, Repository: repo}
}

func (s *EmployeeService) Create(ctx context.Context, actor *user.User, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := employee.CanCreate(actor); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Audit stamping happens here, from the authenticated principal,
	// never from the payload.
	created, err := s.Repository.Create(ctx, employee.Employee{
		UserID:           req.UserID,
		PayrollID:        req.PayrollID,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		SSN:              req.SSN,
		PrimaryPhone:     req.PrimaryPhone,
		SecondaryPhone:   req.SecondaryPhone,
		AddressStreet:    req.AddressStreet,
		AddressSecondary: req.AddressSecondary,
		City:             req.City,
		State:            req.State,
		PostalCode:       req.PostalCode,
		IsActive:         true,
		CreatedBy:        actor.ID,
		UpdatedBy:        actor.ID,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee.ToResponse(created), nil
}

func (s *EmployeeService) Get(ctx context.Context, actor *user.User, id string) (employee.EmployeeResponse, error) {
	e, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if employee.ListScope(actor) == access.ScopeOwn && e.OwnerID() != actor.ID {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}
	return employee.ToResponse(e), nil
}

func (s *EmployeeService) List(ctx context.Context, actor *user.User, filter employee.Filter) ([]employee.EmployeeResponse, int64, error) {
	if employee.ListScope(actor) == access.ScopeOwn {
		filter.UserID = &actor.ID
	}
	employees, total, err := s.Repository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, total, nil
}

func (s *EmployeeService) ListForTerminal(ctx context.Context, actor *user.User, filter employee.Filter) ([]employee.TerminalEmployeeResponse, int64, error) {
	if employee.ListScope(actor) == access.ScopeOwn {
		filter.UserID = &actor.ID
	}
	employees, total, err := s.Repository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	responses := make([]employee.TerminalEmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToTerminalResponse(e))
	}
	return responses, total, nil
}

func (s *EmployeeService) Update(ctx context.Context, actor *user.User, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	existing, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	// Non-managers may only reach their own record.
	if employee.ListScope(actor) == access.ScopeOwn && existing.OwnerID() != actor.ID {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	if err := employee.CanUpdate(actor, existing, req); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	applyUpdate(&existing, req)
	existing.UpdatedBy = actor.ID

	updated, err := s.Repository.Update(ctx, existing)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee.ToResponse(updated), nil
}

func (s *EmployeeService) Delete(ctx context.Context, actor *user.User, id string) error {
	return employee.CanDelete()
}

func applyUpdate(e *employee.Employee, req employee.UpdateEmployeeRequest) {
	if req.PayrollID != nil {
		e.PayrollID = req.PayrollID
	}
	if req.FirstName != nil {
		e.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		e.LastName = *req.LastName
	}
	if req.SSN != nil {
		e.SSN = req.SSN
	}
	if req.PrimaryPhone != nil {
		e.PrimaryPhone = *req.PrimaryPhone
	}
	if req.SecondaryPhone != nil {
		e.SecondaryPhone = req.SecondaryPhone
	}
	if req.AddressStreet != nil {
		e.AddressStreet = *req.AddressStreet
	}
	if req.AddressSecondary != nil {
		e.AddressSecondary = req.AddressSecondary
	}
	if req.City != nil {
		e.City = *req.City
	}
	if req.State != nil {
		e.State = *req.State
	}
	if req.PostalCode != nil {
		e.PostalCode = *req.PostalCode
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}
}
