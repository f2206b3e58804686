package privilege

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/access"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/privilege"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/user"
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/database"
)

type Service interface {
	Create(ctx context.Context, actor *user.User, req privilege.WriteRequest) (user.PrivilegesResponse, error)
	Get(ctx context.Context, actor *user.User, id string) (user.PrivilegesResponse, error)
	List(ctx context.Context, actor *user.User, filter privilege.Filter) ([]user.PrivilegesResponse, int64, error)
	Update(ctx context.Context, actor *user.User, id string, req privilege.WriteRequest) (user.PrivilegesResponse, error)
	Delete(ctx context.Context, actor *user.User, id string) error
}

type PrivilegeService struct {
	db *database.DB
	privilege.Repository
}

func NewPrivilegeService(db *database.DB, repo privilege.Repository) Service {
	return &PrivilegeService{db: db, Repository: repo}
}

func (s *PrivilegeService) Create(ctx context.Context, actor *user.User, req privilege.WriteRequest) (user.PrivilegesResponse, error) {
	if err := privilege.CanAccess(actor, access.ActionCreate); err != nil {
		return user.PrivilegesResponse{}, err
	}
	if err := privilege.ValidateWrite(actor, nil, req); err != nil {
		return user.PrivilegesResponse{}, err
	}

	p := user.Privileges{
		UserID: req.UserID,
		Role:   user.RoleEmployee,
	}
	if req.Role != nil {
		p.Role = *req.Role
	}
	if req.IsGlobalAdmin != nil {
		p.IsGlobalAdmin = *req.IsGlobalAdmin
	}

	created, err := s.Repository.Create(ctx, p)
	if err != nil {
		return user.PrivilegesResponse{}, fmt.Errorf("failed to create privileges: %w", err)
	}
	return user.ToPrivilegesResponse(created), nil
}

func (s *PrivilegeService) Get(ctx context.Context, actor *user.User, id string) (user.PrivilegesResponse, error) {
	if err := privilege.CanAccess(actor, access.ActionRead); err != nil {
		return user.PrivilegesResponse{}, err
	}
	p, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.PrivilegesResponse{}, user.ErrPrivilegesNotFound
		}
		return user.PrivilegesResponse{}, fmt.Errorf("failed to get privileges: %w", err)
	}
	// Non-managers only ever see their own record.
	if !actor.IsManager() && p.UserID != actor.ID {
		return user.PrivilegesResponse{}, user.ErrPrivilegesNotFound
	}
	return user.ToPrivilegesResponse(p), nil
}

func (s *PrivilegeService) List(ctx context.Context, actor *user.User, filter privilege.Filter) ([]user.PrivilegesResponse, int64, error) {
	if err := privilege.CanAccess(actor, access.ActionList); err != nil {
		return nil, 0, err
	}
	if !actor.IsManager() {
		filter.UserID = &actor.ID
	}
	records, total, err := s.Repository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list privileges: %w", err)
	}
	responses := make([]user.PrivilegesResponse, 0, len(records))
	for _, p := range records {
		responses = append(responses, user.ToPrivilegesResponse(p))
	}
	return responses, total, nil
}

func (s *PrivilegeService) Update(ctx context.Context, actor *user.User, id string, req privilege.WriteRequest) (user.PrivilegesResponse, error) {
	if err := privilege.CanAccess(actor, access.ActionUpdate); err != nil {
		return user.PrivilegesResponse{}, err
	}

	existing, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.PrivilegesResponse{}, user.ErrPrivilegesNotFound
		}
		return user.PrivilegesResponse{}, fmt.Errorf("failed to get privileges: %w", err)
	}

	if err := privilege.ValidateWrite(actor, &existing, req); err != nil {
		return user.PrivilegesResponse{}, err
	}

	if req.Role != nil {
		existing.Role = *req.Role
	}
	// The guard has already established that any is_global_admin in the
	// payload equals the stored value, so there is nothing to apply.

	updated, err := s.Repository.Update(ctx, existing)
	if err != nil {
		return user.PrivilegesResponse{}, fmt.Errorf("failed to update privileges: %w", err)
	}
	return user.ToPrivilegesResponse(updated), nil
}

func (s *PrivilegeService) Delete(ctx context.Context, actor *user.User, id string) error {
	return privilege.CanDelete()
}
