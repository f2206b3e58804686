package workperiod

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/access"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/employee"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/user"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/workperiod"
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/database"
	"github.com/stafftrack/timeclock-backend-go/internal/repository/postgresql"
)

type Service interface {
	Create(ctx context.Context, actor *user.User, req workperiod.CreateWorkPeriodRequest) (workperiod.WorkPeriodResponse, error)
	Get(ctx context.Context, actor *user.User, id string) (workperiod.WorkPeriodResponse, error)
	List(ctx context.Context, actor *user.User, filter workperiod.Filter) ([]workperiod.WorkPeriodResponse, int64, error)
	Update(ctx context.Context, actor *user.User, id string, req workperiod.UpdateWorkPeriodRequest) (workperiod.WorkPeriodResponse, error)
	Delete(ctx context.Context, actor *user.User, id string) error

	// Terminal kiosk actions.
	ClockIn(ctx context.Context, actor *user.User, req workperiod.ClockInRequest) (workperiod.WorkPeriodResponse, error)
	ClockOut(ctx context.Context, actor *user.User, id string) (workperiod.WorkPeriodResponse, error)

	// Mine lists the caller's own periods regardless of role.
	Mine(ctx context.Context, actor *user.User, filter workperiod.Filter) ([]workperiod.WorkPeriodResponse, int64, error)

	// Latest returns the most recent period for one employee, or for
	// every employee in the caller's visible scope when employeeID is
	// nil.
	Latest(ctx context.Context, actor *user.User, employeeID *string) ([]workperiod.WorkPeriodResponse, error)
}

type WorkPeriodService struct {
	db *database.DB
	workperiod.Repository
	employeeRepo employee.Repository

	// now is swappable for tests; stored clock stamps are truncated to
	// the minute.
	now func() time.Time
}

func NewWorkPeriodService(db *database.DB, repo workperiod.Repository, employeeRepo employee.Repository) *WorkPeriodService {
	return &WorkPeriodService{
		db:           db,
		Repository:   repo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// WithClock overrides the wall clock; tests use it to pin time.
func (s *WorkPeriodService) WithClock(now func() time.Time) *WorkPeriodService {
	s.now = now
	return s
}

func (s *WorkPeriodService) Create(ctx context.Context, actor *user.User, req workperiod.CreateWorkPeriodRequest) (workperiod.WorkPeriodResponse, error) {
	if err := workperiod.CanWrite(actor); err != nil {
		return workperiod.WorkPeriodResponse{}, err
	}
	return s.create(ctx, actor, req)
}

// create runs the overlap guard and insert under the per-employee lock.
// Shared by manual creation and clock-in, which have different
// authorization gates.
func (s *WorkPeriodService) create(ctx context.Context, actor *user.User, req workperiod.CreateWorkPeriodRequest) (workperiod.WorkPeriodResponse, error) {
	if req.StartTime == nil {
		return workperiod.WorkPeriodResponse{}, workperiod.ErrStartTimeRequired
	}

	var created workperiod.WorkPeriod
	err := s.inTx(ctx, func(ctx context.Context) error {
		if err := s.Repository.LockEmployee(ctx, req.EmployeeID); err != nil {
			return fmt.Errorf("failed to lock employee: %w", err)
		}

		previous, err := s.Repository.GetPrevious(ctx, req.EmployeeID, *req.StartTime)
		if err != nil {
			return fmt.Errorf("failed to get previous work period: %w", err)
		}
		var next *workperiod.WorkPeriod
		if req.EndTime != nil {
			next, err = s.Repository.GetNext(ctx, req.EmployeeID, *req.StartTime)
			if err != nil {
				return fmt.Errorf("failed to get next work period: %w", err)
			}
		}

		if err := workperiod.ValidateCreate(req, previous, next); err != nil {
			return err
		}

		created, err = s.Repository.Create(ctx, workperiod.WorkPeriod{
			EmployeeID: req.EmployeeID,
			StartTime:  *req.StartTime,
			EndTime:    req.EndTime,
			Adjustment: req.Adjustment,
			Note:       req.Note,
		})
		if err != nil {
			return fmt.Errorf("failed to create work period: %w", err)
		}
		return nil
	})
	if err != nil {
		return workperiod.WorkPeriodResponse{}, err
	}
	return workperiod.ToResponse(created), nil
}

func (s *WorkPeriodService) Get(ctx context.Context, actor *user.User, id string) (workperiod.WorkPeriodResponse, error) {
	w, err := s.getVisible(ctx, actor, id)
	if err != nil {
		return workperiod.WorkPeriodResponse{}, err
	}
	return workperiod.ToResponse(w), nil
}

func (s *WorkPeriodService) List(ctx context.Context, actor *user.User, filter workperiod.Filter) ([]workperiod.WorkPeriodResponse, int64, error) {
	if workperiod.ListScope(actor) == access.ScopeOwn {
		filter.OwnerUserID = &actor.ID
	}
	periods, total, err := s.Repository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list work periods: %w", err)
	}
	return toResponses(periods), total, nil
}

func (s *WorkPeriodService) Update(ctx context.Context, actor *user.User, id string, req workperiod.UpdateWorkPeriodRequest) (workperiod.WorkPeriodResponse, error) {
	if err := workperiod.CanWrite(actor); err != nil {
		return workperiod.WorkPeriodResponse{}, err
	}

	var updated workperiod.WorkPeriod
	err := s.inTx(ctx, func(ctx context.Context) error {
		existing, err := s.Repository.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return workperiod.ErrWorkPeriodNotFound
			}
			return fmt.Errorf("failed to get work period: %w", err)
		}

		if err := s.Repository.LockEmployee(ctx, existing.EmployeeID); err != nil {
			return fmt.Errorf("failed to lock employee: %w", err)
		}

		if err := workperiod.ValidateUpdate(existing, req, s.now()); err != nil {
			return err
		}

		if req.EndTime != nil {
			existing.EndTime = req.EndTime
		}
		if req.Adjustment != nil {
			existing.Adjustment = req.Adjustment
		}
		if req.Note != nil {
			existing.Note = req.Note
		}

		updated, err = s.Repository.Update(ctx, existing)
		if err != nil {
			return fmt.Errorf("failed to update work period: %w", err)
		}
		return nil
	})
	if err != nil {
		return workperiod.WorkPeriodResponse{}, err
	}
	return workperiod.ToResponse(updated), nil
}

func (s *WorkPeriodService) Delete(ctx context.Context, actor *user.User, id string) error {
	return workperiod.CanDelete()
}

func (s *WorkPeriodService) ClockIn(ctx context.Context, actor *user.User, req workperiod.ClockInRequest) (workperiod.WorkPeriodResponse, error) {
	if err := workperiod.CanClock(actor); err != nil {
		return workperiod.WorkPeriodResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workperiod.WorkPeriodResponse{}, employee.ErrEmployeeNotFound
		}
		return workperiod.WorkPeriodResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	start := workperiod.TruncateClock(s.now())
	return s.create(ctx, actor, workperiod.CreateWorkPeriodRequest{
		EmployeeID: req.EmployeeID,
		StartTime:  &start,
	})
}

func (s *WorkPeriodService) ClockOut(ctx context.Context, actor *user.User, id string) (workperiod.WorkPeriodResponse, error) {
	if err := workperiod.CanClock(actor); err != nil {
		return workperiod.WorkPeriodResponse{}, err
	}

	end := workperiod.TruncateClock(s.now())

	var updated workperiod.WorkPeriod
	err := s.inTx(ctx, func(ctx context.Context) error {
		target, err := s.Repository.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return workperiod.ErrWorkPeriodNotFound
			}
			return fmt.Errorf("failed to get work period: %w", err)
		}

		if err := s.Repository.LockEmployee(ctx, target.EmployeeID); err != nil {
			return fmt.Errorf("failed to lock employee: %w", err)
		}

		// Re-read under the lock: two terminals racing to clock out
		// the same employee must not both succeed.
		latest, err := s.Repository.GetLatest(ctx, target.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to get latest work period: %w", err)
		}
		if latest.ID == target.ID && !latest.Open() {
			return workperiod.ErrAlreadyClockedOut
		}

		if err := workperiod.ValidateUpdate(target, workperiod.UpdateWorkPeriodRequest{EndTime: &end}, s.now()); err != nil {
			return err
		}

		target.EndTime = &end
		updated, err = s.Repository.Update(ctx, target)
		if err != nil {
			return fmt.Errorf("failed to update work period: %w", err)
		}
		return nil
	})
	if err != nil {
		return workperiod.WorkPeriodResponse{}, err
	}
	return workperiod.ToResponse(updated), nil
}

func (s *WorkPeriodService) Mine(ctx context.Context, actor *user.User, filter workperiod.Filter) ([]workperiod.WorkPeriodResponse, int64, error) {
	filter.OwnerUserID = &actor.ID
	periods, total, err := s.Repository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list work periods: %w", err)
	}
	return toResponses(periods), total, nil
}

func (s *WorkPeriodService) Latest(ctx context.Context, actor *user.User, employeeID *string) ([]workperiod.WorkPeriodResponse, error) {
	if employeeID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *employeeID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, employee.ErrEmployeeNotFound
			}
			return nil, fmt.Errorf("failed to get employee: %w", err)
		}
		latest, err := s.Repository.GetLatest(ctx, *employeeID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, workperiod.ErrNoWorkPeriods) {
				return nil, workperiod.ErrNoWorkPeriods
			}
			return nil, fmt.Errorf("failed to get latest work period: %w", err)
		}
		if workperiod.ListScope(actor) == access.ScopeOwn &&
			(latest.OwnerUserID == nil || *latest.OwnerUserID != actor.ID) {
			return nil, workperiod.ErrNoWorkPeriods
		}
		return []workperiod.WorkPeriodResponse{workperiod.ToResponse(latest)}, nil
	}

	ownerUserID := ""
	if workperiod.ListScope(actor) == access.ScopeOwn {
		ownerUserID = actor.ID
	}
	// Employees without any period are silently absent from the batch.
	periods, err := s.Repository.ListLatest(ctx, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest work periods: %w", err)
	}
	responses := toResponses(periods)
	return responses, nil
}

func (s *WorkPeriodService) getVisible(ctx context.Context, actor *user.User, id string) (workperiod.WorkPeriod, error) {
	w, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workperiod.WorkPeriod{}, workperiod.ErrWorkPeriodNotFound
		}
		return workperiod.WorkPeriod{}, fmt.Errorf("failed to get work period: %w", err)
	}
	if workperiod.ListScope(actor) == access.ScopeOwn &&
		(w.OwnerUserID == nil || *w.OwnerUserID != actor.ID) {
		return workperiod.WorkPeriod{}, workperiod.ErrWorkPeriodNotFound
	}
	return w, nil
}

// inTx brackets fn in a database transaction; with a nil db (in-memory
// repositories in tests) fn runs directly.
func (s *WorkPeriodService) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		return fn(postgresql.ContextWithTx(ctx, tx))
	})
}

func toResponses(periods []workperiod.WorkPeriod) []workperiod.WorkPeriodResponse {
	responses := make([]workperiod.WorkPeriodResponse, 0, len(periods))
	for _, w := range periods {
		responses = append(responses, workperiod.ToResponse(w))
	}
	return responses
}
