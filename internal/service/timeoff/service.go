package timeoff

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/access"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/timeoff"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/user"
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/database"
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/validator"
	"github.com/stafftrack/timeclock-backend-go/internal/repository/postgresql"
)

type Service interface {
	// Days off (granted records; manager-only writes).
	CreateDayOff(ctx context.Context, actor *user.User, req timeoff.CreateDayOffRequest) (timeoff.DayOffResponse, error)
	GetDayOff(ctx context.Context, actor *user.User, id string) (timeoff.DayOffResponse, error)
	ListDaysOff(ctx context.Context, actor *user.User, filter timeoff.DayOffFilter) ([]timeoff.DayOffResponse, int64, error)
	UpdateDayOff(ctx context.Context, actor *user.User, id string, req timeoff.UpdateDayOffRequest) (timeoff.DayOffResponse, error)
	DeleteDayOff(ctx context.Context, actor *user.User, id string) error

	// BatchCreateDaysOff creates one day off per date atomically;
	// BatchDeleteDaysOff removes everything linked to a request.
	BatchCreateDaysOff(ctx context.Context, actor *user.User, req timeoff.BatchCreateDaysOffRequest) ([]timeoff.DayOffResponse, error)
	BatchDeleteDaysOff(ctx context.Context, actor *user.User, req timeoff.BatchDeleteDaysOffRequest) (int64, error)

	// Requests (employee self-service plus manager approval).
	CreateRequest(ctx context.Context, actor *user.User, req timeoff.CreateRequestRequest) (timeoff.RequestResponse, error)
	GetRequest(ctx context.Context, actor *user.User, id string) (timeoff.RequestResponse, error)
	ListRequests(ctx context.Context, actor *user.User, filter timeoff.RequestFilter) ([]timeoff.RequestResponse, int64, error)
	UpdateRequest(ctx context.Context, actor *user.User, id string, req timeoff.UpdateRequestRequest) (timeoff.RequestResponse, error)
	DeleteRequest(ctx context.Context, actor *user.User, id string) error
}

type TimeOffService struct {
	db          *database.DB
	dayOffRepo  timeoff.DayOffRepository
	requestRepo timeoff.RequestRepository
}

func NewTimeOffService(db *database.DB, dayOffRepo timeoff.DayOffRepository, requestRepo timeoff.RequestRepository) Service {
	return &TimeOffService{db: db, dayOffRepo: dayOffRepo, requestRepo: requestRepo}
}

func (s *TimeOffService) CreateDayOff(ctx context.Context, actor *user.User, req timeoff.CreateDayOffRequest) (timeoff.DayOffResponse, error) {
	if err := timeoff.CanWriteDayOff(actor); err != nil {
		return timeoff.DayOffResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return timeoff.DayOffResponse{}, err
	}
	date, _ := validator.IsValidDate(req.Date)

	created, err := s.dayOffRepo.Create(ctx, timeoff.DayOff{
		EmployeeID: req.EmployeeID,
		RequestID:  req.RequestID,
		Date:       date,
		Hours:      req.Hours,
		Type:       req.Type,
		IsPaid:     req.IsPaid,
		Note:       req.Note,
		EnteredBy:  actor.ID,
		UpdatedBy:  actor.ID,
	})
	if err != nil {
		return timeoff.DayOffResponse{}, fmt.Errorf("failed to create day off: %w", err)
	}
	return timeoff.ToDayOffResponse(created), nil
}

func (s *TimeOffService) GetDayOff(ctx context.Context, actor *user.User, id string) (timeoff.DayOffResponse, error) {
	d, err := s.dayOffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeoff.DayOffResponse{}, timeoff.ErrDayOffNotFound
		}
		return timeoff.DayOffResponse{}, fmt.Errorf("failed to get day off: %w", err)
	}
	if timeoff.ListScope(actor) == access.ScopeOwn &&
		(d.OwnerUserID == nil || *d.OwnerUserID != actor.ID) {
		return timeoff.DayOffResponse{}, timeoff.ErrDayOffNotFound
	}
	return timeoff.ToDayOffResponse(d), nil
}

func (s *TimeOffService) ListDaysOff(ctx context.Context, actor *user.User, filter timeoff.DayOffFilter) ([]timeoff.DayOffResponse, int64, error) {
	if timeoff.ListScope(actor) == access.ScopeOwn {
		filter.OwnerUserID = &actor.ID
	}
	records, total, err := s.dayOffRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list days off: %w", err)
	}
	responses := make([]timeoff.DayOffResponse, 0, len(records))
	for _, d := range records {
		responses = append(responses, timeoff.ToDayOffResponse(d))
	}
	return responses, total, nil
}

func (s *TimeOffService) UpdateDayOff(ctx context.Context, actor *user.User, id string, req timeoff.UpdateDayOffRequest) (timeoff.DayOffResponse, error) {
	if err := timeoff.CanWriteDayOff(actor); err != nil {
		return timeoff.DayOffResponse{}, err
	}

	existing, err := s.dayOffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeoff.DayOffResponse{}, timeoff.ErrDayOffNotFound
		}
		return timeoff.DayOffResponse{}, fmt.Errorf("failed to get day off: %w", err)
	}

	if req.Date != nil {
		date, ok := validator.IsValidDate(*req.Date)
		if !ok {
			return timeoff.DayOffResponse{}, validator.ValidationErrors{{Field: "date", Message: "date must be in the format 2006-01-02"}}
		}
		existing.Date = date
	}
	if req.Hours != nil {
		existing.Hours = *req.Hours
	}
	if req.Type != nil {
		if !req.Type.Valid() {
			return timeoff.DayOffResponse{}, timeoff.ErrInvalidType
		}
		existing.Type = *req.Type
	}
	if req.IsPaid != nil {
		existing.IsPaid = *req.IsPaid
	}
	if req.Note != nil {
		existing.Note = req.Note
	}
	existing.UpdatedBy = actor.ID

	updated, err := s.dayOffRepo.Update(ctx, existing)
	if err != nil {
		return timeoff.DayOffResponse{}, fmt.Errorf("failed to update day off: %w", err)
	}
	return timeoff.ToDayOffResponse(updated), nil
}

func (s *TimeOffService) DeleteDayOff(ctx context.Context, actor *user.User, id string) error {
	return timeoff.CanDelete()
}

func (s *TimeOffService) BatchCreateDaysOff(ctx context.Context, actor *user.User, req timeoff.BatchCreateDaysOffRequest) ([]timeoff.DayOffResponse, error) {
	if err := timeoff.CanWriteDayOff(actor); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var responses []timeoff.DayOffResponse
	err := s.inTx(ctx, func(ctx context.Context) error {
		for _, dateStr := range req.Dates {
			date, _ := validator.IsValidDate(dateStr)
			created, err := s.dayOffRepo.Create(ctx, timeoff.DayOff{
				EmployeeID: req.EmployeeID,
				RequestID:  req.RequestID,
				Date:       date,
				Hours:      req.Hours,
				Type:       req.Type,
				IsPaid:     req.IsPaid,
				Note:       req.Note,
				EnteredBy:  actor.ID,
				UpdatedBy:  actor.ID,
			})
			if err != nil {
				return fmt.Errorf("failed to create day off for %s: %w", dateStr, err)
			}
			responses = append(responses, timeoff.ToDayOffResponse(created))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

func (s *TimeOffService) BatchDeleteDaysOff(ctx context.Context, actor *user.User, req timeoff.BatchDeleteDaysOffRequest) (int64, error) {
	if err := timeoff.CanWriteDayOff(actor); err != nil {
		return 0, err
	}
	if req.RequestID == "" {
		return 0, validator.ValidationErrors{{Field: "request_id", Message: "request_id is required"}}
	}
	deleted, err := s.dayOffRepo.DeleteByRequestID(ctx, req.RequestID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete days off: %w", err)
	}
	return deleted, nil
}

func (s *TimeOffService) CreateRequest(ctx context.Context, actor *user.User, req timeoff.CreateRequestRequest) (timeoff.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return timeoff.RequestResponse{}, err
	}
	// Non-managers may only request time off for themselves.
	if !actor.IsManager() && (actor.EmployeeID == nil || *actor.EmployeeID != req.EmployeeID) {
		return timeoff.RequestResponse{}, access.Deny("cannot request time off for another employee")
	}
	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	created, err := s.requestRepo.Create(ctx, timeoff.DaysOffRequest{
		EmployeeID: req.EmployeeID,
		StartDate:  start,
		EndDate:    end,
		Type:       req.Type,
		IsPaid:     req.IsPaid,
		Status:     timeoff.StatusPending,
		Note:       req.Note,
		UpdatedBy:  actor.ID,
	})
	if err != nil {
		return timeoff.RequestResponse{}, fmt.Errorf("failed to create days off request: %w", err)
	}
	return timeoff.ToRequestResponse(created), nil
}

func (s *TimeOffService) GetRequest(ctx context.Context, actor *user.User, id string) (timeoff.RequestResponse, error) {
	r, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeoff.RequestResponse{}, timeoff.ErrRequestNotFound
		}
		return timeoff.RequestResponse{}, fmt.Errorf("failed to get days off request: %w", err)
	}
	if err := timeoff.CanActOnRequest(actor, r); err != nil {
		return timeoff.RequestResponse{}, err
	}
	return timeoff.ToRequestResponse(r), nil
}

func (s *TimeOffService) ListRequests(ctx context.Context, actor *user.User, filter timeoff.RequestFilter) ([]timeoff.RequestResponse, int64, error) {
	if timeoff.ListScope(actor) == access.ScopeOwn {
		filter.OwnerUserID = &actor.ID
	}
	records, total, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list days off requests: %w", err)
	}
	responses := make([]timeoff.RequestResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, timeoff.ToRequestResponse(r))
	}
	return responses, total, nil
}

func (s *TimeOffService) UpdateRequest(ctx context.Context, actor *user.User, id string, req timeoff.UpdateRequestRequest) (timeoff.RequestResponse, error) {
	existing, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeoff.RequestResponse{}, timeoff.ErrRequestNotFound
		}
		return timeoff.RequestResponse{}, fmt.Errorf("failed to get days off request: %w", err)
	}

	// Ownership before field inspection; a non-owner non-manager is
	// rejected before the payload is even looked at.
	if err := timeoff.CanActOnRequest(actor, existing); err != nil {
		return timeoff.RequestResponse{}, err
	}
	if err := timeoff.CanChangeStatus(actor, existing, req.Status); err != nil {
		return timeoff.RequestResponse{}, err
	}

	if req.StartDate != nil {
		start, ok := validator.IsValidDate(*req.StartDate)
		if !ok {
			return timeoff.RequestResponse{}, validator.ValidationErrors{{Field: "start_date", Message: "start_date must be in the format 2006-01-02"}}
		}
		existing.StartDate = start
	}
	if req.EndDate != nil {
		end, ok := validator.IsValidDate(*req.EndDate)
		if !ok {
			return timeoff.RequestResponse{}, validator.ValidationErrors{{Field: "end_date", Message: "end_date must be in the format 2006-01-02"}}
		}
		existing.EndDate = end
	}
	if existing.EndDate.Before(existing.StartDate) {
		return timeoff.RequestResponse{}, timeoff.ErrInvalidDates
	}
	if req.Type != nil {
		if !req.Type.Valid() {
			return timeoff.RequestResponse{}, timeoff.ErrInvalidType
		}
		existing.Type = *req.Type
	}
	if req.IsPaid != nil {
		existing.IsPaid = *req.IsPaid
	}
	if req.Status != nil {
		existing.Status = *req.Status
	}
	if req.Note != nil {
		existing.Note = req.Note
	}
	if req.Seen != nil && *req.Seen && !existing.Seen {
		existing.Seen = true
		now := time.Now()
		existing.SeenAt = &now
	}
	existing.UpdatedBy = actor.ID

	updated, err := s.requestRepo.Update(ctx, existing)
	if err != nil {
		return timeoff.RequestResponse{}, fmt.Errorf("failed to update days off request: %w", err)
	}
	return timeoff.ToRequestResponse(updated), nil
}

func (s *TimeOffService) DeleteRequest(ctx context.Context, actor *user.User, id string) error {
	return timeoff.CanDelete()
}

func (s *TimeOffService) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		return fn(postgresql.ContextWithTx(ctx, tx))
	})
}
