package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/access"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/user"
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/database"
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/password"
)

type Service interface {
	Create(ctx context.Context, actor *user.User, req user.CreateUserRequest) (user.CreateUserResponse, error)
	Get(ctx context.Context, actor *user.User, id string) (user.UserResponse, error)
	List(ctx context.Context, actor *user.User, filter user.UserFilter) ([]user.UserResponse, int64, error)
	Update(ctx context.Context, actor *user.User, id string, req user.UpdateUserRequest) (user.UserResponse, error)
	Delete(ctx context.Context, actor *user.User, id string) error
}

type UserService struct {
	db *database.DB
	user.UserRepository
}

func NewUserService(db *database.DB, userRepo user.UserRepository) Service {
	return &UserService{db: db, UserRepository: userRepo}
}

func (s *UserService) Create(ctx context.Context, actor *user.User, req user.CreateUserRequest) (user.CreateUserResponse, error) {
	if err := user.CanCreate(actor); err != nil {
		return user.CreateUserResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return user.CreateUserResponse{}, err
	}

	// New accounts get a random 6-digit temporary password, returned
	// once in the create response.
	temp, err := password.GenerateTemporary()
	if err != nil {
		return user.CreateUserResponse{}, err
	}
	hash, err := password.Hash(temp)
	if err != nil {
		return user.CreateUserResponse{}, err
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: &hash,
	})
	if err != nil {
		return user.CreateUserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user.CreateUserResponse{
		UserResponse:      user.ToResponse(created),
		TemporaryPassword: temp,
	}, nil
}

func (s *UserService) Get(ctx context.Context, actor *user.User, id string) (user.UserResponse, error) {
	if user.ListScope(actor) == access.ScopeOwn && actor.ID != id {
		return user.UserResponse{}, user.ErrUserNotFound
	}
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user.ToResponse(u), nil
}

func (s *UserService) List(ctx context.Context, actor *user.User, filter user.UserFilter) ([]user.UserResponse, int64, error) {
	if user.ListScope(actor) == access.ScopeOwn {
		u, err := s.UserRepository.GetByID(ctx, actor.ID)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to get user: %w", err)
		}
		return []user.UserResponse{user.ToResponse(u)}, 1, nil
	}

	users, total, err := s.UserRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, total, nil
}

func (s *UserService) Update(ctx context.Context, actor *user.User, id string, req user.UpdateUserRequest) (user.UserResponse, error) {
	target, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := user.CanUpdate(actor, &target); err != nil {
		return user.UserResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if req.Email != nil {
		target.Email = *req.Email
	}
	if req.Username != nil {
		target.Username = *req.Username
	}
	if req.Password != nil {
		hash, err := password.Hash(*req.Password)
		if err != nil {
			return user.UserResponse{}, err
		}
		target.PasswordHash = &hash
	}

	updated, err := s.UserRepository.Update(ctx, target)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update user: %w", err)
	}
	return user.ToResponse(updated), nil
}

func (s *UserService) Delete(ctx context.Context, actor *user.User, id string) error {
	return user.CanDelete()
}
