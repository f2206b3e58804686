package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/auth"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/user"
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/database"
	appjwt "github.com/stafftrack/timeclock-backend-go/internal/pkg/jwt"
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/oauth"
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/password"
)

type Service interface {
	Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
	Refresh(ctx context.Context, req auth.RefreshRequest) (auth.LoginResponse, error)
	Logout(ctx context.Context, refreshToken string)

	// GoogleRedirect starts the terminal OAuth flow; GoogleCallback
	// finishes it and issues tokens for the matching account.
	GoogleRedirect() (url string, state string)
	GoogleCallback(ctx context.Context, code string) (auth.LoginResponse, error)

	// ForgotPassword issues a single-use reset token for the account;
	// ResetPassword consumes it and installs the new password.
	ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error
}

type AuthService struct {
	db *database.DB
	user.UserRepository
	jwtService    appjwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(db *database.DB, userRepo user.UserRepository, jwtService appjwt.Service, googleService oauth.GoogleService) Service {
	return &AuthService{
		db:             db,
		UserRepository: userRepo,
		jwtService:     jwtService,
		googleService:  googleService,
	}
}

func (s *AuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := s.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if u.PasswordHash == nil || !password.Compare(*u.PasswordHash, req.Password) {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

func (s *AuthService) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.LoginResponse, error) {
	if s.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	token, err := jwtauth.VerifyToken(s.jwtService.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrUserNotFound
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	// Refresh tokens are single-use.
	s.jwtService.RevokeToken(req.RefreshToken)

	return s.issueTokens(u)
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
}

func (s *AuthService) GoogleRedirect() (string, string) {
	state := s.googleService.GenerateState()
	return s.googleService.RedirectURL(state), state
}

func (s *AuthService) GoogleCallback(ctx context.Context, code string) (auth.LoginResponse, error) {
	token, err := s.googleService.Exchange(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	gu, err := s.googleService.FetchUser(ctx, token)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to fetch google user: %w", err)
	}
	if !gu.VerifiedEmail {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	u, err := s.UserRepository.GetByEmail(ctx, gu.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, user.ErrUserNotFound) {
			// Accounts are provisioned by managers; OAuth never
			// self-registers.
			return auth.LoginResponse{}, auth.ErrUserNotFound
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return s.issueTokens(u)
}

func (s *AuthService) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := s.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, user.ErrUserNotFound) {
			// Same outward response whether or not the address has an
			// account.
			return nil
		}
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	token := password.GenerateResetToken()
	if err := s.UserRepository.SetResetToken(ctx, u.ID, token); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.UserRepository.ConsumeResetToken(ctx, req.Token, hashed)
}

func (s *AuthService) issueTokens(u user.User) (auth.LoginResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role(), u.IsGlobalAdmin(), u.EmployeeID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return auth.LoginResponse{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshTokenExpiresIn: refreshExp,
	}, nil
}
