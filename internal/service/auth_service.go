package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/timezone-service/internal/auth"
	"github.com/spec-kit/timezone-service/internal/config"
	"github.com/spec-kit/timezone-service/internal/domain"
	"github.com/spec-kit/timezone-service/internal/events"
	"github.com/spec-kit/timezone-service/internal/repository"
	apperrors "github.com/spec-kit/timezone-service/pkg/util"
)

// ErrUserAlreadyExists rejects registration with an email already on file.
var ErrUserAlreadyExists = apperrors.NewConflict("User already exists", nil)

// ErrInvalidCredentials covers both unknown email and wrong password. Login
// failures are deliberately indistinguishable so the API does not leak which
// accounts exist.
var ErrInvalidCredentials = apperrors.NewUnauthorized("Incorrect email or password")

// AuthData is the result of a successful login.
type AuthData struct {
	UserID    string `json:"userId"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewAuthService builds the service. The signing secret and token lifetime
// come from config once at startup; nothing here reads the environment.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTLHours),
		dispatcher: dispatcher,
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new account and returns its public view. Unknown roles
// are coerced to "user" rather than rejected, matching the stored enum.
func (s *AuthService) Register(ctx context.Context, email, password, role string) (domain.UserView, error) {
	email = domain.NormalizeEmail(email)

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return domain.UserView{}, ErrUserAlreadyExists
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return domain.UserView{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return domain.UserView{}, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         domain.NormalizeRole(role),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Concurrent registration of the same email loses the insert race
		// against the unique index.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return domain.UserView{}, ErrUserAlreadyExists
		}
		return domain.UserView{}, err
	}

	if s.dispatcher != nil {
		s.dispatcher.Publish(ctx, events.EventUserRegistered, events.UserRegisteredPayload{
			UserID: user.ID,
			Email:  user.Email,
			Role:   string(user.Role),
		})
	}
	return user.PublicView(), nil
}

// Login verifies credentials and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthData, error) {
	user, err := s.users.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return AuthData{}, ErrInvalidCredentials
		}
		return AuthData{}, err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return AuthData{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokenMgr.Generate(user.ID, user.Email)
	if err != nil {
		return AuthData{}, err
	}

	if s.dispatcher != nil {
		s.dispatcher.Publish(ctx, events.EventUserLoggedIn, events.UserLoggedInPayload{
			UserID:    user.ID,
			ExpiresAt: expiresAt,
		})
	}
	return AuthData{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// ListUsers returns public views of every account.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.UserView, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]domain.UserView, 0, len(users))
	for i := range users {
		views = append(views, users[i].PublicView())
	}
	return views, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
