package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/timezone-service/internal/api/http"
	"github.com/spec-kit/timezone-service/internal/api/http/handlers"
	"github.com/spec-kit/timezone-service/internal/auth"
	"github.com/spec-kit/timezone-service/internal/config"
	"github.com/spec-kit/timezone-service/internal/domain"
	"github.com/spec-kit/timezone-service/internal/observability"
	"github.com/spec-kit/timezone-service/internal/repository"
	"github.com/spec-kit/timezone-service/internal/service"
)

// memoryUserRepo is an in-memory stand-in for the Postgres repository,
// including its case-insensitive unique index on email.
type memoryUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
	next  int
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*domain.User)}
}

func (r *memoryUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := domain.NormalizeEmail(user.Email)
	if _, exists := r.users[key]; exists {
		return repository.ErrDuplicateEmail
	}
	r.next++
	user.ID = fmt.Sprintf("user-%d", r.next)
	user.CreatedAt = time.Now()
	stored := *user
	r.users[key] = &stored
	return nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[domain.NormalizeEmail(email)]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryUserRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, *user)
	}
	return users, nil
}

// memoryTimezoneRepo is an in-memory stand-in for the timezone repository.
type memoryTimezoneRepo struct {
	mu        sync.Mutex
	timezones []domain.Timezone
}

func (r *memoryTimezoneRepo) Create(_ context.Context, timezone *domain.Timezone) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	timezone.ID = fmt.Sprintf("tz-%d", len(r.timezones)+1)
	timezone.CreatedAt = time.Now()
	r.timezones = append(r.timezones, *timezone)
	return nil
}

func (r *memoryTimezoneRepo) GetByID(_ context.Context, id string) (*domain.Timezone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.timezones {
		if r.timezones[i].ID == id {
			copied := r.timezones[i]
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryTimezoneRepo) List(_ context.Context) ([]domain.Timezone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Timezone{}, r.timezones...), nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.AuthConfig{JWTSecret: "test-secret", TokenTTLHours: 1, BcryptCost: 4}
	authService := service.NewAuthService(cfg, newMemoryUserRepo(), nil)
	timezoneService := service.NewTimezoneService(&memoryTimezoneRepo{}, nil, nil)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(),
		auth.NewIdentityResolver(authService.TokenManager()), 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler("timezone-service", "test", nil, nil),
		Users:     handlers.NewUsersHandler(authService),
		Timezones: handlers.NewTimezonesHandler(timezoneService),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, headers map[string]string) (*http.Response, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestRegisterThenLogin(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/auth/register",
		map[string]string{"email": "a@b.com", "password": "secret123"}, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	view := body["data"].(map[string]any)
	assert.NotEmpty(t, view["_id"])
	assert.Equal(t, "a@b.com", view["email"])
	assert.Equal(t, "", view["password"])
	assert.Equal(t, "user", view["role"])

	resp, body = doJSON(t, app, http.MethodPost, "/auth/login",
		map[string]string{"email": "a@b.com", "password": "secret123"}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	authData := body["data"].(map[string]any)
	assert.Equal(t, view["_id"], authData["userId"])
	assert.NotEmpty(t, authData["token"])
	assert.Greater(t, int64(authData["expiresAt"].(float64)), time.Now().Unix())
}

func TestRegisterDuplicateEmailAnyCase(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/auth/register",
		map[string]string{"email": "a@b.com", "password": "secret123"}, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/auth/register",
		map[string]string{"email": "A@B.COM", "password": "other456"}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	errBody := body["error"].(map[string]any)
	assert.Equal(t, "CONFLICT", errBody["code"])
	assert.Equal(t, "User already exists", errBody["message"])
}

func TestLoginFailuresAreUniform(t *testing.T) {
	app := newTestApp(t)

	// unknown email on an empty store
	resp, body := doJSON(t, app, http.MethodPost, "/auth/login",
		map[string]string{"email": "nobody@x.com", "password": "x"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	unknownMsg := body["error"].(map[string]any)["message"]

	// wrong password for a real account
	resp, _ = doJSON(t, app, http.MethodPost, "/auth/register",
		map[string]string{"email": "a@b.com", "password": "secret123"}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodPost, "/auth/login",
		map[string]string{"email": "a@b.com", "password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	wrongMsg := body["error"].(map[string]any)["message"]

	assert.Equal(t, "Incorrect email or password", unknownMsg)
	assert.Equal(t, unknownMsg, wrongMsg)
}

func TestRegisterRejectsMalformedEmail(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/auth/register",
		map[string]string{"email": "not-an-email", "password": "secret123"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", body["error"].(map[string]any)["code"])
}

func TestListUsersNeverExposesHashes(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/auth/register",
		map[string]string{"email": "a@b.com", "password": "secret123", "role": "admin"}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodGet, "/users", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	users := body["data"].([]any)
	require.Len(t, users, 1)
	user := users[0].(map[string]any)
	assert.Equal(t, "", user["password"])
	assert.Equal(t, "admin", user["role"])
}
