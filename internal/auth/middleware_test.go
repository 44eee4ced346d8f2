package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProbeApp(tm *TokenManager) (*fiber.App, *Identity) {
	resolver := NewIdentityResolver(tm)
	captured := &Identity{}

	app := fiber.New()
	app.Use(resolver.Handle)
	app.Get("/probe", func(c *fiber.Ctx) error {
		*captured = IdentityFromContext(c)
		return c.SendStatus(http.StatusOK)
	})
	return app, captured
}

func TestIdentityResolverNeverRejects(t *testing.T) {
	tm := NewTokenManager(testSecret, 1)
	validToken, _, err := tm.Generate("user-42", "a@b.com")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantAuth   bool
		wantUserID string
	}{
		{name: "no header", header: ""},
		{name: "bearer garbage", header: "Bearer garbage"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "scheme only", header: "Bearer"},
		{name: "empty token", header: "Bearer "},
		{name: "valid token", header: "Bearer " + validToken, wantAuth: true, wantUserID: "user-42"},
		{name: "case-insensitive scheme", header: "bearer " + validToken, wantAuth: true, wantUserID: "user-42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, captured := newProbeApp(tm)

			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.wantAuth, captured.Authenticated)
			assert.Equal(t, tt.wantUserID, captured.UserID)
		})
	}
}

func TestIdentityFromContextWithoutResolver(t *testing.T) {
	app := fiber.New()
	var identity Identity
	app.Get("/probe", func(c *fiber.Ctx) error {
		identity = IdentityFromContext(c)
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/probe", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, identity.Authenticated)
}
