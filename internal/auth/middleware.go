package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const identityKey = "auth_identity"

// Identity is the per-request authentication result. The zero value means
// unauthenticated. It is created fresh for each request and never shared.
type Identity struct {
	Authenticated bool
	UserID        string
}

// IdentityResolver annotates every request with an Identity derived from the
// optional Authorization header. It never rejects a request: a missing
// header, a non-bearer scheme, or a token that fails verification all
// degrade silently to the unauthenticated identity. Operations that need an
// authenticated caller check the attached result themselves.
type IdentityResolver struct {
	tokens *TokenManager
}

// NewIdentityResolver constructs the middleware.
func NewIdentityResolver(tokens *TokenManager) *IdentityResolver {
	return &IdentityResolver{tokens: tokens}
}

// Handle resolves the bearer token, attaches the result, and continues.
func (m *IdentityResolver) Handle(c *fiber.Ctx) error {
	c.Locals(identityKey, m.resolve(c.Get(fiber.HeaderAuthorization)))
	return c.Next()
}

func (m *IdentityResolver) resolve(header string) Identity {
	if header == "" {
		return Identity{}
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return Identity{}
	}

	claims, err := m.tokens.Parse(parts[1])
	if err != nil {
		return Identity{}
	}
	return Identity{Authenticated: true, UserID: claims.UserID}
}

// IdentityFromContext retrieves the identity attached by Handle. Requests
// that never passed through the resolver read as unauthenticated.
func IdentityFromContext(c *fiber.Ctx) Identity {
	if identity, ok := c.Locals(identityKey).(Identity); ok {
		return identity
	}
	return Identity{}
}
