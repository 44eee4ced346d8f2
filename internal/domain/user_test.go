package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"admin", RoleAdmin},
		{"Manager", RoleManager},
		{"user", RoleUser},
		{"", RoleUser},
		{"superadmin", RoleUser},
		{" ADMIN ", RoleAdmin},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeRole(tt.in), "role %q", tt.in)
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", NormalizeEmail(" A@B.Com "))
	assert.Equal(t, "a@b.com", NormalizeEmail("a@b.com"))
}

func TestPublicViewBlanksPassword(t *testing.T) {
	user := User{
		ID:           "user-1",
		Email:        "a@b.com",
		PasswordHash: "$2a$12$abcdefg",
		Role:         RoleUser,
		CreatedAt:    time.Now(),
	}

	view := user.PublicView()
	assert.Equal(t, "", view.Password)
	assert.Equal(t, user.ID, view.ID)
	assert.Equal(t, user.Email, view.Email)

	// the password field stays in the payload as an empty marker
	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"password":""`)
}
