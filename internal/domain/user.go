package domain

import (
	"strings"
	"time"
)

// Role enumerates account roles. Roles are stored on the account but carry
// no enforcement in this service.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

// NormalizeRole coerces unknown or empty role values to RoleUser.
func NormalizeRole(value string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleManager:
		return RoleManager
	default:
		return RoleUser
	}
}

// NormalizeEmail lowercases and trims an email address. Account uniqueness
// is case-insensitive, so every lookup and insert goes through this.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// User is the durable account record.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// UserView is the outward-facing shape of an account. Password is always the
// empty string rather than omitted, keeping the payload shape stable for
// clients that expect the field.
type UserView struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// PublicView strips the password hash from the account record.
func (u *User) PublicView() UserView {
	return UserView{
		ID:        u.ID,
		Email:     u.Email,
		Password:  "",
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
