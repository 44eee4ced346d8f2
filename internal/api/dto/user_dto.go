package dto

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
)

// emailShape matches the loose email format accepted at registration.
var emailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// RegisterRequest payload for new accounts. Role is optional; anything
// outside the known set is coerced to "user" downstream.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate enforces required fields and the email shape.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Match(emailShape)),
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate enforces required fields.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}
