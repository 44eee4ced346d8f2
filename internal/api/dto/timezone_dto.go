package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// TimezoneCreateRequest payload for new timezone records.
type TimezoneCreateRequest struct {
	Name            string `json:"name"`
	City            string `json:"city"`
	DifferenceToGMT int    `json:"differenceToGMT"`
}

// Validate enforces required fields and a sane GMT offset.
func (r TimezoneCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.City, validation.Required),
		validation.Field(&r.DifferenceToGMT, validation.Min(-12), validation.Max(14)),
	)
}

// TimezoneResponse is the outward-facing timezone shape.
type TimezoneResponse struct {
	ID              string    `json:"_id"`
	Name            string    `json:"name"`
	City            string    `json:"city"`
	DifferenceToGMT int       `json:"differenceToGMT"`
	CreatorID       *string   `json:"creatorId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
