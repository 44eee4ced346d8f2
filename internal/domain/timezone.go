package domain

import "time"

// Timezone is a named UTC-offset record owned by the account that created it.
// CreatorID is nil when the record was created by an unauthenticated caller.
type Timezone struct {
	ID              string
	Name            string
	City            string
	DifferenceToGMT int
	CreatorID       *string
	CreatedAt       time.Time
}
