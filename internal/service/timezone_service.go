package service

import (
	"context"

	"github.com/spec-kit/timezone-service/internal/auth"
	"github.com/spec-kit/timezone-service/internal/domain"
	"github.com/spec-kit/timezone-service/internal/events"
	"github.com/spec-kit/timezone-service/internal/repository"
)

// TimezoneCache is a best-effort read cache for the timezone listing.
type TimezoneCache interface {
	GetList(ctx context.Context) ([]domain.Timezone, bool)
	SetList(ctx context.Context, timezones []domain.Timezone)
	Invalidate(ctx context.Context)
}

// TimezoneCreateInput describes timezone creation payload.
type TimezoneCreateInput struct {
	Name            string
	City            string
	DifferenceToGMT int
}

// TimezoneService coordinates timezone record workflows.
type TimezoneService struct {
	timezones  repository.TimezoneRepository
	cache      TimezoneCache
	dispatcher events.Dispatcher
}

// NewTimezoneService constructs the service. The cache may be nil.
func NewTimezoneService(timezones repository.TimezoneRepository, cache TimezoneCache, dispatcher events.Dispatcher) *TimezoneService {
	return &TimezoneService{timezones: timezones, cache: cache, dispatcher: dispatcher}
}

// Create persists a timezone record. The creator is taken from the request
// identity when present; unauthenticated creation is allowed and leaves the
// creator unset.
func (s *TimezoneService) Create(ctx context.Context, input TimezoneCreateInput, identity auth.Identity) (*domain.Timezone, error) {
	timezone := &domain.Timezone{
		Name:            input.Name,
		City:            input.City,
		DifferenceToGMT: input.DifferenceToGMT,
	}
	if identity.Authenticated {
		timezone.CreatorID = &identity.UserID
	}

	if err := s.timezones.Create(ctx, timezone); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	if s.dispatcher != nil {
		s.dispatcher.Publish(ctx, events.EventTimezoneCreated, events.TimezoneCreatedPayload{
			TimezoneID:      timezone.ID,
			Name:            timezone.Name,
			City:            timezone.City,
			DifferenceToGMT: timezone.DifferenceToGMT,
			CreatorID:       timezone.CreatorID,
		})
	}
	return timezone, nil
}

// List returns all timezone records, reading through the cache when possible.
func (s *TimezoneService) List(ctx context.Context) ([]domain.Timezone, error) {
	if s.cache != nil {
		if timezones, ok := s.cache.GetList(ctx); ok {
			return timezones, nil
		}
	}

	timezones, err := s.timezones.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetList(ctx, timezones)
	}
	return timezones, nil
}
