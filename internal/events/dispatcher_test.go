package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherPublishInvokesSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var received []Event
	dispatcher.Subscribe(EventUserRegistered, func(_ context.Context, event Event) error {
		received = append(received, event)
		return nil
	})

	payload := UserRegisteredPayload{UserID: "user-1", Email: "a@b.com", Role: "user"}
	dispatcher.Publish(context.Background(), EventUserRegistered, payload)

	require.Len(t, received, 1)
	assert.NotEmpty(t, received[0].ID)
	assert.Equal(t, EventUserRegistered, received[0].Type)
	assert.Equal(t, payload, received[0].Payload)
	assert.False(t, received[0].Timestamp.IsZero())
}

func TestDispatcherHandlerErrorsDoNotStopOthers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var secondCalled bool
	dispatcher.Subscribe(EventTimezoneCreated, func(context.Context, Event) error {
		return errors.New("boom")
	})
	dispatcher.Subscribe(EventTimezoneCreated, func(context.Context, Event) error {
		secondCalled = true
		return nil
	})

	dispatcher.Publish(context.Background(), EventTimezoneCreated, TimezoneCreatedPayload{TimezoneID: "tz-1"})
	assert.True(t, secondCalled)
}

func TestDispatcherIgnoresUnsubscribedTypes(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var called bool
	dispatcher.Subscribe(EventUserLoggedIn, func(context.Context, Event) error {
		called = true
		return nil
	})

	dispatcher.Publish(context.Background(), EventUserRegistered, nil)
	assert.False(t, called)
}
