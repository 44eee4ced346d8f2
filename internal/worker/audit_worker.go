package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/timezone-service/internal/events"
)

// StartAuditWorker subscribes an audit-log handler to every domain event.
func StartAuditWorker(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}

	handler := func(_ context.Context, event events.Event) error {
		logger.Info("audit event",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.Time("timestamp", event.Timestamp),
			zap.Any("payload", event.Payload),
		)
		return nil
	}

	dispatcher.Subscribe(events.EventUserRegistered, handler)
	dispatcher.Subscribe(events.EventUserLoggedIn, handler)
	dispatcher.Subscribe(events.EventTimezoneCreated, handler)
}
