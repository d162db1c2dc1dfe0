package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/offline-ticketing/ticketing-service/internal/events"
)

// ActivityService writes structured log entries for ticket lifecycle
// events. It is an observability sink, not a durable audit trail.
type ActivityService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewActivityService creates the service.
func NewActivityService(dispatcher events.Dispatcher, logger *zap.Logger) *ActivityService {
	return &ActivityService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to ticket events.
func (a *ActivityService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventTicketCreated, a.logEvent)
	a.dispatcher.Subscribe(events.EventTicketStatusChanged, a.logEvent)
	a.dispatcher.Subscribe(events.EventTicketAssigned, a.logEvent)
}

func (a *ActivityService) logEvent(_ context.Context, event events.Event) error {
	a.logger.Info("ticket activity",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.String("ticket_id", event.TicketID),
		zap.String("actor_id", event.Actor.UserID),
		zap.String("actor_role", string(event.Actor.Role)),
		zap.Any("payload", event.Payload))
	return nil
}
