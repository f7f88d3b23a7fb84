package service

import (
	"context"

	"ai-chatapp-be/internal/pkg/logger"
	"ai-chatapp-be/internal/websocket"
	"ai-chatapp-be/pkg/events"
	pktNats "ai-chatapp-be/pkg/nats"

	"github.com/google/uuid"
)

// NotificationDelivery defines how to push real-time updates.
// Implemented by the websocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification websocket.Notification)
}

// NotificationService bridges bus events to connected sockets.
type NotificationService struct {
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe(pktNats.SubjectFor(events.TypeMessageExchanged), "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	userIDStr, _ := payload["user_id"].(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		// Nothing to deliver to; drop instead of retrying forever.
		s.logger.Warn("NotificationService", "Event without usable user_id", map[string]interface{}{"type": event.EventType()})
		return nil
	}

	s.delivery.Send(userID, websocket.Notification{
		Type: event.EventType(),
		Data: payload,
	})
	return nil
}
