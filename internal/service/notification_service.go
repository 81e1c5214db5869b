package service

import (
	"context"
	"fmt"
	"strings"

	"modern-assistant-be/internal/pkg/logger"
	"modern-assistant-be/pkg/events"
	pktNats "modern-assistant-be/pkg/nats"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Broadcast(eventType string, payload map[string]interface{})
}

// NotificationService bridges the NATS event bus to connected websocket
// clients so the UI can refresh conversations live.
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
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	s.logger.Info("NotificationService", fmt.Sprintf("Processing event: %s", event.EventType()), map[string]interface{}{"type": event.EventType()})

	// The NATS subject carries the "events." prefix.
	typeCode := strings.TrimPrefix(event.EventType(), "events.")

	if s.delivery != nil {
		s.delivery.Broadcast(typeCode, event.Payload())
	}
	return nil
}
