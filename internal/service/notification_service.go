package service

import (
	"context"
	"strings"
	"time"

	"ai-realestate-be/internal/pkg/logger"
	"ai-realestate-be/pkg/events"
	pktNats "ai-realestate-be/pkg/nats" // Renamed to avoid collision

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	EventStoreChanged = "STORE_CHANGED"

	storeChangedDurable = "realestate-storage-notifier"
)

// NotificationDelivery pushes the storage frame to connected clients.
// Implemented by the WebSocket hub.
type NotificationDelivery interface {
	BroadcastStorage()
}

// EventPublisher is the slice of the NATS publisher this service needs.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// NotificationService tells every open client that stored data changed.
// With NATS configured, store changes travel as STORE_CHANGED events on
// the EVENTS stream and one instance delivers each of them (the hub fans
// out to the others through Redis). Without NATS they are delivered
// directly.
type NotificationService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	publisher  EventPublisher
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(
	pubSub *gochannel.GoChannel,
	topicName string,
	pub EventPublisher,
	sub *pktNats.Subscriber,
	delivery NotificationDelivery,
	log logger.ILogger,
) *NotificationService {
	return &NotificationService{
		pubSub:     pubSub,
		topicName:  topicName,
		publisher:  pub,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start subscribes to local store changes and, when available, to the
// STORE_CHANGED events on the bus.
func (s *NotificationService) Start(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}
	go func() {
		for msg := range messages {
			s.handleStoreChanged(ctx, msg)
		}
	}()

	if s.subscriber != nil {
		if err := s.subscriber.Subscribe(pktNats.Subject(EventStoreChanged), storeChangedDurable, s.handleEvent); err != nil {
			s.logger.Error("NotificationService", "Failed to start event subscriber, delivering locally", map[string]interface{}{"error": err.Error()})
			s.subscriber = nil
		}
	}

	s.logger.Info("NotificationService", "Notification service started", map[string]interface{}{
		"topic": s.topicName,
		"nats":  s.subscriber != nil,
	})
	return nil
}

func (s *NotificationService) handleStoreChanged(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	payload, err := decodeStoreChanged(msg)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to unmarshal store change", map[string]interface{}{"error": err.Error()})
		return
	}

	if s.publisher == nil || s.subscriber == nil {
		s.delivery.BroadcastStorage()
		return
	}

	evt := events.New(EventStoreChanged, map[string]interface{}{
		"keys": payload.Keys,
	})

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.publisher.Publish(pubCtx, evt); err != nil {
		s.logger.Warn("NotificationService", "Event publish failed, delivering locally", map[string]interface{}{"error": err.Error()})
		s.delivery.BroadcastStorage()
	}
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	typeCode := strings.TrimPrefix(event.EventType(), "events.")
	if typeCode != EventStoreChanged {
		s.logger.Warn("NotificationService", "Ignoring unexpected event", map[string]interface{}{"type": typeCode})
		return nil
	}

	s.logger.Debug("NotificationService", "Delivering storage notification", map[string]interface{}{
		"keys": event.Payload()["keys"],
	})
	s.delivery.BroadcastStorage()
	return nil
}
