package service

import (
	"context"
	"encoding/json"
	"time"

	"ai-realestate-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// StoreChangedTopic is the in-process topic every committed write batch is
// announced on.
const StoreChangedTopic = "store.changed"

// IPublisherService is the store's change notifier.
type IPublisherService interface {
	NotifyChanged(ctx context.Context, keys []string) error
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
}

func NewPublisherService(pubSub *gochannel.GoChannel, topicName string) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
	}
}

func (ps *publisherService) NotifyChanged(ctx context.Context, keys []string) error {
	payload, err := json.Marshal(dto.StoreChangedMessage{
		Keys:       keys,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	return ps.pubSub.Publish(ps.topicName, msg)
}

func decodeStoreChanged(msg *message.Message) (dto.StoreChangedMessage, error) {
	var payload dto.StoreChangedMessage
	err := json.Unmarshal(msg.Payload, &payload)
	return payload, err
}
