package service

import (
	"context"

	"ai-realestate-be/internal/constant"
	"ai-realestate-be/internal/entity"
	"ai-realestate-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService keeps prompt-projected topics in step with the asset
// store by re-running the projection whenever an asset key changes.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	topicService ITopicService
	logger       logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	topicService ITopicService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		topicService: topicService,
		logger:       log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	payload, err := decodeStoreChanged(msg)
	if err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal store change", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed messages are never retried
		return
	}

	products := make(map[entity.Product]bool)
	for _, key := range payload.Keys {
		if p, ok := constant.ProductForAssetsKey(key); ok {
			products[p] = true
		}
	}

	for _, p := range entity.Products {
		if !products[p] {
			continue
		}
		if _, err := cs.topicService.ProjectPrompts(ctx, p); err != nil {
			cs.logger.Error("ConsumerService", "Prompt projection failed", map[string]interface{}{
				"product": p,
				"error":   err.Error(),
			})
			msg.Nack()
			return
		}
	}

	msg.Ack()
}
