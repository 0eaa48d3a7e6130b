package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"ai-realestate-be/internal/dto"
	"ai-realestate-be/internal/entity"
	"ai-realestate-be/internal/pkg/logger"
	"ai-realestate-be/internal/repository/memory"
	"ai-realestate-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingDelivery struct {
	n atomic.Int32
}

func (d *countingDelivery) BroadcastStorage() { d.n.Add(1) }

func TestStoreChangesReachProjectionAndClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log := logger.NewNopLogger()
	pubSub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 16}, watermill.NopLogger{})
	defer pubSub.Close()

	publisher := NewPublisherService(pubSub, StoreChangedTopic)
	factory := unitofwork.NewRepositoryFactory(memory.NewKeyValueStore(), publisher, log)

	topics := NewTopicService(factory, log)
	assets := NewAssetService(factory, log)
	delivery := &countingDelivery{}

	require.NoError(t, NewConsumerService(pubSub, StoreChangedTopic, topics, log).Consume(ctx))
	require.NoError(t, NewNotificationService(pubSub, StoreChangedTopic, nil, nil, delivery, log).Start(ctx))

	prompt, err := assets.AddPrompt(ctx, entity.ProductContent, &dto.CreatePromptRequest{
		Title:       "Open House Invite",
		Description: "Invite the neighborhood",
	})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		list, err := topics.List(ctx, entity.ProductContent)
		if err != nil {
			return false
		}
		for _, tp := range list {
			if tp.Id == prompt.Id {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond, "prompt asset is projected into topics")

	// One broadcast for the asset batch and one for the projected topics.
	assert.Eventually(t, func() bool { return delivery.n.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
}
