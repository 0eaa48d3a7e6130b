package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"ai-realestate-be/internal/dto"
	"ai-realestate-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastStorageReachesEveryClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil, logger.NewNopLogger())
	go hub.Run(ctx)

	a := &Client{Hub: hub, ID: uuid.New(), Send: make(chan []byte, 1)}
	b := &Client{Hub: hub, ID: uuid.New(), Send: make(chan []byte, 1)}
	require.True(t, hub.Register(a))
	require.True(t, hub.Register(b))
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	hub.BroadcastStorage()

	for _, c := range []*Client{a, b} {
		select {
		case raw := <-c.Send:
			var frame dto.StorageFrame
			require.NoError(t, json.Unmarshal(raw, &frame))
			assert.Equal(t, "storage", frame.Type)
		case <-time.After(time.Second):
			t.Fatal("frame not delivered")
		}
	}
}

func TestSlowClientIsDropped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil, logger.NewNopLogger())
	go hub.Run(ctx)

	slow := &Client{Hub: hub, ID: uuid.New(), Send: make(chan []byte)}
	require.True(t, hub.Register(slow))
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.BroadcastStorage()

	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
}

func TestStoppedHubNeverBlocksSenders(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil, logger.NewNopLogger())
	go hub.Run(ctx)

	slow := &Client{Hub: hub, ID: uuid.New(), Send: make(chan []byte)}
	require.True(t, hub.Register(slow))
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-hub.Done():
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}

	// A full buffer after shutdown must not strand the drop goroutine.
	hub.BroadcastStorage()

	returned := make(chan struct{})
	go func() {
		hub.Unregister(slow)
		close(returned)
	}()
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Unregister blocked on a stopped hub")
	}

	assert.False(t, hub.Register(&Client{Hub: hub, ID: uuid.New(), Send: make(chan []byte, 1)}))
}
