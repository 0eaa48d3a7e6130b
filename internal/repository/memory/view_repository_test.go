package memory

import (
	"testing"
	"time"

	"ai-realestate-be/internal/entity"
	"ai-realestate-be/pkg/conversation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewRepositoryDeleteClosesView(t *testing.T) {
	repo := NewViewRepository(time.Hour)
	view := conversation.NewView(entity.ProductCoach, "Time Management", "/coach/chat/1", 0)
	repo.Save(view)

	got, ok := repo.Get(view.ID)
	require.True(t, ok)
	assert.Same(t, view, got)

	repo.Delete(view.ID)

	_, ok = repo.Get(view.ID)
	assert.False(t, ok)
	assert.True(t, view.Closed())
}

func TestViewRepositoryExpiredViewIsGone(t *testing.T) {
	repo := NewViewRepository(time.Millisecond)
	view := conversation.NewView(entity.ProductCoach, "Time Management", "/coach/chat/1", 0)
	repo.Save(view)

	time.Sleep(5 * time.Millisecond)

	_, ok := repo.Get(view.ID)
	assert.False(t, ok)
}
