package memory

import (
	"time"

	"ai-realestate-be/pkg/conversation"

	"github.com/patrickmn/go-cache"
)

// ViewRepository keeps mounted chat views in memory. A view idle for longer
// than the TTL is evicted and closed, which drops any pending reply.
type ViewRepository struct {
	cache *cache.Cache
}

func NewViewRepository(ttl time.Duration) *ViewRepository {
	c := cache.New(ttl, 10*time.Minute)
	c.OnEvicted(func(_ string, x interface{}) {
		if v, ok := x.(*conversation.View); ok {
			v.Close()
		}
	})
	return &ViewRepository{
		cache: c,
	}
}

func (r *ViewRepository) Save(view *conversation.View) {
	r.cache.Set(view.ID, view, cache.DefaultExpiration)
}

// Get refreshes the idle timer of a found view.
func (r *ViewRepository) Get(viewID string) (*conversation.View, bool) {
	x, found := r.cache.Get(viewID)
	if !found {
		return nil, false
	}
	view := x.(*conversation.View)
	r.cache.Set(viewID, view, cache.DefaultExpiration)
	return view, true
}

// Delete removes and closes the view.
func (r *ViewRepository) Delete(viewID string) {
	r.cache.Delete(viewID)
}

func (r *ViewRepository) Count() int {
	return r.cache.ItemCount()
}
