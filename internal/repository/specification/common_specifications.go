package specification

// NotHidden drops hidden entries.
type NotHidden[T Listable] struct{}

func (s NotHidden[T]) Apply(items []T) []T {
	return filter(items, func(it T) bool { return !it.IsHidden() })
}

// ByHidden keeps entries whose hidden flag equals Hidden.
type ByHidden[T Listable] struct {
	Hidden bool
}

func (s ByHidden[T]) Apply(items []T) []T {
	return filter(items, func(it T) bool { return it.IsHidden() == s.Hidden })
}

// PinnedFirst moves pinned entries ahead of unpinned ones, keeping the
// relative order inside each group.
type PinnedFirst[T Listable] struct{}

func (s PinnedFirst[T]) Apply(items []T) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.IsPinned() {
			out = append(out, it)
		}
	}
	for _, it := range items {
		if !it.IsPinned() {
			out = append(out, it)
		}
	}
	return out
}

// Pagination slices out Limit items starting at Offset. Limit 0 means no limit.
type Pagination[T any] struct {
	Limit  int
	Offset int
}

func (s Pagination[T]) Apply(items []T) []T {
	if s.Offset >= len(items) {
		return items[:0]
	}
	end := len(items)
	if s.Limit > 0 && s.Offset+s.Limit < end {
		end = s.Offset + s.Limit
	}
	return items[s.Offset:end]
}
