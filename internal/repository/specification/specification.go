package specification

// Specification narrows or reorders an in-memory collection.
type Specification[T any] interface {
	Apply(items []T) []T
}

// Listable is implemented by every entry that has pin/hide state.
type Listable interface {
	IsHidden() bool
	IsPinned() bool
}

// Apply runs specs in order over a copy of items.
func Apply[T any](items []T, specs ...Specification[T]) []T {
	out := make([]T, len(items))
	copy(out, items)
	for _, spec := range specs {
		out = spec.Apply(out)
	}
	return out
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
