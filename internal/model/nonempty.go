package model

// NonEmpty is an ordered list that always holds at least one item.
// The zero value is not valid; use NewNonEmpty.
type NonEmpty[T any] struct {
	items []T
}

// NewNonEmpty copies items into a NonEmpty.
// It returns ErrEmptyList when items is empty.
func NewNonEmpty[T any](items []T) (NonEmpty[T], error) {
	if len(items) == 0 {
		return NonEmpty[T]{}, ErrEmptyList
	}
	copied := make([]T, len(items))
	copy(copied, items)
	return NonEmpty[T]{items: copied}, nil
}

// Items returns a copy of the items.
func (n NonEmpty[T]) Items() []T {
	copied := make([]T, len(n.items))
	copy(copied, n.items)
	return copied
}

// Len returns the number of items.
func (n NonEmpty[T]) Len() int {
	return len(n.items)
}

// First returns the first item.
func (n NonEmpty[T]) First() T {
	return n.items[0]
}
