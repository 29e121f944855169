package outcome

// Builder accumulates items into a target structure. A builder is owned
// by the single traversal that created it and must not be reused after
// Finish.
type Builder[T, R any] interface {
	Add(item T)
	Finish() R
}

// SliceBuilder collects items into a slice, preserving insertion order.
type SliceBuilder[T any] struct {
	items []T
}

func NewSliceBuilder[T any](capacity int) *SliceBuilder[T] {
	return &SliceBuilder[T]{items: make([]T, 0, capacity)}
}

func (b *SliceBuilder[T]) Add(item T) {
	b.items = append(b.items, item)
}

func (b *SliceBuilder[T]) Finish() []T {
	return b.items
}

// Entry is a key-value pair fed to a MapBuilder.
type Entry[K comparable, V any] struct {
	Key K
	Val V
}

// MapBuilder collects entries into a map. A later entry with the same
// key overwrites the earlier one.
type MapBuilder[K comparable, V any] struct {
	entries map[K]V
}

func NewMapBuilder[K comparable, V any](capacity int) *MapBuilder[K, V] {
	return &MapBuilder[K, V]{entries: make(map[K]V, capacity)}
}

func (b *MapBuilder[K, V]) Add(item Entry[K, V]) {
	b.entries[item.Key] = item.Val
}

func (b *MapBuilder[K, V]) Finish() map[K]V {
	return b.entries
}

// DiscardBuilder drops every item. Useful when a traversal is run for
// its short-circuit behavior only.
type DiscardBuilder[T any] struct{}

func NewDiscardBuilder[T any]() DiscardBuilder[T] {
	return DiscardBuilder[T]{}
}

func (DiscardBuilder[T]) Add(T) {}

func (DiscardBuilder[T]) Finish() struct{} {
	return struct{}{}
}
