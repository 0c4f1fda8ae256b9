package indexer

// initialRingSize is the allocation a ring starts with, whatever its limit
const initialRingSize = 16

// ring is a FIFO holding at most limit values. Storage grows on demand, so
// a large limit costs nothing until the values arrive.
type ring[T any] struct {
	items []T
	head  int
	size  int
	limit int
}

func newRing[T any](limit int) *ring[T] {
	limit = max(limit, 1)
	return &ring[T]{items: make([]T, min(limit, initialRingSize)), limit: limit}
}

func (r *ring[T]) Len() int {
	return r.size
}

// Cap is the number of values the ring has storage for right now
func (r *ring[T]) Cap() int {
	return len(r.items)
}

// Push appends v. Pushing onto a full ring is a programming error.
func (r *ring[T]) Push(v T) {
	if r.size == r.limit {
		panic("indexer: push onto a full ring")
	}
	if r.size == len(r.items) {
		r.grow()
	}
	r.items[(r.head+r.size)%len(r.items)] = v
	r.size++
}

// Pop removes and returns the oldest value. The ring must not be empty.
func (r *ring[T]) Pop() T {
	if r.size == 0 {
		panic("indexer: pop from an empty ring")
	}
	var zero T
	v := r.items[r.head]
	r.items[r.head] = zero
	r.head = (r.head + 1) % len(r.items)
	r.size--
	return v
}

// grow doubles the storage, never past the limit, and unwraps the values
// to the front
func (r *ring[T]) grow() {
	size := len(r.items) * 2
	if size > r.limit || size <= 0 {
		size = r.limit
	}
	items := make([]T, size)
	n := copy(items, r.items[r.head:])
	copy(items[n:], r.items[:r.head])
	r.items = items
	r.head = 0
}
