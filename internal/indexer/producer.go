package indexer

// Producer yields values one at a time. The second result is false once the
// producer is exhausted; the queue never pulls again after that.
type Producer[T any] interface {
	Next() (T, bool)
}

// ProducerFunc adapts a function to the Producer interface
type ProducerFunc[T any] func() (T, bool)

// Next calls f
func (f ProducerFunc[T]) Next() (T, bool) {
	return f()
}

// SliceProducer yields the elements of a slice in order
type SliceProducer[T any] struct {
	values []T
	pulls  int
}

// NewSliceProducer creates a producer over values. The slice is not copied.
func NewSliceProducer[T any](values ...T) *SliceProducer[T] {
	return &SliceProducer[T]{values: values}
}

// Next returns the next element, or false when none are left
func (p *SliceProducer[T]) Next() (T, bool) {
	p.pulls++
	if len(p.values) == 0 {
		var zero T
		return zero, false
	}
	v := p.values[0]
	p.values = p.values[1:]
	return v, true
}

// Pulls reports how many times Next has been called
func (p *SliceProducer[T]) Pulls() int {
	return p.pulls
}
