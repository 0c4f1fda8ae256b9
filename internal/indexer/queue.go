// Package indexer numbers the values of a stream from both ends in a single
// forward pass. Positions counted from the end are only knowable once the
// end is in sight, so the queue holds back a fixed number of values and
// hands out negative indexes to whatever is still held when the producer
// runs dry.
package indexer

import (
	"iter"
	"math"

	"github.com/standardbeagle/line/internal/types"
)

// Item is a value annotated with its position. Positive is zero-based;
// callers presenting line numbers add one.
type Item[T any] struct {
	Content  T
	Positive int
	Negative types.NegativeIndex
}

// Queue emits every value of a producer exactly once, in order. Values
// among the last bufferSize of the stream carry a negative index, -1 being
// the last. At most bufferSize+1 values are held at any time.
type Queue[T any] struct {
	producer   Producer[T]
	bufferSize int
	buffer     *ring[T]
	position   int
	dry        bool
}

// NewQueue creates a queue that can resolve negative indexes down to
// -bufferSize. A negative bufferSize is treated as zero. The buffer holds at
// most bufferSize+1 values and only grows as values arrive; math.MaxInt
// leaves it unbounded.
func NewQueue[T any](bufferSize int, producer Producer[T]) *Queue[T] {
	bufferSize = max(bufferSize, 0)
	limit := math.MaxInt
	if bufferSize < math.MaxInt {
		limit = bufferSize + 1
	}
	return &Queue[T]{
		producer:   producer,
		bufferSize: bufferSize,
		buffer:     newRing[T](limit),
	}
}

// BufferSize returns the lookahead the queue was built with
func (q *Queue[T]) BufferSize() int {
	return q.bufferSize
}

// Next returns the next item, or false once every value has been emitted.
//
// While the producer keeps yielding, the buffer is topped up to bufferSize
// values plus one; the oldest then has bufferSize values behind it and
// flows out without a negative index. Once the producer is dry the buffer
// drains, each value taking the negated buffer length as its negative index.
func (q *Queue[T]) Next() (Item[T], bool) {
	q.fill()

	if q.buffer.Len() > q.bufferSize {
		return q.emit(q.buffer.Pop(), types.NoNegative), true
	}

	if q.buffer.Len() == 0 {
		return Item[T]{}, false
	}

	negative := types.Negative(-q.buffer.Len())
	return q.emit(q.buffer.Pop(), negative), true
}

// All returns the remaining items as a sequence. Iteration resumes from the
// queue's current position, and stopping early is fine.
func (q *Queue[T]) All() iter.Seq[Item[T]] {
	return func(yield func(Item[T]) bool) {
		for {
			item, ok := q.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// IsEmpty reports whether the queue has nothing left to emit. It pulls at
// most one value from the producer and keeps it for the next call to Next.
func (q *Queue[T]) IsEmpty() bool {
	if q.buffer.Len() > 0 {
		return false
	}
	q.pull()
	return q.buffer.Len() == 0
}

func (q *Queue[T]) fill() {
	for !q.dry && q.buffer.Len() <= q.bufferSize {
		q.pull()
	}
}

// pull fetches one value into the buffer. Exhaustion is recorded, never
// reported.
func (q *Queue[T]) pull() {
	if q.dry {
		return
	}
	v, ok := q.producer.Next()
	if !ok {
		q.dry = true
		return
	}
	q.buffer.Push(v)
}

func (q *Queue[T]) emit(content T, negative types.NegativeIndex) Item[T] {
	item := Item[T]{Content: content, Positive: q.position, Negative: negative}
	q.position++
	return item
}
