// Package stack implements a generic Last-In-First-Out container with amortized O(1) push and pop.
package stack

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/samber/mo"
)

var (
	// ErrCapacityOverflow is the panic value raised when the buffer cannot grow any further.
	ErrCapacityOverflow = errors.New("stack: capacity overflow")

	// ErrConcurrentModification is the panic value raised when a stack is mutated during iteration.
	ErrConcurrentModification = errors.New("stack: modified during iteration")
)

// Stack is a LIFO container over a contiguous buffer. Live elements occupy buf[:n], the top being buf[n-1].
//
// The zero value is an empty stack using DefaultConfig. A Stack is not safe for concurrent use.
type Stack[T any] struct {
	buf     []T
	n       int
	cfg     Config
	version uint64
	stats   Stats
}

// Stats counts the buffer work performed by a Stack over its lifetime.
type Stats struct {
	Growths int `json:"growths" jsonschema:"description=Number of times the buffer was enlarged."`
	Shrinks int `json:"shrinks" jsonschema:"description=Number of times the buffer was reduced."`
	Moves   int `json:"moves" jsonschema:"description=Elements copied between buffers by growths and shrinks."`
}

// New returns an empty stack with capacity 0; the buffer is allocated on first push.
func New[T any]() *Stack[T] {
	return &Stack[T]{cfg: DefaultConfig()}
}

// NewWithConfig returns an empty stack driven by cfg, allocating cfg.InitialCapacity slots up front.
func NewWithConfig[T any](cfg Config) (*Stack[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Stack[T]{cfg: cfg}
	if cfg.InitialCapacity > 0 {
		s.buf = make([]T, cfg.InitialCapacity)
	}
	return s, nil
}

// From returns a stack holding items, the first being the bottom and the last the top.
func From[T any](items ...T) *Stack[T] {
	s := New[T]()
	if len(items) == 0 {
		return s
	}
	s.buf = make([]T, len(items))
	s.n = copy(s.buf, items)
	return s
}

// FromSeq pushes every value of seq in order onto a new stack.
func FromSeq[T any](seq iter.Seq[T]) *Stack[T] {
	s := New[T]()
	for v := range seq {
		s.Push(v)
	}
	return s
}

// Push places item on top of the stack, growing the buffer when it is full.
func (s *Stack[T]) Push(item T) {
	if s.n == len(s.buf) {
		s.resize(s.grownCapacity())
		s.stats.Growths++
	}
	s.buf[s.n] = item
	s.n++
	s.version++
}

// Pop removes and returns the top element, or None if the stack is empty.
func (s *Stack[T]) Pop() mo.Option[T] {
	if s.n == 0 {
		return mo.None[T]()
	}

	var zero T
	s.n--
	item := s.buf[s.n]
	s.buf[s.n] = zero
	s.version++

	s.shrink()
	return mo.Some(item)
}

// Peek returns a copy of the top element without removing it, or None if the stack is empty.
func (s *Stack[T]) Peek() mo.Option[T] {
	if s.n == 0 {
		return mo.None[T]()
	}
	return mo.Some(s.buf[s.n-1])
}

// Len returns the number of elements currently stored in the stack.
func (s *Stack[T]) Len() int {
	return s.n
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.n == 0
}

// Cap returns the capacity of the backing buffer.
func (s *Stack[T]) Cap() int {
	return len(s.buf)
}

// Stats returns the growth and move counters accumulated so far.
func (s *Stack[T]) Stats() Stats {
	return s.stats
}

// Clear removes all elements while retaining the buffer. Clearing an empty stack does nothing.
func (s *Stack[T]) Clear() {
	if s.n == 0 {
		return
	}
	clear(s.buf[:s.n])
	s.n = 0
	s.version++
}

// All returns a restartable top-to-bottom sequence over the stack.
// Mutating the stack while the sequence is being consumed panics with ErrConcurrentModification.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iter()
		for {
			item, ok := it.Next().Get()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Values returns a top-to-bottom copy of the stack contents.
func (s *Stack[T]) Values() []T {
	values := make([]T, 0, s.n)
	for i := s.n - 1; i >= 0; i-- {
		values = append(values, s.buf[i])
	}
	return values
}

// String renders the stack from top to bottom.
func (s *Stack[T]) String() string {
	var b strings.Builder
	b.WriteString("stack[")
	for i := s.n - 1; i >= 0; i-- {
		fmt.Fprint(&b, s.buf[i])
		if i > 0 {
			b.WriteByte(' ')
		}
	}
	b.WriteByte(']')
	return b.String()
}

// grownCapacity computes the next buffer size: max(1, cap*factor), always strictly larger than cap.
func (s *Stack[T]) grownCapacity() int {
	current := len(s.buf)
	grown := math.Ceil(float64(current) * s.cfg.factor())
	if grown >= float64(math.MaxInt) || current == math.MaxInt {
		panic(ErrCapacityOverflow)
	}

	return max(int(grown), current+1)
}

// shrink reduces the buffer once len falls below the configured threshold.
func (s *Stack[T]) shrink() {
	threshold, ok := s.cfg.ShrinkThreshold.Get()
	if !ok {
		return
	}

	current := len(s.buf)
	if float64(s.n) >= float64(current)*threshold {
		return
	}

	target := max(int(float64(current)/s.cfg.factor()), s.cfg.InitialCapacity, s.n)
	if target >= current {
		return
	}

	s.resize(target)
	s.stats.Shrinks++
}

// resize moves the live elements into a fresh buffer of the given capacity.
func (s *Stack[T]) resize(capacity int) {
	buf := make([]T, capacity)
	s.stats.Moves += copy(buf, s.buf[:s.n])
	s.buf = buf
}
