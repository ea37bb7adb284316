package stack

import "github.com/samber/mo"

// Iterator walks a stack from top to bottom.
// It is bound to the stack version it was armed with; any later mutation invalidates it.
type Iterator[T any] struct {
	s       *Stack[T]
	pos     int
	version uint64
}

// Iter returns an iterator positioned above the top element.
func (s *Stack[T]) Iter() *Iterator[T] {
	it := &Iterator[T]{s: s}
	it.Reset()
	return it
}

// Next returns the next element towards the bottom, or None once the traversal is exhausted.
// It panics with ErrConcurrentModification if the stack changed since the iterator was armed.
func (it *Iterator[T]) Next() mo.Option[T] {
	if it.version != it.s.version {
		panic(ErrConcurrentModification)
	}
	if it.pos == 0 {
		return mo.None[T]()
	}
	it.pos--
	return mo.Some(it.s.buf[it.pos])
}

// Reset restarts the traversal from the current top and re-arms the iterator.
func (it *Iterator[T]) Reset() {
	it.pos = it.s.n
	it.version = it.s.version
}
