// Package linkedlist implements a generic singly linked list.
package linkedlist

import (
	"fmt"
	"iter"
	"strings"

	"github.com/samber/mo"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// LinkedList is a singly linked list with O(1) prepend and append.
// The zero value is an empty list ready to use.
type LinkedList[T any] struct {
	head, tail *node[T]
	size       int
}

// New returns an empty list.
func New[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// IsEmpty reports whether the list holds no elements.
func (l *LinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

// Len returns the number of elements in the list.
func (l *LinkedList[T]) Len() int {
	return l.size
}

// Prepend inserts value at the beginning of the list.
func (l *LinkedList[T]) Prepend(value T) {
	l.head = &node[T]{value: value, next: l.head}
	if l.tail == nil {
		l.tail = l.head
	}
	l.size++
}

// Append inserts value at the end of the list.
func (l *LinkedList[T]) Append(value T) {
	n := &node[T]{value: value}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

// Front returns the first element, or None if the list is empty.
func (l *LinkedList[T]) Front() mo.Option[T] {
	if l.head == nil {
		return mo.None[T]()
	}
	return mo.Some(l.head.value)
}

// PopFront removes and returns the first element, or None if the list is empty.
func (l *LinkedList[T]) PopFront() mo.Option[T] {
	if l.head == nil {
		return mo.None[T]()
	}

	n := l.head
	l.head = n.next
	n.next = nil
	if l.head == nil {
		l.tail = nil
	}
	l.size--
	return mo.Some(n.value)
}

// Clear drops every element.
func (l *LinkedList[T]) Clear() {
	l.head, l.tail = nil, nil
	l.size = 0
}

// All returns a head-to-tail sequence over the list.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// String renders the list as [a, b, c].
func (l *LinkedList[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		fmt.Fprint(&b, n.value)
		if n.next != nil {
			b.WriteString(", ")
		}
	}
	b.WriteByte(']')
	return b.String()
}
