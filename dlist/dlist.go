// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dlist

import "fmt"

// DList is a doubly linked list of [T] values.
//
// Nodes can be moved between lists in constant time with a [Cursor]. While a
// cursor is checked out, the list may only be used through that cursor: every
// other method except [DList.Len], [DList.IsEmpty] and [DList.Validate]
// panics with [ErrBorrowed].
//
// This data structure does not perform any synchronization and is not
// safe to use concurrently without external locking.
//
// The zero value is an empty list ready to use.
type DList[T any] struct {
	head *node[T]
	tail *node[T]
	len  int

	observer Observer

	// bumped on every structural change, checked by live iterators
	version  uint64
	borrowed bool
}

// New returns an empty list.
func New[T any](opts ...Option) *DList[T] {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return &DList[T]{observer: c.observer}
}

// FromSlice returns a list holding [values] in order.
func FromSlice[T any](values []T, opts ...Option) *DList[T] {
	l := New[T](opts...)
	for _, v := range values {
		l.PushTail(v)
	}
	return l
}

func (l *DList[T]) checkAccess() {
	if l.borrowed {
		panic(ErrBorrowed)
	}
}

// Len returns the number of elements in the list.
func (l *DList[T]) Len() int { return l.len }

// IsEmpty returns true if the list has no elements.
func (l *DList[T]) IsEmpty() bool { return l.len == 0 }

func (l *DList[T]) PushHead(v T) {
	l.checkAccess()

	n := l.alloc(v)
	l.insertChain(chain[T]{head: n, tail: n, len: 1}, nil, l.head)
}

func (l *DList[T]) PushTail(v T) {
	l.checkAccess()

	n := l.alloc(v)
	l.insertChain(chain[T]{head: n, tail: n, len: 1}, l.tail, nil)
}

// PopHead removes and returns the first element. It returns false if the list
// is empty.
func (l *DList[T]) PopHead() (T, bool) {
	l.checkAccess()

	n := l.head
	if n == nil {
		var zero T
		return zero, false
	}
	l.unlink(n)
	return l.free(n), true
}

// PopTail removes and returns the last element. It returns false if the list
// is empty.
func (l *DList[T]) PopTail() (T, bool) {
	l.checkAccess()

	n := l.tail
	if n == nil {
		var zero T
		return zero, false
	}
	l.unlink(n)
	return l.free(n), true
}

func (l *DList[T]) Head() (T, bool) {
	l.checkAccess()

	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

func (l *DList[T]) Tail() (T, bool) {
	l.checkAccess()

	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}

// HeadMut returns a pointer to the first element, or nil if the list is
// empty. The pointer stays valid until the element is removed.
func (l *DList[T]) HeadMut() *T {
	l.checkAccess()

	if l.head == nil {
		return nil
	}
	return &l.head.value
}

// TailMut returns a pointer to the last element, or nil if the list is empty.
func (l *DList[T]) TailMut() *T {
	l.checkAccess()

	if l.tail == nil {
		return nil
	}
	return &l.tail.value
}

// Clear releases every node, front to back. The list can be reused
// afterwards.
func (l *DList[T]) Clear() {
	l.checkAccess()

	for n := l.head; n != nil; n = l.head {
		l.unlink(n)
		l.free(n)
	}
}

// Append moves every element of [other] to the tail of [l] in constant time.
// [other] is left empty.
func (l *DList[T]) Append(other *DList[T]) {
	l.checkAccess()
	other.checkAccess()
	if other == l {
		panic(ErrSelfSplice)
	}

	moved := other.len
	l.insertChain(other.take(), l.tail, nil)
	l.spliced(moved)
}

// Values returns a copy of the elements in forward order.
func (l *DList[T]) Values() []T {
	l.checkAccess()

	values := make([]T, 0, l.len)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// Validate walks the list and reports the first broken link invariant. It
// never modifies the list and may be called while a cursor is checked out.
func (l *DList[T]) Validate() error {
	if (l.head == nil) != (l.tail == nil) || (l.head == nil) != (l.len == 0) {
		return fmt.Errorf("%w: head, tail and len=%d disagree on emptiness", ErrCorrupted, l.len)
	}

	var prev *node[T]
	n := l.head
	for i := 0; i < l.len; i++ {
		if n == nil {
			return fmt.Errorf("%w: forward walk ended after %d of %d nodes", ErrCorrupted, i, l.len)
		}
		if n.prev != prev {
			return fmt.Errorf("%w: back link of node %d does not point at node %d", ErrCorrupted, i, i-1)
		}
		prev = n
		n = n.next
	}
	if n != nil {
		return fmt.Errorf("%w: forward walk continues past len=%d", ErrCorrupted, l.len)
	}
	if prev != l.tail {
		return fmt.Errorf("%w: tail is not the last node of the forward walk", ErrCorrupted)
	}
	return nil
}
