// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dlist

// span is the double ended window shared by [Iter] and [IterMut]. It stops
// when [remaining] reaches zero, so the front and back can meet on the same
// node without yielding it twice.
type span[T any] struct {
	list      *DList[T]
	version   uint64
	front     *node[T]
	back      *node[T]
	remaining int
}

func newSpan[T any](l *DList[T]) span[T] {
	l.checkAccess()
	return span[T]{
		list:      l,
		version:   l.version,
		front:     l.head,
		back:      l.tail,
		remaining: l.len,
	}
}

func (s *span[T]) next() *node[T] {
	if s.remaining == 0 {
		return nil
	}
	if s.list.version != s.version {
		panic(ErrConcurrentModification)
	}
	n := s.front
	s.front = n.next
	s.remaining--
	return n
}

func (s *span[T]) nextBack() *node[T] {
	if s.remaining == 0 {
		return nil
	}
	if s.list.version != s.version {
		panic(ErrConcurrentModification)
	}
	n := s.back
	s.back = n.prev
	s.remaining--
	return n
}

// Iter yields the elements of a list from either end. Changing the shape of
// the list while an Iter is in use panics with [ErrConcurrentModification].
type Iter[T any] struct {
	s span[T]
}

func (l *DList[T]) Iter() *Iter[T] {
	return &Iter[T]{s: newSpan(l)}
}

func (it *Iter[T]) Next() (T, bool) {
	return valueOf(it.s.next())
}

func (it *Iter[T]) NextBack() (T, bool) {
	return valueOf(it.s.nextBack())
}

// Len returns the number of elements not yet yielded.
func (it *Iter[T]) Len() int { return it.s.remaining }

// IterMut is like [Iter] but yields pointers to the elements, allowing them
// to be updated in place.
type IterMut[T any] struct {
	s span[T]
}

func (l *DList[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{s: newSpan(l)}
}

func (it *IterMut[T]) Next() (*T, bool) {
	p := pointerTo(it.s.next())
	return p, p != nil
}

func (it *IterMut[T]) NextBack() (*T, bool) {
	p := pointerTo(it.s.nextBack())
	return p, p != nil
}

func (it *IterMut[T]) Len() int { return it.s.remaining }

// IntoIter owns the nodes of a list and releases one per step.
type IntoIter[T any] struct {
	list *DList[T]
}

// IntoIter moves every node of [l] into the returned iterator, leaving [l]
// empty.
func (l *DList[T]) IntoIter() *IntoIter[T] {
	l.checkAccess()
	return &IntoIter[T]{list: l.derive(l.take())}
}

func (it *IntoIter[T]) Next() (T, bool) {
	return it.list.PopHead()
}

func (it *IntoIter[T]) NextBack() (T, bool) {
	return it.list.PopTail()
}

func (it *IntoIter[T]) Len() int { return it.list.Len() }
