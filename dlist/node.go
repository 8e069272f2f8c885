// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dlist

// node is a single cell of a list. [next] is the owning direction: a list
// reaches every node by walking [next] from its head. [prev] is only used for
// lookups.
type node[T any] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

// chain is a run of linked nodes that is not attached to any list.
type chain[T any] struct {
	head *node[T]
	tail *node[T]
	len  int
}

func (l *DList[T]) alloc(v T) *node[T] {
	n := &node[T]{value: v}
	if l.observer != nil {
		l.observer.Allocated()
	}
	return n
}

// free clears an unlinked node and returns the value it held.
func (l *DList[T]) free(n *node[T]) T {
	v := n.value
	var zero T
	n.value = zero
	n.next = nil
	n.prev = nil
	if l.observer != nil {
		l.observer.Freed()
	}
	return v
}

// insertChain links [c] between [prev] and [next]. A nil [prev] means the
// chain becomes the new head; a nil [next] means it becomes the new tail.
func (l *DList[T]) insertChain(c chain[T], prev, next *node[T]) {
	if c.len == 0 {
		return
	}
	c.head.prev = prev
	c.tail.next = next
	if prev == nil {
		l.head = c.head
	} else {
		prev.next = c.head
	}
	if next == nil {
		l.tail = c.tail
	} else {
		next.prev = c.tail
	}
	l.len += c.len
	l.version++
}

// unlink detaches [n] from the list. The node is left with no links.
func (l *DList[T]) unlink(n *node[T]) {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.next = nil
	n.prev = nil
	l.len--
	l.version++
}

// take moves every node out of the list.
func (l *DList[T]) take() chain[T] {
	c := chain[T]{head: l.head, tail: l.tail, len: l.len}
	l.head = nil
	l.tail = nil
	l.len = 0
	l.version++
	return c
}

// derive wraps [c] in a new list sharing the observer of [l].
func (l *DList[T]) derive(c chain[T]) *DList[T] {
	return &DList[T]{
		head:     c.head,
		tail:     c.tail,
		len:      c.len,
		observer: l.observer,
	}
}

func (l *DList[T]) split(moved int) {
	if l.observer != nil {
		l.observer.Split(moved)
	}
}

func (l *DList[T]) spliced(moved int) {
	if l.observer != nil {
		l.observer.Spliced(moved)
	}
}
