// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dlist

// Cursor is an exclusive view over a [DList] that can read, write and
// restructure the list around a position.
//
// A cursor is either on an element, with a 0-based index, or on the ghost
// position that sits between the tail and the head. A new cursor starts on
// the ghost.
type Cursor[T any] struct {
	list   *DList[T]
	cur    *node[T] // nil on the ghost
	index  int
	closed bool
}

// Cursor checks out the only cursor of the list. It returns
// [ErrCursorActive] if another cursor has not been closed yet.
func (l *DList[T]) Cursor() (*Cursor[T], error) {
	if l.borrowed {
		return nil, ErrCursorActive
	}
	l.borrowed = true
	return &Cursor[T]{list: l}, nil
}

// Close returns the list to its owner. Closing twice is a no-op.
func (c *Cursor[T]) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.cur = nil
	c.list.borrowed = false
}

func (c *Cursor[T]) check() {
	if c.closed {
		panic(ErrCursorClosed)
	}
}

// Index returns the position of the cursor, or false on the ghost.
func (c *Cursor[T]) Index() (int, bool) {
	c.check()

	if c.cur == nil {
		return 0, false
	}
	return c.index, true
}

// MoveNext moves towards the tail. From the ghost it moves to the head; from
// the tail it moves to the ghost.
func (c *Cursor[T]) MoveNext() {
	c.check()

	if c.cur == nil {
		c.cur = c.list.head
		c.index = 0
		return
	}
	c.cur = c.cur.next
	if c.cur == nil {
		c.index = 0
		return
	}
	c.index++
}

// MovePrev moves towards the head. From the ghost it moves to the tail; from
// the head it moves to the ghost.
func (c *Cursor[T]) MovePrev() {
	c.check()

	if c.cur == nil {
		c.cur = c.list.tail
		if c.cur != nil {
			c.index = c.list.len - 1
		}
		return
	}
	c.cur = c.cur.prev
	if c.cur == nil {
		c.index = 0
		return
	}
	c.index--
}

func (c *Cursor[T]) nextNode() *node[T] {
	if c.cur == nil {
		return c.list.head
	}
	return c.cur.next
}

func (c *Cursor[T]) prevNode() *node[T] {
	if c.cur == nil {
		return c.list.tail
	}
	return c.cur.prev
}

func (c *Cursor[T]) Current() (T, bool) {
	c.check()
	return valueOf(c.cur)
}

// CurrentMut returns a pointer to the element under the cursor, or nil on
// the ghost.
func (c *Cursor[T]) CurrentMut() *T {
	c.check()
	return pointerTo(c.cur)
}

// PeekNext returns the element [MoveNext] would land on.
func (c *Cursor[T]) PeekNext() (T, bool) {
	c.check()
	return valueOf(c.nextNode())
}

func (c *Cursor[T]) PeekNextMut() *T {
	c.check()
	return pointerTo(c.nextNode())
}

// PeekPrev returns the element [MovePrev] would land on.
func (c *Cursor[T]) PeekPrev() (T, bool) {
	c.check()
	return valueOf(c.prevNode())
}

func (c *Cursor[T]) PeekPrevMut() *T {
	c.check()
	return pointerTo(c.prevNode())
}

// SplitBefore moves every element before the cursor into a new list and
// returns it. The cursor stays on its element, which becomes index 0. On the
// ghost the whole list is moved out.
func (c *Cursor[T]) SplitBefore() *DList[T] {
	c.check()

	l := c.list
	if c.cur == nil {
		moved := l.len
		out := l.derive(l.take())
		l.split(moved)
		return out
	}

	prefix := chain[T]{head: l.head, tail: c.cur.prev, len: c.index}
	if prefix.len > 0 {
		prefix.tail.next = nil
		c.cur.prev = nil
		l.head = c.cur
		l.len -= prefix.len
		l.version++
	} else {
		prefix.head = nil
	}
	c.index = 0
	l.split(prefix.len)
	return l.derive(prefix)
}

// SplitAfter moves every element after the cursor into a new list and
// returns it. On the ghost the whole list is moved out.
func (c *Cursor[T]) SplitAfter() *DList[T] {
	c.check()

	l := c.list
	if c.cur == nil {
		moved := l.len
		out := l.derive(l.take())
		l.split(moved)
		return out
	}

	suffix := chain[T]{head: c.cur.next, tail: l.tail, len: l.len - c.index - 1}
	if suffix.len > 0 {
		suffix.head.prev = nil
		c.cur.next = nil
		l.tail = c.cur
		l.len -= suffix.len
		l.version++
	} else {
		suffix.tail = nil
	}
	l.split(suffix.len)
	return l.derive(suffix)
}

func (c *Cursor[T]) spliceSource(other *DList[T]) chain[T] {
	if other == c.list {
		panic(ErrSelfSplice)
	}
	other.checkAccess()
	return other.take()
}

// SpliceBefore moves every element of [other] in front of the cursor in
// constant time, leaving [other] empty. The cursor stays on its element. On
// the ghost the elements are appended after the tail.
func (c *Cursor[T]) SpliceBefore(other *DList[T]) {
	c.check()

	in := c.spliceSource(other)
	c.insertBefore(in)
	c.list.spliced(in.len)
}

// SpliceAfter moves every element of [other] behind the cursor in constant
// time, leaving [other] empty. On the ghost the elements are prepended before
// the head.
func (c *Cursor[T]) SpliceAfter(other *DList[T]) {
	c.check()

	in := c.spliceSource(other)
	c.insertAfter(in)
	c.list.spliced(in.len)
}

// InsertBefore adds [v] in front of the cursor, following the positional
// rules of [Cursor.SpliceBefore].
func (c *Cursor[T]) InsertBefore(v T) {
	c.check()

	n := c.list.alloc(v)
	c.insertBefore(chain[T]{head: n, tail: n, len: 1})
}

// InsertAfter adds [v] behind the cursor, following the positional rules of
// [Cursor.SpliceAfter].
func (c *Cursor[T]) InsertAfter(v T) {
	c.check()

	n := c.list.alloc(v)
	c.insertAfter(chain[T]{head: n, tail: n, len: 1})
}

func (c *Cursor[T]) insertBefore(in chain[T]) {
	l := c.list
	if c.cur == nil {
		l.insertChain(in, l.tail, nil)
		return
	}
	l.insertChain(in, c.cur.prev, c.cur)
	c.index += in.len
}

func (c *Cursor[T]) insertAfter(in chain[T]) {
	l := c.list
	if c.cur == nil {
		l.insertChain(in, nil, l.head)
		return
	}
	l.insertChain(in, c.cur, c.cur.next)
}

// RemoveCurrent unlinks the element under the cursor and returns it. The
// cursor moves to the following element, which takes over the index, or to
// the ghost if the tail was removed. On the ghost nothing is removed.
func (c *Cursor[T]) RemoveCurrent() (T, bool) {
	c.check()

	n := c.cur
	if n == nil {
		var zero T
		return zero, false
	}
	c.cur = n.next
	if c.cur == nil {
		c.index = 0
	}
	c.list.unlink(n)
	return c.list.free(n), true
}

func valueOf[T any](n *node[T]) (T, bool) {
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

func pointerTo[T any](n *node[T]) *T {
	if n == nil {
		return nil
	}
	return &n.value
}
