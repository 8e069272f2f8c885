// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"errors"

	"github.com/ava-labs/dlist/dlist"
)

var (
	_ BoundedBuffer[bool] = (*boundedBuffer[bool])(nil)

	errInvalidMaxSize = errors.New("maxSize must be greater than 0")
)

type BoundedBuffer[T any] interface {
	// Insert adds a new value to the buffer. If the buffer is full, the
	// oldest value is dropped and [onEvict] is invoked with it.
	Insert(elt T)

	// Last retrieves the last item added to the buffer.
	//
	// If no items have been added to the buffer, Last returns the default value of
	// [T] and [false].
	Last() (T, bool)

	// Returns all the items in the buffer sorted from oldest to newest.
	Items() []T
}

// boundedBuffer keeps the [maxSize] most recent entries of type [T].
//
// boundedBuffer is not thread-safe and requires the caller synchronize usage.
type boundedBuffer[T any] struct {
	items   *dlist.DList[T]
	maxSize int
	onEvict func(T)
}

func NewBoundedBuffer[T any](maxSize int, onEvict func(T)) (BoundedBuffer[T], error) {
	if maxSize < 1 {
		return nil, errInvalidMaxSize
	}
	if onEvict == nil {
		onEvict = func(T) {}
	}
	return &boundedBuffer[T]{
		items:   dlist.New[T](),
		maxSize: maxSize,
		onEvict: onEvict,
	}, nil
}

func (b *boundedBuffer[T]) Insert(elt T) {
	if b.items.Len() == b.maxSize {
		evicted, _ := b.items.PopHead()
		b.onEvict(evicted)
	}
	b.items.PushTail(elt)
}

func (b *boundedBuffer[T]) Last() (T, bool) {
	return b.items.Tail()
}

func (b *boundedBuffer[T]) Items() []T {
	return b.items.Values()
}
