// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dlist

// Observer is notified about node lifetime and list surgery.
//
// Lists returned by a split share the observer of the list they were split
// from, so node accounting stays balanced across the family.
type Observer interface {
	// Allocated is called once for every node created.
	Allocated()
	// Freed is called once for every node released by a pop, a clear,
	// a cursor removal, or a consuming iterator.
	Freed()
	// Split is called for every split with the number of nodes moved into
	// the returned list.
	Split(moved int)
	// Spliced is called for every splice or append with the number of nodes
	// moved out of the source list.
	Spliced(moved int)
}

// Option configures a [DList] created by [New] or [FromSlice].
type Option func(*config)

type config struct {
	observer Observer
}

// WithObserver attaches [o] to the list.
func WithObserver(o Observer) Option {
	return func(c *config) {
		c.observer = o
	}
}
