// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dlist

import "errors"

var (
	ErrCursorActive           = errors.New("cursor already checked out")
	ErrBorrowed               = errors.New("list is borrowed by a cursor")
	ErrCursorClosed           = errors.New("cursor is closed")
	ErrConcurrentModification = errors.New("list modified during iteration")
	ErrSelfSplice             = errors.New("cannot splice a list into itself")
	ErrCorrupted              = errors.New("list invariant violated")
)
