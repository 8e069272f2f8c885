// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import "errors"

var (
	ErrInvalidPlan       = errors.New("invalid plan")
	ErrInvalidStep       = errors.New("invalid step")
	ErrUnknownOp         = errors.New("unknown op")
	ErrMissingField      = errors.New("missing field")
	ErrUnknownList       = errors.New("unknown list")
	ErrListExists        = errors.New("list already holds elements")
	ErrCursorOpen        = errors.New("list has an open cursor")
	ErrNoCursor          = errors.New("list has no open cursor")
	ErrGhost             = errors.New("cursor is on the ghost position")
	ErrRequirementFailed = errors.New("requirement failed")
	ErrPlanFailed        = errors.New("plan failed")
	ErrInvalidLine       = errors.New("invalid line")
)
