// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

const defaultList = "main"

type Plan struct {
	// The name of the plan.
	Name string `yaml:"name" json:"name"`
	// A description of the plan.
	Description string `yaml:"description" json:"description"`
	// Steps to perform, in order.
	Steps []Step `yaml:"steps" json:"steps"`
}

type Step struct {
	// Description of the step.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// The operation to perform. (required)
	Op Op `yaml:"op" json:"op"`
	// The list the operation applies to. Defaults to "main".
	List string `yaml:"list,omitempty" json:"list,omitempty"`
	// Elements pushed by push_head and push_tail.
	Values []string `yaml:"values,omitempty" json:"values,omitempty"`
	// Element used by set, insert_before, insert_after, and single pushes.
	Value string `yaml:"value,omitempty" json:"value,omitempty"`
	// Number of moves for move_next and move_prev. Defaults to 1.
	Times int `yaml:"times,omitempty" json:"times,omitempty"`
	// Source list of append, splice_before and splice_after.
	From string `yaml:"from,omitempty" json:"from,omitempty"`
	// Destination list of split_before and split_after.
	Into string `yaml:"into,omitempty" json:"into,omitempty"`
	// Assertions checked against the response.
	Require *Require `yaml:"require,omitempty" json:"require,omitempty"`
}

func (s *Step) list() string {
	if s.List == "" {
		return defaultList
	}
	return s.List
}

func (s *Step) times() int {
	if s.Times == 0 {
		return 1
	}
	return s.Times
}

// pushValues returns the elements a push inserts, in order.
func (s *Step) pushValues() []string {
	if len(s.Values) > 0 {
		return s.Values
	}
	return []string{s.Value}
}

type Require struct {
	// Element returned by the step.
	Value *string `yaml:"value,omitempty" json:"value,omitempty"`
	// The step must not return an element.
	Absent bool `yaml:"absent,omitempty" json:"absent,omitempty"`
	// Elements returned by values or reverse.
	Values []string `yaml:"values,omitempty" json:"values,omitempty"`
	// Length of the list after the step.
	Len *int `yaml:"len,omitempty" json:"len,omitempty"`
	// Cursor index after the step. -1 requires the ghost position.
	Index *int `yaml:"index,omitempty" json:"index,omitempty"`
}

type Op string

const (
	OpPushHead      Op = "push_head"
	OpPushTail      Op = "push_tail"
	OpPopHead       Op = "pop_head"
	OpPopTail       Op = "pop_tail"
	OpHead          Op = "head"
	OpTail          Op = "tail"
	OpLen           Op = "len"
	OpValues        Op = "values"
	OpReverse       Op = "reverse"
	OpClear         Op = "clear"
	OpAppend        Op = "append"
	OpCursor        Op = "cursor"
	OpClose         Op = "close"
	OpMoveNext      Op = "move_next"
	OpMovePrev      Op = "move_prev"
	OpCurrent       Op = "current"
	OpSet           Op = "set"
	OpPeekNext      Op = "peek_next"
	OpPeekPrev      Op = "peek_prev"
	OpIndex         Op = "index"
	OpSplitBefore   Op = "split_before"
	OpSplitAfter    Op = "split_after"
	OpSpliceBefore  Op = "splice_before"
	OpSpliceAfter   Op = "splice_after"
	OpInsertBefore  Op = "insert_before"
	OpInsertAfter   Op = "insert_after"
	OpRemoveCurrent Op = "remove_current"
)

type opSpec struct {
	// runs against the open cursor of the list
	cursor   bool
	needFrom bool
	needInto bool
}

var ops = map[Op]opSpec{
	OpPushHead:      {},
	OpPushTail:      {},
	OpPopHead:       {},
	OpPopTail:       {},
	OpHead:          {},
	OpTail:          {},
	OpLen:           {},
	OpValues:        {},
	OpReverse:       {},
	OpClear:         {},
	OpAppend:        {needFrom: true},
	OpCursor:        {},
	OpClose:         {cursor: true},
	OpMoveNext:      {cursor: true},
	OpMovePrev:      {cursor: true},
	OpCurrent:       {cursor: true},
	OpSet:           {cursor: true},
	OpPeekNext:      {cursor: true},
	OpPeekPrev:      {cursor: true},
	OpIndex:         {cursor: true},
	OpSplitBefore:   {cursor: true, needInto: true},
	OpSplitAfter:    {cursor: true, needInto: true},
	OpSpliceBefore:  {cursor: true, needFrom: true},
	OpSpliceAfter:   {cursor: true, needFrom: true},
	OpInsertBefore:  {cursor: true},
	OpInsertAfter:   {cursor: true},
	OpRemoveCurrent: {cursor: true},
}

// verify checks the static shape of a step.
func (s *Step) verify() error {
	spec, ok := ops[s.Op]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOp, s.Op)
	}
	if spec.needFrom && s.From == "" {
		return fmt.Errorf("%w: %s requires from", ErrMissingField, s.Op)
	}
	if spec.needInto && s.Into == "" {
		return fmt.Errorf("%w: %s requires into", ErrMissingField, s.Op)
	}
	if s.From != "" && s.From == s.list() {
		return fmt.Errorf("%w: %s from its own list %q", ErrInvalidStep, s.Op, s.From)
	}
	if s.Into != "" && s.Into == s.list() {
		return fmt.Errorf("%w: %s into its own list %q", ErrInvalidStep, s.Op, s.Into)
	}
	if s.Require != nil && s.Require.Absent && s.Require.Value != nil {
		return fmt.Errorf("%w: require cannot combine absent and value", ErrInvalidStep)
	}
	if s.Times < 0 {
		return fmt.Errorf("%w: negative times %d", ErrInvalidStep, s.Times)
	}
	return nil
}

// Verify checks every step of the plan before anything is executed.
func (p *Plan) Verify() error {
	if len(p.Steps) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPlan, "no steps found")
	}
	for i := range p.Steps {
		if err := p.Steps[i].verify(); err != nil {
			return fmt.Errorf("%w %d: %w", ErrInvalidStep, i, err)
		}
	}
	return nil
}

// unmarshalPlan decodes a YAML plan. JSON plans are accepted since JSON is
// valid YAML.
func unmarshalPlan(bytes []byte) (*Plan, error) {
	if strings.TrimSpace(string(bytes)) == "" {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidPlan)
	}
	var p Plan
	if err := yaml.UnmarshalStrict(bytes, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	return &p, nil
}
