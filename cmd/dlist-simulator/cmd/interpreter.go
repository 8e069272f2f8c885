// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"slices"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"

	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/ava-labs/dlist/dlist"
)

// listState is a named list together with its open cursor, if any.
type listState struct {
	list   *dlist.DList[string]
	cursor *dlist.Cursor[string]
}

// Interpreter executes steps against a set of named lists. Lists are created
// on first use. An Interpreter is not safe for concurrent use.
type Interpreter struct {
	log      logging.Logger
	tracer   trace.Tracer
	observer dlist.Observer

	lists map[string]*listState
}

// NewInterpreter returns an interpreter without any list. [observer] may be
// nil.
func NewInterpreter(log logging.Logger, tracer trace.Tracer, observer dlist.Observer) *Interpreter {
	return &Interpreter{
		log:      log,
		tracer:   tracer,
		observer: observer,
		lists:    make(map[string]*listState),
	}
}

func (i *Interpreter) state(name string) *listState {
	st, ok := i.lists[name]
	if !ok {
		var opts []dlist.Option
		if i.observer != nil {
			opts = append(opts, dlist.WithObserver(i.observer))
		}
		st = &listState{list: dlist.New[string](opts...)}
		i.lists[name] = st
	}
	return st
}

// source returns a list that is about to be drained by a splice or an
// append.
func (i *Interpreter) source(name string) (*listState, error) {
	st, ok := i.lists[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownList, name)
	}
	if st.cursor != nil {
		return nil, fmt.Errorf("%w: %q", ErrCursorOpen, name)
	}
	return st, nil
}

// destination checks that [name] can receive the result of a split.
func (i *Interpreter) destination(name string) error {
	st, ok := i.lists[name]
	if !ok {
		return nil
	}
	if st.cursor != nil {
		return fmt.Errorf("%w: %q", ErrCursorOpen, name)
	}
	if !st.list.IsEmpty() {
		return fmt.Errorf("%w: %q", ErrListExists, name)
	}
	return nil
}

// Lists returns the names of every known list in lexical order.
func (i *Interpreter) Lists() []string {
	names := maps.Keys(i.lists)
	slices.Sort(names)
	return names
}

// Close closes every open cursor.
func (i *Interpreter) Close() {
	for _, st := range i.lists {
		if st.cursor != nil {
			st.cursor.Close()
			st.cursor = nil
		}
	}
}

// Execute runs [step] and checks its requirements and the structure of every
// list it touched. Failures are reported in the response.
func (i *Interpreter) Execute(ctx context.Context, id int, step *Step) *Response {
	_, span := i.tracer.Start(ctx, "Interpreter.Execute",
		oteltrace.WithAttributes(
			attribute.Int("step", id),
			attribute.String("op", string(step.Op)),
			attribute.String("list", step.list()),
		),
	)
	defer span.End()

	resp := newResponse(id, step)
	err := i.execute(step, resp)
	if st, ok := i.lists[step.list()]; ok {
		resp.Result.Len = st.list.Len()
	}
	if err == nil {
		err = i.validate(step)
	}
	if err == nil {
		err = step.Require.check(resp)
	}

	if err != nil {
		resp.setError(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		i.log.Warn("step failed",
			zap.Int("step", id),
			zap.String("op", string(step.Op)),
			zap.String("list", step.list()),
			zap.Error(err),
		)
		return resp
	}
	i.log.Debug("step executed",
		zap.Int("step", id),
		zap.String("op", string(step.Op)),
		zap.String("list", step.list()),
		zap.Int("len", resp.Result.Len),
	)
	return resp
}

func (i *Interpreter) execute(step *Step, resp *Response) error {
	if err := step.verify(); err != nil {
		return err
	}

	st := i.state(step.list())
	spec := ops[step.Op]
	switch {
	case spec.cursor && st.cursor == nil:
		return fmt.Errorf("%w: %q", ErrNoCursor, step.list())
	case !spec.cursor && st.cursor != nil && step.Op != OpLen && step.Op != OpCursor:
		return fmt.Errorf("%w: %q", ErrCursorOpen, step.list())
	}

	l, c := st.list, st.cursor
	switch step.Op {
	case OpPushHead:
		for _, v := range step.pushValues() {
			l.PushHead(v)
		}
	case OpPushTail:
		for _, v := range step.pushValues() {
			l.PushTail(v)
		}
	case OpPopHead:
		resp.setValue(l.PopHead())
	case OpPopTail:
		resp.setValue(l.PopTail())
	case OpHead:
		resp.setValue(l.Head())
	case OpTail:
		resp.setValue(l.Tail())
	case OpLen:
	case OpValues:
		resp.Result.Values = l.Values()
	case OpReverse:
		it := l.Iter()
		values := make([]string, 0, it.Len())
		for v, ok := it.NextBack(); ok; v, ok = it.NextBack() {
			values = append(values, v)
		}
		resp.Result.Values = values
	case OpClear:
		l.Clear()
	case OpAppend:
		from, err := i.source(step.From)
		if err != nil {
			return err
		}
		l.Append(from.list)
	case OpCursor:
		cursor, err := l.Cursor()
		if err != nil {
			return fmt.Errorf("%w: %q", err, step.list())
		}
		st.cursor = cursor
	case OpClose:
		c.Close()
		st.cursor = nil
	case OpMoveNext:
		for n := 0; n < step.times(); n++ {
			c.MoveNext()
		}
	case OpMovePrev:
		for n := 0; n < step.times(); n++ {
			c.MovePrev()
		}
	case OpCurrent:
		resp.setValue(c.Current())
	case OpSet:
		p := c.CurrentMut()
		if p == nil {
			return ErrGhost
		}
		*p = step.Value
		resp.setValue(*p, true)
	case OpPeekNext:
		resp.setValue(c.PeekNext())
	case OpPeekPrev:
		resp.setValue(c.PeekPrev())
	case OpIndex:
	case OpSplitBefore, OpSplitAfter:
		if err := i.destination(step.Into); err != nil {
			return err
		}
		var out *dlist.DList[string]
		if step.Op == OpSplitBefore {
			out = c.SplitBefore()
		} else {
			out = c.SplitAfter()
		}
		i.lists[step.Into] = &listState{list: out}
	case OpSpliceBefore, OpSpliceAfter:
		from, err := i.source(step.From)
		if err != nil {
			return err
		}
		if step.Op == OpSpliceBefore {
			c.SpliceBefore(from.list)
		} else {
			c.SpliceAfter(from.list)
		}
	case OpInsertBefore:
		c.InsertBefore(step.Value)
	case OpInsertAfter:
		c.InsertAfter(step.Value)
	case OpRemoveCurrent:
		resp.setValue(c.RemoveCurrent())
	}

	if st.cursor != nil {
		resp.setIndex(st.cursor.Index())
	}
	return nil
}

// validate walks every list the step touched.
func (i *Interpreter) validate(step *Step) error {
	for _, name := range []string{step.list(), step.From, step.Into} {
		st, ok := i.lists[name]
		if !ok {
			continue
		}
		if err := st.list.Validate(); err != nil {
			return fmt.Errorf("list %q: %w", name, err)
		}
	}
	return nil
}

// check compares the response of a step against the requirement.
func (r *Require) check(resp *Response) error {
	if r == nil {
		return nil
	}
	got := resp.Result
	if r.Absent && got.Value != nil {
		return fmt.Errorf("%w: expected no value, got %q", ErrRequirementFailed, *got.Value)
	}
	if r.Value != nil {
		if got.Value == nil {
			return fmt.Errorf("%w: expected %q, got no value", ErrRequirementFailed, *r.Value)
		}
		if *got.Value != *r.Value {
			return fmt.Errorf("%w: expected %q, got %q", ErrRequirementFailed, *r.Value, *got.Value)
		}
	}
	if r.Len != nil && *r.Len != got.Len {
		return fmt.Errorf("%w: expected len %d, got %d", ErrRequirementFailed, *r.Len, got.Len)
	}
	if r.Values != nil && !slices.Equal(r.Values, got.Values) {
		return fmt.Errorf("%w: expected values %q, got %q", ErrRequirementFailed, r.Values, got.Values)
	}
	if r.Index != nil {
		if got.Index == nil {
			return fmt.Errorf("%w: expected index %d, list has no open cursor", ErrRequirementFailed, *r.Index)
		}
		if *got.Index != *r.Index {
			return fmt.Errorf("%w: expected index %d, got %d", ErrRequirementFailed, *r.Index, *got.Index)
		}
	}
	return nil
}
