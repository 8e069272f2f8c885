// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
)

type Response struct {
	// The index of the step that generated this response.
	ID int `json:"id"`
	// The plan the step belongs to.
	Plan string `json:"plan,omitempty"`
	// The operation that was executed.
	Op Op `json:"op"`
	// The list the operation was executed on.
	List string `json:"list"`
	// The result of the step.
	Result Result `json:"result"`
	// The error message if available.
	Error string `json:"error,omitempty"`
}

type Result struct {
	// Element returned by the step.
	Value *string `json:"value,omitempty"`
	// Elements returned by values and reverse.
	Values []string `json:"values,omitempty"`
	// Length of the list after the step.
	Len int `json:"len"`
	// Cursor index after the step. -1 is the ghost position.
	Index *int `json:"index,omitempty"`
}

func newResponse(id int, step *Step) *Response {
	return &Response{
		ID:   id,
		Op:   step.Op,
		List: step.list(),
	}
}

func (r *Response) setValue(v string, ok bool) {
	if !ok {
		r.Result.Value = nil
		return
	}
	r.Result.Value = &v
}

func (r *Response) setIndex(index int, ok bool) {
	if !ok {
		index = -1
	}
	r.Result.Index = &index
}

func (r *Response) setError(err error) {
	r.Error = err.Error()
}

// Failed reports whether the step returned an error or missed a requirement.
func (r *Response) Failed() bool {
	return r.Error != ""
}

// Print writes the response to [w] as a single line of JSON.
func (r *Response) Print(w io.Writer) error {
	jsonBytes, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}
