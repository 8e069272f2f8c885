// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/dlist/consts"
	"github.com/ava-labs/dlist/utils"
)

const replHelp = `usage: <op> [list=<name>] [times=<n>] [from=<name>] [into=<name>] [value...]

  push_head/push_tail take any number of values, set and insert_* take one.
  Meta commands: help, lists, history, exit.
`

// parseLine turns a REPL line into a step. Options are key=value words, every
// other word is a value.
func parseLine(line string) (*Step, error) {
	words, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLine, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidLine)
	}

	step := &Step{Op: Op(words[0])}
	for _, word := range words[1:] {
		key, value, ok := strings.Cut(word, "=")
		if !ok {
			step.Values = append(step.Values, word)
			continue
		}
		switch key {
		case "list":
			step.List = value
		case "from":
			step.From = value
		case "into":
			step.Into = value
		case "times":
			step.Times, err = strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("%w: times %q", ErrInvalidLine, value)
			}
		default:
			step.Values = append(step.Values, word)
		}
	}

	switch step.Op {
	case OpSet, OpInsertBefore, OpInsertAfter:
		if len(step.Values) != 1 {
			return nil, fmt.Errorf("%w: %s takes exactly one value", ErrInvalidLine, step.Op)
		}
		step.Value, step.Values = step.Values[0], nil
	case OpPushHead, OpPushTail:
		if len(step.Values) == 0 {
			return nil, fmt.Errorf("%w: %s needs a value", ErrInvalidLine, step.Op)
		}
	default:
		if len(step.Values) != 0 {
			return nil, fmt.Errorf("%w: %s takes no value", ErrInvalidLine, step.Op)
		}
	}
	return step, step.verify()
}

type repl struct {
	sim     *Simulator
	interp  *Interpreter
	history utils.BoundedBuffer[string]
	steps   int
}

func newReplCmd(s *Simulator) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Manipulate lists interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			history, err := utils.NewBoundedBuffer[string](consts.HistorySize, nil)
			if err != nil {
				return err
			}
			r := &repl{
				sim:     s,
				interp:  s.newInterpreter(),
				history: history,
			}
			defer r.interp.Close()
			return r.loop(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func (r *repl) loop(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	utils.Outf("{{cyan}}%s %s{{/}}, type help for usage\n", consts.Name, consts.Version)
	for {
		prompt := promptui.Prompt{
			Label: "dlist",
			Stdin: io.NopCloser(stdin),
		}
		line, err := prompt.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil
		}
		if err != nil {
			return err
		}
		done, err := r.handle(ctx, line, stdout)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// handle executes a single line and reports whether the session is over.
func (r *repl) handle(ctx context.Context, line string, stdout io.Writer) (bool, error) {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return false, nil
	case "exit", "quit":
		return true, nil
	case "help":
		_, err := io.WriteString(stdout, replHelp)
		return false, err
	case "lists":
		for _, name := range r.interp.Lists() {
			if _, err := fmt.Fprintln(stdout, name); err != nil {
				return false, err
			}
		}
		return false, nil
	case "history":
		for i, entry := range r.history.Items() {
			if _, err := fmt.Fprintf(stdout, "%3d  %s\n", i, entry); err != nil {
				return false, err
			}
		}
		return false, nil
	}

	r.history.Insert(line)
	step, err := parseLine(line)
	if err != nil {
		utils.Outf("{{red}}%v{{/}}\n", err)
		return false, nil
	}
	resp := r.interp.Execute(ctx, r.steps, step)
	r.steps++
	if resp.Failed() {
		r.sim.log.Debug("repl step failed", zap.String("line", line))
		utils.Outf("{{red}}%s{{/}}\n", resp.Error)
	}
	return false, resp.Print(stdout)
}
