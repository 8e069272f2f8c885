// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/neilotoole/errgroup"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/ava-labs/dlist/utils"
)

const stdinPath = "-"

type runCmd struct {
	sim     *Simulator
	metrics bool

	plans []*Plan
}

func newRunCmd(s *Simulator) *cobra.Command {
	r := &runCmd{sim: s}
	cmd := &cobra.Command{
		Use:   "run [path...]",
		Short: "Run list simulation plans, reading \"-\" from stdin",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.Init(cmd.InOrStdin(), args); err != nil {
				return err
			}
			if err := r.Verify(); err != nil {
				return err
			}
			return r.Run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().Int("parallel", 4, "number of plans run concurrently")
	cmd.Flags().BoolVar(&r.metrics, "metrics", false, "print list metrics to stderr once every plan is done")
	return cmd
}

func (r *runCmd) Init(stdin io.Reader, paths []string) error {
	r.plans = make([]*Plan, 0, len(paths))
	readStdin := false
	for _, path := range paths {
		var (
			planBytes []byte
			err       error
		)
		if path == stdinPath {
			if readStdin {
				return fmt.Errorf("%w: stdin can only be read once", ErrInvalidPlan)
			}
			readStdin = true
			planBytes, err = io.ReadAll(stdin)
		} else {
			planBytes, err = os.ReadFile(path)
		}
		if err != nil {
			return err
		}

		plan, err := unmarshalPlan(planBytes)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if plan.Name == "" {
			plan.Name = path
		}
		r.plans = append(r.plans, plan)
	}
	return nil
}

func (r *runCmd) Verify() error {
	for _, plan := range r.plans {
		if err := plan.Verify(); err != nil {
			return fmt.Errorf("%s: %w", plan.Name, err)
		}
	}
	return nil
}

// Run executes every plan, at most [Config.Parallel] at a time. Responses
// are printed in the order the plans were given.
func (r *runCmd) Run(ctx context.Context, stdout io.Writer, stderr io.Writer) error {
	var (
		outputs  = make([]bytes.Buffer, len(r.plans))
		failures = make([]int, len(r.plans))
		steps    int
	)
	r.sim.log.Info("running plans",
		zap.Strings("plans", utils.Map(func(p *Plan) string { return p.Name }, r.plans)),
		zap.Int("parallel", r.sim.config.Parallel),
	)

	g, ctx := errgroup.WithContextN(ctx, r.sim.config.Parallel, len(r.plans))
	for i, plan := range r.plans {
		i, plan := i, plan
		steps += len(plan.Steps)
		g.Go(func() error {
			var err error
			failures[i], err = r.runPlan(ctx, plan, &outputs[i])
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range outputs {
		if _, err := stdout.Write(outputs[i].Bytes()); err != nil {
			return err
		}
	}
	if r.metrics {
		if err := r.printMetrics(stderr); err != nil {
			return err
		}
	}

	failed := 0
	for _, n := range failures {
		failed += n
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d steps failed", ErrPlanFailed, failed, steps)
	}
	return nil
}

// runPlan executes [plan] on a fresh interpreter and returns the number of
// failed steps.
func (r *runCmd) runPlan(ctx context.Context, plan *Plan, w io.Writer) (int, error) {
	ctx, span := r.sim.tracer.Start(ctx, "Simulator.RunPlan",
		oteltrace.WithAttributes(
			attribute.String("plan", plan.Name),
			attribute.Int("steps", len(plan.Steps)),
		),
	)
	defer span.End()

	r.sim.log.Info("simulation",
		zap.String("plan", plan.Name),
		zap.String("description", plan.Description),
		zap.Int("steps", len(plan.Steps)),
	)

	interp := r.sim.newInterpreter()
	defer interp.Close()

	failed := 0
	for i := range plan.Steps {
		if err := ctx.Err(); err != nil {
			return failed, err
		}
		resp := interp.Execute(ctx, i, &plan.Steps[i])
		resp.Plan = plan.Name
		if resp.Failed() {
			failed++
		}
		if err := resp.Print(w); err != nil {
			return failed, err
		}
	}

	r.sim.log.Info("simulation finished",
		zap.String("plan", plan.Name),
		zap.Strings("lists", interp.Lists()),
		zap.Int("failed", failed),
	)
	return failed, nil
}

func (r *runCmd) printMetrics(w io.Writer) error {
	families, err := r.sim.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, family := range families {
		if err := enc.Encode(family); err != nil {
			return err
		}
	}
	return nil
}
