// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"github.com/ava-labs/avalanchego/trace"

	oteltrace "go.opentelemetry.io/otel/trace"
)

var _ trace.Tracer = (*noopTracer)(nil)

type noopTracer struct {
	oteltrace.Tracer
}

func (*noopTracer) Close() error {
	return nil
}
