// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/trace/noop"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	DefaultEndpoint = "http://localhost:9411/api/v2/spans"

	exportTimeout = 10 * time.Second
	// longer than [exportTimeout] so in-flight exports can finish
	shutdownTimeout = 15 * time.Second
)

type Config struct {
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Zipkin collector URL. [DefaultEndpoint] is used when empty.
	Endpoint string `json:"endpoint" yaml:"endpoint" mapstructure:"endpoint"`

	// The fraction of traces to sample.
	// If >= 1 always samples.
	// If <= 0 never samples.
	SampleRate float64 `json:"sampleRate" yaml:"sampleRate" mapstructure:"sampleRate"`

	AppName string `json:"appName" yaml:"appName" mapstructure:"appName"`
	Version string `json:"version" yaml:"version" mapstructure:"version"`
}

type tracer struct {
	oteltrace.Tracer

	tp *sdktrace.TracerProvider
}

func (t *tracer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return t.tp.Shutdown(ctx)
}

// New returns a tracer exporting to zipkin, or one that drops every span
// when tracing is disabled.
func New(config *Config) (trace.Tracer, error) {
	if !config.Enabled {
		return Noop(config.AppName), nil
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	exporter, err := zipkin.New(endpoint)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithExportTimeout(exportTimeout)),
		sdktrace.WithResource(
			resource.NewWithAttributes(
				semconv.SchemaURL,
				attribute.String("version", config.Version),
				semconv.ServiceNameKey.String(config.AppName),
			),
		),
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(config.SampleRate)),
	)
	return &tracer{
		Tracer: tp.Tracer(config.AppName),
		tp:     tp,
	}, nil
}

// Noop returns a tracer that records nothing.
func Noop(name string) trace.Tracer {
	return &noopTracer{Tracer: noop.NewTracerProvider().Tracer(name)}
}
