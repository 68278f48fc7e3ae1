// SPDX-License-Identifier: MIT
// Package: treedec/algorithm
//
// types.go — sentinel errors and functional options shared by the
// decomposers.

package algorithm

import (
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/treedec/elimination"
	"github.com/katalvlaran/treedec/operation"
)

// Sentinel errors for decomposition algorithms.
var (
	// ErrNilGraph indicates ComputeDecomposition was called without a graph.
	ErrNilGraph = errors.New("algorithm: graph is nil")

	// ErrNilOrdering indicates a decomposer configured without an ordering algorithm.
	ErrNilOrdering = errors.New("algorithm: ordering algorithm is nil")

	// ErrNotPath indicates a linearized tree that still branches.
	ErrNotPath = errors.New("algorithm: decomposition is not a path")
)

const tracerName = "github.com/katalvlaran/treedec/algorithm"

// Option configures a decomposer at construction time.
type Option func(*config)

type config struct {
	ordering   elimination.OrderingAlgorithm
	logger     *zap.Logger
	metrics    *Metrics
	tracer     trace.Tracer
	operations []operation.Operation
}

func newConfig(opts []Option) config {
	cfg := config{
		ordering: elimination.NaturalOrdering{},
		logger:   zap.NewNop(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithOrdering sets the elimination ordering algorithm. Default: natural order.
// A nil algorithm makes every ComputeDecomposition call fail with ErrNilOrdering.
func WithOrdering(o elimination.OrderingAlgorithm) Option {
	return func(c *config) { c.ordering = o }
}

// WithLogger sets the structured logger. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics records run, stage and operation metrics into m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) { c.metrics = m }
}

// WithTracer sets the tracer used for run and stage spans.
// Default: the global otel tracer provider.
func WithTracer(t trace.Tracer) Option {
	return func(c *config) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithOperations registers global manipulation operations, applied on every
// ComputeDecomposition call before the call-scoped ones.
func WithOperations(ops ...operation.Operation) Option {
	return func(c *config) { c.operations = append(c.operations, ops...) }
}
