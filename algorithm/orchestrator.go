// SPDX-License-Identifier: MIT
// Package: treedec/algorithm
//
// orchestrator.go — the pipeline shared by the graph, tree and path decomposers.
//
// Per ComputeDecomposition call:
//  1. Validate inputs and call-scoped operations.
//  2. ordering → buckets → assembly (kind specific).
//  3. Structural operations matching the kind: global first, then call-scoped.
//  4. Labeling functions: global first, then call-scoped; each one sweeps
//     every node before the next starts, reading a label snapshot per node.
//
// Any stage error aborts the run; the partial decomposition is dropped.
// Operations whose capabilities do not match the kind are skipped.

package algorithm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/elimination"
	"github.com/katalvlaran/treedec/hypergraph"
	"github.com/katalvlaran/treedec/operation"
)

// orchestrator holds configuration and the global operation list.
type orchestrator struct {
	kind string
	cap  operation.Capability
	cfg  config
	ops  []operation.Operation
}

func newOrchestrator(kind string, c operation.Capability, opts []Option) (*orchestrator, error) {
	o := &orchestrator{kind: kind, cap: c, cfg: newConfig(opts)}
	if err := o.SetManipulationOperations(o.cfg.operations...); err != nil {
		return nil, err
	}
	o.cfg.operations = nil

	return o, nil
}

// SetManipulationOperations replaces the global operations. Nothing changes
// if any operation fails its capability check.
//
// Errors:
//   - operation.ErrCapabilityMismatch.
func (o *orchestrator) SetManipulationOperations(ops ...operation.Operation) error {
	if err := checkAll(ops); err != nil {
		return fmt.Errorf("SetManipulationOperations: %w", err)
	}
	o.ops = append([]operation.Operation(nil), ops...)

	return nil
}

// AddManipulationOperation appends one global operation.
//
// Errors:
//   - operation.ErrCapabilityMismatch.
func (o *orchestrator) AddManipulationOperation(op operation.Operation) error {
	return o.AddManipulationOperations(op)
}

// AddManipulationOperations appends global operations, all or nothing.
//
// Errors:
//   - operation.ErrCapabilityMismatch.
func (o *orchestrator) AddManipulationOperations(ops ...operation.Operation) error {
	if err := checkAll(ops); err != nil {
		return fmt.Errorf("AddManipulationOperations: %w", err)
	}
	o.ops = append(o.ops, ops...)

	return nil
}

// ManipulationOperations returns the global operations in application order.
func (o *orchestrator) ManipulationOperations() []operation.Operation {
	return append([]operation.Operation(nil), o.ops...)
}

// IsSafelyInterruptible reports whether a run may be abandoned midway
// without corrupting shared state. Always false.
func (o *orchestrator) IsSafelyInterruptible() bool { return false }

func (o *orchestrator) clone() *orchestrator {
	c := &orchestrator{kind: o.kind, cap: o.cap, cfg: o.cfg, ops: make([]operation.Operation, len(o.ops))}
	for i, op := range o.ops {
		c.ops[i] = op.Clone()
	}

	return c
}

func checkAll(ops []operation.Operation) error {
	for i, op := range ops {
		if op == nil {
			return fmt.Errorf("operation %d is nil: %w", i, operation.ErrCapabilityMismatch)
		}
		if err := operation.CheckCapabilities(op); err != nil {
			return err
		}
	}

	return nil
}

// run is the state of one ComputeDecomposition call.
type run struct {
	o       *orchestrator
	ctx     context.Context
	span    trace.Span
	logger  *zap.Logger
	graph   hypergraph.View
	ops     []operation.Operation
	started time.Time
}

func (o *orchestrator) begin(ctx context.Context, g hypergraph.View, callOps []operation.Operation) (*run, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if o.cfg.ordering == nil {
		return nil, ErrNilOrdering
	}
	if err := checkAll(callOps); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	id := uuid.NewString()
	ctx, span := o.cfg.tracer.Start(ctx, "ComputeDecomposition",
		trace.WithAttributes(
			attribute.String("run_id", id),
			attribute.String("kind", o.kind),
			attribute.Int("vertex_count", g.VertexCount()),
			attribute.Int("edge_count", g.EdgeCount()),
			attribute.Int("operation_count", len(o.ops)+len(callOps)),
		),
	)
	r := &run{
		o:       o,
		ctx:     ctx,
		span:    span,
		logger:  o.cfg.logger.With(zap.String("run_id", id), zap.String("kind", o.kind)),
		graph:   g,
		ops:     append(append([]operation.Operation(nil), o.ops...), callOps...),
		started: time.Now(),
	}
	r.logger.Debug("decomposition started",
		zap.Int("vertices", g.VertexCount()),
		zap.Int("hyperedges", g.EdgeCount()),
		zap.String("ordering", o.cfg.ordering.Name()),
	)

	return r, nil
}

// finish closes the run span and records the outcome.
func (r *run) finish(d decomposition.Decomposition, width int, err error) {
	defer r.span.End()
	r.o.cfg.metrics.observeRun(r.o.kind, width, err)
	if err != nil {
		r.span.RecordError(err)
		r.span.SetStatus(codes.Error, err.Error())
		r.logger.Warn("decomposition failed", zap.Error(err))
		return
	}
	r.span.SetAttributes(attribute.Int("node_count", d.NodeCount()), attribute.Int("width", width))
	r.logger.Info("decomposition computed",
		zap.Int("nodes", d.NodeCount()),
		zap.Int("width", width),
		zap.Duration("elapsed", time.Since(r.started)),
	)
}

// stage runs fn inside a child span and wraps its error with the stage name.
func (r *run) stage(name string, fn func() error) error {
	_, span := r.o.cfg.tracer.Start(r.ctx, name)
	defer span.End()
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	r.o.cfg.metrics.observeStage(r.o.kind, name, elapsed)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("%s: %w", name, err)
	}
	r.logger.Debug("stage done", zap.String("stage", name), zap.Duration("elapsed", elapsed))

	return nil
}

// buckets computes the ordering and runs bucket elimination.
func (r *run) buckets() (*elimination.Buckets, error) {
	var order elimination.Ordering
	err := r.stage("ordering", func() (err error) {
		order, err = r.o.cfg.ordering.ComputeOrdering(r.graph)
		return err
	})
	if err != nil {
		return nil, err
	}
	var b *elimination.Buckets
	err = r.stage("buckets", func() (err error) {
		b, err = elimination.BuildBuckets(r.graph, order)
		return err
	})

	return b, err
}

// structural applies every operation declaring the run's kind capability.
func (r *run) structural(apply func(op operation.Operation, scope operation.Scope) error) error {
	for _, op := range r.ops {
		if !op.Capabilities().Has(r.o.cap) {
			continue
		}
		var log operation.ChangeLog
		if err := r.stage(op.Name(), func() error { return apply(op, operation.Scope{Log: &log}) }); err != nil {
			return err
		}
		r.o.cfg.metrics.observeChanges(r.o.kind, op.Name(), len(log.Created), len(log.Removed))
		r.logger.Debug("operation applied",
			zap.String("operation", op.Name()),
			zap.Int("created", len(log.Created)),
			zap.Int("removed", len(log.Removed)),
		)
	}

	return nil
}

// label runs every labeling function over all nodes of d.
func (r *run) label(d decomposition.Decomposition) error {
	for _, op := range r.ops {
		if !op.Capabilities().Has(operation.Labeling) {
			continue
		}
		lf := op.(operation.LabelingFunction)
		err := r.stage(op.Name(), func() error {
			for _, id := range d.Nodes() {
				l, err := lf.ComputeLabel(d.Bag(id), d.ExportLabels(id))
				if err != nil {
					return fmt.Errorf("node %d: %w", id, err)
				}
				if err = d.SetLabel(lf.LabelName(), id, l); err != nil {
					return err
				}
			}

			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}
