// SPDX-License-Identifier: MIT
// Package: treedec/hypergraph
//
// types.go — Vertex, Hyperedge, Hypergraph, options and sentinel errors.
//
// Policy:
//   - Vertex IDs are positive integers handed out in increasing order; 0 is
//     never a valid vertex and doubles as the "no vertex" value.
//   - Hyperedge IDs are positive and unique for the lifetime of a graph.
//   - Hyperedge.Elements keeps the caller's order, duplicates included;
//     Hyperedge.Sorted() is the canonical set form used by every
//     containment test downstream.

package hypergraph

import (
	"errors"
	"sync"

	"github.com/katalvlaran/treedec/sets"
)

// Sentinel errors for hypergraph operations.
var (
	// ErrInvalidVertex indicates the zero vertex was passed where a real vertex is required.
	ErrInvalidVertex = errors.New("hypergraph: invalid vertex")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("hypergraph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent hyperedge.
	ErrEdgeNotFound = errors.New("hypergraph: hyperedge not found")

	// ErrEmptyEdge indicates a hyperedge without endpoints.
	ErrEmptyEdge = errors.New("hypergraph: hyperedge has no endpoints")

	// ErrLoopNotAllowed indicates a repeated endpoint when loops are disabled.
	ErrLoopNotAllowed = errors.New("hypergraph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel hyperedge when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("hypergraph: multi-edges not allowed")

	// ErrDuplicateEdgeID indicates AddEdgeWithID was called with an ID already in use.
	ErrDuplicateEdgeID = errors.New("hypergraph: duplicate hyperedge id")
)

// Vertex identifies a vertex of a hypergraph.
type Vertex uint32

// NoVertex is the zero vertex; it never names a real vertex.
const NoVertex Vertex = 0

// EdgeID identifies a hyperedge of a hypergraph.
type EdgeID uint32

// Hyperedge is an identifier plus its ordered endpoint sequence.
type Hyperedge struct {
	// ID is unique within the owning graph.
	ID EdgeID

	// Elements lists the endpoints in insertion order; duplicates allowed.
	Elements []Vertex
}

// Sorted returns the endpoints as a sorted, duplicate-free set.
func (e Hyperedge) Sorted() []Vertex {
	return sets.Normalize(e.Elements)
}

// Contains reports whether v is an endpoint of e.
func (e Hyperedge) Contains(v Vertex) bool {
	for _, x := range e.Elements {
		if x == v {
			return true
		}
	}

	return false
}

// Clone returns a deep copy of e.
func (e Hyperedge) Clone() Hyperedge {
	return Hyperedge{ID: e.ID, Elements: append([]Vertex(nil), e.Elements...)}
}

// View is the read-only surface every decomposition algorithm consumes.
// Implementations must return vertices ascending and hyperedges ascending by ID.
type View interface {
	// Vertices returns all vertices in ascending order.
	Vertices() []Vertex

	// VertexCount returns the number of vertices.
	VertexCount() int

	// IsVertex reports whether v belongs to the graph.
	IsVertex(v Vertex) bool

	// Hyperedges returns all hyperedges ordered by ID.
	Hyperedges() []Hyperedge

	// HyperedgesOf returns the hyperedges containing v, ordered by ID.
	HyperedgesOf(v Vertex) []Hyperedge

	// EdgeCount returns the number of hyperedges.
	EdgeCount() int
}

// Option configures a Hypergraph before creation.
type Option func(h *Hypergraph)

// WithoutLoops rejects hyperedges that repeat an endpoint.
func WithoutLoops() Option {
	return func(h *Hypergraph) { h.allowLoops = false }
}

// WithoutMultiEdges rejects hyperedges whose endpoint set equals an existing one.
func WithoutMultiEdges() Option {
	return func(h *Hypergraph) { h.allowMulti = false }
}

// Hypergraph is a mutable labeled multi-hypergraph.
//
// mu guards every field; reads take the read lock so a graph can be shared by
// concurrent decompositions.
type Hypergraph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool
	allowMulti bool

	// Storage
	nextVertex Vertex                         // last vertex handed out
	nextEdgeID EdgeID                         // last edge id handed out
	vertices   map[Vertex]struct{}            // vertex catalog
	edges      map[EdgeID]*Hyperedge          // edge catalog
	incidence  map[Vertex]map[EdgeID]struct{} // vertex → incident edge ids
}

var _ View = (*Hypergraph)(nil)

// New creates an empty Hypergraph. By default loops and multi-edges are allowed.
// Complexity: O(1)
func New(opts ...Option) *Hypergraph {
	h := &Hypergraph{
		allowLoops: true,
		allowMulti: true,
		vertices:   make(map[Vertex]struct{}),
		edges:      make(map[EdgeID]*Hyperedge),
		incidence:  make(map[Vertex]map[EdgeID]struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Looped reports whether hyperedges may repeat an endpoint.
func (h *Hypergraph) Looped() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.allowLoops
}

// Multigraph reports whether parallel hyperedges are permitted.
func (h *Hypergraph) Multigraph() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.allowMulti
}
