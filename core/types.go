// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge and Graph declarations, construction options and sentinel errors.
// Policy:
//   - Topology only. Per-node simulation attributes live with their owners (see package epidemic).
//   - Separate locks for the vertex catalog (muVert) and edges+adjacency (muEdgeAdj).
//   - Lock order is always muVert -> muEdgeAdj.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is a member of the graph's node identity set.
//
// ID is stable for the lifetime of the graph and is the key used by every
// consumer (simulators, composers, writers) to attach their own per-node data.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string
}

// Edge is a contact between two vertices.
//
// Contact graphs carry no weights: an Edge only records its endpoints and
// whether it is one-way (Directed) or mutual.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Directed is true for one-way edges (information networks) and false
	// for mutual contacts.
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness applied to every new edge
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory contact graph.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags, immutable after NewGraph.
	directed   bool
	allowMulti bool
	allowLoops bool

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[from][to][edgeID] = struct{}{}; undirected edges are mirrored.
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph configured by opts.
// By default a Graph is undirected, with no loops and no multi-edges,
// which is the shape of a simple contact network.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether new edges are one-way.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}
