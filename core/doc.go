// Package core provides the thread-safe in-memory contact graph that backs
// epinet's simulators and composers.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Undirected (contact networks) or directed (information networks) via WithDirected
//   - Optional self-loops (WithLoops) and parallel edges (WithMultiEdges)
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Why a separate store?
//
// Topology is owned here and is frozen while a simulation runs. Per-node
// simulation attributes (state, justInfected, risk perception) are NOT stored
// on vertices: the simulator keeps its own records keyed by vertex ID, which
// lets many simulators read one Graph concurrently and lets callers swap the
// store for any type that offers Vertices() and NeighborIDs().
//
// Core Methods:
//
//	AddVertex(id string) error                  // O(1)
//	HasVertex(id string) bool                   // O(1)
//	RemoveVertex(id string) error               // O(E)
//	AddEdge(from, to string) (string, error)    // O(1)
//	RemoveEdge(edgeID string) error             // O(1)
//	HasEdge(from, to string) bool               // O(1)
//	NeighborIDs(id string) ([]string, error)    // O(d·log d), unique, sorted
//	Degree(id string) (int, error)              // O(d)
//	Vertices() []string                         // O(V·log V), sorted
//	Edges() []*Edge                             // O(E·log E), creation order
//	VertexCount(), EdgeCount() int              // O(1)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
