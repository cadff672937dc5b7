// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle and queries: AddVertex, HasVertex, RemoveVertex, Vertices, VertexCount, Degree.
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
// Concurrency:
//   - Lock order muVert -> muEdgeAdj on every path that touches both catalogs.

package core

import "sort"

// AddVertex inserts a vertex with the given id. Re-adding an existing ID is a no-op.
//
// Implementation:
//   - Stage 1: Reject empty IDs.
//   - Stage 2: Register the vertex under muVert.
//   - Stage 3: Bootstrap an empty adjacency bucket under muEdgeAdj.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id}

	g.muEdgeAdj.Lock()
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes the vertex and every edge incident to it.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(E) for the incident-edge scan, Space O(1).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	var eid string
	var e *Edge
	for eid, e = range g.edges {
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
//
// Determinism:
//   - The order is a contract: stochastic consumers iterate nodes in this
//     order, so a fixed seed reproduces the same run.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of distinct vertices adjacent to id under the
// NeighborIDs policy (outgoing only for directed edges).
//
// A self-loop counts once, because the vertex appears once in its own
// neighbor list. Parallel edges count once.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d), Space O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	deg := 0
	for _, edgeSet := range g.adjacency[id] {
		if len(edgeSet) > 0 {
			deg++
		}
	}

	return deg, nil
}
