// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood API (NeighborIDs) and adjacency helpers.
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lexicographically ascending.
// Concurrency:
//   - Read operations hold muVert and muEdgeAdj read locks in that order.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// NeighborIDs returns the unique set of vertex IDs adjacent to id, sorted
// lexicographically ascending.
//
// Adjacency policy:
//   - Undirected edges: both endpoints see each other.
//   - Directed edges: only the head of an outgoing edge is a neighbor.
//   - A self-loop makes the vertex its own neighbor.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	ids := make([]string, 0, len(g.adjacency[id]))
	for to, edgeSet := range g.adjacency[id] {
		if len(edgeSet) == 0 {
			continue
		}
		ids = append(ids, to)
	}
	sort.Strings(ids)

	return ids, nil
}

// ensureAdjacency allocates the nested bucket adjacency[from][to] if missing.
// Must be called ONLY under the muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency unlinks e.ID from from→to and, for undirected non-loop
// edges, from the mirrored to→from bucket. Empty buckets are pruned so that
// HasEdge and Degree stay exact.
// Must be called ONLY under the muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacency[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacency[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacency[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacency[e.To], e.From)
			}
		}
	}
}
