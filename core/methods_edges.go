// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and queries: AddEdge, RemoveEdge, HasEdge, Edges, EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by numeric edge sequence ("e2" before "e10").
//   - nextEdgeID() is monotonic ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock; queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to and returns its ID. Missing endpoints are
// added on the fly. Undirected edges are mirrored in adjacency so that both
// endpoints see each other as neighbors.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check the multi-edge policy.
//  4. Allocate the ID, store the edge, link adjacency (and its mirror).
//
// Errors:
//   - ErrEmptyVertexID: if from or to is empty.
//   - ErrLoopNotAllowed: if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed: if (from,to) already has an edge and multi-edges are disabled.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if inner := g.adjacency[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Directed: g.directed}
	g.edges[eid] = e

	ensureAdjacency(g, from, to)
	g.adjacency[from][to][eid] = struct{}{}
	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacency[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes one edge and its mirror.
//
// Errors:
//   - ErrEdgeNotFound: if eid is unknown.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// HasEdge reports whether at least one edge links from→to.
// For undirected graphs the mirror makes HasEdge symmetric.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Edges returns all edges sorted by creation order.
// Returned pointers refer to live catalog entries; treat them as read-only.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// EdgeCount returns the number of edges in the catalog.
// An undirected edge counts once even though it is mirrored in adjacency.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns the next textual edge ID ("e1", "e2", ...).
// Must be called under muEdgeAdj write lock.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq recovers the numeric sequence of an edge ID produced by nextEdgeID.
func edgeSeq(eid string) uint64 {
	n, err := strconv.ParseUint(eid[1:], 10, 64)
	if err != nil {
		return 0
	}

	return n
}
