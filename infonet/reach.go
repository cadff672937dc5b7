// SPDX-License-Identifier: MIT
// Package: epinet/infonet
//
// reach.go: how far a message travels through an information network.
//
// Reach is a breadth-first walk along directed information edges: a vertex at
// depth d hears a message from the source after d relays. Vertices are
// dequeued in depth order and neighbors are expanded in NeighborIDs order, so
// Order is deterministic for core.Graph.

package infonet

import (
	"context"
	"fmt"
	"math"
)

const methodReach = "Reach"

// ReachResult is the outcome of Reach.
//   - Order:  vertices in the order they heard the message (source first).
//   - Depth:  relays needed to reach each vertex.
//   - Parent: the vertex each one heard it from (absent for the source).
//   - Total:  vertex count of the network, for Fraction.
type ReachResult struct {
	Source string
	Order  []string
	Depth  map[string]int
	Parent map[string]string
	Total  int
}

type reachItem struct {
	id    string
	depth int
}

// Reach walks g from source. maxDepth > 0 stops after that many relays;
// maxDepth == 0 means no limit. ctx is checked once per dequeued vertex and
// a done context returns the partial result with ctx.Err().
//
// Errors:
//   - ErrGraphNil: g is nil.
//   - ErrParameterOutOfRange: maxDepth < 0.
//   - ErrUnknownVertex: source (or a reported neighbor) is not a vertex of g.
//
// Complexity: O(V + E).
func Reach(ctx context.Context, g Graph, source string, maxDepth int) (*ReachResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if maxDepth < 0 {
		return nil, fmt.Errorf("%s: maxDepth=%d: %w", methodReach, maxDepth, ErrParameterOutOfRange)
	}

	ids := g.Vertices()
	known := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		known[id] = struct{}{}
	}
	if _, ok := known[source]; !ok {
		return nil, fmt.Errorf("%s: source %q: %w", methodReach, source, ErrUnknownVertex)
	}

	res := &ReachResult{
		Source: source,
		Order:  make([]string, 0, len(ids)),
		Depth:  map[string]int{source: 0},
		Parent: make(map[string]string),
		Total:  len(ids),
	}
	queue := []reachItem{{id: source}}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		item := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, item.id)

		if maxDepth > 0 && item.depth == maxDepth {
			continue
		}
		nbrs, err := g.NeighborIDs(item.id)
		if err != nil {
			return res, fmt.Errorf("%s: NeighborIDs(%s): %w", methodReach, item.id, err)
		}
		for _, nb := range nbrs {
			if _, ok := known[nb]; !ok {
				return res, fmt.Errorf("%s: neighbor %q of %q: %w", methodReach, nb, item.id, ErrUnknownVertex)
			}
			if _, seen := res.Depth[nb]; seen {
				continue
			}
			res.Depth[nb] = item.depth + 1
			res.Parent[nb] = item.id
			queue = append(queue, reachItem{id: nb, depth: item.depth + 1})
		}
	}

	return res, nil
}

// Reached returns the number of vertices that heard the message, source
// included.
func (r *ReachResult) Reached() int { return len(r.Order) }

// Fraction returns Reached()/Total.
func (r *ReachResult) Fraction() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Reached()) / float64(r.Total)
}

// MaxDepth returns the largest relay count among reached vertices.
func (r *ReachResult) MaxDepth() int {
	m := 0
	for _, id := range r.Order {
		m = max(m, r.Depth[id])
	}
	return m
}

// MeanDepth returns the mean relay count over reached vertices other than
// the source, or NaN when nobody else was reached.
func (r *ReachResult) MeanDepth() float64 {
	if len(r.Order) < 2 {
		return math.NaN()
	}
	sum := 0
	for _, id := range r.Order[1:] {
		sum += r.Depth[id]
	}
	return float64(sum) / float64(len(r.Order)-1)
}

// PathTo reconstructs the relay chain from the source to dest.
func (r *ReachResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("infonet: %q not reached from %q", dest, r.Source)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
