// SPDX-License-Identifier: MIT
// Package: epinet/infonet
//
// compose.go: blending a physical and a virtual contact layer into one
// directed information network.
//
// Algorithm:
//  1. Check that both layers list the same vertex set.
//  2. Add every vertex to an empty directed graph.
//  3. Physical layer: for each vertex u (sorted) and each neighbor v of u
//     (sorted), draw U; keep u→v when U < 1-q.
//  4. Virtual layer: same walk; keep u→v when U < q.
//
// An undirected contact {u,v} is therefore drawn twice per layer, once per
// direction, and the result need not be symmetric. A direction selected by
// both layers appears once. Every candidate consumes exactly one draw, also
// when q is 0 or 1.
//
// Complexity: O((V + E)·log) time for sorting, O(V + E) space.

package infonet

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/epinet/core"
)

const methodCompose = "Compose"

// Compose builds the information network of physical and virtual with
// virtual-trust probability q. Without WithSeed/WithSource the default seed
// is used.
//
// Errors:
//   - ErrGraphNil: either layer is nil.
//   - ErrParameterOutOfRange: q outside [0,1] or NaN.
//   - ErrVertexSetMismatch: the layers' vertex sets differ.
//   - ErrUnknownVertex: a layer reports a neighbor outside its vertex set.
//   - Errors from NeighborIDs, wrapped.
func Compose(physical, virtual Graph, q float64, opts ...Option) (*core.Graph, error) {
	if physical == nil || virtual == nil {
		return nil, fmt.Errorf("%s: %w", methodCompose, ErrGraphNil)
	}
	if math.IsNaN(q) || q < 0 || q > 1 {
		return nil, fmt.Errorf("%s: q=%v: %w", methodCompose, q, ErrParameterOutOfRange)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		WithSeed(defaultSeed)(&o)
	}

	ids, err := sharedVertices(physical, virtual)
	if err != nil {
		return nil, err
	}

	out := core.NewGraph(core.WithDirected(true), core.WithLoops())
	for _, id := range ids {
		if err = out.AddVertex(id); err != nil {
			return nil, fmt.Errorf("%s: %w", methodCompose, err)
		}
	}

	known := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		known[id] = struct{}{}
	}

	var st Stats
	layers := []struct {
		g     Graph
		layer Layer
		keep  float64
		cand  *int
		kept  *int
	}{
		{physical, Physical, 1 - q, &st.PhysicalCandidates, &st.PhysicalKept},
		{virtual, Virtual, q, &st.VirtualCandidates, &st.VirtualKept},
	}
	for _, l := range layers {
		for _, u := range ids {
			nbrs, nerr := l.g.NeighborIDs(u)
			if nerr != nil {
				return nil, fmt.Errorf("%s: %s layer NeighborIDs(%s): %w", methodCompose, l.layer, u, nerr)
			}
			nbrs = slices.Clone(nbrs)
			slices.Sort(nbrs)
			for _, v := range slices.Compact(nbrs) {
				if _, ok := known[v]; !ok {
					return nil, fmt.Errorf("%s: %s layer neighbor %q of %q: %w", methodCompose, l.layer, v, u, ErrUnknownVertex)
				}
				*l.cand++
				if o.src.Float64() >= l.keep {
					continue
				}
				if out.HasEdge(u, v) {
					st.Overlap++
					continue
				}
				if _, err = out.AddEdge(u, v); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%s,%s): %w", methodCompose, u, v, err)
				}
				*l.kept++
				o.onEdge(u, v, l.layer)
			}
		}
	}

	if o.stats != nil {
		*o.stats = st
	}

	return out, nil
}

// sharedVertices returns the sorted common vertex set, or ErrVertexSetMismatch.
func sharedVertices(a, b Graph) ([]string, error) {
	va := slices.Clone(a.Vertices())
	vb := slices.Clone(b.Vertices())
	slices.Sort(va)
	slices.Sort(vb)
	if !slices.Equal(va, vb) {
		return nil, fmt.Errorf("%s: physical has %d vertices, virtual has %d: %w",
			methodCompose, len(va), len(vb), ErrVertexSetMismatch)
	}

	return va, nil
}
