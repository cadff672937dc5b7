// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// impl_star.go: Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Hub has the fixed ID CenterVertexID; leaves use cfg.idFn(1..n-1).
//   • On directed graphs each spoke is emitted in both directions so the hub
//     and leaves keep a symmetric neighborhood.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/epinet/core"
)

// CenterVertexID is the fixed hub ID used by Star.
const CenterVertexID = "Center"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}

		directed := g.Directed()
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if _, err := g.AddEdge(CenterVertexID, leaf); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodStar, CenterVertexID, leaf, err)
			}
			if directed {
				if _, err := g.AddEdge(leaf, CenterVertexID); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodStar, leaf, CenterVertexID, err)
				}
			}
		}

		return nil
	}
}
