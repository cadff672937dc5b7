// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// impl_complete.go: Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j} with i<j exactly once,
//     and mirrors to j→i only if g.Directed() is true.
//
// Complexity: O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/epinet/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids := make([]string, n)
		for i := range ids {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodComplete, ids[i], err)
			}
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, err := g.AddEdge(ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodComplete, ids[i], ids[j], err)
				}
				if directed {
					if _, err := g.AddEdge(ids[j], ids[i]); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodComplete, ids[j], ids[i], err)
					}
				}
			}
		}

		return nil
	}
}
