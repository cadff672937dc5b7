// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// impl_path.go - Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1) -> i for i=1..n-1 in increasing order.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/epinet/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			u, v := cfg.idFn(i-1), cfg.idFn(i)
			if _, err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodPath, u, v, err)
			}
		}

		return nil
	}
}
