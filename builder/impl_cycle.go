// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// impl_cycle.go: Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/epinet/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}

		// Emit ring edges; i==n-1 closes the ring back to 0.
		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			if _, err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodCycle, u, v, err)
			}
		}

		return nil
	}
}

// addIndexedVertices inserts cfg.idFn(0..n-1) in ascending index order.
func addIndexedVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}
