// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// impl_grid.go: Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex IDs are "r,c" (fixed coordinate scheme; cfg.idFn is not used).
//   • Stable vertex order: row-major. Stable edge order: Right then Bottom.
//   • Directed graphs get both directions per lattice link.
//
// Complexity: O(rows*cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/epinet/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols orthogonal lattice,
// the graph form of the cellular-automaton neighborhoods.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := fmt.Sprintf(gridIDFmt, r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		directed := g.Directed()
		link := func(u, v string) error {
			if _, err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodGrid, u, v, err)
			}
			if directed {
				if _, err := g.AddEdge(v, u); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodGrid, v, u, err)
				}
			}
			return nil
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := link(u, fmt.Sprintf(gridIDFmt, r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, fmt.Sprintf(gridIDFmt, r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
