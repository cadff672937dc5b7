// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each admissible edge independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j); allow self-loops iff g.Looped()==true.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     For p ∈ {0,1} the edge set is deterministic and no draws are consumed.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (undirected uses j>i).
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/epinet/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if math.IsNaN(p) || p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addIndexedVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}

		// include decides one Bernoulli trial; p ∈ {0,1} never touches the RNG.
		include := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}

		directed := g.Directed()
		loops := g.Looped()
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if !include() {
					continue
				}
				v := cfg.idFn(j)
				if _, err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRandomSparse, u, v, err)
				}
			}
		}

		return nil
	}
}
