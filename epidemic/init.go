// SPDX-License-Identifier: MIT
// Package: epinet/epidemic
//
// init.go: seeding a run with an initial infected set.

package epidemic

import "fmt"

const methodInitializeInfected = "InitializeInfected"

// InitializeInfected resets every node to Susceptible (JustInfected=false) and
// then marks n nodes, sampled uniformly without replacement, as Infected with
// JustInfected=true.
//
// Errors:
//   - ErrInvalidSampleSize: n < 0 or n > Len(). No node is touched.
//
// Randomness: exactly n Intn draws.
// Complexity: O(V).
func (s *Simulator) InitializeInfected(n int) error {
	if n < 0 || n > len(s.nodes) {
		return fmt.Errorf("%s: n=%d with %d nodes: %w", methodInitializeInfected, n, len(s.nodes), ErrInvalidSampleSize)
	}

	for i := range s.nodes {
		s.nodes[i].State = Susceptible
		s.nodes[i].JustInfected = false
	}
	for _, i := range sampleIndices(s.src, len(s.nodes), n) {
		s.nodes[i].State = Infected
		s.nodes[i].JustInfected = true
	}

	return nil
}
