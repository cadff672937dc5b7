// SPDX-License-Identifier: MIT
// Package: epinet/epidemic
//
// recover.go: recovery pass.
//
// Only nodes infected in an earlier step are eligible: a node with
// JustInfected set stays Infected for at least one full step.

package epidemic

import "fmt"

const methodRecover = "Recover"

// Recover runs one recovery pass: every Infected node without JustInfected
// draws U and returns to Susceptible when U < gamma.
//
// Errors:
//   - ErrParameterOutOfRange: gamma outside [0,1] or NaN.
//
// Complexity: O(V).
func (s *Simulator) Recover(gamma float64) error {
	if !probability(gamma) {
		return fmt.Errorf("%s: gamma=%v: %w", methodRecover, gamma, ErrParameterOutOfRange)
	}
	s.recoverPass(gamma)

	return nil
}

// recoverPass returns the number of recoveries.
func (s *Simulator) recoverPass(gamma float64) int {
	recovered := 0
	for i := range s.nodes {
		nd := &s.nodes[i]
		if nd.State != Infected || nd.JustInfected {
			continue
		}
		if s.src.Float64() < gamma {
			nd.State = Susceptible
			recovered++
		}
	}

	return recovered
}
