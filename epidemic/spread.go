// SPDX-License-Identifier: MIT
// Package: epinet/epidemic
//
// spread.go: transmission pass.
//
// Contract:
//   - Infected nodes have JustInfected cleared and are skipped.
//   - A Susceptible node counts infected neighbors from the snapshot taken
//     before this pass mutated anything, so nodes infected earlier in the
//     same pass do not transmit.
//   - With s=0 no draw is made. Otherwise one Float64 draw U is made and the
//     node becomes Infected (JustInfected=true) when U < tau·risk.

package epidemic

import "fmt"

const methodSpread = "Spread"

// Spread runs one transmission pass with baseline coefficient tau.
//
// Errors:
//   - ErrParameterOutOfRange: tau outside [0,1] or NaN.
//
// Complexity: O(V + E).
func (s *Simulator) Spread(tau float64) error {
	if !probability(tau) {
		return fmt.Errorf("%s: tau=%v: %w", methodSpread, tau, ErrParameterOutOfRange)
	}
	s.spreadPass(tau)

	return nil
}

// spreadPass returns the number of new infections.
func (s *Simulator) spreadPass(tau float64) int {
	for i := range s.nodes {
		s.snapshot[i] = s.nodes[i].State == Infected
	}
	wasInfected := func(j int) bool { return s.snapshot[j] }

	newInfections := 0
	for i := range s.nodes {
		nd := &s.nodes[i]
		if nd.State == Infected {
			nd.JustInfected = false
			continue
		}
		if s.infectedNeighbors(i, wasInfected) == 0 {
			continue
		}
		if s.src.Float64() < tau*nd.RiskPerception {
			nd.State = Infected
			nd.JustInfected = true
			newInfections++
		}
	}

	return newInfections
}
