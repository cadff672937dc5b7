// SPDX-License-Identifier: MIT
// Package: epinet/epidemic
//
// risk.go: risk perception pass.
//
//	risk(v) = exp(-(H + J·s/k))
//
// where k is the number of distinct neighbors of v and s the number of them
// that are Infected. A node with k=0 has no infected neighbors, so its risk
// is exp(-H).
//
// The pass is synchronous: it reads states only and writes only
// RiskPerception, so node order does not matter and no randomness is used.

package epidemic

import (
	"fmt"
	"math"
)

const methodEvaluateRiskPerception = "EvaluateRiskPerception"

// EvaluateRiskPerception recomputes RiskPerception for every node from the
// current states.
//
// Errors:
//   - ErrParameterOutOfRange: H or J negative, NaN or infinite.
//
// Every written value lies in (0,1]. Complexity: O(V + E).
func (s *Simulator) EvaluateRiskPerception(H, J float64) error {
	if err := validateRiskParams(methodEvaluateRiskPerception, H, J); err != nil {
		return err
	}
	s.evaluateRisk(H, J)

	return nil
}

// evaluateRisk is EvaluateRiskPerception without validation. It returns the
// mean risk over all nodes.
func (s *Simulator) evaluateRisk(H, J float64) float64 {
	isInfected := func(j int) bool { return s.nodes[j].State == Infected }

	var sum float64
	for i := range s.nodes {
		exponent := H
		if k := len(s.adj[i]); k > 0 {
			exponent += J * float64(s.infectedNeighbors(i, isInfected)) / float64(k)
		}
		r := math.Exp(-exponent)
		if r == 0 {
			// exp underflows for very large H; keep the value strictly positive.
			r = math.SmallestNonzeroFloat64
		}
		s.nodes[i].RiskPerception = r
		sum += r
	}

	return sum / float64(len(s.nodes))
}

func validateRiskParams(method string, H, J float64) error {
	if !finiteNonNegative(H) {
		return fmt.Errorf("%s: H=%v: %w", method, H, ErrParameterOutOfRange)
	}
	if !finiteNonNegative(J) {
		return fmt.Errorf("%s: J=%v: %w", method, J, ErrParameterOutOfRange)
	}
	return nil
}

func finiteNonNegative(x float64) bool {
	return x >= 0 && !math.IsInf(x, 1)
}

// probability reports whether p lies in [0,1]. NaN fails both comparisons.
func probability(p float64) bool {
	return p >= 0 && p <= 1
}
