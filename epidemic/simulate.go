// SPDX-License-Identifier: MIT
// Package: epinet/epidemic
//
// simulate.go: the epidemic driver.
//
// Per step i in [0, Iterations):
//  1. series[i] = infected/N, recorded before the step's dynamics.
//  2. risk perception pass (H, J).
//  3. transmission pass (Tau).
//  4. recovery pass (Gamma).
//
// Hooks (OnStep, Progress) run after step 4 and are observational only. The
// context is checked at the same boundary; a done context ends the run with
// the partial series and PhaseCanceled.

package epidemic

import (
	"fmt"
	"time"
)

const methodSimulate = "Simulate"

// Params is the full parameter set of one run.
type Params struct {
	H               float64 `json:"h"`                // baseline caution, ≥ 0
	J               float64 `json:"j"`                // sensitivity to infected neighbors, ≥ 0
	Tau             float64 `json:"tau"`              // baseline transmission coefficient, [0,1]
	Gamma           float64 `json:"gamma"`            // recovery probability, [0,1]
	Iterations      int     `json:"iterations"`       // series length, ≥ 0
	InitialInfected int     `json:"initial_infected"` // nodes infected at step 0, [0, N]
}

// Validate checks every parameter that does not depend on the graph.
func (p Params) Validate() error {
	if err := validateRiskParams(methodSimulate, p.H, p.J); err != nil {
		return err
	}
	if !probability(p.Tau) {
		return fmt.Errorf("%s: tau=%v: %w", methodSimulate, p.Tau, ErrParameterOutOfRange)
	}
	if !probability(p.Gamma) {
		return fmt.Errorf("%s: gamma=%v: %w", methodSimulate, p.Gamma, ErrParameterOutOfRange)
	}
	if p.Iterations < 0 {
		return fmt.Errorf("%s: iterations=%d: %w", methodSimulate, p.Iterations, ErrParameterOutOfRange)
	}
	if p.InitialInfected < 0 {
		return fmt.Errorf("%s: initial infected=%d: %w", methodSimulate, p.InitialInfected, ErrInvalidSampleSize)
	}

	return nil
}

// Simulate initializes the infected set and runs p.Iterations steps,
// returning the infected fraction recorded entering each step.
//
// Errors (returned before any mutation):
//   - ErrParameterOutOfRange: see Params.Validate.
//   - ErrInvalidSampleSize: InitialInfected outside [0, Len()].
//
// If the context set with WithContext is done after a step, Simulate returns
// the series recorded so far together with the wrapped context error.
//
// Complexity: O(Iterations · (V + E)).
func (s *Simulator) Simulate(p Params) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.InitializeInfected(p.InitialInfected); err != nil {
		return nil, fmt.Errorf("%s: %w", methodSimulate, err)
	}

	s.phase = PhaseRunning
	series := make([]float64, 0, p.Iterations)
	for i := 0; i < p.Iterations; i++ {
		start := time.Now()
		infected := s.CountInfected()
		frac := float64(infected) / float64(len(s.nodes))
		series = append(series, frac)

		meanRisk := s.evaluateRisk(p.H, p.J)
		newInfections := s.spreadPass(p.Tau)
		recoveries := s.recoverPass(p.Gamma)

		s.opts.onStep(StepStats{
			Step:             i,
			Total:            p.Iterations,
			InfectedFraction: frac,
			Infected:         infected,
			NewInfections:    newInfections,
			Recoveries:       recoveries,
			MeanRisk:         meanRisk,
			Duration:         time.Since(start),
		})
		s.opts.progress(i+1, p.Iterations)

		if err := s.opts.ctx.Err(); err != nil && i+1 < p.Iterations {
			s.phase = PhaseCanceled
			return series, fmt.Errorf("%s: stopped after step %d of %d: %w", methodSimulate, i+1, p.Iterations, err)
		}
	}
	s.phase = PhaseCompleted

	return series, nil
}
