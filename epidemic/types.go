// SPDX-License-Identifier: MIT
// Package: epinet/epidemic
//
// types.go: node state model, run phases, consumed contracts and sentinel errors.

package epidemic

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors. Every error returned by this package wraps one of them;
// branch with errors.Is.
var (
	// ErrGraphNil is returned when a nil graph is passed to New.
	ErrGraphNil = errors.New("epidemic: graph is nil")

	// ErrEmptyGraph is returned when the graph has no vertices, so that
	// infected fractions would be undefined.
	ErrEmptyGraph = errors.New("epidemic: graph has no vertices")

	// ErrUnknownVertex is returned when a vertex ID is not part of the
	// topology snapshot (including neighbor IDs the store reports but does
	// not list among its vertices).
	ErrUnknownVertex = errors.New("epidemic: unknown vertex")

	// ErrInvalidSampleSize is returned by InitializeInfected when n is
	// negative or exceeds the number of nodes.
	ErrInvalidSampleSize = errors.New("epidemic: invalid sample size")

	// ErrParameterOutOfRange is returned when tau, gamma are outside [0,1],
	// when H or J are negative or not finite, or when iterations < 0.
	ErrParameterOutOfRange = errors.New("epidemic: parameter out of range")
)

// Graph is the topology contract consumed by the simulator. core.Graph
// satisfies it; any store exposing a stable identity set and neighbor lists
// can be used instead.
//
// Vertices must return every node exactly once, in a deterministic order.
// NeighborIDs must return the distinct neighbors of id; its length is the
// node's degree.
type Graph interface {
	Vertices() []string
	NeighborIDs(id string) ([]string, error)
}

// Source is the random source contract: uniform draws in [0,1) and uniform
// integers in [0,n). *rand.Rand satisfies it. A Source is never shared
// between goroutines by this package.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// State is the two-state SIS compartment of a node.
type State uint8

const (
	// Susceptible nodes can be infected by infected neighbors.
	Susceptible State = iota
	// Infected nodes transmit to neighbors and may recover to Susceptible.
	Infected
)

// String returns "S" or "I".
func (s State) String() string {
	if s == Infected {
		return "I"
	}
	return "S"
}

// NodeState is the per-node record owned by a Simulator.
//
// Invariant: JustInfected is true only for the step in which the node moved
// Susceptible→Infected, and is never true for a Susceptible node.
type NodeState struct {
	ID             string
	State          State
	JustInfected   bool
	RiskPerception float64
}

// Phase is the lifecycle of the most recent Simulate call.
type Phase uint8

const (
	// PhaseNotStarted: no run has been started on this Simulator.
	PhaseNotStarted Phase = iota
	// PhaseRunning: Simulate is iterating.
	PhaseRunning
	// PhaseCompleted: the last run executed all iterations.
	PhaseCompleted
	// PhaseCanceled: the last run stopped at a step boundary because its
	// context was done.
	PhaseCanceled
)

// String returns a lower-case phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseCompleted:
		return "completed"
	case PhaseCanceled:
		return "canceled"
	default:
		return "not_started"
	}
}

// StepStats describes one completed step. It is delivered to the OnStep hook
// and never feeds back into the simulation.
type StepStats struct {
	Step             int           // zero-based step index
	Total            int           // iterations requested for the run
	InfectedFraction float64       // fraction recorded entering the step
	Infected         int           // infected count entering the step
	NewInfections    int           // Susceptible→Infected transitions in the step
	Recoveries       int           // Infected→Susceptible transitions in the step
	MeanRisk         float64       // mean risk perception evaluated in the step
	Duration         time.Duration // wall time of the step
}

// options holds hooks and sources resolved from Option values.
type options struct {
	ctx      context.Context
	src      Source
	progress func(current, total int)
	onStep   func(StepStats)
}
