// SPDX-License-Identifier: MIT
// Package: epinet/infonet
//
// types.go: consumed contracts, layers and sentinel errors.

package infonet

import "errors"

// Sentinel errors; branch with errors.Is.
var (
	// ErrGraphNil is returned when the physical or virtual graph is nil.
	ErrGraphNil = errors.New("infonet: graph is nil")

	// ErrParameterOutOfRange is returned when q lies outside [0,1] or is NaN.
	ErrParameterOutOfRange = errors.New("infonet: parameter out of range")

	// ErrVertexSetMismatch is returned when the two layers do not share the
	// same node identity set.
	ErrVertexSetMismatch = errors.New("infonet: vertex sets differ")

	// ErrUnknownVertex is returned when a layer reports a neighbor that is
	// not among its vertices.
	ErrUnknownVertex = errors.New("infonet: unknown vertex")
)

// Graph is the read-only layer contract; core.Graph satisfies it.
type Graph interface {
	Vertices() []string
	NeighborIDs(id string) ([]string, error)
}

// Source yields uniform draws in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Layer names the contact layer a directed information edge was drawn from.
type Layer uint8

const (
	// Physical edges are kept with probability 1-q.
	Physical Layer = iota
	// Virtual edges are kept with probability q.
	Virtual
)

// String returns "physical" or "virtual".
func (l Layer) String() string {
	if l == Virtual {
		return "virtual"
	}
	return "physical"
}

// Stats counts the directed candidates drawn and kept per layer.
type Stats struct {
	PhysicalCandidates int
	PhysicalKept       int
	VirtualCandidates  int
	VirtualKept        int
	// Overlap counts virtual draws that selected an edge the physical layer
	// had already contributed.
	Overlap int
}
