// SPDX-License-Identifier: MIT
// Package: epinet/epidemic
//
// simulator.go: the simulation context: a frozen topology snapshot plus the
// per-node records the engines read and mutate.
//
// Ownership:
//   - The Graph owns topology; New copies it into index form once.
//   - The Simulator exclusively owns NodeState records for its lifetime.
// Concurrency:
//   - A Simulator is single-threaded. Independent Simulators may share one
//     read-only Graph.

package epidemic

import "fmt"

const methodNew = "New"

// Simulator is the explicit simulation context passed to every engine call.
type Simulator struct {
	ids   []string       // node order = Graph.Vertices() order
	index map[string]int // node ID → position in ids
	adj   [][]int        // adj[i] = positions of i's distinct neighbors

	nodes    []NodeState
	snapshot []bool // scratch: infected-at-step-start, reused by Spread

	src   Source
	opts  options
	phase Phase
}

// New snapshots the topology of g and returns a Simulator whose nodes are all
// Susceptible with risk perception 1.
//
// Errors:
//   - ErrGraphNil: g is nil.
//   - ErrEmptyGraph: g has no vertices.
//   - ErrUnknownVertex: a neighbor is not among g.Vertices().
//   - Errors from g.NeighborIDs, wrapped.
//
// Complexity: O(V + E).
func New(g Graph, opts ...Option) (*Simulator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = rngFromSeed(0)
	}

	ids := g.Vertices()
	if len(ids) == 0 {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrEmptyGraph)
	}

	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	adj := make([][]int, len(ids))
	for i, id := range ids {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("%s: NeighborIDs(%s): %w", methodNew, id, err)
		}
		row := make([]int, len(nbrs))
		for j, nb := range nbrs {
			pos, ok := index[nb]
			if !ok {
				return nil, fmt.Errorf("%s: neighbor %q of %q: %w", methodNew, nb, id, ErrUnknownVertex)
			}
			row[j] = pos
		}
		adj[i] = row
	}

	nodes := make([]NodeState, len(ids))
	for i, id := range ids {
		nodes[i] = NodeState{ID: id, State: Susceptible, RiskPerception: 1}
	}

	return &Simulator{
		ids:      ids,
		index:    index,
		adj:      adj,
		nodes:    nodes,
		snapshot: make([]bool, len(ids)),
		src:      o.src,
		opts:     o,
		phase:    PhaseNotStarted,
	}, nil
}

// Len returns the number of nodes.
func (s *Simulator) Len() int { return len(s.nodes) }

// IDs returns the node IDs in iteration order. The slice is a copy.
func (s *Simulator) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Phase returns the lifecycle phase of the most recent Simulate call.
func (s *Simulator) Phase() Phase { return s.phase }

// Degree returns the number of distinct neighbors of id.
func (s *Simulator) Degree(id string) (int, error) {
	i, err := s.lookup(id)
	if err != nil {
		return 0, err
	}
	return len(s.adj[i]), nil
}

// Node returns a copy of the record for id.
func (s *Simulator) Node(id string) (NodeState, error) {
	i, err := s.lookup(id)
	if err != nil {
		return NodeState{}, err
	}
	return s.nodes[i], nil
}

// State returns the compartment of id.
func (s *Simulator) State(id string) (State, error) {
	n, err := s.Node(id)
	return n.State, err
}

// JustInfected reports whether id was infected during the current step.
func (s *Simulator) JustInfected(id string) (bool, error) {
	n, err := s.Node(id)
	return n.JustInfected, err
}

// RiskPerception returns the risk perception computed by the last
// EvaluateRiskPerception call (1 before any evaluation).
func (s *Simulator) RiskPerception(id string) (float64, error) {
	n, err := s.Node(id)
	return n.RiskPerception, err
}

// Infect forces id into Infected with JustInfected set, exactly as if it had
// been infected in the current step.
func (s *Simulator) Infect(id string) error {
	i, err := s.lookup(id)
	if err != nil {
		return err
	}
	s.nodes[i].State = Infected
	s.nodes[i].JustInfected = true

	return nil
}

// SetSusceptible forces id into Susceptible and clears JustInfected.
func (s *Simulator) SetSusceptible(id string) error {
	i, err := s.lookup(id)
	if err != nil {
		return err
	}
	s.nodes[i].State = Susceptible
	s.nodes[i].JustInfected = false

	return nil
}

// Nodes returns a copy of every record, in iteration order.
func (s *Simulator) Nodes() []NodeState {
	out := make([]NodeState, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// CountInfected returns the number of Infected nodes.
// Complexity: O(V).
func (s *Simulator) CountInfected() int {
	c := 0
	for i := range s.nodes {
		if s.nodes[i].State == Infected {
			c++
		}
	}
	return c
}

// InfectedFraction returns CountInfected()/Len().
func (s *Simulator) InfectedFraction() float64 {
	return float64(s.CountInfected()) / float64(len(s.nodes))
}

// Reseed replaces the random source with a fresh stream for seed
// (seed==0 selects the default seed). Use it to replay or replicate runs on
// one topology snapshot.
func (s *Simulator) Reseed(seed int64) { s.src = rngFromSeed(seed) }

func (s *Simulator) lookup(id string) (int, error) {
	i, ok := s.index[id]
	if !ok {
		return 0, fmt.Errorf("vertex %q: %w", id, ErrUnknownVertex)
	}
	return i, nil
}

// infectedNeighbors counts neighbors of node i marked in infected.
func (s *Simulator) infectedNeighbors(i int, infected func(int) bool) int {
	c := 0
	for _, j := range s.adj[i] {
		if infected(j) {
			c++
		}
	}
	return c
}
