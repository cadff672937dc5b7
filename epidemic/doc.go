// Package epidemic runs a discrete-time SIS (Susceptible–Infected–Susceptible)
// epidemic on a static contact graph, with transmission damped by each node's
// perception of risk.
//
// A Simulator snapshots the topology of any Graph (core.Graph satisfies it)
// and owns one NodeState record per vertex. Every step applies three full
// passes in a fixed order:
//
//   - EvaluateRiskPerception(H, J): risk = exp(-(H + J·s/k)), s infected
//     neighbors out of k; isolated nodes get exp(-H).
//
//   - Spread(tau): a Susceptible node with s>0 becomes Infected when
//     U < tau·risk; s is read from the states entering the pass.
//
//   - Recover(gamma): an Infected node not infected in this step returns to
//     Susceptible when U < gamma.
//
// Simulate(Params) drives InitializeInfected plus Iterations steps and returns
// the infected fraction entering each step, so series[0] always equals
// InitialInfected/N.
//
// Determinism:
//
// All randomness comes from one Source (a seeded *rand.Rand by default).
// Nodes are visited in Graph.Vertices() order, so a fixed seed and a fixed
// graph reproduce a run exactly. A Simulator is not safe for concurrent use;
// run replicates on separate Simulators with DeriveSeed streams.
//
// Observation:
//
// WithProgress and WithOnStep receive callbacks after every step. They never
// feed back into the dynamics. WithContext lets a caller stop a run at a step
// boundary.
//
// Example:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Cycle(100))
//	sim, _ := epidemic.New(g, epidemic.WithSeed(42))
//	series, err := sim.Simulate(epidemic.Params{
//		H: 0, J: 1, Tau: 0.3, Gamma: 0.1, Iterations: 200, InitialInfected: 5,
//	})
package epidemic
