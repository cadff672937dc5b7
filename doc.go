// Package epinet is a laboratory for epidemics on contact networks: SIS
// dynamics in which every node damps its own exposure by its perception of
// risk, plus the layered information networks that shape that perception.
//
// 🚀 What is inside?
//
//	core/     - Graph, Vertex, Edge: the topology store every model reads
//	builder/  - deterministic graph families (cycle, path, star, complete,
//	            grid) and seeded G(n,p) random graphs
//	epidemic/ - the SIS engine: risk perception, spread, recovery and the
//	            Simulate driver with progress, step hooks and cancellation
//	infonet/  - composes a directed information network from a physical and
//	            a virtual contact layer, trusting the virtual one with prob. q
//	sweep/    - replicated runs over an (H, J) grid on a bounded worker pool
//	dataio/   - CSV edge lists, series and sweep reports; ".sz" paths are
//	            snappy-compressed
//	metrics/  - Prometheus collectors fed by the step hook
//	progress/ - text and terminal progress renderers
//	config/   - YAML + EPINET_* environment configuration, validated
//	logging/  - zerolog setup
//	cmd/epinet - the command-line front end
//
// Risk perception of node i with k neighbors, s of them infected:
//
//	r(i) = exp(-(H + J·s/k))
//
// and a susceptible node is infected in a step with probability τ·r(i) when
// s > 0. Infected nodes recover with probability γ, except in the step they
// were infected in.
//
// ✨ Quick start:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Grid(20, 20))
//	sim, _ := epidemic.New(g, epidemic.WithSeed(42))
//	series, _ := sim.Simulate(epidemic.Params{
//		H: 0, J: 1, Tau: 0.3, Gamma: 0.1, Iterations: 200, InitialInfected: 5,
//	})
//
//	go install github.com/katalvlaran/epinet/cmd/epinet@latest
package epinet
