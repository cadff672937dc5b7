// Package builder provides deterministic constructors for contact-graph
// fixtures: rings, paths, stars, cliques, lattices and Erdős–Rényi graphs.
//
// Graph generation is not part of the simulator contract; epidemic and
// infonet accept any graph exposing Vertices() and NeighborIDs(). The
// builders exist so tests, examples and the epinet CLI can produce
// reproducible topologies:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithIDScheme(builder.PaddedIDFn(4))},
//	    builder.RandomSparse(1000, 0.01))
package builder
