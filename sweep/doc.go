// Package sweep explores the risk-perception parameters of the SIS model.
//
// Run crosses a list of H values with a list of J values, simulates every
// point Replicates times on independent random streams and averages the
// infected-fraction series. Points run in parallel; each replicate is still a
// single-threaded epidemic.Simulator.
//
//	res, err := sweep.Run(ctx, g,
//		epidemic.Params{Tau: 0.3, Gamma: 0.1, Iterations: 200, InitialInfected: 5},
//		sweep.Grid{H: []float64{0, 0.5, 1}, J: []float64{0, 1, 2, 4}, Replicates: 20},
//		sweep.WithWorkers(4), sweep.WithSeed(7))
package sweep
