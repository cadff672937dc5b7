// SPDX-License-Identifier: MIT
package config

import "github.com/katalvlaran/epinet/epidemic"

// Default returns a valid configuration: a 200-node G(n,0.05) contact graph
// and the classic run of 100 steps with 10 initial infections.
func Default() Config {
	return Config{
		Graph: GraphConfig{Kind: KindRandom, N: 200, P: 0.05, Seed: 1},
		Epidemic: EpidemicConfig{
			H: 0, J: 1, Tau: 0.1, Gamma: 0.1,
			Iterations: 100, InitialInfected: 10, Seed: 1,
		},
		Infonet: InfonetConfig{
			Q:       0.5,
			Seed:    1,
			Virtual: GraphConfig{Kind: KindRandom, N: 200, P: 0.02, Seed: 2},
		},
		Sweep: SweepConfig{
			H:          []float64{0, 0.5, 1},
			J:          []float64{0, 1, 2},
			Replicates: 5,
			Seed:       1,
		},
		Output:  OutputConfig{Format: "csv", Progress: "none"},
		Logging: LoggingConfig{Level: "info", Format: "console", Output: "stderr", TimeFormat: "rfc3339"},
	}
}

// Params converts the epidemic section into simulator parameters.
func (c EpidemicConfig) Params() epidemic.Params {
	return epidemic.Params{
		H:               c.H,
		J:               c.J,
		Tau:             c.Tau,
		Gamma:           c.Gamma,
		Iterations:      c.Iterations,
		InitialInfected: c.InitialInfected,
	}
}
