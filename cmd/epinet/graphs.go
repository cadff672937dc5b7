// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/epinet/builder"
	"github.com/katalvlaran/epinet/config"
	"github.com/katalvlaran/epinet/core"
	"github.com/katalvlaran/epinet/dataio"
)

// buildGraph materializes a contact graph from its configuration.
func buildGraph(gc config.GraphConfig) (*core.Graph, error) {
	var ctor builder.Constructor
	switch gc.Kind {
	case config.KindCycle:
		ctor = builder.Cycle(gc.N)
	case config.KindPath:
		ctor = builder.Path(gc.N)
	case config.KindStar:
		ctor = builder.Star(gc.N)
	case config.KindComplete:
		ctor = builder.Complete(gc.N)
	case config.KindGrid:
		ctor = builder.Grid(gc.Rows, gc.Cols)
	case config.KindRandom:
		ctor = builder.RandomSparse(gc.N, gc.P)
	case config.KindFile:
		return dataio.ReadEdgeListFile(gc.Path)
	default:
		return nil, fmt.Errorf("unknown graph kind %q", gc.Kind)
	}

	return builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(gc.Seed)}, ctor)
}

// addGraphFlags registers the contact-graph overrides shared by simulate and sweep.
func addGraphFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("graph", "", "Graph kind: cycle, path, star, complete, grid, random, file")
	f.Int("n", 0, "Number of nodes")
	f.Int("rows", 0, "Grid rows")
	f.Int("cols", 0, "Grid columns")
	f.Float64("p", 0, "Edge probability for random graphs")
	f.Int64("graph-seed", 0, "Seed for random graphs")
	f.String("edges", "", "Edge-list CSV (implies --graph file)")
}

func applyGraphFlags(cmd *cobra.Command, gc *config.GraphConfig) error {
	f := cmd.Flags()
	for _, err := range []error{
		override(cmd, "graph", &gc.Kind, f.GetString),
		override(cmd, "n", &gc.N, f.GetInt),
		override(cmd, "rows", &gc.Rows, f.GetInt),
		override(cmd, "cols", &gc.Cols, f.GetInt),
		override(cmd, "p", &gc.P, f.GetFloat64),
		override(cmd, "graph-seed", &gc.Seed, f.GetInt64),
		override(cmd, "edges", &gc.Path, f.GetString),
	} {
		if err != nil {
			return err
		}
	}
	if f.Changed("edges") {
		gc.Kind = config.KindFile
	}
	return nil
}
