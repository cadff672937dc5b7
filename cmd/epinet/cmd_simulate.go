// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/epinet/dataio"
	"github.com/katalvlaran/epinet/epidemic"
)

func newSimulateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one SIS simulation and write its infected-fraction series",
		Long: `Run one SIS simulation with risk perception on a contact graph.

The series has one value per iteration: the infected fraction entering that
step. CSV output holds "step,infected_fraction" rows; JSON output adds the
run ID, parameters and summary. Interrupting the run writes the partial series.`,
		RunE: a.runSimulate,
	}

	addGraphFlags(cmd)
	f := cmd.Flags()
	f.Float64("h", 0, "Baseline caution H (≥ 0)")
	f.Float64("j", 0, "Sensitivity J to infected neighbors (≥ 0)")
	f.Float64("tau", 0, "Transmission coefficient in [0,1]")
	f.Float64("gamma", 0, "Recovery probability in [0,1]")
	f.Int("iterations", 0, "Number of steps")
	f.Int("infected", 0, "Initially infected nodes")
	f.Int64("seed", 0, "Simulation seed (0 selects the default seed)")
	f.String("out", "", "Output path (default stdout; .sz compresses)")
	f.String("format", "", "Output format: csv or json")
	f.String("progress", "", "Progress display: none, text or bar")

	return cmd
}

func (a *app) runSimulate(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	ec := &a.cfg.Epidemic
	for _, err := range []error{
		applyGraphFlags(cmd, &a.cfg.Graph),
		override(cmd, "h", &ec.H, f.GetFloat64),
		override(cmd, "j", &ec.J, f.GetFloat64),
		override(cmd, "tau", &ec.Tau, f.GetFloat64),
		override(cmd, "gamma", &ec.Gamma, f.GetFloat64),
		override(cmd, "iterations", &ec.Iterations, f.GetInt),
		override(cmd, "infected", &ec.InitialInfected, f.GetInt),
		override(cmd, "seed", &ec.Seed, f.GetInt64),
		override(cmd, "out", &a.cfg.Output.Series, f.GetString),
		override(cmd, "format", &a.cfg.Output.Format, f.GetString),
		override(cmd, "progress", &a.cfg.Output.Progress, f.GetString),
		a.revalidate(),
	} {
		if err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, err := buildGraph(a.cfg.Graph)
	if err != nil {
		return err
	}

	opts := []epidemic.Option{
		epidemic.WithSeed(ec.Seed),
		epidemic.WithContext(ctx),
		epidemic.WithOnStep(a.metrics.ObserveStep),
	}
	if sink := progressSink(a.cfg.Output.Progress, cmd.ErrOrStderr(), "simulate"); sink != nil {
		opts = append(opts, epidemic.WithProgress(sink))
	}
	sim, err := epidemic.New(g, opts...)
	if err != nil {
		return err
	}

	params := ec.Params()
	a.log.Info().
		Str("graph", a.cfg.Graph.Kind).
		Int("nodes", sim.Len()).
		Int("edges", g.EdgeCount()).
		Float64("h", params.H).
		Float64("j", params.J).
		Float64("tau", params.Tau).
		Float64("gamma", params.Gamma).
		Int("iterations", params.Iterations).
		Int("infected", params.InitialInfected).
		Int64("seed", ec.Seed).
		Msg("simulation started")

	start := time.Now()
	series, simErr := sim.Simulate(params)
	elapsed := time.Since(start)
	a.metrics.RecordRun(series, simErr, elapsed)
	if simErr != nil && !errors.Is(simErr, context.Canceled) {
		return simErr
	}

	run := dataio.NewRun(ec.Seed, sim.Len(), params, sim.Phase(), series)
	if err = writeOutput(cmd, a.cfg.Output.Series, func(w io.Writer) error {
		return dataio.WriteRun(w, run, a.cfg.Output.Format)
	}); err != nil {
		return err
	}

	a.log.Info().
		Str("run_id", run.ID).
		Str("phase", run.Phase).
		Int("steps", len(series)).
		Float64("peak", run.Summary.Peak).
		Int("peak_step", run.Summary.PeakStep).
		Float64("final", run.Summary.Final).
		Dur("elapsed", elapsed).
		Str("out", a.cfg.Output.Series).
		Msg("simulation finished")

	return simErr
}
