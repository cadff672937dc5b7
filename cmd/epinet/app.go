// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/epinet/config"
	"github.com/katalvlaran/epinet/dataio"
	"github.com/katalvlaran/epinet/logging"
	"github.com/katalvlaran/epinet/metrics"
	"github.com/katalvlaran/epinet/progress"
)

// app is the state shared by every subcommand for one invocation.
type app struct {
	cfg     config.Config
	log     zerolog.Logger
	closer  io.Closer
	metrics *metrics.Registry
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	envFiles, _ := cmd.Flags().GetStringSlice("env-file")

	cfg, err := config.Load(path, envFiles...)
	if err != nil {
		return err
	}
	if err = override(cmd, "log-level", &cfg.Logging.Level, cmd.Flags().GetString); err != nil {
		return err
	}
	if err = override(cmd, "metrics", &cfg.Output.Metrics, cmd.Flags().GetString); err != nil {
		return err
	}
	a.cfg = cfg

	a.log, a.closer, err = logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	a.metrics = metrics.NewRegistry()

	return nil
}

// teardown writes the metrics textfile and closes the log output. It is a
// no-op when setup never ran.
func (a *app) teardown() error {
	var err error
	if a.cfg.Output.Metrics != "" && a.metrics != nil {
		if err = a.metrics.WriteTextfile(a.cfg.Output.Metrics); err == nil {
			a.log.Debug().Str("path", a.cfg.Output.Metrics).Msg("metrics written")
		}
	}
	if a.closer != nil {
		err = errors.Join(err, a.closer.Close())
		a.closer = nil
	}
	return err
}

// revalidate checks the configuration after flag overrides.
func (a *app) revalidate() error {
	return a.cfg.Validate()
}

// override copies flag name into dst when the user set it explicitly.
func override[T any](cmd *cobra.Command, name string, dst *T, get func(string) (T, error)) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := get(name)
	if err != nil {
		return fmt.Errorf("flag --%s: %w", name, err)
	}
	*dst = v
	return nil
}

// writeOutput runs write against path, or against the command's stdout when
// path is empty or "-".
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) (err error) {
	if path == "" || path == "-" {
		return write(cmd.OutOrStdout())
	}
	wc, err := dataio.OpenWriter(path)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, wc.Close()) }()

	return write(wc)
}

// progressSink returns the renderer selected by mode, or nil for "none".
func progressSink(mode string, w io.Writer, label string) func(current, total int) {
	switch mode {
	case "text":
		return progress.Text(w, progress.DefaultBarLength)
	case "bar":
		return progress.NewBar(w, label, progress.DefaultBarLength).Report
	default:
		return nil
	}
}
