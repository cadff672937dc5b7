// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd, a := newRootCmd()
	if err := execute(rootCmd, a); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs rootCmd and then releases what setup acquired. Teardown runs
// on every path, so failed and canceled runs still export their metrics.
func execute(rootCmd *cobra.Command, a *app) error {
	err := rootCmd.Execute()
	return errors.Join(err, a.teardown())
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "epinet",
		Short: "SIS epidemics with risk perception on contact networks",
		Long: `epinet simulates Susceptible-Infected-Susceptible epidemics in which every
node damps its own transmission probability by its perception of risk,
exp(-(H + J*s/k)), and composes directed information networks from a
physical and a virtual contact layer.

Configuration is read from --config (YAML), then EPINET_* environment
variables (optionally from .env files), then command flags.

Examples:
  epinet simulate --tau 0.3 --gamma 0.1 --iterations 200 --out series.csv
  epinet compose --q 0.25 --out info.csv.sz
  epinet sweep --h-values 0,0.5,1 --j-values 0,1,2 --replicates 10 --format json`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringSlice("env-file", []string{".env"}, "dotenv files to load before reading EPINET_* variables")
	rootCmd.PersistentFlags().String("log-level", "", "Override logging.level (trace, debug, info, warn, error, disabled)")
	rootCmd.PersistentFlags().String("metrics", "", "Write Prometheus metrics to this textfile after the command")

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(a),
		newSimulateCmd(a),
		newComposeCmd(a),
		newSweepCmd(a),
	)

	return rootCmd, a
}
