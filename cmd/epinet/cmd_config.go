// SPDX-License-Identifier: MIT
package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/epinet/config"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration after applying defaults, the --config file and
EPINET_* environment variables. The output is a valid --config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := config.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		},
	}
}
