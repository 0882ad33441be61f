// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dacolabs/witgen/internal/version"
)

func newVersionCmd() *cobra.Command {
	var short, modules bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the witgen version",
		RunE: func(cmd *cobra.Command, args []string) error {
			if short {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Short())
				return err
			}
			b := version.Current()
			if modules {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), b.Details())
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), b.String())
			return err
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	cmd.Flags().BoolVar(&modules, "modules", false, "Also print the schema parser module versions")
	cmd.MarkFlagsMutuallyExclusive("short", "modules")

	return cmd
}
