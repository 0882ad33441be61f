// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/dacolabs/witgen/internal/config"
	"github.com/dacolabs/witgen/internal/session"
	"github.com/dacolabs/witgen/internal/translate"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(translators translate.Register) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "witgen",
		Short: "Generate WebAssembly Interface Types from API schemas",
		Long: `witgen translates OpenAPI and JSON Schema documents into WebAssembly
Interface Type (WIT) packages: records, enums and variants for every schema,
and one function per operation returning expected<T, error>.`,
		SilenceUsage:      true,
		PersistentPreRunE: session.PreRunLoad,
	}

	rootCmd.PersistentFlags().String(session.ConfigFlag, config.FileName, "Path to the witgen config file")
	rootCmd.PersistentFlags().BoolP(session.VerboseFlag, "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newInitCmd(translators),
		newGenerateCmd(translators),
		newInspectCmd(),
		newTypesCmd(),
		newVersionCmd(),
	)

	return rootCmd
}
