// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"github.com/spf13/cobra"

	"github.com/dacolabs/witgen/internal/prompts"
	"github.com/dacolabs/witgen/internal/translate/wit"
)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "Show how schema types map to WIT types",
		Long: `Show the table used to map declared schema types to WIT types. Types not
in the table are treated as references to named models.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTypes()
		},
	}
}

func runTypes() error {
	pairs := wit.TypeMapping()
	fields := make([]prompts.ResultField, 0, len(pairs))
	for _, p := range pairs {
		fields = append(fields, prompts.ResultField{Label: p[0], Value: p[1]})
	}
	prompts.PrintResult(fields, "")
	return nil
}
