// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/dacolabs/witgen/internal/session"
)

type inspectOptions struct {
	schema     string
	operations bool
}

func newInspectCmd() *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Dump the classified schema tree of a document",
		Long: `Load an OpenAPI or JSON Schema document and print the classified schema
nodes the generator works from. Useful to see why a schema maps to a given
WIT type.`,
		Example: `  # Dump every schema and operation
  witgen inspect openapi.yaml

  # Dump a single schema
  witgen inspect openapi.yaml --schema Pet`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.schema, "schema", "s", "", "Only dump the named schema")
	cmd.Flags().BoolVar(&opts.operations, "operations", false, "Only dump the operations")

	return cmd
}

func runInspect(cmd *cobra.Command, opts *inspectOptions, args []string) error {
	sess, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	input := sess.Config.Input
	if len(args) > 0 {
		input = args[0]
	}
	if input == "" {
		return errors.New("no input document: pass a file or set input in witgen.yaml")
	}

	doc, err := loadDocument(input)
	if err != nil {
		return err
	}

	dumper := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	out := cmd.OutOrStdout()

	switch {
	case opts.schema != "":
		n := doc.Schema(opts.schema)
		if n == nil {
			return fmt.Errorf("schema %q not found in %s", opts.schema, input)
		}
		dumper.Fdump(out, n)
	case opts.operations:
		dumper.Fdump(out, doc.Operations)
	default:
		dumper.Fdump(out, doc)
	}
	return nil
}
