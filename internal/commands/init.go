// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dacolabs/witgen/internal/config"
	"github.com/dacolabs/witgen/internal/prompts"
	"github.com/dacolabs/witgen/internal/session"
	"github.com/dacolabs/witgen/internal/translate"
)

type initOptions struct {
	values         prompts.InitValues
	nonInteractive bool
}

func newInitCmd(translators translate.Register) *cobra.Command {
	opts := &initOptions{}
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new witgen project",
		Long:  `Initialize a new witgen project with a witgen.yaml configuration file.`,
		Example: `  # Interactive mode
  witgen init

  # Non-interactive
  witgen init --input openapi.yaml --package petstore --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, translators, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.values.Input, "input", "i", "", "Path to the API document")
	cmd.Flags().StringVarP(&opts.values.PackageName, "package", "p", defaults.PackageName, "WIT package name")
	cmd.Flags().StringVar(&opts.values.ProjectName, "project", "", "Project name written to the generated header")
	cmd.Flags().StringVar(&opts.values.ErrorModel, "error-model", defaults.ErrorModel, "Error model (string, record, or variant)")
	cmd.Flags().BoolVar(&opts.values.Strict, "strict", false, "Fail on unsupported compositions and duplicate identifiers")
	cmd.Flags().StringVarP(&opts.values.Format, "format", "f", defaults.Format, fmt.Sprintf("Output format (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.values.Output, "output", "o", defaults.Output, "Output directory")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --input)")

	return cmd
}

func runInit(cmd *cobra.Command, translators translate.Register, opts *initOptions) error {
	sess, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	// Check that the project isn't already initialized
	if _, err := os.Stat(sess.ConfigPath); err == nil {
		return fmt.Errorf("%s already exists; project already initialized", sess.ConfigPath)
	}

	v := &opts.values
	if opts.nonInteractive {
		if v.Input == "" {
			return errors.New("non-interactive mode requires --input")
		}
	} else if err := prompts.RunInitForm(v, translators.Available()); err != nil {
		return err
	}

	if _, err := translators.Get(v.Format); err != nil {
		return fmt.Errorf("unsupported format %q. Available formats: %s",
			v.Format, strings.Join(translators.Available(), ", "))
	}

	cfg := config.Config{
		Version:     config.CurrentConfigVersion,
		Input:       v.Input,
		PackageName: v.PackageName,
		ProjectName: v.ProjectName,
		ErrorModel:  v.ErrorModel,
		Strict:      v.Strict,
		Output:      v.Output,
		Format:      v.Format,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(sess.ConfigPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: sess.ConfigPath},
		{Label: "Input", Value: cfg.Input},
		{Label: "Package", Value: cfg.PackageName},
	}, "Initialization completed")
	return nil
}
