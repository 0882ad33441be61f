// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dacolabs/witgen/internal/apischema"
	"github.com/dacolabs/witgen/internal/config"
	"github.com/dacolabs/witgen/internal/prompts"
	"github.com/dacolabs/witgen/internal/session"
	"github.com/dacolabs/witgen/internal/translate"
)

type generateOptions struct {
	packageName    string
	projectName    string
	errorModel     string
	strict         bool
	format         string
	output         string
	stdout         bool
	nonInteractive bool
}

func newGenerateCmd(translators translate.Register) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Generate WIT from an OpenAPI or JSON Schema document",
		Long: fmt.Sprintf(`Generate a WIT package from an OpenAPI or JSON Schema document.

Every named schema becomes a record, enum, variant or type alias in the
"types" interface, next to the shared error variant. Every operation becomes
a function in the "api" interface returning expected<T, error>; envelope
types named <T>Response are unwrapped to T.

Flags override the values in witgen.yaml.

Available formats: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Use the input and settings from witgen.yaml
  witgen generate

  # Generate from a specific document
  witgen generate openapi.yaml --package petstore

  # Print the enriched model manifest instead of WIT
  witgen generate openapi.yaml --format manifest --stdout`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, translators, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.packageName, "package", "p", "", "WIT package name")
	cmd.Flags().StringVar(&opts.projectName, "project", "", "Project name written to the generated header")
	cmd.Flags().StringVar(&opts.errorModel, "error-model", "", "Error model (string, record, or variant)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail on unsupported compositions and duplicate identifiers")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "Write the result to standard output")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runGenerate(cmd *cobra.Command, translators translate.Register, opts *generateOptions, args []string) error {
	sess, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	cfg := *sess.Config
	applyGenerateFlags(cmd, &cfg, opts)
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if opts.nonInteractive {
		if cfg.Input == "" {
			return errors.New("no input document: pass a file or set input in witgen.yaml")
		}
	} else if err := prompts.RunGenerateForm(&cfg.Input, &cfg.Format, translators.Available()); err != nil {
		return err
	}

	translator, err := translators.Get(cfg.Format)
	if err != nil {
		return fmt.Errorf("unsupported format %q. Available formats: %s",
			cfg.Format, strings.Join(translators.Available(), ", "))
	}

	doc, err := loadDocument(cfg.Input)
	if err != nil {
		return err
	}
	sess.Logger.Debug("document loaded",
		slog.String("input", cfg.Input),
		slog.Int("schemas", len(doc.Schemas)),
		slog.Int("operations", len(doc.Operations)))

	data, err := translator.Translate(doc, cfg.Options(sess.Logger))
	if err != nil {
		return fmt.Errorf("failed to translate %s: %w", cfg.Input, err)
	}
	// Nothing is written once the command is interrupted.
	if err := cmd.Context().Err(); err != nil {
		return err
	}

	if opts.stdout {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.MkdirAll(cfg.Output, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	outFile := filepath.Join(cfg.Output, outputFileName(cfg.PackageName)+translator.FileExtension())
	if err := os.WriteFile(outFile, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", outFile, err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Input", Value: cfg.Input},
		{Label: "Package", Value: cfg.PackageName},
		{Label: "Schemas", Value: strconv.Itoa(len(doc.Schemas))},
		{Label: "Operations", Value: strconv.Itoa(len(doc.Operations))},
		{Label: "Output", Value: outFile},
	}, "Generation completed")
	return nil
}

func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config, opts *generateOptions) {
	flags := cmd.Flags()
	if flags.Changed("package") {
		cfg.PackageName = opts.packageName
	}
	if flags.Changed("project") {
		cfg.ProjectName = opts.projectName
	}
	if flags.Changed("error-model") {
		cfg.ErrorModel = opts.errorModel
	}
	if flags.Changed("strict") {
		cfg.Strict = opts.strict
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
}

// loadDocument loads the document at path, relative or absolute.
func loadDocument(path string) (*apischema.Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	loader := apischema.NewLoader(os.DirFS(filepath.Dir(abs)))
	doc, err := loader.LoadFile(filepath.Base(abs))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return doc, nil
}

// outputFileName derives a file name from a WIT package name:
// "acme:petstore@1.0.0" becomes "acme-petstore".
func outputFileName(pkg string) string {
	name, _, _ := strings.Cut(pkg, "@")
	name = strings.NewReplacer(":", "-", "/", "-").Replace(name)
	if name == "" {
		return translate.DefaultPackageName
	}
	return name
}
