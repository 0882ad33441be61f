// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"
	"log/slog"
	"os"

	"github.com/dacolabs/witgen/internal/commands"
	"github.com/dacolabs/witgen/internal/session"
	"github.com/dacolabs/witgen/internal/translate"
	"github.com/dacolabs/witgen/internal/translate/manifest"
	"github.com/dacolabs/witgen/internal/translate/markdown"
	"github.com/dacolabs/witgen/internal/translate/wit"
)

// DebugEnv enables debug logging for the whole process when set.
const DebugEnv = "WITGEN_DEBUG"

// RegisterTranslators returns every output format the CLI supports.
func RegisterTranslators() translate.Register {
	translators := make(translate.Register)
	translators["wit"] = &wit.Translator{}
	translators["manifest"] = &manifest.Translator{}
	translators["markdown"] = &markdown.Translator{}
	return translators
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	if getenv(DebugEnv) != "" {
		slog.SetDefault(session.NewLogger(os.Stderr, true))
	}
	rootCmd := commands.NewRootCmd(RegisterTranslators())
	return rootCmd.ExecuteContext(ctx)
}
