// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"errors"

	"github.com/spf13/cobra"
)

// Persistent flag names read by PreRunLoad.
const (
	ConfigFlag  = "config"
	VerboseFlag = "verbose"
)

// FromCommand extracts the session Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the session Context from a cobra.Command's
// context, returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, errors.New("project context not loaded")
	}
	return ctx, nil
}

// PreRunLoad is a PersistentPreRunE function that loads the project
// configuration named by the --config flag, builds a logger honoring
// --verbose, and stores both in the command's context.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString(ConfigFlag)
	verbose, _ := cmd.Flags().GetBool(VerboseFlag)

	ctx, err := Load(cmd.Context(), path, NewLogger(cmd.ErrOrStderr(), verbose))
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}
