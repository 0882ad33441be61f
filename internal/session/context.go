// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dacolabs/witgen/internal/config"
)

// ErrInvalidConfig indicates the config file exists but is invalid.
var ErrInvalidConfig = errors.New("invalid configuration")

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration and the run's logger.
type Context struct {
	// Config is the loaded configuration, or the defaults when no config
	// file exists.
	Config *config.Config

	// ConfigPath is the path the configuration was looked up at.
	ConfigPath string

	Logger *slog.Logger
}

// Load reads the configuration at configPath and returns a new
// context.Context with the session Context stored in it. A missing config
// file is not an error.
func Load(ctx context.Context, configPath string, logger *slog.Logger) (context.Context, error) {
	if configPath == "" {
		configPath = config.FileName
	}
	if logger == nil {
		logger = slog.Default()
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	logger.Debug("configuration loaded", slog.String("path", configPath))

	return context.WithValue(ctx, contextKey{}, &Context{
		Config:     cfg,
		ConfigPath: configPath,
		Logger:     logger,
	}), nil
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sessCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sessCtx
	}
	return nil
}
