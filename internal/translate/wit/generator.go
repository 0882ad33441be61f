// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package wit

import (
	"errors"
	"log/slog"

	"github.com/dacolabs/witgen/internal/translate"
)

var (
	// ErrCyclicSchema indicates a schema that contains itself.
	ErrCyclicSchema = errors.New("cyclic schema")

	// ErrUnsupportedComposition indicates an anyOf or empty composition in strict mode.
	ErrUnsupportedComposition = errors.New("unsupported composition")

	// ErrDuplicateIdentifier indicates a repeated field or arm name in strict mode.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
)

// Generator translates schema nodes and operations into WIT. It holds no
// mutable state after NewGenerator returns and is safe for concurrent use.
type Generator struct {
	opts   translate.Options
	logger *slog.Logger

	// ErrorType is the error variant declaration shared by all operations.
	ErrorType string
}

// NewGenerator applies defaults to opts and synthesizes the error model.
func NewGenerator(opts translate.Options) *Generator {
	if opts.PackageName == "" {
		opts.PackageName = translate.DefaultPackageName
	}
	if opts.ErrorModel == "" {
		opts.ErrorModel = translate.ErrorModelVariant
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.ErrorModel != translate.ErrorModelVariant {
		logger.Warn("only the variant error model is generated",
			slog.String("errorModel", opts.ErrorModel))
	}
	return &Generator{
		opts:      opts,
		logger:    logger,
		ErrorType: ErrorModel(),
	}
}

// PackageName returns the WIT package name.
func (g *Generator) PackageName() string {
	return g.opts.PackageName
}

// ProjectName returns the configured project name, if any.
func (g *Generator) ProjectName() string {
	return g.opts.ProjectName
}
