// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate provides schema translation utilities.
package translate

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/dacolabs/witgen/internal/apischema"
)

// Error model styles accepted in Options.ErrorModel.
const (
	ErrorModelString  = "string"
	ErrorModelRecord  = "record"
	ErrorModelVariant = "variant"
)

// DefaultPackageName is used when Options.PackageName is empty.
const DefaultPackageName = "openapi"

// Options configures a translation run. It is read-only once a translator
// has been handed it.
type Options struct {
	PackageName string
	ProjectName string
	ErrorModel  string
	Strict      bool // reject degraded compositions and duplicate identifiers
	Logger      *slog.Logger
}

// Translator defines the interface all format translators must implement.
type Translator interface {
	// Translate converts an API document to the target format.
	Translate(doc *apischema.Document, opts Options) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".wit", ".json")
	FileExtension() string
}

// Register maps format names to translators.
type Register map[string]Translator

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown translator: %s", name)
	}
	return t, nil
}

// Available returns all registered translator names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
