// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package manifest renders the enriched models and rewritten operations as
// JSON, the data a WIT template consumes.
package manifest

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/dacolabs/witgen/internal/apischema"
	"github.com/dacolabs/witgen/internal/translate"
	"github.com/dacolabs/witgen/internal/translate/wit"
)

// Translator renders a document manifest.
type Translator struct{}

// FileExtension returns the file extension for manifest files.
func (t *Translator) FileExtension() string {
	return ".json"
}

// Translate converts an API document to an indented JSON manifest.
func (t *Translator) Translate(doc *apischema.Document, opts translate.Options) ([]byte, error) {
	data, err := wit.NewGenerator(opts).Prepare(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare document: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false) // keep list<T> and expected<T, E> readable
	if err := enc.Encode(data); err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	return buf.Bytes(), nil
}
