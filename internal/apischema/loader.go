// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package apischema

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat indicates a file extension the loader cannot decode.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrInvalidDocument indicates the document could not be parsed.
	ErrInvalidDocument = errors.New("invalid document")
)

// Format is the serialization of a document.
type Format int

// Supported serializations.
const (
	JSON Format = iota
	YAML
)

// FormatFromPath determines the format from the file extension.
// Anything that is not .yaml or .yml is treated as JSON.
func FormatFromPath(filePath string) Format {
	if strings.HasSuffix(filePath, ".yaml") || strings.HasSuffix(filePath, ".yml") {
		return YAML
	}
	return JSON
}

// Loader loads API documents from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and classifies an OpenAPI or JSON Schema document.
func (l *Loader) LoadFile(filePath string) (*Document, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return LoadData(data, filePath)
}

// LoadData classifies an in-memory document. filePath selects the format and
// names the root schema of JSON Schema documents without a title.
func LoadData(data []byte, filePath string) (*Document, error) {
	ext := path.Ext(filePath)
	switch ext {
	case ".json", ".yaml", ".yml", "":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	order, err := ExtractKeyOrder(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	var top map[string]any
	if err := yaml.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if _, ok := top["openapi"]; ok {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		return fromOpenAPIDocument(doc, order), nil
	}

	raw := data
	if FormatFromPath(filePath) == YAML {
		// jsonschema.Schema only decodes JSON; re-encode the YAML tree.
		raw, err = json.Marshal(top)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
	}
	var schema jsonschema.Schema
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	rootName := schema.Title
	if rootName == "" {
		rootName = strings.TrimSuffix(path.Base(filePath), ext)
	}
	return fromJSONSchemaDocument(&schema, order, rootName), nil
}
