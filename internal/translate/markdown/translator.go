// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package markdown renders reference documentation for a generated WIT
// package.
package markdown

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/dacolabs/witgen/internal/apischema"
	"github.com/dacolabs/witgen/internal/translate"
	"github.com/dacolabs/witgen/internal/translate/wit"
)

//go:embed markdown.go.tmpl
var tmplFS embed.FS

var funcMap = template.FuncMap{
	"formatConstraints": formatConstraints,
	"fieldType":         fieldType,
	"params":            formatParams,
	"yesNo":             yesNo,
}

var tmpl = template.Must(template.New("markdown.go.tmpl").Funcs(funcMap).ParseFS(tmplFS, "markdown.go.tmpl"))

// Translator translates API documents to markdown documentation of the
// WIT package generated from them.
type Translator struct{}

// FileExtension returns the file extension for markdown files.
func (t *Translator) FileExtension() string {
	return ".md"
}

// Translate converts an API document to markdown documentation.
func (t *Translator) Translate(doc *apischema.Document, opts translate.Options) ([]byte, error) {
	data, err := wit.NewGenerator(opts).Prepare(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare document: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "markdown.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}

// fieldType renders the WIT type of a property, linking model references.
func fieldType(p *wit.Property) string {
	if p.IsModel {
		return "[" + p.DataType + "](#" + strings.ToLower(p.DataType) + ")"
	}
	if p.Items != nil && p.Items.IsModel {
		return "`" + p.DataType + "` of [" + p.Items.DataType + "](#" + strings.ToLower(p.Items.DataType) + ")"
	}
	return "`" + p.DataType + "`"
}

func formatParams(params []*wit.Parameter) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, fmt.Sprintf("`%s: %s`", p.Name, p.DataType))
	}
	return strings.Join(parts, ", ")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// formatConstraints formats the schema facets recorded on a model or
// property as a human-readable string.
func formatConstraints(ext map[string]any) string {
	var parts []string

	if v, ok := ext[wit.ExtFormat]; ok {
		parts = append(parts, fmt.Sprintf("format: %v", v))
	}

	if v, ok := ext[wit.ExtPattern]; ok {
		parts = append(parts, fmt.Sprintf("pattern: `%v`", v))
	}

	if v, ok := ext[wit.ExtMinimum]; ok {
		op := "minimum"
		if ext[wit.ExtExclusiveMinimum] == true {
			op = "exclusiveMinimum"
		}
		parts = append(parts, fmt.Sprintf("%s: %v", op, v))
	}

	if v, ok := ext[wit.ExtMaximum]; ok {
		op := "maximum"
		if ext[wit.ExtExclusiveMaximum] == true {
			op = "exclusiveMaximum"
		}
		parts = append(parts, fmt.Sprintf("%s: %v", op, v))
	}

	if ext[wit.ExtIsNullable] == true {
		parts = append(parts, "nullable")
	}

	if v, ok := ext[wit.ExtComposedType]; ok {
		parts = append(parts, fmt.Sprintf("%v", v))
	}

	return strings.Join(parts, ", ")
}
