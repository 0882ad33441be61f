// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package wit translates API schemas into WebAssembly Interface Type (WIT)
// definitions.
package wit

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/dacolabs/witgen/internal/apischema"
	"github.com/dacolabs/witgen/internal/translate"
)

//go:embed wit.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("wit.go.tmpl").Funcs(template.FuncMap{
	"indent": indent,
	"join":   strings.Join,
	"params": renderParams,
}).ParseFS(tmplFS, "wit.go.tmpl"))

// Translator renders a whole document as a WIT package.
type Translator struct{}

// FileExtension returns the file extension for WIT files.
func (t *Translator) FileExtension() string {
	return ".wit"
}

// Translate converts an API document to a WIT package with a types
// interface, an api interface and a world exporting both.
func (t *Translator) Translate(doc *apischema.Document, opts translate.Options) ([]byte, error) {
	g := NewGenerator(opts)
	data, err := g.Prepare(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare document: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "wit.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// Document is the enriched form of a whole API document.
type Document struct {
	Package      string       `json:"package"`
	Project      string       `json:"project,omitempty"`
	Title        string       `json:"title,omitempty"`
	Version      string       `json:"version,omitempty"`
	ErrorType    string       `json:"errorType"`
	Models       []*Model     `json:"models"`
	Operations   []*Operation `json:"operations"`
	Declarations []string     `json:"-"`
	Imports      []string     `json:"-"`
}

// Prepare enriches every schema and rewrites every operation of doc.
// Inline enums, compositions, objects and maps nested in properties are
// declared under names derived from their model and property.
func (g *Generator) Prepare(doc *apischema.Document) (*Document, error) {
	out := &Document{
		Package:   g.PackageName(),
		Project:   g.ProjectName(),
		Title:     doc.Title,
		Version:   doc.Version,
		ErrorType: g.ErrorType,
	}

	p := &preparer{
		g:        g,
		out:      out,
		taken:    map[string]bool{ErrorTypeName: true},
		imported: map[string]bool{ErrorTypeName: true},
		visiting: make(map[*apischema.Node]bool),
	}
	out.Imports = append(out.Imports, ErrorTypeName)
	for _, s := range doc.Schemas {
		p.taken[ToTypeName(s.Name)] = true
	}

	for _, s := range doc.Schemas {
		m, err := p.model(s.Name, s.Node)
		if err != nil {
			return nil, fmt.Errorf("schema %q: %w", s.Name, err)
		}
		p.add(m)
	}

	for _, op := range doc.Operations {
		o, err := g.Operation(op)
		if err != nil {
			return nil, fmt.Errorf("operation %q: %w", op.ID, err)
		}
		for _, param := range o.Params {
			if !param.IsEnum || p.imported[param.DataType] {
				continue
			}
			decl, err := g.Translate(param.Schema)
			if err != nil {
				return nil, fmt.Errorf("operation %q: parameter %q: %w", op.ID, param.BaseName, err)
			}
			p.declare(param.DataType, decl)
		}
		out.Operations = append(out.Operations, o)
	}
	return out, nil
}

type preparer struct {
	g        *Generator
	out      *Document
	taken    map[string]bool // type names already claimed
	imported map[string]bool
	visiting map[*apischema.Node]bool
}

func (p *preparer) add(m *Model) {
	p.out.Models = append(p.out.Models, m)
	p.declare(m.ClassName, Declare(m))
}

func (p *preparer) declare(name, decl string) {
	p.out.Declarations = append(p.out.Declarations, decl)
	if !p.imported[name] {
		p.imported[name] = true
		p.out.Imports = append(p.out.Imports, name)
	}
}

// model builds the enriched model for n and replaces inline declarations in
// its fields, items and values with references to hoisted types.
func (p *preparer) model(name string, n *apischema.Node) (*Model, error) {
	m, err := p.g.Model(name, n)
	if err != nil || n == nil {
		return m, err
	}

	for _, v := range m.Vars {
		s := n.Property(v.BaseName)
		if !needsHoist(s) {
			continue
		}
		raw := name + "-" + v.BaseName
		if s.Kind == apischema.KindArray && v.Items != nil {
			item, err := p.typeRef(raw, s.Items)
			if err != nil {
				return nil, err
			}
			v.Items.DataType = item
			v.DataType = "list<" + item + ">"
			continue
		}
		if v.DataType, err = p.typeRef(raw, s); err != nil {
			return nil, err
		}
	}

	switch {
	case n.Kind == apischema.KindArray && needsHoist(n.Items):
		item, err := p.typeRef(name+"-item", n.Items)
		if err != nil {
			return nil, err
		}
		m.Declaration = "list<" + item + ">"
		m.DataType = m.Declaration
	case n.Kind == apischema.KindMap && needsHoist(n.AdditionalProperties):
		value, err := p.typeRef(name+"-value", n.AdditionalProperties)
		if err != nil {
			return nil, err
		}
		m.Extensions[ExtAdditionalPropertyType] = value
	}
	return m, nil
}

// typeRef returns a type expression for n, declaring n under a name derived
// from raw when it translates to a declaration.
func (p *preparer) typeRef(raw string, n *apischema.Node) (string, error) {
	if !needsHoist(n) {
		return p.g.Translate(n)
	}
	if p.visiting[n] {
		return "", fmt.Errorf("%w: %s", ErrCyclicSchema, Sanitize(raw))
	}
	p.visiting[n] = true
	defer delete(p.visiting, n)

	if n.Kind == apischema.KindArray {
		item, err := p.typeRef(raw, n.Items)
		if err != nil {
			return "", err
		}
		return "list<" + item + ">", nil
	}

	named := *n
	named.Name = p.claim(raw)
	m, err := p.model(named.Name, &named)
	if err != nil {
		return "", err
	}
	p.add(m)
	return m.ClassName, nil
}

// claim returns a sanitized name whose type name is not yet declared.
func (p *preparer) claim(raw string) string {
	name := Sanitize(raw)
	for i := 2; p.taken[ToTypeName(name)]; i++ {
		name = Sanitize(fmt.Sprintf("%s-%d", raw, i))
	}
	p.taken[ToTypeName(name)] = true
	return name
}

// needsHoist reports whether n, or the items of n, translate to a
// declaration rather than a type expression.
func needsHoist(n *apischema.Node) bool {
	switch {
	case n == nil, n.IsReference():
		return false
	case n.Kind == apischema.KindArray:
		return needsHoist(n.Items)
	case n.Kind == apischema.KindMap, n.Kind == apischema.KindObject, n.Kind == apischema.KindComposed:
		return true
	default:
		return len(n.Enum) > 0
	}
}

// Declare renders the declaration of a model: records are built from the
// enriched properties, maps become an entries record, enums and
// compositions use the translated declaration, and anything else becomes a
// type alias.
func Declare(m *Model) string {
	switch {
	case m.IsEnum:
		return m.Declaration
	case m.Kind == apischema.KindObject:
		var sb strings.Builder
		sb.WriteString("record " + m.ClassName + " {\n")
		for _, v := range m.Vars {
			typ := v.DataType
			if !v.Required {
				typ = "option<" + typ + ">"
			}
			sb.WriteString("    " + v.Name + ": " + typ + ",\n")
		}
		sb.WriteString("}")
		return sb.String()
	case m.Kind == apischema.KindMap && m.Extensions[ExtAdditionalPropertyType] != nil:
		return "record " + m.ClassName + " {\n" +
			"    entries: list<tuple<string, " + fmt.Sprint(m.Extensions[ExtAdditionalPropertyType]) + ">>,\n" +
			"}"
	case m.Kind == apischema.KindComposed && m.Declaration != RecordTag:
		return m.Declaration
	default:
		return "type " + m.ClassName + " = " + m.Declaration + ";"
	}
}

func renderParams(params []*Parameter) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		typ := p.DataType
		if !p.Required {
			typ = "option<" + typ + ">"
		}
		parts = append(parts, p.Name+": "+typ)
	}
	return strings.Join(parts, ", ")
}

func indent(n int, s string) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = pad + l
		}
	}
	return strings.Join(lines, "\n")
}
