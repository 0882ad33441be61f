// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package apischema

// Document is a loaded API description: named schemas plus operations.
type Document struct {
	Title      string
	Version    string
	Schemas    []NamedSchema // sorted by name
	Operations []Operation   // sorted by path, then method
}

// NamedSchema pairs a schema with its declared name.
type NamedSchema struct {
	Name string
	Node *Node
}

// Operation describes one API call.
type Operation struct {
	ID         string
	Method     string
	Path       string
	Summary    string
	Parameters []Parameter

	// Response is the success response body schema, nil when the
	// operation returns nothing.
	Response *Node
}

// Parameter is one operation input. Request bodies are exposed as a
// parameter located "body".
type Parameter struct {
	Name     string
	In       string
	Required bool
	Schema   *Node
}

// Schema returns the named schema, or nil.
func (d *Document) Schema(name string) *Node {
	for _, s := range d.Schemas {
		if s.Name == name {
			return s.Node
		}
	}
	return nil
}

// declaredType derives the declared type name of a primitive from its JSON
// type and format, following the naming used by OpenAPI code generators.
func declaredType(typ, format string) string {
	switch typ {
	case "integer":
		if format == "int64" {
			return "long"
		}
		return "integer"
	case "number":
		if format == "float" {
			return "float"
		}
		return "double"
	case "string":
		switch format {
		case "date", "date-time", "binary":
			return format
		case "uuid":
			return "UUID"
		case "uri":
			return "URI"
		}
		return "string"
	case "":
		return "any"
	default:
		return typ
	}
}
