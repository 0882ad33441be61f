// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package apischema provides the schema model consumed by the translators,
// along with loaders that build it from OpenAPI and JSON Schema documents.
package apischema

import (
	"fmt"
	"strings"
)

// Kind identifies which shape of a Node is populated.
type Kind int

// Node shapes. Exactly one is populated per node.
const (
	KindPrimitive Kind = iota
	KindArray
	KindMap
	KindObject
	KindComposed
	KindEnum
	KindReference
)

var kindNames = [...]string{
	KindPrimitive: "primitive",
	KindArray:     "array",
	KindMap:       "map",
	KindObject:    "object",
	KindComposed:  "composed",
	KindEnum:      "enum",
	KindReference: "reference",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name written by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown schema kind %q", text)
}

// Composition is the combinator of a composed schema.
type Composition int

// Composition kinds.
const (
	CompositionNone Composition = iota
	AllOf
	OneOf
	AnyOf
)

func (c Composition) String() string {
	switch c {
	case AllOf:
		return "allOf"
	case OneOf:
		return "oneOf"
	case AnyOf:
		return "anyOf"
	default:
		return ""
	}
}

// MarshalText encodes the composition by its schema keyword.
func (c Composition) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a composition keyword. Empty text is CompositionNone.
func (c *Composition) UnmarshalText(text []byte) error {
	for _, v := range []Composition{CompositionNone, AllOf, OneOf, AnyOf} {
		if v.String() == string(text) {
			*c = v
			return nil
		}
	}
	return fmt.Errorf("unknown composition %q", text)
}

// Property is one named entry of an object's properties, in declaration order.
type Property struct {
	Name   string
	Schema *Node
}

// Discriminator names the property that selects between composed alternatives.
type Discriminator struct {
	PropertyName string            `json:"propertyName"`
	Mapping      map[string]string `json:"mapping,omitempty"`
}

// Node is one schema in the tree. Kind selects the populated shape; the
// remaining fields are facets that may accompany any shape.
type Node struct {
	Kind Kind
	Name string

	// Type is the declared type name used for primitive lookup, e.g. "long"
	// or "date-time". For references it is the target name.
	Type string

	Items                *Node      // KindArray
	AdditionalProperties *Node      // KindMap value schema, or extra properties of an object
	Properties           []Property // KindObject
	Composition          Composition
	Members              []*Node // KindComposed
	Enum                 []any
	Ref                  string // KindReference target name

	Required          []string
	AdditionalAllowed bool
	Nullable          bool
	Format            string
	Pattern           string
	Minimum           *float64
	Maximum           *float64
	ExclusiveMinimum  *bool
	ExclusiveMaximum  *bool
	Discriminator     *Discriminator
	Description       string
}

// Property returns the schema of the named property, or nil.
func (n *Node) Property(name string) *Node {
	if n == nil {
		return nil
	}
	for _, p := range n.Properties {
		if p.Name == name {
			return p.Schema
		}
	}
	return nil
}

// IsRequired reports whether name is listed in the node's required properties.
func (n *Node) IsRequired(name string) bool {
	if n == nil {
		return false
	}
	for _, req := range n.Required {
		if req == name {
			return true
		}
	}
	return false
}

// IsReference reports whether n points at another named schema.
func (n *Node) IsReference() bool {
	return n != nil && n.Kind == KindReference
}

// RefName extracts the schema name from a $ref string. It accepts local
// pointers such as "#/components/schemas/Pet" or "#/$defs/Pet" as well as
// file refs, and returns the last path segment.
func RefName(ref string) string {
	return ref[strings.LastIndex(ref, "/")+1:]
}

// NewReference builds a reference node to the named schema.
func NewReference(target string) *Node {
	return &Node{Kind: KindReference, Name: target, Type: target, Ref: target}
}
