// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package apischema

import (
	"slices"
	"sort"
	"strconv"

	"github.com/google/jsonschema-go/jsonschema"
)

type jsonSchemaClassifier struct {
	order KeyOrder
}

// FromJSONSchema classifies a JSON Schema. Property order is taken from
// order at the given document path when available.
func FromJSONSchema(s *jsonschema.Schema, order KeyOrder, path string) *Node {
	c := &jsonSchemaClassifier{order: order}
	return c.classify(s, path)
}

func (c *jsonSchemaClassifier) classify(s *jsonschema.Schema, path string) *Node {
	if s == nil {
		return nil
	}
	if s.Ref != "" {
		return NewReference(RefName(s.Ref))
	}

	typ, nullable := jsonSchemaType(s)
	n := &Node{
		Name:        s.Title,
		Nullable:    nullable,
		Format:      s.Format,
		Pattern:     s.Pattern,
		Minimum:     s.Minimum,
		Maximum:     s.Maximum,
		Required:    s.Required,
		Description: s.Description,
	}
	// Draft 2019+ exclusive bounds are numbers; fold them into the
	// minimum/maximum plus an exclusive flag.
	if s.ExclusiveMinimum != nil {
		n.Minimum = s.ExclusiveMinimum
		n.ExclusiveMinimum = boolPtr(true)
	}
	if s.ExclusiveMaximum != nil {
		n.Maximum = s.ExclusiveMaximum
		n.ExclusiveMaximum = boolPtr(true)
	}
	if ap := s.AdditionalProperties; ap != nil {
		switch {
		case isTrueSchema(ap):
			n.AdditionalAllowed = true
		case isFalseSchema(ap):
		default:
			n.AdditionalProperties = c.classify(ap, joinPath(path, "additionalProperties"))
		}
	}

	switch {
	case typ == "array" || (typ == "" && s.Items != nil):
		n.Kind = KindArray
		n.Type = "array"
		n.Items = c.classify(s.Items, joinPath(path, "items"))
	case isObjectType(typ) && n.AdditionalProperties != nil && len(s.Properties) == 0:
		n.Kind = KindMap
		n.Type = "map"
	case len(s.Enum) > 0:
		n.Kind = KindEnum
		n.Type = declaredType(typ, s.Format)
		n.Enum = slices.Clone(s.Enum)
	case len(s.OneOf) > 0:
		c.composed(n, OneOf, s.OneOf, joinPath(path, "oneOf"))
	case len(s.AllOf) > 0:
		c.composed(n, AllOf, s.AllOf, joinPath(path, "allOf"))
	case len(s.AnyOf) > 0:
		c.composed(n, AnyOf, s.AnyOf, joinPath(path, "anyOf"))
	case typ == "object" || len(s.Properties) > 0:
		n.Kind = KindObject
		n.Type = "object"
		propsPath := joinPath(path, "properties")
		for _, name := range Keys(c.order, propsPath, s.Properties) {
			n.Properties = append(n.Properties, Property{
				Name:   name,
				Schema: c.classify(s.Properties[name], joinPath(propsPath, name)),
			})
		}
	default:
		n.Kind = KindPrimitive
		n.Type = declaredType(typ, s.Format)
	}
	return n
}

func (c *jsonSchemaClassifier) composed(n *Node, kind Composition, members []*jsonschema.Schema, path string) {
	n.Kind = KindComposed
	n.Type = "object"
	n.Composition = kind
	for i, m := range members {
		n.Members = append(n.Members, c.classify(m, joinPath(path, strconv.Itoa(i))))
	}
}

func jsonSchemaType(s *jsonschema.Schema) (string, bool) {
	if s.Type != "" {
		return s.Type, s.Type == "null"
	}
	var typ string
	nullable := false
	for _, t := range s.Types {
		if t == "null" {
			nullable = true
			continue
		}
		if typ == "" {
			typ = t
		}
	}
	return typ, nullable
}

// isTrueSchema reports whether s is the empty schema, which is how the
// boolean schema true decodes.
func isTrueSchema(s *jsonschema.Schema) bool {
	return s.Type == "" && len(s.Types) == 0 && s.Ref == "" && s.Items == nil &&
		len(s.Properties) == 0 && s.AdditionalProperties == nil && len(s.Enum) == 0 &&
		len(s.AllOf) == 0 && len(s.AnyOf) == 0 && len(s.OneOf) == 0 && s.Not == nil
}

// isFalseSchema reports whether s is {"not": {}}, the decoded form of false.
func isFalseSchema(s *jsonschema.Schema) bool {
	return s.Not != nil && isTrueSchema(s.Not) && s.Type == "" && len(s.Types) == 0 &&
		len(s.Properties) == 0
}

// fromJSONSchemaDocument converts a JSON Schema document. Definitions become
// named schemas; the root becomes a schema named rootName unless it only
// carries definitions.
func fromJSONSchemaDocument(s *jsonschema.Schema, order KeyOrder, rootName string) *Document {
	c := &jsonSchemaClassifier{order: order}
	out := &Document{Title: s.Title}

	type def struct {
		name, path string
		schema     *jsonschema.Schema
	}
	var defs []def
	for name, d := range s.Definitions {
		defs = append(defs, def{name, "definitions." + name, d})
	}
	for name, d := range s.Defs {
		defs = append(defs, def{name, "$defs." + name, d})
	}
	sort.SliceStable(defs, func(i, j int) bool { return defs[i].name < defs[j].name })

	seen := make(map[string]bool, len(defs))
	for _, d := range defs {
		if seen[d.name] {
			continue
		}
		seen[d.name] = true
		n := c.classify(d.schema, d.path)
		if n == nil {
			continue
		}
		n.Name = d.name
		out.Schemas = append(out.Schemas, NamedSchema{Name: d.name, Node: n})
	}

	if s.Type != "" || len(s.Types) > 0 || len(s.Properties) > 0 || s.Ref != "" ||
		len(s.AllOf) > 0 || len(s.OneOf) > 0 || len(s.AnyOf) > 0 || len(s.Enum) > 0 {
		root := c.classify(s, "")
		root.Name = rootName
		out.Schemas = append(out.Schemas, NamedSchema{Name: rootName, Node: root})
		sort.SliceStable(out.Schemas, func(i, j int) bool { return out.Schemas[i].Name < out.Schemas[j].Name })
	}
	return out
}
