// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package wit

import (
	"strings"

	"github.com/dacolabs/witgen/internal/apischema"
)

// Metadata keys attached to models, properties and operations.
const (
	ExtHasDiscriminator       = "x-has-discriminator"
	ExtIsNullable             = "x-is-nullable"
	ExtFormat                 = "x-format"
	ExtPattern                = "x-pattern"
	ExtMinimum                = "x-minimum"
	ExtMaximum                = "x-maximum"
	ExtExclusiveMinimum       = "x-exclusive-minimum"
	ExtExclusiveMaximum       = "x-exclusive-maximum"
	ExtComposedType           = "x-composed-type"
	ExtIsResponse             = "x-is-response"
	ExtResponseType           = "x-response-type"
	ExtAdditionalPropertyType = "x-additional-property-type"
	ExtWITReturn              = "x-wit-return"
)

// EnumDataType is the data type recorded on enum models.
const EnumDataType = "enum"

// ResponseSuffix marks envelope models and return types.
const ResponseSuffix = "Response"

// Model is the enriched form of one named schema.
type Model struct {
	Name                    string                   `json:"name"`
	ClassName               string                   `json:"className"`
	Kind                    apischema.Kind           `json:"kind"`
	DataType                string                   `json:"dataType"`
	Declaration             string                   `json:"declaration"`
	Vars                    []*Property              `json:"vars,omitempty"`
	Discriminator           *apischema.Discriminator `json:"discriminator,omitempty"`
	IsEnum                  bool                     `json:"isEnum,omitempty"`
	AllowableValues         map[string]any           `json:"allowableValues,omitempty"`
	HasAdditionalProperties bool                     `json:"hasAdditionalProperties,omitempty"`
	Extensions              map[string]any           `json:"extensions,omitempty"`
}

// Property is one field of a model.
type Property struct {
	Name        string         `json:"name"`     // sanitized field name
	BaseName    string         `json:"baseName"` // name as declared in the schema
	DataType    string         `json:"dataType"`
	ComplexType string         `json:"complexType,omitempty"`
	IsModel     bool           `json:"isModel,omitempty"`
	Required    bool           `json:"required,omitempty"`
	Items       *Property      `json:"items,omitempty"`
	Extensions  map[string]any `json:"extensions,omitempty"`
}

// Model builds the enriched model for a named schema. Metadata is only
// added, never removed; facets absent from the schema are absent from
// Extensions.
func (g *Generator) Model(name string, n *apischema.Node) (*Model, error) {
	decl, err := g.Translate(n)
	if err != nil {
		return nil, err
	}
	m := &Model{
		Name:        name,
		ClassName:   ToTypeName(name),
		DataType:    decl,
		Declaration: decl,
		Extensions:  make(map[string]any),
	}
	if n == nil {
		return m, nil
	}
	m.Kind = n.Kind

	m.Vars, err = g.properties(n)
	if err != nil {
		return nil, err
	}

	if n.Discriminator != nil {
		m.Discriminator = n.Discriminator
		m.Extensions[ExtHasDiscriminator] = true
	}

	for _, v := range m.Vars {
		g.enrichProperty(v, n.Property(v.BaseName))
	}

	if n.AdditionalProperties != nil || n.AdditionalAllowed {
		m.HasAdditionalProperties = true
		if n.AdditionalProperties != nil {
			t, err := g.Translate(n.AdditionalProperties)
			if err != nil {
				return nil, err
			}
			m.Extensions[ExtAdditionalPropertyType] = t
		}
	}

	if n.Kind == apischema.KindComposed && n.Composition != apischema.CompositionNone {
		m.Extensions[ExtComposedType] = n.Composition.String()
	}

	if len(n.Enum) > 0 {
		m.IsEnum = true
		m.DataType = EnumDataType
		m.AllowableValues = map[string]any{"values": n.Enum}
	}

	constraints(m.Extensions, n)

	if strings.HasSuffix(name, ResponseSuffix) {
		m.Extensions[ExtIsResponse] = true
		if data := n.Property("data"); data != nil {
			t, err := g.Translate(data)
			if err != nil {
				return nil, err
			}
			m.Extensions[ExtResponseType] = t
		}
	}

	return m, nil
}

// properties extracts one Property per direct property of n, in order.
func (g *Generator) properties(n *apischema.Node) ([]*Property, error) {
	vars := make([]*Property, 0, len(n.Properties))
	for _, p := range n.Properties {
		t, err := g.Translate(p.Schema)
		if err != nil {
			return nil, err
		}
		v := &Property{
			Name:     Sanitize(p.Name),
			BaseName: p.Name,
			DataType: t,
			Required: n.IsRequired(p.Name),
		}
		if s := p.Schema; s != nil {
			var inner *apischema.Node
			switch s.Kind {
			case apischema.KindArray:
				inner = s.Items
			case apischema.KindMap:
				inner = s.AdditionalProperties
			}
			if inner != nil {
				it, err := g.Translate(inner)
				if err != nil {
					return nil, err
				}
				v.Items = &Property{Name: v.Name, BaseName: p.Name, DataType: it}
			}
		}
		vars = append(vars, v)
	}
	return vars, nil
}

// enrichProperty resolves model references on the property or its items and
// records nullability and composition.
func (g *Generator) enrichProperty(v *Property, s *apischema.Node) {
	if s == nil {
		return
	}
	switch {
	case s.IsReference():
		markModel(v, s.Ref)
	case s.Kind == apischema.KindArray && s.Items.IsReference() && v.Items != nil:
		markModel(v.Items, s.Items.Ref)
	case s.Kind == apischema.KindMap && s.AdditionalProperties.IsReference() && v.Items != nil:
		markModel(v.Items, s.AdditionalProperties.Ref)
	case s.Kind == apischema.KindComposed && s.Composition != apischema.CompositionNone:
		setExt(v, ExtComposedType, s.Composition.String())
	}
	if s.Nullable {
		setExt(v, ExtIsNullable, true)
	}
}

func markModel(v *Property, target string) {
	v.DataType = ToTypeName(target)
	v.ComplexType = target
	v.IsModel = true
}

func setExt(v *Property, key string, value any) {
	if v.Extensions == nil {
		v.Extensions = make(map[string]any)
	}
	v.Extensions[key] = value
}

// constraints copies the scalar facets of n that are present.
func constraints(ext map[string]any, n *apischema.Node) {
	if n.Nullable {
		ext[ExtIsNullable] = true
	}
	if n.Format != "" {
		ext[ExtFormat] = n.Format
	}
	if n.Pattern != "" {
		ext[ExtPattern] = n.Pattern
	}
	if n.Maximum != nil {
		ext[ExtMaximum] = *n.Maximum
	}
	if n.Minimum != nil {
		ext[ExtMinimum] = *n.Minimum
	}
	if n.ExclusiveMaximum != nil {
		ext[ExtExclusiveMaximum] = *n.ExclusiveMaximum
	}
	if n.ExclusiveMinimum != nil {
		ext[ExtExclusiveMinimum] = *n.ExclusiveMinimum
	}
}
