// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package apischema

import (
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// openAPIClassifier turns kin-openapi schemas into Nodes. References stop
// the walk, so the resulting trees are finite even for recursive documents.
type openAPIClassifier struct {
	order KeyOrder
}

// FromOpenAPI classifies an OpenAPI schema. Property order is taken from
// order at the given document path when available.
func FromOpenAPI(ref *openapi3.SchemaRef, order KeyOrder, path string) *Node {
	c := &openAPIClassifier{order: order}
	return c.classify(ref, path)
}

func (c *openAPIClassifier) classify(ref *openapi3.SchemaRef, path string) *Node {
	if ref == nil {
		return nil
	}
	if ref.Ref != "" {
		return NewReference(RefName(ref.Ref))
	}
	s := ref.Value
	if s == nil {
		return nil
	}

	typ, nullable := openAPIType(s.Type)
	n := &Node{
		Name:              s.Title,
		Nullable:          nullable || s.Nullable,
		Format:            s.Format,
		Pattern:           s.Pattern,
		Minimum:           s.Min,
		Maximum:           s.Max,
		Required:          s.Required,
		Description:       s.Description,
		AdditionalAllowed: s.AdditionalProperties.Has != nil && *s.AdditionalProperties.Has,
	}
	if s.ExclusiveMin {
		n.ExclusiveMinimum = boolPtr(true)
	}
	if s.ExclusiveMax {
		n.ExclusiveMaximum = boolPtr(true)
	}
	if d := s.Discriminator; d != nil {
		n.Discriminator = &Discriminator{PropertyName: d.PropertyName}
		for k, v := range d.Mapping {
			if n.Discriminator.Mapping == nil {
				n.Discriminator.Mapping = make(map[string]string)
			}
			n.Discriminator.Mapping[k] = v
		}
	}
	if s.AdditionalProperties.Schema != nil {
		n.AdditionalProperties = c.classify(s.AdditionalProperties.Schema, joinPath(path, "additionalProperties"))
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

func (c *openAPIClassifier) composed(n *Node, kind Composition, refs openapi3.SchemaRefs, path string) {
	n.Kind = KindComposed
	n.Type = "object"
	n.Composition = kind
	for i, ref := range refs {
		n.Members = append(n.Members, c.classify(ref, joinPath(path, strconv.Itoa(i))))
	}
}

// openAPIType returns the first non-null type and whether "null" was listed.
func openAPIType(types *openapi3.Types) (string, bool) {
	if types == nil {
		return "", false
	}
	var typ string
	nullable := false
	for _, t := range types.Slice() {
		if t == openapi3.TypeNull {
			nullable = true
			continue
		}
		if typ == "" {
			typ = t
		}
	}
	return typ, nullable
}

func isObjectType(typ string) bool {
	return typ == "" || typ == "object"
}

func boolPtr(b bool) *bool {
	return &b
}

// fromOpenAPIDocument converts a loaded OpenAPI document.
func fromOpenAPIDocument(doc *openapi3.T, order KeyOrder) *Document {
	c := &openAPIClassifier{order: order}
	out := &Document{}
	if doc.Info != nil {
		out.Title = doc.Info.Title
		out.Version = doc.Info.Version
	}

	if doc.Components != nil {
		names := make([]string, 0, len(doc.Components.Schemas))
		for name := range doc.Components.Schemas {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			n := c.classify(doc.Components.Schemas[name], "components.schemas."+name)
			if n == nil {
				continue
			}
			n.Name = name
			out.Schemas = append(out.Schemas, NamedSchema{Name: name, Node: n})
		}
	}

	if doc.Paths == nil {
		return out
	}
	paths := doc.Paths.Map()
	pathKeys := make([]string, 0, len(paths))
	for p := range paths {
		pathKeys = append(pathKeys, p)
	}
	sort.Strings(pathKeys)
	for _, p := range pathKeys {
		item := paths[p]
		ops := item.Operations()
		methods := make([]string, 0, len(ops))
		for m := range ops {
			methods = append(methods, m)
		}
		sort.Strings(methods)
		for _, m := range methods {
			out.Operations = append(out.Operations, c.operation(p, m, item, ops[m]))
		}
	}
	return out
}

func (c *openAPIClassifier) operation(path, method string, item *openapi3.PathItem, op *openapi3.Operation) Operation {
	opPath := "paths." + path + "." + strings.ToLower(method)
	out := Operation{
		ID:      op.OperationID,
		Method:  method,
		Path:    path,
		Summary: op.Summary,
	}

	params := slices.Clone(item.Parameters)
	params = append(params, op.Parameters...)
	for _, pr := range params {
		if pr == nil || pr.Value == nil {
			continue
		}
		p := pr.Value
		schema := c.classify(p.Schema, opPath+".parameters")
		if schema != nil && schema.Name == "" {
			schema.Name = p.Name
		}
		out.Parameters = append(out.Parameters, Parameter{
			Name:     p.Name,
			In:       p.In,
			Required: p.Required,
			Schema:   schema,
		})
	}

	if rb := op.RequestBody; rb != nil && rb.Value != nil {
		if mt := jsonMediaType(rb.Value.Content); mt != nil && mt.Schema != nil {
			schema := c.classify(mt.Schema, opPath+".requestBody.content")
			if schema != nil && schema.Name == "" {
				schema.Name = "body"
			}
			out.Parameters = append(out.Parameters, Parameter{
				Name:     "body",
				In:       "body",
				Required: rb.Value.Required,
				Schema:   schema,
			})
		}
	}

	if op.Responses != nil {
		responses := op.Responses.Map()
		codes := make([]string, 0, len(responses))
		for code := range responses {
			if strings.HasPrefix(code, "2") {
				codes = append(codes, code)
			}
		}
		sort.Strings(codes)
		for _, code := range codes {
			r := responses[code]
			if r == nil || r.Value == nil {
				continue
			}
			if mt := jsonMediaType(r.Value.Content); mt != nil && mt.Schema != nil {
				out.Response = c.classify(mt.Schema, opPath+".responses."+code+".content")
				break
			}
		}
	}
	return out
}

// jsonMediaType prefers application/json and falls back to the first
// content type, in sorted order, that carries a schema.
func jsonMediaType(content openapi3.Content) *openapi3.MediaType {
	if mt := content.Get("application/json"); mt != nil {
		return mt
	}
	keys := make([]string, 0, len(content))
	for k := range content {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if content[k] != nil && content[k].Schema != nil {
			return content[k]
		}
	}
	return nil
}
