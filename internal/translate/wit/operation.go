// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package wit

import (
	"strings"

	"github.com/dacolabs/witgen/internal/apischema"
	"github.com/dacolabs/witgen/internal/translate"
)

// Operation is an API call in WIT shape.
type Operation struct {
	ID         string         `json:"operationId"`
	FuncName   string         `json:"funcName"`
	Method     string         `json:"method"`
	Path       string         `json:"path"`
	Summary    string         `json:"summary,omitempty"`
	Params     []*Parameter   `json:"params,omitempty"`
	ReturnType string         `json:"returnType"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Parameter is one operation input.
type Parameter struct {
	Name     string          `json:"paramName"`
	BaseName string          `json:"baseName"`
	In       string          `json:"in"`
	DataType string          `json:"dataType"`
	IsEnum   bool            `json:"isEnum,omitempty"`
	Required bool            `json:"required,omitempty"`
	Schema   *apischema.Node `json:"-"`
}

// Operation converts an API operation and rewrites it into WIT shape.
func (g *Generator) Operation(op apischema.Operation) (*Operation, error) {
	id := op.ID
	if id == "" {
		id = strings.ToLower(op.Method) + " " + op.Path
	}
	out := &Operation{
		ID:         id,
		FuncName:   funcName(id),
		Method:     op.Method,
		Path:       op.Path,
		Summary:    strings.TrimSpace(strings.SplitN(op.Summary, "\n", 2)[0]),
		Extensions: make(map[string]any),
	}

	for _, p := range op.Parameters {
		param := &Parameter{
			Name:     p.Name,
			BaseName: p.Name,
			In:       p.In,
			Required: p.Required,
			Schema:   p.Schema,
		}
		if p.Schema != nil && len(p.Schema.Enum) > 0 {
			// Inline enums are declared under the parameter's own name.
			param.IsEnum = true
			param.DataType = p.Schema.Name
			if param.DataType == "" {
				param.DataType = p.Name
				named := *p.Schema
				named.Name = p.Name
				param.Schema = &named
			}
		} else {
			t, err := g.Translate(p.Schema)
			if err != nil {
				return nil, err
			}
			param.DataType = t
		}
		out.Params = append(out.Params, param)
	}

	switch {
	case op.Response == nil:
		out.ReturnType = VoidType
	case op.Response.IsReference() && strings.HasSuffix(op.Response.Ref, ResponseSuffix):
		// Envelopes keep the raw name so DetermineReturnType can unwrap them.
		out.ReturnType = op.Response.Ref
	default:
		t, err := g.Translate(op.Response)
		if err != nil {
			return nil, err
		}
		out.ReturnType = t
	}

	g.RewriteOperation(out)
	return out, nil
}

// RewriteOperation sanitizes parameter names, names enum parameter types and
// records the result-wrapped return type under ExtWITReturn. It mutates op in
// place.
func (g *Generator) RewriteOperation(op *Operation) {
	for _, p := range op.Params {
		p.Name = Sanitize(p.Name)
		if p.IsEnum {
			p.DataType = ToTypeName(p.DataType)
		}
	}
	if op.Extensions == nil {
		op.Extensions = make(map[string]any)
	}
	op.Extensions[ExtWITReturn] = ResultType(DetermineReturnType(op.ReturnType))
}

// DetermineReturnType unwraps envelope types: "OrderResponse" becomes "Order".
// Missing and void returns become VoidType; other types pass through.
func DetermineReturnType(returnType string) string {
	if returnType == "" || returnType == VoidType {
		return VoidType
	}
	if inner, ok := strings.CutSuffix(returnType, ResponseSuffix); ok {
		return ToTypeName(inner)
	}
	return returnType
}

// WITReturn returns the rewritten return type of op.
func (op *Operation) WITReturn() string {
	if s, ok := op.Extensions[ExtWITReturn].(string); ok {
		return s
	}
	return ResultType(DetermineReturnType(op.ReturnType))
}

func funcName(id string) string {
	if name := translate.ToKebabCase(id); name != "" {
		return name
	}
	return EmptyName
}
