// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package wit

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dacolabs/witgen/internal/apischema"
)

// RecordTag is the bare fallback emitted for compositions without structure.
const RecordTag = "record"

func (g *Generator) composed(n *apischema.Node, path visitSet) (string, error) {
	if len(n.Members) > 0 {
		switch n.Composition {
		case apischema.OneOf:
			return g.variantDeclaration(n, path)
		case apischema.AllOf:
			return g.recordDeclaration(n, path)
		}
	}
	if g.opts.Strict {
		return "", fmt.Errorf("%w: %s %s", ErrUnsupportedComposition, n.Composition, ToTypeName(n.Name))
	}
	g.logger.Debug("composition degraded to record",
		slog.String("schema", n.Name), slog.String("composition", n.Composition.String()))
	return RecordTag, nil
}

// variantDeclaration emits one arm per member, in member order.
func (g *Generator) variantDeclaration(n *apischema.Node, path visitSet) (string, error) {
	var sb strings.Builder
	sb.WriteString("variant " + ToTypeName(n.Name) + " {\n")

	seen := make(map[string]bool, len(n.Members))
	for _, m := range n.Members {
		var name string
		if m != nil {
			name = m.Name
		}
		arm := Sanitize(name)
		if err := g.checkDuplicate(seen, arm, n); err != nil {
			return "", err
		}
		payload, err := g.translate(m, path)
		if err != nil {
			return "", err
		}
		sb.WriteString("    " + arm + "(" + payload + "),\n")
	}

	sb.WriteString("}")
	return sb.String(), nil
}

// recordDeclaration flattens the direct properties of every member into one
// record. Members' own compositions are not followed and repeated property
// names are emitted again.
func (g *Generator) recordDeclaration(n *apischema.Node, path visitSet) (string, error) {
	var sb strings.Builder
	sb.WriteString("record " + ToTypeName(n.Name) + " {\n")

	seen := make(map[string]bool)
	for _, m := range n.Members {
		if m == nil {
			continue
		}
		for _, p := range m.Properties {
			field := Sanitize(p.Name)
			if err := g.checkDuplicate(seen, field, n); err != nil {
				return "", err
			}
			typ, err := g.translate(p.Schema, path)
			if err != nil {
				return "", err
			}
			sb.WriteString("    " + field + ": " + typ + ",\n")
		}
	}

	sb.WriteString("}")
	return sb.String(), nil
}

// enumDeclaration emits the enum values as arms, in order, duplicates kept.
func (g *Generator) enumDeclaration(n *apischema.Node) (string, error) {
	arms := make([]string, 0, len(n.Enum))
	seen := make(map[string]bool, len(n.Enum))
	for _, v := range n.Enum {
		arm := Sanitize(fmt.Sprint(v))
		if err := g.checkDuplicate(seen, arm, n); err != nil {
			return "", err
		}
		arms = append(arms, arm)
	}
	return "enum " + ToTypeName(n.Name) + " {\n    " +
		strings.Join(arms, ",\n    ") + "\n}", nil
}

func (g *Generator) checkDuplicate(seen map[string]bool, name string, owner *apischema.Node) error {
	if seen[name] && g.opts.Strict {
		return fmt.Errorf("%w: %q in %s", ErrDuplicateIdentifier, name, ToTypeName(owner.Name))
	}
	seen[name] = true
	return nil
}
