// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package wit

import (
	"fmt"
	"log/slog"

	"github.com/dacolabs/witgen/internal/apischema"
)

// VoidType is the translation of an absent schema.
const VoidType = "void"

// visitSet tracks the nodes on the current recursion path.
type visitSet map[*apischema.Node]struct{}

// Translate maps a schema node to a WIT type expression or declaration.
// Dispatch order is array, map, enum, composed, then primitive or reference.
// It returns ErrCyclicSchema if n contains itself, and in strict mode
// ErrUnsupportedComposition or ErrDuplicateIdentifier.
func (g *Generator) Translate(n *apischema.Node) (string, error) {
	return g.translate(n, make(visitSet))
}

func (g *Generator) translate(n *apischema.Node, path visitSet) (string, error) {
	if n == nil {
		return VoidType, nil
	}
	if _, ok := path[n]; ok {
		return "", fmt.Errorf("%w: %s", ErrCyclicSchema, Sanitize(n.Name))
	}
	path[n] = struct{}{}
	defer delete(path, n)

	switch {
	case n.Kind == apischema.KindArray:
		inner, err := g.translate(n.Items, path)
		if err != nil {
			return "", err
		}
		return "list<" + inner + ">", nil
	case n.Kind == apischema.KindMap:
		inner, err := g.translate(n.AdditionalProperties, path)
		if err != nil {
			return "", err
		}
		return "record {\n" +
			"    entries: list<tuple<string, " + inner + ">>\n" +
			"}", nil
	case len(n.Enum) > 0:
		return g.enumDeclaration(n)
	case n.Kind == apischema.KindComposed:
		return g.composed(n, path)
	default:
		t, mapped := resolveType(n.Type)
		if !mapped {
			g.logger.Debug("unmapped type treated as model reference",
				slog.String("type", n.Type), slog.String("wit", t))
		}
		return t, nil
	}
}
