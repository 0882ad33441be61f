// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package apischema

import (
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// KeyOrder maps a dotted document path to the keys of the mapping found
// there, in source order. Sequence items are addressed by index.
type KeyOrder map[string][]string

// ExtractKeyOrder parses raw YAML or JSON and records the key order of every
// mapping in the document.
func ExtractKeyOrder(data []byte) (KeyOrder, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	order := make(KeyOrder)
	order.collect(&root, "")
	return order, nil
}

func (o KeyOrder) collect(n *yaml.Node, path string) {
	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			o.collect(c, path)
		}
	case yaml.MappingNode:
		keys := make([]string, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			keys = append(keys, key)
			o.collect(n.Content[i+1], joinPath(path, key))
		}
		o[path] = keys
	case yaml.SequenceNode:
		for i, c := range n.Content {
			o.collect(c, joinPath(path, strconv.Itoa(i)))
		}
	}
}

// Keys returns the keys of m in the order recorded at path. Keys missing from
// the recorded order are appended sorted; without a record all keys are sorted.
func Keys[V any](o KeyOrder, path string, m map[string]V) []string {
	seen := make(map[string]bool, len(m))
	result := make([]string, 0, len(m))
	for _, key := range o[path] {
		if _, ok := m[key]; ok && !seen[key] {
			result = append(result, key)
			seen[key] = true
		}
	}
	var rest []string
	for key := range m {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(result, rest...)
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
