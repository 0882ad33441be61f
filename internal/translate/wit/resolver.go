// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package wit

import "sort"

// typeMapping maps declared schema type names to WIT types. The "list",
// "record" entries are bare tags that the translator completes.
var typeMapping = map[string]string{
	"string":    "string",
	"integer":   "s32",
	"long":      "s64",
	"float":     "float32",
	"double":    "float64",
	"boolean":   "bool",
	"array":     "list",
	"map":       "record",
	"date":      "string",
	"date-time": "string",
	"binary":    "list<u8>",
	"file":      "list<u8>",
	"UUID":      "string",
	"URI":       "string",
	"object":    "record",
	"null":      "option<string>",
	"any":       "string",
}

// PrimitiveType looks up the WIT type for a declared schema type name.
func PrimitiveType(schemaType string) (string, bool) {
	t, ok := typeMapping[schemaType]
	return t, ok
}

// TypeMapping returns the mapping table as sorted (schema type, WIT type) pairs.
func TypeMapping() [][2]string {
	pairs := make([][2]string, 0, len(typeMapping))
	for k, v := range typeMapping {
		pairs = append(pairs, [2]string{k, v})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })
	return pairs
}

// resolveType maps a declared type name, falling back to a model reference.
func resolveType(schemaType string) (string, bool) {
	if t, ok := PrimitiveType(schemaType); ok {
		return t, true
	}
	return ToTypeName(schemaType), false
}
