// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package wit

import (
	"strings"

	"github.com/dacolabs/witgen/internal/translate"
)

// EmptyName stands in for missing or unusable identifiers.
const EmptyName = "_empty"

// reservedWords are the WIT keywords that cannot be used as type names.
var reservedWords = map[string]struct{}{
	"error": {}, "expected": {}, "list": {}, "option": {}, "result": {}, "record": {},
	"variant": {}, "enum": {}, "flags": {}, "type": {}, "resource": {}, "func": {},
	"static": {}, "interface": {}, "tuple": {}, "u8": {}, "u16": {}, "u32": {}, "u64": {},
	"s8": {}, "s16": {}, "s32": {}, "s64": {}, "float32": {}, "float64": {}, "bool": {},
	"string": {}, "world": {}, "export": {}, "import": {}, "package": {}, "use": {},
}

// IsReserved reports whether name is a WIT keyword.
func IsReserved(name string) bool {
	_, ok := reservedWords[name]
	return ok
}

// Sanitize normalizes raw into a lowercase, hyphen-delimited identifier:
// characters outside [A-Za-z0-9_-] become '-', runs of '-' collapse, and
// leading or trailing '-' are dropped. Empty results become EmptyName.
func Sanitize(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))
	lastDash := true // suppresses leading dashes
	for _, r := range raw {
		switch {
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(r + ('a' - 'A'))
			lastDash = false
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_':
			sb.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				sb.WriteByte('-')
				lastDash = true
			}
		}
	}
	out := strings.TrimSuffix(sb.String(), "-")
	if out == "" {
		return EmptyName
	}
	return out
}

// ToTypeName converts raw into a declared type name. Reserved words get the
// "_type" suffix; everything else is PascalCased.
func ToTypeName(raw string) string {
	if raw == "" {
		return EmptyName
	}
	sanitized := Sanitize(raw)
	if sanitized == EmptyName {
		return EmptyName
	}
	if IsReserved(sanitized) {
		return EscapeReservedWord(sanitized)
	}
	if name := translate.ToPascalCase(sanitized); name != "" {
		return name
	}
	return EmptyName
}

// EscapeReservedWord appends the reserved-word suffix.
func EscapeReservedWord(name string) string {
	return name + "_type"
}
