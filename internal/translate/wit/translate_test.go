// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package wit

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/witgen/internal/apischema"
	"github.com/dacolabs/witgen/internal/translate"
)

func newTestGenerator(strict bool) *Generator {
	return NewGenerator(translate.Options{
		Strict: strict,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func prim(typ string) *apischema.Node {
	return &apischema.Node{Kind: apischema.KindPrimitive, Type: typ}
}

func object(name string, props ...apischema.Property) *apischema.Node {
	return &apischema.Node{Kind: apischema.KindObject, Name: name, Type: "object", Properties: props}
}

func prop(name string, n *apischema.Node) apischema.Property {
	return apischema.Property{Name: name, Schema: n}
}

func TestTranslate_Nil(t *testing.T) {
	got, err := newTestGenerator(false).Translate(nil)
	require.NoError(t, err)
	assert.Equal(t, "void", got)
}

func TestTranslate_Primitives(t *testing.T) {
	g := newTestGenerator(false)
	for _, pair := range TypeMapping() {
		got, err := g.Translate(prim(pair[0]))
		require.NoError(t, err)
		assert.Equal(t, pair[1], got, "type %q", pair[0])
	}
}

func TestTranslate_UnmappedFallsBackToModelName(t *testing.T) {
	g := newTestGenerator(false)

	got, err := g.Translate(prim("order_item"))
	require.NoError(t, err)
	assert.Equal(t, "OrderItem", got)

	got, err = g.Translate(apischema.NewReference("Pet"))
	require.NoError(t, err)
	assert.Equal(t, "Pet", got)

	got, err = g.Translate(apischema.NewReference("list"))
	require.NoError(t, err)
	assert.Equal(t, "list_type", got)
}

func TestTranslate_Array(t *testing.T) {
	g := newTestGenerator(false)

	got, err := g.Translate(&apischema.Node{Kind: apischema.KindArray, Items: prim("string")})
	require.NoError(t, err)
	assert.Equal(t, "list<string>", got)

	nested := &apischema.Node{
		Kind:  apischema.KindArray,
		Items: &apischema.Node{Kind: apischema.KindArray, Items: apischema.NewReference("Tag")},
	}
	got, err = g.Translate(nested)
	require.NoError(t, err)
	assert.Equal(t, "list<list<Tag>>", got)
}

func TestTranslate_ArrayWithoutItems(t *testing.T) {
	got, err := newTestGenerator(false).Translate(&apischema.Node{Kind: apischema.KindArray})
	require.NoError(t, err)
	assert.Equal(t, "list<void>", got)
}

func TestTranslate_Map(t *testing.T) {
	g := newTestGenerator(false)
	n := &apischema.Node{Kind: apischema.KindMap, AdditionalProperties: prim("integer")}

	got, err := g.Translate(n)
	require.NoError(t, err)
	assert.Equal(t, "record {\n    entries: list<tuple<string, s32>>\n}", got)

	n.AdditionalProperties = &apischema.Node{Kind: apischema.KindArray, Items: apischema.NewReference("Pet")}
	got, err = g.Translate(n)
	require.NoError(t, err)
	assert.Equal(t, "record {\n    entries: list<tuple<string, list<Pet>>>\n}", got)
}

func TestTranslate_Enum(t *testing.T) {
	g := newTestGenerator(false)
	n := &apischema.Node{Kind: apischema.KindEnum, Name: "Status", Type: "string", Enum: []any{"active", "inactive"}}

	got, err := g.Translate(n)
	require.NoError(t, err)
	assert.Equal(t, "enum Status {\n    active,\n    inactive\n}", got)
}

func TestTranslate_EnumKeepsDuplicates(t *testing.T) {
	g := newTestGenerator(false)
	n := &apischema.Node{Kind: apischema.KindEnum, Name: "letters", Enum: []any{"A", "a b", "A"}}

	got, err := g.Translate(n)
	require.NoError(t, err)
	assert.Equal(t, "enum Letters {\n    a,\n    a-b,\n    a\n}", got)
}

func TestTranslate_EnumNonStringValues(t *testing.T) {
	g := newTestGenerator(false)
	n := &apischema.Node{Kind: apischema.KindEnum, Name: "Level", Enum: []any{1, 2.5, true}}

	got, err := g.Translate(n)
	require.NoError(t, err)
	assert.Equal(t, "enum Level {\n    1,\n    2-5,\n    true\n}", got)
}

func TestTranslate_DispatchPriority(t *testing.T) {
	g := newTestGenerator(false)

	// array wins over enum values
	arr := &apischema.Node{Kind: apischema.KindArray, Items: prim("string"), Enum: []any{"x"}}
	got, err := g.Translate(arr)
	require.NoError(t, err)
	assert.Equal(t, "list<string>", got)

	// enum values win over composition
	composed := &apischema.Node{
		Kind:        apischema.KindComposed,
		Name:        "Mode",
		Composition: apischema.OneOf,
		Members:     []*apischema.Node{prim("string")},
		Enum:        []any{"on", "off"},
	}
	got, err = g.Translate(composed)
	require.NoError(t, err)
	assert.Equal(t, "enum Mode {\n    on,\n    off\n}", got)
}

func TestTranslate_OneOf(t *testing.T) {
	g := newTestGenerator(false)
	n := &apischema.Node{
		Kind:        apischema.KindComposed,
		Name:        "Shape",
		Composition: apischema.OneOf,
		Members: []*apischema.Node{
			apischema.NewReference("Circle"),
			apischema.NewReference("Square"),
			{Kind: apischema.KindPrimitive, Name: "Label", Type: "string"},
		},
	}

	got, err := g.Translate(n)
	require.NoError(t, err)
	assert.Equal(t, "variant Shape {\n"+
		"    circle(Circle),\n"+
		"    square(Square),\n"+
		"    label(string),\n"+
		"}", got)
}

func TestTranslate_OneOfArmCountMatchesMembers(t *testing.T) {
	g := newTestGenerator(false)
	members := []*apischema.Node{
		apischema.NewReference("A"),
		apischema.NewReference("B"),
		apischema.NewReference("A"),
		prim("integer"),
	}
	n := &apischema.Node{Kind: apischema.KindComposed, Name: "U", Composition: apischema.OneOf, Members: members}

	got, err := g.Translate(n)
	require.NoError(t, err)
	assert.Equal(t, len(members), strings.Count(got, "),\n"))
	assert.Less(t, strings.Index(got, "a(A)"), strings.Index(got, "b(B)"))
	assert.Contains(t, got, "_empty(s32)")
}

func TestTranslate_AllOfFlattensDirectProperties(t *testing.T) {
	g := newTestGenerator(false)
	n := &apischema.Node{
		Kind:        apischema.KindComposed,
		Name:        "Merged",
		Composition: apischema.AllOf,
		Members: []*apischema.Node{
			object("", prop("id", prim("integer")), prop("Display Name", prim("string"))),
			apischema.NewReference("Base"),
			object("", prop("id", prim("long"))),
		},
	}

	got, err := g.Translate(n)
	require.NoError(t, err)
	assert.Equal(t, "record Merged {\n"+
		"    id: s32,\n"+
		"    display-name: string,\n"+
		"    id: s64,\n"+
		"}", got)
}

func TestTranslate_AllOfDoesNotFollowNestedComposition(t *testing.T) {
	g := newTestGenerator(false)
	inner := &apischema.Node{
		Kind:        apischema.KindComposed,
		Composition: apischema.AllOf,
		Members:     []*apischema.Node{object("", prop("hidden", prim("string")))},
	}
	n := &apischema.Node{
		Kind:        apischema.KindComposed,
		Name:        "Outer",
		Composition: apischema.AllOf,
		Members:     []*apischema.Node{inner, object("", prop("shown", prim("boolean")))},
	}

	got, err := g.Translate(n)
	require.NoError(t, err)
	assert.Equal(t, "record Outer {\n    shown: bool,\n}", got)
}

func TestTranslate_AnyOfDegrades(t *testing.T) {
	g := newTestGenerator(false)
	n := &apischema.Node{
		Kind:        apischema.KindComposed,
		Name:        "Loose",
		Composition: apischema.AnyOf,
		Members:     []*apischema.Node{prim("string"), prim("integer")},
	}

	got, err := g.Translate(n)
	require.NoError(t, err)
	assert.Equal(t, "record", got)

	empty := &apischema.Node{Kind: apischema.KindComposed, Name: "Empty", Composition: apischema.OneOf}
	got, err = g.Translate(empty)
	require.NoError(t, err)
	assert.Equal(t, "record", got)
}

func TestTranslate_StrictMode(t *testing.T) {
	g := newTestGenerator(true)

	anyOf := &apischema.Node{
		Kind:        apischema.KindComposed,
		Name:        "Loose",
		Composition: apischema.AnyOf,
		Members:     []*apischema.Node{prim("string")},
	}
	_, err := g.Translate(anyOf)
	require.ErrorIs(t, err, ErrUnsupportedComposition)

	allOf := &apischema.Node{
		Kind:        apischema.KindComposed,
		Name:        "Merged",
		Composition: apischema.AllOf,
		Members: []*apischema.Node{
			object("", prop("id", prim("integer"))),
			object("", prop("id", prim("long"))),
		},
	}
	_, err = g.Translate(allOf)
	require.ErrorIs(t, err, ErrDuplicateIdentifier)

	enum := &apischema.Node{Kind: apischema.KindEnum, Name: "E", Enum: []any{"A", "a"}}
	_, err = g.Translate(enum)
	require.ErrorIs(t, err, ErrDuplicateIdentifier)

	ok := &apischema.Node{Kind: apischema.KindEnum, Name: "E", Enum: []any{"a", "b"}}
	_, err = g.Translate(ok)
	require.NoError(t, err)
}

func TestTranslate_CyclicSchema(t *testing.T) {
	g := newTestGenerator(false)

	self := &apischema.Node{Kind: apischema.KindArray, Name: "Loop"}
	self.Items = self
	_, err := g.Translate(self)
	require.ErrorIs(t, err, ErrCyclicSchema)

	composed := &apischema.Node{Kind: apischema.KindComposed, Name: "Node", Composition: apischema.OneOf}
	composed.Members = []*apischema.Node{{Kind: apischema.KindArray, Name: "children", Items: composed}}
	_, err = g.Translate(composed)
	require.ErrorIs(t, err, ErrCyclicSchema)
}

func TestTranslate_SharedNodeIsNotACycle(t *testing.T) {
	g := newTestGenerator(false)
	shared := prim("string")
	n := &apischema.Node{
		Kind:        apischema.KindComposed,
		Name:        "Pair",
		Composition: apischema.AllOf,
		Members:     []*apischema.Node{object("", prop("a", shared), prop("b", shared))},
	}

	got, err := g.Translate(n)
	require.NoError(t, err)
	assert.Equal(t, "record Pair {\n    a: string,\n    b: string,\n}", got)
}

func TestErrorModel_Stable(t *testing.T) {
	want := "variant error {\n" +
		"    validation-error(record {\n" +
		"        message: string,\n" +
		"        details: list<record {\n" +
		"            field: string,\n" +
		"            message: string,\n" +
		"        }>,\n" +
		"    }),\n" +
		"    unauthorized(string),\n" +
		"    forbidden(string),\n" +
		"    not-found(string),\n" +
		"    rate-limit-exceeded(string),\n" +
		"    internal-error(string),\n" +
		"}"

	assert.Equal(t, want, ErrorModel())
	assert.Equal(t, ErrorModel(), ErrorModel())

	a := newTestGenerator(false)
	b := newTestGenerator(true)
	assert.Equal(t, want, a.ErrorType)
	assert.Equal(t, a.ErrorType, b.ErrorType)
}

func TestNewGenerator_Defaults(t *testing.T) {
	g := newTestGenerator(false)
	assert.Equal(t, "openapi", g.PackageName())
	assert.Empty(t, g.ProjectName())

	g = NewGenerator(translate.Options{
		PackageName: "petstore:api",
		ProjectName: "Petstore",
		ErrorModel:  translate.ErrorModelString,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Equal(t, "petstore:api", g.PackageName())
	assert.Equal(t, "Petstore", g.ProjectName())
	assert.Equal(t, ErrorModel(), g.ErrorType)
}
