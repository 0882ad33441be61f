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

func petstore() *apischema.Document {
	pet := object("Pet", prop("id", prim("long")), prop("name", prim("string")))
	pet.Required = []string{"id", "name"}
	sort := &apischema.Node{Kind: apischema.KindEnum, Type: "string", Enum: []any{"asc", "desc"}}

	return &apischema.Document{
		Title:   "Petstore",
		Version: "1.0.0",
		Schemas: []apischema.NamedSchema{
			{Name: "Pet", Node: pet},
			{Name: "Status", Node: &apischema.Node{Kind: apischema.KindEnum, Name: "Status", Enum: []any{"available", "sold"}}},
		},
		Operations: []apischema.Operation{
			{
				ID:         "listPets",
				Method:     "GET",
				Path:       "/pets",
				Summary:    "List all pets",
				Parameters: []apischema.Parameter{{Name: "sort", In: "query", Schema: sort}},
				Response:   &apischema.Node{Kind: apischema.KindArray, Items: apischema.NewReference("Pet")},
			},
			{
				ID:         "getPet",
				Method:     "GET",
				Path:       "/pets/{id}",
				Parameters: []apischema.Parameter{{Name: "id", In: "path", Required: true, Schema: prim("long")}},
				Response:   apischema.NewReference("Pet"),
			},
		},
	}
}

func testOptions() translate.Options {
	return translate.Options{
		PackageName: "petstore",
		ProjectName: "Petstore",
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestTranslator_FileExtension(t *testing.T) {
	assert.Equal(t, ".wit", (&Translator{}).FileExtension())
}

func TestTranslator_Translate(t *testing.T) {
	out, err := (&Translator{}).Translate(petstore(), testOptions())
	require.NoError(t, err)
	wit := string(out)

	assert.True(t, strings.HasPrefix(wit, "// Code generated by witgen; DO NOT EDIT.\n"))
	for _, want := range []string{
		"// Project: Petstore\n",
		"// Source: Petstore 1.0.0\n",
		"package petstore;\n",
		"interface types {\n    variant error {\n",
		"    record Pet {\n        id: s64,\n        name: string,\n    }\n",
		"    enum Status {\n        available,\n        sold\n    }\n",
		"    enum Sort {\n        asc,\n        desc\n    }\n",
		"    use types.{ error, Pet, Status, Sort };\n",
		"    /// List all pets\n    list-pets: func(sort: option<Sort>) -> expected<list<Pet>, error>;\n",
		"    get-pet: func(id: s64) -> expected<Pet, error>;\n",
		"world petstore {\n    export types;\n    export api;\n}",
	} {
		assert.Contains(t, wit, want)
	}
}

func TestTranslator_TypesOnly(t *testing.T) {
	doc := &apischema.Document{
		Schemas: []apischema.NamedSchema{{Name: "Ids", Node: &apischema.Node{Kind: apischema.KindArray, Items: prim("string")}}},
	}

	out, err := (&Translator{}).Translate(doc, testOptions())
	require.NoError(t, err)
	wit := string(out)

	assert.Contains(t, wit, "    type Ids = list<string>;\n")
	assert.NotContains(t, wit, "interface api")
	assert.NotContains(t, wit, "export api;")
	assert.NotContains(t, wit, "// Source:")
}

func TestTranslator_ReferenceReturnMatchesDeclaration(t *testing.T) {
	doc := &apischema.Document{
		Schemas: []apischema.NamedSchema{
			{Name: "PetStore", Node: object("PetStore", prop("id", prim("long")))},
		},
		Operations: []apischema.Operation{
			{ID: "getStore", Method: "GET", Path: "/store", Response: apischema.NewReference("PetStore")},
		},
	}

	out, err := (&Translator{}).Translate(doc, testOptions())
	require.NoError(t, err)
	wit := string(out)

	assert.Contains(t, wit, "    record Petstore {\n")
	assert.Contains(t, wit, "    use types.{ error, Petstore };\n")
	assert.Contains(t, wit, "    get-store: func() -> expected<Petstore, error>;\n")
	assert.NotContains(t, wit, "PetStore")
}

func TestTranslator_InlinePropertyTypes(t *testing.T) {
	owner := object("", prop("name", prim("string")))
	owner.Required = []string{"name"}
	pet := object("Pet",
		prop("status", &apischema.Node{Kind: apischema.KindEnum, Type: "string", Enum: []any{"a", "b"}}),
		prop("owner", owner),
		prop("tags", &apischema.Node{Kind: apischema.KindArray, Items: &apischema.Node{Kind: apischema.KindEnum, Enum: []any{"x"}}}),
		prop("labels", &apischema.Node{Kind: apischema.KindMap, AdditionalProperties: prim("string")}),
		prop("shape", &apischema.Node{
			Kind:        apischema.KindComposed,
			Composition: apischema.OneOf,
			Members:     []*apischema.Node{apischema.NewReference("Circle"), apischema.NewReference("Square")},
		}),
	)
	doc := &apischema.Document{Schemas: []apischema.NamedSchema{{Name: "Pet", Node: pet}}}

	out, err := (&Translator{}).Translate(doc, testOptions())
	require.NoError(t, err)
	wit := string(out)

	for _, want := range []string{
		"    enum PetStatus {\n        a,\n        b\n    }\n",
		"    record PetOwner {\n        name: string,\n    }\n",
		"    enum PetTags {\n        x\n    }\n",
		"    record PetLabels {\n        entries: list<tuple<string, string>>,\n    }\n",
		"    variant PetShape {\n        circle(Circle),\n        square(Square),\n    }\n",
		"    record Pet {\n" +
			"        status: option<PetStatus>,\n" +
			"        owner: option<PetOwner>,\n" +
			"        tags: option<list<PetTags>>,\n" +
			"        labels: option<PetLabels>,\n" +
			"        shape: option<PetShape>,\n" +
			"    }\n",
	} {
		assert.Contains(t, wit, want)
	}
	assert.NotContains(t, wit, EmptyName)
	assert.Less(t, strings.Index(wit, "enum PetStatus"), strings.Index(wit, "record Pet {"))
}

func TestPrepare_InlineTypeNamesAvoidSchemas(t *testing.T) {
	g := NewGenerator(testOptions())
	status := &apischema.Node{Kind: apischema.KindEnum, Enum: []any{"on", "off"}}
	doc := &apischema.Document{
		Schemas: []apischema.NamedSchema{
			{Name: "Pet", Node: object("Pet", prop("status", status))},
			{Name: "pet_status", Node: object("pet_status")},
		},
	}

	data, err := g.Prepare(doc)
	require.NoError(t, err)

	assert.Equal(t, []string{"error", "PetStatus2", "Pet", "PetStatus"}, data.Imports)
	require.Len(t, data.Models, 3)
	assert.Equal(t, "PetStatus2", data.Models[1].Vars[0].DataType)
}

func TestPrepare_InlineCycle(t *testing.T) {
	node := &apischema.Node{Kind: apischema.KindObject, Type: "object"}
	node.Properties = []apischema.Property{prop("self", node)}
	doc := &apischema.Document{
		Schemas: []apischema.NamedSchema{{Name: "Tree", Node: object("Tree", prop("child", node))}},
	}

	_, err := NewGenerator(testOptions()).Prepare(doc)
	require.ErrorIs(t, err, ErrCyclicSchema)
}

func TestTranslator_Deterministic(t *testing.T) {
	tr := &Translator{}
	first, err := tr.Translate(petstore(), testOptions())
	require.NoError(t, err)
	second, err := tr.Translate(petstore(), testOptions())
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestTranslator_WrapsErrors(t *testing.T) {
	loop := &apischema.Node{Kind: apischema.KindArray}
	loop.Items = loop
	doc := &apischema.Document{Schemas: []apischema.NamedSchema{{Name: "Loop", Node: loop}}}

	_, err := (&Translator{}).Translate(doc, testOptions())
	require.ErrorIs(t, err, ErrCyclicSchema)
	assert.Contains(t, err.Error(), `schema "Loop"`)
}

func TestPrepare_DeduplicatesImports(t *testing.T) {
	g := NewGenerator(testOptions())
	doc := &apischema.Document{
		Schemas: []apischema.NamedSchema{
			{Name: "pet", Node: object("pet")},
			{Name: "Pet", Node: object("Pet")},
		},
		Operations: []apischema.Operation{
			{ID: "a", Method: "GET", Path: "/a", Parameters: []apischema.Parameter{
				{Name: "mode", Schema: &apischema.Node{Kind: apischema.KindEnum, Enum: []any{"x"}}},
			}},
			{ID: "b", Method: "GET", Path: "/b", Parameters: []apischema.Parameter{
				{Name: "mode", Schema: &apischema.Node{Kind: apischema.KindEnum, Enum: []any{"x"}}},
			}},
		},
	}

	data, err := g.Prepare(doc)
	require.NoError(t, err)

	assert.Equal(t, []string{"error", "Pet", "Mode"}, data.Imports)
	assert.Len(t, data.Models, 2)
	assert.Len(t, data.Operations, 2)
	assert.Len(t, data.Declarations, 3)
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "    a\n\n    b", indent(4, "a\n\nb"))
}
