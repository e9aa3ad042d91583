// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package typescript

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/gqlsig/internal/translate"
)

func TestVariablesSignature_FilterAndOrder(t *testing.T) {
	schema := loadTestSchema(t)
	doc := parseTestQuery(t, `query Q($a: Int, $b: String) { me { id } }`)

	tr := &Translator{}

	// Filtering to b keeps only b, typed from its declaration.
	out := tr.VariablesSignature([]string{"b"}, schema, doc.Operations[0])
	assert.Contains(t, out, `"b": string`)
	assert.NotContains(t, out, `"a"`)

	// Entries follow declaration order, not filter order.
	out = tr.VariablesSignature([]string{"b", "a"}, schema, doc.Operations[0])
	assert.Equal(t, "{\n\"a\": number,\n\"b\": string\n}", out)
}

func TestVariablesSignature_EmptyIsNull(t *testing.T) {
	schema := loadTestSchema(t)
	doc := parseTestQuery(t, `query Q($a: Int) { me { id } }`)

	tr := &Translator{}

	// No requested variables yields the null sentinel, not an empty
	// object.
	assert.Equal(t, "null", tr.VariablesSignature(nil, schema, doc.Operations[0]))
	assert.Equal(t, "null", tr.VariablesSignature([]string{"missing"}, schema, doc.Operations[0]))
}

func TestOperationSignature_Envelope(t *testing.T) {
	schema := loadTestSchema(t)
	doc := parseTestQuery(t, `query { me { id role } }`)

	tr := &Translator{}
	out := tr.OperationSignature(schema, doc.Operations[0], nil)

	assert.Contains(t, out, `"data":`)
	assert.Contains(t, out, `"errors": Array<any>`)
	assert.Contains(t, out, `"id": string`)
	assert.Contains(t, out, `"role": "ADMIN" | "EDITOR" | "VIEWER"`)
}

func TestFragmentSignature(t *testing.T) {
	schema := loadTestSchema(t)
	doc := parseTestQuery(t, `fragment Bits on User { name }`)

	tr := &Translator{}
	out := tr.FragmentSignature(schema, doc.Fragments[0], nil)

	assert.Contains(t, out, `"name": string`)
	assert.Contains(t, out, `"errors": Array<any>`)
}

func TestTranslate_File(t *testing.T) {
	schema := loadTestSchema(t)
	doc := parseTestQuery(t, `query listUsers($term: String!) { search(term: $term) { id } }`)

	tr := &Translator{}
	output, err := tr.Translate(doc.Operations[0], schema, nil)
	require.NoError(t, err)

	result := string(output)
	assert.Contains(t, result, "// Code generated by gqlsig. DO NOT EDIT.")
	assert.Contains(t, result, "export type ListUsersVariables =")
	assert.Contains(t, result, `"term": string`)
	assert.Contains(t, result, "export type ListUsersPayload =")
	assert.Contains(t, result, `"errors": Array<any>`)
}

func TestTranslate_AnonymousOperation(t *testing.T) {
	schema := loadTestSchema(t)
	doc := parseTestQuery(t, `{ me { id } }`)

	tr := &Translator{}
	output, err := tr.Translate(doc.Operations[0], schema, nil)
	require.NoError(t, err)

	assert.Contains(t, string(output), "export type UnnamedOperationPayload =")
}

func TestTranslator_Registry(t *testing.T) {
	tr, err := translate.Get("typescript")
	require.NoError(t, err)
	assert.Equal(t, "typescript", tr.Name())
	assert.Equal(t, ".ts", tr.FileExtension())
	assert.Contains(t, translate.Available(), "typescript")
}

func TestTranslator_WarnHook(t *testing.T) {
	schema := loadTestSchema(t)
	doc := parseTestQuery(t, `query { me { id } }`)

	var messages []string
	tr := &Translator{}
	tr.SetWarn(func(format string, args ...any) {
		messages = append(messages, fmt.Sprintf(format, args...))
	})

	tr.OperationSignature(schema, doc.Operations[0], nil)
	assert.Empty(t, messages, "well-formed operations produce no diagnostics")
}
