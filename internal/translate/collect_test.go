// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectReferencedTypes_Basic(t *testing.T) {
	schema := loadTestSchema(t)
	doc := parseTestQuery(t, `query { me { id role } }`)

	set := CollectReferencedTypes(schema, doc)

	assert.True(t, set["query"])
	assert.True(t, set["user"])
	assert.True(t, set["id"])
	assert.True(t, set["role"])
	assert.False(t, set["item"])
}

func TestCollectReferencedTypes_FragmentOnlyType(t *testing.T) {
	schema := loadTestSchema(t)
	doc := parseTestQuery(t, `
query { me { ...UserBits } }
fragment UserBits on User { role }
`)

	set := CollectReferencedTypes(schema, doc)

	// Role is referenced only inside the fragment spread.
	assert.True(t, set["role"])
}

func TestCollectReferencedTypes_VariablesAndArguments(t *testing.T) {
	schema := loadTestSchema(t)
	doc := parseTestQuery(t, `query Search($term: String!) { search(term: $term) { id } }`)

	set := CollectReferencedTypes(schema, doc)

	assert.True(t, set["string"])
	assert.True(t, set["item"])
}

func TestCollectReferencedTypes_LegacyNormalization(t *testing.T) {
	schema := loadTestSchema(t)
	doc := parseTestQuery(t, `query { me { profile { bio } } }`)

	set := CollectReferencedTypes(schema, doc)

	// OneMeProfile lower-cases to "onemeprofile"; the "oneme" substring
	// is stripped.
	assert.True(t, set["profile"])
	assert.False(t, set["onemeprofile"])
}

func TestUsedVariables(t *testing.T) {
	doc := parseTestQuery(t, `query Q($term: String!, $unused: Int) { search(term: $term) { id } }`)

	names := UsedVariables(doc.Operations[0], nil)
	assert.Equal(t, []string{"term"}, names)
}

func TestUsedVariables_ThroughFragments(t *testing.T) {
	doc := parseTestQuery(t, `
query Q($term: String!) { me { ...Bits } }
fragment Bits on User { friends { id } }
fragment More on Query { search(term: $term) { id } }
`)

	// Variables referenced only by an unreachable fragment are not used.
	names := UsedVariables(doc.Operations[0], fragmentMap(doc))
	assert.Empty(t, names)

	doc2 := parseTestQuery(t, `
query Q($term: String!) { ...More }
fragment More on Query { search(term: $term) { id } }
`)
	names = UsedVariables(doc2.Operations[0], fragmentMap(doc2))
	assert.Equal(t, []string{"term"}, names)
}

func TestUsedVariables_ListAndObjectValues(t *testing.T) {
	doc := parseTestQuery(t, `query Q($a: String, $b: String) { search(term: $a, extra: {inner: $b}) { id } }`)

	names := UsedVariables(doc.Operations[0], nil)
	require.Equal(t, []string{"a", "b"}, names)
}
