// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package typescript

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/dacolabs/gqlsig/internal/translate"
)

// typeDepthLimit bounds recursion through wrapped type references;
// exceeding it means a malformed or cyclic reference and degrades to any.
const typeDepthLimit = 30

// Resolver maps schema type references to TypeScript type expressions.
// Scalars defaults to translate.DefaultScalars when nil.
type Resolver struct {
	Scalars translate.ScalarMap
}

// MapType resolves a possibly wrapped type reference to a TypeScript type
// expression. Non-null wrapping is unwrapped silently: nullability is
// expressed only on the fields that carry the type, never in the type
// expression itself.
func (r *Resolver) MapType(schema *ast.Schema, typ *ast.Type) string {
	return r.mapType(schema, typ, 0)
}

func (r *Resolver) mapType(schema *ast.Schema, typ *ast.Type, depth int) string {
	if typ == nil || depth > typeDepthLimit {
		return "any"
	}

	if typ.NamedType == "" {
		return "Array<" + r.mapType(schema, typ.Elem, depth+1) + ">"
	}

	name := typ.NamedType
	if r.scalars().Has(name) {
		return string(r.scalars().Lookup(name))
	}

	if schema == nil {
		return "any"
	}
	def := schema.Types[name]
	if def == nil {
		return "any"
	}

	switch def.Kind {
	case ast.Object, ast.InputObject:
		return r.objectType(schema, def, depth)
	case ast.Enum:
		return enumUnion(def)
	default:
		// Custom scalars without a registered mapping, interfaces and
		// unions all degrade to any.
		return "any"
	}
}

// objectType renders an object or input-object as a brace-delimited
// structure, one entry per field in declared order. An entry is optional
// (`name?:`) iff the field's type is not non-null wrapped.
func (r *Resolver) objectType(schema *ast.Schema, def *ast.Definition, depth int) string {
	if len(def.Fields) == 0 {
		return "{}"
	}

	entries := make([]string, 0, len(def.Fields))
	for _, field := range def.Fields {
		var sb strings.Builder
		sb.WriteString(docComment(field.Description))
		sb.WriteString(field.Name)
		if !field.Type.NonNull {
			sb.WriteString("?")
		}
		sb.WriteString(": ")
		sb.WriteString(r.mapType(schema, field.Type, depth+1))
		entries = append(entries, sb.String())
	}

	return "{\n" + strings.Join(entries, ",\n") + "\n}"
}

func (r *Resolver) scalars() translate.ScalarMap {
	if r.Scalars != nil {
		return r.Scalars
	}
	return translate.DefaultScalars()
}

// enumUnion renders an enum as a union of string literal types in
// declaration order.
func enumUnion(def *ast.Definition) string {
	if len(def.EnumValues) == 0 {
		return "any"
	}
	literals := make([]string, 0, len(def.EnumValues))
	for _, v := range def.EnumValues {
		literals = append(literals, `"`+v.Name+`"`)
	}
	return strings.Join(literals, " | ")
}
