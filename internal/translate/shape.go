// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate turns parsed GraphQL operations into target-language
// type shapes. The shape model is target-neutral; per-target rendering
// lives in subpackages registered through the Translator registry.
package translate

import (
	"github.com/vektah/gqlparser/v2/ast"
)

const (
	// maxTypeNesting bounds list/non-null unwrapping of a single type
	// reference. Well-formed references are a handful of levels deep;
	// hitting the bound indicates a malformed or cyclic reference.
	maxTypeNesting = 30

	// maxSelectionDepth bounds selection-set recursion.
	maxSelectionDepth = 100
)

// ShapeBuilder resolves selection sets against a schema into Shape trees.
// The zero value is not usable; Schema must be set. Fragments resolves
// named fragment spreads and may be nil. Scalars defaults to
// DefaultScalars when nil. Warn receives diagnostics for degraded
// branches (depth overruns); nil discards them.
type ShapeBuilder struct {
	Schema    *ast.Schema
	Fragments FragmentMap
	Scalars   ScalarMap
	Warn      func(format string, args ...any)
}

// OperationPayload builds the result envelope shape for an operation:
// a data member holding the resolved selection shape (any when the root
// type cannot be resolved) and an errors member that is always a list of
// any, since every operation result carries both.
func (b *ShapeBuilder) OperationPayload(op *ast.OperationDefinition) *ObjectShape {
	root := b.rootType(op.Operation)
	return b.envelope(root, op.SelectionSet)
}

// FragmentPayload builds the result envelope shape for a fragment
// definition, rooted at the fragment's type condition.
func (b *ShapeBuilder) FragmentPayload(frag *ast.FragmentDefinition) *ObjectShape {
	var root *ast.Definition
	if b.Schema != nil {
		root = b.Schema.Types[frag.TypeCondition]
	}
	return b.envelope(root, frag.SelectionSet)
}

func (b *ShapeBuilder) envelope(root *ast.Definition, sel ast.SelectionSet) *ObjectShape {
	var data Shape = &ScalarShape{Kind: PrimAny}
	if root != nil {
		obj := NewObject()
		b.selections(obj, root, sel, 0)
		data = obj
	}

	payload := NewObject()
	payload.Put("data", "", data)
	payload.Put("errors", "", &ListShape{Elem: &ScalarShape{Kind: PrimAny}})
	return payload
}

// rootType maps an operation kind to its schema entry point. Schemas may
// legally omit mutation and subscription roots.
func (b *ShapeBuilder) rootType(kind ast.Operation) *ast.Definition {
	return operationRoot(b.Schema, kind)
}

func operationRoot(schema *ast.Schema, kind ast.Operation) *ast.Definition {
	if schema == nil {
		return nil
	}
	roots := map[ast.Operation]*ast.Definition{
		ast.Query:        schema.Query,
		ast.Mutation:     schema.Mutation,
		ast.Subscription: schema.Subscription,
	}
	return roots[kind]
}

// selections resolves each selection against the parent type and writes
// the results into obj. Inline fragments and fragment spreads splice
// their entries flat into the same level.
func (b *ShapeBuilder) selections(obj *ObjectShape, parent *ast.Definition, set ast.SelectionSet, depth int) {
	if depth > maxSelectionDepth {
		b.warnf("selection depth limit (%d) exceeded under type %s; truncating branch", maxSelectionDepth, parent.Name)
		return
	}

	for _, sel := range set {
		switch s := sel.(type) {
		case *ast.Field:
			b.field(obj, parent, s, depth)
		case *ast.InlineFragment:
			if cond := b.Schema.Types[s.TypeCondition]; cond != nil {
				b.selections(obj, cond, s.SelectionSet, depth+1)
			}
		case *ast.FragmentSpread:
			frag, ok := b.Fragments[s.Name]
			if !ok {
				// Unknown fragments contribute nothing; documents are
				// assumed validated, so this is best-effort territory.
				continue
			}
			if cond := b.Schema.Types[frag.TypeCondition]; cond != nil {
				b.selections(obj, cond, frag.SelectionSet, depth+1)
			}
		}
	}
}

func (b *ShapeBuilder) field(obj *ObjectShape, parent *ast.Definition, field *ast.Field, depth int) {
	display := field.Alias
	if display == "" {
		display = field.Name
	}

	// Introspection fields are not part of the schema's field lists.
	if len(field.Name) >= 2 && field.Name[:2] == "__" {
		obj.Put(display, "Internal GraphQL field", &ScalarShape{Kind: PrimAny})
		return
	}

	def := parent.Fields.ForName(field.Name)
	if def == nil {
		obj.Put(display, "", &ScalarShape{Kind: PrimAny})
		return
	}

	lists, baseName, ok := unwrapType(def.Type)
	if !ok {
		b.warnf("type nesting limit (%d) exceeded on field %s.%s; truncating branch", maxTypeNesting, parent.Name, field.Name)
		obj.Put(display, def.Description, &ScalarShape{Kind: PrimAny})
		return
	}

	shape := b.baseShape(baseName, field.SelectionSet, depth)
	for i := 0; i < lists; i++ {
		shape = &ListShape{Elem: shape}
	}
	obj.Put(display, def.Description, shape)
}

// baseShape resolves the unwrapped named type of a field, recursing into
// the field's own selection set for object-like types.
func (b *ShapeBuilder) baseShape(name string, set ast.SelectionSet, depth int) Shape {
	def := b.Schema.Types[name]
	if def == nil {
		return &ScalarShape{Kind: PrimAny}
	}

	switch def.Kind {
	case ast.Object, ast.Interface, ast.Union, ast.InputObject:
		sub := NewObject()
		b.selections(sub, def, set, depth+1)
		return sub
	case ast.Enum:
		values := make([]string, 0, len(def.EnumValues))
		for _, v := range def.EnumValues {
			values = append(values, v.Name)
		}
		return &EnumShape{Values: values}
	default:
		return &ScalarShape{Kind: b.scalars().Lookup(name)}
	}
}

func (b *ShapeBuilder) scalars() ScalarMap {
	if b.Scalars != nil {
		return b.Scalars
	}
	return DefaultScalars()
}

func (b *ShapeBuilder) warnf(format string, args ...any) {
	if b.Warn != nil {
		b.Warn(format, args...)
	}
}

// unwrapType strips list and non-null wrapping from a type reference,
// returning the number of list wrappers and the base named type. ok is
// false when nesting exceeds maxTypeNesting.
func unwrapType(t *ast.Type) (lists int, name string, ok bool) {
	for i := 0; t != nil; i++ {
		if i > maxTypeNesting {
			return 0, "", false
		}
		if t.NamedType != "" {
			return lists, t.NamedType, true
		}
		lists++
		t = t.Elem
	}
	return 0, "", false
}
