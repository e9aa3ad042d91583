// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "github.com/vektah/gqlparser/v2/ast"

// Shape is the resolved result type of a selection, a closed variant set:
// ScalarShape, EnumShape, ListShape or ObjectShape. Renderers switch
// exhaustively over these four.
type Shape interface {
	shape()
}

// ScalarShape is a primitive leaf (string, number, boolean or any).
type ScalarShape struct {
	Kind Primitive
}

// EnumShape is a set of string literal values in declaration order.
type EnumShape struct {
	Values []string
}

// ListShape wraps an element shape; lists nest to arbitrary depth.
type ListShape struct {
	Elem Shape
}

// ObjectShape maps display names (alias or field name) to their resolved
// shapes, preserving insertion order. Re-inserting an existing name
// replaces the entry in place: the later shape wins, the original
// position is kept, matching object-from-entries construction.
type ObjectShape struct {
	entries []*Entry
	index   map[string]int
}

// Entry is a single named member of an ObjectShape.
type Entry struct {
	Name        string
	Description string
	Shape       Shape
}

func (*ScalarShape) shape() {}
func (*EnumShape) shape()   {}
func (*ListShape) shape()   {}
func (*ObjectShape) shape() {}

// NewObject returns an empty ObjectShape.
func NewObject() *ObjectShape {
	return &ObjectShape{index: make(map[string]int)}
}

// Put inserts or replaces the entry for name.
func (o *ObjectShape) Put(name, description string, s Shape) {
	if i, ok := o.index[name]; ok {
		o.entries[i].Description = description
		o.entries[i].Shape = s
		return
	}
	o.index[name] = len(o.entries)
	o.entries = append(o.entries, &Entry{Name: name, Description: description, Shape: s})
}

// Entries returns the members in insertion order.
func (o *ObjectShape) Entries() []*Entry {
	return o.entries
}

// Len returns the number of members.
func (o *ObjectShape) Len() int {
	return len(o.entries)
}

// Get returns the entry for name, or nil.
func (o *ObjectShape) Get(name string) *Entry {
	if i, ok := o.index[name]; ok {
		return o.entries[i]
	}
	return nil
}

// FragmentMap resolves fragment spreads by name. Callers build it from a
// parsed document; a nil map means no fragments are resolvable.
type FragmentMap map[string]*ast.FragmentDefinition
