// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// CollectReferencedTypes walks every operation and fragment of a document
// and returns the set of named types referenced anywhere in it: operation
// roots, variable declarations, field result types, argument types and
// fragment type conditions, resolved position-aware against the schema.
// Names are lower-cased with the literal substring "oneme" stripped, a
// legacy normalization some consumers depend on.
func CollectReferencedTypes(schema *ast.Schema, doc *ast.QueryDocument) map[string]bool {
	c := &typeCollector{
		schema:    schema,
		fragments: doc.Fragments,
		out:       make(map[string]bool),
		walked:    make(map[string]bool),
	}

	for _, op := range doc.Operations {
		if root := operationRoot(schema, op.Operation); root != nil {
			c.add(root.Name)
			c.selections(root, op.SelectionSet)
		}
		for _, vd := range op.VariableDefinitions {
			if _, name, ok := unwrapType(vd.Type); ok {
				c.add(name)
			}
		}
	}
	for _, frag := range doc.Fragments {
		c.fragment(frag)
	}

	return c.out
}

type typeCollector struct {
	schema    *ast.Schema
	fragments ast.FragmentDefinitionList
	out       map[string]bool
	walked    map[string]bool
}

func (c *typeCollector) add(name string) {
	if name == "" {
		return
	}
	c.out[strings.ReplaceAll(strings.ToLower(name), "oneme", "")] = true
}

func (c *typeCollector) fragment(frag *ast.FragmentDefinition) {
	if c.walked[frag.Name] {
		return
	}
	c.walked[frag.Name] = true

	c.add(frag.TypeCondition)
	if cond := c.schema.Types[frag.TypeCondition]; cond != nil {
		c.selections(cond, frag.SelectionSet)
	}
}

func (c *typeCollector) selections(parent *ast.Definition, set ast.SelectionSet) {
	for _, sel := range set {
		switch s := sel.(type) {
		case *ast.Field:
			if strings.HasPrefix(s.Name, "__") {
				continue
			}
			def := parent.Fields.ForName(s.Name)
			if def == nil {
				continue
			}
			if _, name, ok := unwrapType(def.Type); ok {
				c.add(name)
				for _, arg := range s.Arguments {
					if argDef := def.Arguments.ForName(arg.Name); argDef != nil {
						if _, argType, argOK := unwrapType(argDef.Type); argOK {
							c.add(argType)
						}
					}
				}
				if next := c.schema.Types[name]; next != nil {
					c.selections(next, s.SelectionSet)
				}
			}
		case *ast.InlineFragment:
			c.add(s.TypeCondition)
			if cond := c.schema.Types[s.TypeCondition]; cond != nil {
				c.selections(cond, s.SelectionSet)
			}
		case *ast.FragmentSpread:
			if frag := c.fragments.ForName(s.Name); frag != nil {
				c.fragment(frag)
			}
		}
	}
}

// UsedVariables returns the names of all variables referenced by an
// operation's argument values, in first-use order without duplicates,
// following fragment spreads through the supplied map.
func UsedVariables(op *ast.OperationDefinition, fragments FragmentMap) []string {
	w := &variableWalker{
		fragments: fragments,
		seen:      make(map[string]bool),
		walked:    make(map[string]bool),
	}
	w.selections(op.SelectionSet)
	return w.names
}

type variableWalker struct {
	fragments FragmentMap
	names     []string
	seen      map[string]bool
	walked    map[string]bool
}

func (w *variableWalker) selections(set ast.SelectionSet) {
	for _, sel := range set {
		switch s := sel.(type) {
		case *ast.Field:
			for _, arg := range s.Arguments {
				w.value(arg.Value)
			}
			w.selections(s.SelectionSet)
		case *ast.InlineFragment:
			w.selections(s.SelectionSet)
		case *ast.FragmentSpread:
			if frag, ok := w.fragments[s.Name]; ok && !w.walked[s.Name] {
				w.walked[s.Name] = true
				w.selections(frag.SelectionSet)
			}
		}
	}
}

func (w *variableWalker) value(v *ast.Value) {
	if v == nil {
		return
	}
	if v.Kind == ast.Variable && !w.seen[v.Raw] {
		w.seen[v.Raw] = true
		w.names = append(w.names, v.Raw)
	}
	for _, child := range v.Children {
		w.value(child.Value)
	}
}
