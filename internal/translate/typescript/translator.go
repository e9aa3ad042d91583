// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package typescript renders GraphQL operation signatures as TypeScript
// type declarations.
package typescript

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/dacolabs/gqlsig/internal/translate"
)

//go:embed typescript.ts.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "typescript.ts.tmpl"))

func init() {
	translate.Register(&Translator{})
}

// Translator translates GraphQL operations to TypeScript signature files.
// Scalars and Warn are passed through to the shape builder and resolver;
// both may be nil.
type Translator struct {
	Scalars translate.ScalarMap
	Warn    func(format string, args ...any)
}

// Name returns the translator identifier.
func (t *Translator) Name() string {
	return "typescript"
}

// SetWarn installs the diagnostics hook used for degraded branches.
func (t *Translator) SetWarn(warn func(format string, args ...any)) {
	t.Warn = warn
}

// FileExtension returns the file extension for TypeScript files.
func (t *Translator) FileExtension() string {
	return ".ts"
}

// Translate renders the Variables and Payload type declarations for one
// operation.
func (t *Translator) Translate(op *ast.OperationDefinition, schema *ast.Schema, fragments translate.FragmentMap) ([]byte, error) {
	data := struct {
		Name      string
		Variables string
		Payload   string
	}{
		Name:      exportName(op),
		Variables: t.VariablesSignature(translate.UsedVariables(op, fragments), schema, op),
		Payload:   t.OperationSignature(schema, op, fragments),
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "typescript.ts.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// VariablesSignature renders the type of an operation's variables object,
// restricted to the requested names, with entries in declaration order.
// When no declared variable is requested the result is the literal null
// type: callers distinguish "no variables" from an empty variables
// object.
func (t *Translator) VariablesSignature(names []string, schema *ast.Schema, op *ast.OperationDefinition) string {
	requested := make(map[string]bool, len(names))
	for _, name := range names {
		requested[name] = true
	}

	r := &Resolver{Scalars: t.Scalars}
	var entries []string
	for _, vd := range op.VariableDefinitions {
		if !requested[vd.Variable] {
			continue
		}
		entries = append(entries, `"`+vd.Variable+`": `+r.MapType(schema, vd.Type))
	}

	if len(entries) == 0 {
		return "null"
	}
	return "{\n" + strings.Join(entries, ",\n") + "\n}"
}

// OperationSignature renders the full result payload type of an
// operation, a {data, errors} envelope around the resolved selection
// shape.
func (t *Translator) OperationSignature(schema *ast.Schema, op *ast.OperationDefinition, fragments translate.FragmentMap) string {
	b := &translate.ShapeBuilder{
		Schema:    schema,
		Fragments: fragments,
		Scalars:   t.Scalars,
		Warn:      t.Warn,
	}
	return Render(b.OperationPayload(op))
}

// FragmentSignature renders the payload type of a fragment definition,
// rooted at its type condition.
func (t *Translator) FragmentSignature(schema *ast.Schema, frag *ast.FragmentDefinition, fragments translate.FragmentMap) string {
	b := &translate.ShapeBuilder{
		Schema:    schema,
		Fragments: fragments,
		Scalars:   t.Scalars,
		Warn:      t.Warn,
	}
	return Render(b.FragmentPayload(frag))
}

// exportName derives the exported TypeScript identifier prefix for an
// operation: the operation name with its first letter upper-cased, or a
// placeholder for anonymous operations.
func exportName(op *ast.OperationDefinition) string {
	if op.Name == "" {
		return "UnnamedOperation"
	}
	return strings.ToUpper(op.Name[:1]) + op.Name[1:]
}
