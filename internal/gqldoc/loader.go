// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package gqldoc loads GraphQL schema and operation documents and
// provides AST-level utilities shared by the CLI commands.
package gqldoc

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/dacolabs/gqlsig/internal/translate"
)

// Loader loads GraphQL files from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadSchema loads and parses a schema SDL file.
func (l *Loader) LoadSchema(filePath string) (*ast.Schema, error) {
	data, err := fs.ReadFile(l.fsys, filePath)
	if err != nil {
		return nil, err
	}

	schema, err := gqlparser.LoadSchema(&ast.Source{Name: filePath, Input: string(data)})
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", filePath, err)
	}
	return schema, nil
}

// LoadDocument loads and validates a single operations file against a
// schema.
func (l *Loader) LoadDocument(schema *ast.Schema, filePath string) (*ast.QueryDocument, error) {
	data, err := fs.ReadFile(l.fsys, filePath)
	if err != nil {
		return nil, err
	}

	doc, errs := gqlparser.LoadQuery(schema, string(data))
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to parse %s: %w", filePath, errs)
	}
	return doc, nil
}

// LoadDocuments loads operations from a path that is either a single
// document or a directory of .graphql/.gql files, aggregated into one
// document.
func (l *Loader) LoadDocuments(schema *ast.Schema, docPath string) (*ast.QueryDocument, error) {
	info, err := fs.Stat(l.fsys, docPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return l.LoadDocument(schema, docPath)
	}

	entries, err := fs.ReadDir(l.fsys, docPath)
	if err != nil {
		return nil, err
	}

	merged := &ast.QueryDocument{}
	for _, entry := range entries {
		if entry.IsDir() || !isDocumentFile(entry.Name()) {
			continue
		}
		doc, err := l.LoadDocument(schema, path.Join(docPath, entry.Name()))
		if err != nil {
			return nil, err
		}
		merged.Operations = append(merged.Operations, doc.Operations...)
		merged.Fragments = append(merged.Fragments, doc.Fragments...)
	}

	if len(merged.Operations) == 0 && len(merged.Fragments) == 0 {
		return nil, fmt.Errorf("no GraphQL documents found in %s", docPath)
	}
	return merged, nil
}

func isDocumentFile(name string) bool {
	return strings.HasSuffix(name, ".graphql") || strings.HasSuffix(name, ".gql")
}

// Fragments builds a fragment-name index over a document.
func Fragments(doc *ast.QueryDocument) translate.FragmentMap {
	m := make(translate.FragmentMap, len(doc.Fragments))
	for _, frag := range doc.Fragments {
		m[frag.Name] = frag
	}
	return m
}
