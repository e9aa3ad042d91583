// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/dacolabs/gqlsig/internal/config"
	"github.com/dacolabs/gqlsig/internal/gqldoc"
	"github.com/dacolabs/gqlsig/internal/translate"
)

var (
	// ErrNotInitialized indicates no gqlsig.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a gqlsig project (gqlsig.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSchemaNotFound indicates the schema file referenced by config couldn't be loaded.
	ErrSchemaNotFound = errors.New("schema not found")

	// ErrInvalidDocuments indicates the operation documents couldn't be parsed.
	ErrInvalidDocuments = errors.New("invalid operation documents")
)

// ConfigFileName is the name of the gqlsig configuration file.
const ConfigFileName = "gqlsig.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration, parsed schema and
// aggregated operation documents.
type Context struct {
	// Config is the loaded and validated configuration.
	Config *config.Config

	// Schema is the parsed GraphQL schema.
	Schema *ast.Schema

	// Document aggregates all loaded operations and fragments.
	Document *ast.QueryDocument

	// Fragments indexes Document's fragments by name.
	Fragments translate.FragmentMap
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the gqlsig Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	loader := gqldoc.NewLoader(os.DirFS(cwd))

	schema, err := loader.LoadSchema(cfg.Schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaNotFound, err)
	}

	doc, err := loader.LoadDocuments(schema, cfg.Operations)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocuments, err)
	}

	sessionCtx := &Context{
		Config:    cfg,
		Schema:    schema,
		Document:  doc,
		Fragments: gqldoc.Fragments(doc),
	}

	return context.WithValue(ctx, contextKey{}, sessionCtx), nil
}

// From extracts the gqlsig Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sessionCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sessionCtx
	}
	return nil
}

// With returns a context.Context carrying the given Context. Used by
// tests to inject a prebuilt session.
func With(ctx context.Context, sessionCtx *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, sessionCtx)
}

// Operation looks up an operation by name in the loaded document.
func (c *Context) Operation(name string) *ast.OperationDefinition {
	return c.Document.Operations.ForName(name)
}
