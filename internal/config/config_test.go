// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_LoadAndSave(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "gqlsig.yaml")

	cfg := Config{
		Version:    1,
		Schema:     "schema.graphql",
		Operations: "operations",
		Output:     "generated",
	}

	err := cfg.Save(cfgPath)
	require.NoError(t, err)

	loaded, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, cfg.Version, loaded.Version)
	assert.Equal(t, cfg.Schema, loaded.Schema)
	assert.Equal(t, cfg.Operations, loaded.Operations)
	assert.Equal(t, cfg.Output, loaded.Output)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "valid config",
			cfg:     Config{Version: 1, Schema: "schema.graphql", Operations: "ops"},
			wantErr: "",
		},
		{
			name:    "unsupported version",
			cfg:     Config{Version: 99, Schema: "schema.graphql", Operations: "ops"},
			wantErr: "unsupported config version",
		},
		{
			name:    "missing schema",
			cfg:     Config{Version: 1, Operations: "ops"},
			wantErr: "schema path is required",
		},
		{
			name:    "missing operations",
			cfg:     Config{Version: 1, Schema: "schema.graphql"},
			wantErr: "operations path is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_SaveFormat(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "gqlsig.yaml")

	cfg := Config{
		Version:    1,
		Schema:     "schema.graphql",
		Operations: "operations",
	}

	err := cfg.Save(cfgPath)
	require.NoError(t, err)

	content, err := os.ReadFile(cfgPath) //nolint:gosec // test file path
	require.NoError(t, err)

	output := string(content)
	assert.Contains(t, output, "version: 1")
	assert.Contains(t, output, "schema: schema.graphql")
	assert.Contains(t, output, "operations: operations")
}
