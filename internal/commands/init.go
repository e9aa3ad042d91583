// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dacolabs/gqlsig/internal/config"
	"github.com/dacolabs/gqlsig/internal/prompts"
	"github.com/dacolabs/gqlsig/internal/session"
)

type initOptions struct {
	schema     string
	operations string
	output     string
	force      bool
}

func registerInitCmd(parent *cobra.Command) {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a gqlsig.yaml in the current directory",
		Example: `  # Interactive mode
  gqlsig init

  # Non-interactive
  gqlsig init --schema schema.graphql --operations operations --output generated`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVar(&opts.schema, "schema", "", "Path to the schema SDL file")
	cmd.Flags().StringVar(&opts.operations, "operations", "", "Path to an operations file or directory")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory for generated files")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing gqlsig.yaml")

	parent.AddCommand(cmd)
}

func runInit(opts *initOptions) error {
	if _, err := os.Stat(session.ConfigFileName); err == nil && !opts.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", session.ConfigFileName)
	}

	if err := prompts.RunInitForm(&opts.schema, &opts.operations, &opts.output); err != nil {
		return err
	}

	cfg := &config.Config{
		Version:    config.CurrentConfigVersion,
		Schema:     opts.schema,
		Operations: opts.operations,
		Output:     opts.output,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(session.ConfigFileName); err != nil {
		return fmt.Errorf("failed to write %s: %w", session.ConfigFileName, err)
	}

	fields := []prompts.ResultField{
		{Label: "Schema", Value: cfg.Schema},
		{Label: "Operations", Value: cfg.Operations},
	}
	if cfg.Output != "" {
		fields = append(fields, prompts.ResultField{Label: "Output", Value: cfg.Output})
	}
	prompts.PrintResult(fields, "Project initialized")

	return nil
}
