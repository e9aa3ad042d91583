// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/dacolabs/gqlsig/internal/gqldoc"
	"github.com/dacolabs/gqlsig/internal/prompts"
	"github.com/dacolabs/gqlsig/internal/session"
	"github.com/dacolabs/gqlsig/internal/translate"

	// Import translator to auto-register
	_ "github.com/dacolabs/gqlsig/internal/translate/typescript"
)

type generateOptions struct {
	name   string
	format string
	output string
	all    bool
}

func registerGenerateCmd(parent *cobra.Command) {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate signature files for operations",
		Long: fmt.Sprintf(`Generate type signature files for GraphQL operations.

Available formats: %s`, strings.Join(translate.Available(), ", ")),
		Example: `  # Interactive mode
  gqlsig generate

  # Generate specific operations
  gqlsig generate --name ListRepos,OnCommit

  # Generate all operations
  gqlsig generate --all`,
		PersistentPreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Operation name(s), comma-separated")
	cmd.Flags().StringVar(&opts.format, "format", "typescript", fmt.Sprintf("Output format (%s)", strings.Join(translate.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (defaults to the configured output)")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "Generate all operations")

	parent.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	selected, err := selectOperations(ctx, opts.name, opts.all)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		return fmt.Errorf("no operations selected")
	}

	translator, err := translate.Get(opts.format)
	if err != nil {
		return fmt.Errorf("unsupported format %q. Available formats: %s",
			opts.format, strings.Join(translate.Available(), ", "))
	}
	if w, ok := translator.(warnSink); ok {
		w.SetWarn(func(format string, args ...any) {
			prompts.PrintWarning(fmt.Sprintf(format, args...))
		})
	}

	output := opts.output
	if output == "" {
		output = ctx.Config.Output
	}
	if output == "" {
		output = "generated"
	}
	if err := os.MkdirAll(output, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Printf("Generating %d operation(s) to %s...\n", len(selected), output)

	var failures []string
	successCount := 0

	for _, name := range selected {
		op := ctx.Operation(name)
		if op == nil {
			failures = append(failures, fmt.Sprintf("%s: operation not found", name))
			continue
		}

		// Subscriptions get the implicit webhook arguments before
		// signatures are built, so the generated variable types include
		// them.
		if op.Operation == ast.Subscription {
			op = gqldoc.PatchWebhookSecret(ctx.Schema, gqldoc.PatchWebhookURL(ctx.Schema, op))
		}

		data, err := translator.Translate(op, ctx.Schema, ctx.Fragments)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", name, err))
			continue
		}

		outFile := filepath.Join(output, name+translator.FileExtension())
		if err := os.WriteFile(outFile, data, 0o600); err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		fmt.Printf("  %s\n", outFile)
		successCount++
	}

	fmt.Printf("\nSuccessfully generated %d operation(s)\n", successCount)

	if len(failures) > 0 {
		fmt.Println("\nErrors:")
		for _, failure := range failures {
			fmt.Printf("  - %s\n", failure)
		}
		return fmt.Errorf("failed to generate %d operation(s)", len(failures))
	}

	return nil
}

// warnSink is implemented by translators that accept a diagnostics hook.
type warnSink interface {
	SetWarn(func(format string, args ...any))
}

// selectOperations resolves the operation selection from flags, falling
// back to an interactive prompt. Anonymous operations cannot be selected
// by name and are excluded.
func selectOperations(ctx *session.Context, nameFlag string, all bool) ([]string, error) {
	if all && nameFlag != "" {
		return nil, fmt.Errorf("--all and --name are mutually exclusive")
	}

	var available []string
	for _, op := range ctx.Document.Operations {
		if op.Name != "" {
			available = append(available, op.Name)
		}
	}

	if all {
		return available, nil
	}

	var selected []string
	if nameFlag != "" {
		for _, n := range strings.Split(nameFlag, ",") {
			n = strings.TrimSpace(n)
			if n == "" {
				continue
			}
			if ctx.Operation(n) == nil {
				return nil, fmt.Errorf("operation %q not found", n)
			}
			selected = append(selected, n)
		}
		return selected, nil
	}

	if err := prompts.RunOperationsForm(&selected, available); err != nil {
		return nil, err
	}
	return selected, nil
}
