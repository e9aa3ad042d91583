// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dacolabs/gqlsig/internal/session"
	"github.com/dacolabs/gqlsig/internal/translate"
)

func registerTypesCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List all schema types referenced by the loaded operations",
		Example: `  # List referenced types
  gqlsig types`,
		PersistentPreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTypes(cmd)
		},
	}

	parent.AddCommand(cmd)
}

func runTypes(cmd *cobra.Command) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	set := translate.CollectReferencedTypes(ctx.Schema, ctx.Document)

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
