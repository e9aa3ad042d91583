// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package prompts provides interactive terminal prompts for CLI commands.
package prompts

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Theme returns the shared huh theme used across all CLI forms.
func Theme() *huh.Theme {
	theme := huh.ThemeBase16()
	theme.FieldSeparator = lipgloss.NewStyle().SetString("\n").MarginBottom(1)
	theme.Form = theme.Form.MarginTop(1)
	theme.Group = theme.Group.MarginTop(1)
	theme.Focused.Title = theme.Focused.Title.Foreground(lipgloss.Color("#f9ca24"))
	theme.Blurred.Title = theme.Blurred.Title.Foreground(lipgloss.Color("#bababa"))
	return theme
}

// ResultField is a label-value pair for PrintResult.
type ResultField struct {
	Label string
	Value string
}

// PrintResult prints a styled summary with green checkmarks and gray labels.
func PrintResult(fields []ResultField, successMsg string) {
	success := lipgloss.NewStyle().Foreground(lipgloss.Color("#27ca3f"))
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))
	check := success.Render("✓")

	fmt.Println()
	for _, f := range fields {
		fmt.Printf("%s %s %s\n", check, label.Render(f.Label+":"), f.Value)
	}

	if successMsg != "" {
		fmt.Println(success.Render("\n" + successMsg))
	}
}

// PrintWarning prints a styled, non-fatal diagnostic line.
func PrintWarning(msg string) {
	warn := lipgloss.NewStyle().Foreground(lipgloss.Color("#f9ca24"))
	fmt.Printf("%s %s\n", warn.Render("!"), msg)
}

// RunOperationsForm prompts for a set of operation names when none were
// selected through flags. names holds the current selection and receives
// the result; available lists selectable operation names.
func RunOperationsForm(names *[]string, available []string) error {
	if len(*names) > 0 {
		return nil
	}
	if len(available) == 0 {
		return errors.New("no operations found")
	}

	options := make([]huh.Option[string], 0, len(available))
	for _, name := range available {
		options = append(options, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select operations").
				Options(options...).
				Filterable(true).
				Value(names).
				Height(10),
		),
	).WithTheme(Theme()).Run()
}

// RunInitForm prompts for any unset init values.
func RunInitForm(schema, operations, output *string) error {
	var fields []huh.Field

	if *schema == "" {
		fields = append(fields, huh.NewInput().
			Title("Schema file").
			Placeholder("e.g., schema.graphql").
			Value(schema).
			Validate(requiredValidator("schema file")))
	}
	if *operations == "" {
		fields = append(fields, huh.NewInput().
			Title("Operations file or directory").
			Placeholder("e.g., operations/").
			Value(operations).
			Validate(requiredValidator("operations path")))
	}
	if *output == "" {
		fields = append(fields, huh.NewInput().
			Title("Output directory").
			Placeholder("e.g., generated/").
			Value(output))
	}

	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run()
}

func requiredValidator(what string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}
