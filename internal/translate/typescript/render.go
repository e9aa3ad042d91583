// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package typescript

import (
	"strings"

	"github.com/dacolabs/gqlsig/internal/translate"
)

// Render serializes a shape tree into a TypeScript type expression.
func Render(s translate.Shape) string {
	switch v := s.(type) {
	case *translate.ScalarShape:
		return string(v.Kind)
	case *translate.ListShape:
		return "Array<" + Render(v.Elem) + ">"
	case *translate.EnumShape:
		if len(v.Values) == 0 {
			return "any"
		}
		literals := make([]string, 0, len(v.Values))
		for _, value := range v.Values {
			literals = append(literals, `"`+value+`"`)
		}
		return strings.Join(literals, " | ")
	case *translate.ObjectShape:
		if v.Len() == 0 {
			return "{}"
		}
		entries := make([]string, 0, v.Len())
		for _, e := range v.Entries() {
			entries = append(entries, docComment(e.Description)+`"`+e.Name+`": `+Render(e.Shape))
		}
		return "{\n" + strings.Join(entries, ",\n") + "\n}"
	}
	return "any"
}

// docComment formats a description as a JSDoc block, empty in, empty out.
func docComment(description string) string {
	if description == "" {
		return ""
	}
	body := strings.ReplaceAll(strings.TrimSpace(description), "\n", "\n * ")
	return "/**\n * " + body + "\n */\n"
}
