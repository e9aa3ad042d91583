// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

// Primitive is a target-language primitive type tag.
type Primitive string

// Primitive tags shared by the type mapper and the shape builder.
const (
	PrimString  Primitive = "string"
	PrimNumber  Primitive = "number"
	PrimBoolean Primitive = "boolean"
	PrimAny     Primitive = "any"
)

// ScalarMap maps GraphQL scalar type names to primitive tags. Both the
// type mapper and the shape builder consume the same map, so custom
// scalar mappings only need to be registered once.
type ScalarMap map[string]Primitive

// DefaultScalars returns the built-in scalar mapping. GitHubGitObjectID
// is a remote-schema custom scalar that is known to serialize as a
// string; every other custom scalar falls back to any.
func DefaultScalars() ScalarMap {
	return ScalarMap{
		"String":            PrimString,
		"ID":                PrimString,
		"Int":               PrimNumber,
		"Float":             PrimNumber,
		"Boolean":           PrimBoolean,
		"GitHubGitObjectID": PrimString,
	}
}

// Lookup returns the primitive tag for a scalar name, defaulting to any.
func (m ScalarMap) Lookup(name string) Primitive {
	if p, ok := m[name]; ok {
		return p
	}
	return PrimAny
}

// Has reports whether name has an explicit mapping.
func (m ScalarMap) Has(name string) bool {
	_, ok := m[name]
	return ok
}
