package schema

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// Schema wraps a parsed GraphQL schema with the accessors the browser
// needs: the type map, the root operation types, and kind predicates.
type Schema struct {
	ast    *ast.Schema
	source string
	path   string
}

// Load parses a GraphQL SDL file and returns a Schema.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	s, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	s.path = path
	return s, nil
}

// Parse parses a GraphQL SDL string and returns a Schema.
func Parse(sdl string) (*Schema, error) {
	source := &ast.Source{
		Name:  "schema",
		Input: sdl,
	}

	parsed, err := gqlparser.LoadSchema(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse GraphQL schema: %w", err)
	}

	return &Schema{ast: parsed, source: sdl}, nil
}

// IsIntrospection reports whether a name is part of the introspection
// machinery (the __ prefix convention).
func IsIntrospection(name string) bool {
	return strings.HasPrefix(name, "__")
}

// AST returns the underlying gqlparser AST schema.
func (s *Schema) AST() *ast.Schema {
	return s.ast
}

// Source returns the original SDL source string.
func (s *Schema) Source() string {
	return s.source
}

// Path returns the file the schema was loaded from, if any.
func (s *Schema) Path() string {
	return s.path
}

// Type returns a type definition by name, or nil if not found.
func (s *Schema) Type(name string) *ast.Definition {
	return s.ast.Types[name]
}

// TypeNames returns all named types in sorted order, excluding
// introspection types.
func (s *Schema) TypeNames() []string {
	names := make([]string, 0, len(s.ast.Types))
	for name := range s.ast.Types {
		if IsIntrospection(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RootOperation identifies one of the schema's entry points.
type RootOperation struct {
	Op   string // "query", "mutation" or "subscription"
	Type *ast.Definition
}

// RootOperations returns the schema's defined root types in
// query/mutation/subscription order. Absent roots are omitted.
func (s *Schema) RootOperations() []RootOperation {
	var roots []RootOperation
	if s.ast.Query != nil {
		roots = append(roots, RootOperation{Op: "query", Type: s.ast.Query})
	}
	if s.ast.Mutation != nil {
		roots = append(roots, RootOperation{Op: "mutation", Type: s.ast.Mutation})
	}
	if s.ast.Subscription != nil {
		roots = append(roots, RootOperation{Op: "subscription", Type: s.ast.Subscription})
	}
	return roots
}

// IsRootType reports whether def is one of the root operation types.
func (s *Schema) IsRootType(def *ast.Definition) bool {
	return def != nil && (def == s.ast.Query || def == s.ast.Mutation || def == s.ast.Subscription)
}

// Field returns a field definition by type and field name, or nil.
func (s *Schema) Field(typeName, fieldName string) *ast.FieldDefinition {
	def := s.Type(typeName)
	if def == nil {
		return nil
	}
	for _, field := range def.Fields {
		if field.Name == fieldName {
			return field
		}
	}
	return nil
}

// Fields returns a type's fields with introspection fields removed.
func Fields(def *ast.Definition) []*ast.FieldDefinition {
	if def == nil {
		return nil
	}
	fields := make([]*ast.FieldDefinition, 0, len(def.Fields))
	for _, field := range def.Fields {
		if IsIntrospection(field.Name) {
			continue
		}
		fields = append(fields, field)
	}
	return fields
}

// IsObjectLike reports whether a definition exposes a field map
// (object or interface types).
func IsObjectLike(def *ast.Definition) bool {
	return def != nil && (def.Kind == ast.Object || def.Kind == ast.Interface)
}

// IsLeaf reports whether a definition has no sub-fields to drill into
// (scalar or enum types).
func IsLeaf(def *ast.Definition) bool {
	return def != nil && (def.Kind == ast.Scalar || def.Kind == ast.Enum)
}

// UnionMembers returns the member type names of a union in sorted
// order, or nil if the type is not a union.
func (s *Schema) UnionMembers(name string) []string {
	def := s.Type(name)
	if def == nil || def.Kind != ast.Union {
		return nil
	}
	members := make([]string, 0, len(def.Types))
	members = append(members, def.Types...)
	sort.Strings(members)
	return members
}

// Implementors returns all object types implementing the given
// interface, sorted by name.
func (s *Schema) Implementors(interfaceName string) []string {
	var implementors []string
	for name, def := range s.ast.Types {
		if def.Kind != ast.Object {
			continue
		}
		for _, iface := range def.Interfaces {
			if iface == interfaceName {
				implementors = append(implementors, name)
				break
			}
		}
	}
	sort.Strings(implementors)
	return implementors
}

// EnumValues returns the value names of an enum type, or nil.
func (s *Schema) EnumValues(name string) []string {
	def := s.Type(name)
	if def == nil || def.Kind != ast.Enum {
		return nil
	}
	values := make([]string, 0, len(def.EnumValues))
	for _, v := range def.EnumValues {
		values = append(values, v.Name)
	}
	return values
}

// KindLabel returns a lowercase display label for a definition kind.
func KindLabel(kind ast.DefinitionKind) string {
	switch kind {
	case ast.Object:
		return "type"
	case ast.Interface:
		return "interface"
	case ast.Union:
		return "union"
	case ast.Enum:
		return "enum"
	case ast.Scalar:
		return "scalar"
	case ast.InputObject:
		return "input"
	default:
		return strings.ToLower(string(kind))
	}
}
