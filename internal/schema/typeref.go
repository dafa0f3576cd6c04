package schema

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// TypeRefKind discriminates the TypeRef variants.
type TypeRefKind int

const (
	Named TypeRefKind = iota
	List
	NonNull
)

// TypeRef is a type reference as it appears on a field or argument:
// either a named type, or a List/NonNull wrapper around another
// reference. Wrapper types are display-only; navigation always goes
// through Unwrap.
type TypeRef struct {
	Kind TypeRefKind
	Name string   // set when Kind == Named
	Elem *TypeRef // set when Kind == List or NonNull
}

// RefFromAST converts gqlparser's wrapped-type representation into a
// TypeRef. The AST folds NonNull into each node, so a non-null list of
// non-null elements becomes NonNull(List(NonNull(Named))).
func RefFromAST(t *ast.Type) *TypeRef {
	if t == nil {
		return nil
	}

	var ref *TypeRef
	if t.Elem != nil {
		ref = &TypeRef{Kind: List, Elem: RefFromAST(t.Elem)}
	} else {
		ref = &TypeRef{Kind: Named, Name: t.NamedType}
	}

	if t.NonNull {
		ref = &TypeRef{Kind: NonNull, Elem: ref}
	}
	return ref
}

// Underlying returns the innermost named type of a wrapped AST type
// reference, e.g. "User" for [User!]!.
func Underlying(t *ast.Type) string {
	ref := RefFromAST(t).Unwrap()
	if ref == nil {
		return ""
	}
	return ref.Name
}

// Unwrap returns the innermost Named reference.
func (r *TypeRef) Unwrap() *TypeRef {
	for r != nil && r.Kind != Named {
		r = r.Elem
	}
	return r
}

// String renders the reference in SDL notation, e.g. "[User!]!".
func (r *TypeRef) String() string {
	if r == nil {
		return ""
	}
	switch r.Kind {
	case List:
		return "[" + r.Elem.String() + "]"
	case NonNull:
		return r.Elem.String() + "!"
	default:
		return r.Name
	}
}
