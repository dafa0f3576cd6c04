package views

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"gqldoc/internal/index"
	"gqldoc/internal/schema"
	"gqldoc/internal/ui/navigation"
)

// Item is one row of the current view. Header rows label sections;
// rows with a Target are selectable and navigate when activated.
type Item struct {
	Header bool
	Name   string
	Kind   string // kind label rendered next to the name
	Detail string // signature or type reference, e.g. "(id: ID!): User"
	Doc    string // first line of the element's description
	Target navigation.Target
	Mode   navigation.ViewMode
}

// Selectable reports whether the row can be navigated to.
func (it Item) Selectable() bool {
	return !it.Header && !it.Target.IsZero()
}

// ExplorerRootItems lists the root operation types followed by every
// named type, grouped under section headers. This is the home view.
func ExplorerRootItems(s *schema.Schema) []Item {
	var items []Item

	roots := s.RootOperations()
	if len(roots) > 0 {
		items = append(items, Item{Header: true, Name: "Root types"})
		for _, root := range roots {
			items = append(items, Item{
				Name:   root.Type.Name,
				Kind:   root.Op,
				Doc:    docLine(root.Type.Description),
				Target: navigation.Target{Type: root.Type},
				Mode:   navigation.ModeExplorer,
			})
		}
	}

	names := s.TypeNames()
	if len(names) > 0 {
		items = append(items, Item{Header: true, Name: "Types"})
		for _, name := range names {
			def := s.Type(name)
			items = append(items, Item{
				Name:   name,
				Kind:   schema.KindLabel(def.Kind),
				Doc:    docLine(def.Description),
				Target: navigation.Target{Type: def},
				Mode:   navigation.ModeExplorer,
			})
		}
	}

	return items
}

// TypeItems lists a type's documentation body: its fields, union
// members, enum values or implementors, depending on kind.
func TypeItems(s *schema.Schema, def *ast.Definition) []Item {
	var items []Item

	switch def.Kind {
	case ast.Object, ast.Interface, ast.InputObject:
		fields := schema.Fields(def)
		if len(fields) > 0 {
			items = append(items, Item{Header: true, Name: "Fields"})
			for _, field := range fields {
				items = append(items, fieldItem(def, field))
			}
		}
		if def.Kind == ast.Interface {
			if impls := s.Implementors(def.Name); len(impls) > 0 {
				items = append(items, Item{Header: true, Name: "Implemented by"})
				items = append(items, typeNameItems(s, impls)...)
			}
		}

	case ast.Union:
		if members := s.UnionMembers(def.Name); len(members) > 0 {
			items = append(items, Item{Header: true, Name: "Members"})
			items = append(items, typeNameItems(s, members)...)
		}

	case ast.Enum:
		if values := s.EnumValues(def.Name); len(values) > 0 {
			items = append(items, Item{Header: true, Name: "Values"})
			for _, v := range values {
				items = append(items, Item{Name: v, Kind: "enum"})
			}
		}
	}

	return items
}

// FieldItems lists a field's detail view: its arguments, resolved
// return type, and the return type's own fields when object-like.
func FieldItems(s *schema.Schema, owner *ast.Definition, field *ast.FieldDefinition) []Item {
	var items []Item

	if len(field.Arguments) > 0 {
		items = append(items, Item{Header: true, Name: "Arguments"})
		for _, arg := range field.Arguments {
			item := Item{
				Name:   arg.Name,
				Kind:   "field",
				Detail: ": " + schema.RefFromAST(arg.Type).String(),
				Doc:    docLine(arg.Description),
			}
			// Argument types (input types) are navigable
			if def := s.Type(schema.Underlying(arg.Type)); def != nil && !schema.IsIntrospection(def.Name) {
				item.Target = navigation.Target{Type: def}
				item.Mode = navigation.ModeExplorer
			}
			items = append(items, item)
		}
	}

	ret := s.Type(schema.Underlying(field.Type))
	if ret != nil && !schema.IsIntrospection(ret.Name) {
		items = append(items, Item{Header: true, Name: "Returns"})
		items = append(items, Item{
			Name:   ret.Name,
			Kind:   schema.KindLabel(ret.Kind),
			Detail: "  " + schema.RefFromAST(field.Type).String(),
			Doc:    docLine(ret.Description),
			Target: navigation.Target{Type: ret},
			Mode:   navigation.ModeExplorer,
		})

		if schema.IsObjectLike(ret) {
			fields := schema.Fields(ret)
			if len(fields) > 0 {
				items = append(items, Item{Header: true, Name: "Fields of " + ret.Name})
				for _, f := range fields {
					items = append(items, fieldItem(ret, f))
				}
			}
		}
	}

	return items
}

// SearchItems maps fuzzy matches to selectable rows.
func SearchItems(s *schema.Schema, matches []index.Match) []Item {
	items := make([]Item, 0, len(matches))
	for _, m := range matches {
		item := Item{Name: m.Name, Kind: string(m.Kind)}

		switch m.Kind {
		case index.KindType:
			if def := s.Type(m.Name); def != nil {
				item.Kind = schema.KindLabel(def.Kind)
				item.Doc = docLine(def.Description)
				item.Target = navigation.Target{Type: def}
				item.Mode = navigation.ModeExplorer
			}
		case index.KindField:
			owner := s.Type(m.OwnerType)
			field := s.Field(m.OwnerType, m.Name)
			if owner != nil && field != nil {
				item.Detail = "  " + m.OwnerType + "." + m.Name
				item.Doc = docLine(field.Description)
				item.Target = navigation.Target{Type: owner, Field: field}
				item.Mode = navigation.ModeField
			}
		}

		items = append(items, item)
	}
	return items
}

// typeNameItems builds navigable rows for a list of type names.
func typeNameItems(s *schema.Schema, names []string) []Item {
	items := make([]Item, 0, len(names))
	for _, name := range names {
		def := s.Type(name)
		if def == nil {
			continue
		}
		items = append(items, Item{
			Name:   name,
			Kind:   schema.KindLabel(def.Kind),
			Doc:    docLine(def.Description),
			Target: navigation.Target{Type: def},
			Mode:   navigation.ModeExplorer,
		})
	}
	return items
}

// fieldItem builds the row for one field of a type.
func fieldItem(owner *ast.Definition, field *ast.FieldDefinition) Item {
	return Item{
		Name:   field.Name,
		Kind:   "field",
		Detail: FieldSignature(field),
		Doc:    docLine(field.Description),
		Target: navigation.Target{Type: owner, Field: field},
		Mode:   navigation.ModeField,
	}
}

// FieldSignature renders a field's argument list and return type,
// e.g. "(id: ID!): User".
func FieldSignature(field *ast.FieldDefinition) string {
	var b strings.Builder
	if len(field.Arguments) > 0 {
		b.WriteString("(")
		for i, arg := range field.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.Name)
			b.WriteString(": ")
			b.WriteString(schema.RefFromAST(arg.Type).String())
		}
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(schema.RefFromAST(field.Type).String())
	return b.String()
}

// docLine returns the first line of a description, for inline display.
func docLine(desc string) string {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return ""
	}
	if i := strings.IndexByte(desc, '\n'); i >= 0 {
		desc = desc[:i]
	}
	return desc
}
