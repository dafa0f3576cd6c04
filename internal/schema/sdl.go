package schema

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// SDL renders a single type definition back to schema definition
// language, including descriptions, for display in the pager.
func SDL(def *ast.Definition) string {
	if def == nil {
		return ""
	}

	var b strings.Builder
	writeDescription(&b, def.Description, "")

	switch def.Kind {
	case ast.Scalar:
		fmt.Fprintf(&b, "scalar %s\n", def.Name)

	case ast.Union:
		fmt.Fprintf(&b, "union %s = %s\n", def.Name, strings.Join(def.Types, " | "))

	case ast.Enum:
		fmt.Fprintf(&b, "enum %s {\n", def.Name)
		for _, v := range def.EnumValues {
			writeDescription(&b, v.Description, "  ")
			fmt.Fprintf(&b, "  %s\n", v.Name)
		}
		b.WriteString("}\n")

	case ast.Object, ast.Interface, ast.InputObject:
		keyword := "type"
		if def.Kind == ast.Interface {
			keyword = "interface"
		} else if def.Kind == ast.InputObject {
			keyword = "input"
		}
		fmt.Fprintf(&b, "%s %s", keyword, def.Name)
		if len(def.Interfaces) > 0 {
			fmt.Fprintf(&b, " implements %s", strings.Join(def.Interfaces, " & "))
		}
		b.WriteString(" {\n")
		for _, field := range def.Fields {
			if IsIntrospection(field.Name) {
				continue
			}
			writeDescription(&b, field.Description, "  ")
			fmt.Fprintf(&b, "  %s%s\n", field.Name, fieldSDL(field))
		}
		b.WriteString("}\n")

	default:
		fmt.Fprintf(&b, "%s %s\n", strings.ToLower(string(def.Kind)), def.Name)
	}

	return b.String()
}

func fieldSDL(field *ast.FieldDefinition) string {
	var b strings.Builder
	if len(field.Arguments) > 0 {
		b.WriteString("(")
		for i, arg := range field.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s: %s", arg.Name, RefFromAST(arg.Type).String())
			if arg.DefaultValue != nil {
				fmt.Fprintf(&b, " = %s", arg.DefaultValue.String())
			}
		}
		b.WriteString(")")
	}
	fmt.Fprintf(&b, ": %s", RefFromAST(field.Type).String())
	return b.String()
}

func writeDescription(b *strings.Builder, desc, indent string) {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return
	}
	fmt.Fprintf(b, "%s\"\"\"\n", indent)
	for _, line := range strings.Split(desc, "\n") {
		fmt.Fprintf(b, "%s%s\n", indent, line)
	}
	fmt.Fprintf(b, "%s\"\"\"\n", indent)
}
