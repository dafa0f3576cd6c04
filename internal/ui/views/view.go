package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gqldoc/internal/schema"
	"gqldoc/internal/ui/navigation"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Schema     *schema.Schema // nil when no schema is loaded
	SchemaPath string
	LoadError  string

	Mode         navigation.ViewMode
	Target       navigation.Target
	HistoryDepth int

	Items          []Item
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int

	Searching   bool   // search input focused
	SearchInput string // rendered text input
	SearchQuery string

	StatusMessage    string
	ShowDescriptions bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")

	if state.Searching {
		content.WriteString(r.styles.Prompt.Render("Search: "))
		content.WriteString(state.SearchInput)
		content.WriteString("\n\n")
	}

	if state.Schema == nil {
		content.WriteString(r.renderNoSchema(state))
	} else {
		if header := r.renderContext(state); header != "" {
			content.WriteString(header)
			content.WriteString("\n")
		}
		content.WriteString(r.renderItems(state))
	}

	// Footer pinned to the bottom
	footer := r.renderFooter(state)
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	padding := availableLines - currentLines - 1
	if padding > 0 {
		content.WriteString(strings.Repeat("\n", padding))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	return r.styles.Main.MaxHeight(state.Height).Render(content.String())
}

// renderTitle builds the title line with the schema path right-aligned
func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("gqldoc")
	if state.SchemaPath == "" {
		return logo
	}

	right := r.styles.Dim.Render(state.SchemaPath)
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	gap := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if gap <= 0 {
		return logo
	}
	return logo + strings.Repeat(" ", gap) + right
}

// renderNoSchema renders the placeholder shown when no schema is loaded
func (r *Renderer) renderNoSchema(state ViewState) string {
	lines := []string{
		r.styles.Dim.Render("No schema loaded."),
		"",
		r.styles.Dim.Render("Pass a GraphQL SDL file: gqldoc schema.graphql"),
	}
	if state.LoadError != "" {
		lines = append(lines, "", r.styles.Error.Render(state.LoadError))
	}
	return strings.Join(lines, "\n")
}

// renderContext renders the header block above the item list: the
// current type's documentation, the current field's signature, or the
// active search summary.
func (r *Renderer) renderContext(state ViewState) string {
	var lines []string

	switch state.Mode {
	case navigation.ModeSearch:
		summary := fmt.Sprintf("%d results for %q", countSelectable(state.Items), state.SearchQuery)
		lines = append(lines, r.styles.Section.Render("Search"), r.styles.Dim.Render(summary))

	case navigation.ModeField:
		if state.Target.Field != nil && state.Target.Type != nil {
			sig := state.Target.Type.Name + "." + state.Target.Field.Name + FieldSignature(state.Target.Field)
			lines = append(lines, r.styles.TypeName.Render(sig))
			if desc := state.Target.Field.Description; desc != "" && state.ShowDescriptions {
				lines = append(lines, r.styles.Doc.Render(desc))
			}
		}

	default: // explorer
		if state.Target.Type == nil {
			// Home view has no context block
			return ""
		}
		def := state.Target.Type
		label := KindStyle(schema.KindLabel(def.Kind)).Render(schema.KindLabel(def.Kind))
		lines = append(lines, label+" "+r.styles.TypeName.Render(def.Name))
		if def.Description != "" && state.ShowDescriptions {
			lines = append(lines, r.styles.Doc.Render(def.Description))
		}
	}

	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// renderItems renders the scrollable item list, a truncated window
// over the full list with viewport indicators.
func (r *Renderer) renderItems(state ViewState) string {
	if len(state.Items) == 0 {
		if state.Mode == navigation.ModeSearch && state.SearchQuery != "" {
			return r.styles.Dim.Render("No matches.")
		}
		return r.styles.Dim.Render("Nothing to show.")
	}

	rendered := make([]string, 0, len(state.Items))
	for i, item := range state.Items {
		rendered = append(rendered, r.renderItem(item, i == state.SelectedIndex, state.ShowDescriptions))
	}

	effectiveHeight := state.ViewportHeight
	if effectiveHeight <= 0 {
		effectiveHeight = len(rendered)
	}

	offset := state.ViewportOffset
	if offset > len(rendered) {
		offset = len(rendered)
	}

	needsTop := offset > 0
	needsBottom := len(rendered)-offset > effectiveHeight
	if needsTop {
		effectiveHeight--
	}
	if needsBottom {
		effectiveHeight--
	}
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}

	var lines []string
	if needsTop {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", offset)))
	}
	end := offset + effectiveHeight
	if end > len(rendered) {
		end = len(rendered)
	}
	lines = append(lines, rendered[offset:end]...)
	if needsBottom {
		below := len(rendered) - end
		if below > 0 {
			lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
		}
	}

	return strings.Join(lines, "\n")
}

// renderItem renders a single row
func (r *Renderer) renderItem(item Item, selected bool, showDocs bool) string {
	if item.Header {
		return "\n" + r.styles.Section.Render(item.Name)
	}

	kind := KindStyle(item.Kind).Render(fmt.Sprintf("%-12s", item.Kind))

	name := item.Name
	if selected {
		name = r.styles.Selected.Render(name)
	} else if item.Mode == navigation.ModeExplorer && item.Selectable() {
		name = r.styles.TypeName.Render(name)
	} else {
		name = r.styles.Name.Render(name)
	}

	line := "  " + kind + name
	if item.Detail != "" {
		line += r.styles.Detail.Render(item.Detail)
	}
	if showDocs && item.Doc != "" {
		line += "  " + r.styles.Doc.Render(item.Doc)
	}
	return line
}

// renderFooter renders the status line and key hints
func (r *Renderer) renderFooter(state ViewState) string {
	if state.StatusMessage != "" {
		return r.styles.Status.Render(state.StatusMessage)
	}

	hints := "enter open • backspace back • H home • / search • d definition • ? help • q quit"
	if state.Searching {
		hints = "enter open results • esc cancel"
	}
	return r.styles.Help.Render(hints)
}

// countSelectable counts the navigable rows in an item list
func countSelectable(items []Item) int {
	n := 0
	for _, item := range items {
		if !item.Header {
			n++
		}
	}
	return n
}
