package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gqldoc/internal/config"
	"gqldoc/internal/eventbus"
	"gqldoc/internal/index"
	"gqldoc/internal/schema"
	"gqldoc/internal/ui/navigation"
	"gqldoc/internal/ui/views"
)

// Model is the Bubble Tea model for the schema browser
type Model struct {
	bus      eventbus.EventBus
	cfg      *config.Config
	renderer *views.Renderer
	pager    *PagerOps

	schema  *schema.Schema
	loadErr string

	idx     *index.Index
	history *navigation.History

	items          []views.Item
	selected       int
	viewportOffset int
	viewportHeight int

	searchInput textinput.Model
	searching   bool
	matches     []index.Match

	status string

	width  int
	height int
}

// NewModel creates a new UI model. The schema may be nil when nothing
// could be loaded at startup; the browser then shows the placeholder
// until a schema arrives over the bus.
func NewModel(bus eventbus.EventBus, cfg *config.Config, s *schema.Schema, loadErr error) *Model {
	ti := textinput.New()
	ti.Placeholder = "type name or field"
	ti.CharLimit = 128

	m := &Model{
		bus:            bus,
		cfg:            cfg,
		renderer:       views.NewRenderer(),
		history:        navigation.NewHistory(),
		searchInput:    ti,
		viewportHeight: 20,
	}
	if loadErr != nil {
		m.loadErr = loadErr.Error()
	}
	if s != nil {
		m.setSchema(s)
	}
	return m
}

// SetPager wires the external pager, which needs the running program
// to release and restore the terminal.
func (m *Model) SetPager(p *PagerOps) {
	m.pager = p
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewportHeight = msg.Height - 8
		if m.viewportHeight < 3 {
			m.viewportHeight = 3
		}
		m.ensureSelectedVisible()
		return m, nil

	case EventMsg:
		return m.handleEvent(msg.Event)

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)

	case pagerDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Pager error: %v", msg.err)
			return m, clearStatusAfter(3 * time.Second)
		}
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	return m, nil
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch ev := event.(type) {
	case eventbus.SchemaLoadedEvent:
		s, ok := ev.Schema.(*schema.Schema)
		if !ok {
			log.Printf("SchemaLoadedEvent carried unexpected payload %T", ev.Schema)
			return m, nil
		}
		m.setSchema(s)
		m.status = fmt.Sprintf("Schema reloaded: %d types", len(s.TypeNames()))
		return m, clearStatusAfter(3 * time.Second)

	case eventbus.SchemaErrorEvent:
		m.loadErr = ev.Err.Error()
		m.status = "Schema reload failed"
		return m, clearStatusAfter(5 * time.Second)

	case eventbus.SchemaChangedEvent:
		m.status = "Schema file changed, reloading..."
		return m, nil
	}

	return m, nil
}

// handleSearchKey processes keys while the search input is focused.
// Results are recomputed synchronously on every change.
func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.searching = false
		m.searchInput.Blur()
		return m, nil

	case "enter":
		m.searching = false
		m.searchInput.Blur()
		if m.searchInput.Value() == "" {
			return m, nil
		}
		m.history.Navigate(navigation.Target{}, navigation.ModeSearch)
		m.refreshItems()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.recomputeMatches()
	if m.history.Mode() == navigation.ModeSearch {
		m.refreshItems()
	}
	return m, cmd
}

// handleKey processes keys in normal browse mode
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		if m.schema == nil {
			return m, nil
		}
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "up", "k":
		m.moveSelection(-1)
		return m, nil

	case "down", "j":
		m.moveSelection(1)
		return m, nil

	case "pgup":
		m.moveSelection(-m.viewportHeight)
		return m, nil

	case "pgdown":
		m.moveSelection(m.viewportHeight)
		return m, nil

	case "g":
		m.selected = m.firstSelectable()
		m.ensureSelectedVisible()
		return m, nil

	case "G":
		m.selected = m.lastSelectable()
		m.ensureSelectedVisible()
		return m, nil

	case "enter", "right", "l":
		m.activateSelection()
		return m, nil

	case "backspace", "esc", "left", "h":
		m.goBack()
		return m, nil

	case "H":
		m.goHome()
		return m, nil

	case "i":
		m.cfg.UISettings.ShowDescriptions = !m.cfg.UISettings.ShowDescriptions
		return m, nil

	case "d":
		return m, m.showDefinition()

	case "?":
		return m, m.showHelp()
	}

	return m, nil
}

// setSchema installs a newly loaded schema: the index is rebuilt and
// history is cleared back to the home view.
func (m *Model) setSchema(s *schema.Schema) {
	m.schema = s
	m.loadErr = ""
	m.idx = index.Build(s)
	m.history.Home()
	m.recomputeMatches()
	m.refreshItems()

	if m.bus != nil {
		m.bus.Publish(eventbus.IndexBuiltEvent{Records: m.idx.Len()})
	}
	log.Printf("Search index rebuilt: %d records", m.idx.Len())
}

// recomputeMatches refreshes search results for the current query
func (m *Model) recomputeMatches() {
	if m.idx == nil {
		m.matches = nil
		return
	}
	m.matches = m.idx.Search(m.searchInput.Value())
}

// refreshItems rebuilds the item list for the current history state
// and resets the selection.
func (m *Model) refreshItems() {
	if m.schema == nil {
		m.items = nil
		m.selected = 0
		m.viewportOffset = 0
		return
	}

	entry := m.history.Current()
	switch entry.Mode {
	case navigation.ModeSearch:
		m.items = views.SearchItems(m.schema, m.matches)
	case navigation.ModeField:
		m.items = views.FieldItems(m.schema, entry.Target.Type, entry.Target.Field)
	default:
		if entry.Target.Type == nil {
			m.items = views.ExplorerRootItems(m.schema)
		} else {
			m.items = views.TypeItems(m.schema, entry.Target.Type)
		}
	}

	m.selected = m.firstSelectable()
	m.viewportOffset = 0
	m.ensureSelectedVisible()
}

// activateSelection navigates to the selected item
func (m *Model) activateSelection() {
	if m.selected < 0 || m.selected >= len(m.items) {
		return
	}
	item := m.items[m.selected]
	if !item.Selectable() {
		return
	}
	m.history.Navigate(item.Target, item.Mode)
	m.refreshItems()
}

// goBack pops one history entry; an empty stack is the home view
func (m *Model) goBack() {
	m.history.Back()
	m.refreshItems()
}

// goHome clears history and the active search
func (m *Model) goHome() {
	m.history.Home()
	m.searchInput.Reset()
	m.matches = nil
	m.refreshItems()
}

// moveSelection moves the cursor by delta rows, skipping headers
func (m *Model) moveSelection(delta int) {
	if len(m.items) == 0 {
		return
	}

	step := 1
	if delta < 0 {
		step = -1
		delta = -delta
	}

	idx := m.selected
	for ; delta > 0; delta-- {
		next := idx + step
		for next >= 0 && next < len(m.items) && !m.items[next].Selectable() {
			next += step
		}
		if next < 0 || next >= len(m.items) {
			break
		}
		idx = next
	}

	m.selected = idx
	m.ensureSelectedVisible()
}

// firstSelectable returns the index of the first selectable item
func (m *Model) firstSelectable() int {
	for i, item := range m.items {
		if item.Selectable() {
			return i
		}
	}
	return 0
}

// lastSelectable returns the index of the last selectable item
func (m *Model) lastSelectable() int {
	for i := len(m.items) - 1; i >= 0; i-- {
		if m.items[i].Selectable() {
			return i
		}
	}
	return 0
}

// ensureSelectedVisible adjusts the viewport to keep the selection on
// screen, accounting for the scroll indicator rows.
func (m *Model) ensureSelectedVisible() {
	if m.selected < m.viewportOffset {
		m.viewportOffset = m.selected
	}

	effectiveHeight := m.viewportHeight
	if m.viewportOffset > 0 {
		effectiveHeight--
	}
	if len(m.items) > m.viewportOffset+m.viewportHeight {
		effectiveHeight--
	}
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}

	if m.selected >= m.viewportOffset+effectiveHeight {
		m.viewportOffset = m.selected - effectiveHeight + 1
	}
	if m.viewportOffset < 0 {
		m.viewportOffset = 0
	}
}

// showDefinition pages the SDL of the type under the cursor, falling
// back to the currently displayed type.
func (m *Model) showDefinition() tea.Cmd {
	if m.pager == nil || m.schema == nil {
		return nil
	}

	def := m.history.Target().Type
	if m.selected >= 0 && m.selected < len(m.items) {
		if t := m.items[m.selected].Target.Type; t != nil {
			def = t
		}
	}
	if def == nil {
		return nil
	}

	sdl := schema.SDL(def)
	return func() tea.Msg {
		return pagerDoneMsg{err: m.pager.ShowInPager(sdl)}
	}
}

// showHelp pages the key binding reference
func (m *Model) showHelp() tea.Cmd {
	if m.pager == nil {
		return nil
	}
	content := renderHelpContent()
	return func() tea.Msg {
		return pagerDoneMsg{err: m.pager.ShowInPager(content)}
	}
}

// clearStatusAfter clears the status line after a delay
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// View implements tea.Model
func (m *Model) View() string {
	schemaPath := ""
	if m.schema != nil {
		schemaPath = m.schema.Path()
	}

	entry := m.history.Current()
	return m.renderer.Render(views.ViewState{
		Width:            m.width,
		Height:           m.height,
		Schema:           m.schema,
		SchemaPath:       schemaPath,
		LoadError:        m.loadErr,
		Mode:             entry.Mode,
		Target:           entry.Target,
		HistoryDepth:     m.history.Depth(),
		Items:            m.items,
		SelectedIndex:    m.selected,
		ViewportOffset:   m.viewportOffset,
		ViewportHeight:   m.viewportHeight,
		Searching:        m.searching,
		SearchInput:      m.searchInput.View(),
		SearchQuery:      m.searchInput.Value(),
		StatusMessage:    m.status,
		ShowDescriptions: m.cfg.UISettings.ShowDescriptions,
	})
}
