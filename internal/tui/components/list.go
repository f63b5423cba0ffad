package components

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Veraticus/jobdesk/internal/admin"
	"github.com/Veraticus/jobdesk/internal/model"
	"github.com/Veraticus/jobdesk/internal/query"
	"github.com/Veraticus/jobdesk/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ListMode represents the current mode of a list.
type ListMode int

// List modes.
const (
	ModeNormal ListMode = iota
	ModeSearch
)

// ListModel is the searchable, filterable, tabbed table shared by every list screen.
// It owns the screen's records and query state.
type ListModel[T any] struct {
	theme       themes.Theme
	counts      map[string]int
	list        admin.List[T]
	state       query.State
	records     []T
	visible     []T
	hints       []string
	searchInput textinput.Model
	table       table.Model
	tab         int
	mode        ListMode
	width       int
	height      int
}

// NewListModel creates a list over records.
func NewListModel[T any](list admin.List[T], records []T, theme themes.Theme) ListModel[T] {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.KeyMap = tableKeyMap()

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = theme.Selected
	t.SetStyles(s)

	searchInput := textinput.New()
	searchInput.Prompt = "/ "
	searchInput.Placeholder = fmt.Sprintf("Search %s...", plural(list.Noun))
	searchInput.CharLimit = 64

	m := ListModel[T]{
		theme:       theme,
		list:        list,
		state:       list.NewState(),
		records:     records,
		searchInput: searchInput,
		table:       t,
	}
	m.Resize(100, 20)
	return m
}

// tableKeyMap keeps the table's navigation keys off the letters the screens use.
func tableKeyMap() table.KeyMap {
	km := table.DefaultKeyMap()
	km.PageUp = key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up"))
	km.PageDown = key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down"))
	km.HalfPageUp = key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "½ page up"))
	km.HalfPageDown = key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "½ page down"))
	return km
}

// SetHints sets the screen-specific key hints shown under the table.
func (m *ListModel[T]) SetHints(hints ...string) {
	m.hints = hints
}

// Records returns the full collection.
func (m ListModel[T]) Records() []T {
	return m.records
}

// SetRecords replaces the collection and recomputes the view.
func (m *ListModel[T]) SetRecords(records []T) {
	m.records = records
	m.refresh()
}

// List returns the list definition.
func (m ListModel[T]) List() admin.List[T] {
	return m.list
}

// State returns the current query state.
func (m ListModel[T]) State() query.State {
	return m.state
}

// Tab returns the active tab value.
func (m ListModel[T]) Tab() string {
	if len(m.list.Tabs) == 0 {
		return ""
	}
	return m.list.Tabs[m.tab]
}

// SelectTab activates the named tab.
func (m *ListModel[T]) SelectTab(tab string) {
	if i := slices.Index(m.list.Tabs, tab); i >= 0 {
		m.tab = i
		m.refresh()
	}
}

// Visible returns the rows currently shown.
func (m ListModel[T]) Visible() []T {
	return m.visible
}

// Counts returns the tab badge counts.
func (m ListModel[T]) Counts() map[string]int {
	return m.counts
}

// Selected returns the record under the cursor.
func (m ListModel[T]) Selected() (T, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.visible) {
		var zero T
		return zero, false
	}
	return m.visible[i], true
}

// Searching reports whether key presses go to the search input.
func (m ListModel[T]) Searching() bool {
	return m.mode == ModeSearch
}

// Resize sets the space available to the list.
func (m *ListModel[T]) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetWidth(width)
	// header, tabs, filter line, footer and the table's own header
	m.table.SetHeight(max(height-7, 3))
	m.searchInput.Width = max(width-4, 10)
	m.refresh()
}

// Act applies a workflow action to the selected record and returns a toast.
func (m *ListModel[T]) Act(action model.Action) tea.Cmd {
	r, ok := m.Selected()
	if !ok {
		return Toast(ToastWarning, fmt.Sprintf("No %s selected", m.list.Noun))
	}

	from := model.Status(m.list.Schema.Status(r))
	to, ok := m.list.Workflow.Next(from, action)
	if !ok {
		return Toast(ToastWarning, fmt.Sprintf("Cannot %s %q: it is %s", action, m.list.Label(r), from))
	}

	id := m.list.Schema.ID(r)
	m.SetRecords(m.list.Schema.Transition(m.records, id, string(to)))
	return Toast(toastLevel(to), fmt.Sprintf("%s %q is now %s", admin.Capitalize(m.list.Noun), m.list.Label(r), to))
}

// Update handles messages.
func (m ListModel[T]) Update(msg tea.Msg) (ListModel[T], tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	if m.mode == ModeSearch {
		return m.handleSearchMode(keyMsg)
	}

	switch keyMsg.String() {
	case "/":
		m.mode = ModeSearch
		m.table.Blur()
		return m, m.searchInput.Focus()

	case "esc":
		if m.state.Search != "" {
			m.searchInput.SetValue("")
			m.state.Search = ""
			m.refresh()
		}
		return m, nil

	case "f":
		m.cycleFilter()
		return m, nil

	case "tab":
		if n := len(m.list.Tabs); n > 0 {
			m.tab = (m.tab + 1) % n
			m.refresh()
		}
		return m, nil

	case "shift+tab":
		if n := len(m.list.Tabs); n > 0 {
			m.tab = (m.tab + n - 1) % n
			m.refresh()
		}
		return m, nil

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		fields := m.list.SortFields()
		i := int(keyMsg.Runes[0] - '1')
		if i < len(fields) {
			m.state = m.state.ToggleSort(fields[i])
			m.refresh()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleSearchMode filters live on every key press.
func (m ListModel[T]) handleSearchMode(msg tea.KeyMsg) (ListModel[T], tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = ModeNormal
		m.searchInput.Blur()
		m.table.Focus()
		return m, nil

	case "esc":
		m.mode = ModeNormal
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.table.Focus()
		m.state.Search = ""
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if v := m.searchInput.Value(); v != m.state.Search {
		m.state.Search = v
		m.refresh()
	}
	return m, cmd
}

// cycleFilter advances the categorical filter, or the date window on lists without one.
func (m *ListModel[T]) cycleFilter() {
	switch {
	case len(m.list.Filter.Values) > 0:
		m.state.Category = m.list.NextFilter(m.state.Category)
	case m.list.Windowed:
		windows := query.Windows()
		i := slices.Index(windows, m.state.Window)
		m.state.Window = windows[(i+1)%len(windows)]
	default:
		return
	}
	m.refresh()
}

// refresh recomputes the visible rows and tab counts from the records and state.
func (m *ListModel[T]) refresh() {
	m.visible = m.list.Visible(m.records, m.state, m.Tab())
	m.counts = m.list.Counts(m.records, m.state)

	m.table.SetColumns(m.columns())
	rows := make([]table.Row, 0, len(m.visible))
	for _, r := range m.visible {
		rows = append(rows, table.Row(m.list.Row(r)))
	}
	m.table.SetRows(rows)

	if c := m.table.Cursor(); c >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// columns scales the declared widths down to the available width.
func (m ListModel[T]) columns() []table.Column {
	total := 0
	for _, c := range m.list.Columns {
		total += c.Width + 2
	}

	cols := make([]table.Column, len(m.list.Columns))
	for i, c := range m.list.Columns {
		width := c.Width
		if total > m.width && m.width > 0 {
			width = max(c.Width*m.width/total, 4)
		}

		title := c.Title
		if c.Sort != "" && c.Sort == m.state.SortField {
			title += " " + arrow(m.state.Direction)
		}
		cols[i] = table.Column{Title: title, Width: width}
	}
	return cols
}

// View renders the list.
func (m ListModel[T]) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderTabs(),
		m.renderFilterLine(),
	}

	if len(m.visible) == 0 {
		sections = append(sections,
			m.theme.Faint.Render(fmt.Sprintf("No %s match the current filters.", plural(m.list.Noun))))
	} else {
		sections = append(sections, m.table.View())
	}

	sections = append(sections, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ListModel[T]) renderHeader() string {
	title := m.theme.Bold.Render(m.list.Screen.Title())
	status := m.theme.Faint.Render(fmt.Sprintf("  %d of %d %s", len(m.visible), len(m.records), plural(m.list.Noun)))
	return title + status
}

func (m ListModel[T]) renderTabs() string {
	parts := make([]string, 0, len(m.list.Tabs))
	for i, tab := range m.list.Tabs {
		label := fmt.Sprintf("%s (%d)", admin.Title(tab), m.counts[tab])
		if i == m.tab {
			parts = append(parts, m.theme.TabActive.Render(label))
		} else {
			parts = append(parts, m.theme.Tab.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (m ListModel[T]) renderFilterLine() string {
	if m.mode == ModeSearch {
		return m.searchInput.View()
	}

	var parts []string
	if m.state.Search != "" {
		parts = append(parts, fmt.Sprintf("search: %q", m.state.Search))
	}
	if len(m.list.Filter.Values) > 0 {
		parts = append(parts, fmt.Sprintf("%s: %s", m.list.Filter.Label, m.state.Category))
	}
	if m.list.Windowed {
		parts = append(parts, fmt.Sprintf("date: %s", m.state.Window))
	}
	if m.state.SortField != "" {
		parts = append(parts, fmt.Sprintf("sort: %s %s", m.state.SortField, arrow(m.state.Direction)))
	}
	return m.theme.Faint.Render(strings.Join(parts, " · "))
}

func (m ListModel[T]) renderFooter() string {
	if m.mode == ModeSearch {
		return m.theme.Faint.Render("[Enter] Keep search  [Esc] Clear")
	}

	hints := []string{"[/] Search"}
	if len(m.list.Filter.Values) > 0 || m.list.Windowed {
		hints = append(hints, "[f] Filter")
	}
	if len(m.list.Tabs) > 0 {
		hints = append(hints, "[Tab] Next tab")
	}
	if n := len(m.list.SortFields()); n > 0 {
		hints = append(hints, fmt.Sprintf("[1-%d] Sort", n))
	}
	hints = append(hints, m.hints...)
	return m.theme.Faint.Render(strings.Join(hints, "  "))
}

func arrow(d query.Direction) string {
	if d == query.Descending {
		return "↓"
	}
	return "↑"
}

func plural(noun string) string {
	switch {
	case strings.HasSuffix(noun, "y"):
		return strings.TrimSuffix(noun, "y") + "ies"
	default:
		return noun + "s"
	}
}
