package components

import (
	"strings"

	"github.com/Veraticus/jobdesk/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Detail is one labelled line of a detail dialog.
type Detail struct {
	Label string
	Value string
	// Style overrides the value style when set.
	Style *lipgloss.Style
}

// DetailDialog shows a record's fields until dismissed.
type DetailDialog struct {
	theme   themes.Theme
	title   string
	header  string
	footer  string
	details []Detail
	width   int
	closed  bool
}

// NewDetailDialog creates a detail dialog.
func NewDetailDialog(title string, details []Detail, theme themes.Theme) DetailDialog {
	return DetailDialog{
		theme:   theme,
		title:   title,
		details: details,
		width:   60,
		footer:  "[Esc] Close",
	}
}

// WithHeader places a line above the details.
func (d DetailDialog) WithHeader(header string) DetailDialog {
	d.header = header
	return d
}

// WithFooter replaces the key hints.
func (d DetailDialog) WithFooter(footer string) DetailDialog {
	d.footer = footer
	return d
}

// Closed reports whether the dialog was dismissed.
func (d DetailDialog) Closed() bool {
	return d.closed
}

// Update handles messages.
func (d DetailDialog) Update(msg tea.Msg) (DetailDialog, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc", "enter", "q":
			d.closed = true
		}
	}
	return d, nil
}

// View renders the dialog.
func (d DetailDialog) View() string {
	labelWidth := 0
	for _, det := range d.details {
		labelWidth = max(labelWidth, len(det.Label))
	}

	lines := []string{d.theme.Title.Render(d.title)}
	if d.header != "" {
		lines = append(lines, d.header, "")
	}
	for _, det := range d.details {
		label := d.theme.Faint.Render(det.Label + ":" + strings.Repeat(" ", labelWidth-len(det.Label)+1))
		style := d.theme.Normal
		if det.Style != nil {
			style = *det.Style
		}
		value := style.Width(max(d.width-labelWidth-6, 10)).Render(det.Value)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label, value))
	}
	lines = append(lines, "", d.theme.Faint.Render(d.footer))

	return d.theme.Dialog.Width(d.width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// ConfirmDialog asks a yes/no question.
type ConfirmDialog struct {
	theme     themes.Theme
	prompt    string
	done      bool
	confirmed bool
}

// NewConfirmDialog creates a confirmation dialog.
func NewConfirmDialog(prompt string, theme themes.Theme) ConfirmDialog {
	return ConfirmDialog{theme: theme, prompt: prompt}
}

// Done reports whether the question was answered.
func (c ConfirmDialog) Done() bool {
	return c.done
}

// Confirmed reports whether the answer was yes.
func (c ConfirmDialog) Confirmed() bool {
	return c.confirmed
}

// Update handles messages.
func (c ConfirmDialog) Update(msg tea.Msg) (ConfirmDialog, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "y", "Y", "enter":
			c.done, c.confirmed = true, true
		case "n", "N", "esc", "q":
			c.done = true
		}
	}
	return c, nil
}

// View renders the dialog.
func (c ConfirmDialog) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		c.theme.Title.Render("Are you sure?"),
		c.prompt,
		"",
		c.theme.Faint.Render("[y] Yes  [n] No"),
	)
	return c.theme.Dialog.Width(50).Render(body)
}
