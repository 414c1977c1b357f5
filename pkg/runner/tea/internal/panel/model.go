package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
)

// Model renders the detail of an expanded entry: a title and wrapped body
// lines inside a rounded frame.
type Model struct {
	title      string
	lines      []string
	width      int
	frameStyle lipgloss.Style
	titleStyle lipgloss.Style
	bodyStyle  lipgloss.Style
}

// New returns a panel model with sensible defaults.
func New() Model {
	return Model{
		frameStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2),
		titleStyle: lipgloss.NewStyle().Bold(true),
		bodyStyle:  lipgloss.NewStyle(),
	}
}

// SetContent updates the panel title and body lines.
func (m *Model) SetContent(title string, lines []string) {
	m.title = title
	m.lines = lines
}

// SetWidth sets the outer width body lines are wrapped to. Zero disables
// wrapping.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// Reset clears panel content.
func (m *Model) Reset() {
	m.title = ""
	m.lines = nil
}

// Empty reports whether the panel has anything to show.
func (m Model) Empty() bool {
	return m.title == "" && len(m.lines) == 0
}

// View returns the rendered panel string and its total height in lines.
func (m Model) View() (string, int) {
	if m.Empty() {
		return "", 0
	}
	inner := 0
	if m.width > 0 {
		// border (2) + horizontal padding (4)
		inner = m.width - 6
	}

	var content []string
	if m.title != "" {
		content = append(content, m.titleStyle.Render(m.wrap(m.title, inner)))
	}
	for _, line := range m.lines {
		content = append(content, m.bodyStyle.Render(m.wrap(line, inner)))
	}
	view := m.frameStyle.Render(strings.Join(content, "\n"))
	height := strings.Count(view, "\n") + 1
	return view, height
}

func (m Model) wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}
