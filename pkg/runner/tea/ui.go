package teaui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/entry"
	"tableflip.dev/timeline/pkg/runner/tea/internal/panel"
	"tableflip.dev/timeline/pkg/runner/tea/internal/theme"
)

// Model states
type mode int

const (
	modeNormal mode = iota
	modeAdd
	modeConfirm
	modeHelp
)

// add form fields, in tab order
const (
	fieldDate = iota
	fieldTitle
	fieldDescription
	fieldImage
	fieldCount
)

var fieldLabels = [fieldCount]string{"Date", "Title", "Description", "Image URL"}

const emptyText = "No timeline entries yet. Press a to create one."

const helpText = "Keys: j/k move, enter toggle details, a add, d delete, r reload, q quit"

// entryItem is one timeline row in the list.
type entryItem struct{ item app.Item }

func (it entryItem) Title() string {
	marker := "▸"
	if it.item.Expanded {
		marker = "▾"
	}
	return fmt.Sprintf("%s %s  %s", marker, it.item.Entry.DisplayDate(), it.item.Entry.Title)
}
func (it entryItem) Description() string { return "" }
func (it entryItem) FilterValue() string { return it.item.Entry.Title }

// Model contains UI state
type Model struct {
	timeline *app.Timeline
	changes  <-chan struct{}
	mode     mode

	list   list.Model
	fields [fieldCount]textinput.Model
	field  int

	pending *entryItem
	detail  panel.Model
	theme   theme.Theme

	status   string
	statusOK bool

	termWidth  int
	termHeight int
}

// messages
type timelineChangedMsg struct{}

// New creates a UI model over t. Changes made elsewhere are picked up while
// ctx is live.
func New(ctx context.Context, t *app.Timeline) Model {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)

	l := list.New([]list.Item{}, d, 60, 20)
	l.Title = "Timeline"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	m := Model{
		timeline: t,
		mode:     modeNormal,
		list:     l,
		detail:   panel.New(),
		theme:    theme.Default(),
		status:   helpText,
		statusOK: true,
	}
	for i := range m.fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 512
		m.fields[i] = ti
	}
	m.fields[fieldDate].Placeholder = "YYYY-MM-DD"
	m.fields[fieldTitle].Placeholder = "required"
	m.fields[fieldDescription].Placeholder = "optional"
	m.fields[fieldImage].Placeholder = "https://..."

	if t != nil && ctx != nil {
		m.changes = t.Subscribe(ctx)
	}
	m.sync(0)
	return m
}

// Init waits for timeline changes.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return timelineChangedMsg{}
	}
}

// sync reloads list items from the timeline, keeping the cursor on selectID
// when it is listed and otherwise on the same row.
func (m *Model) sync(selectID int64) {
	if m.timeline == nil {
		return
	}
	idx := m.list.Index()
	items := m.timeline.Items()
	listItems := make([]list.Item, 0, len(items))
	for i, it := range items {
		if selectID != 0 && it.Entry.ID == selectID {
			idx = i
		}
		listItems = append(listItems, entryItem{item: it})
	}
	m.list.SetItems(listItems)
	if idx >= len(listItems) {
		idx = len(listItems) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
	m.syncDetail(items)
}

func (m *Model) syncDetail(items []app.Item) {
	m.detail.Reset()
	for _, it := range items {
		if !it.Expanded {
			continue
		}
		e := it.Entry
		lines := []string{e.DisplayDate()}
		if e.Description != "" {
			lines = append(lines, "", e.Description)
		}
		if src, ok := entry.SafeImageURL(e.Image); ok {
			lines = append(lines, "", "Image: "+src)
		}
		m.detail.SetContent(e.Title, lines)
		return
	}
}

func (m *Model) currentEntry() *entryItem {
	if len(m.list.Items()) == 0 {
		return nil
	}
	sel := m.list.SelectedItem()
	if sel == nil {
		return nil
	}
	it, ok := sel.(entryItem)
	if !ok {
		return nil
	}
	return &it
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusOK = true
}

func (m *Model) setError(err error) {
	m.status = "ERR: " + err.Error()
	m.statusOK = false
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case timelineChangedMsg:
		m.sync(0)
		cmds = append(cmds, m.waitForChange())
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
			}
		case modeAdd:
			cmds = append(cmds, m.updateAdd(msg))
		case modeConfirm:
			m.updateConfirm(msg)
		case modeNormal:
			cmds = append(cmds, m.updateNormal(msg))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateNormal(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "j", "down":
		m.list.CursorDown()
	case "k", "up":
		m.list.CursorUp()
	case "g", "home":
		m.list.Select(0)
	case "G", "end":
		m.list.Select(len(m.list.Items()) - 1)
	case "enter", "space", " ":
		if it := m.currentEntry(); it != nil {
			it.item.Toggle()
			m.sync(it.item.Entry.ID)
		}
	case "a", "o":
		return m.openAdd()
	case "d", "x":
		if it := m.currentEntry(); it != nil {
			m.pending = it
			m.mode = modeConfirm
			m.setStatus(fmt.Sprintf("%s %q (y/n)", app.DeletePrompt, it.item.Entry.Title))
		}
	case "r":
		if err := m.timeline.Reload(); err != nil {
			m.setError(err)
		} else {
			m.sync(0)
			m.setStatus("Reloaded")
		}
	case "?":
		m.mode = modeHelp
	}
	return nil
}

func (m *Model) updateConfirm(msg tea.KeyPressMsg) {
	var answer bool
	switch msg.String() {
	case "y", "Y":
		answer = true
	case "n", "N", "esc", "q":
		answer = false
	default:
		return
	}

	target := m.pending
	m.pending = nil
	m.mode = modeNormal
	if target == nil {
		return
	}
	removed, err := target.item.Delete(app.ConfirmFunc(func(string) (bool, error) {
		return answer, nil
	}))
	switch {
	case err != nil:
		m.setError(err)
	case removed:
		m.setStatus("Deleted " + target.item.Entry.Title)
	default:
		m.setStatus("Delete cancelled")
	}
	m.sync(0)
}

func (m *Model) openAdd() tea.Cmd {
	m.mode = modeAdd
	m.setStatus("Add entry: tab/enter next field, enter on the last field saves, esc cancels")
	return m.focusField(fieldDate)
}

func (m *Model) focusField(i int) tea.Cmd {
	for j := range m.fields {
		m.fields[j].Blur()
	}
	m.field = i
	return tea.Batch(m.fields[i].Focus(), textinput.Blink)
}

// closeAdd dismisses the overlay and clears every field.
func (m *Model) closeAdd() {
	for i := range m.fields {
		m.fields[i].Reset()
		m.fields[i].Blur()
	}
	m.field = fieldDate
	m.mode = modeNormal
}

func (m *Model) updateAdd(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closeAdd()
		m.setStatus("Add cancelled")
		return nil
	case "tab", "down":
		return m.focusField((m.field + 1) % fieldCount)
	case "shift+tab", "up":
		return m.focusField((m.field + fieldCount - 1) % fieldCount)
	case "enter":
		if m.field < fieldCount-1 {
			return m.focusField(m.field + 1)
		}
		return m.submitAdd()
	case "ctrl+s":
		return m.submitAdd()
	}
	var cmd tea.Cmd
	m.fields[m.field], cmd = m.fields[m.field].Update(msg)
	return cmd
}

func (m *Model) submitAdd() tea.Cmd {
	date := strings.TrimSpace(m.fields[fieldDate].Value())
	title := strings.TrimSpace(m.fields[fieldTitle].Value())
	if date == "" || title == "" {
		m.status = "Date and title are required"
		m.statusOK = false
		if date == "" {
			return m.focusField(fieldDate)
		}
		return m.focusField(fieldTitle)
	}

	e, err := m.timeline.Add(date, title,
		strings.TrimSpace(m.fields[fieldDescription].Value()),
		strings.TrimSpace(m.fields[fieldImage].Value()))
	m.closeAdd()
	if err != nil {
		m.setError(err)
	} else {
		m.setStatus("Added " + e.Title)
	}
	if e != nil {
		m.sync(e.ID)
	}
	return nil
}

// View renders the list, the expanded entry and any overlay.
func (m Model) View() string {
	header := m.theme.Header.Render(fmt.Sprintf("Timeline (%d)", len(m.list.Items())))

	var body string
	if len(m.list.Items()) == 0 {
		body = m.theme.Empty.Render(emptyText)
	} else {
		body = m.list.View()
		if detail, _ := m.detail.View(); detail != "" {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", detail)
		}
	}

	switch m.mode {
	case modeAdd:
		body += "\n\n" + m.formView()
	case modeHelp:
		body += "\n\n" + m.theme.Footer.Help.Italic(true).Render(helpText)
	}

	status := m.theme.Footer.Status.Render(m.status)
	switch {
	case m.mode == modeConfirm:
		status = m.theme.Footer.Prompt.Render(m.status)
	case !m.statusOK:
		status = m.theme.Footer.Error.Render(m.status)
	}

	return header + "\n" + body + "\n\n" + status
}

func (m Model) formView() string {
	rows := make([]string, 0, fieldCount+2)
	rows = append(rows, m.theme.Header.Render("New timeline entry"), "")
	for i := range m.fields {
		label := m.theme.Form.Label
		if i == m.field {
			label = m.theme.Form.ActiveLabel
		}
		rows = append(rows, label.Render(fieldLabels[i])+m.fields[i].View())
	}
	return m.theme.Form.Frame.Render(strings.Join(rows, "\n"))
}

// applySizes recalculates list and panel sizes based on current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	left := m.termWidth / 2
	if left < 30 {
		left = 30
	}
	right := m.termWidth - left - 1
	if right < 20 {
		right = 20
	}
	// header, blank line and status
	height := m.termHeight - 4
	if height < 5 {
		height = 5
	}
	m.list.SetSize(left, height)
	m.detail.SetWidth(right)
	for i := range m.fields {
		m.fields[i].SetWidth(right)
	}
}
