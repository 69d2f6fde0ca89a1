// Package tui is the interactive food picker screen.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/aguxez/foodpick/app"
)

type mode int

const (
	modeBrowse mode = iota
	modeAddGroup
	modeAddFood
	modeRename
	modeConfirm
)

// row is one visible line of the list: a group, or a food when foodID is set.
type row struct {
	groupID string
	foodID  string
}

func (r row) isFood() bool { return r.foodID != "" }

type Model struct {
	ctrl *app.Controller
	ctx  context.Context

	keys     keyMap
	help     help.Model
	input    textinput.Model
	viewport viewport.Model // scrolls the list rows

	mode     mode
	rows     []row
	cursor   int
	target   row    // row being renamed or added to
	original string // value before a rename started
	confirm  *app.Confirmation
	status   string

	width  int
	height int
}

type lookupDoneMsg struct {
	url string
	err error
}

func New(ctx context.Context, ctrl *app.Controller) Model {
	ti := textinput.New()
	ti.CharLimit = 200
	ti.Prompt = "› "

	m := Model{
		ctrl:     ctrl,
		ctx:      ctx,
		keys:     keys,
		help:     help.New(),
		input:    ti,
		viewport: viewport.New(0, 0),
	}
	m.refreshRows()
	m.syncViewport()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	nm := next.(Model)
	nm.syncViewport()
	return nm, cmd
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case lookupDoneMsg:
		// Failures were already logged by the controller.
		if msg.err == nil {
			m.status = "opened " + msg.url
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeAddGroup, modeAddFood, modeRename:
			return m.updateInput(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	if m.mode == modeAddGroup || m.mode == modeAddFood || m.mode == modeRename {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Tap):
		if r, ok := m.current(); ok {
			_, _ = m.ctrl.Tap(r.groupID)
			m.refreshRows()
		}

	case key.Matches(msg, m.keys.Expand):
		if r, ok := m.current(); ok {
			m.ctrl.ToggleExpand(r.groupID)
			m.refreshRows()
		}

	case key.Matches(msg, m.keys.AddGroup):
		return m.startInput(modeAddGroup, row{}, "", "新增清單")

	case key.Matches(msg, m.keys.AddFood):
		if r, ok := m.current(); ok {
			if !m.ctrl.IsExpanded(r.groupID) {
				m.ctrl.ToggleExpand(r.groupID)
				m.refreshRows()
			}
			return m.startInput(modeAddFood, row{groupID: r.groupID}, "", "新增食物")
		}

	case key.Matches(msg, m.keys.Rename):
		if r, ok := m.current(); ok {
			return m.startInput(modeRename, r, m.label(r), "")
		}

	case key.Matches(msg, m.keys.Delete):
		if r, ok := m.current(); ok {
			var c *app.Confirmation
			var err error
			if r.isFood() {
				c, err = m.ctrl.ConfirmDeleteFood(r.groupID, r.foodID)
			} else {
				c, err = m.ctrl.ConfirmDeleteGroup(r.groupID)
			}
			if err == nil {
				m.confirm = c
				m.mode = modeConfirm
			}
		}

	case key.Matches(msg, m.keys.Pick):
		m.ctrl.PickRandom()

	case key.Matches(msg, m.keys.Open):
		name := m.ctrl.PickedFood()
		if r, ok := m.current(); ok && r.isFood() {
			name = m.label(r)
		}
		if name != "" {
			return m, m.lookup(name)
		}
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if m.mode == modeRename {
			m.apply(m.original)
		}
		return m.endInput(), nil

	case tea.KeyEnter:
		value := m.input.Value()
		switch m.mode {
		case modeAddGroup:
			if g, ok := m.ctrl.AddGroup(value); ok {
				m.refreshRows()
				m.moveTo(row{groupID: g.ID})
			}
			return m.endInput(), nil
		case modeAddFood:
			// Keep the prompt open so several foods can be typed in a row.
			if _, ok, _ := m.ctrl.AddFood(m.target.groupID, value); ok {
				m.refreshRows()
				m.input.SetValue("")
			}
			return m, nil
		default:
			return m.endInput(), nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == modeRename {
		m.apply(m.input.Value())
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		_ = m.confirm.Accept()
		m.refreshRows()
	case "n", "N", "esc", "q":
		m.confirm.Cancel()
	default:
		return m, nil
	}
	m.confirm = nil
	m.mode = modeBrowse
	return m, nil
}

func (m Model) startInput(md mode, target row, value, placeholder string) (tea.Model, tea.Cmd) {
	m.mode = md
	m.target = target
	m.original = value
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) endInput() Model {
	m.mode = modeBrowse
	m.input.Blur()
	m.input.SetValue("")
	m.target = row{}
	m.original = ""
	return m
}

// apply writes a rename through on every keystroke.
func (m *Model) apply(value string) {
	if m.target.isFood() {
		_ = m.ctrl.RenameFood(m.target.groupID, m.target.foodID, value)
	} else if m.target.groupID != "" {
		_ = m.ctrl.RenameGroup(m.target.groupID, value)
	}
}

func (m Model) lookup(name string) tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		u, err := ctrl.Lookup(ctx, name)
		return lookupDoneMsg{url: u, err: err}
	}
}

func (m *Model) refreshRows() {
	var cur row
	if m.cursor < len(m.rows) {
		cur = m.rows[m.cursor]
	}

	rows := make([]row, 0, len(m.rows))
	for _, g := range m.ctrl.Groups() {
		rows = append(rows, row{groupID: g.ID})
		if m.ctrl.IsExpanded(g.ID) {
			for _, f := range g.Foods {
				rows = append(rows, row{groupID: g.ID, foodID: f.ID})
			}
		}
	}
	m.rows = rows

	if !m.moveTo(cur) && m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}
}

func (m *Model) moveTo(r row) bool {
	for i := range m.rows {
		if m.rows[i] == r {
			m.cursor = i
			return true
		}
	}
	return false
}

func (m Model) current() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m Model) label(r row) string {
	g, err := m.ctrl.Store().Group(r.groupID)
	if err != nil {
		return ""
	}
	if !r.isFood() {
		return g.Title
	}
	for _, f := range g.Foods {
		if f.ID == r.foodID {
			return f.Name
		}
	}
	return ""
}

// listView renders the rows and reports the first line and line count of
// the cursor row.
func (m Model) listView() (content string, cursorTop, cursorLines int) {
	selected := m.ctrl.SelectedID()
	groups := m.ctrl.Groups()
	counts := make(map[string]int, len(groups))
	for _, g := range groups {
		counts[g.ID] = len(g.Foods)
	}

	var lines []string
	for i, r := range m.rows {
		prefix := "  "
		if i == m.cursor && m.mode != modeConfirm {
			prefix = cursorStyle.Render("> ")
		}
		name := m.label(r)

		var line string
		if r.isFood() {
			wrapped := wordwrap.String(foodStyle.Render("• "+name), max(m.width-8, 20))
			line = prefix + indent.String(wrapped, 4)
		} else {
			marker := "+"
			if m.ctrl.IsExpanded(r.groupID) {
				marker = "−"
			}
			style := groupStyle
			if r.groupID == selected {
				style = selectedStyle
			}
			if name == "" {
				name = "(untitled)"
			}
			line = fmt.Sprintf("%s%s %s  %s",
				prefix, marker, style.Render(name), countStyle.Render(fmt.Sprintf("數量：%d", counts[r.groupID])))
		}

		n := strings.Count(line, "\n") + 1
		if i == m.cursor {
			cursorTop, cursorLines = len(lines), n
		}
		lines = append(lines, strings.Split(line, "\n")...)
	}
	if len(m.rows) == 0 {
		lines = append(lines, statusStyle.Render("  press a to add a list"))
	}
	return strings.Join(lines, "\n"), cursorTop, cursorLines
}

func (m Model) headerView() string {
	return titleStyle.Render("美食選擇器") + "\n"
}

func (m Model) footerView() string {
	var parts []string
	switch m.mode {
	case modeAddGroup, modeAddFood, modeRename:
		parts = append(parts, "\n"+m.input.View())
	case modeConfirm:
		box := lipgloss.JoinVertical(lipgloss.Left,
			groupStyle.Render(m.confirm.Title),
			m.confirm.Message,
			countStyle.Render("y 確定 · n 取消"),
		)
		parts = append(parts, modalStyle.Render(box))
	}

	parts = append(parts, pickButtonStyle.Render("神啊！幫幫我( ˘•ω•˘ )"))
	if food := m.ctrl.PickedFood(); food != "" {
		parts = append(parts, resultStyle.Render("吃這個(ゝ∀･)b "+food))
	}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	return strings.Join(parts, "\n")
}

func (m Model) helpView() string {
	return lipgloss.NewStyle().PaddingLeft(2).MarginTop(1).Render(m.help.View(m.keys))
}

// syncViewport refreshes the list content and scrolls so the cursor row is
// fully visible.
func (m *Model) syncViewport() {
	content, top, n := m.listView()
	chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(m.footerView()) + lipgloss.Height(m.helpView())

	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-chrome, 1)
	m.viewport.SetContent(content)

	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case top+n > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(top + n - m.viewport.Height)
	}
}

func (m Model) View() string {
	list := m.viewport.View()
	if m.height == 0 {
		// No size yet: render everything.
		list, _, _ = m.listView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), list, m.footerView(), m.helpView())
}

// Run starts the screen and blocks until the user quits.
func Run(ctx context.Context, ctrl *app.Controller) error {
	p := tea.NewProgram(New(ctx, ctrl), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
