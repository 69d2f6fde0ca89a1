package tui

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aguxez/foodpick/app"
	"github.com/aguxez/foodpick/models"
)

func newModel(t *testing.T) (Model, *app.Controller, []models.Group) {
	t.Helper()
	seed := models.SeedGroups()
	ctrl := app.New(app.Deps{
		Store: models.NewStateManager(seed),
		Rand:  rand.New(rand.NewPCG(3, 4)),
	})
	return New(context.Background(), ctrl), ctrl, seed
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestInitialRows(t *testing.T) {
	m, _, seed := newModel(t)
	require.Len(t, m.rows, 3)
	assert.Equal(t, seed[0].ID, m.rows[0].groupID)
	assert.Contains(t, m.View(), "美食選擇器")
	assert.Contains(t, m.View(), "數量：5")
}

func TestTapSelectsAndExpand(t *testing.T) {
	m, ctrl, seed := newModel(t)

	m = press(m, "down", "enter")
	assert.Equal(t, seed[1].ID, ctrl.SelectedID())

	m = press(m, " ")
	assert.True(t, ctrl.IsExpanded(seed[1].ID))
	assert.Len(t, m.rows, 3+5)
}

func TestAddGroupAndFood(t *testing.T) {
	m, ctrl, _ := newModel(t)

	m = press(m, "a", "宵", "夜", "enter")
	groups := ctrl.Groups()
	require.Len(t, groups, 4)
	assert.Equal(t, "宵夜", groups[3].Title)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, groups[3].ID, m.rows[m.cursor].groupID)

	m = press(m, "f", "鹽酥雞", "enter", "滷味", "enter", "enter", "esc")
	g, err := ctrl.Store().Group(groups[3].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"鹽酥雞", "滷味"}, g.Names())
	assert.Equal(t, modeBrowse, m.mode)
}

func TestAddGroupEmptyIgnored(t *testing.T) {
	m, ctrl, _ := newModel(t)
	press(m, "a", "enter")
	assert.Len(t, ctrl.Groups(), 3)
}

func TestRenameWritesThroughAndEscReverts(t *testing.T) {
	m, ctrl, seed := newModel(t)

	m = press(m, "e", "!")
	g, _ := ctrl.Store().Group(seed[0].ID)
	assert.Equal(t, "日常吃飯!", g.Title)

	m = press(m, "esc")
	g, _ = ctrl.Store().Group(seed[0].ID)
	assert.Equal(t, "日常吃飯", g.Title)

	press(m, "e", "?", "enter")
	g, _ = ctrl.Store().Group(seed[0].ID)
	assert.Equal(t, "日常吃飯?", g.Title)
}

func TestDeleteAsksFirst(t *testing.T) {
	m, ctrl, seed := newModel(t)

	m = press(m, "d")
	assert.Equal(t, modeConfirm, m.mode)
	assert.Contains(t, m.View(), "確認要刪除［日常吃飯］清單嗎?")

	m = press(m, "n")
	assert.Equal(t, modeBrowse, m.mode)
	assert.Len(t, ctrl.Groups(), 3)

	m = press(m, "d", "y")
	assert.Len(t, ctrl.Groups(), 2)
	assert.Len(t, m.rows, 2)
	assert.NotEqual(t, seed[0].ID, m.rows[0].groupID)
}

func TestDeleteFoodRow(t *testing.T) {
	m, ctrl, seed := newModel(t)

	m = press(m, " ", "down", "d")
	assert.Contains(t, m.View(), "確認要刪除［便當］食物嗎?")
	press(m, "y")

	g, _ := ctrl.Store().Group(seed[0].ID)
	assert.Equal(t, []string{"麵食", "水餃"}, g.Names())
}

func TestPick(t *testing.T) {
	m, ctrl, seed := newModel(t)

	m = press(m, "r")
	assert.Equal(t, "", ctrl.PickedFood())

	m = press(m, "enter", "r")
	assert.Contains(t, seed[0].Names(), ctrl.PickedFood())
	assert.Contains(t, m.View(), "吃這個(ゝ∀･)b "+ctrl.PickedFood())
}

func TestLongListScrollsWithCursor(t *testing.T) {
	groups := make([]models.Group, 33)
	for i := range groups {
		groups[i] = models.NewGroup(fmt.Sprintf("list %02d", i), "a", "b", "c")
	}
	ctrl := app.New(app.Deps{Store: models.NewStateManager(groups)})
	for _, g := range groups {
		ctrl.ToggleExpand(g.ID)
	}
	m := New(context.Background(), ctrl)
	require.Len(t, m.rows, 33*4)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	assert.LessOrEqual(t, lipgloss.Height(m.View()), 24)
	assert.Contains(t, m.View(), "list 00")

	for range 100 {
		m = press(m, "down")
	}
	require.Equal(t, 100, m.cursor)
	view := m.View()
	assert.LessOrEqual(t, lipgloss.Height(view), 24)
	assert.Contains(t, view, "list 25")
	assert.NotContains(t, view, "list 00")

	for range 100 {
		m = press(m, "up")
	}
	view = m.View()
	assert.LessOrEqual(t, lipgloss.Height(view), 24)
	assert.Contains(t, view, "list 00")
}

func TestQuit(t *testing.T) {
	m, _, _ := newModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
