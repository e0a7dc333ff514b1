package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shhac/accordion/internal/accordion"
	"github.com/shhac/accordion/internal/logging"
	"github.com/shhac/accordion/internal/panels"
	"github.com/shhac/accordion/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenRepo struct {
	*storage.MemoryRepository
	fail bool
}

func (r *brokenRepo) Set(key string, blob []byte) error {
	if r.fail {
		return errors.New("disk full")
	}
	return r.MemoryRepository.Set(key, blob)
}

func newTestModel(t *testing.T, repo storage.Repository) (Model, *accordion.Accordion) {
	t.Helper()
	catalog := panels.Default()
	ctrl := accordion.New(repo, accordion.WithLogger(logging.NewNopLogger()))
	require.NoError(t, ctrl.Init(len(catalog.Panels), catalog.DefaultOpen))
	return NewModel(ctrl, catalog, logging.NewNopLogger(), false), ctrl
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func openOf(d accordion.Directives) []int {
	open := []int{}
	for _, p := range d.Panels {
		if p.Open {
			open = append(open, p.Index)
		}
	}
	return open
}

func TestModel_InitialView(t *testing.T) {
	m, _ := newTestModel(t, storage.NewMemoryRepository())

	assert.Equal(t, []int{0}, openOf(m.Directives()))
	view := m.View()
	assert.Contains(t, view, "faq")
	assert.Contains(t, view, panels.Default().Panels[0].Description)
	assert.NotContains(t, view, panels.Default().Panels[1].Description)
	assert.Contains(t, view, "[ ] multi-select")
}

func TestModel_Navigation(t *testing.T) {
	m, _ := newTestModel(t, storage.NewMemoryRepository())

	m = press(t, m, "up")
	assert.Equal(t, 0, m.Cursor(), "cursor stops at the top")

	m = press(t, m, "down", "down", "j")
	assert.Equal(t, 3, m.Cursor())

	m = press(t, m, "down", "down", "down")
	assert.Equal(t, 4, m.Cursor(), "cursor stops at the bottom")
}

func TestModel_ToggleFlow(t *testing.T) {
	m, ctrl := newTestModel(t, storage.NewMemoryRepository())

	m = press(t, m, "down", "enter")
	assert.Equal(t, []int{1}, openOf(m.Directives()))

	m = press(t, m, "m", "3")
	assert.Equal(t, []int{1, 2}, openOf(m.Directives()))
	assert.True(t, m.Directives().MultiSelect)
	assert.Contains(t, m.View(), "[x] multi-select")

	m = press(t, m, "m", "4")
	assert.Equal(t, []int{3}, openOf(m.Directives()))
	assert.Equal(t, 3, m.Cursor())

	m = press(t, m, "enter")
	assert.Equal(t, []int{}, openOf(m.Directives()))
	assert.Equal(t, ctrl.State().OpenIndices(), openOf(m.Directives()))
}

func TestModel_DigitOutOfRangeIgnored(t *testing.T) {
	m, _ := newTestModel(t, storage.NewMemoryRepository())

	m = press(t, m, "9")
	assert.Equal(t, []int{0}, openOf(m.Directives()))
	assert.Equal(t, 0, m.Cursor())
}

func TestModel_Reset(t *testing.T) {
	m, _ := newTestModel(t, storage.NewMemoryRepository())

	m = press(t, m, "5", "m")
	m = press(t, m, "r")

	assert.Equal(t, []int{0}, openOf(m.Directives()))
	assert.False(t, m.Directives().MultiSelect)
}

func TestModel_PersistFailureShowsStatus(t *testing.T) {
	repo := &brokenRepo{MemoryRepository: storage.NewMemoryRepository()}
	m, _ := newTestModel(t, repo)

	repo.fail = true
	m = press(t, m, "2")

	assert.Equal(t, []int{0}, openOf(m.Directives()), "state unchanged")
	assert.Contains(t, m.Status(), "disk full")
	assert.Contains(t, m.View(), "disk full")

	repo.fail = false
	m = press(t, m, "2")
	assert.Empty(t, m.Status())
	assert.Equal(t, []int{1}, openOf(m.Directives()))
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t, storage.NewMemoryRepository())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}
