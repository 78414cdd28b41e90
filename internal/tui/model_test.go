package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/taskmenu/internal/app"
	"github.com/runoshun/taskmenu/internal/domain"
	"github.com/runoshun/taskmenu/internal/infra/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (*Model, *app.Container) {
	t.Helper()
	off := false
	cfg := domain.NewDefaultConfig()
	cfg.Display.Color = &off
	c := app.NewWithDeps(cfg, memstore.New(), nil)
	return New(c), c
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// press delivers msg without running the returned command.
func press(t *testing.T, m *Model, msg tea.Msg) *Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(*Model)
	require.True(t, ok, "expected *Model from Update")
	return model
}

// send delivers msg and then feeds back every message produced by the returned command.
func send(t *testing.T, m *Model, msg tea.Msg) *Model {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(*Model)
	require.True(t, ok, "expected *Model from Update")
	for cmd != nil {
		next := cmd()
		switch next.(type) {
		case MsgTasksLoaded, MsgTaskAdded, MsgTaskCompleted:
			updated, cmd = model.Update(next)
			model = updated.(*Model)
		default:
			cmd = nil
		}
	}
	return model
}

func TestModel_InitLoadsTasks(t *testing.T) {
	m, _ := newTestModel(t)

	msg := m.Init()()

	loaded, ok := msg.(MsgTasksLoaded)
	require.True(t, ok)
	assert.NoError(t, loaded.Err)
	assert.Empty(t, loaded.Entries)
}

func TestModel_ViewEmpty(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()

	assert.Contains(t, view, "Task Manager")
	assert.Contains(t, view, "No tasks available.")
}

func TestModel_AddSimple(t *testing.T) {
	m, c := newTestModel(t)

	m = press(t, m, runeKey('a'))
	assert.Equal(t, ModeDescription, m.mode)
	m.input.SetValue("Buy milk")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, 1, c.Tasks.Len())
	assert.Equal(t, `Task added: "Buy milk"`, m.message)
	require.Len(t, m.entries, 1)
	assert.Contains(t, m.View(), "1. [Simple Task] [Pending] Buy milk")
}

func TestModel_AddTimed(t *testing.T) {
	m, c := newTestModel(t)

	m = press(t, m, runeKey('t'))
	m.input.SetValue("File taxes")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModeDueDate, m.mode)
	assert.Equal(t, 0, c.Tasks.Len())

	m.input.SetValue("2025-04-15")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, 1, c.Tasks.Len())
	task, err := c.Tasks.At(0)
	require.NoError(t, err)
	assert.Equal(t, "[Timed Task] [Pending] (Due: 2025-04-15) File taxes", task.Display())
	assert.Equal(t, ModeNormal, m.mode)
}

func TestModel_EscapeCancelsAdd(t *testing.T) {
	m, c := newTestModel(t)

	m = press(t, m, runeKey('a'))
	m.input.SetValue("never")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, 0, c.Tasks.Len())
}

func TestModel_CompleteSelected(t *testing.T) {
	m, c := newTestModel(t)
	for _, d := range []string{"first", "second"} {
		m = press(t, m, runeKey('a'))
		m.input.SetValue(d)
		m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "Task 2 marked as completed.", m.message)
	first, err := c.Tasks.At(0)
	require.NoError(t, err)
	second, err := c.Tasks.At(1)
	require.NoError(t, err)
	assert.False(t, first.Completed)
	assert.True(t, second.Completed)
	assert.Contains(t, m.View(), "2. [Simple Task] [Completed] second")
}

func TestModel_CompleteWithNoTasks(t *testing.T) {
	m, _ := newTestModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Same(t, m, updated)
}

func TestModel_CursorBounds(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, runeKey('a'))
	m.input.SetValue("only")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.cursor)
}

func TestModel_ShowsIndexError(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, MsgTaskCompleted{Err: domain.ErrIndexOutOfRange})

	assert.Contains(t, m.View(), "Invalid task index.")
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(runeKey('q'))

	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestModel_QuitKeyTypedInInput(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, runeKey('a'))

	m = press(t, m, runeKey('q'))

	assert.Equal(t, ModeDescription, m.mode)
	assert.True(t, strings.HasSuffix(m.input.Value(), "q"))
}
