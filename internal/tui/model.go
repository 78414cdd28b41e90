// Package tui provides the full-screen terminal interface for taskmenu.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/taskmenu/internal/app"
	"github.com/runoshun/taskmenu/internal/domain"
	"github.com/runoshun/taskmenu/internal/usecase"
)

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal      Mode = iota
	ModeDescription      // Entering a task description
	ModeDueDate          // Entering the due date of a timed task
)

// Model is the TUI model.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Dependencies
	container *app.Container

	// State
	entries []usecase.TaskEntry
	err     error
	message string

	// Pending add
	pendingKind        domain.Kind
	pendingDescription string

	// Components
	keys   KeyMap
	styles Styles
	input  textinput.Model

	// Numeric state
	cursor int
	width  int
	height int
	mode   Mode
}

// New creates a new TUI model over the container's registry.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.CharLimit = 500

	styles := DefaultStyles()
	if !c.Config.ColorEnabled() {
		styles = PlainStyles()
	}

	return &Model{
		container: c,
		keys:      DefaultKeyMap(),
		styles:    styles,
		input:     ti,
		mode:      ModeNormal,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

// loadTasks reads the task list.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background())
		if err != nil {
			return MsgTasksLoaded{Err: err}
		}
		return MsgTasksLoaded{Entries: out.Entries}
	}
}

// addTask adds a task and reports the result.
func (m *Model) addTask(in usecase.AddTaskInput) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.AddTaskUseCase().Execute(context.Background(), in)
		if err != nil {
			return MsgTaskAdded{Err: err}
		}
		return MsgTaskAdded{Message: out.Message}
	}
}

// completeTask completes the task at the 0-based index.
func (m *Model) completeTask(index int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.CompleteTaskUseCase().Execute(context.Background(), usecase.CompleteTaskInput{Index: index})
		if err != nil {
			return MsgTaskCompleted{Err: err}
		}
		return MsgTaskCompleted{Message: out.Message}
	}
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case MsgTasksLoaded:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.entries = msg.Entries
		m.clampCursor()
		return m, nil

	case MsgTaskAdded:
		m.setResult(msg.Message, msg.Err)
		return m, m.loadTasks()

	case MsgTaskCompleted:
		m.setResult(msg.Message, msg.Err)
		return m, m.loadTasks()

	case tea.KeyMsg:
		if m.mode == ModeNormal {
			return m.handleNormalKey(msg)
		}
		return m.handleInputKey(msg)
	}

	if m.mode != ModeNormal {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Complete):
		if len(m.entries) == 0 {
			return m, nil
		}
		return m, m.completeTask(m.entries[m.cursor].Position - 1)
	case key.Matches(msg, m.keys.AddSimple):
		return m, m.startInput(domain.KindSimple)
	case key.Matches(msg, m.keys.AddTimed):
		return m, m.startInput(domain.KindTimed)
	}
	return m, nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.resetInput()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		value := m.input.Value()
		if m.mode == ModeDescription && m.pendingKind == domain.KindTimed {
			m.pendingDescription = value
			m.mode = ModeDueDate
			m.input.Reset()
			m.input.Placeholder = "Due date"
			return m, nil
		}
		in := usecase.AddTaskInput{Kind: m.pendingKind, Description: value}
		if m.mode == ModeDueDate {
			in.Description = m.pendingDescription
			in.Args = []string{value}
		}
		m.resetInput()
		return m, m.addTask(in)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) startInput(kind domain.Kind) tea.Cmd {
	m.mode = ModeDescription
	m.pendingKind = kind
	m.pendingDescription = ""
	m.message = ""
	m.err = nil
	m.input.Reset()
	m.input.Placeholder = "Task description"
	return m.input.Focus()
}

func (m *Model) resetInput() {
	m.mode = ModeNormal
	m.pendingKind = ""
	m.pendingDescription = ""
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) setResult(message string, err error) {
	m.message = message
	m.err = err
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("Task Manager"))
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(m.styles.Help.Render(usecase.NoTasksMessage))
		b.WriteString("\n")
	}
	for i, e := range m.entries {
		line := fmt.Sprintf("%d. %s", e.Position, m.styles.StatusStyle(e.Task.Status()).Render(e.Display))
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("> ") + line)
		} else {
			b.WriteString(m.styles.Item.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch m.mode {
	case ModeDescription:
		b.WriteString(m.styles.Prompt.Render(fmt.Sprintf("New %s task: ", m.pendingKind)))
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case ModeDueDate:
		b.WriteString(m.styles.Prompt.Render("Due date: "))
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case ModeNormal:
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(errorText(m.err)))
		b.WriteString("\n")
	} else if m.message != "" {
		b.WriteString(m.styles.Message.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString(m.helpView())
	return m.styles.App.Render(b.String())
}

func (m *Model) helpView() string {
	var parts []string
	for _, binding := range m.keys.ShortHelp() {
		h := binding.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.styles.Help.Render(strings.Join(parts, " • "))
}

// errorText maps domain errors to the messages the menu uses.
func errorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrIndexOutOfRange):
		return "Invalid task index."
	default:
		return "Error: " + err.Error()
	}
}

// Ensure Model implements tea.Model.
var _ tea.Model = (*Model)(nil)
