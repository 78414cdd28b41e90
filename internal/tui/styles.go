package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/taskmenu/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary   lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Pending   lipgloss.Color
	Completed lipgloss.Color
	Selected  lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Pending:   lipgloss.Color("#74B9FF"), // Light blue
	Completed: lipgloss.Color("#00B894"), // Green
	Selected:  lipgloss.Color("#FFEAA7"), // Yellow
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App       lipgloss.Style
	Header    lipgloss.Style
	Item      lipgloss.Style
	Selected  lipgloss.Style
	Pending   lipgloss.Style
	Completed lipgloss.Style
	Message   lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
	Prompt    lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App:       lipgloss.NewStyle().Padding(1, 2),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary).MarginBottom(1),
		Item:      lipgloss.NewStyle().PaddingLeft(2),
		Selected:  lipgloss.NewStyle().Foreground(Colors.Selected).Bold(true),
		Pending:   lipgloss.NewStyle().Foreground(Colors.Pending),
		Completed: lipgloss.NewStyle().Foreground(Colors.Completed).Faint(true),
		Message:   lipgloss.NewStyle().Foreground(Colors.Success),
		Error:     lipgloss.NewStyle().Foreground(Colors.Error),
		Help:      lipgloss.NewStyle().Foreground(Colors.Muted),
		Prompt:    lipgloss.NewStyle().Foreground(Colors.Primary),
	}
}

// PlainStyles returns styles without colors or attributes.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		App:       plain.Padding(1, 2),
		Header:    plain.MarginBottom(1),
		Item:      plain.PaddingLeft(2),
		Selected:  plain,
		Pending:   plain,
		Completed: plain,
		Message:   plain,
		Error:     plain,
		Help:      plain,
		Prompt:    plain,
	}
}

// StatusStyle returns the style for a task status.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	if status.IsTerminal() {
		return s.Completed
	}
	return s.Pending
}
