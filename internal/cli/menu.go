package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/taskmenu/internal/app"
	"github.com/runoshun/taskmenu/internal/domain"
	"github.com/runoshun/taskmenu/internal/usecase"
)

// Menu choices.
const (
	choiceAddSimple = "1"
	choiceAddTimed  = "2"
	choiceView      = "3"
	choiceComplete  = "4"
	choiceExit      = "5"
)

// menuStyles holds the lipgloss styles used by the line menu.
type menuStyles struct {
	Title   lipgloss.Style
	Option  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// newMenuStyles builds styles bound to the output writer.
// Writers that are not terminals get plain text.
func newMenuStyles(out io.Writer, color bool) menuStyles {
	r := lipgloss.NewRenderer(out)
	if !color {
		plain := r.NewStyle()
		return menuStyles{Title: plain, Option: plain, Success: plain, Error: plain, Muted: plain}
	}
	return menuStyles{
		Title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#6C5CE7")),
		Option:  r.NewStyle().Foreground(lipgloss.Color("#DFE6E9")),
		Success: r.NewStyle().Foreground(lipgloss.Color("#00B894")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("#D63031")),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("#636E72")),
	}
}

// Menu is the numbered line menu over the task registry.
type Menu struct {
	c      *app.Container
	in     *bufio.Reader
	out    io.Writer
	styles menuStyles
}

// NewMenu creates a menu reading choices from in and writing to out.
func NewMenu(c *app.Container, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		c:      c,
		in:     bufio.NewReader(in),
		out:    out,
		styles: newMenuStyles(out, c.Config.ColorEnabled()),
	}
}

// Run shows the menu until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()
		choice, err := m.prompt("Choose an option: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				m.println("")
				m.println(m.styles.Muted.Render("Exiting the Task Manager."))
				return nil
			}
			return err
		}

		switch strings.TrimSpace(choice) {
		case choiceAddSimple:
			err = m.addSimple(ctx)
		case choiceAddTimed:
			err = m.addTimed(ctx)
		case choiceView:
			err = m.view(ctx)
		case choiceComplete:
			err = m.complete(ctx)
		case choiceExit:
			m.println(m.styles.Muted.Render("Exiting the Task Manager."))
			return nil
		default:
			m.println(m.styles.Error.Render("Invalid choice. Please try again."))
		}

		if errors.Is(err, io.EOF) {
			m.println("")
			m.println(m.styles.Muted.Render("Exiting the Task Manager."))
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) printMenu() {
	m.println("")
	m.println(m.styles.Title.Render("Task Manager"))
	m.println(m.styles.Option.Render("1. Add Simple Task"))
	m.println(m.styles.Option.Render("2. Add Timed Task"))
	m.println(m.styles.Option.Render("3. View Tasks"))
	m.println(m.styles.Option.Render("4. Complete Task"))
	m.println(m.styles.Option.Render("5. Exit"))
}

func (m *Menu) addSimple(ctx context.Context) error {
	description, err := m.prompt("Enter the task description: ")
	if err != nil {
		return err
	}
	m.add(ctx, usecase.AddTaskInput{Kind: domain.KindSimple, Description: description})
	return nil
}

func (m *Menu) addTimed(ctx context.Context) error {
	description, err := m.prompt("Enter the task description: ")
	if err != nil {
		return err
	}
	dueDate, err := m.prompt("Enter the due date: ")
	if err != nil {
		return err
	}
	m.add(ctx, usecase.AddTaskInput{Kind: domain.KindTimed, Description: description, Args: []string{dueDate}})
	return nil
}

func (m *Menu) add(ctx context.Context, in usecase.AddTaskInput) {
	out, err := m.c.AddTaskUseCase().Execute(ctx, in)
	if err != nil {
		m.println(m.styles.Error.Render("Error: " + err.Error()))
		return
	}
	m.println(m.styles.Success.Render(out.Message))
}

func (m *Menu) view(ctx context.Context) error {
	out, err := m.c.ListTasksUseCase().Execute(ctx)
	if err != nil {
		return err
	}
	for _, line := range out.Lines() {
		m.println(line)
	}
	return nil
}

func (m *Menu) complete(ctx context.Context) error {
	answer, err := m.prompt("Enter the task number to complete: ")
	if err != nil {
		return err
	}
	number, convErr := strconv.Atoi(strings.TrimSpace(answer))
	if convErr != nil {
		m.println(m.styles.Error.Render("Invalid task number."))
		return nil
	}

	out, err := m.c.CompleteTaskUseCase().Execute(ctx, usecase.CompleteTaskInput{Index: number - 1})
	if errors.Is(err, domain.ErrIndexOutOfRange) {
		m.println(m.styles.Error.Render("Invalid task index."))
		return nil
	}
	if err != nil {
		return err
	}
	m.println(m.styles.Success.Render(out.Message))
	return nil
}

// prompt prints label and reads one line without its line ending.
// A final line without a newline is returned before io.EOF is reported.
func (m *Menu) prompt(label string) (string, error) {
	_, _ = io.WriteString(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (m *Menu) println(s string) {
	_, _ = fmt.Fprintln(m.out, s)
}
