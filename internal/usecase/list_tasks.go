package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskmenu/internal/domain"
)

// NoTasksMessage is reported when the registry is empty.
const NoTasksMessage = "No tasks available."

// TaskEntry is one listed task.
type TaskEntry struct {
	Task     *domain.Task
	Display  string // Rendered task
	Position int    // 1-based position
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Message string      // Set instead of entries when the registry is empty
	Entries []TaskEntry // Tasks in insertion order
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{tasks: tasks}
}

// Execute lists every task in insertion order.
func (uc *ListTasks) Execute(_ context.Context) (*ListTasksOutput, error) {
	if uc.tasks.Len() == 0 {
		return &ListTasksOutput{Message: NoTasksMessage}, nil
	}

	tasks, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	entries := make([]TaskEntry, 0, len(tasks))
	for i, task := range tasks {
		entries = append(entries, TaskEntry{
			Position: i + 1,
			Display:  task.Display(),
			Task:     task,
		})
	}
	return &ListTasksOutput{Entries: entries}, nil
}

// Lines renders the output the way the menu prints it.
func (out *ListTasksOutput) Lines() []string {
	if len(out.Entries) == 0 {
		return []string{out.Message}
	}
	lines := make([]string, 0, len(out.Entries))
	for _, e := range out.Entries {
		lines = append(lines, fmt.Sprintf("%d. %s", e.Position, e.Display))
	}
	return lines
}
