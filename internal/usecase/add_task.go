// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskmenu/internal/domain"
)

// ObserverFactory builds an observer for a newly added task.
// position is the task's 1-based position in the registry.
type ObserverFactory func(position int, task *domain.Task) domain.Observer

// AddTaskInput contains the parameters for adding a task.
// Fields are ordered to minimize memory padding.
type AddTaskInput struct {
	Args        []string    // Variant arguments (KindTimed: due date first)
	Kind        domain.Kind // Task kind (required)
	Description string      // Task description
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task     *domain.Task // The created task
	Message  string       // Confirmation for the user
	Position int          // 1-based position in the registry
}

// AddTask is the use case for adding a task to the registry.
type AddTask struct {
	tasks     domain.TaskRepository
	logger    domain.Logger
	observers []ObserverFactory
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, logger domain.Logger) *AddTask {
	return &AddTask{
		tasks:  tasks,
		logger: logger,
	}
}

// WithObservers sets factories whose observers are attached to every new task.
func (uc *AddTask) WithObservers(factories ...ObserverFactory) *AddTask {
	uc.observers = append(uc.observers, factories...)
	return uc
}

// Execute creates a task through the factory and appends it.
// The registry is left unchanged if the factory rejects the kind.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	task, err := domain.NewTask(in.Kind, in.Description, in.Args...)
	if err != nil {
		return nil, err
	}

	index, err := uc.tasks.Append(task)
	if err != nil {
		return nil, fmt.Errorf("append task: %w", err)
	}
	position := index + 1

	for _, factory := range uc.observers {
		task.Attach(factory(position, task))
	}

	if uc.logger != nil {
		uc.logger.Info(position, "task", fmt.Sprintf("added %s task: %q", in.Kind, in.Description))
	}

	return &AddTaskOutput{
		Task:     task,
		Position: position,
		Message:  fmt.Sprintf("Task added: \"%s\"", in.Description),
	}, nil
}
