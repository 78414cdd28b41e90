package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskmenu/internal/domain"
)

// CompleteTaskInput contains the parameters for completing a task.
type CompleteTaskInput struct {
	Index int // 0-based registry index
}

// CompleteTaskOutput contains the result of completing a task.
type CompleteTaskOutput struct {
	Task     *domain.Task
	Message  string
	Position int // 1-based position
}

// CompleteTask is the use case for marking a task complete.
type CompleteTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(tasks domain.TaskRepository, logger domain.Logger) *CompleteTask {
	return &CompleteTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute completes the task at the given index.
// Completing an already completed task is accepted and notifies observers again.
// Returns domain.ErrIndexOutOfRange for an index outside the registry.
func (uc *CompleteTask) Execute(_ context.Context, in CompleteTaskInput) (*CompleteTaskOutput, error) {
	task, err := uc.tasks.At(in.Index)
	if err != nil {
		return nil, err
	}

	alreadyCompleted := task.Completed
	task.Complete()
	position := in.Index + 1

	if uc.logger != nil {
		if alreadyCompleted {
			uc.logger.Debug(position, "task", "completed again")
		} else {
			uc.logger.Info(position, "task", fmt.Sprintf("completed: %q", task.Description))
		}
	}

	return &CompleteTaskOutput{
		Task:     task,
		Position: position,
		Message:  fmt.Sprintf("Task %d marked as completed.", position),
	}, nil
}
