package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskmenu/internal/domain"
)

// ImportTasksInput contains the parameters for importing tasks.
type ImportTasksInput struct {
	Content string // YAML seed document
	DryRun  bool   // If true, parse and validate without adding tasks
}

// ImportTasksOutput contains the result of importing tasks.
type ImportTasksOutput struct {
	Drafts []domain.TaskDraft // Parsed drafts, in document order
	Added  []*AddTaskOutput   // Added tasks (empty in dry-run mode)
}

// ImportTasks is the use case for adding tasks from a seed document.
type ImportTasks struct {
	addTask *AddTask
	logger  domain.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(addTask *AddTask, logger domain.Logger) *ImportTasks {
	return &ImportTasks{
		addTask: addTask,
		logger:  logger,
	}
}

// Execute parses the document and adds its tasks in order.
// Nothing is added if any entry is invalid.
func (uc *ImportTasks) Execute(ctx context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	drafts, err := domain.ParseTaskDrafts(in.Content)
	if err != nil {
		return nil, err
	}

	out := &ImportTasksOutput{Drafts: drafts}
	if in.DryRun {
		return out, nil
	}

	out.Added = make([]*AddTaskOutput, 0, len(drafts))
	for _, d := range drafts {
		added, err := uc.addTask.Execute(ctx, AddTaskInput{
			Kind:        d.Kind,
			Description: d.Description,
			Args:        d.Args(),
		})
		if err != nil {
			return nil, fmt.Errorf("import %q: %w", d.Description, err)
		}
		out.Added = append(out.Added, added)
	}

	if uc.logger != nil {
		uc.logger.Info(0, "import", fmt.Sprintf("imported %d tasks", len(out.Added)))
	}
	return out, nil
}
