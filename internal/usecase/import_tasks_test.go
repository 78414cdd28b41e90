package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/taskmenu/internal/domain"
	"github.com/runoshun/taskmenu/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedContent = `
tasks:
  - kind: Simple
    description: Buy milk
  - kind: Timed
    description: File taxes
    due: "2025-04-15"
`

func TestImportTasks_Execute(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	logger := &testutil.MockLogger{}
	uc := NewImportTasks(NewAddTask(repo, nil), logger)

	out, err := uc.Execute(context.Background(), ImportTasksInput{Content: seedContent})

	require.NoError(t, err)
	require.Len(t, out.Added, 2)
	assert.Equal(t, 1, out.Added[0].Position)
	assert.Equal(t, 2, out.Added[1].Position)
	require.Len(t, repo.Tasks, 2)
	assert.Equal(t, "[Simple Task] [Pending] Buy milk", repo.Tasks[0].Display())
	assert.Equal(t, "[Timed Task] [Pending] (Due: 2025-04-15) File taxes", repo.Tasks[1].Display())
	require.NotEmpty(t, logger.Entries)
	assert.Contains(t, logger.Entries[len(logger.Entries)-1].Msg, "imported 2 tasks")
}

func TestImportTasks_Execute_DryRun(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewImportTasks(NewAddTask(repo, nil), nil)

	out, err := uc.Execute(context.Background(), ImportTasksInput{Content: seedContent, DryRun: true})

	require.NoError(t, err)
	assert.Len(t, out.Drafts, 2)
	assert.Empty(t, out.Added)
	assert.Equal(t, 0, repo.Len())
}

func TestImportTasks_Execute_InvalidEntryAddsNothing(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewImportTasks(NewAddTask(repo, nil), nil)

	_, err := uc.Execute(context.Background(), ImportTasksInput{Content: `
tasks:
  - kind: Simple
    description: fine
  - kind: Bogus
    description: Z
`})

	assert.ErrorIs(t, err, domain.ErrUnsupportedKind)
	assert.Equal(t, 0, repo.Len())
}
