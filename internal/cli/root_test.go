package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/runoshun/taskmenu/internal/app"
	"github.com/runoshun/taskmenu/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewRootCommand_NoArgs_RunsMenu(t *testing.T) {
	root := NewRootCommand(newTestContainer(), "test-version")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetIn(strings.NewReader("3\n5\n"))
	root.SetArgs([]string{})

	err := root.Execute()

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Task Manager")
	assert.Contains(t, out.String(), "No tasks available.")
}

func TestNewRootCommand_BuildsContainerFromFlags(t *testing.T) {
	seed := writeFile(t, "tasks.yaml", `
tasks:
  - kind: Simple
    description: Buy milk
  - kind: Timed
    description: File taxes
    due: "2025-04-15"
`)
	root := NewRootCommand(nil, "test-version")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader("3\n5\n"))
	root.SetArgs([]string{"--seed", seed, "--no-color"})

	err := root.Execute()

	require.NoError(t, err)
	assert.Contains(t, out.String(), "1. [Simple Task] [Pending] Buy milk\n")
	assert.Contains(t, out.String(), "2. [Timed Task] [Pending] (Due: 2025-04-15) File taxes\n")
}

func TestNewRootCommand_SeedError(t *testing.T) {
	seed := writeFile(t, "tasks.yaml", "tasks:\n  - kind: Bogus\n    description: Z\n")
	c := newTestContainer()
	root := NewRootCommand(c, "test-version")
	root.SetOut(&bytes.Buffer{})
	root.SetIn(strings.NewReader("5\n"))
	root.SetArgs([]string{"--seed", seed})

	err := root.Execute()

	assert.ErrorIs(t, err, domain.ErrUnsupportedKind)
	assert.Equal(t, 0, c.Tasks.Len())
}

func TestNewRootCommand_SeedFileMissing(t *testing.T) {
	root := NewRootCommand(newTestContainer(), "test-version")
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--seed", filepath.Join(t.TempDir(), "missing.yaml")})

	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read seed file")
}

func TestNewRootCommand_ConfigWarnings(t *testing.T) {
	cfg := writeFile(t, domain.ConfigFileName, "[agents]\nx = 1\n")
	root := NewRootCommand(nil, "test-version")
	var stderr bytes.Buffer
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader("5\n"))
	root.SetArgs([]string{"--config", cfg})

	err := root.Execute()

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), `Warning: unknown config section "agents" ignored`)
}

func TestNewRootCommand_InjectedContainerIgnoresConfigFlags(t *testing.T) {
	c := newTestContainer()
	seed := writeFile(t, "tasks.yaml", "tasks:\n  - kind: Simple\n    description: a\n")
	root := NewRootCommand(c, "test-version")
	root.SetOut(&bytes.Buffer{})
	root.SetIn(strings.NewReader("5\n"))
	root.SetArgs([]string{"--no-color", "--log-level", "debug", "--seed", seed})

	err := root.Execute()

	require.NoError(t, err)
	assert.True(t, c.Config.ColorEnabled())
	assert.Equal(t, domain.DefaultLogLevel, c.Config.Log.Level)
	assert.Equal(t, 1, c.Tasks.Len())
}

func TestNewRootCommand_InvalidLogLevel(t *testing.T) {
	root := NewRootCommand(nil, "test-version")
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader("5\n"))
	root.SetArgs([]string{"--log-level", "verbose"})

	err := root.Execute()

	assert.ErrorIs(t, err, domain.ErrInvalidLogLevel)
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand(newTestContainer(), "1.2.3")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})

	err := root.Execute()

	require.NoError(t, err)
	assert.Contains(t, out.String(), "1.2.3")
}

func TestNewRootCommand_TUI(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	var got *app.Container
	launchTUIFunc = func(c *app.Container) error {
		got = c
		return nil
	}

	c := newTestContainer()
	root := NewRootCommand(c, "test-version")
	root.SetArgs([]string{"tui"})

	err := root.Execute()

	require.NoError(t, err)
	assert.Same(t, c, got)
}

func TestNewRootCommand_TUI_BuildsContainer(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	var got *app.Container
	launchTUIFunc = func(c *app.Container) error {
		got = c
		return nil
	}

	root := NewRootCommand(nil, "test-version")
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"tui", "--log-level", "debug"})

	err := root.Execute()

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "debug", got.Config.Log.Level)
}
