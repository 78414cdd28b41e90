// Package cli provides the command-line interface for taskmenu.
package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/taskmenu/internal/app"
	"github.com/runoshun/taskmenu/internal/tui"
	"github.com/runoshun/taskmenu/internal/usecase"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupShell = "shell"
	groupTools = "tools"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// rootOptions holds the persistent flags of the root command.
type rootOptions struct {
	ConfigPath string
	SeedPath   string
	LogLevel   string
	NoColor    bool
}

// NewRootCommand creates the root command for taskmenu.
// If c is nil, the container is built from the flags before any command runs.
// A non-nil c is used as given: --config, --log-level and --no-color only
// shape a container built from flags, while --seed imports into c either way.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var opts rootOptions

	root := &cobra.Command{
		Use:   "taskmenu",
		Short: "In-memory task tracker with an interactive menu",
		Long: `taskmenu keeps a list of tasks for the lifetime of the process.

Tasks are either Simple or Timed (carrying a due date). Add, view and
complete them from the numbered menu, or run 'taskmenu tui' for a
full-screen view. Nothing is saved when the program exits.

Examples:
  # Start the menu
  taskmenu

  # Start with tasks loaded from a YAML seed file
  taskmenu --seed tasks.yaml

  # Log task events to stderr
  taskmenu --log-level info`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				built, err := app.New(app.Options{
					ConfigPath: opts.ConfigPath,
					LogLevel:   opts.LogLevel,
					NoColor:    opts.NoColor,
					LogOutput:  cmd.ErrOrStderr(),
				})
				if err != nil {
					return err
				}
				c = built
			}

			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}

			if opts.SeedPath != "" {
				return seedTasks(cmd, c, opts.SeedPath)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			menu := NewMenu(c, cmd.InOrStdin(), cmd.OutOrStdout())
			return menu.Run(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Path to a TOML config file")
	root.PersistentFlags().StringVar(&opts.SeedPath, "seed", "", "Load tasks from a YAML file at start-up")
	root.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "Disable styled output")

	root.AddGroup(
		&cobra.Group{ID: groupShell, Title: "Interfaces:"},
		&cobra.Group{ID: groupTools, Title: "Tools:"},
	)

	// The container is resolved lazily so subcommands see the one built in PersistentPreRunE.
	resolve := func() *app.Container { return c }

	tuiCmd := newTUICommand(resolve)
	tuiCmd.GroupID = groupShell

	checkCmd := newCheckCommand(resolve)
	checkCmd.GroupID = groupTools

	root.AddCommand(tuiCmd, checkCmd)

	return root
}

// seedTasks imports tasks from a YAML file into the registry.
func seedTasks(cmd *cobra.Command, c *app.Container, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	uc := c.ImportTasksUseCase()
	_, err = uc.Execute(cmd.Context(), usecase.ImportTasksInput{Content: string(content)})
	if err != nil {
		return fmt.Errorf("seed %s: %w", path, err)
	}
	return nil
}

// newTUICommand creates the tui command.
func newTUICommand(container func() *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch full-screen interface",
		Long: `Launch the full-screen terminal interface for the same task list.

Keys:
  a       add a simple task
  t       add a timed task
  enter   complete the selected task
  q       quit`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(container())
		},
	}
}

// launchTUI runs the bubbletea program until the user quits.
func launchTUI(c *app.Container) error {
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
