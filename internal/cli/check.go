package cli

import (
	"fmt"
	"os"

	"github.com/runoshun/taskmenu/internal/app"
	"github.com/runoshun/taskmenu/internal/domain"
	"github.com/runoshun/taskmenu/internal/usecase"
	"github.com/spf13/cobra"
)

// newCheckCommand creates the check command.
func newCheckCommand(container func() *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "check <seed.yaml>",
		Short: "Validate a seed file without adding tasks",
		Long: `Validate a YAML seed file and preview the tasks it would add.

The file uses the same format as --seed. Nothing is added to the task list.

Examples:
  # Check a seed file before starting the menu with it
  taskmenu check tasks.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read seed file: %w", err)
			}

			uc := container().ImportTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ImportTasksInput{
				Content: string(content),
				DryRun:  true,
			})
			if err != nil {
				return fmt.Errorf("check %s: %w", args[0], err)
			}

			w := cmd.OutOrStdout()
			for i, d := range out.Drafts {
				task, err := domain.NewTask(d.Kind, d.Description, d.Args()...)
				if err != nil {
					return fmt.Errorf("check %s: task %d: %w", args[0], i+1, err)
				}
				_, _ = fmt.Fprintf(w, "%d. %s\n", i+1, task.Display())
			}
			_, _ = fmt.Fprintf(w, "%d tasks OK\n", len(out.Drafts))
			return nil
		},
	}
}
