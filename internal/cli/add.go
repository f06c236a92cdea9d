package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"todo/internal/models"
	taskservice "todo/internal/services/task"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add <task-name>",
		Aliases: []string{"a"},
		Short:   "Add a new task",
		Long: `Add a new task with an optional priority.

Examples:
  # Default medium priority
  todo add "Buy milk"

  # Urgent task
  todo add "Fix bug" --priority high

  # Quiet mode for bash capture
  TASK_ID=$(todo add "Fix bug" -p high --quiet)
`,
		Args: cobra.ExactArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().StringP("priority", "p", string(models.DefaultPriority), "Priority: high, medium, low")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	priorityStr, _ := cmd.Flags().GetString("priority")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	c, err := FromContext(cmd.Context())
	if err != nil {
		return err
	}

	priority, err := models.ParsePriority(priorityStr)
	if err != nil {
		// Domain condition, not a usage error: report and exit cleanly.
		if fmtErr := formatter.Error("INVALID_PRIORITY", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return nil
	}

	created, err := c.App.TaskService.Add(args[0], priority)
	switch {
	case errors.Is(err, taskservice.ErrEmptyName), errors.Is(err, taskservice.ErrInvalidPriority):
		if fmtErr := formatter.Error("INVALID_TASK", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return nil
	case err != nil:
		// Store write failure is the one fatal path.
		if fmtErr := formatter.Error("SAVE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(ExitError)
	}

	if handled, err := formatter.Success(*created); handled || err != nil {
		return err
	}

	fmt.Printf("Task added: %s (ID: %d, priority: %s)\n", created.Name, created.ID, created.Priority)
	return nil
}
