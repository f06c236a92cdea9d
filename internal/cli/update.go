package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"todo/internal/models"
	taskservice "todo/internal/services/task"
)

// UpdateCmd returns the update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "update <id>",
		Aliases: []string{"u"},
		Short:   "Update a task",
		Long: `Update the name and/or priority of a task.

An invalid priority aborts the whole update: the name is left unchanged too.

Examples:
  todo update 3 --name "Buy oat milk"
  todo update 3 -p high
  todo update 3 -n "Buy oat milk" -p low
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().StringP("name", "n", "", "New task name")
	cmd.Flags().StringP("priority", "p", "", "New priority: high, medium, low")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid task ID: %s", args[0])
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	nameFlag := cmd.Flags().Lookup("name")
	priorityFlag := cmd.Flags().Lookup("priority")

	// At least one update field must be provided.
	if !nameFlag.Changed && !priorityFlag.Changed {
		return errors.New("at least one of --name or --priority must be specified")
	}

	c, err := FromContext(cmd.Context())
	if err != nil {
		return err
	}

	req := taskservice.UpdateRequest{ID: id}
	if nameFlag.Changed {
		name, _ := cmd.Flags().GetString("name")
		req.Name = &name
	}
	if priorityFlag.Changed {
		raw, _ := cmd.Flags().GetString("priority")
		priority, err := models.ParsePriority(raw)
		if err != nil {
			// Rejected before the service runs, so the name is untouched too.
			if fmtErr := formatter.Error("INVALID_PRIORITY", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			return nil
		}
		req.Priority = &priority
	}

	updated, err := c.App.TaskService.Update(req)
	switch {
	case errors.Is(err, taskservice.ErrTaskNotFound):
		if fmtErr := formatter.Error("TASK_NOT_FOUND", fmt.Sprintf("No task found with ID %d", id)); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return nil
	case errors.Is(err, taskservice.ErrInvalidPriority), errors.Is(err, taskservice.ErrEmptyName):
		if fmtErr := formatter.Error("INVALID_UPDATE", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return nil
	case err != nil:
		if fmtErr := formatter.Error("SAVE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(ExitError)
	}

	if handled, err := formatter.Success(*updated); handled || err != nil {
		return err
	}

	fmt.Printf("Updated task %d\n", updated.ID)
	return nil
}
