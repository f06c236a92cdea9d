package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	taskservice "todo/internal/services/task"
)

// MarkCmd returns the mark subcommand
func MarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mark <id>",
		Aliases: []string{"m"},
		Short:   "Toggle a task between pending and completed",
		Args:    cobra.ExactArgs(1),
		RunE:    runMark,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runMark(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid task ID: %s", args[0])
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	c, err := FromContext(cmd.Context())
	if err != nil {
		return err
	}

	toggled, err := c.App.TaskService.ToggleDone(id)
	switch {
	case errors.Is(err, taskservice.ErrTaskNotFound):
		if fmtErr := formatter.Error("TASK_NOT_FOUND", fmt.Sprintf("No task found with ID %d", id)); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return nil
	case err != nil:
		if fmtErr := formatter.Error("SAVE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(ExitError)
	}

	if handled, err := formatter.Success(*toggled); handled || err != nil {
		return err
	}

	fmt.Printf("Marked task %d as %s\n", toggled.ID, toggled.Status())
	return nil
}
