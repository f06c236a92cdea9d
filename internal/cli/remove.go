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

// RemoveCmd returns the remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a task",
		Long:    "Remove the task with the given id. Remaining ids are not renumbered.",
		Args:    cobra.ExactArgs(1),
		RunE:    runRemove,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	// A non-numeric id is a malformed invocation, not a domain condition.
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

	removed, err := c.App.TaskService.Delete(id)
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

	if handled, err := formatter.Success(*removed); handled || err != nil {
		return err
	}

	fmt.Printf("Deleted task: %s\n", removed.Name)
	return nil
}
