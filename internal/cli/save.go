package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// SaveCmd returns the save subcommand
func SaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "save",
		Aliases: []string{"s"},
		Short:   "Force a rewrite of the store file",
		Long: `Persist the collection without mutating it. Mutating commands already
save on success; this exists as an explicit re-write trigger.`,
		Args: cobra.NoArgs,
		RunE: runSave,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "No output on success")

	return cmd
}

func runSave(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	c, err := FromContext(cmd.Context())
	if err != nil {
		return err
	}

	if err := c.App.TaskService.Save(); err != nil {
		if fmtErr := formatter.Error("SAVE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(ExitError)
	}

	if quietMode {
		return nil
	}
	if jsonOutput {
		if handled, err := formatter.Success(map[string]string{"file": c.Store.Path()}); handled || err != nil {
			return err
		}
	}

	fmt.Printf("Tasks saved to %s\n", c.Store.Path())
	return nil
}
