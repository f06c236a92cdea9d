package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"todo/internal/cli/styles"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all tasks",
		Long:    "List all tasks: pending before completed, most urgent first.",
		Args:    cobra.NoArgs,
		RunE:    runList,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	c, err := FromContext(cmd.Context())
	if err != nil {
		return err
	}

	tasks := c.App.TaskService.List()

	if quietMode {
		for _, t := range tasks {
			fmt.Printf("%d\n", t.ID)
		}
		return nil
	}

	if jsonOutput {
		if handled, err := formatter.Success(tasks); handled || err != nil {
			return err
		}
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	fmt.Println(styles.HeaderStyle.Render(fmt.Sprintf("%-5s %-7s %-40s %s", "ID", "STATUS", "NAME", "PRIORITY")))
	for _, t := range tasks {
		status := "□"
		if t.Done {
			status = "✓"
		}
		row := fmt.Sprintf("%-5d %-7s %-40s %s", t.ID, status, t.Name, t.Priority)
		fmt.Println(styles.ForTask(t).Render(row))
	}

	return nil
}
