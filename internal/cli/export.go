package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"todo/internal/export"
)

// ExportCmd returns the export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "export",
		Aliases: []string{"e"},
		Short:   "Export tasks to a markdown document",
		Long: `Write the task list to a timestamped markdown file with separate
pending and completed sections. Earlier exports are never overwritten.`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().Bool("preview", false, "Render the exported document to the terminal")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (filename only)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	preview, _ := cmd.Flags().GetBool("preview")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	c, err := FromContext(cmd.Context())
	if err != nil {
		return err
	}

	filename, err := c.App.Exporter.Export(c.App.TaskService.List())
	switch {
	case errors.Is(err, export.ErrNothingToExport):
		if fmtErr := formatter.Error("NOTHING_TO_EXPORT", "No tasks to export."); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return nil
	case err != nil:
		if fmtErr := formatter.Error("EXPORT_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(ExitError)
	}

	if quietMode {
		fmt.Println(filename)
		return nil
	}
	if jsonOutput {
		if handled, err := formatter.Success(map[string]string{"filename": filename}); handled || err != nil {
			return err
		}
	}

	fmt.Printf("Tasks exported to %s\n", filename)

	if preview {
		if err := renderPreview(filename); err != nil {
			slog.Warn("export preview failed", "error", err)
		}
	}
	return nil
}

// renderPreview prints the generated markdown with terminal styling.
func renderPreview(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return err
	}

	out, err := renderer.Render(string(data))
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
