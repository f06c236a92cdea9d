package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "todo",
		Short: "todo - a personal task tracker for your terminal",
		Long: `todo keeps a list of short tasks with a priority level in a single
JSON file next to you, so it can be inspected and hand-edited at any time.

Pending tasks always list before completed ones, most urgent first.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Tests inject a pre-built CLI through the context.
			if _, err := FromContext(cmd.Context()); err == nil {
				return nil
			}
			c, err := NewCLI(cmd)
			if err != nil {
				return err
			}
			cmd.SetContext(WithCLI(cmd.Context(), c))
			return nil
		},
	}

	root.PersistentFlags().String("file", "", "Store file path (overrides config)")

	root.AddCommand(AddCmd())
	root.AddCommand(ListCmd())
	root.AddCommand(RemoveCmd())
	root.AddCommand(UpdateCmd())
	root.AddCommand(MarkCmd())
	root.AddCommand(ExportCmd())
	root.AddCommand(SaveCmd())

	return root
}

// Execute runs the CLI. A nil return means the invocation parsed and ran;
// domain conditions are reported inside the commands without turning into
// errors here.
func Execute() error {
	return NewRootCmd().Execute()
}
