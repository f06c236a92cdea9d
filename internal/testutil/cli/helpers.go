package cli

import (
	"context"
	"testing"

	clipkg "todo/internal/cli"
	"todo/internal/testutil"
)

// ExecuteCLICommand runs a full root command invocation with the test CLI
// injected through the context, so PersistentPreRunE skips its own setup.
func ExecuteCLICommand(t *testing.T, c *clipkg.CLI, args []string) (string, error) {
	t.Helper()

	if c == nil {
		t.Fatal("test CLI cannot be nil - SetupCLITest must be called first")
	}

	root := clipkg.NewRootCmd()
	root.SetArgs(args)
	root.SetContext(clipkg.WithCLI(context.Background(), c))

	// Disable usage output on error for cleaner test output
	root.SilenceUsage = true
	root.SilenceErrors = true

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = root.Execute()
	})

	return output, executeErr
}
