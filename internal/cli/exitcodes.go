package cli

// Exit codes for CLI commands.
//
// Domain conditions (unknown id, invalid priority, empty export, malformed
// store file) are reported but exit zero: the command itself ran. Non-zero
// is reserved for invocations that could not be parsed and for store write
// failures.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a fatal error, in practice an inability to write
	// the store or export file (disk full, permissions).
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: unknown operations, missing or non-numeric id arguments,
	// or invalid flag combinations.
	ExitUsage = 2
)
