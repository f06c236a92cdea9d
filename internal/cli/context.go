package cli

import (
	"context"
	"errors"
)

type cliContextKey struct{}

// WithCLI stores the CLI instance in the context. Tests inject a pre-built
// instance this way instead of going through config and the real store path.
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliContextKey{}, c)
}

// FromContext retrieves the CLI instance placed by the root command's
// persistent hook.
func FromContext(ctx context.Context) (*CLI, error) {
	c, ok := ctx.Value(cliContextKey{}).(*CLI)
	if !ok || c == nil {
		return nil, errors.New("CLI not initialized")
	}
	return c, nil
}
