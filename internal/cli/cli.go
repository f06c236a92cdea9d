// Package cli implements the todo command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"todo/internal/app"
	"todo/internal/cli/styles"
	"todo/internal/config"
	"todo/internal/store"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App
	Config *config.Config
	Store  *store.FileStore
}

// NewCLI initializes the CLI: loads config, opens the store and builds the
// application container. A malformed store file is reported and degraded to
// an empty collection; the file on disk stays untouched until the next save.
func NewCLI(cmd *cobra.Command) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read config, using defaults: %v\n", err)
		slog.Warn("config load failed", "error", err)
		cfg = config.Default()
	}

	path := cfg.StoreFile
	if fileFlag := cmd.Root().PersistentFlags().Lookup("file"); fileFlag != nil && fileFlag.Changed {
		path = fileFlag.Value.String()
	}

	st := store.New(path)
	tasks, err := st.Load()
	if err != nil {
		// Degraded read path: the in-memory view starts empty, the data on
		// disk survives until the next save overwrites it.
		fmt.Fprintln(os.Stderr, "Error loading tasks file. Starting with empty list")
		slog.Warn("store load failed", "path", path, "error", err)
		tasks = nil
	}

	styles.Init(cfg.ColorScheme)

	return &CLI{
		App:    app.New(st, tasks, cfg.ExportDir),
		Config: cfg,
		Store:  st,
	}, nil
}
