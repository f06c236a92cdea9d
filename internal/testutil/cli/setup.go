package cli

import (
	"path/filepath"
	"testing"

	"todo/internal/app"
	clipkg "todo/internal/cli"
	"todo/internal/cli/styles"
	"todo/internal/config"
	"todo/internal/store"
)

// SetupCLITest creates a CLI instance backed by a store file in a temp
// directory. This function is only for CLI tests and is isolated in a
// separate package to avoid import cycles when service tests import testutil.
func SetupCLITest(t *testing.T) (*clipkg.CLI, *store.FileStore) {
	t.Helper()

	dir := t.TempDir()
	st := store.New(filepath.Join(dir, "tasks.json"))

	cfg := config.Default()
	cfg.StoreFile = st.Path()
	cfg.ExportDir = dir
	styles.Init(cfg.ColorScheme)

	return buildCLI(t, st, cfg), st
}

// ReloadCLI rebuilds a CLI instance from whatever the store currently holds,
// simulating a fresh process invocation against the same file.
func ReloadCLI(t *testing.T, st *store.FileStore, cfg *config.Config) *clipkg.CLI {
	t.Helper()
	return buildCLI(t, st, cfg)
}

func buildCLI(t *testing.T, st *store.FileStore, cfg *config.Config) *clipkg.CLI {
	t.Helper()

	tasks, err := st.Load()
	if err != nil {
		t.Fatalf("Failed to load test store: %v", err)
	}

	return &clipkg.CLI{
		App:    app.New(st, tasks, cfg.ExportDir),
		Config: cfg,
		Store:  st,
	}
}
