package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	coconutkit "github.com/jormungand/CoconutKit"
	"github.com/jormungand/CoconutKit/cli/tui"
	"github.com/jormungand/CoconutKit/shell"
	"github.com/jormungand/CoconutKit/shell/builtin"
)

// setupDemoStore creates an in-memory store pre-populated with a small
// namespace so the browser has something to show on first launch.
func setupDemoStore(ctx context.Context) (*coconutkit.InMemoryFileManager, error) {
	m, err := coconutkit.NewInMemoryFileManager(
		coconutkit.WithTotalCostLimit(256*1024),
		coconutkit.WithoutTerminalLog(),
	)
	if err != nil {
		return nil, err
	}

	dirs := []string{
		"/docs",
		"/docs/guides",
		"/media",
		"/src",
		"/src/internal",
		"/tmp",
	}
	for _, dir := range dirs {
		if err := m.CreateDirectory(ctx, dir, true); err != nil {
			return nil, err
		}
	}

	files := map[string]string{
		"/docs/readme.txt":        "Welcome to the CoconutKit browser.\n\nEverything you see here lives in memory and vanishes on exit.\n",
		"/docs/guides/install.md": "# Install\n\nAdd the module and create a file manager:\n\n    m, err := coconutkit.NewInMemoryFileManager()\n",
		"/docs/guides/limits.md":  "# Cost limits\n\nSet a byte budget and the store evicts the coldest payloads first.\n",
		"/media/banner.txt":       "  ___ ___   ___ ___  _ _ _   _ _____\n / __/ _ \\ / __/ _ \\| \\| | | | |_   _|\n| (_| (_) | (_| (_) | .` | |_| | | |\n \\___\\___/ \\___\\___/|_|\\_|\\___/  |_|\n",
		"/src/main.go":            "package main\n\nfunc main() {\n\tprintln(\"hello from the demo namespace\")\n}\n",
		"/src/internal/notes.txt": "Scratch notes for the demo tree.\n",
		"/tmp/scratch.bin":        "0123456789abcdef",
	}
	for path, content := range files {
		if err := m.WriteFile(ctx, path, []byte(content)); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func main() {
	ctx := context.Background()

	if os.Getenv("COCONUTKIT_TUI_DEBUG") != "" {
		if err := tui.InitDebugLog(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open debug log: %v\n", err)
			os.Exit(1)
		}
		defer tui.CloseDebugLog()
	}

	store, err := setupDemoStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up store: %v\n", err)
		os.Exit(1)
	}
	defer store.Shutdown(ctx)

	sh := shell.NewShell(store)
	if err := builtin.RegisterAll(sh); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to register commands: %v\n", err)
		os.Exit(1)
	}

	adapter := tui.NewStoreAdapter(ctx, store)
	model := tui.NewModel(adapter, sh)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run program: %v\n", err)
		os.Exit(1)
	}
}
