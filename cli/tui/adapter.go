package tui

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"path"
	"sort"
	"strings"
	"unicode/utf8"

	coconutkit "github.com/jormungand/CoconutKit"
)

// StoreAdapter bridges the browser to an in-memory file manager. The
// bubbletea commands run on their own goroutines, so every method maps to a
// single manager call and the manager's own locking keeps things safe.
type StoreAdapter struct {
	ctx   context.Context
	store *coconutkit.InMemoryFileManager
}

// NewStoreAdapter creates an adapter around the given file manager.
func NewStoreAdapter(ctx context.Context, store *coconutkit.InMemoryFileManager) *StoreAdapter {
	return &StoreAdapter{
		ctx:   ctx,
		store: store,
	}
}

// ListDirectory returns the entries of a directory, directories first and
// each group sorted by name.
func (a *StoreAdapter) ListDirectory(dir string) ([]*Entry, error) {
	names, err := a.store.ReadDirectory(a.ctx, dir)
	if err != nil {
		return nil, err
	}

	entries := make([]*Entry, 0, len(names))
	for _, name := range names {
		childPath := path.Join(dir, name)
		stat := a.store.Stat(a.ctx, childPath)

		entries = append(entries, &Entry{
			Name:  name,
			Path:  childPath,
			IsDir: stat.IsDirectory,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// LoadPreview reads a file and renders it as preview text clipped to the
// given pane size. Payloads that do not look like text come back as a hex
// dump. Loading a preview counts as a read, so it refreshes the payload's
// cache recency.
func (a *StoreAdapter) LoadPreview(filePath string, width, height int) (string, error) {
	payload, err := a.store.ReadFile(a.ctx, filePath)
	if err != nil {
		return "", err
	}

	if len(payload) == 0 {
		return "(empty file)", nil
	}

	if width < 16 {
		width = 16
	}
	if height < 4 {
		height = 4
	}

	if bytes.IndexByte(payload, 0) >= 0 || !utf8.Valid(payload) {
		return renderHexDump(payload, height), nil
	}

	lines := strings.Split(string(payload), "\n")
	truncated := len(lines) > height
	if truncated {
		lines = lines[:height]
	}
	for i, line := range lines {
		if utf8.RuneCountInString(line) > width {
			lines[i] = string([]rune(line)[:width-1]) + "…"
		}
	}
	if truncated {
		lines = append(lines, "…")
	}

	return strings.Join(lines, "\n"), nil
}

// renderHexDump formats the head of a binary payload like xxd, one line per
// 16 bytes, capped at the pane height.
func renderHexDump(payload []byte, height int) string {
	limit := (height - 1) * 16
	clipped := len(payload) > limit
	if clipped {
		payload = payload[:limit]
	}

	dump := strings.TrimRight(hex.Dump(payload), "\n")
	if clipped {
		dump += "\n…"
	}

	return fmt.Sprintf("(binary payload)\n%s", dump)
}

// CreateFile creates an empty file at the given path.
func (a *StoreAdapter) CreateFile(filePath string) error {
	return a.store.WriteFile(a.ctx, filePath, []byte{})
}

// CreateDirectory creates a directory at the given path.
func (a *StoreAdapter) CreateDirectory(dirPath string) error {
	return a.store.CreateDirectory(a.ctx, dirPath, false)
}

// Delete removes the entry at the given path. Directories go with their
// whole subtree.
func (a *StoreAdapter) Delete(entryPath string) error {
	return a.store.Remove(a.ctx, entryPath)
}

// Rename moves a file to a new path inside the same directory. Directory
// renames are refused because a directory move only carries the immediate
// entry, not its children.
func (a *StoreAdapter) Rename(oldPath, newPath string) error {
	if stat := a.store.Stat(a.ctx, oldPath); stat.IsDirectory {
		return fmt.Errorf("directory rename is not supported")
	}

	return a.store.Move(a.ctx, oldPath, newPath)
}

// Usage reports the number of cached payloads, the resident byte total and
// the configured limit (zero when unbounded).
func (a *StoreAdapter) Usage() (count int, resident int64, limit int64) {
	return a.store.Len(), a.store.TotalCost(), a.store.TotalCostLimit()
}
