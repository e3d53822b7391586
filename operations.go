package coconutkit

import (
	"context"
	"fmt"

	"github.com/jormungand/CoconutKit/data"
	"github.com/jormungand/CoconutKit/tree"
)

// ReadFile returns the payload stored at path. A missing path, a directory
// and a payload lost to eviction all look the same from here: the file does
// not exist.
// Returns ErrInvalidPath or ErrNotExist.
func (m *InMemoryFileManager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	parts, err := data.SplitPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read '%s': %w", path, err)
	}

	// Reads refresh cache recency, so they take the write lock.
	m.mu.Lock()
	defer m.mu.Unlock()

	node, ok := m.tree.Resolve(parts)
	if !ok {
		return nil, fmt.Errorf("failed to read '%s': %w", path, data.ErrNotExist)
	}

	file, ok := node.(*tree.File)
	if !ok {
		return nil, fmt.Errorf("failed to read '%s': %w", path, data.ErrNotExist)
	}

	payload, ok := m.store.Get(file.Handle)
	if !ok {
		m.log.Warn("File '%s' carries a dangling handle '%s'", path, file.Handle)
		return nil, fmt.Errorf("failed to read '%s': %w", path, data.ErrNotExist)
	}

	return payload, nil
}

// WriteFile stores payload at path, replacing any file already there. The
// parent directory must already exist; writes never create intermediate
// directories. A nil payload is invalid, an empty one is fine. Storing the
// payload may synchronously evict colder entries, or the fresh payload
// itself when it alone exceeds the budget.
// Returns ErrInvalidPath, ErrInvalidData, ErrParentNotExist or
// ErrTypeConflict.
func (m *InMemoryFileManager) WriteFile(ctx context.Context, path string, payload []byte) error {
	parts, err := data.SplitPath(path)
	if err != nil {
		return fmt.Errorf("failed to write '%s': %w", path, err)
	}
	if len(parts) == 0 {
		return fmt.Errorf("failed to write '%s': %w", path, data.ErrInvalidPath)
	}
	if payload == nil {
		return fmt.Errorf("failed to write '%s': %w", path, data.ErrInvalidData)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.writeUnsafe(parts, payload); err != nil {
		return fmt.Errorf("failed to write '%s': %w", path, err)
	}

	return nil
}

// CreateDirectory creates a directory at path. With recursive set, missing
// ancestors are created along the way; without it the parent must already
// exist. Creating a directory that already exists is a no-op.
// Returns ErrInvalidPath, ErrParentNotExist or ErrTypeConflict.
func (m *InMemoryFileManager) CreateDirectory(ctx context.Context, path string, recursive bool) error {
	parts, err := data.SplitPath(path)
	if err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", path, err)
	}
	if len(parts) == 0 {
		return fmt.Errorf("failed to create directory '%s': %w", path, data.ErrInvalidPath)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.mkdirUnsafe(parts, recursive); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", path, err)
	}

	return nil
}

// ReadDirectory lists the immediate child names of the directory at path, in
// no particular order.
// Returns ErrInvalidPath, ErrNotExist or ErrNotDirectory.
func (m *InMemoryFileManager) ReadDirectory(ctx context.Context, path string) ([]string, error) {
	parts, err := data.SplitPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to list '%s': %w", path, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	names, err := m.tree.List(parts)
	if err != nil {
		return nil, fmt.Errorf("failed to list '%s': %w", path, err)
	}

	return names, nil
}

// Stat reports existence and kind for path. It never errors; malformed and
// missing paths both report plain absence.
func (m *InMemoryFileManager) Stat(ctx context.Context, path string) data.FileStat {
	parts, err := data.SplitPath(path)
	if err != nil {
		return data.FileStat{}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	node, ok := m.tree.Resolve(parts)
	if !ok {
		return data.FileStat{}
	}

	_, isDir := node.(*tree.Directory)
	return data.FileStat{
		Exists:      true,
		IsDirectory: isDir,
	}
}

// Copy duplicates src at dst. A file's payload is written under a fresh
// handle, so the two paths never share eviction fate. A directory copy is
// shallow: dst becomes an empty directory no matter what src contains,
// longstanding behavior kept for compatibility.
// Returns ErrNotExist when src is absent; dst errors mirror WriteFile and
// CreateDirectory.
func (m *InMemoryFileManager) Copy(ctx context.Context, src, dst string) error {
	srcParts, err := data.SplitPath(src)
	if err != nil {
		return fmt.Errorf("failed to copy '%s' to '%s': %w", src, dst, err)
	}
	dstParts, err := data.SplitPath(dst)
	if err != nil {
		return fmt.Errorf("failed to copy '%s' to '%s': %w", src, dst, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.copyUnsafe(srcParts, dstParts); err != nil {
		return fmt.Errorf("failed to copy '%s' to '%s': %w", src, dst, err)
	}

	return nil
}

// Move copies src to dst and removes src, all under one lock. A failing copy
// aborts with no side effects; a failing remove leaves the duplicate at both
// paths. The two steps are not transactional.
func (m *InMemoryFileManager) Move(ctx context.Context, src, dst string) error {
	srcParts, err := data.SplitPath(src)
	if err != nil {
		return fmt.Errorf("failed to move '%s' to '%s': %w", src, dst, err)
	}
	dstParts, err := data.SplitPath(dst)
	if err != nil {
		return fmt.Errorf("failed to move '%s' to '%s': %w", src, dst, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.copyUnsafe(srcParts, dstParts); err != nil {
		return fmt.Errorf("failed to move '%s' to '%s': %w", src, dst, err)
	}
	if err := m.removeUnsafe(srcParts); err != nil {
		return fmt.Errorf("failed to move '%s' to '%s': %w", src, dst, err)
	}

	return nil
}

// Remove deletes path and, for directories, everything below it. Removing
// "/" empties the root but keeps the root itself alive.
// Returns ErrInvalidPath or ErrNotExist.
func (m *InMemoryFileManager) Remove(ctx context.Context, path string) error {
	parts, err := data.SplitPath(path)
	if err != nil {
		return fmt.Errorf("failed to remove '%s': %w", path, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.removeUnsafe(parts); err != nil {
		return fmt.Errorf("failed to remove '%s': %w", path, err)
	}

	return nil
}
