package coconutkit

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/jormungand/CoconutKit/data"
	"github.com/jormungand/CoconutKit/tree"
)

// Open returns a reader over a snapshot of the payload at path. Overwrites,
// removals and evictions that happen afterwards do not reach an open reader.
// Returns ErrIsDirectory for directories, ErrNotExist otherwise.
func (m *InMemoryFileManager) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	parts, err := data.SplitPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open '%s': %w", path, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	node, ok := m.tree.Resolve(parts)
	if !ok {
		return nil, fmt.Errorf("failed to open '%s': %w", path, data.ErrNotExist)
	}

	file, ok := node.(*tree.File)
	if !ok {
		return nil, fmt.Errorf("failed to open '%s': %w", path, data.ErrIsDirectory)
	}

	payload, ok := m.store.Get(file.Handle)
	if !ok {
		return nil, fmt.Errorf("failed to open '%s': %w", path, data.ErrNotExist)
	}

	return io.NopCloser(bytes.NewReader(payload)), nil
}

// Create returns a writer that buffers everything written to it and commits
// the result as a single WriteFile on Close. The parent directory is checked
// up front to fail fast; the commit checks it again since it may vanish
// while the writer is open.
func (m *InMemoryFileManager) Create(ctx context.Context, path string) (io.WriteCloser, error) {
	parts, err := data.SplitPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create '%s': %w", path, err)
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("failed to create '%s': %w", path, data.ErrInvalidPath)
	}

	m.mu.RLock()
	_, _, err = m.resolveParentUnsafe(parts)
	m.mu.RUnlock()
	if err != nil {
		return nil, fmt.Errorf("failed to create '%s': %w", path, err)
	}

	return &fileWriter{
		ctx:     ctx,
		manager: m,
		path:    path,
	}, nil
}

// fileWriter buffers writes until Close commits them in one piece.
type fileWriter struct {
	ctx     context.Context
	manager *InMemoryFileManager
	path    string
	buffer  bytes.Buffer
	closed  bool
}

func (w *fileWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, data.ErrClosed
	}

	return w.buffer.Write(p)
}

// Close commits the buffered payload, empty buffers included. Closing twice
// returns ErrClosed without committing again.
func (w *fileWriter) Close() error {
	if w.closed {
		return data.ErrClosed
	}
	w.closed = true

	payload := w.buffer.Bytes()
	if payload == nil {
		payload = []byte{}
	}

	return w.manager.WriteFile(w.ctx, w.path, payload)
}
