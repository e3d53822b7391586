package coconutkit

import (
	"context"

	"github.com/jormungand/CoconutKit/data"
)

// ReadOnlyFileManager wraps any FileManager and refuses mutation. Reads pass
// straight through to the underlying manager; every mutating operation
// returns ErrReadOnly without touching it.
type ReadOnlyFileManager struct {
	inner FileManager
}

// NewReadOnlyFileManager creates a read-only view over inner.
func NewReadOnlyFileManager(inner FileManager) *ReadOnlyFileManager {
	return &ReadOnlyFileManager{
		inner: inner,
	}
}

func (rom *ReadOnlyFileManager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	return rom.inner.ReadFile(ctx, path)
}

func (rom *ReadOnlyFileManager) ReadDirectory(ctx context.Context, path string) ([]string, error) {
	return rom.inner.ReadDirectory(ctx, path)
}

func (rom *ReadOnlyFileManager) Stat(ctx context.Context, path string) data.FileStat {
	return rom.inner.Stat(ctx, path)
}

func (rom *ReadOnlyFileManager) WriteFile(ctx context.Context, path string, payload []byte) error {
	return data.ErrReadOnly
}

func (rom *ReadOnlyFileManager) CreateDirectory(ctx context.Context, path string, recursive bool) error {
	return data.ErrReadOnly
}

func (rom *ReadOnlyFileManager) Copy(ctx context.Context, src, dst string) error {
	return data.ErrReadOnly
}

func (rom *ReadOnlyFileManager) Move(ctx context.Context, src, dst string) error {
	return data.ErrReadOnly
}

func (rom *ReadOnlyFileManager) Remove(ctx context.Context, path string) error {
	return data.ErrReadOnly
}
