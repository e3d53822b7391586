// Package coconutkit provides an in-memory virtual file store: a hierarchical
// namespace of directories and files whose payloads live in a cost-bounded
// cache. When the cache evicts a payload under memory pressure the owning
// file node is excised from the namespace at the same moment, so the two
// never disagree; callers simply find the file gone.
package coconutkit

import (
	"context"

	"github.com/jormungand/CoconutKit/data"
)

// FileManager is the operation surface shared by every file manager flavor.
// All paths are absolute, anchored at "/", with no "." or ".." components.
type FileManager interface {
	// ReadFile returns the payload stored at path.
	// Returns ErrNotExist if path is missing, a directory, or was evicted.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// WriteFile stores payload at path, replacing any file already there.
	// The parent directory must already exist.
	// Returns ErrInvalidPath, ErrInvalidData, ErrParentNotExist or
	// ErrTypeConflict.
	WriteFile(ctx context.Context, path string, payload []byte) error

	// CreateDirectory creates a directory at path. With recursive set,
	// missing ancestors are created along the way; without it the parent
	// must already exist.
	// Returns ErrInvalidPath, ErrParentNotExist or ErrTypeConflict.
	CreateDirectory(ctx context.Context, path string, recursive bool) error

	// ReadDirectory lists the immediate child names of the directory at
	// path, in no particular order.
	// Returns ErrNotExist or ErrNotDirectory.
	ReadDirectory(ctx context.Context, path string) ([]string, error)

	// Stat reports existence and kind for path. It never errors; malformed
	// and missing paths both report plain absence.
	Stat(ctx context.Context, path string) data.FileStat

	// Copy duplicates src at dst. File payloads are copied under a fresh
	// handle; directories come across shallow, without their children.
	// Returns ErrNotExist when src is absent, plus the WriteFile and
	// CreateDirectory errors for dst.
	Copy(ctx context.Context, src, dst string) error

	// Move copies src to dst and removes src, all under one lock. The two
	// steps are not transactional: a failed remove leaves both paths alive.
	Move(ctx context.Context, src, dst string) error

	// Remove deletes path and, for directories, everything below it.
	// Removing "/" empties the root but keeps it alive.
	// Returns ErrNotExist if path is absent.
	Remove(ctx context.Context, path string) error
}
