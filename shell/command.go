package shell

import (
	"context"
	"io"

	"github.com/jormungand/CoconutKit/data"
)

// API is the narrow file manager surface commands execute against. It strips
// away construction, streaming and lifecycle plumbing commands never need.
type API interface {
	// ReadFile returns the payload stored at path.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// WriteFile stores payload at path, replacing any file already there.
	WriteFile(ctx context.Context, path string, payload []byte) error

	// CreateDirectory creates a directory, recursively when asked to.
	CreateDirectory(ctx context.Context, path string, recursive bool) error

	// ReadDirectory lists the immediate child names of a directory.
	ReadDirectory(ctx context.Context, path string) ([]string, error)

	// Stat reports existence and kind without erroring.
	Stat(ctx context.Context, path string) data.FileStat

	// Copy duplicates src at dst.
	Copy(ctx context.Context, src, dst string) error

	// Move copies src to dst and removes src.
	Move(ctx context.Context, src, dst string) error

	// Remove deletes path and any subtree below it.
	Remove(ctx context.Context, path string) error

	// TotalCost returns the summed resident payload bytes.
	TotalCost() int64

	// TotalCostLimit returns the payload budget; zero means unlimited.
	TotalCostLimit() int64

	// Len returns the number of resident payloads.
	Len() int
}

// Command represents an executable command within the shell.
type Command interface {
	// Name returns the command identifier
	Name() string

	// Description returns human-readable help text
	Description() string

	// Usage returns a usage string for help (e.g. "ls [-l] [path]")
	Usage() string

	// Execute runs the command with parsed arguments
	// The writer parameter is where command output should be written
	// Returns exit code (0 = success) and error message
	Execute(ctx context.Context, api API, args *CommandArgs, writer io.Writer) (int, error)

	// GetFlags returns the flag set for this command (this is optional)
	GetFlags() *CommandFlagSet
}
