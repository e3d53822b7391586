package data

import (
	"errors"
	"sync"
)

// Standard errors that FileManager implementations should use.
var (
	// Path resolution errors
	ErrInvalidPath    = errors.New("coconutkit: invalid path detected")
	ErrNotExist       = errors.New("coconutkit: file does not exist")
	ErrParentNotExist = errors.New("coconutkit: parent directory does not exist")
	ErrIsDirectory    = errors.New("coconutkit: is a directory")
	ErrNotDirectory   = errors.New("coconutkit: not a directory")
	ErrTypeConflict   = errors.New("coconutkit: type conflict between file and directory")

	// Payload errors
	ErrInvalidData = errors.New("coconutkit: invalid or missing data")

	// I/O errors
	ErrClosed   = errors.New("coconutkit: file already closed")
	ErrReadOnly = errors.New("coconutkit: read-only file manager")
	ErrInvalid  = errors.New("coconutkit: invalid argument")
)

// Errors collects failures from multi-step operations so that one failing
// step does not abort its siblings. The zero value is ready to use.
type Errors struct {
	mu     sync.RWMutex
	errors []error
}

func (e *Errors) Add(err error) {
	if err == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.errors = append(e.errors, err)
}

func (e *Errors) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.errors = e.errors[:0]
}

func (e *Errors) Errors() error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if len(e.errors) == 0 {
		return nil
	}

	return errors.Join(e.errors...)
}
