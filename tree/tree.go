// Package tree implements the hierarchical namespace of the file store: a
// rooted tree of directories and files addressed by ordered name components.
// The tree performs no locking of its own; every method MUST be called under
// the lock of the manager that owns the tree.
package tree

import (
	"github.com/jormungand/CoconutKit/data"
)

// PathTree is the rooted namespace. The root directory is permanent: it is
// created with the tree, emptied by removals, and never replaced.
type PathTree struct {
	root *Directory
}

// NewPathTree returns a tree holding only the empty root directory.
func NewPathTree() *PathTree {
	return &PathTree{
		root: NewDirectory(),
	}
}

// Root returns the permanent root directory.
func (t *PathTree) Root() *Directory {
	return t.root
}

// Resolve walks parts from the root and returns the addressed node. Zero
// parts address the root itself. Descent stops with ok=false as soon as a
// component is missing or a file shows up mid-path.
func (t *PathTree) Resolve(parts []string) (Node, bool) {
	var current Node = t.root
	for _, part := range parts {
		dir, ok := current.(*Directory)
		if !ok {
			return nil, false
		}

		child, ok := dir.children[part]
		if !ok {
			return nil, false
		}

		current = child
	}

	return current, true
}

// InsertFile installs handle at parts, creating missing intermediate
// directories on the way down. An existing file at the terminal is replaced;
// callers release its payload beforehand, the tree never reaches into the
// store. The returned locator identifies the installed node for later
// excision.
// Returns ErrInvalidPath for zero parts.
// Returns ErrTypeConflict if the terminal holds a directory, or a file
// blocks an intermediate component.
func (t *PathTree) InsertFile(parts []string, handle string) (Locator, error) {
	if len(parts) == 0 {
		return Locator{}, data.ErrInvalidPath
	}

	dir, err := t.descendCreate(parts[:len(parts)-1])
	if err != nil {
		return Locator{}, err
	}

	name := parts[len(parts)-1]
	if existing, ok := dir.children[name]; ok {
		if _, isDir := existing.(*Directory); isDir {
			return Locator{}, data.ErrTypeConflict
		}
	}

	dir.children[name] = &File{Handle: handle}

	return Locator{Parent: dir, Name: name}, nil
}

// InsertDirectory ensures a directory exists at parts, creating missing
// intermediate directories on the way down. An existing directory at the
// terminal is a no-op.
// Returns ErrInvalidPath for zero parts.
// Returns ErrTypeConflict if a file occupies the terminal or any
// intermediate component.
func (t *PathTree) InsertDirectory(parts []string) error {
	if len(parts) == 0 {
		return data.ErrInvalidPath
	}

	_, err := t.descendCreate(parts)

	return err
}

// RemoveNamed removes the named child of dir. A directory child is unwound
// depth-first: every descendant file hands its handle to onRemove before its
// node detaches, so payload cleanup precedes structural removal.
// Returns ErrNotExist if dir has no child of that name.
func (t *PathTree) RemoveNamed(dir *Directory, name string, onRemove func(handle string)) error {
	child, ok := dir.children[name]
	if !ok {
		return data.ErrNotExist
	}

	releaseNode(child, onRemove)
	delete(dir.children, name)

	return nil
}

// List returns the child names at parts in unspecified order. Zero parts
// list the root.
// Returns ErrNotExist if the path is absent.
// Returns ErrNotDirectory if the path holds a file.
func (t *PathTree) List(parts []string) ([]string, error) {
	node, ok := t.Resolve(parts)
	if !ok {
		return nil, data.ErrNotExist
	}

	dir, ok := node.(*Directory)
	if !ok {
		return nil, data.ErrNotDirectory
	}

	return dir.Names(), nil
}

// descendCreate walks parts from the root, creating missing directories,
// and returns the directory at the end of the walk. A file anywhere on the
// walk is ErrTypeConflict.
func (t *PathTree) descendCreate(parts []string) (*Directory, error) {
	current := t.root
	for _, part := range parts {
		child, ok := current.children[part]
		if !ok {
			next := NewDirectory()
			current.children[part] = next
			current = next
			continue
		}

		dir, ok := child.(*Directory)
		if !ok {
			return nil, data.ErrTypeConflict
		}

		current = dir
	}

	return current, nil
}

// releaseNode walks node depth-first, handing every file handle to onRemove
// and detaching children as it goes.
func releaseNode(node Node, onRemove func(handle string)) {
	switch n := node.(type) {
	case *File:
		if onRemove != nil {
			onRemove(n.Handle)
		}
	case *Directory:
		for name, child := range n.children {
			releaseNode(child, onRemove)
			delete(n.children, name)
		}
	}
}
