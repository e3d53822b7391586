package coconutkit

// This file contains internal "unsafe" methods that perform operations
// without acquiring locks. These methods MUST only be called while holding
// m.mu; they are shared by the public operations and by multi-step sequences
// like Move that run several of them under one lock.

import (
	"github.com/jormungand/CoconutKit/data"
	"github.com/jormungand/CoconutKit/tree"
)

// resolveParentUnsafe resolves the parent directory of parts and returns it
// together with the terminal name. parts must not be empty.
// Returns ErrParentNotExist when the parent is missing or not a directory.
func (m *InMemoryFileManager) resolveParentUnsafe(parts []string) (*tree.Directory, string, error) {
	node, ok := m.tree.Resolve(parts[:len(parts)-1])
	if !ok {
		return nil, "", data.ErrParentNotExist
	}

	dir, ok := node.(*tree.Directory)
	if !ok {
		return nil, "", data.ErrParentNotExist
	}

	return dir, parts[len(parts)-1], nil
}

// writeUnsafe installs payload at parts under a fresh handle. A replaced
// file's payload is released before the new handle is minted, so the budget
// never carries both at once.
func (m *InMemoryFileManager) writeUnsafe(parts []string, payload []byte) error {
	parent, name, err := m.resolveParentUnsafe(parts)
	if err != nil {
		return err
	}

	if existing, ok := parent.Child(name); ok {
		switch node := existing.(type) {
		case *tree.Directory:
			return data.ErrTypeConflict
		case *tree.File:
			if err := m.store.Remove(node.Handle); err != nil {
				m.log.Warn("Failed to release replaced payload '%s': %v", node.Handle, err)
			}
		}
	}

	handle := data.NewHandle()

	// The node goes into the tree before the payload enters the store, so
	// an immediate eviction of the fresh entry can excise it.
	loc, err := m.tree.InsertFile(parts, handle)
	if err != nil {
		return err
	}

	m.store.Put(handle, payload, loc)

	return nil
}

// mkdirUnsafe ensures a directory exists at parts. Without recursive the
// parent must already exist.
func (m *InMemoryFileManager) mkdirUnsafe(parts []string, recursive bool) error {
	if !recursive {
		if _, _, err := m.resolveParentUnsafe(parts); err != nil {
			return err
		}
	}

	return m.tree.InsertDirectory(parts)
}

// copyUnsafe duplicates the node at srcParts to dstParts. Files are written
// under a fresh handle; directories come across shallow, as an empty
// directory at dst.
func (m *InMemoryFileManager) copyUnsafe(srcParts, dstParts []string) error {
	node, ok := m.tree.Resolve(srcParts)
	if !ok {
		return data.ErrNotExist
	}

	if len(dstParts) == 0 {
		return data.ErrInvalidPath
	}

	switch src := node.(type) {
	case *tree.Directory:
		return m.mkdirUnsafe(dstParts, false)

	case *tree.File:
		payload, ok := m.store.Get(src.Handle)
		if !ok {
			return data.ErrNotExist
		}
		return m.writeUnsafe(dstParts, payload)
	}

	return nil
}

// removeUnsafe removes the node at parts; zero parts empty the root without
// removing the root itself. Store cleanup failures are logged, never fatal
// to the siblings still being removed.
func (m *InMemoryFileManager) removeUnsafe(parts []string) error {
	root := m.tree.Root()

	if len(parts) == 0 {
		for _, name := range root.Names() {
			if err := m.tree.RemoveNamed(root, name, m.releaseHandleUnsafe); err != nil {
				m.log.Warn("Failed to remove root entry '%s': %v", name, err)
			}
		}
		return nil
	}

	node, ok := m.tree.Resolve(parts[:len(parts)-1])
	if !ok {
		return data.ErrNotExist
	}

	parent, ok := node.(*tree.Directory)
	if !ok {
		return data.ErrNotExist
	}

	return m.tree.RemoveNamed(parent, parts[len(parts)-1], m.releaseHandleUnsafe)
}

// releaseHandleUnsafe drops the payload for a handle whose node is being
// detached from the tree.
func (m *InMemoryFileManager) releaseHandleUnsafe(handle string) {
	if err := m.store.Remove(handle); err != nil {
		m.log.Warn("Failed to release payload '%s' during removal: %v", handle, err)
	}
}
