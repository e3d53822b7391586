package tree

// Node is a single entry in the namespace. Exactly two kinds exist,
// *Directory and *File; the unexported marker keeps the set closed so
// callers can switch over both without a default arm.
type Node interface {
	node()
}

// Directory holds child nodes by name. Names are unique within a directory.
type Directory struct {
	children map[string]Node
}

func (*Directory) node() {}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{
		children: make(map[string]Node),
	}
}

// Child returns the named child, if present.
func (d *Directory) Child(name string) (Node, bool) {
	child, ok := d.children[name]
	return child, ok
}

// Names returns the names of all children in unspecified order.
func (d *Directory) Names() []string {
	names := make([]string, 0, len(d.children))
	for name := range d.children {
		names = append(names, name)
	}

	return names
}

// Len returns the number of children.
func (d *Directory) Len() int {
	return len(d.children)
}

// File references its payload in the data store through an opaque handle.
type File struct {
	Handle string
}

func (*File) node() {}

// Locator is the non-owning back reference from a cached payload to the tree
// position of its file node. It carries parent identity and child name, not
// ownership: the located node may have been replaced or removed since the
// locator was taken, and resolving it then must leave the tree untouched.
type Locator struct {
	Parent *Directory
	Name   string
}

// Excise removes the located child if it is still a file carrying the given
// handle, and reports whether a node was removed. A stale locator, meaning
// the parent is gone, the name is unbound, or the name was rebound to a
// directory or to a newer file, is a no-op.
func (l Locator) Excise(handle string) bool {
	if l.Parent == nil || l.Parent.children == nil {
		return false
	}

	child, ok := l.Parent.children[l.Name]
	if !ok {
		return false
	}

	file, ok := child.(*File)
	if !ok || file.Handle != handle {
		return false
	}

	delete(l.Parent.children, l.Name)

	return true
}
