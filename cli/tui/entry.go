package tui

// Entry represents a single row in the file browser.
//
// The store keeps no per-file metadata beyond the payload itself, so an
// entry carries just its name, its absolute path and whether it is a
// directory. Payload sizes only become known when a preview loads.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
}

// DisplayName returns the name with a trailing slash for directories.
func (e *Entry) DisplayName() string {
	if e.IsDir {
		return e.Name + "/"
	}
	return e.Name
}

// Kind returns the column label for the entry type.
func (e *Entry) Kind() string {
	if e.IsDir {
		return "<DIR>"
	}
	return ""
}

// Icon returns the marker shown in front of the entry name.
func (e *Entry) Icon() string {
	if e.IsDir {
		return "📁"
	}
	return "📄"
}
