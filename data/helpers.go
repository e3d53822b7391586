package data

import "github.com/google/uuid"

// NewHandle mints the opaque token that correlates a file node with its
// cached payload. Handles are v7 UUIDs, so creation order survives in the
// value and debug output stays readable.
func NewHandle() string {
	return uuid.Must(uuid.NewV7()).String()
}
