package data

import "strings"

// SplitPath validates an absolute path and decomposes it into its ordered
// name components. Paths must be anchored at "/"; empty components collapse,
// so "/a//b/" splits the same as "/a/b". The root itself splits into zero
// components. Names are literal keys in the namespace, so "." and ".."
// carry no traversal meaning and are rejected.
func SplitPath(path string) ([]string, error) {
	if !strings.HasPrefix(path, "/") {
		return nil, ErrInvalidPath
	}

	raw := strings.Split(path, "/")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		switch part {
		case "":
			continue
		case ".", "..":
			return nil, ErrInvalidPath
		}

		parts = append(parts, part)
	}

	return parts, nil
}

// JoinPath assembles name components back into an absolute path. Zero
// components yield the root path.
func JoinPath(parts ...string) string {
	return "/" + strings.Join(parts, "/")
}
