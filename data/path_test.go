package data

import (
	"errors"
	"testing"
)

func TestSplitPath(t *testing.T) {
	t.Run("Root", func(tst *testing.T) {
		parts, err := SplitPath("/")
		if err != nil {
			tst.Fatalf("SplitPath failed: %v", err)
		}

		if len(parts) != 0 {
			tst.Errorf("Expected zero components, got %v", parts)
		}
	})

	t.Run("Nested", func(tst *testing.T) {
		parts, err := SplitPath("/a/b/c.txt")
		if err != nil {
			tst.Fatalf("SplitPath failed: %v", err)
		}

		if len(parts) != 3 || parts[0] != "a" || parts[1] != "b" || parts[2] != "c.txt" {
			tst.Errorf("Expected [a b c.txt], got %v", parts)
		}
	})

	t.Run("CollapsesEmptyComponents", func(tst *testing.T) {
		parts, err := SplitPath("//a///b/")
		if err != nil {
			tst.Fatalf("SplitPath failed: %v", err)
		}

		if len(parts) != 2 || parts[0] != "a" || parts[1] != "b" {
			tst.Errorf("Expected [a b], got %v", parts)
		}
	})

	t.Run("MissingAnchor", func(tst *testing.T) {
		if _, err := SplitPath("a/b"); !errors.Is(err, ErrInvalidPath) {
			tst.Errorf("Expected ErrInvalidPath, got %v", err)
		}
	})

	t.Run("EmptyPath", func(tst *testing.T) {
		if _, err := SplitPath(""); !errors.Is(err, ErrInvalidPath) {
			tst.Errorf("Expected ErrInvalidPath, got %v", err)
		}
	})

	t.Run("DotComponents", func(tst *testing.T) {
		for _, path := range []string{"/a/./b", "/a/../b", "/.", "/.."} {
			if _, err := SplitPath(path); !errors.Is(err, ErrInvalidPath) {
				tst.Errorf("Expected ErrInvalidPath for '%s', got %v", path, err)
			}
		}
	})
}

func TestJoinPath(t *testing.T) {
	if path := JoinPath(); path != "/" {
		t.Errorf("Expected '/', got '%s'", path)
	}

	if path := JoinPath("a", "b", "c.txt"); path != "/a/b/c.txt" {
		t.Errorf("Expected '/a/b/c.txt', got '%s'", path)
	}
}
