package coconutkit_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/jormungand/CoconutKit/data"
)

// TestFileManager_StreamRead verifies that Open hands out an isolated
// snapshot of the payload.
func TestFileManager_StreamRead(t *testing.T) {
	t.Run("SnapshotSurvivesOverwrite", func(tst *testing.T) {
		ctx := context.Background()
		m := newTestManager(tst, 0)

		if err := m.WriteFile(ctx, "/test.txt", []byte("before")); err != nil {
			tst.Fatalf("Write failed: %v", err)
		}

		reader, err := m.Open(ctx, "/test.txt")
		if err != nil {
			tst.Fatalf("Open failed: %v", err)
		}
		defer reader.Close()

		if err := m.WriteFile(ctx, "/test.txt", []byte("after")); err != nil {
			tst.Fatalf("Overwrite failed: %v", err)
		}

		got, err := io.ReadAll(reader)
		if err != nil {
			tst.Fatalf("ReadAll failed: %v", err)
		}

		if !bytes.Equal(got, []byte("before")) {
			tst.Errorf("Expected %q, got %q", "before", got)
		}
	})

	t.Run("SnapshotSurvivesRemoval", func(tst *testing.T) {
		ctx := context.Background()
		m := newTestManager(tst, 0)

		if err := m.WriteFile(ctx, "/test.txt", []byte("payload")); err != nil {
			tst.Fatalf("Write failed: %v", err)
		}

		reader, err := m.Open(ctx, "/test.txt")
		if err != nil {
			tst.Fatalf("Open failed: %v", err)
		}
		defer reader.Close()

		if err := m.Remove(ctx, "/test.txt"); err != nil {
			tst.Fatalf("Remove failed: %v", err)
		}

		got, err := io.ReadAll(reader)
		if err != nil {
			tst.Fatalf("ReadAll failed: %v", err)
		}

		if !bytes.Equal(got, []byte("payload")) {
			tst.Errorf("Expected %q, got %q", "payload", got)
		}
	})

	t.Run("Directory", func(tst *testing.T) {
		ctx := context.Background()
		m := newTestManager(tst, 0)

		if err := m.CreateDirectory(ctx, "/dir", false); err != nil {
			tst.Fatalf("MkDir failed: %v", err)
		}

		if _, err := m.Open(ctx, "/dir"); !errors.Is(err, data.ErrIsDirectory) {
			tst.Errorf("Expected ErrIsDirectory, got %v", err)
		}
	})

	t.Run("Missing", func(tst *testing.T) {
		ctx := context.Background()
		m := newTestManager(tst, 0)

		if _, err := m.Open(ctx, "/nonexistent"); !errors.Is(err, data.ErrNotExist) {
			tst.Errorf("Expected ErrNotExist, got %v", err)
		}
	})
}

// TestFileManager_StreamWrite verifies the buffered writer returned by
// Create and its commit-on-close behavior.
func TestFileManager_StreamWrite(t *testing.T) {
	t.Run("CommitsOnClose", func(tst *testing.T) {
		ctx := context.Background()
		m := newTestManager(tst, 0)

		writer, err := m.Create(ctx, "/test.txt")
		if err != nil {
			tst.Fatalf("Create failed: %v", err)
		}

		if _, err := writer.Write([]byte("hello ")); err != nil {
			tst.Fatalf("Write failed: %v", err)
		}
		if _, err := writer.Write([]byte("world")); err != nil {
			tst.Fatalf("Write failed: %v", err)
		}

		// Nothing is visible before the writer commits.
		if stat := m.Stat(ctx, "/test.txt"); stat.Exists {
			tst.Errorf("Expected no file before Close, got %+v", stat)
		}

		if err := writer.Close(); err != nil {
			tst.Fatalf("Close failed: %v", err)
		}

		got, err := m.ReadFile(ctx, "/test.txt")
		if err != nil {
			tst.Fatalf("Read failed: %v", err)
		}
		if !bytes.Equal(got, []byte("hello world")) {
			tst.Errorf("Expected %q, got %q", "hello world", got)
		}
	})

	t.Run("EmptyCommit", func(tst *testing.T) {
		ctx := context.Background()
		m := newTestManager(tst, 0)

		writer, err := m.Create(ctx, "/empty.txt")
		if err != nil {
			tst.Fatalf("Create failed: %v", err)
		}
		if err := writer.Close(); err != nil {
			tst.Fatalf("Close failed: %v", err)
		}

		got, err := m.ReadFile(ctx, "/empty.txt")
		if err != nil {
			tst.Fatalf("Read failed: %v", err)
		}
		if len(got) != 0 {
			tst.Errorf("Expected an empty payload, got %q", got)
		}
	})

	t.Run("UseAfterClose", func(tst *testing.T) {
		ctx := context.Background()
		m := newTestManager(tst, 0)

		writer, err := m.Create(ctx, "/test.txt")
		if err != nil {
			tst.Fatalf("Create failed: %v", err)
		}
		if err := writer.Close(); err != nil {
			tst.Fatalf("Close failed: %v", err)
		}

		if _, err := writer.Write([]byte("late")); !errors.Is(err, data.ErrClosed) {
			tst.Errorf("Expected ErrClosed on write, got %v", err)
		}
		if err := writer.Close(); !errors.Is(err, data.ErrClosed) {
			tst.Errorf("Expected ErrClosed on second close, got %v", err)
		}
	})

	t.Run("MissingParentFailsFast", func(tst *testing.T) {
		ctx := context.Background()
		m := newTestManager(tst, 0)

		if _, err := m.Create(ctx, "/missing/test.txt"); !errors.Is(err, data.ErrParentNotExist) {
			tst.Errorf("Expected ErrParentNotExist, got %v", err)
		}
	})

	t.Run("ParentRemovedBeforeCommit", func(tst *testing.T) {
		ctx := context.Background()
		m := newTestManager(tst, 0)

		if err := m.CreateDirectory(ctx, "/dir", false); err != nil {
			tst.Fatalf("MkDir failed: %v", err)
		}

		writer, err := m.Create(ctx, "/dir/test.txt")
		if err != nil {
			tst.Fatalf("Create failed: %v", err)
		}
		if _, err := writer.Write([]byte("data")); err != nil {
			tst.Fatalf("Write failed: %v", err)
		}

		if err := m.Remove(ctx, "/dir"); err != nil {
			tst.Fatalf("Remove failed: %v", err)
		}

		if err := writer.Close(); !errors.Is(err, data.ErrParentNotExist) {
			tst.Errorf("Expected ErrParentNotExist on commit, got %v", err)
		}
	})
}
