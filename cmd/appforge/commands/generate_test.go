package commands

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteProjectFilesWritesNestedPaths(t *testing.T) {
	dir := t.TempDir()

	err := writeProjectFiles(dir, map[string]string{
		"index.html":           "<html></html>",
		"app/views/index.html": "<html>nested</html>",
	})
	if err != nil {
		t.Fatalf("expected files to be written: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "app", "views", "index.html"))
	if err != nil {
		t.Fatalf("nested file was not written: %v", err)
	}
	if string(content) != "<html>nested</html>" {
		t.Errorf("unexpected content %q", content)
	}
}

func TestWriteProjectFilesRejectsTraversal(t *testing.T) {
	parent := t.TempDir()
	dir := filepath.Join(parent, "out")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	err := writeProjectFiles(dir, map[string]string{
		"../escaped.txt": "nope",
	})
	if err == nil {
		t.Fatal("a path with .. traversal must be rejected")
	}
	if _, statErr := os.Stat(filepath.Join(parent, "escaped.txt")); statErr == nil {
		t.Error("a file was written outside the output directory")
	}
}

func TestWriteProjectFilesRejectsAbsolutePaths(t *testing.T) {
	dir := t.TempDir()

	err := writeProjectFiles(dir, map[string]string{
		"/etc/app.conf": "nope",
	})
	if err == nil {
		t.Fatal("an absolute path must be rejected")
	}
}

func TestWriteProjectFilesRejectsBeforeWritingAnything(t *testing.T) {
	dir := t.TempDir()

	err := writeProjectFiles(dir, map[string]string{
		"ok.txt":      "fine",
		"../evil.txt": "nope",
	})
	if err == nil {
		t.Fatal("one bad path must fail the whole write")
	}

	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if len(entries) != 0 {
		t.Error("no file may be written when any path is rejected")
	}
}
