package ingest

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestWalk_FindsFilesRecursively(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	writeFile(t, filepath.Join(dir, "sub", "b.txt"), "b")

	files, err := Walk(dir, false, nil)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	sort.Strings(files)
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %v", files)
	}
}

func TestWalk_SkipsHiddenByDefault(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "visible.txt"), "v")
	writeFile(t, filepath.Join(dir, ".hidden.txt"), "h")
	writeFile(t, filepath.Join(dir, ".hiddendir", "c.txt"), "c")

	files, err := Walk(dir, false, nil)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 visible file, got %v", files)
	}
}

func TestWalk_HiddenTrueIncludesDotfiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".hidden.txt"), "h")

	files, err := Walk(dir, true, nil)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected hidden file to be included, got %v", files)
	}
}

func TestWalk_SkipPathsPrunesSubtree(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.txt"), "k")
	writeFile(t, filepath.Join(dir, "skipme", "a.txt"), "a")

	files, err := Walk(dir, false, []string{"skipme"})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected skipme subtree pruned, got %v", files)
	}
}

func TestWalk_SingleFileReturnsItself(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "one.txt")
	writeFile(t, path, "one")

	files, err := Walk(path, false, nil)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(files) != 1 || files[0] != path {
		t.Fatalf("expected [%s], got %v", path, files)
	}
}

func TestWalk_MissingPathReturnsEmpty(t *testing.T) {
	files, err := Walk(filepath.Join(t.TempDir(), "nope"), false, nil)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected no files, got %v", files)
	}
}
