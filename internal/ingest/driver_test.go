package ingest

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gcbaptista/segindex/config"
	"github.com/gcbaptista/segindex/internal/logbus"
	"github.com/gcbaptista/segindex/internal/mainindex"
	"github.com/gcbaptista/segindex/internal/parse"
)

func TestRun_IndexesSupportedFilesAndSkipsUnsupported(t *testing.T) {
	srcDir := t.TempDir()
	writeFile(t, filepath.Join(srcDir, "a.txt"), "apples and oranges")
	writeFile(t, filepath.Join(srcDir, "b.md"), "bananas and oranges")
	writeFile(t, filepath.Join(srcDir, "ignore.bin"), "\x00\x01")

	idx, err := mainindex.Open(t.TempDir(), 100)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	bus := logbus.NewStderr()
	defer bus.Close()

	result, err := Run(config.IngestConfig{Path: srcDir}, idx, parse.Default(), bus, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.FilesIndexed != 2 {
		t.Errorf("expected 2 files indexed, got %d", result.FilesIndexed)
	}
	if result.FilesSkipped != 1 {
		t.Errorf("expected 1 file skipped, got %d", result.FilesSkipped)
	}

	// "orang" occurs in both documents, so its idf is |ln(2/2)| = 0 and it
	// scores nothing; query one term unique to each document instead.
	results, err := idx.Search([]string{"appl", "banana"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected both documents to be searchable, got %v", results)
	}
}

func TestRun_SecondRunSkipsUnchangedFiles(t *testing.T) {
	srcDir := t.TempDir()
	writeFile(t, filepath.Join(srcDir, "a.txt"), "stable content")

	idx, err := mainindex.Open(t.TempDir(), 100)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	bus := logbus.NewStderr()
	defer bus.Close()

	if _, err := Run(config.IngestConfig{Path: srcDir}, idx, parse.Default(), bus, nil); err != nil {
		t.Fatalf("first Run: %v", err)
	}

	result, err := Run(config.IngestConfig{Path: srcDir}, idx, parse.Default(), bus, nil)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if result.FilesIndexed != 0 || result.FilesSkipped != 1 {
		t.Errorf("expected unchanged file to be skipped on reindex, got %+v", result)
	}
}

func TestRun_ReindexesModifiedFile(t *testing.T) {
	srcDir := t.TempDir()
	path := filepath.Join(srcDir, "a.txt")
	writeFile(t, path, "original content")

	idx, err := mainindex.Open(t.TempDir(), 100)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	bus := logbus.NewStderr()
	defer bus.Close()

	if _, err := Run(config.IngestConfig{Path: srcDir}, idx, parse.Default(), bus, nil); err != nil {
		t.Fatalf("first Run: %v", err)
	}

	future := time.Now().Add(2 * time.Second)
	writeFile(t, path, "revised content")
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	result, err := Run(config.IngestConfig{Path: srcDir}, idx, parse.Default(), bus, nil)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if result.FilesIndexed != 1 {
		t.Errorf("expected modified file to be reindexed, got %+v", result)
	}
}

func TestRun_ReportsProgressPerFile(t *testing.T) {
	srcDir := t.TempDir()
	writeFile(t, filepath.Join(srcDir, "a.txt"), "apples")
	writeFile(t, filepath.Join(srcDir, "b.txt"), "bananas")
	writeFile(t, filepath.Join(srcDir, "c.txt"), "cherries")

	idx, err := mainindex.Open(t.TempDir(), 100)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	bus := logbus.NewStderr()
	defer bus.Close()

	var calls int64
	var lastProcessed, lastTotal int
	_, err = Run(config.IngestConfig{Path: srcDir}, idx, parse.Default(), bus, func(processed, total int) {
		atomic.AddInt64(&calls, 1)
		lastProcessed, lastTotal = processed, total
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if calls != 3 {
		t.Errorf("expected one progress callback per file (3), got %d", calls)
	}
	if lastTotal != 3 {
		t.Errorf("expected total of 3, got %d", lastTotal)
	}
	if lastProcessed > 3 {
		t.Errorf("expected processed count to never exceed total, got %d", lastProcessed)
	}
}
