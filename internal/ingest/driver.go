package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gcbaptista/segindex/config"
	"github.com/gcbaptista/segindex/internal/logbus"
	"github.com/gcbaptista/segindex/internal/parse"
	"github.com/gcbaptista/segindex/services"
)

// Result summarizes one call to Run.
type Result struct {
	FilesIndexed int
	FilesSkipped int
	FilesFailed  int
	BytesRead    int64
	Duration     time.Duration
}

// Run walks cfg.Path, parses every file whose extension has a registered
// parser, and adds the resulting tokens to idx. Parsing fans out across
// cfg.MaxWorkers goroutines; each document's own AddDocument call is
// serialized by the index's internal lock, so only parsing runs in
// parallel. A file is skipped without being reparsed if it was indexed more
// recently than its own last modification. If onProgress is non-nil, it is
// called after every file a worker finishes, reporting how many of the
// discovered paths have been processed so far; it may be nil.
func Run(cfg config.IngestConfig, idx services.Indexer, registry parse.Registry, bus *logbus.Bus, onProgress func(processed, total int)) (Result, error) {
	cfg = cfg.WithDefaults()
	start := time.Now()

	paths, err := Walk(cfg.Path, cfg.Hidden, cfg.SkipPaths)
	if err != nil {
		return Result{}, err
	}

	var indexed, skipped, failed, bytesRead, processed int64
	total := len(paths)

	work := make(chan string, total)
	for _, p := range paths {
		work <- p
	}
	close(work)

	var wg sync.WaitGroup
	for w := 0; w < cfg.MaxWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range work {
				switch processOne(path, idx, registry, bus) {
				case outcomeIndexed:
					atomic.AddInt64(&indexed, 1)
					if info, err := os.Stat(path); err == nil {
						atomic.AddInt64(&bytesRead, info.Size())
					}
				case outcomeSkipped:
					atomic.AddInt64(&skipped, 1)
				case outcomeFailed:
					atomic.AddInt64(&failed, 1)
				}
				if onProgress != nil {
					onProgress(int(atomic.AddInt64(&processed, 1)), total)
				}
			}
		}()
	}
	wg.Wait()

	if err := idx.Commit(); err != nil {
		return Result{}, err
	}

	return Result{
		FilesIndexed: int(indexed),
		FilesSkipped: int(skipped),
		FilesFailed:  int(failed),
		BytesRead:    bytesRead,
		Duration:     time.Since(start),
	}, nil
}

type outcome int

const (
	outcomeSkipped outcome = iota
	outcomeIndexed
	outcomeFailed
)

func processOne(path string, idx services.Indexer, registry parse.Registry, bus *logbus.Bus) outcome {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := registry[ext]; !ok {
		return outcomeSkipped
	}

	if !isStale(path, idx) {
		return outcomeSkipped
	}

	tokens, err := registry.Parse(path)
	if err != nil {
		bus.Infof("skipped document %s: %v", path, err)
		return outcomeSkipped
	}

	if err := idx.AddDocument(path, tokens); err != nil {
		bus.Errorf("failed to add document %s: %v", path, err)
		return outcomeFailed
	}
	return outcomeIndexed
}

// isStale reports whether path needs (re)indexing: true if it has never been
// indexed, or if it was modified after its last indexing timestamp.
func isStale(path string, idx services.Indexer) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}

	info, found := idx.GetDocInfo(path)
	if !found {
		return true
	}
	return info.IndexedAt.Before(fi.ModTime())
}
