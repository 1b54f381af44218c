// Package config provides configuration structures for the document indexer.
// It defines where index data lives, how ingest runs behave, and where
// diagnostic messages are routed.
package config

import "runtime"

// DefaultFlushThreshold is the number of documents an in-memory segment
// accumulates before it is flushed to disk, used when IngestConfig does not
// override it.
const DefaultFlushThreshold = 100

// DefaultMaxWorkers is the default size of the ingest worker pool: one
// worker per available CPU core.
var DefaultMaxWorkers = runtime.NumCPU()

// ErrorHandlerKind selects where log messages produced during an ingest run
// are written.
type ErrorHandlerKind int

const (
	// ErrorHandlerStderr writes messages to stderr.
	ErrorHandlerStderr ErrorHandlerKind = iota
	// ErrorHandlerFile appends messages to a file.
	ErrorHandlerFile
)

// IngestConfig controls a single ingest run: where documents live, where the
// index is persisted, and how the run is parallelized.
type IngestConfig struct {
	// Path is the file or directory to index. Directories are walked
	// recursively.
	Path string `json:"path"`
	// IndexDir is the directory where index files are stored.
	IndexDir string `json:"index_dir"`
	// Hidden allows indexing hidden files and directories when true.
	Hidden bool `json:"hidden"`
	// SkipPaths lists paths (as the walk produces them, joined onto Path) or
	// basenames to exclude from the walk.
	SkipPaths []string `json:"skip_paths"`
	// MaxWorkers bounds the number of documents parsed concurrently.
	MaxWorkers int `json:"max_workers"`
	// FlushThreshold is the number of documents an in-memory segment holds
	// before it is flushed to disk. ingest.Run does not read it; the index's
	// threshold is the maxSegmentDocs value passed to mainindex.Open.
	FlushThreshold uint64 `json:"flush_threshold"`
	// ErrorHandler selects where diagnostic messages are routed.
	ErrorHandler ErrorHandlerKind `json:"error_handler"`
	// LogFile is the destination path when ErrorHandler is ErrorHandlerFile.
	LogFile string `json:"log_file"`
}

// WithDefaults returns a copy of cfg with zero-valued fields replaced by
// sensible defaults.
func (cfg IngestConfig) WithDefaults() IngestConfig {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = DefaultMaxWorkers
	}
	if cfg.FlushThreshold == 0 {
		cfg.FlushThreshold = DefaultFlushThreshold
	}
	return cfg
}
