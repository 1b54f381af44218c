// Package services defines the narrow interfaces the HTTP and CLI front
// ends depend on, so they can be driven by either a live Main Index or a
// test double.
package services

import (
	"github.com/gcbaptista/segindex/internal/search"
	"github.com/gcbaptista/segindex/model"
	"github.com/gcbaptista/segindex/store"
)

// Indexer adds parsed documents to an index.
type Indexer interface {
	AddDocument(path string, terms []string) error
	Commit() error
	// GetDocInfo exposes prior indexing metadata so callers can skip
	// documents that have not changed since they were last indexed.
	GetDocInfo(path string) (store.DocInfo, bool)
}

// Searcher answers free-text queries against an index.
type Searcher interface {
	Search(tokens []string) ([]search.Result, error)
}

// IndexAccessor is the combination of Indexer and Searcher exposed to the
// ingest driver and the query front ends.
type IndexAccessor interface {
	Indexer
	Searcher
}

// JobManager tracks background ingest runs.
type JobManager interface {
	GetJob(jobID string) (*model.Job, error)
	ListJobs(indexDir string, status *model.JobStatus) []*model.Job
}
