package model

import "time"

// IngestRunStats records the outcome of a single ingest run for later
// reporting.
type IngestRunStats struct {
	IndexDir     string        `json:"index_dir"`
	FilesIndexed int           `json:"files_indexed"`
	FilesSkipped int           `json:"files_skipped"`
	FilesFailed  int           `json:"files_failed"`
	BytesRead    int64         `json:"bytes_read"`
	Duration     time.Duration `json:"duration_ns"`
	Timestamp    time.Time     `json:"timestamp"`
}

// SystemHealth reports process-level resource usage at snapshot time.
type SystemHealth struct {
	MemoryUsageMB float64 `json:"memory_usage_mb"`
	NumGoroutine  int     `json:"num_goroutine"`
}

// AnalyticsSummary is the aggregate view over recorded ingest runs.
type AnalyticsSummary struct {
	TotalRuns         int              `json:"total_runs"`
	TotalFilesIndexed int              `json:"total_files_indexed"`
	TotalFilesFailed  int              `json:"total_files_failed"`
	TotalBytesRead    int64            `json:"total_bytes_read"`
	AvgDuration       time.Duration    `json:"avg_duration_ns"`
	RecentRuns        []IngestRunStats `json:"recent_runs"`
	SystemHealth      SystemHealth     `json:"system_health"`
}
