// Package analytics records and reports on ingest run throughput, following
// the teacher's mutex-guarded, JSON-persisted event log pattern.
package analytics

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/gcbaptista/segindex/model"
)

const (
	defaultDataFile = "analytics/ingest_runs.json"
	maxRunsToKeep   = 1000
	recentRunsShown = 20
)

// Service tracks ingest run statistics and persists them to disk.
type Service struct {
	mutex        sync.RWMutex
	runs         []model.IngestRunStats
	dataFilePath string
}

// NewService creates an analytics service, loading any previously persisted
// run history from dataFilePath. An empty path falls back to the default
// location relative to the current working directory.
func NewService(dataFilePath string) *Service {
	if dataFilePath == "" {
		dataFilePath = defaultDataFile
	}

	s := &Service{
		runs:         make([]model.IngestRunStats, 0),
		dataFilePath: dataFilePath,
	}

	if err := s.loadData(); err != nil {
		log.Printf("Warning: failed to load analytics data: %v", err)
	}

	return s
}

// RecordIngestRun appends a completed run's statistics and persists the
// updated history asynchronously.
func (s *Service) RecordIngestRun(stats model.IngestRunStats) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stats.Timestamp = time.Now()
	s.runs = append(s.runs, stats)

	if len(s.runs) > maxRunsToKeep {
		s.runs = s.runs[len(s.runs)-maxRunsToKeep:]
	}

	go func() {
		if err := s.saveData(); err != nil {
			log.Printf("Warning: failed to save analytics data: %v", err)
		}
	}()
}

// GetSummary returns an aggregate view over all recorded ingest runs.
func (s *Service) GetSummary() model.AnalyticsSummary {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	summary := model.AnalyticsSummary{
		TotalRuns:    len(s.runs),
		SystemHealth: s.systemHealth(),
	}

	var totalDuration time.Duration
	for _, r := range s.runs {
		summary.TotalFilesIndexed += r.FilesIndexed
		summary.TotalFilesFailed += r.FilesFailed
		summary.TotalBytesRead += r.BytesRead
		totalDuration += r.Duration
	}
	if len(s.runs) > 0 {
		summary.AvgDuration = totalDuration / time.Duration(len(s.runs))
	}

	start := 0
	if len(s.runs) > recentRunsShown {
		start = len(s.runs) - recentRunsShown
	}
	summary.RecentRuns = append([]model.IngestRunStats(nil), s.runs[start:]...)

	return summary
}

func (s *Service) systemHealth() model.SystemHealth {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return model.SystemHealth{
		MemoryUsageMB: float64(m.Alloc) / (1024 * 1024),
		NumGoroutine:  runtime.NumGoroutine(),
	}
}

func (s *Service) loadData() error {
	dir := filepath.Dir(s.dataFilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create analytics directory: %w", err)
	}

	if _, err := os.Stat(s.dataFilePath); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(s.dataFilePath)
	if err != nil {
		return fmt.Errorf("failed to read analytics file: %w", err)
	}

	return json.Unmarshal(data, &s.runs)
}

func (s *Service) saveData() error {
	s.mutex.RLock()
	data, err := json.MarshalIndent(s.runs, "", "  ")
	s.mutex.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal analytics data: %w", err)
	}

	dir := filepath.Dir(s.dataFilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create analytics directory: %w", err)
	}

	return os.WriteFile(s.dataFilePath, data, 0644)
}
