package analytics

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/gcbaptista/segindex/model"
)

func TestRecordIngestRun_AccumulatesIntoSummary(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "ingest_runs.json")
	s := NewService(dataFile)

	s.RecordIngestRun(model.IngestRunStats{
		IndexDir:     "/tmp/idx",
		FilesIndexed: 10,
		FilesFailed:  1,
		BytesRead:    2048,
		Duration:     50 * time.Millisecond,
	})
	s.RecordIngestRun(model.IngestRunStats{
		IndexDir:     "/tmp/idx",
		FilesIndexed: 20,
		FilesFailed:  0,
		BytesRead:    4096,
		Duration:     150 * time.Millisecond,
	})

	summary := s.GetSummary()
	if summary.TotalRuns != 2 {
		t.Fatalf("expected 2 runs, got %d", summary.TotalRuns)
	}
	if summary.TotalFilesIndexed != 30 {
		t.Errorf("expected 30 files indexed, got %d", summary.TotalFilesIndexed)
	}
	if summary.TotalFilesFailed != 1 {
		t.Errorf("expected 1 file failed, got %d", summary.TotalFilesFailed)
	}
	if summary.TotalBytesRead != 6144 {
		t.Errorf("expected 6144 bytes read, got %d", summary.TotalBytesRead)
	}
	if summary.AvgDuration != 100*time.Millisecond {
		t.Errorf("expected avg duration 100ms, got %v", summary.AvgDuration)
	}
	if len(summary.RecentRuns) != 2 {
		t.Errorf("expected 2 recent runs, got %d", len(summary.RecentRuns))
	}
}

func TestGetSummary_OnEmptyHistoryReturnsZeroValues(t *testing.T) {
	s := NewService(filepath.Join(t.TempDir(), "ingest_runs.json"))

	summary := s.GetSummary()
	if summary.TotalRuns != 0 {
		t.Fatalf("expected 0 runs, got %d", summary.TotalRuns)
	}
	if summary.AvgDuration != 0 {
		t.Errorf("expected zero avg duration, got %v", summary.AvgDuration)
	}
	if len(summary.RecentRuns) != 0 {
		t.Errorf("expected no recent runs, got %d", len(summary.RecentRuns))
	}
}

func TestRecordIngestRun_CapsRecentRunsShown(t *testing.T) {
	s := NewService(filepath.Join(t.TempDir(), "ingest_runs.json"))

	for i := 0; i < recentRunsShown+5; i++ {
		s.RecordIngestRun(model.IngestRunStats{FilesIndexed: 1})
	}

	summary := s.GetSummary()
	if summary.TotalRuns != recentRunsShown+5 {
		t.Fatalf("expected %d total runs, got %d", recentRunsShown+5, summary.TotalRuns)
	}
	if len(summary.RecentRuns) != recentRunsShown {
		t.Errorf("expected %d recent runs, got %d", recentRunsShown, len(summary.RecentRuns))
	}
}

func TestNewService_ReloadsPersistedHistory(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "ingest_runs.json")

	first := NewService(dataFile)
	first.RecordIngestRun(model.IngestRunStats{FilesIndexed: 7})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		second := NewService(dataFile)
		if second.GetSummary().TotalRuns == 1 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("expected persisted run history to be reloaded")
}
