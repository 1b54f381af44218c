package config

import "testing"

func TestWithDefaults_FillsZeroValues(t *testing.T) {
	cfg := IngestConfig{Path: "/tmp/docs", IndexDir: "/tmp/idx"}.WithDefaults()

	if cfg.MaxWorkers != DefaultMaxWorkers {
		t.Errorf("expected default max workers %d, got %d", DefaultMaxWorkers, cfg.MaxWorkers)
	}
	if cfg.FlushThreshold != DefaultFlushThreshold {
		t.Errorf("expected default flush threshold %d, got %d", DefaultFlushThreshold, cfg.FlushThreshold)
	}
}

func TestWithDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := IngestConfig{MaxWorkers: 4, FlushThreshold: 50}.WithDefaults()

	if cfg.MaxWorkers != 4 {
		t.Errorf("expected max workers 4, got %d", cfg.MaxWorkers)
	}
	if cfg.FlushThreshold != 50 {
		t.Errorf("expected flush threshold 50, got %d", cfg.FlushThreshold)
	}
}
