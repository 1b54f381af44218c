// Package testing provides shared test helpers for exercising a Main Index
// end to end without duplicating setup/teardown in every package.
package testing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/segindex/internal/mainindex"
	"github.com/gcbaptista/segindex/model"
	"github.com/gcbaptista/segindex/services"
)

// CreateTestIndex opens a Main Index rooted at a fresh temporary directory
// that t.TempDir() cleans up automatically.
func CreateTestIndex(t *testing.T, maxSegmentDocs uint64) *mainindex.Index {
	t.Helper()
	idx, err := mainindex.Open(t.TempDir(), maxSegmentDocs)
	require.NoError(t, err, "failed to open test index")
	return idx
}

// JobPollingOptions configures job polling behavior.
type JobPollingOptions struct {
	Timeout      time.Duration
	PollInterval time.Duration
}

// DefaultJobPollingOptions returns sensible defaults for job polling.
func DefaultJobPollingOptions() JobPollingOptions {
	return JobPollingOptions{
		Timeout:      10 * time.Second,
		PollInterval: 20 * time.Millisecond,
	}
}

// WaitForJobCompletion polls a job until it completes or times out.
func WaitForJobCompletion(t *testing.T, jobManager services.JobManager, jobID string, opts JobPollingOptions) *model.Job {
	t.Helper()

	deadline := time.After(opts.Timeout)
	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			t.Fatalf("job %s did not complete within %v", jobID, opts.Timeout)
		case <-ticker.C:
			job, err := jobManager.GetJob(jobID)
			require.NoError(t, err, "failed to get job status")

			switch job.Status {
			case model.JobStatusCompleted, model.JobStatusFailed:
				return job
			}
		}
	}
}
