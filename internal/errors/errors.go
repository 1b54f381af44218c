package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrSegmentCorrupt is returned when a segment's dictionary or
	// postings file fails to deserialise.
	ErrSegmentCorrupt = errors.New("segment corrupt")

	// ErrDocStoreCorrupt is returned when the document store blob fails
	// to deserialise.
	ErrDocStoreCorrupt = errors.New("document store corrupt")

	// ErrUnknownDocument is returned when an operation references a
	// document id that was never issued.
	ErrUnknownDocument = errors.New("unknown document id")

	// ErrUnsupportedExtension is returned when no parser is registered
	// for a file's extension.
	ErrUnsupportedExtension = errors.New("unsupported file extension")

	// ErrJobNotFound is returned when a job is not found
	ErrJobNotFound = errors.New("job not found")
)

// SegmentError represents a corrupt-segment error, naming which segment
// directory and file failed to deserialise.
type SegmentError struct {
	SegmentID uint64
	File      string
	Cause     error
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("segment_%d: %s: %v", e.SegmentID, e.File, e.Cause)
}

func (e *SegmentError) Unwrap() error { return e.Cause }

func (e *SegmentError) Is(target error) bool {
	return target == ErrSegmentCorrupt
}

// NewSegmentError creates a new SegmentError
func NewSegmentError(segmentID uint64, file string, cause error) *SegmentError {
	return &SegmentError{SegmentID: segmentID, File: file, Cause: cause}
}

// UnsupportedExtensionError reports a document whose extension has no
// registered parser.
type UnsupportedExtensionError struct {
	Path string
	Ext  string
}

func (e *UnsupportedExtensionError) Error() string {
	return fmt.Sprintf("no parser registered for extension %q (%s)", e.Ext, e.Path)
}

func (e *UnsupportedExtensionError) Is(target error) bool {
	return target == ErrUnsupportedExtension
}

// NewUnsupportedExtensionError creates a new UnsupportedExtensionError
func NewUnsupportedExtensionError(path, ext string) *UnsupportedExtensionError {
	return &UnsupportedExtensionError{Path: path, Ext: ext}
}

// JobNotFoundError represents a job not found error with context
type JobNotFoundError struct {
	JobID string
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("job with ID '%s' not found", e.JobID)
}

func (e *JobNotFoundError) Is(target error) bool {
	return target == ErrJobNotFound
}

// NewJobNotFoundError creates a new JobNotFoundError
func NewJobNotFoundError(jobID string) *JobNotFoundError {
	return &JobNotFoundError{JobID: jobID}
}
