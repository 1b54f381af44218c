// Package parse holds the per-format document parsers and the registry
// that dispatches a file to its parser by extension. Every parser has the
// same signature: read a file at a path and return an ordered sequence of
// stemmed, stop-word-filtered tokens.
package parse

import (
	"path/filepath"
	"strings"

	segindexerrors "github.com/gcbaptista/segindex/internal/errors"
)

// Func parses a single document into its token sequence.
type Func func(path string) ([]string, error)

// Registry maps a lower-cased file extension (including the leading dot) to
// the parser that handles it.
type Registry map[string]Func

// Default returns the registry wired for every format the core supports:
// text/markdown, HTML, XML/XHTML, CSV, and PDF.
func Default() Registry {
	return Registry{
		".txt":   ParseText,
		".md":    ParseText,
		".html":  ParseHTML,
		".htm":   ParseHTML,
		".xml":   ParseXML,
		".xhtml": ParseXML,
		".csv":   ParseCSV,
		".pdf":   ParsePDF,
	}
}

// Parse dispatches path to the parser registered for its extension. An
// unregistered extension yields an UnsupportedExtensionError rather than a
// panic, so the ingest driver can skip the document and log it.
func (r Registry) Parse(path string) ([]string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	fn, ok := r[ext]
	if !ok {
		return nil, segindexerrors.NewUnsupportedExtensionError(path, ext)
	}
	return fn(path)
}
