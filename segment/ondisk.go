package segment

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	segerrors "github.com/gcbaptista/segindex/internal/errors"
	"github.com/gcbaptista/segindex/internal/persistence"
)

// LoadDictionary reads a flushed segment's term.dict file. Missing files are
// surfaced as os.ErrNotExist so callers can tell a not-yet-created segment
// apart from a corrupt one.
func LoadDictionary(indexDir string, id uint64) (map[string]TermInfo, error) {
	dictPath := filepath.Join(indexDir, SegmentDirName(id), DictFileName)

	var dict map[string]TermInfo
	if err := persistence.LoadGob(dictPath, &dict); err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, segerrors.NewSegmentError(id, DictFileName, err)
	}
	return dict, nil
}

// ReadPostings reads the postings list for a single term out of a segment's
// postings.bin, using the byte range recorded in that term's TermInfo.
func ReadPostings(indexDir string, id uint64, info TermInfo) ([]Posting, error) {
	postingsPath := filepath.Join(indexDir, SegmentDirName(id), PostingsFileName)

	f, err := os.Open(postingsPath) // #nosec G304 -- path is built from trusted index directory and segment id
	if err != nil {
		return nil, segerrors.NewSegmentError(id, PostingsFileName, err)
	}
	defer f.Close()

	buf := make([]byte, info.PostingsLen)
	if _, err := f.ReadAt(buf, info.PostingsOffset); err != nil {
		return nil, segerrors.NewSegmentError(id, PostingsFileName, fmt.Errorf("read range [%d,%d): %w", info.PostingsOffset, info.PostingsOffset+info.PostingsLen, err))
	}

	var postings []Posting
	if err := gob.NewDecoder(bytes.NewReader(buf)).Decode(&postings); err != nil {
		return nil, segerrors.NewSegmentError(id, PostingsFileName, err)
	}
	return postings, nil
}
