package segment

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	segerrors "github.com/gcbaptista/segindex/internal/errors"
	"github.com/gcbaptista/segindex/internal/persistence"
)

// DictFileName and PostingsFileName are the two files that make up an
// immutable on-disk segment.
const (
	DictFileName     = "term.dict"
	PostingsFileName = "postings.bin"
)

// SegmentDirName returns the directory name for segment id.
func SegmentDirName(id uint64) string {
	return fmt.Sprintf("segment_%d", id)
}

// Flush writes the in-memory segment to indexDir/segment_{id}/ as an
// immutable pair of files: postings.bin holds each term's postings list,
// sorted by document id and gob-encoded back to back; term.dict maps each
// term to its document frequency and byte range within postings.bin. Terms
// are visited in lexicographic order, so postings.bin lays their lists out
// in that order. Flush does not reset the in-memory segment;
// callers that want to reuse it should call Reset afterwards.
func Flush(id uint64, seg *InMemorySegment, indexDir string) error {
	seg.Mu.Lock()
	defer seg.Mu.Unlock()

	segDir := filepath.Join(indexDir, SegmentDirName(id))
	if err := os.MkdirAll(segDir, 0750); err != nil {
		return fmt.Errorf("create segment dir %s: %w", segDir, err)
	}

	terms := make([]string, 0, len(seg.Postings))
	for term := range seg.Postings {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	dict := make(map[string]TermInfo, len(terms))
	var postingsBuf bytes.Buffer

	for _, term := range terms {
		postings := seg.Postings[term]
		sort.Slice(postings, func(i, j int) bool { return postings[i].DocID < postings[j].DocID })

		var entryBuf bytes.Buffer
		if err := gob.NewEncoder(&entryBuf).Encode(postings); err != nil {
			return segerrors.NewSegmentError(id, PostingsFileName, err)
		}

		offset := int64(postingsBuf.Len())
		postingsBuf.Write(entryBuf.Bytes())

		dict[term] = TermInfo{
			DF:             uint32(len(postings)),
			PostingsOffset: offset,
			PostingsLen:    int64(entryBuf.Len()),
		}
	}

	postingsPath := filepath.Join(segDir, PostingsFileName)
	if err := os.WriteFile(postingsPath, postingsBuf.Bytes(), 0640); err != nil { // #nosec G306 -- segment data is not sensitive
		return fmt.Errorf("write %s: %w", postingsPath, err)
	}

	dictPath := filepath.Join(segDir, DictFileName)
	if err := persistence.SaveGob(dictPath, dict); err != nil {
		return segerrors.NewSegmentError(id, DictFileName, err)
	}

	return nil
}
