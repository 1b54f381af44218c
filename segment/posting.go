// Package segment implements the on-disk and in-memory segment formats that
// back the main index: an append-only, immutable pair of files per segment
// (a term dictionary and a postings blob) plus the in-memory accumulator
// that is flushed to produce them.
package segment

// Posting is a single term occurrence record: the document it occurs in and
// how many times the term occurs in that document.
type Posting struct {
	DocID uint64
	TF    uint32
}

// TermInfo locates a term's postings list within a segment's postings.bin
// file and records its document frequency.
type TermInfo struct {
	DF             uint32
	PostingsOffset int64
	PostingsLen    int64
}
