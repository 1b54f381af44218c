package segment

import "sync"

// InMemorySegment accumulates postings for documents added since the last
// flush. A single writer owns it at a time, but Mu is kept so callers can
// take a consistent snapshot (doc count plus postings) under one lock.
type InMemorySegment struct {
	Mu       sync.Mutex
	Postings map[string][]Posting
	DocCount uint64
}

// NewInMemorySegment creates an empty in-memory segment.
func NewInMemorySegment() *InMemorySegment {
	return &InMemorySegment{
		Postings: make(map[string][]Posting),
	}
}

// AddDoc folds a document's term frequencies into the segment and bumps the
// segment's document count by one. termFreqs maps a token to the number of
// times it occurs in the document; empty maps are a no-op on the postings
// but still count the document.
func (s *InMemorySegment) AddDoc(docID uint64, termFreqs map[string]uint32) {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	for term, tf := range termFreqs {
		s.Postings[term] = append(s.Postings[term], Posting{DocID: docID, TF: tf})
	}
	s.DocCount++
}

// ShouldFlush reports whether the segment has reached the configured
// document threshold and is due to be written to disk.
func (s *InMemorySegment) ShouldFlush(maxDocs uint64) bool {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.DocCount >= maxDocs
}

// Reset clears the segment's accumulated state so it can be reused for the
// next batch of documents after a flush.
func (s *InMemorySegment) Reset() {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.Postings = make(map[string][]Posting)
	s.DocCount = 0
}
