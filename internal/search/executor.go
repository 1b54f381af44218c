// Package search implements the Search Executor: a two-pass TF·IDF scan
// over a Main Index's active segments.
package search

import (
	"math"
	"sort"

	"github.com/gcbaptista/segindex/segment"
	"github.com/gcbaptista/segindex/store"
)

// Result is a single ranked search hit.
type Result struct {
	Path  string
	Score float64
}

// Executor runs a search against a fixed snapshot of a Main Index's active
// segments and Document Store. It is stateless beyond that snapshot and
// safe to reuse across queries.
type Executor struct {
	IndexDir       string
	ActiveSegments []uint64
	DocStore       *store.DocumentStore
}

// dictHit records where a query token was found: which segment and its
// TermInfo there.
type dictHit struct {
	segmentID uint64
	info      segment.TermInfo
}

// Search performs the two-pass TF·IDF scan described by the Search
// Executor: pass one gathers per-segment dictionary hits and global
// document frequencies for the query tokens; pass two reads the relevant
// postings ranges and accumulates tf×idf into per-document scores. Results
// are sorted by descending score; documents whose score is exactly zero
// (including the single-document-corpus idf=0 corner case) are omitted.
func (e Executor) Search(tokens []string) ([]Result, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	n := float64(e.DocStore.TotalDocs())

	hits := make(map[string][]dictHit)
	globalDF := make(map[string]uint32)

	for _, segID := range e.ActiveSegments {
		dict, err := segment.LoadDictionary(e.IndexDir, segID)
		if err != nil {
			// A corrupt or missing segment dictionary is skipped per the
			// fatal-index-corruption recovery policy; it does not abort
			// the search.
			continue
		}
		for _, token := range tokens {
			info, ok := dict[token]
			if !ok {
				continue
			}
			hits[token] = append(hits[token], dictHit{segmentID: segID, info: info})
			globalDF[token] += info.DF
		}
	}

	scores := make(map[uint64]float64)
	order := make([]uint64, 0)

	for _, token := range tokens {
		df := globalDF[token]
		if df == 0 {
			continue
		}
		idf := math.Abs(math.Log(n / float64(df)))

		for _, hit := range hits[token] {
			postings, err := segment.ReadPostings(e.IndexDir, hit.segmentID, hit.info)
			if err != nil {
				continue
			}
			for _, p := range postings {
				if _, seen := scores[p.DocID]; !seen {
					order = append(order, p.DocID)
				}
				scores[p.DocID] += float64(p.TF) * idf
			}
		}
	}

	results := make([]Result, 0, len(order))
	for _, docID := range order {
		score := scores[docID]
		if score == 0 {
			continue
		}
		path, ok := e.DocStore.GetPath(docID)
		if !ok {
			continue
		}
		results = append(results, Result{Path: path, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	return results, nil
}
