// Package mainindex implements the Main Index façade: it owns the index
// directory layout, the Document Store, the list of active on-disk
// segments, and the current in-memory segment, and exposes add_document,
// commit, and search to callers.
package mainindex

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/gcbaptista/segindex/internal/persistence"
	"github.com/gcbaptista/segindex/internal/search"
	"github.com/gcbaptista/segindex/segment"
	"github.com/gcbaptista/segindex/store"
)

// DefaultMaxSegmentDocs is the flush threshold used when a caller does not
// configure one explicitly.
const DefaultMaxSegmentDocs = 100

const docStoreFileName = "docstore.bin"

var segmentDirPattern = regexp.MustCompile(`^segment_(\d+)$`)

// Index is the Main Index. A single writer mutates it at a time; searches
// take a read lock.
type Index struct {
	mu sync.RWMutex

	dir            string
	docStore       *store.DocumentStore
	activeSegments []uint64
	current        *segment.InMemorySegment
	nextSegment    uint64
	maxSegmentDocs uint64
}

// Open loads or creates a Main Index rooted at dir. A missing or malformed
// docstore.bin yields an empty Document Store rather than an error, per the
// recovery policy for fatal index corruption. maxSegmentDocs of 0 selects
// DefaultMaxSegmentDocs.
func Open(dir string, maxSegmentDocs uint64) (*Index, error) {
	if maxSegmentDocs == 0 {
		maxSegmentDocs = DefaultMaxSegmentDocs
	}

	ds := store.New()
	docStorePath := filepath.Join(dir, docStoreFileName)
	if err := persistence.LoadGob(docStorePath, ds); err != nil && !os.IsNotExist(err) {
		ds = store.New()
	}

	active, err := discoverSegments(dir)
	if err != nil {
		return nil, err
	}

	var next uint64 = 1
	if len(active) > 0 {
		next = active[len(active)-1] + 1
	}

	return &Index{
		dir:            dir,
		docStore:       ds,
		activeSegments: active,
		current:        segment.NewInMemorySegment(),
		nextSegment:    next,
		maxSegmentDocs: maxSegmentDocs,
	}, nil
}

// discoverSegments enumerates dir for entries matching segment_{n} and
// returns their ids in ascending order. Non-matching entries are ignored.
func discoverSegments(dir string) ([]uint64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var ids []uint64
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		m := segmentDirPattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		id, err := strconv.ParseUint(m[1], 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// AddDocument folds a parsed document's tokens into the current in-memory
// segment, updates the document's indexed-at timestamp, and flushes a new
// on-disk segment if the threshold is reached. An empty token list is a
// no-op success.
func (idx *Index) AddDocument(path string, terms []string) error {
	if len(terms) == 0 {
		return nil
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	docID := idx.docStore.GetID(path)

	freqs := make(map[string]uint32, len(terms))
	for _, term := range terms {
		freqs[term]++
	}
	idx.current.AddDoc(docID, freqs)
	idx.docStore.SetIndexedAt(docID, time.Now())

	if idx.current.ShouldFlush(idx.maxSegmentDocs) {
		return idx.flushCurrentLocked()
	}
	return nil
}

// flushCurrentLocked flushes the current in-memory segment under a new
// segment id and registers it as active. Caller must hold idx.mu.
func (idx *Index) flushCurrentLocked() error {
	segID := idx.nextSegment
	if err := segment.Flush(segID, idx.current, idx.dir); err != nil {
		return err
	}
	idx.nextSegment++
	idx.activeSegments = append(idx.activeSegments, segID)
	idx.current.Reset()
	return nil
}

// Commit flushes any residual in-memory segment and persists the Document
// Store. Calling Commit twice in a row with no intervening writes is a
// no-op on the second call.
func (idx *Index) Commit() error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.current.DocCount > 0 {
		if err := idx.flushCurrentLocked(); err != nil {
			return err
		}
	}

	docStorePath := filepath.Join(idx.dir, docStoreFileName)
	tmpPath := docStorePath + ".tmp"
	if err := persistence.SaveGob(tmpPath, idx.docStore); err != nil {
		return fmt.Errorf("persist %s: %w", docStoreFileName, err)
	}
	return os.Rename(tmpPath, docStorePath)
}

// GetDocInfo exposes the Document Store's per-document metadata, used by
// the ingest driver's staleness check.
func (idx *Index) GetDocInfo(path string) (store.DocInfo, bool) {
	id, ok := idx.docStore.Lookup(path)
	if !ok {
		return store.DocInfo{}, false
	}
	return idx.docStore.GetDocInfo(id)
}

// Search runs the Search Executor over the index's current active segments
// and Document Store. It takes a read lock only long enough to snapshot the
// segment list; the scan itself runs unlocked, consistent with segments
// being immutable once flushed.
func (idx *Index) Search(tokens []string) ([]search.Result, error) {
	idx.mu.RLock()
	segments := make([]uint64, len(idx.activeSegments))
	copy(segments, idx.activeSegments)
	idx.mu.RUnlock()

	exec := search.Executor{
		IndexDir:       idx.dir,
		ActiveSegments: segments,
		DocStore:       idx.docStore,
	}
	return exec.Search(tokens)
}

// ActiveSegmentCount returns the number of on-disk segments currently
// registered. Exposed mainly for tests.
func (idx *Index) ActiveSegmentCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.activeSegments)
}

// TotalDocs returns the number of distinct documents ever added.
func (idx *Index) TotalDocs() uint64 {
	return idx.docStore.TotalDocs()
}
