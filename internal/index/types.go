// Package index implements the positional inverted index: per-term
// postings lists keyed by dictionary.TermID, corpus statistics used by the
// ranking family, and the traversal/phrase-matching primitives that work
// directly against posting position slices.
package index

import "github.com/wizenheimer/rir/internal/dictionary"

// DocID is a dense, 1-based document identifier assigned in insertion
// order. 0 is never a valid document id.
type DocID uint32

// TermOffset is a 1-based position of a term within a document's token
// stream. Two values are reserved as sentinels for phrase-matching
// boundary conditions and never occur as a real position: BOF (before the
// first token) and EOF (after the last token).
type TermOffset uint32

const (
	// BOF is the sentinel "position" used as a starting point when
	// searching forward from the beginning of a document.
	BOF TermOffset = 0
	// EOF is the sentinel "position" used as a starting point when
	// searching backward from the end of a document. TermOffset is a
	// uint32, so this is math.MaxUint32, not a distinguished error value.
	EOF TermOffset = ^TermOffset(0)
)

// Posting holds one term's occurrences within one document: how many times
// it occurred, and the strictly increasing list of token positions.
type Posting struct {
	DocID         DocID
	TermFrequency uint32
	Positions     []TermOffset
}

type termDocKey struct {
	Term dictionary.TermID
	Doc  DocID
}

// Index is the positional inverted index. It has no internal
// synchronization: it is owned and mutated by a single engine instance
// from one goroutine at a time, and read concurrently only in the sense
// that the ranking family borrows it read-only during a query (see
// SPEC_FULL.md §5).
type Index struct {
	postings map[dictionary.TermID][]*Posting

	nextDocID DocID

	// documentFrequency counts, per term, the number of documents the
	// term occurs in at least once.
	documentFrequency map[dictionary.TermID]uint32
	// termFrequency counts, per (term, doc) pair, how many times the
	// term occurs in that document.
	termFrequency map[termDocKey]uint32
	// documentLength is each document's length in tokens.
	documentLength map[DocID]uint32

	totalDocumentLength   uint32
	averageDocumentLength float32
	documentCount         uint32

	tfidf tfidfMatrix
}

// New returns an empty index.
func New() *Index {
	return &Index{
		postings:           make(map[dictionary.TermID][]*Posting),
		documentFrequency:  make(map[dictionary.TermID]uint32),
		termFrequency:      make(map[termDocKey]uint32),
		documentLength:     make(map[DocID]uint32),
		tfidf:              newTFIDFMatrix(),
	}
}

// DocumentCount returns the total number of documents indexed so far.
func (idx *Index) DocumentCount() uint32 { return idx.documentCount }

// TotalDocumentLength returns the sum, across all documents, of their
// token counts.
func (idx *Index) TotalDocumentLength() uint32 { return idx.totalDocumentLength }

// AverageDocumentLength returns the mean document length in tokens, or 0
// before any document has been added.
func (idx *Index) AverageDocumentLength() float32 { return idx.averageDocumentLength }

// DocumentLength returns the length in tokens of doc, and whether doc is
// known to the index.
func (idx *Index) DocumentLength(doc DocID) (uint32, bool) {
	n, ok := idx.documentLength[doc]
	return n, ok
}

// DocumentFrequency returns the number of documents term occurs in, and
// whether the term has ever been indexed.
func (idx *Index) DocumentFrequency(term dictionary.TermID) (uint32, bool) {
	n, ok := idx.documentFrequency[term]
	return n, ok
}

// TermFrequency returns how many times term occurs in doc, and whether
// that pair exists at all.
func (idx *Index) TermFrequency(term dictionary.TermID, doc DocID) (uint32, bool) {
	n, ok := idx.termFrequency[termDocKey{Term: term, Doc: doc}]
	return n, ok
}

// TermOccurrences returns the total number of times term occurs across
// the whole collection, summing its term frequency over every posting.
func (idx *Index) TermOccurrences(term dictionary.TermID) uint32 {
	var sum uint32
	for _, p := range idx.postings[term] {
		sum += p.TermFrequency
	}
	return sum
}

// IsValidDocID reports whether doc could name a document in this index.
// The upper bound is documentCount+1 to match the original implementation:
// a freshly constructed index (documentCount==0) still treats doc id 1 as
// "valid" shaped, even though no document has been added yet.
func (idx *Index) IsValidDocID(doc DocID) bool {
	return doc >= 1 && doc <= DocID(idx.documentCount)+1
}

// DocScore pairs a document id with a ranking score. Used by every scorer
// in internal/rank as well as by phrase search here.
type DocScore struct {
	DocID DocID
	Score float32
}

// TermFreqEntry is one row of Stats' collection-wide term frequency table.
type TermFreqEntry struct {
	Term dictionary.TermID
	Text string
	Freq uint32
}

// Stats summarizes the index for reporting (engine.Stats / the CLI's
// bare-invocation output).
type Stats struct {
	TotalDocumentLength   uint32
	AverageDocumentLength float32
	DocumentCount         uint32
	TermFreq              []TermFreqEntry
}
