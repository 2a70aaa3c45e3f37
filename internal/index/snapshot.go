package index

import "github.com/wizenheimer/rir/internal/dictionary"

// Postings returns a defensive copy of every term's posting list, keyed by
// term id. Used by internal/persist to serialize the index: document
// frequency, term frequency, and document length are all derivable from
// postings alone (each token contributes exactly one occurrence to its
// term's frequency in its document, so summing term frequencies across a
// document's postings recovers that document's length), so only postings
// plus the two counters below need to survive a save/load round trip.
func (idx *Index) Postings() map[dictionary.TermID][]Posting {
	out := make(map[dictionary.TermID][]Posting, len(idx.postings))
	for term, postings := range idx.postings {
		copied := make([]Posting, len(postings))
		for i, p := range postings {
			positions := make([]TermOffset, len(p.Positions))
			copy(positions, p.Positions)
			copied[i] = Posting{DocID: p.DocID, TermFrequency: p.TermFrequency, Positions: positions}
		}
		out[term] = copied
	}
	return out
}

// NextDocID returns the most recently assigned document id (0 for an empty
// index); the next AddDocument call assigns NextDocID()+1.
func (idx *Index) NextDocID() DocID { return idx.nextDocID }

// BuildFromPostings reconstructs a complete Index from a postings table
// plus the id counters recorded alongside it, recomputing every derived
// statistic (document frequency, term frequency, document length,
// averages) by walking the postings once.
func BuildFromPostings(postings map[dictionary.TermID][]Posting, documentCount uint32, nextDocID DocID) *Index {
	idx := New()
	idx.documentCount = documentCount
	idx.nextDocID = nextDocID

	docLengths := make(map[DocID]uint32)
	for term, list := range postings {
		copied := make([]*Posting, len(list))
		for i, p := range list {
			positions := make([]TermOffset, len(p.Positions))
			copy(positions, p.Positions)
			copied[i] = &Posting{DocID: p.DocID, TermFrequency: p.TermFrequency, Positions: positions}

			idx.documentFrequency[term]++
			idx.termFrequency[termDocKey{Term: term, Doc: p.DocID}] = p.TermFrequency
			docLengths[p.DocID] += p.TermFrequency
		}
		idx.postings[term] = copied
	}

	var total uint32
	for doc, length := range docLengths {
		idx.documentLength[doc] = length
		total += length
	}
	// Zero-length documents have no postings; give them their 0 length.
	for doc := DocID(1); doc <= nextDocID; doc++ {
		if _, ok := idx.documentLength[doc]; !ok {
			idx.documentLength[doc] = 0
		}
	}
	idx.totalDocumentLength = total
	if documentCount > 0 {
		idx.averageDocumentLength = float32(total) / float32(documentCount)
	}

	return idx
}
