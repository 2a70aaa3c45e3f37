package index

import (
	"sort"

	"github.com/RoaringBitmap/roaring"

	"github.com/wizenheimer/rir/internal/dictionary"
)

// Docs returns the set of documents containing term as a roaring bitmap,
// and whether term has ever been indexed at all. Doc-set operations
// (DocsContainAll's intersection, DocsContainAny's union) are exactly what
// roaring bitmaps are built for: compressed, fast set algebra over dense
// runs of small integers, which document ids are.
func (idx *Index) Docs(term dictionary.TermID) (*roaring.Bitmap, bool) {
	postings, ok := idx.postings[term]
	if !ok {
		return nil, false
	}
	bm := roaring.New()
	for _, p := range postings {
		bm.Add(uint32(p.DocID))
	}
	return bm, true
}

// DocsContainAll intersects the document sets of every term the index
// knows; terms it has never indexed are skipped. Returns (nil, false) if
// none of the terms are known to the index.
func (idx *Index) DocsContainAll(terms []dictionary.TermID) (*roaring.Bitmap, bool) {
	var result *roaring.Bitmap
	for _, term := range terms {
		set, ok := idx.Docs(term)
		if !ok {
			continue
		}
		if result == nil {
			result = set
			continue
		}
		result.And(set)
	}
	if result == nil {
		return nil, false
	}
	return result, true
}

// DocsContainAny unions the document sets of every term.
func (idx *Index) DocsContainAny(terms []dictionary.TermID) *roaring.Bitmap {
	result := roaring.New()
	for _, term := range terms {
		set, ok := idx.Docs(term)
		if !ok {
			continue
		}
		result.Or(set)
	}
	return result
}

// DocIDs materializes a bitmap's members as DocIDs, in ascending order
// (roaring.Bitmap.ToArray already guarantees this).
func DocIDs(bm *roaring.Bitmap) []DocID {
	if bm == nil {
		return nil
	}
	raw := bm.ToArray()
	out := make([]DocID, len(raw))
	for i, v := range raw {
		out[i] = DocID(v)
	}
	return out
}

// Stats summarizes the index's corpus statistics, resolving term ids back
// to their text via dict for display.
func (idx *Index) Stats(dict *dictionary.Dictionary) Stats {
	termFreq := make(map[dictionary.TermID]uint32)
	for key, freq := range idx.termFrequency {
		termFreq[key.Term] += freq
	}

	entries := make([]TermFreqEntry, 0, len(termFreq))
	for term, freq := range termFreq {
		entries = append(entries, TermFreqEntry{Term: term, Text: dict.GetTerm(term), Freq: freq})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Freq != entries[j].Freq {
			return entries[i].Freq > entries[j].Freq
		}
		return entries[i].Term < entries[j].Term
	})

	return Stats{
		TotalDocumentLength:   idx.totalDocumentLength,
		AverageDocumentLength: idx.averageDocumentLength,
		DocumentCount:         idx.documentCount,
		TermFreq:              entries,
	}
}
