package index

import (
	"sort"

	"github.com/wizenheimer/rir/internal/dictionary"
)

// postingFor returns the Posting for (doc, term), or nil if term has never
// been indexed or has no occurrence in doc.
func (idx *Index) postingFor(doc DocID, term dictionary.TermID) *Posting {
	postings := idx.postings[term]
	i := sort.Search(len(postings), func(i int) bool { return postings[i].DocID >= doc })
	if i < len(postings) && postings[i].DocID == doc {
		return postings[i]
	}
	return nil
}

// First returns term's earliest position in doc.
func (idx *Index) First(doc DocID, term dictionary.TermID) (TermOffset, bool) {
	p := idx.postingFor(doc, term)
	if p == nil {
		return 0, false
	}
	return p.Positions[0], true
}

// Last returns term's latest position in doc.
func (idx *Index) Last(doc DocID, term dictionary.TermID) (TermOffset, bool) {
	p := idx.postingFor(doc, term)
	if p == nil {
		return 0, false
	}
	return p.Positions[len(p.Positions)-1], true
}

// Next returns term's earliest position in doc strictly after afterPosition.
// Runs in O(log k) for a posting with k occurrences via binary search, with
// two O(1) shortcuts for the common "past the end" / "before the start"
// cases.
func (idx *Index) Next(doc DocID, term dictionary.TermID, afterPosition TermOffset) (TermOffset, bool) {
	p := idx.postingFor(doc, term)
	if p == nil {
		return 0, false
	}
	positions := p.Positions
	if positions[len(positions)-1] <= afterPosition {
		return 0, false
	}
	if positions[0] > afterPosition {
		return positions[0], true
	}
	target := binarySearch(positions, 0, len(positions)-1, afterPosition,
		func(v, current TermOffset) bool { return v <= current },
		func(low, high int) int { return high },
	)
	return positions[target], true
}

// Prev returns term's latest position in doc strictly before
// beforePosition.
func (idx *Index) Prev(doc DocID, term dictionary.TermID, beforePosition TermOffset) (TermOffset, bool) {
	p := idx.postingFor(doc, term)
	if p == nil {
		return 0, false
	}
	positions := p.Positions
	if positions[0] >= beforePosition {
		return 0, false
	}
	if positions[len(positions)-1] < beforePosition {
		return positions[len(positions)-1], true
	}
	target := binarySearch(positions, 0, len(positions), beforePosition,
		func(v, current TermOffset) bool { return v < current },
		func(low, high int) int { return low },
	)
	return positions[target], true
}

// binarySearch narrows [low, high] until the gap is at most 1, advancing
// low while testFn(positions[mid], current) holds and advancing high
// otherwise, then resolves the final index via retval. This is the shared
// engine behind Next (seeking forward) and Prev (seeking backward); the two
// differ only in their testFn/retval pair.
func binarySearch(
	positions []TermOffset, low, high int, current TermOffset,
	testFn func(v, current TermOffset) bool,
	retval func(low, high int) int,
) int {
	for high-low > 1 {
		mid := (high + low) / 2
		if testFn(positions[mid], current) {
			low = mid
		} else {
			high = mid
		}
	}
	return retval(low, high)
}
