package index

import "github.com/wizenheimer/rir/internal/dictionary"

// PhraseMatch is one occurrence of a phrase, given as the token offsets of
// its first and last term.
type PhraseMatch struct {
	Start TermOffset
	End   TermOffset
}

// NextPhrase finds the first occurrence of phrase in doc starting strictly
// after position, by alternating forward Next calls (to find a candidate
// end) with backward Prev calls (to find where that candidate's phrase
// would have to start). If the window the backward pass lands on isn't
// contiguous (doesn't span exactly len(phrase)-1 positions), the candidate
// is invalid and the search recurses from the new position — this
// converges because each recursive call strictly advances past the
// previous candidate's start.
func (idx *Index) NextPhrase(doc DocID, phrase []dictionary.TermID, position TermOffset) (PhraseMatch, bool) {
	if len(phrase) <= 1 {
		return PhraseMatch{}, false
	}

	end := position
	for _, term := range phrase {
		pos, ok := idx.Next(doc, term, end)
		if !ok {
			return PhraseMatch{}, false
		}
		end = pos
	}

	start := end
	for i := len(phrase) - 2; i >= 0; i-- {
		pos, ok := idx.Prev(doc, phrase[i], start)
		if !ok {
			// The forward pass just confirmed every term occurs at or
			// before `end`; the backward pass walking the same terms
			// cannot fail to find a predecessor.
			panic("index: phrase traversal found a forward match with no backward counterpart")
		}
		start = pos
	}

	if start < end && uint32(end-start) == uint32(len(phrase)-1) {
		return PhraseMatch{Start: start, End: end}, true
	}
	return idx.NextPhrase(doc, phrase, start)
}

// AllPhrase returns every occurrence of phrase in doc, in ascending order.
// A single-term "phrase" returns every position of that term, as (pos,
// pos) pairs.
func (idx *Index) AllPhrase(doc DocID, phrase []dictionary.TermID) []PhraseMatch {
	var result []PhraseMatch
	if len(phrase) == 0 {
		return result
	}
	if len(phrase) == 1 {
		p := idx.postingFor(doc, phrase[0])
		if p == nil {
			return result
		}
		for _, pos := range p.Positions {
			result = append(result, PhraseMatch{Start: pos, End: pos})
		}
		return result
	}

	pos := BOF
	for {
		match, ok := idx.NextPhrase(doc, phrase, pos)
		if !ok {
			break
		}
		result = append(result, match)
		pos = match.Start
	}
	return result
}

// SearchPhrase ranks documents containing every term in phrase by how many
// times the full phrase occurs in them, descending. Documents missing any
// term of the phrase never appear, regardless of ranking policy for
// unknown terms — that filtering happens one layer up, in the engine's
// query path.
func (idx *Index) SearchPhrase(phrase []dictionary.TermID) []DocScore {
	var scores []DocScore
	docs, ok := idx.DocsContainAll(phrase)
	if !ok {
		return scores
	}
	for _, doc := range DocIDs(docs) {
		matches := idx.AllPhrase(doc, phrase)
		if len(matches) > 0 {
			scores = append(scores, DocScore{DocID: doc, Score: float32(len(matches))})
		}
	}
	sortDescending(scores)
	return scores
}
