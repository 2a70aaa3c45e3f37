package index

import "github.com/wizenheimer/rir/internal/dictionary"

// AddDocument appends one document (already analyzed into term ids) to the
// index and returns its assigned DocID. Grounded on build_from: offsets
// are 1-based token ordinals, a term's posting list only grows a new
// Posting when the previous entry belongs to a different document (the
// index is always built document-by-document, so for the current term the
// "current" document is always the most recent one touched), and document
// frequency is incremented at most once per document per term.
func (idx *Index) AddDocument(termIDs []dictionary.TermID) DocID {
	docID := idx.nextDocID + 1
	idx.nextDocID = docID

	docLength := uint32(len(termIDs))
	idx.documentLength[docID] = docLength
	idx.totalDocumentLength += docLength
	idx.documentCount++
	idx.averageDocumentLength = float32(idx.totalDocumentLength) / float32(idx.documentCount)

	seen := make(map[dictionary.TermID]struct{}, len(termIDs))
	for seq, tid := range termIDs {
		offset := TermOffset(seq + 1)

		postings := idx.postings[tid]
		if len(postings) == 0 || postings[len(postings)-1].DocID != docID {
			idx.postings[tid] = append(postings, &Posting{
				DocID:         docID,
				TermFrequency: 1,
				Positions:     []TermOffset{offset},
			})
		} else {
			last := postings[len(postings)-1]
			last.TermFrequency++
			last.Positions = append(last.Positions, offset)
		}

		idx.termFrequency[termDocKey{Term: tid, Doc: docID}]++

		if _, ok := seen[tid]; !ok {
			seen[tid] = struct{}{}
			idx.documentFrequency[tid]++
		}
	}

	return docID
}
