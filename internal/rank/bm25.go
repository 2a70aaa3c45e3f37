package rank

import (
	"math"

	"github.com/wizenheimer/rir/internal/dictionary"
	"github.com/wizenheimer/rir/internal/index"
)

// BM25Params holds Okapi BM25's tuning constants. k1 controls term
// frequency saturation; b controls how strongly document length is
// normalized against the collection average.
type BM25Params struct {
	K1 float32
	B  float32
}

// DefaultBM25Params returns the classic Okapi BM25 constants, k1=1.2 and
// b=0.75.
func DefaultBM25Params() BM25Params {
	return BM25Params{K1: 1.2, B: 0.75}
}

// RankBM25 scores documents with Okapi BM25:
//
//	score(d) = sum_t qt * ftd*(k1+1) / (k1*(1-b+b*(ld/lavg)) + ftd) * log2(N/Nt)
//
// where qt is the query's term frequency, ftd the term's frequency in d,
// ld/lavg the document/average length in tokens, N the document count,
// and Nt the number of documents containing the term.
func RankBM25(idx *index.Index, terms []dictionary.TermID, params BM25Params) []index.DocScore {
	var scores []index.DocScore
	if len(terms) == 0 {
		return scores
	}

	queryFreq := queryTermFrequency(terms)
	k1 := params.K1
	k1plus1 := k1 + 1
	b := params.B
	docCount := float32(idx.DocumentCount())
	lavg := idx.AverageDocumentLength()

	for _, doc := range index.DocIDs(idx.DocsContainAny(terms)) {
		ld, ok := idx.DocumentLength(doc)
		if !ok {
			continue
		}
		lengthNorm := k1 * (1 - b + b*(float32(ld)/lavg))

		var score float32
		for term, qt := range queryFreq {
			ftd, ok := idx.TermFrequency(term, doc)
			if !ok {
				continue
			}
			nt, _ := idx.DocumentFrequency(term)
			idf := float32(math.Log2(float64(docCount / float32(nt))))
			score += float32(qt) * float32(ftd) * k1plus1 / (lengthNorm + float32(ftd)) * idf
		}
		scores = append(scores, index.DocScore{DocID: doc, Score: score})
	}

	index.SortDescending(scores)
	return scores
}
