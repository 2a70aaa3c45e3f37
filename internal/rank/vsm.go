package rank

import (
	"math"

	"github.com/wizenheimer/rir/internal/dictionary"
	"github.com/wizenheimer/rir/internal/index"
	"github.com/wizenheimer/rir/internal/vecmath"
)

// RankCosine scores documents by cosine similarity between the query's
// TF-IDF vector and each candidate document's precomputed, normalized
// TF-IDF vector (index.ComputeTFIDF must have already been run). Terms
// the index has never seen are silently dropped from the query vector, so
// callers wanting the ExactMatch empty-on-unknown-term policy must apply
// it before calling in.
func RankCosine(idx *index.Index, terms []dictionary.TermID) []index.DocScore {
	var scores []index.DocScore
	if len(terms) == 0 {
		return scores
	}

	queryFreq := queryTermFrequency(terms)
	queryVec := vecmath.New()
	docCount := float64(idx.DocumentCount())
	for term, freq := range queryFreq {
		df, ok := idx.DocumentFrequency(term)
		if !ok || df == 0 {
			continue
		}
		weight := (math.Log2(float64(freq)) + 1) * math.Log2(docCount/float64(df))
		queryVec.Set(term, float32(weight))
	}
	queryVec.Normalize()

	for _, doc := range index.DocIDs(idx.DocsContainAny(terms)) {
		if !idx.IsValidDocID(doc) {
			continue
		}
		docVec, ok := idx.DocVector(doc)
		if !ok {
			continue
		}
		scores = append(scores, index.DocScore{DocID: doc, Score: queryVec.Dot(docVec)})
	}

	index.SortDescending(scores)
	return scores
}
