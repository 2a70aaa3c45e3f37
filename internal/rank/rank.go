// Package rank implements the scoring family that turns a resolved list of
// query term ids into a ranked []index.DocScore: exact phrase matching,
// the vector-space model (TF-IDF + cosine), Okapi BM25, and Dirichlet-
// smoothed language modeling.
package rank

import (
	"github.com/wizenheimer/rir/internal/dictionary"
	"github.com/wizenheimer/rir/internal/index"
)

// Algorithm selects a scorer. String-backed so it round-trips cleanly
// through config files and the CLI's --ranking flag.
type Algorithm string

const (
	Default          Algorithm = "default"
	ExactMatch       Algorithm = "exact-match"
	VectorSpaceModel Algorithm = "vector-space-model"
	OkapiBM25        Algorithm = "okapi-bm25"
	LMD              Algorithm = "lmd"
)

// queryTermFrequency counts repeated terms in the query itself — every
// ranked scorer needs this, since a query like "sir sir" should weight
// "sir" twice.
func queryTermFrequency(terms []dictionary.TermID) map[dictionary.TermID]uint32 {
	freq := make(map[dictionary.TermID]uint32, len(terms))
	for _, t := range terms {
		freq[t]++
	}
	return freq
}

// Query dispatches terms to the scorer named by algorithm and returns its
// ranked results. Default and OkapiBM25 both resolve to BM25, matching the
// original engine's dispatch table. bm25Params is optional; omitting it (or
// passing the zero value) falls back to DefaultBM25Params.
func Query(idx *index.Index, terms []dictionary.TermID, algorithm Algorithm, bm25Params ...BM25Params) []index.DocScore {
	if len(terms) == 0 {
		return nil
	}
	params := DefaultBM25Params()
	if len(bm25Params) > 0 && bm25Params[0] != (BM25Params{}) {
		params = bm25Params[0]
	}
	switch algorithm {
	case ExactMatch:
		return idx.SearchPhrase(terms)
	case VectorSpaceModel:
		return RankCosine(idx, terms)
	case LMD:
		return RankLMD(idx, terms)
	default:
		return RankBM25(idx, terms, params)
	}
}
