package rank

import (
	"math"

	"github.com/wizenheimer/rir/internal/dictionary"
	"github.com/wizenheimer/rir/internal/index"
)

// RankLMD scores documents with Dirichlet-smoothed language modeling:
//
//	score(d) = sum_t qt * log2(1 + ftd*N/lt) - n * log2(1 + ld/lavg)
//
// where lt is the term's total occurrence count across the whole
// collection and n is the number of tokens in the query (counting
// repeats).
func RankLMD(idx *index.Index, terms []dictionary.TermID) []index.DocScore {
	var scores []index.DocScore
	if len(terms) == 0 {
		return scores
	}

	queryFreq := queryTermFrequency(terms)
	docCount := float32(idx.DocumentCount())
	lavg := idx.AverageDocumentLength()
	queryTokenCount := float32(len(terms))

	for _, doc := range index.DocIDs(idx.DocsContainAny(terms)) {
		ld, ok := idx.DocumentLength(doc)
		if !ok {
			continue
		}
		var score float32
		for term, qt := range queryFreq {
			ftd, ok := idx.TermFrequency(term, doc)
			if !ok {
				continue
			}
			lt := idx.TermOccurrences(term)
			score += float32(math.Log2(1+float64(ftd)*float64(docCount)/float64(lt))) * float32(qt)
		}
		score -= float32(math.Log2(1+float64(ld)/float64(lavg))) * queryTokenCount
		scores = append(scores, index.DocScore{DocID: doc, Score: score})
	}

	index.SortDescending(scores)
	return scores
}
