package index

import (
	"fmt"
	"math"

	"github.com/wizenheimer/rir/internal/vecmath"
)

// tfidfMatrix holds one L2-normalized sparse vector per document,
// computed lazily by ComputeTFIDF. Keyed by DocID rather than a dense
// slice so the index doesn't need to know document ids are contiguous
// starting at 1 (they are, but nothing else in this file should assume it
// beyond what ComputeTFIDF already does).
type tfidfMatrix map[DocID]vecmath.Sparse

func newTFIDFMatrix() tfidfMatrix {
	return make(tfidfMatrix)
}

// ComputeTFIDF builds the document-vector matrix used by the
// vector-space-model scorer: for every (term, doc) pair,
// w = (log2(tf)+1) * log2(N/df), then each document's vector is
// normalized to unit length. Must be called (and is safe to call again,
// e.g. after more documents are added) before RankCosine-style scoring.
func (idx *Index) ComputeTFIDF() error {
	if idx.documentCount != uint32(len(idx.documentLength)) {
		return fmt.Errorf("index: document count %d does not match document length table size %d", idx.documentCount, len(idx.documentLength))
	}

	matrix := newTFIDFMatrix()
	docCount := float64(idx.documentCount)

	for key, tf := range idx.termFrequency {
		df, ok := idx.documentFrequency[key.Term]
		if !ok {
			return fmt.Errorf("index: term %d has a term frequency entry but no document frequency", key.Term)
		}
		weight := (log2(float64(tf)) + 1) * log2(docCount/float64(df))
		vec, ok := matrix[key.Doc]
		if !ok {
			vec = vecmath.New()
			matrix[key.Doc] = vec
		}
		vec.Set(key.Term, float32(weight))
	}

	for _, vec := range matrix {
		vec.Normalize()
	}

	idx.tfidf = matrix
	return nil
}

// DocVector returns doc's TF-IDF vector, if ComputeTFIDF has been run and
// doc has one.
func (idx *Index) DocVector(doc DocID) (vecmath.Sparse, bool) {
	vec, ok := idx.tfidf[doc]
	return vec, ok
}

func log2(x float64) float64 {
	return math.Log2(x)
}
