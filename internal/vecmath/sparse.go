// Package vecmath implements the sparse term-id-keyed vectors used by the
// vector-space-model scorer: set/get, L2 length, in-place normalization, and
// dot product against another sparse vector.
package vecmath

import (
	"math"

	"github.com/wizenheimer/rir/internal/dictionary"
)

// Sparse is a term-id-keyed vector. Missing keys read as zero.
//
// Sparse has no internal synchronization: it is built and consumed by a
// single scoring call (see SPEC_FULL.md §5).
type Sparse map[dictionary.TermID]float32

// New returns an empty sparse vector.
func New() Sparse {
	return make(Sparse)
}

// Len returns the Euclidean (L2) length of the vector.
func (s Sparse) Len() float32 {
	var sum float32
	for _, v := range s {
		sum += v * v
	}
	return float32(math.Sqrt(float64(sum)))
}

// Set assigns value to id only if id has no value yet, mirroring the
// original's entry-or-insert semantics: the first write for a given id wins.
func (s Sparse) Set(id dictionary.TermID, value float32) {
	if _, ok := s[id]; !ok {
		s[id] = value
	}
}

// Get returns the value at id, or zero if unset.
func (s Sparse) Get(id dictionary.TermID) float32 {
	return s[id]
}

// Normalize divides every entry by the vector's L2 length in place. A
// zero-length vector (no entries, or all-zero entries) is left unchanged to
// avoid dividing by zero.
func (s Sparse) Normalize() {
	length := s.Len()
	if length == 0 {
		return
	}
	for id, v := range s {
		s[id] = v / length
	}
}

// Dot computes the dot product against other, iterating the smaller of the
// two vectors for efficiency.
func (s Sparse) Dot(other Sparse) float32 {
	small, big := s, other
	if len(other) < len(s) {
		small, big = other, s
	}
	var result float32
	for id, v := range small {
		if bv, ok := big[id]; ok {
			result += v * bv
		}
	}
	return result
}
