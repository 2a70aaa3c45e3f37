package index

import (
	"testing"

	"github.com/wizenheimer/rir/internal/dictionary"
)

func TestComputeTFIDFNormalizesEveryDocVector(t *testing.T) {
	idx := New()
	dict := dictionary.New()

	idx.AddDocument(dict.GenerateIDs([]string{"do", "you", "quarrel", "sir"}))
	idx.AddDocument(dict.GenerateIDs([]string{"quarrel", "sir", "no", "sir"}))

	if err := idx.ComputeTFIDF(); err != nil {
		t.Fatalf("ComputeTFIDF() error = %v", err)
	}

	vec, ok := idx.DocVector(1)
	if !ok {
		t.Fatalf("DocVector(1) missing after ComputeTFIDF")
	}
	length := vec.Len()
	if length < 0.99 || length > 1.01 {
		t.Fatalf("DocVector(1).Len() = %v, want ~1.0 (normalized)", length)
	}
}
