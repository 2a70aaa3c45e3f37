package vecmath

import "testing"

func approxEqual(a, b, epsilon float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= epsilon
}

func TestSparseSetGetLen(t *testing.T) {
	sv := New()
	if sv.Len() != 0.0 {
		t.Fatalf("Len() on empty vector = %v, want 0", sv.Len())
	}

	sv.Set(1, 5.5)
	if got := sv.Get(1); got != 5.5 {
		t.Fatalf("Get(1) = %v, want 5.5", got)
	}
	if got := sv.Get(10000); got != 0.0 {
		t.Fatalf("Get(unset) = %v, want 0", got)
	}
	if len(sv) != 1 {
		t.Fatalf("len = %d, want 1", len(sv))
	}

	sv.Set(100, 2.8)
	if len(sv) != 2 {
		t.Fatalf("len = %d, want 2", len(sv))
	}
	if !approxEqual(sv.Len(), 6.1717097, 0.0001) {
		t.Fatalf("Len() = %v, want ~6.1717097", sv.Len())
	}
}

func TestSparseSetDoesNotOverwrite(t *testing.T) {
	sv := New()
	sv.Set(1, 5.5)
	sv.Set(1, 9.9)
	if got := sv.Get(1); got != 5.5 {
		t.Fatalf("Set must not overwrite an existing entry: Get(1) = %v, want 5.5", got)
	}
}

func TestSparseNormalize(t *testing.T) {
	sv := New()
	sv.Set(5, 1.32)
	sv.Set(12, 1.32)
	sv.Set(14, 0.32)
	sv.Set(16, 1.32)
	sv.Normalize()

	const epsilon = 0.005
	if !approxEqual(sv.Get(5), 0.57, epsilon) {
		t.Fatalf("Get(5) = %v, want ~0.57", sv.Get(5))
	}
	if !approxEqual(sv.Get(12), 0.57, epsilon) {
		t.Fatalf("Get(12) = %v, want ~0.57", sv.Get(12))
	}
	if !approxEqual(sv.Get(14), 0.14, epsilon) {
		t.Fatalf("Get(14) = %v, want ~0.14", sv.Get(14))
	}
	if !approxEqual(sv.Get(16), 0.57, epsilon) {
		t.Fatalf("Get(16) = %v, want ~0.57", sv.Get(16))
	}
	if len(sv) != 4 {
		t.Fatalf("len = %d, want 4", len(sv))
	}
}

func TestSparseNormalizeZeroVector(t *testing.T) {
	sv := New()
	sv.Normalize()
	if len(sv) != 0 {
		t.Fatalf("Normalize on empty vector mutated it: len = %d", len(sv))
	}
}

func TestSparseDot(t *testing.T) {
	sv1 := New()
	sv1.Set(5, 0.57)
	sv1.Set(12, 0.57)
	sv1.Set(14, 0.14)
	sv1.Set(16, 0.57)

	sv2 := New()
	sv2.Set(12, 0.97)
	sv2.Set(14, 0.24)

	res := sv1.Dot(sv2)
	if !approxEqual(res, 0.59, 0.005) {
		t.Fatalf("Dot() = %v, want ~0.59", res)
	}

	// Dot product is symmetric regardless of which operand is smaller.
	res2 := sv2.Dot(sv1)
	if res != res2 {
		t.Fatalf("Dot() not symmetric: %v vs %v", res, res2)
	}
}
