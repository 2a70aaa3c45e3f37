package dictionary

import "testing"

func TestAddAssignsFirstSeenOrder(t *testing.T) {
	d := New()

	if id := d.Add("one"); id != 1 {
		t.Fatalf("Add(one) = %d, want 1", id)
	}
	if id := d.Add("two"); id != 2 {
		t.Fatalf("Add(two) = %d, want 2", id)
	}
	if id := d.Add("three"); id != 3 {
		t.Fatalf("Add(three) = %d, want 3", id)
	}
	if id := d.Add("one"); id != 1 {
		t.Fatalf("re-Add(one) = %d, want 1 (idempotent)", id)
	}
	if d.TermCount() != 3 {
		t.Fatalf("TermCount() = %d, want 3", d.TermCount())
	}
}

func TestGetDoesNotInsert(t *testing.T) {
	d := New()
	d.Add("one")

	if id, ok := d.Get("one"); !ok || id != 1 {
		t.Fatalf("Get(one) = (%d, %v), want (1, true)", id, ok)
	}
	if _, ok := d.Get("missing"); ok {
		t.Fatalf("Get(missing) returned ok=true")
	}
	if d.TermCount() != 1 {
		t.Fatalf("Get must not insert: TermCount() = %d, want 1", d.TermCount())
	}
}

func TestGetTermUnknownIsEmpty(t *testing.T) {
	d := New()
	d.Add("one")

	if got := d.GetTerm(1); got != "one" {
		t.Fatalf("GetTerm(1) = %q, want %q", got, "one")
	}
	if got := d.GetTerm(999); got != "" {
		t.Fatalf("GetTerm(unknown) = %q, want empty string", got)
	}
}

func TestResolveIDsSplitsKnownAndUnknown(t *testing.T) {
	d := New()
	d.GenerateIDs([]string{"one", "two", "three"})

	known, unknown := d.ResolveIDs([]string{"one", "three", "two"})
	if len(unknown) != 0 {
		t.Fatalf("unknown = %v, want empty", unknown)
	}
	want := []TermID{1, 3, 2}
	if len(known) != len(want) {
		t.Fatalf("known = %v, want %v", known, want)
	}
	for i := range want {
		if known[i] != want[i] {
			t.Fatalf("known[%d] = %d, want %d", i, known[i], want[i])
		}
	}

	known, unknown = d.ResolveIDs([]string{"one", "three", "two", "four"})
	if len(known) != 3 {
		t.Fatalf("known = %v, want 3 entries", known)
	}
	if len(unknown) != 1 || unknown[0] != "four" {
		t.Fatalf("unknown = %v, want [four]", unknown)
	}
}

func TestGenerateIDsReusesExisting(t *testing.T) {
	d := New()
	d.GenerateIDs([]string{"one", "two", "three"})

	ids := d.GenerateIDs([]string{"alpha", "beta"})
	if ids[0] != 4 || ids[1] != 5 {
		t.Fatalf("GenerateIDs(alpha,beta) = %v, want [4 5]", ids)
	}
	if d.TermCount() != 5 {
		t.Fatalf("TermCount() = %d, want 5", d.TermCount())
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	d := New()
	d.GenerateIDs([]string{"hello", "world", "hello"})

	snap := d.Snapshot()
	restored := Restore(snap)

	if restored.TermCount() != d.TermCount() {
		t.Fatalf("restored TermCount() = %d, want %d", restored.TermCount(), d.TermCount())
	}
	for _, term := range []string{"hello", "world"} {
		wantID, _ := d.Get(term)
		gotID, ok := restored.Get(term)
		if !ok || gotID != wantID {
			t.Fatalf("restored.Get(%q) = (%d, %v), want (%d, true)", term, gotID, ok, wantID)
		}
	}
	if restored.Add("new") != 3 {
		t.Fatalf("restored dictionary did not continue id assignment from next_id")
	}
}
