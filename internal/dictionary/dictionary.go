// Package dictionary provides the bidirectional term-string/term-id mapping
// used to turn analyzer tokens into the dense integer identifiers the
// positional index is built on.
//
// ═══════════════════════════════════════════════════════════════════════════════
// WHY A DICTIONARY?
// ═══════════════════════════════════════════════════════════════════════════════
// The index never stores term strings directly: every posting, every
// document-frequency counter, every sparse-vector key is keyed by a small
// integer (a TermID). Working with integers instead of strings keeps the
// postings compact and comparisons cheap. The Dictionary is the single place
// that remembers which string a given id stands for, and vice versa.
// ═══════════════════════════════════════════════════════════════════════════════
package dictionary

// TermID is a dense, 1-based, first-seen-order identifier for a term.
type TermID uint32

// Dictionary maps term strings to TermIDs and back. IDs are never reused:
// once assigned, a term keeps the same id for the lifetime of the
// dictionary.
//
// Dictionary has no internal synchronization: like the positional index it
// backs, it is owned by a single engine and mutated from one goroutine at a
// time (see SPEC_FULL.md §5).
type Dictionary struct {
	termIDs map[string]TermID
	terms   map[TermID]string
	nextID  TermID
}

// New returns an empty dictionary. The first term ever added is assigned
// TermID 1.
func New() *Dictionary {
	return &Dictionary{
		termIDs: make(map[string]TermID),
		terms:   make(map[TermID]string),
		nextID:  1,
	}
}

// Add returns the existing id for term, or assigns and returns the next
// unused id. Idempotent for repeated terms.
func (d *Dictionary) Add(term string) TermID {
	if id, ok := d.termIDs[term]; ok {
		return id
	}
	id := d.nextID
	d.nextID++
	d.termIDs[term] = id
	d.terms[id] = term
	return id
}

// Get looks up a term without inserting it.
func (d *Dictionary) Get(term string) (TermID, bool) {
	id, ok := d.termIDs[term]
	return id, ok
}

// GetTerm is the inverse lookup. Unknown ids resolve to the empty string;
// callers that need a hard failure should check TermCount or track ids
// returned by Add/Get themselves.
func (d *Dictionary) GetTerm(id TermID) string {
	return d.terms[id]
}

// GenerateIDs maps each token through Add, mutating the dictionary. Used
// while indexing.
func (d *Dictionary) GenerateIDs(tokens []string) []TermID {
	ids := make([]TermID, len(tokens))
	for i, tok := range tokens {
		ids[i] = d.Add(tok)
	}
	return ids
}

// ResolveIDs maps each token through Get. Returns the known ids in order and
// the tokens that have never been seen. Used at query time.
func (d *Dictionary) ResolveIDs(tokens []string) (known []TermID, unknown []string) {
	known = make([]TermID, 0, len(tokens))
	for _, tok := range tokens {
		if id, ok := d.Get(tok); ok {
			known = append(known, id)
		} else {
			unknown = append(unknown, tok)
		}
	}
	return known, unknown
}

// TermCount returns the number of distinct terms registered so far.
func (d *Dictionary) TermCount() int {
	return len(d.termIDs)
}

// Snapshot is the JSON-friendly view used by internal/persist: the forward
// map is all a reload needs, since the reverse map is its exact mirror.
type Snapshot struct {
	TermIDs map[string]TermID `json:"term_ids"`
	NextID  TermID            `json:"next_id"`
}

// Snapshot captures the dictionary's state for persistence.
func (d *Dictionary) Snapshot() Snapshot {
	termIDs := make(map[string]TermID, len(d.termIDs))
	for k, v := range d.termIDs {
		termIDs[k] = v
	}
	return Snapshot{TermIDs: termIDs, NextID: d.nextID}
}

// Restore rebuilds a dictionary from a Snapshot, reconstructing the reverse
// map.
func Restore(snap Snapshot) *Dictionary {
	d := &Dictionary{
		termIDs: make(map[string]TermID, len(snap.TermIDs)),
		terms:   make(map[TermID]string, len(snap.TermIDs)),
		nextID:  snap.NextID,
	}
	for term, id := range snap.TermIDs {
		d.termIDs[term] = id
		d.terms[id] = term
	}
	if d.nextID == 0 {
		d.nextID = 1
	}
	return d
}
