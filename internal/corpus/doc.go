// Package corpus implements document sources: a recursive directory walker
// plus per-file-type parsers (plain text, JSON, JSON Lines) that turn raw
// files into the Document values the engine indexes.
package corpus

// Document is one unit of indexable content: its text and the path it
// came from (used later as the string the engine returns from a query).
type Document struct {
	Content string
	Path    string
}

// Source yields documents one at a time until exhausted.
type Source interface {
	// Next returns the next document, or ok=false once the source is
	// drained.
	Next() (Document, bool)
}
