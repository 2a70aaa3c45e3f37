// Package engine wires the dictionary, positional index, analyzer, and
// document sources into the facade callers actually use: build a corpus,
// run a query, persist and reload the result, inspect stats.
package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/wizenheimer/rir/internal/analyzer"
	"github.com/wizenheimer/rir/internal/corpus"
	"github.com/wizenheimer/rir/internal/dictionary"
	"github.com/wizenheimer/rir/internal/index"
	"github.com/wizenheimer/rir/internal/persist"
	"github.com/wizenheimer/rir/internal/rank"
)

// Engine owns one corpus's dictionary, positional index, and doc-id→path
// table. Like its collaborators, it has no internal synchronization: a
// single goroutine owns it for the lifetime of a build/query session (see
// SPEC_FULL.md §5).
type Engine struct {
	index         *index.Index
	dict          *dictionary.Dictionary
	docMeta       map[index.DocID]string
	analyzerCfg   analyzer.Config
	tfidfComputed bool
}

// New returns an empty engine that will analyze text with cfg.
func New(cfg analyzer.Config) *Engine {
	return &Engine{
		index:       index.New(),
		dict:        dictionary.New(),
		docMeta:     make(map[index.DocID]string),
		analyzerCfg: cfg,
	}
}

// DocCount returns the number of documents indexed so far.
func (e *Engine) DocCount() int {
	return len(e.docMeta)
}

// AddDocument analyzes doc's content, indexes it, and records its path.
// The TF-IDF matrix is left stale until the next ComputeTFIDF /
// BuildFrom call — ranking algorithms other than the vector-space model
// don't need it, so callers doing incremental adds only pay that cost
// once they actually query with it.
func (e *Engine) AddDocument(doc corpus.Document) {
	termIDs := e.dict.GenerateIDs(analyzer.Analyze(doc.Content, e.analyzerCfg))
	id := e.index.AddDocument(termIDs)
	e.docMeta[id] = doc.Path
	e.tfidfComputed = false
}

// BuildFrom drains source, indexing every document it yields, then
// computes the TF-IDF matrix once at the end. Returns the number of
// documents indexed.
func (e *Engine) BuildFrom(source corpus.Source) (int, error) {
	for {
		doc, ok := source.Next()
		if !ok {
			break
		}
		e.AddDocument(doc)
	}
	if e.DocCount() == 0 {
		return 0, fmt.Errorf("engine: corpus produced no documents")
	}
	if err := e.index.ComputeTFIDF(); err != nil {
		return e.DocCount(), fmt.Errorf("engine: computing TF-IDF: %w", err)
	}
	e.tfidfComputed = true
	log.Info().Int("documents", e.DocCount()).Msg("indexed corpus")
	return e.DocCount(), nil
}

// ensureTFIDF recomputes the TF-IDF matrix if documents were added since
// the last computation — needed so VectorSpaceModel queries stay correct
// after incremental AddDocument calls outside of BuildFrom.
func (e *Engine) ensureTFIDF() error {
	if e.tfidfComputed {
		return nil
	}
	if err := e.index.ComputeTFIDF(); err != nil {
		return err
	}
	e.tfidfComputed = true
	return nil
}

// ExecQuery resolves phrase against the analyzer/dictionary and scores it
// with algorithm, returning the matching document paths in ranked order.
// bm25Params is optional and only consulted when algorithm resolves to BM25.
func (e *Engine) ExecQuery(phrase string, algorithm rank.Algorithm, bm25Params ...rank.BM25Params) ([]string, error) {
	if algorithm == rank.VectorSpaceModel {
		if err := e.ensureTFIDF(); err != nil {
			return nil, err
		}
	}

	termIDs := ParseQuery(phrase, algorithm, e.dict, e.analyzerCfg)
	scores := rank.Query(e.index, termIDs, algorithm, bm25Params...)

	paths := make([]string, 0, len(scores))
	for _, s := range scores {
		if path, ok := e.docMeta[s.DocID]; ok {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// Stats exposes the index's corpus statistics for reporting.
func (e *Engine) Stats() index.Stats {
	return e.index.Stats(e.dict)
}

// Index, Dictionary, and DocMeta expose the engine's collaborators for
// internal/persist, which needs to serialize them directly.
func (e *Engine) Index() *index.Index             { return e.index }
func (e *Engine) Dictionary() *dictionary.Dictionary { return e.dict }
func (e *Engine) DocMeta() map[index.DocID]string  { return e.docMeta }

// Restore rebuilds an Engine from collaborators loaded by internal/persist.
// The TF-IDF matrix is treated as stale: ensureTFIDF recomputes it lazily
// on the first vector-space-model query rather than persisting it, since
// it's cheap to derive and keeping it out of the persisted format keeps
// the format simpler.
func Restore(idx *index.Index, dict *dictionary.Dictionary, docMeta map[index.DocID]string, cfg analyzer.Config) *Engine {
	return &Engine{index: idx, dict: dict, docMeta: docMeta, analyzerCfg: cfg, tfidfComputed: false}
}

// SaveTo persists the engine's index, dictionary, and doc metadata into
// dir via internal/persist.
func (e *Engine) SaveTo(dir string) error {
	return persist.Save(dir, persist.State{Index: e.index, Dict: e.dict, DocMeta: e.docMeta})
}

// LoadFrom reconstructs an engine previously saved with SaveTo. cfg governs
// how future queries and AddDocument calls analyze text; it is not itself
// persisted.
func LoadFrom(dir string, cfg analyzer.Config) (*Engine, error) {
	state, err := persist.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("engine: loading from %s: %w", dir, err)
	}
	log.Info().Str("dir", dir).Int("documents", len(state.DocMeta)).Msg("loaded index")
	return Restore(state.Index, state.Dict, state.DocMeta, cfg), nil
}
