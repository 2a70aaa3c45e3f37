package engine

import (
	"github.com/wizenheimer/rir/internal/analyzer"
	"github.com/wizenheimer/rir/internal/dictionary"
	"github.com/wizenheimer/rir/internal/rank"
)

// ParseQuery analyzes phrase and resolves its tokens against dict,
// applying the unknown-term policy for algorithm: ExactMatch requires
// every token to be known, since a phrase containing a term the index has
// never seen cannot possibly match anything — the whole query collapses
// to no results rather than silently matching on the known subset. Every
// other algorithm just drops unknown tokens and scores on what remains.
func ParseQuery(phrase string, algorithm rank.Algorithm, dict *dictionary.Dictionary, cfg analyzer.Config) []dictionary.TermID {
	tokens := analyzer.Analyze(phrase, cfg)
	known, unknown := dict.ResolveIDs(tokens)

	if algorithm == rank.ExactMatch && len(unknown) > 0 {
		return nil
	}
	return known
}
