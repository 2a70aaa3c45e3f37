// Package analyzer turns raw document/query text into the token stream the
// dictionary and index consume: tokenize → lowercase → [stopwords] →
// [length filter] → [stemming], with an optional pluggable segmenter for
// scripts that don't tokenize on whitespace/punctuation.
package analyzer

import (
	"strings"
	"unicode"

	snowballeng "github.com/kljensen/snowball/english"
)

// Language selects the segmentation strategy used before the rest of the
// pipeline runs.
type Language int

const (
	// Latin splits on Unicode letter/number boundaries; it is the right
	// choice for whitespace-delimited scripts.
	Latin Language = iota
	// CJK routes through a dictionary-based segmenter instead, since CJK
	// text carries no reliable word boundaries in punctuation or spacing.
	CJK
)

// Config controls which pipeline stages run. The engine's own profile
// (see Default) disables stopwords, stemming, and length filtering so that
// every token the corpus contains is searchable verbatim; callers who want
// classic IR preprocessing can opt in per analyzer instance.
type Config struct {
	Language        Language
	MinTokenLength  int
	EnableStemming  bool
	EnableStopwords bool
	Segmenter       Segmenter // only consulted when Language == CJK; nil falls back to Latin
}

// Default is the profile used by the engine: no stopword removal, no
// stemming, no length filter. A corpus line like "do you quarrel sir" must
// retain every token for phrase matching and the documented scoring
// scenarios to hold.
func Default() Config {
	return Config{Language: Latin}
}

// Classic is the opt-in profile for callers who want the traditional
// stopword+stemming+length-filter pipeline.
func Classic() Config {
	return Config{
		Language:        Latin,
		MinTokenLength:  2,
		EnableStemming:  true,
		EnableStopwords: true,
	}
}

// Analyze runs text through the configured pipeline and returns the
// resulting tokens in order.
func Analyze(text string, cfg Config) []string {
	tokens := segment(text, cfg)
	tokens = lowercaseFilter(tokens)

	if cfg.EnableStopwords {
		tokens = stopwordFilter(tokens)
	}
	if cfg.MinTokenLength > 0 {
		tokens = lengthFilter(tokens, cfg.MinTokenLength)
	}
	if cfg.EnableStemming {
		tokens = stemmerFilter(tokens)
	}
	return tokens
}

func segment(text string, cfg Config) []string {
	if cfg.Language == CJK {
		seg := cfg.Segmenter
		if seg == nil {
			seg = LatinSegmenter{}
		}
		return seg.Segment(text)
	}
	return LatinSegmenter{}.Segment(text)
}

func lowercaseFilter(tokens []string) []string {
	r := make([]string, len(tokens))
	for i, token := range tokens {
		r[i] = strings.ToLower(token)
	}
	return r
}

func stopwordFilter(tokens []string) []string {
	r := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !isStopword(token) {
			r = append(r, token)
		}
	}
	return r
}

func lengthFilter(tokens []string, minLength int) []string {
	r := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if len([]rune(token)) >= minLength {
			r = append(r, token)
		}
	}
	return r
}

func stemmerFilter(tokens []string) []string {
	r := make([]string, len(tokens))
	for i, token := range tokens {
		r[i] = snowballeng.Stem(token, false)
	}
	return r
}

func isStopword(token string) bool {
	_, exists := englishStopwords[token]
	return exists
}

// IsWordRune reports whether r can appear inside a token: letters and
// digits, shared by both segmenters as the "is this a word character" test.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
