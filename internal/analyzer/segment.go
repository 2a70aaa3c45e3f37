package analyzer

import "strings"

// Segmenter splits raw text into word tokens, without lowercasing or any
// other normalization — that happens later in the pipeline.
type Segmenter interface {
	Segment(text string) []string
}

// LatinSegmenter splits on Unicode letter/number boundaries. It is the
// correct segmenter for any whitespace- or punctuation-delimited script.
type LatinSegmenter struct{}

func (LatinSegmenter) Segment(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !IsWordRune(r)
	})
}

// DictSegmenter performs greedy forward-maximum-match segmentation against a
// loaded vocabulary, the dependency-free stand-in for a CJK word segmenter
// (a real jieba-style segmenter needs a CGo tokenizer or a large bundled
// dictionary; this one trades recall for a pure-Go, no-CGo implementation).
// Runs of non-word runes are dropped. Latin letters and digits go through
// the same greedy match as CJK text: a Latin word that is not in Vocab is
// split into single-rune tokens, not kept whole.
type DictSegmenter struct {
	Vocab     map[string]struct{}
	MaxWord   int // longest entry in Vocab, in runes; computed by NewDictSegmenter
}

// NewDictSegmenter builds a segmenter from a word list.
func NewDictSegmenter(words []string) *DictSegmenter {
	vocab := make(map[string]struct{}, len(words))
	maxWord := 1
	for _, w := range words {
		vocab[w] = struct{}{}
		if n := len([]rune(w)); n > maxWord {
			maxWord = n
		}
	}
	return &DictSegmenter{Vocab: vocab, MaxWord: maxWord}
}

func (d *DictSegmenter) Segment(text string) []string {
	var out []string
	for _, run := range splitWordRuns(text) {
		out = append(out, d.segmentRun(run)...)
	}
	return out
}

// segmentRun greedily matches the longest vocabulary entry starting at each
// position, falling back to a single-rune token when nothing matches.
func (d *DictSegmenter) segmentRun(run []rune) []string {
	var out []string
	n := len(run)
	for i := 0; i < n; {
		matched := false
		for l := d.MaxWord; l >= 1; l-- {
			if i+l > n {
				continue
			}
			candidate := string(run[i : i+l])
			if l == 1 {
				out = append(out, candidate)
				i++
				matched = true
				break
			}
			if _, ok := d.Vocab[candidate]; ok {
				out = append(out, candidate)
				i += l
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, string(run[i]))
			i++
		}
	}
	return out
}

// splitWordRuns breaks text into maximal runs of word runes, discarding
// runs of punctuation/whitespace between them.
func splitWordRuns(text string) [][]rune {
	var runs [][]rune
	var cur []rune
	for _, r := range text {
		if IsWordRune(r) {
			cur = append(cur, r)
			continue
		}
		if len(cur) > 0 {
			runs = append(runs, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}
