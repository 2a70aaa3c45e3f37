package persist

import (
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/wizenheimer/rir/internal/analyzer"
	"github.com/wizenheimer/rir/internal/dictionary"
	"github.com/wizenheimer/rir/internal/index"
)

func buildSmallIndex(t *testing.T) (*index.Index, *dictionary.Dictionary) {
	t.Helper()
	dict := dictionary.New()
	idx := index.New()

	docs := []string{
		"Do you quarrel, sir?",
		"Quarrel sir! no, sir!",
		"Well, sir.",
	}
	for _, d := range docs {
		tokens := analyzer.Analyze(d, analyzer.Default())
		idx.AddDocument(dict.GenerateIDs(tokens))
	}
	if err := idx.ComputeTFIDF(); err != nil {
		t.Fatalf("ComputeTFIDF() error = %v", err)
	}
	return idx, dict
}

func TestSaveLoadRoundTrip(t *testing.T) {
	idx, dict := buildSmallIndex(t)
	docMeta := map[index.DocID]string{1: "a/1.txt", 2: "a/2.txt", 3: "3.txt"}

	dir := filepath.Join(t.TempDir(), "snap")
	if err := Save(dir, State{Index: idx, Dict: dict, DocMeta: docMeta}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got.Index.DocumentCount() != idx.DocumentCount() {
		t.Fatalf("DocumentCount() = %d, want %d", got.Index.DocumentCount(), idx.DocumentCount())
	}
	if got.Index.TotalDocumentLength() != idx.TotalDocumentLength() {
		t.Fatalf("TotalDocumentLength() = %d, want %d", got.Index.TotalDocumentLength(), idx.TotalDocumentLength())
	}
	if got.Index.AverageDocumentLength() != idx.AverageDocumentLength() {
		t.Fatalf("AverageDocumentLength() = %v, want %v", got.Index.AverageDocumentLength(), idx.AverageDocumentLength())
	}

	if got.Dict.TermCount() != dict.TermCount() {
		t.Fatalf("TermCount() = %d, want %d", got.Dict.TermCount(), dict.TermCount())
	}
	sirID, ok := got.Dict.Get("sir")
	if !ok {
		t.Fatalf("restored dictionary missing term %q", "sir")
	}
	wantSirID, _ := dict.Get("sir")
	if sirID != wantSirID {
		t.Fatalf("restored term id for %q = %d, want %d", "sir", sirID, wantSirID)
	}

	if len(got.DocMeta) != len(docMeta) {
		t.Fatalf("DocMeta = %v, want %v", got.DocMeta, docMeta)
	}
	for doc, path := range docMeta {
		if got.DocMeta[doc] != path {
			t.Fatalf("DocMeta[%d] = %q, want %q", doc, got.DocMeta[doc], path)
		}
	}

	wantDF, _ := idx.DocumentFrequency(sirID)
	gotDF, ok := got.Index.DocumentFrequency(sirID)
	if !ok || gotDF != wantDF {
		t.Fatalf("restored DocumentFrequency(sir) = %d, ok=%v, want %d", gotDF, ok, wantDF)
	}

	wantTF, _ := idx.TermFrequency(sirID, 2)
	gotTF, ok := got.Index.TermFrequency(sirID, 2)
	if !ok || gotTF != wantTF {
		t.Fatalf("restored TermFrequency(sir, doc2) = %d, ok=%v, want %d", gotTF, ok, wantTF)
	}

	scores := got.Index.SearchPhrase([]dictionary.TermID{sirID})
	var docs []int
	for _, s := range scores {
		docs = append(docs, int(s.DocID))
	}
	sort.Ints(docs)
	if len(docs) != 3 {
		t.Fatalf("restored postings for %q matched docs %v, want all 3 documents", "sir", docs)
	}
}

func TestLoadMissingArtifactNamesTheFailure(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir)
	if err == nil {
		t.Fatalf("Load() on an empty directory returned no error")
	}
	if !strings.Contains(err.Error(), postingsFile) {
		t.Fatalf("Load() error = %v, want it to name %s", err, postingsFile)
	}
}
