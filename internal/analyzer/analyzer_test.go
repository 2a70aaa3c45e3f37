package analyzer

import "testing"

func equalTokens(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tokens = %v, want %v", got, want)
		}
	}
}

func TestDefaultProfileKeepsEveryToken(t *testing.T) {
	got := Analyze("Do you quarrel, sir?", Default())
	equalTokens(t, got, []string{"do", "you", "quarrel", "sir"})
}

func TestDefaultProfileUnicodeWords(t *testing.T) {
	got := Analyze("price: $9.99", Default())
	equalTokens(t, got, []string{"price", "9", "99"})
}

func TestClassicProfileFiltersAndStems(t *testing.T) {
	got := Analyze("The quick brown fox jumps over the lazy dog", Classic())
	equalTokens(t, got, []string{"quick", "brown", "fox", "jump", "lazi", "dog"})
}

func TestClassicProfileDropsStopwords(t *testing.T) {
	got := Analyze("the quick brown fox", Classic())
	for _, tok := range got {
		if tok == "the" {
			t.Fatalf("stopword %q survived filtering: %v", tok, got)
		}
	}
}

func TestLatinSegmenterPreservesOrder(t *testing.T) {
	got := LatinSegmenter{}.Segment("Quarrel sir! no, sir!")
	equalTokens(t, got, []string{"Quarrel", "sir", "no", "sir"})
}

func TestDictSegmenterGreedyMatch(t *testing.T) {
	seg := NewDictSegmenter([]string{"长江", "东", "逝水", "浪花", "滚滚", "英雄"})
	got := seg.Segment("滚滚长江东逝水，浪花淘尽英雄。")
	want := []string{"滚滚", "长江", "东", "逝水", "浪花", "淘", "尽", "英雄"}
	equalTokens(t, got, want)
}
