package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeCorpus(t *testing.T, dir string) {
	t.Helper()
	mustWriteFile(t, filepath.Join(dir, "1.txt"), "Do you quarrel, sir?")
	mustWriteFile(t, filepath.Join(dir, "2.txt"), "Quarrel sir! no, sir!")
	mustWriteFile(t, filepath.Join(dir, "3.txt"), "Well, sir.")
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", path, err)
	}
}

func TestBuildSearchStatsEndToEnd(t *testing.T) {
	corpusDir := t.TempDir()
	writeCorpus(t, corpusDir)
	idxDir := filepath.Join(t.TempDir(), "idx")

	build := newRootCmd()
	build.SetArgs([]string{"-i", idxDir, "build", "--corpus-dir", corpusDir})
	if err := build.Execute(); err != nil {
		t.Fatalf("build Execute() error = %v", err)
	}

	var out bytes.Buffer
	search := newRootCmd()
	search.SetOut(&out)
	search.SetArgs([]string{"-i", idxDir, "search", "Quarrel sir", "--ranking", "exact-match"})
	if err := search.Execute(); err != nil {
		t.Fatalf("search Execute() error = %v", err)
	}

	stats := newRootCmd()
	stats.SetArgs([]string{"-i", idxDir})
	if err := stats.Execute(); err != nil {
		t.Fatalf("stats Execute() error = %v", err)
	}
}

func TestBuildRequiresCorpusDir(t *testing.T) {
	idxDir := filepath.Join(t.TempDir(), "idx")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"-i", idxDir, "build"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("build without --corpus-dir returned no error")
	}
}
