package corpus

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestParseText(t *testing.T) {
	docs, err := ParseText("a/1.txt", "Do you quarrel, sir?", Config{})
	if err != nil {
		t.Fatalf("ParseText() error = %v", err)
	}
	if len(docs) != 1 || docs[0].Content != "Do you quarrel, sir?" || docs[0].Path != "a/1.txt" {
		t.Fatalf("ParseText() = %+v, want single doc with verbatim content", docs)
	}
}

func TestParseJSONLines(t *testing.T) {
	cfg := Config{Fields: []string{"id", "url", "title", "text"}}
	content := `
{"id": "1", "url": "https://someurl/1", "title": "line1", "text": "line1 content"}
{"id": "2", "url": "https://someurl/2", "title": "line2", "text": "line2 content"}
`
	docs, err := ParseJSONLines("some-path", content, cfg)
	if err != nil {
		t.Fatalf("ParseJSONLines() error = %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("ParseJSONLines() returned %d docs, want 2", len(docs))
	}
	if docs[0].Content != "1https://someurl/1line1line1 content" {
		t.Fatalf("docs[0].Content = %q", docs[0].Content)
	}
	if docs[1].Content != "2https://someurl/2line2line2 content" {
		t.Fatalf("docs[1].Content = %q", docs[1].Content)
	}
	if docs[0].Path != "some-path:2" || docs[1].Path != "some-path:3" {
		t.Fatalf("paths = %q, %q, want line-numbered suffixes", docs[0].Path, docs[1].Path)
	}
}

func TestParseJSONLinesSkipsMalformedLines(t *testing.T) {
	cfg := Config{Fields: []string{"id"}}
	content := "{\"id\": \"1\"}\nnot json\n{\"id\": \"2\"}\n"
	docs, err := ParseJSONLines("p", content, cfg)
	if err != nil {
		t.Fatalf("ParseJSONLines() error = %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("ParseJSONLines() returned %d docs, want 2 (malformed line skipped)", len(docs))
	}
}

func TestParseJSONArray(t *testing.T) {
	cfg := Config{Fields: []string{"title"}}
	content := `[{"title": "one"}, {"title": "two"}]`
	docs, err := ParseJSON("p.json", content, cfg)
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	if len(docs) != 2 || docs[0].Content != "one" || docs[1].Content != "two" {
		t.Fatalf("ParseJSON() = %+v", docs)
	}
}

func TestConfigFileTypeDetection(t *testing.T) {
	cfg := Config{FileType: "JSON"}
	if !cfg.IsJSON() {
		t.Fatalf("IsJSON() = false for FileType %q", cfg.FileType)
	}
	cfg = Config{FileType: "jsonlines"}
	if !cfg.IsJSONLines() {
		t.Fatalf("IsJSONLines() = false for FileType %q", cfg.FileType)
	}
}

func TestLoadConfigFallsBackToText(t *testing.T) {
	dir := t.TempDir()
	cfg := LoadConfig(dir)
	if cfg.FileType != "text" {
		t.Fatalf("LoadConfig() on a directory with no config file = %+v, want file_type=text", cfg)
	}
}

func TestLoadConfigParsesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := "file_type: json\nfields:\n  - id\n  - title\n"
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(yamlBody), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	cfg := LoadConfig(dir)
	if !cfg.IsJSON() {
		t.Fatalf("LoadConfig() = %+v, want file_type=json", cfg)
	}
	if len(cfg.Fields) != 2 || cfg.Fields[0] != "id" || cfg.Fields[1] != "title" {
		t.Fatalf("LoadConfig().Fields = %v, want [id title]", cfg.Fields)
	}
}

func TestDirWalkerSkipsDotFilesAndWalksRecursively(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "1.txt"), "hello world")
	mustWrite(t, filepath.Join(root, ".hidden"), "should be skipped")
	sub := filepath.Join(root, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("Mkdir() error = %v", err)
	}
	mustWrite(t, filepath.Join(sub, "2.txt"), "nested document")

	walker := NewDirWalker(root)
	var paths []string
	for {
		doc, ok := walker.Next()
		if !ok {
			break
		}
		paths = append(paths, doc.Path)
	}
	sort.Strings(paths)

	if len(paths) != 2 {
		t.Fatalf("walked paths = %v, want exactly the two .txt files", paths)
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", path, err)
	}
}
