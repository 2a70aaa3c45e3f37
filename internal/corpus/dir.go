package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// ParseFunc turns one file's raw content into zero or more documents.
type ParseFunc func(path, content string, cfg Config) ([]Document, error)

var handlers = map[string]ParseFunc{
	FileTypeText:      ParseText,
	FileTypeJSON:      ParseJSON,
	FileTypeJSONLines: ParseJSONLines,
}

func handlerFor(cfg Config) ParseFunc {
	if h, ok := handlers[strings.ToLower(cfg.FileType)]; ok {
		return h
	}
	return ParseText
}

// DirWalker is a Source that recursively walks a directory breadth-first,
// skipping dot-files, and delegates parsing to the handler selected by the
// directory's Config. Unreadable or non-UTF-8 files are logged and
// skipped rather than aborting the walk.
type DirWalker struct {
	queue   []string
	cfg     Config
	handler ParseFunc
	pending []Document
}

// NewDirWalker starts a walk rooted at path, loading path's .rircfg.yaml
// (or DefaultConfig if absent) to pick the file parser.
func NewDirWalker(path string) *DirWalker {
	cfg := LoadConfig(path)
	return &DirWalker{
		queue:   []string{path},
		cfg:     cfg,
		handler: handlerFor(cfg),
	}
}

func isIgnored(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}

// Next returns the next document produced by the walk, expanding
// directories and parsing files as needed until one is available or the
// walk is exhausted.
func (w *DirWalker) Next() (Document, bool) {
	for {
		if len(w.pending) > 0 {
			doc := w.pending[0]
			w.pending = w.pending[1:]
			return doc, true
		}
		if len(w.queue) == 0 {
			return Document{}, false
		}

		path := w.queue[0]
		w.queue = w.queue[1:]

		if isIgnored(path) {
			log.Info().Str("path", path).Msg("ignoring dot-file")
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			log.Error().Str("path", path).Err(err).Msg("stat failed")
			continue
		}

		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				log.Error().Str("path", path).Err(err).Msg("read dir failed")
				continue
			}
			for _, entry := range entries {
				w.queue = append(w.queue, filepath.Join(path, entry.Name()))
			}
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			log.Error().Str("path", path).Err(err).Msg("read file failed")
			continue
		}
		if !utf8.Valid(content) {
			log.Warn().Str("path", path).Msg("skipping non-UTF-8 file")
			continue
		}

		docs, err := w.handler(path, string(content), w.cfg)
		if err != nil {
			log.Error().Str("path", path).Err(err).Msg("parse failed")
			continue
		}
		w.pending = docs
	}
}
