package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// ParseJSONLines turns one file's content into one document per non-blank
// line: a JSON object is decoded per line, and cfg.Fields names which
// string-valued fields get concatenated (in order) into the document's
// content. Lines that fail to parse are logged and skipped rather than
// failing the whole file.
func ParseJSONLines(path, content string, cfg Config) ([]Document, error) {
	var docs []Document
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var record map[string]any
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			log.Warn().Str("path", path).Int("line", lineNo).Err(err).Msg("skipping malformed jsonlines record")
			continue
		}
		var fields strings.Builder
		for _, field := range cfg.Fields {
			if v, ok := record[strings.ToLower(field)].(string); ok {
				fields.WriteString(v)
			}
		}
		docs = append(docs, Document{
			Content: fields.String(),
			Path:    fmt.Sprintf("%s:%d", path, lineNo),
		})
	}
	if err := scanner.Err(); err != nil {
		return docs, err
	}
	return docs, nil
}
