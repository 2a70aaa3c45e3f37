package corpus

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseJSON turns one file holding a JSON array of records (or a single
// record) into one document per record, projecting the same cfg.Fields
// used by ParseJSONLines. This supplements the JSON Lines parser for
// corpora shipped as one big array instead of newline-delimited records.
func ParseJSON(path, content string, cfg Config) ([]Document, error) {
	var records []map[string]any

	var array []map[string]any
	if err := json.Unmarshal([]byte(content), &array); err == nil {
		records = array
	} else {
		var single map[string]any
		if err := json.Unmarshal([]byte(content), &single); err != nil {
			return nil, fmt.Errorf("corpus: %s: not a JSON object or array of objects: %w", path, err)
		}
		records = []map[string]any{single}
	}

	docs := make([]Document, 0, len(records))
	for i, record := range records {
		var fields strings.Builder
		for _, field := range cfg.Fields {
			if v, ok := record[strings.ToLower(field)].(string); ok {
				fields.WriteString(v)
			}
		}
		docs = append(docs, Document{
			Content: fields.String(),
			Path:    fmt.Sprintf("%s:%d", path, i+1),
		})
	}
	return docs, nil
}
