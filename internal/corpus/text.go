package corpus

// FileType identifies which parser a Config's file_type selects.
const (
	FileTypeText      = "text"
	FileTypeJSON      = "json"
	FileTypeJSONLines = "jsonlines"
)

// ParseText turns one file's raw content into a single document whose
// content is the file verbatim.
func ParseText(path, content string, _ Config) ([]Document, error) {
	return []Document{{Content: content, Path: path}}, nil
}
