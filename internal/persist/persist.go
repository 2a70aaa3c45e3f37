// Package persist saves and restores an engine's state across three
// independent artifacts in a directory: postings.bin.gz (the inverted
// index, length-prefixed binary wrapped in gzip), dictionary.json (the
// term/id mapping), and docmeta.json (the doc id/path map). Keeping these
// separate means a corrupt postings file doesn't take the dictionary down
// with it, and each can be inspected or regenerated independently.
package persist

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	"github.com/wizenheimer/rir/internal/dictionary"
	"github.com/wizenheimer/rir/internal/index"
)

const (
	postingsFile   = "postings.bin.gz"
	dictionaryFile = "dictionary.json"
	docMetaFile    = "docmeta.json"
	tempSuffix     = ".tmp"
	filePermBits   = 0o644
)

// State is everything needed to reconstruct a running engine: the index,
// the dictionary, and the doc id to source path map.
type State struct {
	Index   *index.Index
	Dict    *dictionary.Dictionary
	DocMeta map[index.DocID]string
}

// Save writes State's three artifacts into dir, creating it if necessary.
// Each artifact is written to a temporary file in dir and then renamed into
// place, so a crash mid-write never leaves a half-written artifact where a
// reader expects a complete one.
func Save(dir string, state State) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("persist: create dir %s: %w", dir, err)
	}

	postings, err := encodePostings(state.Index)
	if err != nil {
		return fmt.Errorf("persist: encode postings: %w", err)
	}
	if err := writeAtomic(filepath.Join(dir, postingsFile), postings); err != nil {
		return fmt.Errorf("persist: write %s: %w", postingsFile, err)
	}

	dictJSON, err := json.Marshal(state.Dict.Snapshot())
	if err != nil {
		return fmt.Errorf("persist: encode dictionary: %w", err)
	}
	if err := writeAtomic(filepath.Join(dir, dictionaryFile), dictJSON); err != nil {
		return fmt.Errorf("persist: write %s: %w", dictionaryFile, err)
	}

	metaJSON, err := json.Marshal(state.DocMeta)
	if err != nil {
		return fmt.Errorf("persist: encode doc metadata: %w", err)
	}
	if err := writeAtomic(filepath.Join(dir, docMetaFile), metaJSON); err != nil {
		return fmt.Errorf("persist: write %s: %w", docMetaFile, err)
	}

	return nil
}

// Load reads all three artifacts from dir and reconstructs a State. The
// error names which artifact failed so a caller (or an operator reading
// logs) can tell a missing dictionary apart from a corrupt postings file.
func Load(dir string) (State, error) {
	postingsBytes, err := os.ReadFile(filepath.Join(dir, postingsFile))
	if err != nil {
		return State{}, fmt.Errorf("persist: read %s: %w", postingsFile, err)
	}
	idx, err := decodePostings(postingsBytes)
	if err != nil {
		return State{}, fmt.Errorf("persist: decode %s: %w", postingsFile, err)
	}

	dictBytes, err := os.ReadFile(filepath.Join(dir, dictionaryFile))
	if err != nil {
		return State{}, fmt.Errorf("persist: read %s: %w", dictionaryFile, err)
	}
	var snap dictionary.Snapshot
	if err := json.Unmarshal(dictBytes, &snap); err != nil {
		return State{}, fmt.Errorf("persist: decode %s: %w", dictionaryFile, err)
	}

	metaBytes, err := os.ReadFile(filepath.Join(dir, docMetaFile))
	if err != nil {
		return State{}, fmt.Errorf("persist: read %s: %w", docMetaFile, err)
	}
	var docMeta map[index.DocID]string
	if err := json.Unmarshal(metaBytes, &docMeta); err != nil {
		return State{}, fmt.Errorf("persist: decode %s: %w", docMetaFile, err)
	}

	return State{Index: idx, Dict: dictionary.Restore(snap), DocMeta: docMeta}, nil
}

// writeAtomic writes data to a temp file beside path and renames it into
// place, so readers never observe a partially written file.
func writeAtomic(path string, data []byte) error {
	tmp := path + tempSuffix
	if err := os.WriteFile(tmp, data, filePermBits); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// encodePostings writes a length-prefixed binary encoding of every posting
// list, gzip-compressed. Document frequency, term frequency, document
// length, and the running averages are all recomputed on load from the
// postings alone (see index.BuildFromPostings), so the format only needs
// to carry the postings themselves plus the two id counters.
//
// FORMAT:
//
//	[documentCount: uint32][nextDocID: uint32][numTerms: uint32]
//	for each term:
//	  [termID: uint32][numPostings: uint32]
//	  for each posting:
//	    [docID: uint32][termFrequency: uint32][numPositions: uint32]
//	    [position: uint32]...
func encodePostings(idx *index.Index) ([]byte, error) {
	raw := new(bytes.Buffer)

	postings := idx.Postings()
	if err := binary.Write(raw, binary.LittleEndian, idx.DocumentCount()); err != nil {
		return nil, err
	}
	if err := binary.Write(raw, binary.LittleEndian, uint32(idx.NextDocID())); err != nil {
		return nil, err
	}
	if err := binary.Write(raw, binary.LittleEndian, uint32(len(postings))); err != nil {
		return nil, err
	}

	for term, list := range postings {
		if err := binary.Write(raw, binary.LittleEndian, uint32(term)); err != nil {
			return nil, err
		}
		if err := binary.Write(raw, binary.LittleEndian, uint32(len(list))); err != nil {
			return nil, err
		}
		for _, p := range list {
			if err := binary.Write(raw, binary.LittleEndian, uint32(p.DocID)); err != nil {
				return nil, err
			}
			if err := binary.Write(raw, binary.LittleEndian, p.TermFrequency); err != nil {
				return nil, err
			}
			if err := binary.Write(raw, binary.LittleEndian, uint32(len(p.Positions))); err != nil {
				return nil, err
			}
			for _, pos := range p.Positions {
				if err := binary.Write(raw, binary.LittleEndian, uint32(pos)); err != nil {
					return nil, err
				}
			}
		}
	}

	var compressed bytes.Buffer
	gw := gzip.NewWriter(&compressed)
	if _, err := gw.Write(raw.Bytes()); err != nil {
		return nil, err
	}
	if err := gw.Close(); err != nil {
		return nil, err
	}
	return compressed.Bytes(), nil
}

func decodePostings(data []byte) (*index.Index, error) {
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gr.Close()

	raw, err := io.ReadAll(gr)
	if err != nil {
		return nil, err
	}

	r := bytes.NewReader(raw)

	var documentCount, nextDocID, numTerms uint32
	if err := binary.Read(r, binary.LittleEndian, &documentCount); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &nextDocID); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &numTerms); err != nil {
		return nil, err
	}

	postings := make(map[dictionary.TermID][]index.Posting, numTerms)
	for i := uint32(0); i < numTerms; i++ {
		var termID, numPostings uint32
		if err := binary.Read(r, binary.LittleEndian, &termID); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.LittleEndian, &numPostings); err != nil {
			return nil, err
		}

		list := make([]index.Posting, numPostings)
		for j := uint32(0); j < numPostings; j++ {
			var docID, termFrequency, numPositions uint32
			if err := binary.Read(r, binary.LittleEndian, &docID); err != nil {
				return nil, err
			}
			if err := binary.Read(r, binary.LittleEndian, &termFrequency); err != nil {
				return nil, err
			}
			if err := binary.Read(r, binary.LittleEndian, &numPositions); err != nil {
				return nil, err
			}
			positions := make([]index.TermOffset, numPositions)
			for k := uint32(0); k < numPositions; k++ {
				var pos uint32
				if err := binary.Read(r, binary.LittleEndian, &pos); err != nil {
					return nil, err
				}
				positions[k] = index.TermOffset(pos)
			}
			list[j] = index.Posting{DocID: index.DocID(docID), TermFrequency: termFrequency, Positions: positions}
		}
		postings[dictionary.TermID(termID)] = list
	}

	return index.BuildFromPostings(postings, documentCount, index.DocID(nextDocID)), nil
}
