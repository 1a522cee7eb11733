// Package dataset builds the per-chapter gematria dataset from Sefaria
// book exports: it decodes source files, runs every catalog method over
// every token, and emits one JSON record per chapter plus a book manifest.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrStructural indicates a source file whose shape does not match the
// expected Sefaria export (a "title" string and a "text" list of chapters,
// each a list of verse strings). The error is fatal for that file only.
var ErrStructural = errors.New("structural error")

// Source is one decoded Sefaria book export.
type Source struct {
	Title string
	// Text holds chapters in order, each an ordered list of verse strings.
	Text [][]string
}

// ReadSource reads and decodes a Sefaria book export. A missing title
// falls back to the file's base name. A "text" field that is not a list
// of chapters yields ErrStructural.
func ReadSource(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source %s: %w", path, err)
	}

	var raw struct {
		Title string          `json:"title"`
		Text  json.RawMessage `json:"text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: not valid JSON: %v", ErrStructural, path, err)
	}

	src := &Source{Title: raw.Title}
	if src.Title == "" {
		base := filepath.Base(path)
		src.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if len(raw.Text) == 0 {
		return nil, fmt.Errorf("%w: %s: missing \"text\" field", ErrStructural, path)
	}
	if err := json.Unmarshal(raw.Text, &src.Text); err != nil {
		return nil, fmt.Errorf("%w: %s: \"text\" should be a list of chapters: %v", ErrStructural, path, err)
	}
	// A JSON null decodes to a nil slice without error; it is not a list.
	if src.Text == nil {
		return nil, fmt.Errorf("%w: %s: \"text\" is null, should be a list of chapters", ErrStructural, path)
	}

	return src, nil
}
