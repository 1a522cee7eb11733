package dataset

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/TanakhGematria/core/gematria"
)

// FileHashes records the content hashes of one emitted chapter file.
type FileHashes struct {
	SHA256    string `json:"sha256"`
	BLAKE3    string `json:"blake3"`
	SizeBytes int64  `json:"size_bytes"`
}

// Manifest describes one book's emitted dataset. It is written alongside
// the chapter files as manifest.json.
type Manifest struct {
	RunID     string                `json:"run_id"`
	CreatedAt string                `json:"created_at"`
	Title     string                `json:"title"`
	Chapters  int                   `json:"chapters"`
	Methods   []string              `json:"methods"`
	Files     map[string]FileHashes `json:"files"`
}

// WriteBook writes one JSON file per chapter under <outRoot>/<title>/,
// plus a manifest with per-file hashes. Each chapter file is written
// atomically: it exists fully or not at all.
func WriteBook(book *BookData, outRoot string) (*Manifest, error) {
	bookDir := filepath.Join(outRoot, book.Title)
	if err := os.MkdirAll(bookDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create book directory: %w", err)
	}

	manifest := &Manifest{
		RunID:     uuid.New().String(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Title:     book.Title,
		Chapters:  len(book.Chapters),
		Methods:   gematria.Methods(),
		Files:     make(map[string]FileHashes, len(book.Chapters)),
	}

	for _, chapter := range book.Chapters {
		name := strconv.Itoa(chapter.Number) + ".json"
		record := map[string]map[string]map[string]*VerseRecord{
			book.Title: {
				strconv.Itoa(chapter.Number): chapter.Verses,
			},
		}

		data, err := marshalRecord(record)
		if err != nil {
			return nil, fmt.Errorf("failed to encode chapter %d: %w", chapter.Number, err)
		}
		if err := writeFileAtomic(filepath.Join(bookDir, name), data); err != nil {
			return nil, fmt.Errorf("failed to write chapter %d: %w", chapter.Number, err)
		}

		sum := sha256.Sum256(data)
		b3 := blake3.Sum256(data)
		manifest.Files[name] = FileHashes{
			SHA256:    hex.EncodeToString(sum[:]),
			BLAKE3:    hex.EncodeToString(b3[:]),
			SizeBytes: int64(len(data)),
		}
	}

	manifestData, err := marshalRecord(manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := writeFileAtomic(filepath.Join(bookDir, "manifest.json"), manifestData); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}

	return manifest, nil
}

// marshalRecord encodes v as two-space-indented JSON with Hebrew text
// left unescaped.
func marshalRecord(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeFileAtomic writes data to path via a temp file and rename so that
// readers never observe a partially written file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(dir, ".chapter-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
