package dataset

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/FocuswithJustin/TanakhGematria/core/sqlite"
)

// SQLiteSink writes dataset records into a SQLite database as a flat,
// queryable mirror of the JSON output. One sink may receive any number
// of books.
type SQLiteSink struct {
	db *sql.DB
}

const sinkSchema = `
CREATE TABLE IF NOT EXISTS books (
	title TEXT PRIMARY KEY,
	chapters INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS verses (
	title TEXT NOT NULL,
	chapter INTEGER NOT NULL,
	verse INTEGER NOT NULL,
	text TEXT NOT NULL,
	text_letters TEXT NOT NULL,
	PRIMARY KEY (title, chapter, verse)
);
CREATE TABLE IF NOT EXISTS token_values (
	title TEXT NOT NULL,
	chapter INTEGER NOT NULL,
	verse INTEGER NOT NULL,
	position INTEGER NOT NULL,
	token TEXT NOT NULL,
	method TEXT NOT NULL,
	value INTEGER NOT NULL,
	PRIMARY KEY (title, chapter, verse, position, method)
);
`

// OpenSQLiteSink opens (creating if needed) a sink database at path and
// ensures the schema exists.
func OpenSQLiteSink(path string) (*SQLiteSink, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sink database: %w", err)
	}
	if _, err := db.Exec(sinkSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create sink schema: %w", err)
	}
	return &SQLiteSink{db: db}, nil
}

// Close closes the sink database.
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}

// WriteBook inserts one book's records in a single transaction, so the
// sink never holds a partially written book.
func (s *SQLiteSink) WriteBook(book *BookData) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT OR REPLACE INTO books (title, chapters) VALUES (?, ?)`,
		book.Title, len(book.Chapters),
	); err != nil {
		return fmt.Errorf("failed to insert book: %w", err)
	}

	verseStmt, err := tx.Prepare(
		`INSERT OR REPLACE INTO verses (title, chapter, verse, text, text_letters) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare verse insert: %w", err)
	}
	defer verseStmt.Close()

	tokenStmt, err := tx.Prepare(
		`INSERT OR REPLACE INTO token_values (title, chapter, verse, position, token, method, value) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare token insert: %w", err)
	}
	defer tokenStmt.Close()

	for _, chapter := range book.Chapters {
		for verseKey, record := range chapter.Verses {
			verseNum, err := strconv.Atoi(verseKey)
			if err != nil {
				return fmt.Errorf("invalid verse key %q: %w", verseKey, err)
			}
			if _, err := verseStmt.Exec(
				book.Title, chapter.Number, verseNum, record.Text, record.TextLetters,
			); err != nil {
				return fmt.Errorf("failed to insert verse %d:%d: %w", chapter.Number, verseNum, err)
			}
			for pos, token := range record.Values.Tokens {
				for method, value := range token.V {
					if _, err := tokenStmt.Exec(
						book.Title, chapter.Number, verseNum, pos, token.T, method, value,
					); err != nil {
						return fmt.Errorf("failed to insert token values %d:%d: %w", chapter.Number, verseNum, err)
					}
				}
			}
		}
	}

	return tx.Commit()
}
