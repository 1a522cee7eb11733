package dataset

import (
	"strconv"

	"github.com/FocuswithJustin/TanakhGematria/core/gematria"
	"github.com/FocuswithJustin/TanakhGematria/core/hebrew"
)

// TokenValues holds one token's letters-only text and its value under
// every catalog method. The short field names match the emitted schema.
type TokenValues struct {
	T string         `json:"t"`
	V map[string]int `json:"v"`
}

// VerseValues groups a verse's per-method token sums with the per-token
// breakdowns.
type VerseValues struct {
	SumOfTokens map[string]int `json:"sum_of_tokens"`
	Tokens      []TokenValues  `json:"tokens"`
}

// VerseRecord is one verse's emitted record.
type VerseRecord struct {
	Text        string      `json:"text"`
	TextLetters string      `json:"text_letters"`
	Tokens      []string    `json:"tokens"`
	Values      VerseValues `json:"values"`
}

// ChapterData holds one chapter's verse records keyed by 1-based verse
// number. Records are write-once; nothing mutates them after Build.
type ChapterData struct {
	Number int
	Verses map[string]*VerseRecord
}

// BookData is the fully computed dataset for one book.
type BookData struct {
	Title    string
	Chapters []ChapterData
}

// Build computes every catalog method for every token of every verse.
// A nil names table selects the default letter spellings.
func Build(src *Source, names gematria.LetterNames) *BookData {
	book := &BookData{Title: src.Title}
	for i, verses := range src.Text {
		chapter := ChapterData{
			Number: i + 1,
			Verses: make(map[string]*VerseRecord, len(verses)),
		}
		for j, verse := range verses {
			chapter.Verses[strconv.Itoa(j+1)] = buildVerse(verse, names)
		}
		book.Chapters = append(book.Chapters, chapter)
	}
	return book
}

func buildVerse(verse string, names gematria.LetterNames) *VerseRecord {
	// Marks are stripped before tokenizing, as the reference dataset
	// does. The maqaf falls inside the stripped mark range, so words it
	// joins form a single token here; Tokenize still splits on maqaf
	// when handed raw text.
	cleaned := hebrew.StripMarks(verse)
	tokens := hebrew.Tokenize(cleaned)
	methods := gematria.Methods()

	totals := make(map[string]int, len(methods))
	for _, method := range methods {
		totals[method] = 0
	}

	record := &VerseRecord{
		Text:        verse,
		TextLetters: hebrew.LettersOnly(cleaned),
		Tokens:      make([]string, 0, len(tokens)),
		Values: VerseValues{
			SumOfTokens: totals,
			Tokens:      make([]TokenValues, 0, len(tokens)),
		},
	}

	for _, token := range tokens {
		letters := hebrew.LettersOnly(token)
		values := make(map[string]int, len(totals))
		for _, method := range methods {
			v, _ := gematria.Value(method, letters, names)
			values[method] = v
			totals[method] += v
		}
		record.Tokens = append(record.Tokens, letters)
		record.Values.Tokens = append(record.Values.Tokens, TokenValues{T: letters, V: values})
	}

	return record
}
