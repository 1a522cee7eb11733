// Package hebrew provides normalization for Hebrew verse text: stripping
// pointing and cantillation, filtering to the consonant block, normalizing
// final letter forms, and splitting verses into word tokens.
//
// All functions are pure. Any input, including the empty string, yields
// empty outputs rather than an error.
package hebrew

import "strings"

const (
	// Maqaf is the Hebrew hyphen joining words inside a verse (U+05BE).
	Maqaf = '־'
	// SofPasuq is the verse-final punctuation mark (U+05C3).
	SofPasuq = '׃'
)

// finalToBase maps the five final letter forms to their base letters.
var finalToBase = map[rune]rune{
	'ך': 'כ',
	'ם': 'מ',
	'ן': 'נ',
	'ף': 'פ',
	'ץ': 'צ',
}

// IsLetter reports whether r is in the Hebrew consonant block
// U+05D0..U+05EA (the 22 letters plus the 5 final forms).
func IsLetter(r rune) bool {
	return r >= 'א' && r <= 'ת'
}

// IsMark reports whether r is a Hebrew point or cantillation mark
// (U+0591..U+05C7).
func IsMark(r rune) bool {
	return r >= 0x0591 && r <= 0x05C7
}

// IsFinal reports whether r is one of the five final letter forms.
func IsFinal(r rune) bool {
	_, ok := finalToBase[r]
	return ok
}

// BaseLetter returns the base form of r if r is a final letter,
// otherwise r unchanged.
func BaseLetter(r rune) rune {
	if base, ok := finalToBase[r]; ok {
		return base
	}
	return r
}

// StripMarks removes all points and cantillation marks from s, leaving
// letters, punctuation and whitespace intact.
func StripMarks(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if IsMark(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// LettersOnly removes everything outside the Hebrew consonant block,
// including digits, Latin text, punctuation and whitespace.
func LettersOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeFinals rewrites every final letter form in s to its base form.
func NormalizeFinals(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(BaseLetter(r))
	}
	return b.String()
}

// Tokenize splits a verse into word tokens. Sof pasuq marks are deleted
// first, then the verse is split on runs of whitespace and maqaf. Empty
// fragments are discarded and token order is preserved.
func Tokenize(verse string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if r == SofPasuq {
			return -1
		}
		if r == Maqaf {
			return ' '
		}
		return r
	}, verse)
	return strings.Fields(cleaned)
}
