// Package gematria computes numeric values for Hebrew letter strings.
// It implements the twenty TorahCalc calculation methods: five direct
// scoring tables, squared/cubed/cumulative variants, three name-expansion
// (milui) variants, and eight temurah substitution ciphers.
//
// All methods are pure and stateless. Characters absent from a table
// contribute zero; characters without a cipher mapping pass through
// unchanged. A string with no Hebrew letters yields zero for every method.
package gematria

// Alphabet is the 22 base Hebrew letters in traditional order.
var Alphabet = []rune{
	'א', 'ב', 'ג', 'ד', 'ה', 'ו', 'ז', 'ח', 'ט',
	'י', 'כ', 'ל', 'מ', 'נ', 'ס', 'ע', 'פ', 'צ',
	'ק', 'ר', 'ש', 'ת',
}

// Finals is the five final letter forms, ordered by their base letters.
var Finals = []rune{'ך', 'ם', 'ן', 'ף', 'ץ'}

// hechrachiTable holds standard (Mispar Hechrachi) values. Final forms
// share their base letter's value.
var hechrachiTable = map[rune]int{
	'א': 1, 'ב': 2, 'ג': 3, 'ד': 4, 'ה': 5, 'ו': 6, 'ז': 7, 'ח': 8, 'ט': 9,
	'י': 10, 'כ': 20, 'ך': 20, 'ל': 30, 'מ': 40, 'ם': 40, 'נ': 50, 'ן': 50,
	'ס': 60, 'ע': 70, 'פ': 80, 'ף': 80, 'צ': 90, 'ץ': 90, 'ק': 100, 'ר': 200,
	'ש': 300, 'ת': 400,
}

// gadolTable holds large (Mispar Gadol) values: finals take 500–900.
var gadolTable = map[rune]int{
	'א': 1, 'ב': 2, 'ג': 3, 'ד': 4, 'ה': 5, 'ו': 6, 'ז': 7, 'ח': 8, 'ט': 9,
	'י': 10, 'כ': 20, 'ל': 30, 'מ': 40, 'נ': 50, 'ס': 60, 'ע': 70, 'פ': 80,
	'צ': 90, 'ק': 100, 'ר': 200, 'ש': 300, 'ת': 400,
	'ך': 500, 'ם': 600, 'ן': 700, 'ף': 800, 'ץ': 900,
}

// siduriTable holds ordinal (Mispar Siduri) values 1–22. Finals share
// their base letter's ordinal, so collisions with later letters are
// intentional (both כ and ך are 11).
var siduriTable = map[rune]int{
	'א': 1, 'ב': 2, 'ג': 3, 'ד': 4, 'ה': 5, 'ו': 6, 'ז': 7, 'ח': 8, 'ט': 9,
	'י': 10, 'כ': 11, 'ך': 11, 'ל': 12, 'מ': 13, 'ם': 13, 'נ': 14, 'ן': 14,
	'ס': 15, 'ע': 16, 'פ': 17, 'ף': 17, 'צ': 18, 'ץ': 18, 'ק': 19, 'ר': 20,
	'ש': 21, 'ת': 22,
}

// katanTable holds reduced (Mispar Katan) values: the standard value with
// trailing zeros dropped, i.e. 1–9 cycling through the alphabet.
var katanTable = map[rune]int{
	'א': 1, 'ב': 2, 'ג': 3, 'ד': 4, 'ה': 5, 'ו': 6, 'ז': 7, 'ח': 8, 'ט': 9,
	'י': 1, 'כ': 2, 'ך': 2, 'ל': 3, 'מ': 4, 'ם': 4, 'נ': 5, 'ן': 5,
	'ס': 6, 'ע': 7, 'פ': 8, 'ף': 8, 'צ': 9, 'ץ': 9, 'ק': 1, 'ר': 2,
	'ש': 3, 'ת': 4,
}

// mispariTable holds Mispar Mispari values, the gematria of each letter's
// spelled-out number name per the TorahCalc reference chart. Not derivable
// from alphabet position.
var mispariTable = map[rune]int{
	'א': 13, 'ב': 760, 'ג': 13, 'ד': 434, 'ה': 38, 'ו': 42, 'ז': 67,
	'ח': 68, 'ט': 419, 'י': 570, 'כ': 100, 'ך': 100, 'ל': 74, 'מ': 80,
	'ם': 80, 'נ': 106, 'ן': 106, 'ס': 60, 'ע': 130, 'פ': 81, 'ף': 81,
	'צ': 104, 'ץ': 104, 'ק': 186, 'ר': 501, 'ש': 1083, 'ת': 720,
}

// kidmiTable maps each base letter to the cumulative Hechrachi total from
// alef through that letter. Built once at init.
var kidmiTable = make(map[rune]int, len(Alphabet))

func init() {
	running := 0
	for _, r := range Alphabet {
		running += hechrachiTable[r]
		kidmiTable[r] = running
	}
}

// LetterNames maps a letter to its spelled-out name, used by the shemi,
// neelam and ofanim methods. A letter missing from the table contributes
// zero; it is never an error. Final forms deliberately resolve through
// their base letter when absent, so a table keyed by the 22 base letters
// covers finals too.
type LetterNames map[rune]string

// DefaultLetterNames holds the TorahCalc default letter spellings.
// Final forms carry the same name as their base letter.
var DefaultLetterNames = LetterNames{
	'א': "אלף",
	'ב': "בית",
	'ג': "גימל",
	'ד': "דלת",
	'ה': "הא",
	'ו': "וו",
	'ז': "זין",
	'ח': "חית",
	'ט': "טית",
	'י': "יוד",
	'כ': "כף", 'ך': "כף",
	'ל': "למד",
	'מ': "מם", 'ם': "מם",
	'נ': "נון", 'ן': "נון",
	'ס': "סמך",
	'ע': "עין",
	'פ': "פא", 'ף': "פא",
	'צ': "צדי", 'ץ': "צדי",
	'ק': "קוף",
	'ר': "ריש",
	'ש': "שן",
	'ת': "תו",
}
