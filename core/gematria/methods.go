package gematria

import "github.com/FocuswithJustin/TanakhGematria/core/hebrew"

// Func computes one gematria method over a string. The names table is
// only consulted by the milui methods (shemi, neelam, ofanim); a nil
// table means DefaultLetterNames.
type Func func(s string, names LetterNames) int

// methodNames is the fixed catalog order. It matches the key order of the
// emitted dataset and must not change between releases.
var methodNames = []string{
	"hechrachi", "gadol", "siduri", "katan",
	"perati", "meshulash", "kidmi", "boneh", "mispari",
	"shemi", "neelam", "ofanim",
	"atbash", "albam", "achbi", "atbach",
	"ayak_bachar", "achas_beta", "avgad", "reverse_avgad",
}

// catalog is the closed registry of methods by name.
var catalog = map[string]Func{
	"hechrachi": func(s string, _ LetterNames) int { return MisparHechrachi(s) },
	"gadol":     func(s string, _ LetterNames) int { return MisparGadol(s) },
	"siduri":    func(s string, _ LetterNames) int { return MisparSiduri(s) },
	"katan":     func(s string, _ LetterNames) int { return MisparKatan(s) },
	"perati":    func(s string, _ LetterNames) int { return MisparPerati(s) },
	"meshulash": func(s string, _ LetterNames) int { return MisparMeshulash(s) },
	"kidmi":     func(s string, _ LetterNames) int { return MisparKidmi(s) },
	"boneh":     func(s string, _ LetterNames) int { return MisparBoneh(s) },
	"mispari":   func(s string, _ LetterNames) int { return MisparMispari(s) },
	"shemi":     MisparShemi,
	"neelam":    MisparNeelam,
	"ofanim":    Ofanim,
	"atbash":    func(s string, _ LetterNames) int { return AtbashValue(s) },
	"albam":     func(s string, _ LetterNames) int { return AlbamValue(s) },
	"achbi":     func(s string, _ LetterNames) int { return AchbiValue(s) },
	"atbach":    func(s string, _ LetterNames) int { return AtbachValue(s) },
	"ayak_bachar": func(s string, _ LetterNames) int {
		return AyakBacharValue(s)
	},
	"achas_beta": func(s string, _ LetterNames) int {
		return AchasBetaValue(s)
	},
	"avgad": func(s string, _ LetterNames) int { return AvgadValue(s) },
	"reverse_avgad": func(s string, _ LetterNames) int {
		return ReverseAvgadValue(s)
	},
}

// Methods returns the catalog's method names in their fixed order.
func Methods() []string {
	out := make([]string, len(methodNames))
	copy(out, methodNames)
	return out
}

// Value computes one method by name. It returns false if the name is not
// in the catalog.
func Value(method, s string, names LetterNames) (int, bool) {
	f, ok := catalog[method]
	if !ok {
		return 0, false
	}
	return f(s, names), true
}

// sumTable sums per-letter lookups in table, after filtering s to Hebrew
// letters. Letters absent from the table contribute zero.
func sumTable(s string, table map[rune]int) int {
	total := 0
	for _, r := range hebrew.LettersOnly(s) {
		total += table[r]
	}
	return total
}

// MisparHechrachi computes the standard gematria value.
func MisparHechrachi(s string) int { return sumTable(s, hechrachiTable) }

// MisparGadol computes the large value, with finals taking 500–900.
func MisparGadol(s string) int { return sumTable(s, gadolTable) }

// MisparSiduri computes the ordinal value, 1–22 per letter.
func MisparSiduri(s string) int { return sumTable(s, siduriTable) }

// MisparKatan computes the reduced single-digit value.
func MisparKatan(s string) int { return sumTable(s, katanTable) }

// MisparMispari computes the spelled-number-name value.
func MisparMispari(s string) int { return sumTable(s, mispariTable) }

// MisparPerati computes the sum of squared standard values.
func MisparPerati(s string) int {
	total := 0
	for _, r := range hebrew.LettersOnly(s) {
		v := hechrachiTable[r]
		total += v * v
	}
	return total
}

// MisparMeshulash computes the sum of cubed standard values.
func MisparMeshulash(s string) int {
	total := 0
	for _, r := range hebrew.LettersOnly(s) {
		v := hechrachiTable[r]
		total += v * v * v
	}
	return total
}

// MisparKidmi sums, for each letter, the cumulative standard values from
// alef through that letter. Finals collapse to their base letter first.
func MisparKidmi(s string) int {
	total := 0
	for _, r := range hebrew.LettersOnly(s) {
		total += kidmiTable[hebrew.BaseLetter(r)]
	}
	return total
}

// MisparBoneh keeps a running standard total while scanning left to right
// and adds the running total to the result after each letter.
func MisparBoneh(s string) int {
	total := 0
	running := 0
	for _, r := range hebrew.LettersOnly(s) {
		running += hechrachiTable[r]
		total += running
	}
	return total
}

// letterName resolves a letter's spelled name, falling back to the base
// form for finals so override tables may be keyed by base letters only.
func letterName(r rune, names LetterNames) string {
	if names == nil {
		names = DefaultLetterNames
	}
	if name, ok := names[r]; ok {
		return name
	}
	return names[hebrew.BaseLetter(r)]
}

// MisparShemi (milui) sums the standard value of each letter's full
// spelled name.
func MisparShemi(s string, names LetterNames) int {
	total := 0
	for _, r := range hebrew.LettersOnly(s) {
		total += MisparHechrachi(letterName(r, names))
	}
	return total
}

// MisparNeelam (hidden) sums the standard value of each letter's spelled
// name with its first letter removed.
func MisparNeelam(s string, names LetterNames) int {
	total := 0
	for _, r := range hebrew.LettersOnly(s) {
		name := []rune(letterName(r, names))
		if len(name) > 1 {
			total += MisparHechrachi(string(name[1:]))
		}
	}
	return total
}

// Ofanim (wheels) sums the standard value of the last letter of each
// letter's spelled name.
func Ofanim(s string, names LetterNames) int {
	total := 0
	for _, r := range hebrew.LettersOnly(s) {
		name := []rune(letterName(r, names))
		if len(name) > 0 {
			total += MisparHechrachi(string(name[len(name)-1]))
		}
	}
	return total
}

// AtbashValue substitutes through the reversed alphabet and scores with
// the standard table.
func AtbashValue(s string) int {
	return MisparHechrachi(transform(hebrew.LettersOnly(s), atbashMap))
}

// AlbamValue swaps the two alphabet halves and scores with the standard
// table.
func AlbamValue(s string) int {
	return MisparHechrachi(transform(hebrew.LettersOnly(s), albamMap))
}

// AchbiValue reverses within each alphabet half and scores with the
// standard table.
func AchbiValue(s string) int {
	return MisparHechrachi(transform(hebrew.LettersOnly(s), achbiMap))
}

// AtbachValue reverses within the three 9-symbol groups of the 27-symbol
// sequence and scores with the large table: the cipher can land on final
// forms, which must take their elevated values.
func AtbachValue(s string) int {
	return MisparGadol(transform(hebrew.LettersOnly(s), atbachMap))
}

// AyakBacharValue rotates the three 9-symbol groups forward and scores
// with the large table, for the same reason as AtbachValue.
func AyakBacharValue(s string) int {
	return MisparGadol(transform(hebrew.LettersOnly(s), ayakBacharMap))
}

// AchasBetaValue applies the 7/7/8 group substitution and scores with the
// standard table.
func AchasBetaValue(s string) int {
	return MisparHechrachi(transform(hebrew.LettersOnly(s), achasBetaMap))
}

// AvgadValue shifts every letter forward by one and scores with the
// standard table.
func AvgadValue(s string) int {
	return MisparHechrachi(transform(hebrew.LettersOnly(s), avgadMap))
}

// ReverseAvgadValue shifts every letter backward by one and scores with
// the standard table.
func ReverseAvgadValue(s string) int {
	return MisparHechrachi(transform(hebrew.LettersOnly(s), reverseAvgadMap))
}
