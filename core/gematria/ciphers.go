package gematria

import (
	"strings"

	"github.com/FocuswithJustin/TanakhGematria/core/hebrew"
)

// The temurah cipher maps. Each is total over the 22 base letters; only
// atbach and ayak bachar may map into final forms, because their 27-symbol
// sequence includes the finals. All are built once at init from their
// structural rules.
var (
	atbashMap       map[rune]rune
	albamMap        map[rune]rune
	achbiMap        map[rune]rune
	atbachMap       map[rune]rune
	ayakBacharMap   map[rune]rune
	achasBetaMap    map[rune]rune
	avgadMap        map[rune]rune
	reverseAvgadMap map[rune]rune
)

// atbachSeq is the 27-symbol sequence used by atbach and ayak bachar:
// the 22 letters followed by the 5 finals, forming three groups of nine.
var atbachSeq = append(append([]rune{}, Alphabet...), Finals...)

func init() {
	atbashMap = buildReversed(Alphabet)

	// Albam: swap first half with second half position-for-position.
	albamMap = make(map[rune]rune, 22)
	for i := 0; i < 11; i++ {
		a, b := Alphabet[i], Alphabet[i+11]
		albamMap[a] = b
		albamMap[b] = a
	}

	// AchBi: reverse within each 11-letter half independently.
	achbiMap = make(map[rune]rune, 22)
	for k, v := range buildReversed(Alphabet[:11]) {
		achbiMap[k] = v
	}
	for k, v := range buildReversed(Alphabet[11:]) {
		achbiMap[k] = v
	}

	// Atbach: reverse within each of the three 9-symbol groups.
	atbachMap = make(map[rune]rune, 27)
	for i := 0; i < 27; i += 9 {
		for k, v := range buildReversed(atbachSeq[i : i+9]) {
			atbachMap[k] = v
		}
	}

	// Ayak Bachar: rotate group 1→2→3→1 position-for-position.
	ayakBacharMap = make(map[rune]rune, 27)
	for g := 0; g < 3; g++ {
		group := atbachSeq[g*9 : g*9+9]
		next := atbachSeq[((g+1)%3)*9 : ((g+1)%3)*9+9]
		for i, a := range group {
			ayakBacharMap[a] = next[i]
		}
	}

	// Achas Beta: 7/7/8 split, built as three pairwise zips exactly as
	// the reference chart does. The zip lengths leave the last letter of
	// the third group without an image, so it passes through unchanged.
	achasBetaMap = make(map[rune]rune, 22)
	g1, g2, g3 := Alphabet[0:7], Alphabet[7:14], Alphabet[14:22]
	zipInto(achasBetaMap, g1, g2)
	zipInto(achasBetaMap, g2, g3)
	zipInto(achasBetaMap, g3, g1)

	// Avgad shifts forward one letter with wraparound; reverse avgad is
	// its exact inverse.
	avgadMap = make(map[rune]rune, 22)
	reverseAvgadMap = make(map[rune]rune, 22)
	for i, a := range Alphabet {
		b := Alphabet[(i+1)%len(Alphabet)]
		avgadMap[a] = b
		reverseAvgadMap[b] = a
	}
}

// buildReversed pairs each symbol of seq with its mirror position.
func buildReversed(seq []rune) map[rune]rune {
	m := make(map[rune]rune, len(seq))
	n := len(seq)
	for i, r := range seq {
		m[r] = seq[n-1-i]
	}
	return m
}

// zipInto maps from[i] to to[i] for the shorter of the two slices.
func zipInto(m map[rune]rune, from, to []rune) {
	n := len(from)
	if len(to) < n {
		n = len(to)
	}
	for i := 0; i < n; i++ {
		m[from[i]] = to[i]
	}
}

// transform applies a cipher map to s. Finals are normalized to their base
// form before lookup; symbols without a mapping pass through unchanged.
func transform(s string, m map[rune]rune) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		base := hebrew.BaseLetter(r)
		if mapped, ok := m[base]; ok {
			b.WriteRune(mapped)
		} else {
			b.WriteRune(base)
		}
	}
	return b.String()
}
