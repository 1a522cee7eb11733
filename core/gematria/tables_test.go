package gematria

import "testing"

func TestHechrachiPublishedValues(t *testing.T) {
	want := []int{
		1, 2, 3, 4, 5, 6, 7, 8, 9,
		10, 20, 30, 40, 50, 60, 70, 80, 90,
		100, 200, 300, 400,
	}
	for i, r := range Alphabet {
		if got := hechrachiTable[r]; got != want[i] {
			t.Errorf("hechrachi[%c] = %d, want %d", r, got, want[i])
		}
	}
}

func TestFinalsMatchBaseInHechrachi(t *testing.T) {
	pairs := map[rune]rune{'ך': 'כ', 'ם': 'מ', 'ן': 'נ', 'ף': 'פ', 'ץ': 'צ'}
	for final, base := range pairs {
		if hechrachiTable[final] != hechrachiTable[base] {
			t.Errorf("hechrachi final %c = %d, base %c = %d",
				final, hechrachiTable[final], base, hechrachiTable[base])
		}
		if siduriTable[final] != siduriTable[base] {
			t.Errorf("siduri final %c = %d, base %c = %d",
				final, siduriTable[final], base, siduriTable[base])
		}
		if katanTable[final] != katanTable[base] {
			t.Errorf("katan final %c = %d, base %c = %d",
				final, katanTable[final], base, katanTable[base])
		}
		if mispariTable[final] != mispariTable[base] {
			t.Errorf("mispari final %c = %d, base %c = %d",
				final, mispariTable[final], base, mispariTable[base])
		}
	}
}

func TestGadolFinalsElevatedAndIncreasing(t *testing.T) {
	want := map[rune]int{'ך': 500, 'ם': 600, 'ן': 700, 'ף': 800, 'ץ': 900}
	prev := 400
	for _, final := range Finals {
		got := gadolTable[final]
		if got != want[final] {
			t.Errorf("gadol[%c] = %d, want %d", final, got, want[final])
		}
		if got <= prev {
			t.Errorf("gadol[%c] = %d, not strictly increasing above %d", final, got, prev)
		}
		prev = got
	}
	// Non-finals are identical to Hechrachi.
	for _, r := range Alphabet {
		if gadolTable[r] != hechrachiTable[r] {
			t.Errorf("gadol[%c] = %d, hechrachi = %d", r, gadolTable[r], hechrachiTable[r])
		}
	}
}

func TestSiduriOrdinals(t *testing.T) {
	for i, r := range Alphabet {
		if got := siduriTable[r]; got != i+1 {
			t.Errorf("siduri[%c] = %d, want %d", r, got, i+1)
		}
	}
}

func TestKatanSingleDigit(t *testing.T) {
	for r, v := range katanTable {
		if v < 1 || v > 9 {
			t.Errorf("katan[%c] = %d, want 1..9", r, v)
		}
	}
	// Katan is the standard value with trailing zeros dropped.
	for _, r := range Alphabet {
		want := hechrachiTable[r]
		for want > 9 {
			want /= 10
		}
		if katanTable[r] != want {
			t.Errorf("katan[%c] = %d, want %d", r, katanTable[r], want)
		}
	}
}

func TestKidmiCumulative(t *testing.T) {
	running := 0
	prev := 0
	for _, r := range Alphabet {
		running += hechrachiTable[r]
		if kidmiTable[r] != running {
			t.Errorf("kidmi[%c] = %d, want %d", r, kidmiTable[r], running)
		}
		// Monotonic: a later letter never contributes less.
		if kidmiTable[r] < prev {
			t.Errorf("kidmi[%c] = %d, decreased from %d", r, kidmiTable[r], prev)
		}
		prev = kidmiTable[r]
	}
	if kidmiTable['ת'] != 1495 {
		t.Errorf("kidmi[ת] = %d, want 1495", kidmiTable['ת'])
	}
}

func TestDefaultLetterNamesTotal(t *testing.T) {
	for _, r := range Alphabet {
		name, ok := DefaultLetterNames[r]
		if !ok || name == "" {
			t.Errorf("no default name for %c", r)
		}
	}
	for _, final := range Finals {
		if DefaultLetterNames[final] == "" {
			t.Errorf("no default name for final %c", final)
		}
	}
}
