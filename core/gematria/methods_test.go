package gematria

import "testing"

// TestBereshitReferenceValues pins every catalog method against the
// TorahCalc reference values for the word בראשית.
func TestBereshitReferenceValues(t *testing.T) {
	const word = "בראשית"
	want := map[string]int{
		"hechrachi":     913,
		"gadol":         913,
		"siduri":        76,
		"katan":         13,
		"perati":        290105,
		"meshulash":     99001009,
		"kidmi":         3444,
		"boneh":         2336,
		"mispari":       3647,
		"shemi":         1809,
		"neelam":        896,
		"ofanim":        840,
		"atbash":        746,
		"albam":         409,
		"achbi":         152,
		"atbach":        2207,
		"ayak_bachar":   139,
		"achas_beta":    510,
		"avgad":         726,
		"reverse_avgad": 1010,
	}
	for method, wantValue := range want {
		got, ok := Value(method, word, nil)
		if !ok {
			t.Fatalf("method %q missing from catalog", method)
		}
		if got != wantValue {
			t.Errorf("%s(%s) = %d, want %d", method, word, got, wantValue)
		}
	}
}

func TestCatalogIsClosedAndOrdered(t *testing.T) {
	methods := Methods()
	if len(methods) != 20 {
		t.Fatalf("catalog has %d methods, want 20", len(methods))
	}
	seen := make(map[string]bool, len(methods))
	for _, name := range methods {
		if seen[name] {
			t.Errorf("duplicate method name %q", name)
		}
		seen[name] = true
		if _, ok := catalog[name]; !ok {
			t.Errorf("ordered name %q missing from catalog map", name)
		}
	}
	if len(catalog) != len(methods) {
		t.Errorf("catalog map has %d entries, ordered names %d", len(catalog), len(methods))
	}
	// Callers must not be able to mutate the catalog order.
	methods[0] = "mutated"
	if Methods()[0] != "hechrachi" {
		t.Error("Methods() should return a copy")
	}
}

func TestValueUnknownMethod(t *testing.T) {
	if _, ok := Value("kolel", "בראשית", nil); ok {
		t.Error("unknown method should report ok=false")
	}
}

func TestNoHebrewLettersYieldZero(t *testing.T) {
	inputs := []string{"", "hello", "123 !?", "  \t", "׃־"}
	for _, s := range inputs {
		for _, method := range Methods() {
			got, _ := Value(method, s, nil)
			if got != 0 {
				t.Errorf("%s(%q) = %d, want 0", method, s, got)
			}
		}
	}
}

func TestFinalsScoring(t *testing.T) {
	const word = "מלך"
	if got := MisparHechrachi(word); got != 90 {
		t.Errorf("hechrachi(מלך) = %d, want 90", got)
	}
	if got := MisparGadol(word); got != 570 {
		t.Errorf("gadol(מלך) = %d, want 570", got)
	}
	if got := MisparSiduri(word); got != 36 {
		t.Errorf("siduri(מלך) = %d, want 36", got)
	}
	// Kidmi collapses finals before the cumulative lookup.
	if MisparKidmi("ך") != MisparKidmi("כ") {
		t.Error("kidmi should treat ך as כ")
	}
}

func TestBonehOrderDependence(t *testing.T) {
	// Boneh weights early letters more: the running total re-adds them.
	if MisparBoneh("אב") == MisparBoneh("בא") {
		t.Error("boneh should be order-dependent")
	}
	// א=1, ב=2: running 1,3 → 4; reversed: running 2,3 → 5.
	if got := MisparBoneh("אב"); got != 4 {
		t.Errorf("boneh(אב) = %d, want 4", got)
	}
	if got := MisparBoneh("בא"); got != 5 {
		t.Errorf("boneh(בא) = %d, want 5", got)
	}
}

func TestBonehNonDecreasingInLength(t *testing.T) {
	prefix := ""
	prev := 0
	for _, r := range "בראשית" {
		prefix += string(r)
		got := MisparBoneh(prefix)
		if got < prev {
			t.Errorf("boneh(%q) = %d, decreased from %d", prefix, got, prev)
		}
		prev = got
	}
}

func TestMiluiOverrides(t *testing.T) {
	names := LetterNames{'א': "אב"}
	if got := MisparShemi("א", names); got != 3 {
		t.Errorf("shemi with override = %d, want 3", got)
	}
	// Letters missing from an override table contribute zero.
	if got := MisparShemi("ב", names); got != 0 {
		t.Errorf("shemi of unnamed letter = %d, want 0", got)
	}
	// A single-letter name has no hidden part.
	if got := MisparNeelam("א", LetterNames{'א': "א"}); got != 0 {
		t.Errorf("neelam of single-letter name = %d, want 0", got)
	}
	if got := Ofanim("א", names); got != 2 {
		t.Errorf("ofanim with override = %d, want 2", got)
	}
}

func TestMiluiFinalsUseBaseName(t *testing.T) {
	// Override keyed by base letters only must still cover finals.
	names := LetterNames{'כ': "כף"}
	if got := MisparShemi("ך", names); got != MisparShemi("כ", names) {
		t.Errorf("shemi(ך) = %d, want same as shemi(כ)", got)
	}
}

func TestCipherValuesIgnoreNonHebrew(t *testing.T) {
	if got := AtbashValue("ב-ר abc"); got != AtbashValue("בר") {
		t.Errorf("atbash should ignore non-Hebrew characters, got %d", got)
	}
}
