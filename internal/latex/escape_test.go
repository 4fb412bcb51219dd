package latex

import (
	"strings"
	"testing"
)

func TestEscape_SpecialCharacters(t *testing.T) {
	got := Escape("50% of A&B costs $10 #1")
	want := `50\% of A\&B costs \$10 \#1`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEscape_BackslashNotDoubleEscaped(t *testing.T) {
	got := Escape(`a\b`)
	want := `a\textbackslash{}b`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEscape_SafeStringUnchanged(t *testing.T) {
	in := "plain text with no specials"
	if got := Escape(in); got != in {
		t.Errorf("expected safe string unchanged, got %q", got)
	}
}

func TestEscape_Empty(t *testing.T) {
	if got := Escape(""); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestEscapePreservingPlaceholders_TokensSurvive(t *testing.T) {
	got := EscapePreservingPlaceholders("see [TABLE_1] for 50% of cases")
	if !strings.Contains(got, "[TABLE_1]") {
		t.Errorf("expected placeholder preserved, got %q", got)
	}
	if !strings.Contains(got, `50\%`) {
		t.Errorf("expected surrounding text escaped, got %q", got)
	}
}

func TestEscapePreservingPlaceholders_UnderscoreInToken(t *testing.T) {
	got := EscapePreservingPlaceholders("[EQUATION_12]")
	if got != "[EQUATION_12]" {
		t.Errorf("expected token untouched, got %q", got)
	}
}

func TestLabel_Slug(t *testing.T) {
	got := Label("Results & Discussion!", "sec")
	if got != "sec:results-discussion" {
		t.Errorf("expected %q, got %q", "sec:results-discussion", got)
	}
}

func TestLabel_EmptyText(t *testing.T) {
	if got := Label("  ", "tab"); got != "tab:unnamed" {
		t.Errorf("expected %q, got %q", "tab:unnamed", got)
	}
}

func TestSplitAffiliation(t *testing.T) {
	inst, city, country := SplitAffiliation("MIT, Cambridge, USA")
	if inst != "MIT" || city != "Cambridge" || country != "USA" {
		t.Errorf("got (%q, %q, %q)", inst, city, country)
	}
}

func TestSplitAffiliation_Fillers(t *testing.T) {
	inst, city, country := SplitAffiliation("MIT")
	if inst != "MIT" || city != "City" || country != "Country" {
		t.Errorf("expected fillers for missing parts, got (%q, %q, %q)", inst, city, country)
	}
}

func TestSplitName(t *testing.T) {
	given, surname := SplitName("Ada King Lovelace")
	if given != "Ada" || surname != "King Lovelace" {
		t.Errorf("got (%q, %q)", given, surname)
	}
}

func TestSplitName_SingleToken(t *testing.T) {
	given, surname := SplitName("Plato")
	if given != "Plato" || surname != "" {
		t.Errorf("expected no surname for single token, got (%q, %q)", given, surname)
	}
}

func TestParseCitations_RangesAndDuplicates(t *testing.T) {
	got := ParseCitations("as shown in [1,3-5,4] and later [2]")
	want := []int{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestParseCitations_None(t *testing.T) {
	if got := ParseCitations("no citations here"); len(got) != 0 {
		t.Errorf("expected none, got %v", got)
	}
}

func TestFormatCitation_RangeExpansion(t *testing.T) {
	got := formatCitation("1, 3-5")
	if got != `\cite{1,3,4,5}` {
		t.Errorf("expected %q, got %q", `\cite{1,3,4,5}`, got)
	}
}

func TestTitleCase(t *testing.T) {
	if got := titleCase("ada lovelace"); got != "Ada Lovelace" {
		t.Errorf("expected %q, got %q", "Ada Lovelace", got)
	}
}
