package latex

import (
	"strings"
	"testing"
)

func TestValidate_CleanDocument(t *testing.T) {
	doc := "\\documentclass{article}\n\\begin{document}\nHello $x$ world.\n\\end{document}"
	if warnings := Validate(doc); len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}

func TestValidate_UnmatchedBraces(t *testing.T) {
	warnings := Validate("{{{a}}")
	found := false
	for _, w := range warnings {
		if strings.Contains(w, "opening") && strings.Contains(w, "closing") {
			found = true
			if !strings.Contains(w, "3") || !strings.Contains(w, "2") {
				t.Errorf("expected counts in warning, got %q", w)
			}
		}
	}
	if !found {
		t.Errorf("expected brace warning, got %v", warnings)
	}
}

func TestValidate_OddMathDelimiters(t *testing.T) {
	warnings := Validate("\\begin{document}\n$x\n\\end{document}")
	found := false
	for _, w := range warnings {
		if strings.Contains(w, "$") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected math delimiter warning, got %v", warnings)
	}
}

func TestValidate_MissingEndMarker(t *testing.T) {
	warnings := Validate(`\begin{document} body`)
	found := false
	for _, w := range warnings {
		if strings.Contains(w, `\end{document}`) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected missing end marker warning, got %v", warnings)
	}
}

func TestValidate_MissingBeginMarker(t *testing.T) {
	warnings := Validate(`body \end{document}`)
	found := false
	for _, w := range warnings {
		if strings.Contains(w, `\begin{document}`) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected missing begin marker warning, got %v", warnings)
	}
}
