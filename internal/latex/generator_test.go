package latex

import (
	"strings"
	"testing"

	"github.com/doc2tex/doc2tex/internal/model"
)

func TestAbstract_BlankProducesNoBlock(t *testing.T) {
	rec := sampleRecord()
	rec.Abstract = &model.DetectedElement{Content: "   "}
	out, err := NewIEEE().Generate(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, `\begin{abstract}`) {
		t.Errorf("expected no abstract block for blank abstract")
	}
}

func TestExpandDepartment_EmptyDefaults(t *testing.T) {
	if got := expandDepartment("", ieeeDepartments); got != "Computer Science" {
		t.Errorf("expected default for empty input, got %q", got)
	}
}

func TestExpandDepartment_UnknownPassesThrough(t *testing.T) {
	if got := expandDepartment("Astrophysics", acmDepartments); got != "Astrophysics" {
		t.Errorf("expected unknown code unchanged, got %q", got)
	}
}

func TestExpandDepartment_CaseInsensitive(t *testing.T) {
	if got := expandDepartment("ECE", springerDepartments); got != "Electronics and Communication Engineering" {
		t.Errorf("expected case-insensitive lookup, got %q", got)
	}
}

func TestExpandDepartment_TemplateTablesDiverge(t *testing.T) {
	ieee := expandDepartment("cse", ieeeDepartments)
	acm := expandDepartment("cse", acmDepartments)
	if ieee != "Computer Science" {
		t.Errorf("expected cse -> Computer Science for the IEEE table, got %q", ieee)
	}
	if acm != "Computer Science and Engineering" {
		t.Errorf("expected cse -> Computer Science and Engineering for the ACM table, got %q", acm)
	}
}

func TestSectionCommand_Levels(t *testing.T) {
	cases := map[model.SectionLevel]string{
		model.LevelSection:       `\section`,
		model.LevelSubsection:    `\subsection`,
		model.LevelSubsubsection: `\subsubsection`,
		model.LevelParagraph:     `\paragraph`,
	}
	for level, want := range cases {
		if got := sectionCommand(level); got != want {
			t.Errorf("level %d: expected %q, got %q", level, want, got)
		}
	}
}

func TestEquation_InlineWithoutEquivalent(t *testing.T) {
	g := NewSpringer().(*springerGenerator)
	got := g.equation(&model.Equation{ID: 1, Content: "E = mc^2"})
	if got != `$E = mc\textasciicircum{}2$` {
		t.Errorf("expected escaped inline fallback, got %q", got)
	}
}
