package latex

import (
	"strings"
	"testing"

	"github.com/doc2tex/doc2tex/internal/model"
)

func TestIEEE_DocumentMarkers(t *testing.T) {
	out, err := NewIEEE().Generate(sampleRecord())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Count(out, `\begin{document}`) != 1 {
		t.Errorf("expected exactly one opening marker")
	}
	if strings.Count(out, `\end{document}`) != 1 {
		t.Errorf("expected exactly one closing marker")
	}
	if !strings.Contains(out, `\documentclass[conference]{IEEEtran}`) {
		t.Errorf("expected IEEE document class")
	}
}

func TestIEEE_AuthorBlock(t *testing.T) {
	out, err := NewIEEE().Generate(sampleRecord())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `\IEEEauthorblockN{1\textsuperscript{st} Ada Lovelace}`) {
		t.Errorf("expected ordinal author block, got:\n%s", out)
	}
	if !strings.Contains(out, "Department of Computer Science") {
		t.Errorf("expected cse expanded to Computer Science")
	}
	if !strings.Contains(out, "Analytical Society") {
		t.Errorf("expected institution from affiliation")
	}
}

func TestIEEE_AuthorEmailFallback(t *testing.T) {
	rec := sampleRecord()
	rec.Authors = &model.AuthorInfo{Names: []string{"solo author"}}
	out, err := NewIEEE().Generate(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "email@domain.com") {
		t.Errorf("expected filler email for author without one")
	}
}

func TestIEEE_NoAuthors(t *testing.T) {
	rec := sampleRecord()
	rec.Authors = nil
	out, err := NewIEEE().Generate(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `\IEEEauthorblockN{Author Name}`) {
		t.Errorf("expected default author block")
	}
}

func TestIEEE_KeywordsEnvironment(t *testing.T) {
	out, err := NewIEEE().Generate(sampleRecord())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `\begin{IEEEkeywords}`) {
		t.Errorf("expected IEEEkeywords environment")
	}
}

func TestIEEE_NestedList(t *testing.T) {
	g := NewIEEE().(*ieeeGenerator)
	list := &model.DocumentList{
		ID:   1,
		Type: model.ListUnordered,
		Items: []model.ListItem{
			{Content: "A", Level: 1, Type: model.ListUnordered},
			{Content: "B", Level: 2, Type: model.ListUnordered},
			{Content: "C", Level: 1, Type: model.ListUnordered},
		},
	}
	out := g.list(list)

	if strings.Count(out, `\begin{itemize}`) != 2 {
		t.Errorf("expected a nested child environment, got:\n%s", out)
	}
	if strings.Count(out, `\end{itemize}`) != 2 {
		t.Errorf("expected the child environment closed, got:\n%s", out)
	}

	idxB := strings.Index(out, "B")
	idxC := strings.Index(out, "C")
	closeIdx := strings.Index(out[idxB:], `\end{itemize}`)
	if closeIdx < 0 || idxB+closeIdx > idxC {
		t.Errorf("expected child environment closed before item C, got:\n%s", out)
	}
}

func TestBaseList_FlatSingleEnvironment(t *testing.T) {
	g := NewACM().(*acmGenerator)
	list := &model.DocumentList{
		ID:   1,
		Type: model.ListUnordered,
		Items: []model.ListItem{
			{Content: "A", Level: 1},
			{Content: "B", Level: 2},
			{Content: "C", Level: 1},
		},
	}
	out := g.list(list)
	if strings.Count(out, `\begin{itemize}`) != 1 {
		t.Errorf("expected exactly one environment in flat rendering, got:\n%s", out)
	}
	if !strings.Contains(out, `  \item B`) {
		t.Errorf("expected level-2 item indented, got:\n%s", out)
	}
}

func TestIEEE_NumericColumnRightAligned(t *testing.T) {
	table := &model.DocumentTable{
		ID:      1,
		Rows:    3,
		Columns: 2,
		Cells: [][]model.TableCell{
			{{Content: "alpha"}, {Content: "12.5"}},
			{{Content: "beta"}, {Content: "7"}},
			{{Content: "gamma"}, {Content: "3.0"}},
		},
	}
	spec := ieeeColumnSpec(table, 2)
	if spec != "|l|r|" {
		t.Errorf("expected |l|r|, got %q", spec)
	}
}

func TestIEEE_TableCaptionRomanNumeral(t *testing.T) {
	g := NewIEEE().(*ieeeGenerator)
	table := &model.DocumentTable{ID: 4, Caption: "Results"}
	got := g.tableCaption(table)
	if got != "TABLE IV: Results" {
		t.Errorf("expected %q, got %q", "TABLE IV: Results", got)
	}
}

func TestIEEE_TableCaptionAlreadyPrefixed(t *testing.T) {
	g := NewIEEE().(*ieeeGenerator)
	table := &model.DocumentTable{ID: 2, Caption: "Table of results"}
	got := g.tableCaption(table)
	if got != "Table of results" {
		t.Errorf("expected prefixed caption untouched, got %q", got)
	}
}

func TestIEEE_TableCaptionEmpty(t *testing.T) {
	g := NewIEEE().(*ieeeGenerator)
	table := &model.DocumentTable{ID: 1, Caption: "  "}
	got := g.tableCaption(table)
	if got != "TABLE I: Sample Table" {
		t.Errorf("expected default caption for blank input, got %q", got)
	}
}

func TestIEEE_TableDoubleRules(t *testing.T) {
	g := NewIEEE().(*ieeeGenerator)
	out := g.table(&sampleRecord().Tables[0])
	if strings.Count(out, `\hline\hline`) != 2 {
		t.Errorf("expected double rules at top and bottom, got:\n%s", out)
	}
	if !strings.Contains(out, `\textbf{Metric}`) {
		t.Errorf("expected bold header cells, got:\n%s", out)
	}
}

func TestIEEE_CitationRewriting(t *testing.T) {
	rec := sampleRecord()
	rec.Sections[0].Content = "Earlier work [1,3-5] showed this."
	rec.Sections[0].ContainsTables = nil
	out, err := NewIEEE().Generate(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `\cite{1,3,4,5}`) {
		t.Errorf("expected citation rewritten, got:\n%s", out)
	}
}

func TestIEEE_DynamicBibliography(t *testing.T) {
	rec := sampleRecord()
	rec.Sections[0].Content = "See [2] and [5]."
	rec.Sections[0].ContainsTables = nil
	out, err := NewIEEE().Generate(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `\begin{thebibliography}{5}`) {
		t.Errorf("expected capacity 5, got:\n%s", out)
	}
	if !strings.Contains(out, `\bibitem{ref2}`) || !strings.Contains(out, `\bibitem{ref5}`) {
		t.Errorf("expected entries for cited numbers")
	}
	if strings.Contains(out, `\bibitem{ref3}`) {
		t.Errorf("expected uncited number 3 omitted")
	}
}

func TestIEEE_StaticBibliographyWithoutCitations(t *testing.T) {
	out, err := NewIEEE().Generate(sampleRecord())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `\begin{thebibliography}{99}`) {
		t.Errorf("expected static bibliography template")
	}
}

func TestIEEE_SkipsReferenceSections(t *testing.T) {
	rec := sampleRecord()
	rec.Sections = append(rec.Sections, model.Section{
		ID: 2, Title: "References", Content: "old refs", Level: model.LevelSection,
	})
	out, err := NewIEEE().Generate(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, `\section{References}`) {
		t.Errorf("expected references section skipped")
	}
}

func TestIEEE_DefaultSectionsWhenNoneDetected(t *testing.T) {
	rec := sampleRecord()
	rec.Sections = nil
	out, err := NewIEEE().Generate(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `\section{Introduction}`) {
		t.Errorf("expected default sections")
	}
}

func TestIEEE_TextStyling(t *testing.T) {
	g := NewIEEE().(*ieeeGenerator)
	got := g.paragraph("this is **bold** and *italic* and `code`")
	if !strings.Contains(got, `\textbf{bold}`) {
		t.Errorf("expected bold conversion, got %q", got)
	}
	if !strings.Contains(got, `\textit{italic}`) {
		t.Errorf("expected italic conversion, got %q", got)
	}
	if !strings.Contains(got, `\texttt{code}`) {
		t.Errorf("expected code conversion, got %q", got)
	}
}

func TestCleanSectionTitle(t *testing.T) {
	if got := cleanSectionTitle("2.1 Related Work"); got != "Related Work" {
		t.Errorf("expected numbering stripped, got %q", got)
	}
	if got := cleanSectionTitle("METHODOLOGY"); got != "Methodology" {
		t.Errorf("expected all-caps title cased, got %q", got)
	}
}

func TestRomanNumeral(t *testing.T) {
	cases := map[int]string{1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL"}
	for n, want := range cases {
		if got := romanNumeral(n); got != want {
			t.Errorf("romanNumeral(%d): expected %q, got %q", n, want, got)
		}
	}
}

func TestOrdinal(t *testing.T) {
	cases := map[int]string{
		1: `1\textsuperscript{st}`,
		2: `2\textsuperscript{nd}`,
		3: `3\textsuperscript{rd}`,
		4: `4\textsuperscript{th}`,
	}
	for n, want := range cases {
		if got := ordinal(n); got != want {
			t.Errorf("ordinal(%d): expected %q, got %q", n, want, got)
		}
	}
}
