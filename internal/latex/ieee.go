package latex

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/doc2tex/doc2tex/internal/model"
)

// ieeeGenerator targets the IEEE conference template: IEEEauthorblock author
// layout, double-rule tables with Roman-numeral captions, nested list
// environments, \cite rewriting and a citation-derived bibliography.
type ieeeGenerator struct {
	base
}

// NewIEEE constructs the IEEE conference generator.
func NewIEEE() Generator {
	g := &ieeeGenerator{base: base{template: model.TemplateIEEE}}
	g.self = g
	return g
}

func (g *ieeeGenerator) Config() Config { return ieeeConfig }

func (g *ieeeGenerator) preamble() string {
	parts := []string{ieeeConfig.DocumentClass, ""}
	parts = append(parts, ieeeConfig.Packages...)
	parts = append(parts,
		"",
		`\IEEEoverridecommandlockouts`,
		`\def\BibTeX{{\rm B\kern-.05em{\sc i\kern-.025em b}\kern-.08em`,
		`    T\kern-.1667em\lower.7ex\hbox{E}\kern-.125emX}}`,
		"",
	)
	return strings.Join(parts, "\n")
}

// content emits the IEEE ordering: title block first, then abstract and
// keywords, then body sections, then the bibliography.
func (g *ieeeGenerator) content(rec *model.AnalysisRecord) ([]string, error) {
	parts := []string{g.titleSection(rec)}

	if rec.Abstract != nil {
		parts = append(parts, g.abstract(rec.Abstract.Content))
	}
	if rec.Keywords != nil {
		parts = append(parts, g.keywords(rec.Keywords.Content))
	}

	parts = append(parts, g.bodySections(rec))
	parts = append(parts, g.bibliography(rec))
	return parts, nil
}

func (g *ieeeGenerator) titleSection(rec *model.AnalysisRecord) string {
	title := "Document Title"
	if rec.Title != nil && strings.TrimSpace(rec.Title.Content) != "" {
		title = rec.Title.Content
	}

	parts := []string{fmt.Sprintf(`\title{%s}`, Escape(title))}
	if rec.Authors != nil {
		parts = append(parts, g.authors(rec.Authors))
	} else {
		parts = append(parts, `\author{\IEEEauthorblockN{Author Name}\IEEEauthorblockA{\textit{Department}\\\textit{Institution}\\City, Country\\email@domain.com}}`)
	}
	parts = append(parts, `\maketitle`, "")
	return strings.Join(parts, "\n")
}

func (g *ieeeGenerator) keywords(keywords string) string {
	return fmt.Sprintf("\\begin{IEEEkeywords}\n%s\n\\end{IEEEkeywords}\n", Escape(keywords))
}

// authors renders one IEEEauthorblock pair per author, joined by \and.
func (g *ieeeGenerator) authors(a *model.AuthorInfo) string {
	if len(a.Names) == 0 {
		return `\author{Author Name}`
	}

	blocks := make([]string, 0, len(a.Names))
	for i, name := range a.Names {
		email := authorAt(a.Emails, i, "email@domain.com")
		affiliation := authorAt(a.Affiliations, i, "Institution")

		deptText := "Department"
		if i < len(a.Departments) {
			deptText = "Department of " + expandDepartment(a.Departments[i], ieeeDepartments)
		}

		institution, city, country := SplitAffiliation(affiliation)

		block := fmt.Sprintf(`\IEEEauthorblockN{%s %s}
\IEEEauthorblockA{\textit{%s} \\
\textit{%s} \\
%s, %s \\
%s}`,
			ordinal(i+1), Escape(titleCase(name)),
			Escape(deptText), Escape(institution), Escape(city), Escape(country), Escape(email))
		blocks = append(blocks, block)
	}

	return fmt.Sprintf("\\author{\n%s\n}", strings.Join(blocks, "\n\\and\n"))
}

// table renders the IEEE convention: content-sensitive column alignment,
// double rules at top and bottom, bold header row, Roman-numeral caption.
func (g *ieeeGenerator) table(t *model.DocumentTable) string {
	if len(t.Cells) == 0 || len(t.Cells[0]) == 0 {
		return ""
	}
	cols := len(t.Cells[0])

	parts := []string{
		`\begin{table}[!t]`,
		`\renewcommand{\arraystretch}{1.3}`,
		fmt.Sprintf(`\caption{%s}`, g.tableCaption(t)),
		fmt.Sprintf(`\label{tab:%s}`, g.tableLabel(t)),
		`\centering`,
		fmt.Sprintf(`\begin{tabular}{%s}`, ieeeColumnSpec(t, cols)),
		`\hline\hline`,
	}

	for i, row := range t.Cells {
		parts = append(parts, ieeeTableRow(row, i == 0 && t.HasHeaders))
		if i == 0 && t.HasHeaders {
			parts = append(parts, `\hline`)
		}
	}

	parts = append(parts, `\hline\hline`, `\end{tabular}`, `\end{table}`)
	return strings.Join(parts, "\n")
}

var numericCell = regexp.MustCompile(`^[\d.,\-+%]+$`)

// ieeeColumnSpec samples up to the first three rows per column: columns whose
// sampled non-blank cells are all numeric get right alignment, the first
// column is left-aligned, the rest are centered.
func ieeeColumnSpec(t *model.DocumentTable, cols int) string {
	sample := t.Cells
	if len(sample) > 3 {
		sample = sample[:3]
	}

	aligns := make([]string, 0, cols)
	for col := 0; col < cols; col++ {
		hasNumbers, hasText := false, false
		for _, row := range sample {
			if col >= len(row) {
				continue
			}
			content := strings.TrimSpace(row[col].Content)
			if content == "" {
				continue
			}
			if numericCell.MatchString(content) {
				hasNumbers = true
			} else {
				hasText = true
			}
		}
		switch {
		case hasNumbers && !hasText:
			aligns = append(aligns, "r")
		case col == 0:
			aligns = append(aligns, "l")
		default:
			aligns = append(aligns, "c")
		}
	}
	return "|" + strings.Join(aligns, "|") + "|"
}

func ieeeTableRow(row []model.TableCell, isHeader bool) string {
	cells := make([]string, 0, len(row))
	for _, cell := range row {
		content := strings.TrimSpace(cell.Content)
		if content == "" {
			cells = append(cells, "")
			continue
		}
		if isHeader {
			cells = append(cells, fmt.Sprintf(`\textbf{%s}`, Escape(content)))
		} else {
			cells = append(cells, Escape(content))
		}
	}
	return strings.Join(cells, " & ") + ` \\`
}

// tableCaption prepends "TABLE <roman>:" unless the supplied caption already
// leads with the TABLE keyword. An absent or blank caption gets a default.
func (g *ieeeGenerator) tableCaption(t *model.DocumentTable) string {
	caption := strings.TrimSpace(t.Caption)
	if caption == "" {
		return fmt.Sprintf("TABLE %s: Sample Table", romanNumeral(t.ID))
	}
	escaped := Escape(caption)
	if strings.HasPrefix(strings.ToUpper(escaped), "TABLE") {
		return escaped
	}
	return fmt.Sprintf("TABLE %s: %s", romanNumeral(t.ID), escaped)
}

var (
	labelKeep  = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	labelJoins = regexp.MustCompile(`\s+`)
)

func (g *ieeeGenerator) tableLabel(t *model.DocumentTable) string {
	caption := strings.TrimSpace(t.Caption)
	if caption == "" {
		return fmt.Sprintf("table_%d", t.ID)
	}
	slug := labelKeep.ReplaceAllString(strings.ToLower(caption), "")
	slug = labelJoins.ReplaceAllString(strings.TrimSpace(slug), "_")
	return fmt.Sprintf("table_%d_%s", t.ID, slug)
}

func romanNumeral(num int) string {
	values := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	numerals := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}
	var b strings.Builder
	for i, v := range values {
		for num >= v {
			b.WriteString(numerals[i])
			num -= v
		}
	}
	return b.String()
}

// list builds genuinely nested environments: an item followed by deeper items
// opens a child environment which is closed before the next item at the
// original depth.
func (g *ieeeGenerator) list(l *model.DocumentList) string {
	if len(l.Items) == 0 {
		return ""
	}
	env := g.listEnv(l.Type)

	var parts []string
	parts = append(parts, fmt.Sprintf(`\begin{%s}`, env))

	depth := 1
	for i, item := range l.Items {
		level := item.Level
		if level < 1 {
			level = 1
		}

		for depth > level {
			depth--
			parts = append(parts, strings.Repeat("  ", depth)+fmt.Sprintf(`\end{%s}`, env))
		}
		parts = append(parts, strings.Repeat("  ", depth)+`\item `+Escape(item.Content))

		if i+1 < len(l.Items) {
			next := l.Items[i+1].Level
			if next < 1 {
				next = 1
			}
			for depth < next {
				parts = append(parts, strings.Repeat("  ", depth+1)+fmt.Sprintf(`\begin{%s}`, env))
				depth++
			}
		}
	}
	for depth > 1 {
		depth--
		parts = append(parts, strings.Repeat("  ", depth)+fmt.Sprintf(`\end{%s}`, env))
	}

	parts = append(parts, fmt.Sprintf(`\end{%s}`, env))
	return strings.Join(parts, "\n")
}

// equation prefers the precomputed LaTeX, numbered for display math; OMML
// source is converted when present; otherwise the raw content is escaped.
func (g *ieeeGenerator) equation(eq *model.Equation) string {
	if eq.LatexEquivalent != "" {
		if eq.IsDisplay {
			return fmt.Sprintf("\\begin{equation}\n%s\n\\label{eq:eq%d}\n\\end{equation}", eq.LatexEquivalent, eq.ID)
		}
		return fmt.Sprintf("$%s$", eq.LatexEquivalent)
	}

	if eq.OMMLXML != "" {
		if converted := ConvertOMML(eq.OMMLXML); converted != "" {
			if eq.IsDisplay {
				return fmt.Sprintf("\\begin{equation}\n%s\n\\label{eq:eq%d}\n\\end{equation}", converted, eq.ID)
			}
			return fmt.Sprintf("$%s$", converted)
		}
	}

	if eq.IsDisplay {
		return fmt.Sprintf(`\[%s\]`, Escape(eq.Content))
	}
	return fmt.Sprintf("$%s$", Escape(eq.Content))
}

var ieeeSkipSections = []string{
	"abstract", "keywords", "references", "bibliography",
	"acknowledgments", "acknowledgements",
}

func skipIEEESection(title string) bool {
	lower := strings.ToLower(strings.TrimSpace(title))
	for _, skip := range ieeeSkipSections {
		if strings.Contains(lower, skip) {
			return true
		}
	}
	return false
}

func (g *ieeeGenerator) bodySections(rec *model.AnalysisRecord) string {
	if len(rec.Sections) == 0 {
		return ieeeDefaultSections
	}

	var parts []string
	for i := range rec.Sections {
		sec := &rec.Sections[i]
		if skipIEEESection(sec.Title) {
			continue
		}

		title := cleanSectionTitle(sec.Title)
		parts = append(parts, fmt.Sprintf("%s{%s}", sectionCommand(sec.Level), Escape(title)))
		parts = append(parts, fmt.Sprintf(`\label{sec:%s}`, sectionLabel(title)))

		content := g.ieeeSectionContent(sec, rec)
		if strings.TrimSpace(content) != "" {
			parts = append(parts, content)
		} else {
			parts = append(parts, "% Section content not detected from document")
		}
		parts = append(parts, "")
	}
	return strings.Join(parts, "\n")
}

var sectionNumbering = regexp.MustCompile(`^\d+(?:\.\d+)*\s*\.?\s*`)

// cleanSectionTitle strips leading numbering and normalizes all-caps titles
// to title case.
func cleanSectionTitle(title string) string {
	title = sectionNumbering.ReplaceAllString(title, "")
	title = strings.Join(strings.Fields(title), " ")

	allCaps := title != ""
	for _, word := range strings.Fields(title) {
		if strings.ToUpper(word) != word {
			allCaps = false
			break
		}
	}
	if allCaps {
		title = titleCase(strings.ToLower(title))
	}
	return title
}

func sectionLabel(title string) string {
	label := labelKeep.ReplaceAllString(strings.ToLower(title), "")
	return labelJoins.ReplaceAllString(strings.TrimSpace(label), "_")
}

// ieeeSectionContent applies the paragraph pipeline (citation rewriting,
// inline styling, placeholder-preserving escaping) before element
// substitution.
func (g *ieeeGenerator) ieeeSectionContent(sec *model.Section, rec *model.AnalysisRecord) string {
	content := strings.TrimSpace(sec.Content)
	if content == "" {
		return ""
	}

	var paragraphs []string
	for _, line := range strings.Split(content, "\n") {
		para := strings.TrimSpace(line)
		if len(para) < 3 {
			continue
		}
		paragraphs = append(paragraphs, g.paragraph(para))
	}
	if len(paragraphs) == 0 {
		return ""
	}

	result := strings.Join(paragraphs, "\n\n")
	return substitutePlaceholders(result, sec, rec, g)
}

var (
	boldStars       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	boldUnderscores = regexp.MustCompile(`\\_\\_(.*?)\\_\\_`)
	italicStars     = regexp.MustCompile(`\*(.*?)\*`)
	italicUnder     = regexp.MustCompile(`\\_(.*?)\\_`)
	codeTicks       = regexp.MustCompile("`(.*?)`")
)

// paragraph escapes a body paragraph (keeping placeholder tokens), rewrites
// bracketed citations into \cite and translates markdown-style emphasis.
// Escaping runs first so the styling patterns match the escaped forms of
// underscore markers.
func (g *ieeeGenerator) paragraph(text string) string {
	text = EscapePreservingPlaceholders(text)

	text = citationGroup.ReplaceAllStringFunc(text, func(m string) string {
		return formatCitation(m[1 : len(m)-1])
	})

	text = boldStars.ReplaceAllString(text, `\textbf{$1}`)
	text = boldUnderscores.ReplaceAllString(text, `\textbf{$1}`)
	text = italicStars.ReplaceAllString(text, `\textit{$1}`)
	text = italicUnder.ReplaceAllString(text, `\textit{$1}`)
	text = codeTicks.ReplaceAllString(text, `\texttt{$1}`)

	return text
}

// bibliography derives entries from the citation numbers found in section
// bodies. The declared capacity is the highest cited number; uncited numbers
// below it get no entry. Without any citations a static template is emitted.
func (g *ieeeGenerator) bibliography(rec *model.AnalysisRecord) string {
	cited := map[int]bool{}
	maxCited := 0
	for i := range rec.Sections {
		for _, n := range ParseCitations(rec.Sections[i].Content) {
			cited[n] = true
			if n > maxCited {
				maxCited = n
			}
		}
	}

	if len(cited) == 0 {
		return ieeeStaticBibliography
	}

	parts := []string{fmt.Sprintf(`\begin{thebibliography}{%d}`, maxCited)}
	for n := 1; n <= maxCited; n++ {
		if !cited[n] {
			continue
		}
		parts = append(parts,
			fmt.Sprintf(`\bibitem{ref%d}`, n),
			fmt.Sprintf("Author %d, ``Reference %d title,'' \\emph{Journal Name}, vol. 1, no. 1, pp. 1--10, 2024.", n, n),
			"")
	}
	parts = append(parts, `\end{thebibliography}`)
	return strings.Join(parts, "\n")
}

const ieeeStaticBibliography = `
\begin{thebibliography}{99}
\bibitem{ref1}
A. Author, ` + "``Sample paper title,''" + ` \emph{IEEE Transactions on Sample}, vol. 1, no. 1, pp. 1--10, Jan. 2024.

\bibitem{ref2}
B. Author and C. Coauthor, ` + "``Another sample title,''" + ` in \emph{Proc. IEEE Conference}, 2024, pp. 123--130.

\bibitem{ref3}
D. Researcher, \emph{Book Title}, 2nd ed. Publisher, 2024.

\bibitem{ref4}
E. Writer, ` + "``Online article title,''" + ` Website Name, 2024. [Online]. Available: https://example.com

\end{thebibliography}`

const ieeeDefaultSections = `\section{Introduction}
\label{sec:introduction}
This section should contain the introduction content. The document structure
was not clearly defined enough to detect section content.

\section{Related Work}
\label{sec:related_work}
This section should contain related work content.

\section{Methodology}
\label{sec:methodology}
This section should contain methodology content.

\section{Results}
\label{sec:results}
This section should contain results content.

\section{Conclusion}
\label{sec:conclusion}
This section should contain conclusion content.`
