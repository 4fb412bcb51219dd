package latex

import (
	"fmt"
	"strings"

	"github.com/doc2tex/doc2tex/internal/model"
)

// springerGenerator targets the Springer Nature journal template: numbered
// affiliations, \fnm/\sur author name sub-fields, theorem environments in
// the preamble and centered booktabs tables.
type springerGenerator struct {
	base
}

// NewSpringer constructs the Springer generator.
func NewSpringer() Generator {
	g := &springerGenerator{base: base{template: model.TemplateSpringer}}
	g.self = g
	return g
}

func (g *springerGenerator) Config() Config { return springerConfig }

func (g *springerGenerator) preamble() string {
	parts := []string{springerConfig.DocumentClass, ""}
	parts = append(parts, springerConfig.Packages...)
	parts = append(parts,
		"",
		`\theoremstyle{thmstyleone}`,
		`\newtheorem{theorem}{Theorem}`,
		`\newtheorem{proposition}[theorem]{Proposition}`,
		"",
		`\theoremstyle{thmstyletwo}`,
		`\newtheorem{example}{Example}`,
		`\newtheorem{remark}{Remark}`,
		"",
		`\theoremstyle{thmstylethree}`,
		`\newtheorem{definition}{Definition}`,
		"",
		`\raggedbottom`,
		"",
	)
	return strings.Join(parts, "\n")
}

func (g *springerGenerator) content(rec *model.AnalysisRecord) ([]string, error) {
	parts := []string{g.titleSection(rec)}

	if rec.Abstract != nil {
		parts = append(parts, g.abstract(rec.Abstract.Content))
	}
	if rec.Keywords != nil {
		parts = append(parts, g.keywords(rec.Keywords.Content))
	}

	parts = append(parts, g.sections(rec))
	parts = append(parts, g.bibliography(rec))
	return parts, nil
}

func (g *springerGenerator) titleSection(rec *model.AnalysisRecord) string {
	title := "Document Title"
	if rec.Title != nil && strings.TrimSpace(rec.Title.Content) != "" {
		title = rec.Title.Content
	}

	parts := []string{fmt.Sprintf(`\title[%s]{%s}`, Escape(title), Escape(title))}
	if rec.Authors != nil {
		parts = append(parts, g.authors(rec.Authors))
	} else {
		parts = append(parts,
			`\author[1]{\fnm{Author} \sur{Name}}\email{author@domain.com}`,
			`\affil*[1]{\orgdiv{Department}, \orgname{Institution}, \orgaddress{\city{City}, \country{Country}}}`)
	}
	parts = append(parts, `\maketitle`, "")
	return strings.Join(parts, "\n")
}

func (g *springerGenerator) keywords(keywords string) string {
	return fmt.Sprintf("\\keywords{%s}\n", Escape(keywords))
}

// authors emits numbered \author declarations with \fnm/\sur name fields,
// starring corresponding authors, followed by one numbered \affil per listed
// affiliation. The first affiliation is marked as the corresponding one.
func (g *springerGenerator) authors(a *model.AuthorInfo) string {
	if len(a.Names) == 0 {
		return `\author{Author Name}`
	}

	corresponding := map[int]bool{}
	for _, idx := range a.CorrespondingIndices {
		corresponding[idx] = true
	}

	var parts []string
	for i, name := range a.Names {
		given, surname := SplitName(name)
		cmd := `\author`
		if corresponding[i] {
			cmd = `\author*`
		}
		parts = append(parts, fmt.Sprintf(`%s[%d]{\fnm{%s} \sur{%s}}`, cmd, i+1, Escape(given), Escape(surname)))

		if i < len(a.Emails) && strings.TrimSpace(a.Emails[i]) != "" {
			parts = append(parts, fmt.Sprintf(`\email{%s}`, Escape(a.Emails[i])))
		}
	}

	if len(a.Affiliations) == 0 {
		parts = append(parts, `\affil*[1]{\orgdiv{Department}, \orgname{Institution}, \orgaddress{\city{City}, \country{Country}}}`)
		return strings.Join(parts, "\n")
	}

	for i, affiliation := range a.Affiliations {
		deptText := "Department"
		if i < len(a.Departments) {
			deptText = "Department of " + expandDepartment(a.Departments[i], springerDepartments)
		}
		institution, city, country := SplitAffiliation(affiliation)

		cmd := `\affil`
		if i == 0 {
			cmd = `\affil*`
		}
		parts = append(parts, fmt.Sprintf(`%s[%d]{\orgdiv{%s}, \orgname{%s}, \orgaddress{\city{%s}, \country{%s}}}`,
			cmd, i+1, Escape(deptText), Escape(institution), Escape(city), Escape(country)))
	}
	return strings.Join(parts, "\n")
}

// table renders the Springer convention: centered columns with booktabs
// rules.
func (g *springerGenerator) table(t *model.DocumentTable) string {
	return booktabsTable(t, "c")
}

func (g *springerGenerator) bibliography(rec *model.AnalysisRecord) string {
	return `
\begin{thebibliography}{1}
\bibitem{ref1} Author, A.: Title of the paper. Journal Name \textbf{1}, 1--10 (2024)
\end{thebibliography}`
}
