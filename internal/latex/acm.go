package latex

import (
	"fmt"
	"strings"

	"github.com/doc2tex/doc2tex/internal/model"
)

// acmGenerator targets the ACM acmart template. The structural constraint is
// the block ordering: title and author metadata are declared first, then the
// abstract and keywords, and only then \maketitle.
type acmGenerator struct {
	base
}

// NewACM constructs the ACM generator.
func NewACM() Generator {
	g := &acmGenerator{base: base{template: model.TemplateACM}}
	g.self = g
	return g
}

func (g *acmGenerator) Config() Config { return acmConfig }

func (g *acmGenerator) preamble() string {
	parts := []string{acmConfig.DocumentClass, ""}
	parts = append(parts, acmConfig.Packages...)
	parts = append(parts,
		"",
		`\setcopyright{acmlicensed}`,
		`\copyrightyear{2024}`,
		`\acmYear{2024}`,
		`\acmDOI{XXXXXXX.XXXXXXX}`,
		`\citestyle{acmauthoryear}`,
		"",
	)
	return strings.Join(parts, "\n")
}

func (g *acmGenerator) content(rec *model.AnalysisRecord) ([]string, error) {
	parts := []string{g.titleSection(rec)}

	if rec.Abstract != nil {
		parts = append(parts, g.abstract(rec.Abstract.Content))
	}
	if rec.Keywords != nil {
		parts = append(parts, g.keywords(rec.Keywords.Content))
	}
	parts = append(parts, `\maketitle`, "")

	parts = append(parts, g.sections(rec))
	parts = append(parts, g.bibliography(rec))
	return parts, nil
}

// titleSection declares title and author metadata only; \maketitle is emitted
// by content after the abstract block.
func (g *acmGenerator) titleSection(rec *model.AnalysisRecord) string {
	title := "Document Title"
	if rec.Title != nil && strings.TrimSpace(rec.Title.Content) != "" {
		title = rec.Title.Content
	}

	parts := []string{fmt.Sprintf(`\title{%s}`, Escape(title))}
	if rec.Authors != nil {
		parts = append(parts, g.authors(rec.Authors))
	} else {
		parts = append(parts,
			`\author{Author Name}`,
			`\affiliation{\institution{Institution Name}\city{City}\country{Country}}`)
	}
	parts = append(parts, "")
	return strings.Join(parts, "\n")
}

func (g *acmGenerator) keywords(keywords string) string {
	return fmt.Sprintf("\\keywords{%s}\n", Escape(keywords))
}

// authors emits per-author \author, \email and a structured \affiliation
// block. A known department is prepended to the affiliation before splitting
// it into institution, city and country.
func (g *acmGenerator) authors(a *model.AuthorInfo) string {
	if len(a.Names) == 0 {
		return `\author{Author Name}`
	}

	var parts []string
	for i, name := range a.Names {
		parts = append(parts, fmt.Sprintf(`\author{%s}`, Escape(titleCase(name))))

		if i < len(a.Emails) && strings.TrimSpace(a.Emails[i]) != "" {
			parts = append(parts, fmt.Sprintf(`\email{%s}`, Escape(a.Emails[i])))
		}

		affiliation := authorAt(a.Affiliations, i, "Institution")
		if i < len(a.Departments) {
			dept := expandDepartment(a.Departments[i], acmDepartments)
			affiliation = "Department of " + dept + ", " + affiliation
		}
		institution, city, country := SplitAffiliation(affiliation)

		parts = append(parts, fmt.Sprintf(`\affiliation{%%
  \institution{%s}
  \city{%s}
  \country{%s}
}`, Escape(institution), Escape(city), Escape(country)))
	}
	return strings.Join(parts, "\n")
}

// table renders the ACM convention: left-aligned columns with booktabs rules.
func (g *acmGenerator) table(t *model.DocumentTable) string {
	return booktabsTable(t, "l")
}

func (g *acmGenerator) bibliography(rec *model.AnalysisRecord) string {
	return "\n\\bibliographystyle{ACM-Reference-Format}\n\\bibliography{references}"
}

// booktabsTable is the shared ACM/Springer table shape: toprule, optional
// header midrule, bottomrule. align is the single-column alignment letter,
// repeated per column.
func booktabsTable(t *model.DocumentTable, align string) string {
	if len(t.Cells) == 0 || len(t.Cells[0]) == 0 {
		return ""
	}
	colSpec := strings.Repeat(align, len(t.Cells[0]))

	parts := []string{`\begin{table}[!htbp]`, `\centering`}
	if strings.TrimSpace(t.Caption) != "" {
		parts = append(parts, fmt.Sprintf(`\caption{%s}`, Escape(t.Caption)))
	}
	parts = append(parts,
		fmt.Sprintf(`\label{tab:table%d}`, t.ID),
		fmt.Sprintf(`\begin{tabular}{%s}`, colSpec),
		`\toprule`,
	)

	for i, row := range t.Cells {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, Escape(cell.Content))
		}
		parts = append(parts, strings.Join(cells, " & ")+` \\`)
		if i == 0 && t.HasHeaders {
			parts = append(parts, `\midrule`)
		}
	}

	parts = append(parts, `\bottomrule`, `\end{tabular}`, `\end{table}`)
	return strings.Join(parts, "\n")
}
