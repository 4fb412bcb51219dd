package latex

import (
	"fmt"
	"strings"

	"github.com/doc2tex/doc2tex/internal/model"
)

const (
	beginDocument = `\begin{document}`
	endDocument   = `\end{document}`
)

// Generator renders an analysis record into a complete LaTeX document for
// one target template.
type Generator interface {
	Template() model.Template
	Config() Config
	Generate(rec *model.AnalysisRecord) (string, error)
}

// hooks are the template-specific extension points of the assembly pipeline.
// The base struct provides shared defaults for list, equation and abstract
// rendering; everything else has no default and must be template-provided.
type hooks interface {
	Config() Config
	preamble() string
	content(rec *model.AnalysisRecord) ([]string, error)
	titleSection(rec *model.AnalysisRecord) string
	keywords(keywords string) string
	table(t *model.DocumentTable) string
	authors(a *model.AuthorInfo) string
	bibliography(rec *model.AnalysisRecord) string
	list(l *model.DocumentList) string
	equation(eq *model.Equation) string
}

// base implements the fixed document assembly skeleton and the
// template-independent rendering helpers. Template generators embed it and
// register themselves as the hooks receiver so overridden methods dispatch
// to the concrete template.
type base struct {
	template model.Template
	self     hooks
}

func (b *base) Template() model.Template { return b.template }

func (b *base) Config() Config { return b.self.Config() }

// Generate assembles the document: preamble, opening marker, template
// ordered content, closing marker.
func (b *base) Generate(rec *model.AnalysisRecord) (string, error) {
	parts := []string{b.self.preamble(), beginDocument, ""}

	content, err := b.self.content(rec)
	if err != nil {
		return "", err
	}
	parts = append(parts, content...)

	parts = append(parts, endDocument)
	return strings.Join(parts, "\n"), nil
}

// abstract wraps escaped abstract text in an abstract environment. Blank
// input produces no block at all.
func (b *base) abstract(text string) string {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return ""
	}
	return fmt.Sprintf("\\begin{abstract}\n%s\n\\end{abstract}\n", Escape(cleaned))
}

// list is the shared flat-indent list rendering. Nesting is signalled by
// indentation proportional to the item level, inside a single environment.
func (b *base) list(l *model.DocumentList) string {
	env := b.listEnv(l.Type)
	parts := []string{fmt.Sprintf(`\begin{%s}`, env)}
	for _, item := range l.Items {
		level := item.Level
		if level < 1 {
			level = 1
		}
		indent := strings.Repeat("  ", level-1)
		parts = append(parts, fmt.Sprintf(`%s\item %s`, indent, Escape(item.Content)))
	}
	parts = append(parts, fmt.Sprintf(`\end{%s}`, env))
	return strings.Join(parts, "\n")
}

func (b *base) listEnv(t model.ListType) string {
	envs := b.self.Config().ListEnvs
	if t == model.ListOrdered {
		return envs.Ordered
	}
	return envs.Unordered
}

// equation is the shared equation rendering: a precomputed LaTeX equivalent
// wrapped in display or inline delimiters, otherwise the escaped raw content
// in inline math.
func (b *base) equation(eq *model.Equation) string {
	if eq.LatexEquivalent != "" {
		if eq.IsDisplay {
			return fmt.Sprintf(`\[%s\]`, eq.LatexEquivalent)
		}
		return fmt.Sprintf(`$%s$`, eq.LatexEquivalent)
	}
	return fmt.Sprintf(`$%s$`, Escape(eq.Content))
}

// sections renders all sections in document order with the generic pipeline.
func (b *base) sections(rec *model.AnalysisRecord) string {
	var parts []string
	for i := range rec.Sections {
		sec := &rec.Sections[i]
		parts = append(parts, fmt.Sprintf("%s{%s}", sectionCommand(sec.Level), Escape(sec.Title)))
		parts = append(parts, b.sectionContent(sec, rec))
		parts = append(parts, "")
	}
	return strings.Join(parts, "\n")
}

// sectionContent escapes the section body (keeping placeholder tokens
// intact) and substitutes the declared structural elements.
func (b *base) sectionContent(sec *model.Section, rec *model.AnalysisRecord) string {
	content := EscapePreservingPlaceholders(sec.Content)
	return substitutePlaceholders(content, sec, rec, b.self)
}

func sectionCommand(level model.SectionLevel) string {
	switch level {
	case model.LevelSection:
		return `\section`
	case model.LevelSubsection:
		return `\subsection`
	case model.LevelSubsubsection:
		return `\subsubsection`
	default:
		return `\paragraph`
	}
}

// ordinal renders a 1-based index as an ordinal with a LaTeX superscript.
func ordinal(n int) string {
	switch n {
	case 1:
		return `1\textsuperscript{st}`
	case 2:
		return `2\textsuperscript{nd}`
	case 3:
		return `3\textsuperscript{rd}`
	default:
		return fmt.Sprintf(`%d\textsuperscript{th}`, n)
	}
}

// Department abbreviation tables. Each template owns an independent table;
// they are never mutated after initialization.
var (
	ieeeDepartments = map[string]string{
		"cse": "Computer Science",
		"cs":  "Computer Science",
		"it":  "Information Technology",
		"ece": "Electronics and Communication Engineering",
		"eee": "Electrical and Electronics Engineering",
		"me":  "Mechanical Engineering",
		"ce":  "Civil Engineering",
	}
	acmDepartments = map[string]string{
		"cse": "Computer Science and Engineering",
		"cs":  "Computer Science",
		"it":  "Information Technology",
		"ece": "Electronics and Communication Engineering",
		"eee": "Electrical and Electronics Engineering",
		"me":  "Mechanical Engineering",
		"ce":  "Civil Engineering",
	}
	springerDepartments = map[string]string{
		"cse": "Computer Science and Engineering",
		"cs":  "Computer Science and Engineering",
		"it":  "Information Technology",
		"ece": "Electronics and Communication Engineering",
		"eee": "Electrical and Electronics Engineering",
		"me":  "Mechanical Engineering",
		"ce":  "Civil Engineering",
	}
)

// expandDepartment resolves a department abbreviation against a template
// table. Unknown codes pass through; empty input defaults to Computer
// Science.
func expandDepartment(dept string, table map[string]string) string {
	if strings.TrimSpace(dept) == "" {
		return "Computer Science"
	}
	if full, ok := table[strings.ToLower(strings.TrimSpace(dept))]; ok {
		return full
	}
	return dept
}

// titleCase capitalizes each whitespace-separated token independently.
func titleCase(name string) string {
	fields := strings.Fields(name)
	for i, f := range fields {
		fields[i] = strings.ToUpper(f[:1]) + f[1:]
	}
	return strings.Join(fields, " ")
}

// authorAt returns the i-th element of a parallel author slice, or the
// filler when the slice is too short.
func authorAt(values []string, i int, filler string) string {
	if i < len(values) && strings.TrimSpace(values[i]) != "" {
		return values[i]
	}
	return filler
}
