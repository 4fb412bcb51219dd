package latex

import (
	"fmt"
	"strings"

	"github.com/doc2tex/doc2tex/internal/model"
)

// substitutePlaceholders replaces the placeholder tokens of the elements a
// section declares with their rendered LaTeX. Tokens for ids the record does
// not contain are left untouched. The text is scanned once; rendered output
// is never rescanned, so element content containing bracketed text cannot
// trigger further substitution.
func substitutePlaceholders(text string, sec *model.Section, rec *model.AnalysisRecord, h hooks) string {
	replacements := map[string]string{}

	for _, id := range sec.ContainsTables {
		if t := rec.TableByID(id); t != nil {
			replacements[fmt.Sprintf("[TABLE_%d]", id)] = "\n\n" + h.table(t) + "\n"
		}
	}
	for _, id := range sec.ContainsLists {
		if l := rec.ListByID(id); l != nil {
			replacements[fmt.Sprintf("[LIST_%d]", id)] = "\n\n" + h.list(l) + "\n"
		}
	}
	for _, id := range sec.ContainsEquations {
		if eq := rec.EquationByID(id); eq != nil {
			replacements[fmt.Sprintf("[EQUATION_%d]", id)] = h.equation(eq)
		}
	}

	if len(replacements) == 0 {
		return text
	}
	return replaceTokens(text, replacements)
}

// replaceTokens substitutes each known token at most everywhere it appears,
// walking the input once left to right.
func replaceTokens(text string, replacements map[string]string) string {
	var out strings.Builder
	out.Grow(len(text))
	for i := 0; i < len(text); {
		if text[i] == '[' {
			if end := strings.IndexByte(text[i:], ']'); end >= 0 {
				token := text[i : i+end+1]
				if rendered, ok := replacements[token]; ok {
					out.WriteString(rendered)
					i += end + 1
					continue
				}
			}
		}
		out.WriteByte(text[i])
		i++
	}
	return out.String()
}
