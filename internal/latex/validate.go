package latex

import (
	"fmt"
	"strings"
)

// Validate runs heuristic well-formedness checks over generated LaTeX and
// returns human-readable warnings. It never rejects a document; callers
// surface the warnings alongside the output.
func Validate(content string) []string {
	var warnings []string

	opening := strings.Count(content, "{")
	closing := strings.Count(content, "}")
	if opening != closing {
		warnings = append(warnings, fmt.Sprintf("unmatched braces: %d opening, %d closing", opening, closing))
	}

	if strings.Count(content, "$")%2 != 0 {
		warnings = append(warnings, "unmatched math delimiters: odd number of $ characters")
	}

	if !strings.Contains(content, beginDocument) {
		warnings = append(warnings, `missing \begin{document}`)
	}
	if !strings.Contains(content, endDocument) {
		warnings = append(warnings, `missing \end{document}`)
	}

	return warnings
}
