package analyzer

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/doc2tex/doc2tex/internal/model"
)

// TextAnalyzer handles plain .txt files. Headings are recovered from
// numbering patterns and well-known section names.
type TextAnalyzer struct{}

func (a *TextAnalyzer) Analyze(r io.Reader, filename string) (*model.AnalysisRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paragraphs []paragraph
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		paragraphs = append(paragraphs, textParagraph(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return assemble(filename, model.TypeText, paragraphs), nil
}

var (
	numberedHeading = regexp.MustCompile(`^(\d+)((?:\.\d+)*)\.?\s+\S`)

	sectionNames = map[string]bool{
		"introduction":    true,
		"related work":    true,
		"background":      true,
		"methodology":     true,
		"methods":         true,
		"results":         true,
		"discussion":      true,
		"evaluation":      true,
		"conclusion":      true,
		"conclusions":     true,
		"acknowledgments": true,
		"references":      true,
	}
)

func textParagraph(line string) paragraph {
	if level := detectHeadingLevel(line); level > 0 {
		return paragraph{text: strings.TrimSpace(line), heading: level}
	}
	return paragraph{text: line}
}

// detectHeadingLevel recognizes numbered headings ("2.1 Methods" is level 2)
// and bare well-known section names. A single-number line such as
// "1. Introduction" counts as a heading only when the remainder is a known
// section name, so ordered list items stay list items.
func detectHeadingLevel(line string) int {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > 80 {
		return 0
	}

	if m := numberedHeading.FindStringSubmatch(trimmed); m != nil {
		level := 1 + strings.Count(m[2], ".")
		if level > 1 {
			return level
		}
		rest := strings.TrimSpace(trimmed[len(m[1])+len(m[2]):])
		rest = strings.TrimSpace(strings.TrimPrefix(rest, "."))
		if sectionNames[strings.ToLower(rest)] {
			return 1
		}
		return 0
	}

	if sectionNames[strings.ToLower(trimmed)] {
		return 1
	}
	return 0
}
