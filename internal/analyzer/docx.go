package analyzer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/doc2tex/doc2tex/internal/model"
)

// DOCXAnalyzer handles .docx files. Heading and metadata styles drive the
// structure detection; tables come from the document body and lists from the
// text-pattern fallback shared with the plain-text analyzer.
type DOCXAnalyzer struct{}

func (a *DOCXAnalyzer) Analyze(r io.Reader, filename string) (*model.AnalysisRecord, error) {
	// go-docx needs a ReadSeeker+size, so write to a temp file.
	tmp, err := os.CreateTemp("", "doc2tex-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, size)
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	var paragraphs []paragraph
	for _, item := range doc.Document.Body.Items {
		switch item := item.(type) {
		case *docx.Paragraph:
			text := docxParagraphText(item)
			if text == "" {
				continue
			}
			style := docxStyle(item)
			paragraphs = append(paragraphs, paragraph{
				text:    text,
				heading: docxHeadingLevel(style),
				style:   style,
			})
		case *docx.Table:
			if table := docxTable(item); table != nil {
				paragraphs = append(paragraphs, paragraph{table: table})
			}
		}
	}

	return assemble(filename, model.TypeDOCX, paragraphs), nil
}

func docxStyle(para *docx.Paragraph) string {
	if para.Properties == nil || para.Properties.Style == nil {
		return ""
	}
	return para.Properties.Style.Val
}

func docxHeadingLevel(style string) int {
	normalized := strings.ToLower(strings.ReplaceAll(style, " ", ""))
	switch normalized {
	case "heading1":
		return 1
	case "heading2":
		return 2
	case "heading3":
		return 3
	case "heading4":
		return 4
	case "heading5":
		return 5
	case "heading6":
		return 6
	}
	return 0
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func docxTable(table *docx.Table) *model.DocumentTable {
	var cells [][]model.TableCell
	for rowIdx, row := range table.TableRows {
		var cellRow []model.TableCell
		for _, cell := range row.TableCells {
			var text strings.Builder
			for _, p := range cell.Paragraphs {
				if t := docxParagraphText(p); t != "" {
					if text.Len() > 0 {
						text.WriteString(" ")
					}
					text.WriteString(t)
				}
			}
			cellRow = append(cellRow, model.TableCell{
				Content:  text.String(),
				IsHeader: rowIdx == 0,
			})
		}
		if len(cellRow) > 0 {
			cells = append(cells, cellRow)
		}
	}

	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil
	}
	return &model.DocumentTable{
		Rows:       len(cells),
		Columns:    len(cells[0]),
		Cells:      cells,
		HasHeaders: true,
	}
}
