package analyzer

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/doc2tex/doc2tex/internal/model"
)

// MarkdownAnalyzer handles Markdown files using goldmark. Headings, lists
// and pipe tables come from the AST; the remaining blocks become body text.
type MarkdownAnalyzer struct{}

func (a *MarkdownAnalyzer) Analyze(r io.Reader, filename string) (*model.AnalysisRecord, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := md.Parser().Parse(text.NewReader(src))

	var paragraphs []paragraph
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			paragraphs = append(paragraphs, paragraph{
				text:    string(node.Text(src)),
				heading: node.Level,
			})
		case *ast.List:
			if list := markdownList(node, src); len(list.Items) > 0 {
				paragraphs = append(paragraphs, paragraph{list: list})
			}
		case *east.Table:
			if table := markdownTable(node, src); table != nil {
				paragraphs = append(paragraphs, paragraph{table: table})
			}
		default:
			if t := markdownText(n, src); t != "" {
				paragraphs = append(paragraphs, paragraph{text: t})
			}
		}
	}

	return assemble(filename, model.TypeMarkdown, paragraphs), nil
}

// markdownList flattens a possibly nested list into level-annotated items.
func markdownList(list *ast.List, src []byte) *model.DocumentList {
	listType := model.ListUnordered
	if list.IsOrdered() {
		listType = model.ListOrdered
	}

	var items []model.ListItem
	collectListItems(list, src, 1, listType, &items)
	return newDocumentList(listType, items)
}

func collectListItems(list *ast.List, src []byte, level int, listType model.ListType, items *[]model.ListItem) {
	index := 1
	for li := list.FirstChild(); li != nil; li = li.NextSibling() {
		var content strings.Builder
		for c := li.FirstChild(); c != nil; c = c.NextSibling() {
			if nested, ok := c.(*ast.List); ok {
				if content.Len() > 0 {
					item := model.ListItem{
						Content: strings.TrimSpace(content.String()),
						Level:   level,
						Type:    listType,
						Index:   index,
					}
					*items = append(*items, item)
					index++
					content.Reset()
				}
				collectListItems(nested, src, level+1, listType, items)
				continue
			}
			content.WriteString(markdownText(c, src))
		}
		if text := strings.TrimSpace(content.String()); text != "" {
			*items = append(*items, model.ListItem{
				Content: text,
				Level:   level,
				Type:    listType,
				Index:   index,
			})
			index++
		}
	}
}

func markdownTable(table *east.Table, src []byte) *model.DocumentTable {
	var cells [][]model.TableCell
	hasHeaders := false

	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		isHeader := false
		if _, ok := row.(*east.TableHeader); ok {
			isHeader = true
			hasHeaders = true
		}

		var cellRow []model.TableCell
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cellRow = append(cellRow, model.TableCell{
				Content:  strings.TrimSpace(markdownText(cell, src)),
				IsHeader: isHeader,
			})
		}
		if len(cellRow) > 0 {
			cells = append(cells, cellRow)
		}
	}

	if len(cells) == 0 {
		return nil
	}
	return &model.DocumentTable{
		Rows:       len(cells),
		Columns:    len(cells[0]),
		Cells:      cells,
		HasHeaders: hasHeaders,
	}
}

// markdownText gets the text content of a goldmark AST node.
func markdownText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
		if buf.Len() > 0 {
			return strings.TrimSpace(buf.String())
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(markdownText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
