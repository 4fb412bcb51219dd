package analyzer

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/doc2tex/doc2tex/internal/model"
)

// HTMLAnalyzer handles HTML files. Heading tags drive sections; ul/ol and
// table elements become structured lists and tables.
type HTMLAnalyzer struct{}

func (a *HTMLAnalyzer) Analyze(r io.Reader, filename string) (*model.AnalysisRecord, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var paragraphs []paragraph

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := htmlHeadingLevel(n.Data); level > 0 {
				paragraphs = append(paragraphs, paragraph{
					text:    htmlTextContent(n),
					heading: level,
				})
				return
			}

			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "ul", "ol":
				if list := htmlList(n, 1); len(list.Items) > 0 {
					paragraphs = append(paragraphs, paragraph{list: list})
				}
				return
			case "table":
				if table := htmlTable(n); table != nil {
					paragraphs = append(paragraphs, paragraph{table: table})
				}
				return
			case "p", "blockquote":
				if t := htmlTextContent(n); t != "" {
					paragraphs = append(paragraphs, paragraph{text: t})
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	rec := assemble(filename, model.TypeHTML, paragraphs)

	// A <title> outranks the paragraph heuristics.
	if title := findTitle(doc); title != "" {
		rec.Title = &model.DetectedElement{
			Content:    title,
			Confidence: 0.95,
			Reasoning:  "document title element",
		}
	}
	return rec, nil
}

func htmlHeadingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func htmlList(n *html.Node, level int) *model.DocumentList {
	listType := model.ListUnordered
	if n.Data == "ol" {
		listType = model.ListOrdered
	}

	var items []model.ListItem
	collectHTMLItems(n, level, listType, &items)
	return newDocumentList(listType, items)
}

func collectHTMLItems(list *html.Node, level int, listType model.ListType, items *[]model.ListItem) {
	index := 1
	for li := list.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.Data != "li" {
			continue
		}

		var content strings.Builder
		for c := li.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
				continue
			}
			content.WriteString(htmlTextContent(c))
			content.WriteString(" ")
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

		for c := li.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
				collectHTMLItems(c, level+1, listType, items)
			}
		}
	}
}

func htmlTable(n *html.Node) *model.DocumentTable {
	var cells [][]model.TableCell
	hasHeaders := false
	var caption string

	var walkRows func(*html.Node)
	walkRows = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "caption":
				caption = htmlTextContent(n)
				return
			case "tr":
				var row []model.TableCell
				rowIsHeader := false
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					if c.Type != html.ElementNode {
						continue
					}
					switch c.Data {
					case "th":
						rowIsHeader = true
						hasHeaders = true
						row = append(row, model.TableCell{Content: htmlTextContent(c), IsHeader: true})
					case "td":
						row = append(row, model.TableCell{Content: htmlTextContent(c), IsHeader: rowIsHeader})
					}
				}
				if len(row) > 0 {
					cells = append(cells, row)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walkRows(c)
		}
	}
	walkRows(n)

	if len(cells) == 0 {
		return nil
	}
	return &model.DocumentTable{
		Rows:       len(cells),
		Columns:    len(cells[0]),
		Cells:      cells,
		Caption:    caption,
		HasHeaders: hasHeaders,
	}
}

func htmlTextContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return htmlTextContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
