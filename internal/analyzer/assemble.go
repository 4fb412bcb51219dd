package analyzer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/doc2tex/doc2tex/internal/model"
)

// assemble applies the shared structure-detection heuristics to a paragraph
// stream and builds the analysis record: single-value elements from the
// opening paragraphs, sections from headings, and tables/lists/equations
// wired into section content via placeholder tokens.
func assemble(filename string, docType model.DocumentType, paragraphs []paragraph) *model.AnalysisRecord {
	rec := &model.AnalysisRecord{
		Filename:     filename,
		DocumentType: docType,
	}

	rec.Title = detectTitle(paragraphs)
	rec.Authors = detectAuthors(paragraphs)
	rec.Abstract = detectAbstract(paragraphs)
	rec.Keywords = detectKeywords(paragraphs)

	paragraphs = groupTextLists(paragraphs)
	buildSections(rec, paragraphs)

	rec.TotalParagraphs = len(paragraphs)
	for _, p := range paragraphs {
		rec.TotalWords += len(strings.Fields(p.text))
	}
	rec.ConfidenceScore = confidenceScore(rec)
	return rec
}

func detectTitle(paragraphs []paragraph) *model.DetectedElement {
	limit := len(paragraphs)
	if limit > 10 {
		limit = 10
	}
	for i := 0; i < limit; i++ {
		p := paragraphs[i]
		text := strings.TrimSpace(p.text)
		if text == "" {
			continue
		}
		if strings.Contains(strings.ToLower(p.style), "title") {
			return &model.DetectedElement{
				Content:        text,
				Confidence:     0.95,
				Reasoning:      "detected using style: " + p.style,
				ParagraphIndex: i,
			}
		}
		if p.heading == 1 && i < 3 {
			return &model.DetectedElement{
				Content:        text,
				Confidence:     0.85,
				Reasoning:      "first top-level heading assumed as title",
				ParagraphIndex: i,
			}
		}
	}

	// Fallback: first substantial paragraph.
	limit = len(paragraphs)
	if limit > 5 {
		limit = 5
	}
	for i := 0; i < limit; i++ {
		text := strings.TrimSpace(paragraphs[i].text)
		if len(text) > 10 {
			return &model.DetectedElement{
				Content:        text,
				Confidence:     0.6,
				Reasoning:      "first substantial paragraph assumed as title",
				ParagraphIndex: i,
			}
		}
	}
	return nil
}

var (
	emailPattern     = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	nameSeparator    = regexp.MustCompile(`,|\band\b`)
	keywordsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)keywords?\s*[:\-]\s*(.+)`),
		regexp.MustCompile(`(?i)key\s*words?\s*[:\-]\s*(.+)`),
		regexp.MustCompile(`(?i)index\s*terms?\s*[:\-]\s*(.+)`),
	}
)

func detectAuthors(paragraphs []paragraph) *model.AuthorInfo {
	authors := &model.AuthorInfo{}

	limit := len(paragraphs)
	if limit > 15 {
		limit = 15
	}
	for i := 0; i < limit; i++ {
		p := paragraphs[i]
		text := strings.TrimSpace(p.text)
		if text == "" {
			continue
		}

		style := strings.ToLower(p.style)
		if strings.Contains(style, "author") || strings.Contains(style, "subtitle") {
			authors.Names = splitNames(text)
			break
		}

		// An email line usually marks the author block.
		if strings.Contains(text, "@") && strings.Contains(text, ".") {
			emails := emailPattern.FindAllString(text, -1)
			if len(emails) > 0 {
				authors.Emails = emails
				if len(authors.Names) == 0 && i > 0 {
					prev := strings.TrimSpace(paragraphs[i-1].text)
					if prev != "" && !strings.Contains(prev, "@") {
						authors.Names = splitNames(prev)
					}
				}
			}
		}
	}

	if len(authors.Names) == 0 && len(authors.Emails) == 0 {
		return nil
	}
	return authors
}

func splitNames(text string) []string {
	if !strings.Contains(text, ",") && !strings.Contains(text, " and ") {
		return []string{text}
	}
	var names []string
	for _, part := range nameSeparator.Split(text, -1) {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

func detectAbstract(paragraphs []paragraph) *model.DetectedElement {
	for i, p := range paragraphs {
		text := strings.TrimSpace(p.text)
		if text == "" {
			continue
		}

		if strings.Contains(strings.ToLower(p.style), "abstract") {
			return &model.DetectedElement{
				Content:        text,
				Confidence:     0.95,
				Reasoning:      "detected using style: " + p.style,
				ParagraphIndex: i,
			}
		}

		if strings.HasPrefix(strings.ToLower(text), "abstract") {
			content := text
			if strings.EqualFold(text, "abstract") && i+1 < len(paragraphs) {
				content = strings.TrimSpace(paragraphs[i+1].text)
			}
			content = strings.TrimSpace(strings.NewReplacer("Abstract", "", "ABSTRACT", "").Replace(content))
			content = strings.TrimSpace(strings.TrimPrefix(content, ":"))
			return &model.DetectedElement{
				Content:        content,
				Confidence:     0.9,
				Reasoning:      "detected by abstract keyword",
				ParagraphIndex: i,
			}
		}
	}
	return nil
}

func detectKeywords(paragraphs []paragraph) *model.DetectedElement {
	for i, p := range paragraphs {
		text := strings.TrimSpace(p.text)
		if text == "" {
			continue
		}
		for _, pattern := range keywordsPatterns {
			if m := pattern.FindStringSubmatch(text); m != nil {
				return &model.DetectedElement{
					Content:        strings.TrimSpace(m[1]),
					Confidence:     0.9,
					ParagraphIndex: i,
				}
			}
		}
	}
	return nil
}

var (
	bulletPattern   = regexp.MustCompile(`^\s*[•·‣⁃\-*+]\s+`)
	numberedPattern = regexp.MustCompile(`^\s*(\d+)\.\s+(.+)`)
	letteredPattern = regexp.MustCompile(`^\s*[a-zA-Z]\.\s+`)
	romanPattern    = regexp.MustCompile(`(?i)^\s*[ivxlcdm]+\.\s+`)
)

func isListLine(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	return bulletPattern.MatchString(text) || numberedPattern.MatchString(text) ||
		letteredPattern.MatchString(text) || romanPattern.MatchString(text)
}

func listLineType(text string) model.ListType {
	if numberedPattern.MatchString(text) || letteredPattern.MatchString(text) || romanPattern.MatchString(text) {
		return model.ListOrdered
	}
	return model.ListUnordered
}

func listItemFromLine(text string, listType model.ListType) model.ListItem {
	item := model.ListItem{Content: strings.TrimSpace(text), Level: 1, Type: listType}

	if listType == model.ListOrdered {
		if m := numberedPattern.FindStringSubmatch(text); m != nil {
			item.Index, _ = strconv.Atoi(m[1])
			item.Content = strings.TrimSpace(m[2])
		}
	} else {
		item.Content = strings.TrimSpace(bulletPattern.ReplaceAllString(text, ""))
	}

	leading := len(text) - len(strings.TrimLeft(text, " \t"))
	if leading > 4 {
		item.Level = leading/4 + 1
		if item.Level > 9 {
			item.Level = 9
		}
	}
	return item
}

// groupTextLists collapses consecutive list-pattern body paragraphs into
// structured list paragraphs. Analyzers that already produce structured
// lists are unaffected since their items never appear as body text.
func groupTextLists(paragraphs []paragraph) []paragraph {
	var out []paragraph
	var items []model.ListItem
	var currentType model.ListType
	open := false

	flush := func() {
		if !open || len(items) == 0 {
			open = false
			items = nil
			return
		}
		out = append(out, paragraph{list: newDocumentList(currentType, items)})
		open = false
		items = nil
	}

	for _, p := range paragraphs {
		if p.table != nil || p.list != nil || p.heading > 0 || !isListLine(p.text) {
			flush()
			out = append(out, p)
			continue
		}

		t := listLineType(p.text)
		if open && t != currentType {
			flush()
		}
		if !open {
			open = true
			currentType = t
		}
		items = append(items, listItemFromLine(p.text, t))
	}
	flush()
	return out
}

func newDocumentList(listType model.ListType, items []model.ListItem) *model.DocumentList {
	maxDepth := 1
	for _, item := range items {
		if item.Level > maxDepth {
			maxDepth = item.Level
		}
	}
	return &model.DocumentList{
		Type:     listType,
		Items:    items,
		IsNested: maxDepth > 1,
		MaxDepth: maxDepth,
	}
}

var sectionNumberPattern = regexp.MustCompile(`^(\d+(?:\.\d+)*)\s*\.?\s*(.+)`)

// buildSections walks the paragraph stream, opening a section per heading
// and attaching structural elements to the open section via placeholder
// tokens. A heading-free document gets a single implicit content section.
func buildSections(rec *model.AnalysisRecord, paragraphs []paragraph) {
	hasHeadings := false
	for _, p := range paragraphs {
		if p.heading > 0 {
			hasHeadings = true
			break
		}
	}

	var current *model.Section
	var content []string

	closeSection := func() {
		if current == nil {
			return
		}
		current.Content = strings.Join(content, "\n")
		current.WordCount = len(strings.Fields(current.Content))
		rec.Sections = append(rec.Sections, *current)
		current = nil
		content = nil
	}

	openSection := func(title string, level model.SectionLevel, confidence float64) {
		closeSection()
		sec := &model.Section{
			ID:         len(rec.Sections) + 1,
			Title:      title,
			Level:      level,
			Confidence: confidence,
		}
		if m := sectionNumberPattern.FindStringSubmatch(title); m != nil {
			sec.Number = m[1]
			sec.Title = strings.TrimSpace(m[2])
		} else {
			sec.Number = strconv.Itoa(sec.ID)
		}
		current = sec
	}

	ensureSection := func() {
		if current == nil {
			openSection("Content", model.LevelSection, 0.5)
		}
	}

	for _, p := range paragraphs {
		switch {
		case p.heading > 0:
			openSection(strings.TrimSpace(p.text), headingSectionLevel(p.heading), 0.9)

		case p.table != nil:
			ensureSection()
			t := *p.table
			t.ID = len(rec.Tables) + 1
			rec.Tables = append(rec.Tables, t)
			content = append(content, fmt.Sprintf("[TABLE_%d]", t.ID))
			current.ContainsTables = append(current.ContainsTables, t.ID)

		case p.list != nil:
			ensureSection()
			l := *p.list
			l.ID = len(rec.Lists) + 1
			rec.Lists = append(rec.Lists, l)
			content = append(content, fmt.Sprintf("[LIST_%d]", l.ID))
			current.ContainsLists = append(current.ContainsLists, l.ID)

		default:
			text := strings.TrimSpace(p.text)
			if text == "" {
				continue
			}
			// Body text before the first heading is front matter (title,
			// authors, abstract) already captured by the detectors.
			if current == nil && hasHeadings {
				continue
			}
			ensureSection()
			text = extractEquations(rec, current, text)
			content = append(content, text)
		}
	}
	closeSection()
}

func headingSectionLevel(heading int) model.SectionLevel {
	switch heading {
	case 1:
		return model.LevelSection
	case 2:
		return model.LevelSubsection
	case 3:
		return model.LevelSubsubsection
	default:
		return model.LevelParagraph
	}
}

var (
	displayMathPattern = regexp.MustCompile(`\$\$([^$]+)\$\$`)
	inlineMathPattern  = regexp.MustCompile(`\$([^$]+)\$`)
)

// extractEquations pulls LaTeX-delimited math out of a body paragraph,
// registering each as an equation and leaving a placeholder token in the
// text. Non-delimited math notation is left as prose.
func extractEquations(rec *model.AnalysisRecord, sec *model.Section, text string) string {
	replace := func(match string, latex string, display bool) string {
		eq := model.Equation{
			ID:              len(rec.Equations) + 1,
			Content:         match,
			LatexEquivalent: strings.TrimSpace(latex),
			IsDisplay:       display,
		}
		rec.Equations = append(rec.Equations, eq)
		sec.ContainsEquations = append(sec.ContainsEquations, eq.ID)
		return fmt.Sprintf("[EQUATION_%d]", eq.ID)
	}

	text = displayMathPattern.ReplaceAllStringFunc(text, func(m string) string {
		return replace(m, strings.Trim(m, "$"), true)
	})
	text = inlineMathPattern.ReplaceAllStringFunc(text, func(m string) string {
		return replace(m, strings.Trim(m, "$"), false)
	})
	return text
}

// confidenceScore averages the per-element detection confidences.
func confidenceScore(rec *model.AnalysisRecord) float64 {
	var scores []float64
	if rec.Title != nil {
		scores = append(scores, rec.Title.Confidence)
	}
	if rec.Authors != nil {
		scores = append(scores, 0.8)
	}
	if rec.Abstract != nil {
		scores = append(scores, rec.Abstract.Confidence)
	}
	if rec.Keywords != nil {
		scores = append(scores, rec.Keywords.Confidence)
	}
	for _, s := range rec.Sections {
		scores = append(scores, s.Confidence)
	}
	for range rec.Tables {
		scores = append(scores, 0.95)
	}
	for range rec.Lists {
		scores = append(scores, 0.9)
	}
	for range rec.Equations {
		scores = append(scores, 0.7)
	}

	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
