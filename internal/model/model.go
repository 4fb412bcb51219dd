// Package model defines the document analysis record shared between the
// analyzers, the LaTeX generators and the HTTP API.
package model

// DocumentType identifies the source format of an analyzed document.
type DocumentType string

const (
	TypeDOCX     DocumentType = "docx"
	TypeMarkdown DocumentType = "markdown"
	TypeHTML     DocumentType = "html"
	TypePDF      DocumentType = "pdf"
	TypeText     DocumentType = "text"
)

// Template identifies a target publication template.
type Template string

const (
	TemplateIEEE     Template = "ieee"
	TemplateACM      Template = "acm"
	TemplateSpringer Template = "springer"
)

// ListType distinguishes ordered from unordered lists.
type ListType string

const (
	ListOrdered   ListType = "ordered"
	ListUnordered ListType = "unordered"
)

// SectionLevel is the hierarchy depth of a section heading.
type SectionLevel int

const (
	LevelTitle SectionLevel = iota
	LevelSection
	LevelSubsection
	LevelSubsubsection
	LevelParagraph
)

// DetectedElement is a detected single-value document element such as the
// title, abstract or keyword line.
type DetectedElement struct {
	Content        string  `json:"content"`
	Confidence     float64 `json:"confidence"`
	Reasoning      string  `json:"reasoning,omitempty"`
	ParagraphIndex int     `json:"paragraph_index,omitempty"`
}

// AuthorInfo holds parallel author metadata slices. Slices other than Names
// may be shorter than Names; consumers fall back to filler values on
// out-of-range access.
type AuthorInfo struct {
	Names                 []string `json:"names"`
	Affiliations          []string `json:"affiliations,omitempty"`
	Departments           []string `json:"departments,omitempty"`
	Emails                []string `json:"emails,omitempty"`
	ORCIDs                []string `json:"orcids,omitempty"`
	CorrespondingIndices  []int    `json:"corresponding_indices,omitempty"`
}

// ListItem is one entry of a DocumentList. Level runs 1-9; nesting is
// reconstructed from level transitions between consecutive items.
type ListItem struct {
	Content string   `json:"content"`
	Level   int      `json:"level"`
	Type    ListType `json:"item_type"`
	Index   int      `json:"index,omitempty"`
}

// DocumentList is an ordered sequence of list items.
type DocumentList struct {
	ID       int        `json:"id"`
	Type     ListType   `json:"list_type"`
	Items    []ListItem `json:"items"`
	IsNested bool       `json:"is_nested,omitempty"`
	MaxDepth int        `json:"max_depth,omitempty"`
}

// TableCell is a single table cell.
type TableCell struct {
	Content  string `json:"content"`
	IsHeader bool   `json:"is_header,omitempty"`
}

// DocumentTable is a rectangular row-major cell grid. Row 0 is the header
// row when HasHeaders is set.
type DocumentTable struct {
	ID         int           `json:"id"`
	Rows       int           `json:"rows"`
	Columns    int           `json:"columns"`
	Cells      [][]TableCell `json:"cells"`
	Caption    string        `json:"caption,omitempty"`
	HasHeaders bool          `json:"has_headers"`
}

// Equation is a detected mathematical expression. LatexEquivalent is the
// preferred rendering source when present; OMMLXML is a conversion fallback
// for equations originating from Office Math Markup.
type Equation struct {
	ID              int    `json:"id"`
	Content         string `json:"content"`
	LatexEquivalent string `json:"latex_equivalent,omitempty"`
	OMMLXML         string `json:"omml_xml,omitempty"`
	IsDisplay       bool   `json:"is_display"`
}

// Section is a document section. Content may embed placeholder tokens of the
// form [TABLE_<id>], [LIST_<id>] or [EQUATION_<id>]; the id sets below declare
// which elements belong to this section.
type Section struct {
	ID                int          `json:"id"`
	Number            string       `json:"number,omitempty"`
	Title             string       `json:"title"`
	Content           string       `json:"content"`
	Level             SectionLevel `json:"level"`
	Confidence        float64      `json:"confidence,omitempty"`
	WordCount         int          `json:"word_count,omitempty"`
	ContainsTables    []int        `json:"contains_tables,omitempty"`
	ContainsLists     []int        `json:"contains_lists,omitempty"`
	ContainsEquations []int        `json:"contains_equations,omitempty"`
}

// AnalysisRecord is the root aggregate produced by document analysis and
// consumed read-only by the generators. Element ids are unique within their
// own collection.
type AnalysisRecord struct {
	Filename     string       `json:"filename"`
	FileSize     int64        `json:"file_size"`
	DocumentType DocumentType `json:"document_type"`

	Title    *DetectedElement `json:"title,omitempty"`
	Authors  *AuthorInfo      `json:"authors,omitempty"`
	Abstract *DetectedElement `json:"abstract,omitempty"`
	Keywords *DetectedElement `json:"keywords,omitempty"`

	Sections  []Section       `json:"sections"`
	Lists     []DocumentList  `json:"lists"`
	Tables    []DocumentTable `json:"tables"`
	Equations []Equation      `json:"equations"`

	TotalParagraphs   int     `json:"total_paragraphs"`
	TotalWords        int     `json:"total_words"`
	ProcessingSeconds float64 `json:"processing_time"`
	ConfidenceScore   float64 `json:"confidence_score"`
}

// TableByID returns the table with the given id, or nil.
func (r *AnalysisRecord) TableByID(id int) *DocumentTable {
	for i := range r.Tables {
		if r.Tables[i].ID == id {
			return &r.Tables[i]
		}
	}
	return nil
}

// ListByID returns the list with the given id, or nil.
func (r *AnalysisRecord) ListByID(id int) *DocumentList {
	for i := range r.Lists {
		if r.Lists[i].ID == id {
			return &r.Lists[i]
		}
	}
	return nil
}

// EquationByID returns the equation with the given id, or nil.
func (r *AnalysisRecord) EquationByID(id int) *Equation {
	for i := range r.Equations {
		if r.Equations[i].ID == id {
			return &r.Equations[i]
		}
	}
	return nil
}

// GeneratedDocument is the output bundle of one generation call.
type GeneratedDocument struct {
	Content            string   `json:"content"`
	Template           Template `json:"template"`
	SectionsCount      int      `json:"sections_count"`
	TablesCount        int      `json:"tables_count"`
	EquationsCount     int      `json:"equations_count"`
	ListsCount         int      `json:"lists_count"`
	ValidationWarnings []string `json:"validation_warnings"`
	GenerationSeconds  float64  `json:"generation_time"`
}
