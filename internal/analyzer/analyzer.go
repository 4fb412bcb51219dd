// Package analyzer turns uploaded documents into analysis records: it
// detects title, authors, abstract, keywords and sections, and extracts
// tables, lists and equations with placeholder tokens linking them into the
// section text.
package analyzer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/doc2tex/doc2tex/internal/model"
)

// Analyzer converts raw document bytes into an AnalysisRecord.
type Analyzer interface {
	Analyze(r io.Reader, filename string) (*model.AnalysisRecord, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate analyzer for a filename.
func ForFile(filename string) (Analyzer, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextAnalyzer{}, nil
	case ".md", ".markdown":
		return &MarkdownAnalyzer{}, nil
	case ".html", ".htm":
		return &HTMLAnalyzer{}, nil
	case ".pdf":
		return &PDFAnalyzer{}, nil
	case ".docx":
		return &DOCXAnalyzer{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// paragraph is the format-independent unit the per-format analyzers produce.
// Exactly one of text, table or list is set; heading > 0 marks a heading
// paragraph with text as its title.
type paragraph struct {
	text    string
	heading int
	style   string
	table   *model.DocumentTable
	list    *model.DocumentList
}
