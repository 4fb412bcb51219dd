package analyzer

import (
	"strings"
	"testing"

	"github.com/doc2tex/doc2tex/internal/model"
)

const sampleHTML = `<!DOCTYPE html>
<html>
<head><title>Structured Documents</title></head>
<body>
<h1>Structured Documents</h1>
<p>Opening prose.</p>
<h2>Data</h2>
<table>
<caption>Results table</caption>
<tr><th>Metric</th><th>Value</th></tr>
<tr><td>Accuracy</td><td>0.95</td></tr>
</table>
<ul>
<li>alpha</li>
<li>beta<ul><li>beta child</li></ul></li>
</ul>
<script>ignore();</script>
</body>
</html>`

func TestHTMLAnalyzer_TitleElement(t *testing.T) {
	rec, err := (&HTMLAnalyzer{}).Analyze(strings.NewReader(sampleHTML), "doc.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Title == nil || rec.Title.Content != "Structured Documents" {
		t.Fatalf("expected title element, got %+v", rec.Title)
	}
	if rec.Title.Confidence != 0.95 {
		t.Errorf("expected title element confidence, got %v", rec.Title.Confidence)
	}
}

func TestHTMLAnalyzer_TableWithCaption(t *testing.T) {
	rec, err := (&HTMLAnalyzer{}).Analyze(strings.NewReader(sampleHTML), "doc.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.Tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(rec.Tables))
	}
	table := rec.Tables[0]
	if table.Caption != "Results table" {
		t.Errorf("expected caption, got %q", table.Caption)
	}
	if !table.HasHeaders {
		t.Errorf("expected th row to mark headers")
	}
	if table.Rows != 2 || table.Columns != 2 {
		t.Errorf("expected 2x2 table, got %dx%d", table.Rows, table.Columns)
	}
}

func TestHTMLAnalyzer_NestedList(t *testing.T) {
	rec, err := (&HTMLAnalyzer{}).Analyze(strings.NewReader(sampleHTML), "doc.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.Lists) != 1 {
		t.Fatalf("expected 1 list, got %d", len(rec.Lists))
	}
	list := rec.Lists[0]
	if list.Type != model.ListUnordered {
		t.Errorf("expected unordered list")
	}
	if len(list.Items) != 3 {
		t.Fatalf("expected 3 items, got %+v", list.Items)
	}
	if list.Items[2].Content != "beta child" || list.Items[2].Level != 2 {
		t.Errorf("expected nested child at level 2, got %+v", list.Items[2])
	}
}

func TestHTMLAnalyzer_ScriptIgnored(t *testing.T) {
	rec, err := (&HTMLAnalyzer{}).Analyze(strings.NewReader(sampleHTML), "doc.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range rec.Sections {
		if strings.Contains(s.Content, "ignore()") {
			t.Errorf("expected script content excluded, got %q", s.Content)
		}
	}
}

func TestForFile_Dispatch(t *testing.T) {
	cases := map[string]bool{
		"a.txt":  true,
		"a.md":   true,
		"a.html": true,
		"a.pdf":  true,
		"a.docx": true,
		"a.xlsx": false,
	}
	for name, ok := range cases {
		_, err := ForFile(name)
		if ok && err != nil {
			t.Errorf("expected analyzer for %s, got %v", name, err)
		}
		if !ok && err == nil {
			t.Errorf("expected error for %s", name)
		}
	}
	if IsSupportedExtension("b.PDF") != true {
		t.Errorf("expected case-insensitive extension check")
	}
}
