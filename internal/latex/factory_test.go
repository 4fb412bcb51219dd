package latex

import (
	"errors"
	"strings"
	"testing"

	"github.com/doc2tex/doc2tex/internal/model"
)

func TestRegistry_SupportedTemplates(t *testing.T) {
	got := NewRegistry().Supported()
	want := []model.Template{model.TemplateACM, model.TemplateIEEE, model.TemplateSpringer}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRegistry_UnsupportedTemplate(t *testing.T) {
	_, err := NewRegistry().Generate(sampleRecord(), model.Template("elsevier"))
	if err == nil {
		t.Fatal("expected error for unsupported template")
	}
	if !errors.Is(err, ErrUnsupportedTemplate) {
		t.Errorf("expected ErrUnsupportedTemplate, got %v", err)
	}
	if !strings.Contains(err.Error(), "elsevier") {
		t.Errorf("expected template name in error, got %v", err)
	}
}

type stubGenerator struct {
	base
}

func (g *stubGenerator) Config() Config   { return acmConfig }
func (g *stubGenerator) preamble() string { return "" }
func (g *stubGenerator) content(rec *model.AnalysisRecord) ([]string, error) {
	return nil, ErrNotImplemented
}
func (g *stubGenerator) titleSection(rec *model.AnalysisRecord) string { return "" }
func (g *stubGenerator) keywords(keywords string) string               { return "" }
func (g *stubGenerator) table(tb *model.DocumentTable) string          { return "" }
func (g *stubGenerator) authors(a *model.AuthorInfo) string            { return "" }
func (g *stubGenerator) bibliography(rec *model.AnalysisRecord) string { return "" }

func TestRegistry_RegisterCustomTemplate(t *testing.T) {
	r := NewRegistry()
	custom := model.Template("elsevier")
	r.Register(custom, func() Generator {
		g := &stubGenerator{base: base{template: custom}}
		g.self = g
		return g
	})

	if len(r.Supported()) != 4 {
		t.Errorf("expected 4 templates after registration")
	}

	_, err := r.Generate(sampleRecord(), custom)
	if err == nil {
		t.Fatal("expected unimplemented generator to fail")
	}
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented, got %v", err)
	}
}

func TestRegistry_GenerateBundle(t *testing.T) {
	out, err := NewRegistry().Generate(sampleRecord(), model.TemplateIEEE)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Template != model.TemplateIEEE {
		t.Errorf("expected template echoed, got %q", out.Template)
	}
	if out.SectionsCount != 1 || out.TablesCount != 1 {
		t.Errorf("expected counts (1 section, 1 table), got (%d, %d)", out.SectionsCount, out.TablesCount)
	}
	if out.GenerationSeconds < 0 {
		t.Errorf("expected non-negative duration")
	}
	if len(out.ValidationWarnings) != 0 {
		t.Errorf("expected clean document, got warnings: %v", out.ValidationWarnings)
	}
}

func TestGenerate_AllBuiltinsProduceBalancedDocuments(t *testing.T) {
	for _, tmpl := range Supported() {
		out, err := Generate(sampleRecord(), tmpl)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tmpl, err)
		}
		if strings.Count(out.Content, `\begin{document}`) != 1 {
			t.Errorf("%s: expected exactly one opening marker", tmpl)
		}
		if strings.Count(out.Content, `\end{document}`) != 1 {
			t.Errorf("%s: expected exactly one closing marker", tmpl)
		}
		if len(out.ValidationWarnings) != 0 {
			t.Errorf("%s: expected no warnings, got %v", tmpl, out.ValidationWarnings)
		}
	}
}
