package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/doc2tex/doc2tex/internal/latex"
	"github.com/doc2tex/doc2tex/internal/model"
)

// generateRequest carries either a stored analysis id or an inline analysis
// record, plus the target template. An omitted template falls back to the
// configured default.
type generateRequest struct {
	AnalysisID string                `json:"analysis_id,omitempty"`
	Analysis   *model.AnalysisRecord `json:"analysis,omitempty"`
	Template   string                `json:"template,omitempty"`
}

func (s *Server) resolveGenerateRequest(r *http.Request) (*model.AnalysisRecord, model.Template, error) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, "", fmt.Errorf("invalid request body: %w", err)
	}

	rec := req.Analysis
	if rec == nil {
		if req.AnalysisID == "" {
			return nil, "", errors.New("analysis or analysis_id is required")
		}
		entry := s.analyses.Get(req.AnalysisID)
		if entry == nil {
			return nil, "", fmt.Errorf("analysis %q not found", req.AnalysisID)
		}
		rec = entry.Record
	}

	tmpl := req.Template
	if tmpl == "" {
		tmpl = s.cfg.DefaultTemplate
	}
	return rec, model.Template(strings.ToLower(tmpl)), nil
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	rec, tmpl, err := s.resolveGenerateRequest(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc, err := s.templates.Generate(rec, tmpl)
	if err != nil {
		s.writeGenerateError(w, tmpl, err)
		return
	}

	s.log.Info("document generated",
		"template", doc.Template,
		"sections", doc.SectionsCount,
		"warnings", len(doc.ValidationWarnings),
	)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc)
}

func (s *Server) handleGenerateDownload(w http.ResponseWriter, r *http.Request) {
	rec, tmpl, err := s.resolveGenerateRequest(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc, err := s.templates.Generate(rec, tmpl)
	if err != nil {
		s.writeGenerateError(w, tmpl, err)
		return
	}

	name := sanitizeFilename(rec.Filename)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" || name == "unnamed" {
		name = "document"
	}
	w.Header().Set("Content-Type", "application/x-tex")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s_%s.tex"`, name, tmpl))
	w.Write([]byte(doc.Content))
}

func (s *Server) writeGenerateError(w http.ResponseWriter, tmpl model.Template, err error) {
	switch {
	case errors.Is(err, latex.ErrUnsupportedTemplate):
		jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, latex.ErrNotImplemented):
		jsonError(w, err.Error(), http.StatusNotImplemented)
	default:
		s.log.Error("generation failed", "template", tmpl, "error", err)
		jsonError(w, "generation failed: "+err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"templates": s.templates.Supported(),
		"default":   s.cfg.DefaultTemplate,
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	warnings := latex.Validate(req.Content)
	if warnings == nil {
		warnings = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"is_valid": len(warnings) == 0,
		"warnings": warnings,
	})
}
