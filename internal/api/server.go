package api

import (
	"log/slog"
	"net/http"

	"github.com/doc2tex/doc2tex/internal/config"
	"github.com/doc2tex/doc2tex/internal/latex"
	"github.com/doc2tex/doc2tex/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for doc2tex.
type Server struct {
	router    chi.Router
	analyses  *store.AnalysisStore
	templates *latex.Registry
	log       *slog.Logger
	cfg       config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(analyses *store.AnalysisStore, templates *latex.Registry, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		analyses:  analyses,
		templates: templates,
		log:       log,
		cfg:       cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// API endpoints; authentication is optional and enabled by config.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/document/upload", s.handleUpload)
		r.Get("/api/document/analyses/{analysisID}", s.handleGetAnalysis)
		r.Get("/api/document/health", s.handleDocumentHealth)

		r.Post("/api/latex/generate", s.handleGenerate)
		r.Post("/api/latex/generate/download", s.handleGenerateDownload)
		r.Get("/api/latex/templates", s.handleTemplates)
		r.Post("/api/latex/validate", s.handleValidate)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
