// Package latex turns document analysis records into LaTeX documents for a
// closed set of publication templates.
package latex

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/doc2tex/doc2tex/internal/model"
)

var (
	// ErrUnsupportedTemplate is returned when no generator is registered
	// for the requested template.
	ErrUnsupportedTemplate = errors.New("unsupported template")

	// ErrNotImplemented signals a registered template whose generator is
	// deliberately unfinished, as opposed to an empty result.
	ErrNotImplemented = errors.New("template not implemented")
)

// Constructor builds a fresh generator instance.
type Constructor func() Generator

// Registry maps template identifiers to generator constructors. Registration
// is expected to happen during startup; Generate may then be called from any
// number of goroutines.
type Registry struct {
	mu           sync.RWMutex
	constructors map[model.Template]Constructor
}

// NewRegistry returns a registry with the built-in templates registered.
func NewRegistry() *Registry {
	r := &Registry{constructors: make(map[model.Template]Constructor)}
	r.Register(model.TemplateIEEE, NewIEEE)
	r.Register(model.TemplateACM, NewACM)
	r.Register(model.TemplateSpringer, NewSpringer)
	return r
}

// Register adds or replaces the constructor for a template.
func (r *Registry) Register(t model.Template, c Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[t] = c
}

// New constructs a generator for the template.
func (r *Registry) New(t model.Template) (Generator, error) {
	r.mu.RLock()
	c, ok := r.constructors[t]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTemplate, t)
	}
	return c(), nil
}

// Supported lists the registered template identifiers, sorted.
func (r *Registry) Supported() []model.Template {
	r.mu.RLock()
	defer r.mu.RUnlock()
	templates := make([]model.Template, 0, len(r.constructors))
	for t := range r.constructors {
		templates = append(templates, t)
	}
	sort.Slice(templates, func(i, j int) bool { return templates[i] < templates[j] })
	return templates
}

// Generate runs a full generation pass: construct the generator, render the
// record, validate the output and bundle counts, warnings and timing.
func (r *Registry) Generate(rec *model.AnalysisRecord, t model.Template) (*model.GeneratedDocument, error) {
	start := time.Now()

	gen, err := r.New(t)
	if err != nil {
		return nil, err
	}

	content, err := gen.Generate(rec)
	if err != nil {
		return nil, fmt.Errorf("generate %s document: %w", t, err)
	}

	return &model.GeneratedDocument{
		Content:            content,
		Template:           t,
		SectionsCount:      len(rec.Sections),
		TablesCount:        len(rec.Tables),
		EquationsCount:     len(rec.Equations),
		ListsCount:         len(rec.Lists),
		ValidationWarnings: Validate(content),
		GenerationSeconds:  time.Since(start).Seconds(),
	}, nil
}

// Default is the package-level registry holding the built-in templates.
var Default = NewRegistry()

// Generate renders rec with the default registry.
func Generate(rec *model.AnalysisRecord, t model.Template) (*model.GeneratedDocument, error) {
	return Default.Generate(rec, t)
}

// Supported lists the default registry's templates.
func Supported() []model.Template {
	return Default.Supported()
}
