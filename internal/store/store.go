// Package store keeps completed document analyses in memory so they can be
// retrieved and re-generated without re-uploading, with TTL eviction.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/doc2tex/doc2tex/internal/model"
)

// Entry wraps a stored analysis with its bookkeeping fields.
type Entry struct {
	ID        string                `json:"analysis_id"`
	Record    *model.AnalysisRecord `json:"analysis"`
	CreatedAt time.Time             `json:"created_at"`
}

// AnalysisStore is a thread-safe in-memory analysis registry with TTL
// eviction.
type AnalysisStore struct {
	mu      sync.Mutex
	entries map[string]*Entry
	ttl     time.Duration
}

func NewAnalysisStore(ttl time.Duration) *AnalysisStore {
	return &AnalysisStore{
		entries: make(map[string]*Entry),
		ttl:     ttl,
	}
}

// Put stores an analysis record and returns its id, derived from the file
// content so repeated uploads of the same document share one entry.
func (s *AnalysisStore) Put(content []byte, rec *model.AnalysisRecord) *Entry {
	entry := &Entry{
		ID:        ContentID(content),
		Record:    rec,
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.ID] = entry
	return entry
}

// Get returns the entry with the given id, or nil.
func (s *AnalysisStore) Get(id string) *Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[id]
}

// Len reports the number of stored analyses.
func (s *AnalysisStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Cleanup removes expired entries.
func (s *AnalysisStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, entry := range s.entries {
		if now.Sub(entry.CreatedAt) > s.ttl {
			delete(s.entries, id)
		}
	}
}

// ContentID derives a stable short identifier from file content.
func ContentID(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])[:16]
}
