package store

import (
	"testing"
	"time"

	"github.com/doc2tex/doc2tex/internal/model"
)

func TestAnalysisStore_PutAndGet(t *testing.T) {
	s := NewAnalysisStore(time.Hour)
	rec := &model.AnalysisRecord{Filename: "a.txt"}

	entry := s.Put([]byte("document body"), rec)
	if entry.ID == "" {
		t.Fatal("expected non-empty id")
	}

	got := s.Get(entry.ID)
	if got == nil {
		t.Fatal("expected stored entry")
	}
	if got.Record.Filename != "a.txt" {
		t.Errorf("expected record round-trip, got %q", got.Record.Filename)
	}
}

func TestAnalysisStore_GetMissing(t *testing.T) {
	s := NewAnalysisStore(time.Hour)
	if s.Get("nonexistent") != nil {
		t.Error("expected nil for missing entry")
	}
}

func TestAnalysisStore_SameContentSameID(t *testing.T) {
	s := NewAnalysisStore(time.Hour)
	a := s.Put([]byte("same bytes"), &model.AnalysisRecord{})
	b := s.Put([]byte("same bytes"), &model.AnalysisRecord{})
	if a.ID != b.ID {
		t.Errorf("expected identical content to share an id, got %q and %q", a.ID, b.ID)
	}
	if s.Len() != 1 {
		t.Errorf("expected a single entry, got %d", s.Len())
	}
}

func TestAnalysisStore_TTLCleanup(t *testing.T) {
	s := NewAnalysisStore(50 * time.Millisecond)

	old := s.Put([]byte("old"), &model.AnalysisRecord{})

	time.Sleep(100 * time.Millisecond)

	fresh := s.Put([]byte("fresh"), &model.AnalysisRecord{})

	s.Cleanup()

	if s.Get(old.ID) != nil {
		t.Error("expected expired entry to be cleaned up")
	}
	if s.Get(fresh.ID) == nil {
		t.Error("expected fresh entry to survive cleanup")
	}
}

func TestContentID_StableAndShort(t *testing.T) {
	a := ContentID([]byte("abc"))
	b := ContentID([]byte("abc"))
	if a != b {
		t.Errorf("expected deterministic id")
	}
	if len(a) != 16 {
		t.Errorf("expected 16 character id, got %d", len(a))
	}
}
