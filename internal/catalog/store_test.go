package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSeededStore(t *testing.T) {
	s := NewSeededStore()
	if s.Count() != 5 {
		t.Fatalf("expected 5 seeded activities, got %d", s.Count())
	}

	a, ok := s.Get("game_001")
	if !ok {
		t.Fatal("expected game_001 in seeded store")
	}
	if a.Name != "Vertrauenskreis" {
		t.Errorf("game_001 name: got %q, want %q", a.Name, "Vertrauenskreis")
	}
}

func TestGetUnknownID(t *testing.T) {
	s := NewSeededStore()
	if _, ok := s.Get("game_999"); ok {
		t.Error("expected miss for unknown id")
	}
}

func TestUpsertReplacesAndInvalidatesEmbedding(t *testing.T) {
	s := NewSeededStore()
	s.SetEmbedding("game_001", []float32{1, 2, 3})
	if _, ok := s.Embedding("game_001"); !ok {
		t.Fatal("expected cached embedding")
	}

	a, _ := s.Get("game_001")
	a.Description = "Neue Beschreibung"
	s.Upsert(a)

	if _, ok := s.Embedding("game_001"); ok {
		t.Error("upsert should invalidate the cached embedding")
	}
	got, _ := s.Get("game_001")
	if got.Description != "Neue Beschreibung" {
		t.Errorf("upsert did not replace the activity: %q", got.Description)
	}
	if s.Count() != 5 {
		t.Errorf("upsert of existing id changed count to %d", s.Count())
	}
}

func TestSetEmbeddingUnknownID(t *testing.T) {
	s := NewSeededStore()
	s.SetEmbedding("game_999", []float32{1})
	if _, ok := s.Embedding("game_999"); ok {
		t.Error("embeddings for unknown ids must be dropped")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	s := NewSeededStore()
	all := s.All()
	all[0].Name = "mutiert"

	a, _ := s.Get(all[0].ID)
	if a.Name == "mutiert" {
		t.Error("All must return a copy, not the backing slice")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yml")

	data := `activities:
  - id: custom_001
    name: Kim-Spiel
    description: Gegenstände merken und aufzählen.
    duration_minutes: 10
    min_participants: 4
    max_participants: 12
    age_group: "10-13"
    location: indoor
    tags: [gedächtnis, ruhig]
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewSeededStore()
	s.SetEmbedding("game_001", []float32{1, 2, 3})

	if err := s.LoadFile(path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if s.Count() != 1 {
		t.Fatalf("expected catalog replaced with 1 activity, got %d", s.Count())
	}
	if _, ok := s.Get("custom_001"); !ok {
		t.Error("expected custom_001 after load")
	}
	if _, ok := s.Embedding("game_001"); ok {
		t.Error("LoadFile must discard the embedding cache")
	}
}

func TestLoadFileMissingID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yml")

	data := `activities:
  - name: Ohne ID
    duration_minutes: 10
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewStore()
	if err := s.LoadFile(path); err == nil {
		t.Error("expected error for activity without id")
	}
}

func TestEmbeddingText(t *testing.T) {
	a, _ := NewSeededStore().Get("game_002")
	text := a.EmbeddingText()

	for _, want := range []string{"Capture the Flag", "strategie", "Dauer: 30 Minuten", "Teilnehmer: 10-20"} {
		if !strings.Contains(text, want) {
			t.Errorf("embedding text missing %q: %s", want, text)
		}
	}
}
