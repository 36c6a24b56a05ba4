package search

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/catalog"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/config"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/llm"
)

func newTestService() *Service {
	gateway := llm.NewGateway(config.DefaultConfig(), zerolog.Nop())
	return NewService(catalog.NewSeededStore(), gateway, zerolog.Nop())
}

func TestApplyFiltersDuration(t *testing.T) {
	items := catalog.NewSeededStore().All()

	filtered := ApplyFilters(items, Filters{DurationMax: 15})
	if len(filtered) != 2 {
		t.Fatalf("duration_max=15: expected 2 activities, got %d", len(filtered))
	}
	for _, a := range filtered {
		if a.DurationMinutes > 15 {
			t.Errorf("activity %s exceeds duration_max", a.ID)
		}
	}

	filtered = ApplyFilters(items, Filters{DurationMax: 10})
	if len(filtered) != 0 {
		t.Errorf("duration_max=10: expected no activities, got %d", len(filtered))
	}
}

func TestApplyFiltersParticipants(t *testing.T) {
	items := catalog.NewSeededStore().All()

	filtered := ApplyFilters(items, Filters{ParticipantCount: 18})
	if len(filtered) != 1 || filtered[0].ID != "game_002" {
		t.Errorf("participant_count=18: expected only game_002, got %v", ids(filtered))
	}
}

func TestApplyFiltersLocation(t *testing.T) {
	items := catalog.NewSeededStore().All()

	// "both" on either side is a wildcard.
	if got := len(ApplyFilters(items, Filters{Location: "both"})); got != 5 {
		t.Errorf("location=both: expected all 5, got %d", got)
	}
	indoor := ApplyFilters(items, Filters{Location: "indoor"})
	if len(indoor) != 4 {
		t.Errorf("location=indoor: expected 4, got %d", len(indoor))
	}
	for _, a := range indoor {
		if a.Location == "outdoor" {
			t.Errorf("outdoor activity %s passed the indoor filter", a.ID)
		}
	}
}

func TestApplyFiltersTags(t *testing.T) {
	items := catalog.NewSeededStore().All()

	filtered := ApplyFilters(items, Filters{Tags: []string{"strategie"}})
	if len(filtered) != 1 || filtered[0].ID != "game_002" {
		t.Errorf("tags=[strategie]: expected only game_002, got %v", ids(filtered))
	}
}

func TestApplyFiltersIdempotent(t *testing.T) {
	items := catalog.NewSeededStore().All()
	f := Filters{DurationMax: 20, Location: "indoor"}

	once := ApplyFilters(items, f)
	twice := ApplyFilters(once, f)
	if len(once) != len(twice) {
		t.Errorf("filtering is not idempotent: %d vs %d", len(once), len(twice))
	}
}

func TestSearchLexicalRanking(t *testing.T) {
	svc := newTestService()

	result, err := svc.Search(context.Background(), Filters{}, "Vertrauen", false, 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if result.Type != TypeLexical {
		t.Errorf("expected search type %q, got %q", TypeLexical, result.Type)
	}
	if len(result.Activities) != 2 {
		t.Fatalf("expected 2 matches for 'Vertrauen', got %v", scoredIDs(result.Activities))
	}

	// game_001 matches name, description, tag and pedagogical value;
	// game_003 misses the description match and must rank below.
	if result.Activities[0].ID != "game_001" || result.Activities[1].ID != "game_003" {
		t.Errorf("unexpected ranking order: %v", scoredIDs(result.Activities))
	}
	if result.Activities[0].LexicalScore <= result.Activities[1].LexicalScore {
		t.Errorf("scores not descending: %f <= %f",
			result.Activities[0].LexicalScore, result.Activities[1].LexicalScore)
	}
	if result.Activities[0].LexicalScore < weightName {
		t.Errorf("name match should contribute at least %f, got %f",
			weightName, result.Activities[0].LexicalScore)
	}
}

func TestSearchFilterOnly(t *testing.T) {
	svc := newTestService()

	result, err := svc.Search(context.Background(), Filters{Location: "outdoor"}, "", true, 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if result.Type != TypeFilterOnly {
		t.Errorf("expected search type %q, got %q", TypeFilterOnly, result.Type)
	}
	if result.TotalFound != 4 {
		t.Errorf("expected 4 outdoor-compatible activities, got %d", result.TotalFound)
	}
	for _, a := range result.Activities {
		if a.SemanticScore != 0 || a.LexicalScore != 0 {
			t.Errorf("filter-only results must carry no scores, got %+v", a)
		}
	}
}

func TestSearchSemanticDegradesToLexical(t *testing.T) {
	// Without a configured gateway a semantic request must still work.
	svc := newTestService()

	result, err := svc.Search(context.Background(), Filters{}, "Vertrauen", true, 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if result.Type != TypeLexical {
		t.Errorf("expected lexical degradation, got %q", result.Type)
	}
	if len(result.Activities) == 0 {
		t.Error("expected lexical matches")
	}
}

func TestSearchTruncation(t *testing.T) {
	svc := newTestService()

	result, err := svc.Search(context.Background(), Filters{}, "Vertrauen", false, 1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(result.Activities) != 1 {
		t.Errorf("expected 1 activity after truncation, got %d", len(result.Activities))
	}
	if result.TotalFound != 2 {
		t.Errorf("TotalFound must count matches before truncation, got %d", result.TotalFound)
	}
}

func TestSearchEmptyResult(t *testing.T) {
	svc := newTestService()

	result, err := svc.Search(context.Background(), Filters{DurationMax: 5}, "", true, 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if result.TotalFound != 0 || len(result.Activities) != 0 {
		t.Errorf("expected empty result, got %v", scoredIDs(result.Activities))
	}
}

func TestGetSimilarUnknownID(t *testing.T) {
	svc := newTestService()

	similar, err := svc.GetSimilar(context.Background(), "game_999", 5)
	if err != nil {
		t.Fatalf("GetSimilar failed: %v", err)
	}
	if similar != nil {
		t.Errorf("unknown id should yield nil, got %v", scoredIDs(similar))
	}
}

func TestGetSimilarExcludesSelf(t *testing.T) {
	svc := newTestService()

	similar, err := svc.GetSimilar(context.Background(), "game_001", 5)
	if err != nil {
		t.Fatalf("GetSimilar failed: %v", err)
	}
	for _, a := range similar {
		if a.ID == "game_001" {
			t.Error("GetSimilar must exclude the reference activity")
		}
	}
}

func ids(items []catalog.Activity) []string {
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.ID)
	}
	return out
}

func scoredIDs(items []ScoredActivity) []string {
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.ID)
	}
	return out
}
