package search

import "github.com/Mirakulix/GuSp-Planungs-Assistent/internal/catalog"

// Type tags the ranking strategy that produced a search result.
type Type string

const (
	TypeSemantic         Type = "semantic"
	TypeLexical          Type = "lexical"
	TypeFilterOnly       Type = "filter_only"
	TypeSemanticFallback Type = "semantic_fallback"
)

// Filters are the hard constraints applied before ranking. All set
// fields are conjunctive; zero values mean "no constraint".
type Filters struct {
	DurationMax      int      `json:"duration_max,omitempty"`
	ParticipantCount int      `json:"participant_count,omitempty"`
	Location         string   `json:"location,omitempty"`
	AgeGroup         string   `json:"age_group,omitempty"`
	Tags             []string `json:"tags,omitempty"`
}

// ScoredActivity annotates an activity with the score of the ranking
// strategy that ordered it. Semantic and lexical scores are mutually
// exclusive per search type.
type ScoredActivity struct {
	catalog.Activity
	SemanticScore float64 `json:"semantic_score,omitempty"`
	LexicalScore  float64 `json:"lexical_score,omitempty"`
}

// Result is a ranked, truncated search result. TotalFound counts the
// matches before truncation so callers can detect unseen matches.
type Result struct {
	Activities []ScoredActivity `json:"games"`
	TotalFound int              `json:"total_found"`
	Type       Type             `json:"search_type"`
	Query      string           `json:"query_processed,omitempty"`
	Filters    Filters          `json:"filters_applied"`
}
