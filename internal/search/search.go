package search

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/catalog"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/llm"
)

const defaultLimit = 10

// Lexical scoring weights for substring matches of the query against
// activity fields.
const (
	weightName             = 3.0
	weightDescription      = 2.0
	weightTag              = 1.5
	weightPedagogicalValue = 1.0
	weightMaterial         = 0.5
)

// Service is the hybrid search ranker: deterministic filtering followed
// by semantic cosine ranking when a query and a working Gateway are
// present, or weighted lexical scoring otherwise.
type Service struct {
	store   *catalog.Store
	gateway *llm.Gateway
	logger  zerolog.Logger
}

// NewService creates a search service over the given catalog.
func NewService(store *catalog.Store, gateway *llm.Gateway, logger zerolog.Logger) *Service {
	return &Service{store: store, gateway: gateway, logger: logger}
}

// Search filters the catalog by the hard constraints, ranks the
// survivors, and truncates to limit. The only error source is an
// embedding length mismatch during semantic ranking.
func (s *Service) Search(ctx context.Context, filters Filters, query string, useSemantic bool, limit int) (Result, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	filtered := ApplyFilters(s.store.All(), filters)

	s.logger.Debug().
		Str("query", query).
		Bool("use_semantic", useSemantic).
		Int("after_filtering", len(filtered)).
		Msg("starting activity search")

	var (
		scored     []ScoredActivity
		searchType Type
	)

	switch {
	case query != "" && useSemantic && s.gateway.IsAvailable():
		queryVec := s.gateway.Embed(ctx, query)
		if isZeroVector(queryVec) {
			// The embedding capability degraded mid-request; rank
			// lexically instead of scoring everything 0.
			scored = lexicalRank(filtered, query)
			searchType = TypeSemanticFallback
			break
		}
		var err error
		scored, err = s.semanticRank(ctx, filtered, queryVec)
		if err != nil {
			return Result{}, err
		}
		searchType = TypeSemantic

	case query != "":
		scored = lexicalRank(filtered, query)
		searchType = TypeLexical

	default:
		scored = make([]ScoredActivity, 0, len(filtered))
		for _, a := range filtered {
			scored = append(scored, ScoredActivity{Activity: a})
		}
		searchType = TypeFilterOnly
	}

	totalFound := len(scored)
	if len(scored) > limit {
		scored = scored[:limit]
	}

	s.logger.Debug().
		Int("results", len(scored)).
		Int("total_found", totalFound).
		Str("search_type", string(searchType)).
		Msg("activity search completed")

	return Result{
		Activities: scored,
		TotalFound: totalFound,
		Type:       searchType,
		Query:      query,
		Filters:    filters,
	}, nil
}

// GetSimilar ranks activities by similarity to an existing one, using
// its description and tags as the query and excluding it from the
// results. Returns nil when the id is unknown.
func (s *Service) GetSimilar(ctx context.Context, id string, limit int) ([]ScoredActivity, error) {
	target, ok := s.store.Get(id)
	if !ok {
		return nil, nil
	}
	if limit <= 0 {
		limit = 5
	}

	query := target.Description + " " + strings.Join(target.Tags, " ")
	result, err := s.Search(ctx, Filters{}, query, true, limit+1)
	if err != nil {
		return nil, err
	}

	similar := make([]ScoredActivity, 0, limit)
	for _, a := range result.Activities {
		if a.ID == id {
			continue
		}
		similar = append(similar, a)
		if len(similar) == limit {
			break
		}
	}
	return similar, nil
}

// ApplyFilters returns the activities satisfying every set constraint,
// preserving catalog order. Filtering is idempotent.
func ApplyFilters(items []catalog.Activity, f Filters) []catalog.Activity {
	filtered := make([]catalog.Activity, 0, len(items))
	for _, a := range items {
		if f.DurationMax > 0 && a.DurationMinutes > f.DurationMax {
			continue
		}
		if f.ParticipantCount > 0 &&
			(a.MinParticipants > f.ParticipantCount || a.MaxParticipants < f.ParticipantCount) {
			continue
		}
		// "both" matches everything, on either side.
		if f.Location != "" && f.Location != "both" &&
			a.Location != "both" && a.Location != f.Location {
			continue
		}
		if f.AgeGroup != "" && a.AgeGroup != f.AgeGroup {
			continue
		}
		if len(f.Tags) > 0 && !tagsIntersect(a.Tags, f.Tags) {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}

// semanticRank scores the filtered activities by cosine similarity to
// the query vector, computing and caching item embeddings on demand.
func (s *Service) semanticRank(ctx context.Context, items []catalog.Activity, queryVec []float32) ([]ScoredActivity, error) {
	scored := make([]ScoredActivity, 0, len(items))
	for _, a := range items {
		vec, ok := s.store.Embedding(a.ID)
		if !ok {
			vec = s.gateway.Embed(ctx, a.EmbeddingText())
			s.store.SetEmbedding(a.ID, vec)
		}

		sim, err := CosineSimilarity(queryVec, vec)
		if err != nil {
			return nil, err
		}
		scored = append(scored, ScoredActivity{Activity: a, SemanticScore: sim})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].SemanticScore > scored[j].SemanticScore
	})
	return scored, nil
}

// lexicalRank scores by weighted substring containment of the
// lowercased query and drops activities that match nowhere.
func lexicalRank(items []catalog.Activity, query string) []ScoredActivity {
	queryLower := strings.ToLower(query)

	scored := make([]ScoredActivity, 0, len(items))
	for _, a := range items {
		score := lexicalScore(a, queryLower)
		if score == 0 {
			continue
		}
		scored = append(scored, ScoredActivity{Activity: a, LexicalScore: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].LexicalScore > scored[j].LexicalScore
	})
	return scored
}

func lexicalScore(a catalog.Activity, queryLower string) float64 {
	var score float64
	if strings.Contains(strings.ToLower(a.Name), queryLower) {
		score += weightName
	}
	if strings.Contains(strings.ToLower(a.Description), queryLower) {
		score += weightDescription
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), queryLower) {
			score += weightTag
		}
	}
	if strings.Contains(strings.ToLower(a.PedagogicalValue), queryLower) {
		score += weightPedagogicalValue
	}
	for _, material := range a.Materials {
		if strings.Contains(strings.ToLower(material), queryLower) {
			score += weightMaterial
		}
	}
	return score
}

func tagsIntersect(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}
