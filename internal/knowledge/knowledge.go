package knowledge

import (
	"context"
	"fmt"
	"strings"

	chromem "github.com/philippgille/chromem-go"
	"github.com/rs/zerolog"

	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/llm"
)

const (
	collectionName = "pfadfinderwissen"

	// minSimilarity gates semantic answers; below it the generic
	// fallback reads better than a wrong match.
	minSimilarity = 0.75
)

const genericAnswer = "Das ist eine interessante Frage zum Pfadfinderwissen. Für detaillierte Antworten benötige ich Zugang zur Wissensdatenbank."

// Answer is the result of a knowledge lookup.
type Answer struct {
	Answer         string   `json:"answer"`
	Sources        []string `json:"sources"`
	AgeAppropriate bool     `json:"age_appropriate"`
}

// Service answers Scout knowledge questions. Keyword matching against
// the built-in table always works; when the Gateway has an embedding
// capability, a chromem collection over the same entries catches
// paraphrased questions the keywords miss.
type Service struct {
	collection *chromem.Collection
	logger     zerolog.Logger
}

// NewService builds the knowledge service, seeding the semantic index
// when the Gateway is available. Index setup failures degrade to
// keyword-only lookup.
func NewService(ctx context.Context, gateway *llm.Gateway, logger zerolog.Logger) *Service {
	s := &Service{logger: logger}

	if !gateway.IsAvailable() {
		return s
	}

	db := chromem.NewDB()
	col, err := db.GetOrCreateCollection(collectionName, nil, embeddingFunc(gateway))
	if err != nil {
		logger.Warn().Err(err).Msg("knowledge index unavailable, using keyword lookup only")
		return s
	}

	docs := make([]chromem.Document, 0, len(entries))
	for i, e := range entries {
		docs = append(docs, chromem.Document{
			ID:       fmt.Sprintf("knowledge_%03d", i+1),
			Content:  e.Topic + ": " + e.Answer,
			Metadata: map[string]string{"source": e.Source},
		})
	}
	if err := col.AddDocuments(ctx, docs, 1); err != nil {
		logger.Warn().Err(err).Msg("seeding knowledge index failed, using keyword lookup only")
		return s
	}

	s.collection = col
	return s
}

// Lookup answers a question: exact keyword match first, then the
// semantic index, then the generic fallback. It never fails.
func (s *Service) Lookup(ctx context.Context, question string, ageAppropriate bool) Answer {
	questionLower := strings.ToLower(question)

	for _, e := range entries {
		for _, kw := range e.Keywords {
			if strings.Contains(questionLower, kw) {
				return Answer{
					Answer:         e.Answer,
					Sources:        []string{e.Source},
					AgeAppropriate: ageAppropriate,
				}
			}
		}
	}

	if s.collection != nil {
		if ans, ok := s.semanticLookup(ctx, question, ageAppropriate); ok {
			return ans
		}
	}

	return Answer{
		Answer:         genericAnswer,
		Sources:        []string{"Pfadfinder Grundlagen"},
		AgeAppropriate: ageAppropriate,
	}
}

func (s *Service) semanticLookup(ctx context.Context, question string, ageAppropriate bool) (Answer, bool) {
	limit := 1
	if s.collection.Count() == 0 {
		return Answer{}, false
	}

	results, err := s.collection.Query(ctx, question, limit, nil, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("knowledge index query failed")
		return Answer{}, false
	}
	if len(results) == 0 || results[0].Similarity < minSimilarity {
		return Answer{}, false
	}

	return Answer{
		Answer:         results[0].Content,
		Sources:        []string{results[0].Metadata["source"]},
		AgeAppropriate: ageAppropriate,
	}, true
}

// embeddingFunc adapts the Gateway to chromem. The Gateway signals
// failure with a zero vector, which chromem cannot normalize, so it is
// converted back into an error here.
func embeddingFunc(gateway *llm.Gateway) chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		vec := gateway.Embed(ctx, text)
		for _, v := range vec {
			if v != 0 {
				return vec, nil
			}
		}
		return nil, fmt.Errorf("embedding capability returned no signal")
	}
}
