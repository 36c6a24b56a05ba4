package knowledge

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/config"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/llm"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	gateway := llm.NewGateway(config.DefaultConfig(), zerolog.Nop())
	return NewService(context.Background(), gateway, zerolog.Nop())
}

func TestLookupKeywordMatch(t *testing.T) {
	s := newTestService(t)

	ans := s.Lookup(context.Background(), "Was sind die Pfadfindergesetze?", true)
	if !strings.Contains(ans.Answer, "Grundregeln") {
		t.Errorf("expected the laws answer, got %q", ans.Answer)
	}
	if len(ans.Sources) != 1 || ans.Sources[0] != "Pfadfinder Grundlagen" {
		t.Errorf("unexpected sources: %v", ans.Sources)
	}
	if !ans.AgeAppropriate {
		t.Error("age_appropriate flag must be echoed")
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	s := newTestService(t)

	ans := s.Lookup(context.Background(), "WAS BEDEUTET ALLZEIT BEREIT?", false)
	if !strings.Contains(ans.Answer, "Wahlspruch") {
		t.Errorf("expected the motto answer, got %q", ans.Answer)
	}
}

func TestLookupGenericFallback(t *testing.T) {
	s := newTestService(t)

	ans := s.Lookup(context.Background(), "Wie repariere ich mein Fahrrad?", false)
	if ans.Answer != genericAnswer {
		t.Errorf("expected the generic answer, got %q", ans.Answer)
	}
	if len(ans.Sources) == 0 {
		t.Error("even the generic answer must cite a source")
	}
}

func TestLookupGuSpEntry(t *testing.T) {
	s := newTestService(t)

	ans := s.Lookup(context.Background(), "Erzähl mir etwas über GuSp", true)
	if !strings.Contains(ans.Answer, "Patrullen") {
		t.Errorf("expected the GuSp answer, got %q", ans.Answer)
	}
}
