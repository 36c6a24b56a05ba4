package llm

import (
	"fmt"
	"strings"
)

// fallbackResult produces the locally generated canned reply used when
// no remote completion capability is reachable. The reply is keyed on
// simple keyword groups in the last user message and is never empty.
func fallbackResult(userMessage string) *CompletionResult {
	lower := strings.ToLower(userMessage)

	var reply string
	switch {
	case containsAny(lower, "spiel", "game", "aktivität"):
		reply = "Ich kann dir beim Finden von Spielen helfen! Da ich momentan nicht mit Azure OpenAI verbunden bin, kann ich dir empfehlen, die Spielesuche zu verwenden, um passende Aktivitäten zu finden."
	case containsAny(lower, "plan", "heimstunde", "meeting"):
		reply = "Gerne helfe ich dir bei der Planung einer Heimstunde! Nutze die Planungsfunktion, um strukturierte Vorschläge zu erhalten."
	case containsAny(lower, "pfadfinder", "scout", "gesetz"):
		reply = "Als Pfadfinder-Assistent kann ich dir Informationen zur Pfadfinderbewegung geben. Für detaillierte Antworten benötige ich eine Verbindung zu Azure OpenAI."
	default:
		reply = fmt.Sprintf("Du hast gesagt: %q. Ich bin hier, um dir bei der Pfadfinderarbeit zu helfen! Konfiguriere Azure OpenAI für erweiterte KI-Funktionen.", userMessage)
	}

	return &CompletionResult{
		Content:    reply,
		IsFallback: true,
	}
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
