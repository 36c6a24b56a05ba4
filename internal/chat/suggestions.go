package chat

import (
	"strings"

	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/search"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/tools"
)

const maxSuggestions = 4

// SuggestedAction is one follow-up the client can offer the user.
type SuggestedAction struct {
	Text   string         `json:"text"`
	Action string         `json:"action"`
	Data   map[string]any `json:"data"`
}

// suggestedActions derives up to four follow-up actions: data-driven
// ones when a tool produced structured data, otherwise static ones
// keyed on the message content.
func suggestedActions(data tools.Result, userMessage string) []SuggestedAction {
	var actions []SuggestedAction

	if data != nil && !data.IsError() {
		if games, ok := data["games"].([]search.ScoredActivity); ok && len(games) > 0 {
			reference := games
			if len(reference) > 2 {
				reference = reference[:2]
			}
			actions = append(actions,
				SuggestedAction{
					Text:   "📋 Heimstunde mit diesen Spielen planen",
					Action: "create_plan",
					Data:   map[string]any{"suggested_games": games},
				},
				SuggestedAction{
					Text:   "🔍 Ähnliche Spiele suchen",
					Action: "search_similar",
					Data:   map[string]any{"reference_games": reference},
				},
			)
		}

		if planID, ok := data["plan_id"].(string); ok && planID != "" {
			actions = append(actions,
				SuggestedAction{
					Text:   "📄 Plan als PDF exportieren",
					Action: "export_plan",
					Data:   map[string]any{"plan_id": planID},
				},
				SuggestedAction{
					Text:   "✏️ Plan anpassen",
					Action: "modify_plan",
					Data:   map[string]any{"plan_id": planID},
				},
			)
		}
	}

	// Static suggestions only when nothing data-driven applied.
	if len(actions) == 0 {
		messageLower := strings.ToLower(userMessage)
		if strings.Contains(messageLower, "spiel") || strings.Contains(messageLower, "aktivität") {
			actions = append(actions, SuggestedAction{
				Text:   "🎯 Spiele suchen",
				Action: "search_games",
				Data:   map[string]any{},
			})
		}
		actions = append(actions,
			SuggestedAction{
				Text:   "📅 Heimstunde planen",
				Action: "plan_heimstunde",
				Data:   map[string]any{},
			},
			SuggestedAction{
				Text:   "❓ Pfadfinderfrage stellen",
				Action: "ask_knowledge",
				Data:   map[string]any{},
			},
		)
	}

	if len(actions) > maxSuggestions {
		actions = actions[:maxSuggestions]
	}
	return actions
}
