package tools

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/knowledge"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/llm"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/search"
)

// Tool names requestable by the model.
const (
	ToolSearchGames          = "search_games"
	ToolCreateHeimstundePlan = "create_heimstunde_plan"
	ToolPfadfinderKnowledge  = "get_pfadfinder_knowledge"
)

// Param describes one tool parameter in the schema exposed to the
// model.
type Param struct {
	Type        string
	Description string
	Required    bool
	Enum        []string
}

// Descriptor describes a registered tool. Descriptors are immutable
// once registered.
type Descriptor struct {
	Name        string
	Description string
	Parameters  map[string]Param
}

// Registry holds the fixed set of tools the model may request. The
// model never invokes a tool directly; it only asks, and Dispatch
// executes.
type Registry struct {
	search      *search.Service
	knowledge   *knowledge.Service
	descriptors []Descriptor
	logger      zerolog.Logger
}

// NewRegistry creates the registry over the three domain tools.
func NewRegistry(searchSvc *search.Service, knowledgeSvc *knowledge.Service, logger zerolog.Logger) *Registry {
	return &Registry{
		search:      searchSvc,
		knowledge:   knowledgeSvc,
		descriptors: descriptors,
		logger:      logger,
	}
}

// Descriptors returns the registered tool descriptors.
func (r *Registry) Descriptors() []Descriptor {
	return r.descriptors
}

// Definitions renders the descriptors in the JSON-schema form the
// completion API expects.
func (r *Registry) Definitions() []llm.ToolDefinition {
	defs := make([]llm.ToolDefinition, 0, len(r.descriptors))
	for _, d := range r.descriptors {
		properties := make(map[string]any, len(d.Parameters))
		var required []string
		for name, p := range d.Parameters {
			prop := map[string]any{
				"type":        p.Type,
				"description": p.Description,
			}
			if len(p.Enum) > 0 {
				prop["enum"] = p.Enum
			}
			if p.Type == "array" {
				prop["items"] = map[string]any{"type": "string"}
			}
			properties[name] = prop
			if p.Required {
				required = append(required, name)
			}
		}
		sort.Strings(required)

		defs = append(defs, llm.ToolDefinition{
			Name:        d.Name,
			Description: d.Description,
			Parameters: map[string]any{
				"type":       "object",
				"properties": properties,
				"required":   required,
			},
		})
	}
	return defs
}

var descriptors = []Descriptor{
	{
		Name:        ToolSearchGames,
		Description: "Sucht nach Spielen und Aktivitäten basierend auf Kriterien wie Teilnehmeranzahl, Dauer oder Thema",
		Parameters: map[string]Param{
			"query": {
				Type:        "string",
				Description: "Suchbegriff für Spiele (z.B. 'Teambuilding', 'Vertrauen', 'Outdoor')",
				Required:    true,
			},
			"duration_max": {
				Type:        "integer",
				Description: "Maximale Dauer in Minuten",
			},
			"participant_count": {
				Type:        "integer",
				Description: "Anzahl der Teilnehmer",
			},
			"location": {
				Type:        "string",
				Description: "Wo das Spiel stattfinden soll",
				Enum:        []string{"indoor", "outdoor", "both"},
			},
			"age_group": {
				Type:        "string",
				Description: "Altersgruppe (z.B. '10-13')",
			},
		},
	},
	{
		Name:        ToolCreateHeimstundePlan,
		Description: "Erstellt einen strukturierten Plan für eine Heimstunde",
		Parameters: map[string]Param{
			"theme": {
				Type:        "string",
				Description: "Thema der Heimstunde (z.B. 'Freundschaft', 'Mut', 'Teamwork')",
			},
			"duration": {
				Type:        "integer",
				Description: "Gesamtdauer in Minuten",
				Required:    true,
			},
			"participant_count": {
				Type:        "integer",
				Description: "Anzahl der Teilnehmer",
				Required:    true,
			},
			"location": {
				Type:        "string",
				Description: "Wo die Heimstunde stattfindet",
				Enum:        []string{"indoor", "outdoor", "flexible"},
			},
			"pedagogical_goals": {
				Type:        "array",
				Description: "Pädagogische Ziele (z.B. 'Teambuilding', 'Kreativität', 'Kommunikation')",
			},
		},
	},
	{
		Name:        ToolPfadfinderKnowledge,
		Description: "Beantwortet Fragen zum Pfadfinderwissen, Gesetzen, Traditionen und pädagogischen Konzepten",
		Parameters: map[string]Param{
			"question": {
				Type:        "string",
				Description: "Die Frage zum Pfadfinderwissen",
				Required:    true,
			},
			"age_appropriate": {
				Type:        "boolean",
				Description: "Ob die Antwort für Kinder (10-13 Jahre) aufbereitet werden soll",
			},
		},
	},
}
