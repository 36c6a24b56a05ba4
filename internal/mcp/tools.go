package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchGamesTool defines the search_games MCP tool.
var searchGamesTool = mcp.NewTool("search_games",
	mcp.WithDescription("Sucht nach Spielen und Aktivitäten basierend auf Kriterien wie Teilnehmeranzahl, Dauer oder Thema."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Suchbegriff für Spiele (z.B. 'Teambuilding', 'Vertrauen', 'Outdoor')"),
	),
	mcp.WithNumber("duration_max",
		mcp.Description("Maximale Dauer in Minuten"),
	),
	mcp.WithNumber("participant_count",
		mcp.Description("Anzahl der Teilnehmer"),
	),
	mcp.WithString("location",
		mcp.Description("Wo das Spiel stattfinden soll"),
		mcp.Enum("indoor", "outdoor", "both"),
	),
	mcp.WithString("age_group",
		mcp.Description("Altersgruppe (z.B. '10-13')"),
	),
)

// createHeimstundePlanTool defines the create_heimstunde_plan MCP tool.
var createHeimstundePlanTool = mcp.NewTool("create_heimstunde_plan",
	mcp.WithDescription("Erstellt einen strukturierten Plan für eine Heimstunde."),
	mcp.WithNumber("duration",
		mcp.Required(),
		mcp.Description("Gesamtdauer in Minuten"),
	),
	mcp.WithNumber("participant_count",
		mcp.Required(),
		mcp.Description("Anzahl der Teilnehmer"),
	),
	mcp.WithString("theme",
		mcp.Description("Thema der Heimstunde (z.B. 'Freundschaft', 'Mut', 'Teamwork')"),
	),
	mcp.WithString("location",
		mcp.Description("Wo die Heimstunde stattfindet"),
		mcp.Enum("indoor", "outdoor", "flexible"),
	),
)

// pfadfinderKnowledgeTool defines the get_pfadfinder_knowledge MCP tool.
var pfadfinderKnowledgeTool = mcp.NewTool("get_pfadfinder_knowledge",
	mcp.WithDescription("Beantwortet Fragen zum Pfadfinderwissen, Gesetzen, Traditionen und pädagogischen Konzepten."),
	mcp.WithString("question",
		mcp.Required(),
		mcp.Description("Die Frage zum Pfadfinderwissen"),
	),
	mcp.WithBoolean("age_appropriate",
		mcp.Description("Ob die Antwort für Kinder (10-13 Jahre) aufbereitet werden soll"),
	),
)
