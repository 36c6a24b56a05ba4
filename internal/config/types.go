package config

// Location identifies where an activity or Heimstunde takes place.
type Location string

const (
	LocationIndoor  Location = "indoor"
	LocationOutdoor Location = "outdoor"
	LocationBoth    Location = "both"
)

// Config is the top-level assistant configuration, corresponding to .gusp.yml.
type Config struct {
	Port         int  `yaml:"port" koanf:"port"`
	AllowAllCORS bool `yaml:"allow_all_cors" koanf:"allow_all_cors"`

	// Azure OpenAI. Chat runs in degraded fallback mode when endpoint or
	// API key are absent.
	AzureOpenAIEndpoint string `yaml:"azure_openai_endpoint" koanf:"azure_openai_endpoint"`
	AzureOpenAIAPIKey   string `yaml:"azure_openai_api_key" koanf:"azure_openai_api_key"`
	ChatDeployment      string `yaml:"chat_deployment" koanf:"chat_deployment"`
	EmbeddingDeployment string `yaml:"embedding_deployment" koanf:"embedding_deployment"`
	EmbeddingDimensions int    `yaml:"embedding_dimensions" koanf:"embedding_dimensions"`

	// Feature toggles, checked at the HTTP boundary.
	EnableChat       bool `yaml:"enable_chat" koanf:"enable_chat"`
	EnableGameSearch bool `yaml:"enable_game_search" koanf:"enable_game_search"`
	EnablePlanning   bool `yaml:"enable_planning" koanf:"enable_planning"`

	// HistoryLimit caps the number of stored messages per conversation.
	HistoryLimit int `yaml:"history_limit" koanf:"history_limit"`

	// CatalogFile points at a YAML activity catalog. Empty means the
	// built-in seed catalog.
	CatalogFile string `yaml:"catalog_file" koanf:"catalog_file"`
}
