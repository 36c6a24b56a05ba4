package config

// Default deployment names match the original Azure resource layout.
const (
	DefaultChatDeployment      = "gpt-4"
	DefaultEmbeddingDeployment = "text-embedding-ada-002"

	// DefaultEmbeddingDimensions is the vector length of ada-002.
	// Every catalog and query embedding carries exactly this length.
	DefaultEmbeddingDimensions = 1536
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:                8000,
		ChatDeployment:      DefaultChatDeployment,
		EmbeddingDeployment: DefaultEmbeddingDeployment,
		EmbeddingDimensions: DefaultEmbeddingDimensions,
		EnableChat:          true,
		EnableGameSearch:    true,
		EnablePlanning:      true,
		HistoryLimit:        50,
	}
}
