package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (GUSP_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: GUSP_PORT -> port, etc.
	if err := k.Load(env.Provider("GUSP_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "GUSP_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}

	if c.EmbeddingDimensions <= 0 {
		return fmt.Errorf("embedding_dimensions must be positive")
	}

	if c.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be positive")
	}

	if c.EnableChat && c.ChatDeployment == "" {
		return fmt.Errorf("chat_deployment is required when chat is enabled")
	}

	// An endpoint without a key (or vice versa) is a half-configured
	// deployment and almost certainly a mistake.
	if (c.AzureOpenAIEndpoint == "") != (c.AzureOpenAIAPIKey == "") {
		return fmt.Errorf("azure_openai_endpoint and azure_openai_api_key must be set together")
	}

	return nil
}

// AzureConfigured reports whether both Azure OpenAI credentials are present.
func (c *Config) AzureConfigured() bool {
	return c.AzureOpenAIEndpoint != "" && c.AzureOpenAIAPIKey != ""
}
