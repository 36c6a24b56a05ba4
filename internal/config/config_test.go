package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Port)
	}
	if cfg.ChatDeployment != DefaultChatDeployment {
		t.Errorf("expected default chat deployment %q, got %q", DefaultChatDeployment, cfg.ChatDeployment)
	}
	if cfg.EmbeddingDimensions != DefaultEmbeddingDimensions {
		t.Errorf("expected default embedding dimensions %d, got %d", DefaultEmbeddingDimensions, cfg.EmbeddingDimensions)
	}
	if cfg.HistoryLimit != 50 {
		t.Errorf("expected default history limit 50, got %d", cfg.HistoryLimit)
	}
	if !cfg.EnableChat || !cfg.EnableGameSearch || !cfg.EnablePlanning {
		t.Error("expected all features enabled by default")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.gusp.yml")

	original := DefaultConfig()
	original.Port = 9001
	original.ChatDeployment = "gpt-4o"
	original.EnablePlanning = false
	original.CatalogFile = "games.yml"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.ChatDeployment != original.ChatDeployment {
		t.Errorf("chat_deployment: got %q, want %q", loaded.ChatDeployment, original.ChatDeployment)
	}
	if loaded.EnablePlanning != original.EnablePlanning {
		t.Errorf("enable_planning: got %t, want %t", loaded.EnablePlanning, original.EnablePlanning)
	}
	if loaded.CatalogFile != original.CatalogFile {
		t.Errorf("catalog_file: got %q, want %q", loaded.CatalogFile, original.CatalogFile)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8000 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	os.Setenv("GUSP_PORT", "9999")
	defer os.Unsetenv("GUSP_PORT")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 9999 {
		t.Errorf("env override failed: got %d, want 9999", loaded.Port)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalidPort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for port 0")
	}
	cfg.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for port 70000")
	}
}

func TestValidateInvalidDimensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EmbeddingDimensions = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero embedding_dimensions")
	}
}

func TestValidateMissingChatDeployment(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChatDeployment = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty chat_deployment with chat enabled")
	}

	// With chat disabled the deployment may be empty.
	cfg.EnableChat = false
	if err := cfg.Validate(); err != nil {
		t.Errorf("chat disabled should allow empty chat_deployment, got: %v", err)
	}
}

func TestValidateHalfConfiguredAzure(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AzureOpenAIEndpoint = "https://example.openai.azure.com"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for endpoint without api key")
	}

	cfg.AzureOpenAIAPIKey = "secret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("endpoint plus key should be valid, got: %v", err)
	}
}

func TestAzureConfigured(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.AzureConfigured() {
		t.Error("expected AzureConfigured false with no credentials")
	}
	cfg.AzureOpenAIEndpoint = "https://example.openai.azure.com"
	cfg.AzureOpenAIAPIKey = "secret"
	if !cfg.AzureConfigured() {
		t.Error("expected AzureConfigured true with both credentials")
	}
}
