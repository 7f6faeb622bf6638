package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

// DefaultPath is the config file looked up when no --config flag is given.
const DefaultPath = "statement-extractor.yaml"

// Config represents the top-level statement-extractor.yaml configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Cards  []Card       `yaml:"cards,omitempty"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr         string `yaml:"addr"`
	MaxUploadMiB int    `yaml:"max_upload_mib"`
	StaticDir    string `yaml:"static_dir,omitempty"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	JSON  bool   `yaml:"json"`
}

// Card maps a card or account the user owns to the layout its bank prints.
type Card struct {
	Name        string `yaml:"name"`
	ImportModel string `yaml:"import_model"`
}

// Load reads a statement-extractor.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads path, returning defaults when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8080",
			MaxUploadMiB: 32,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that every card names a known import model.
func (c *Config) Validate() error {
	seen := make(map[string]bool)
	for _, card := range c.Cards {
		key := strings.ToLower(card.Name)
		if key == "" {
			return fmt.Errorf("card with import model %q has no name", card.ImportModel)
		}
		if seen[key] {
			return fmt.Errorf("duplicate card %q", card.Name)
		}
		seen[key] = true
		if _, ok := models.ParseImportModel(card.ImportModel); !ok {
			return fmt.Errorf("card %q: unknown import model %q", card.Name, card.ImportModel)
		}
	}
	return nil
}

// ModelForCard returns the import model configured for a card name.
func (c *Config) ModelForCard(name string) (string, bool) {
	for _, card := range c.Cards {
		if strings.EqualFold(card.Name, name) {
			return card.ImportModel, true
		}
	}
	return "", false
}
