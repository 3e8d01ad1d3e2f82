package docs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultConfigPath is where the doc-quality settings live unless overridden.
const DefaultConfigPath = "scripts/doc_quality.toml"

// Config controls the documentation quality checks.
type Config struct {
	MinLength           int      `mapstructure:"min_length"`
	RequiredSections    []string `mapstructure:"required_sections"`
	SupportedLanguages  []string `mapstructure:"supported_languages"`
	CodeExampleRequired bool     `mapstructure:"code_example_required"`
	ImageRequired       bool     `mapstructure:"image_required"`
}

func DefaultConfig() Config {
	return Config{
		MinLength:           100,
		RequiredSections:    []string{"Installation", "Usage", "Configuration"},
		SupportedLanguages:  []string{"en", "de", "it", "es"},
		CodeExampleRequired: true,
		ImageRequired:       false,
	}
}

func (c Config) supportsLanguage(lang string) bool {
	for _, l := range c.SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// LoadConfig reads the TOML settings file at path. A missing file is replaced
// by a freshly written default config, mirroring first-run behavior.
func LoadConfig(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := writeConfig(path, cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("failed to read doc config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse doc config %s: %w", path, err)
	}

	return cfg, nil
}

func writeConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.Set("min_length", cfg.MinLength)
	v.Set("required_sections", cfg.RequiredSections)
	v.Set("supported_languages", cfg.SupportedLanguages)
	v.Set("code_example_required", cfg.CodeExampleRequired)
	v.Set("image_required", cfg.ImageRequired)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write default doc config: %w", err)
	}

	return nil
}
