package configuration

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// ErrInvalidConfig marks a fatal configuration problem. Callers abort before
// any probe runs when they see it.
var ErrInvalidConfig = errors.New("invalid configuration")

type ConfigReader struct {
	viper *viper.Viper
}

func NewConfigReader() *ConfigReader {
	return &ConfigReader{
		viper: viper.New(),
	}
}

// ReadFile loads the JSON configuration file at filePath.
func (cr *ConfigReader) ReadFile(filePath string) error {
	cr.viper.SetConfigFile(filePath)
	cr.viper.SetConfigType("json")

	if err := cr.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// ReadBytes loads a JSON configuration document from memory. Used by
// set-config and the config update API.
func (cr *ConfigReader) ReadBytes(data []byte) error {
	cr.viper.SetConfigType("json")

	if err := cr.viper.ReadConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Parse validates the loaded document and builds a Config. Both target lists
// must be present, every entry must be a string, and the timeout must be a
// positive number of seconds.
func (cr *ConfigReader) Parse() (Config, error) {
	var cfg Config

	websites, err := cr.stringList("websites")
	if err != nil {
		return Config{}, err
	}
	cfg.Websites = websites

	ntpServers, err := cr.stringList("ntp_servers")
	if err != nil {
		return Config{}, err
	}
	cfg.NTPServers = ntpServers

	if !cr.viper.IsSet("timeout") {
		cfg.Timeout = DefaultTimeout
		cfg.TimeoutSeconds = DefaultTimeout.Seconds()
		return cfg, nil
	}

	seconds, ok := asSeconds(cr.viper.Get("timeout"))
	if !ok || seconds <= 0 {
		return Config{}, fmt.Errorf("%w: timeout must be a positive number of seconds", ErrInvalidConfig)
	}

	cfg.TimeoutSeconds = seconds
	cfg.Timeout = time.Duration(seconds * float64(time.Second))

	return cfg, nil
}

func (cr *ConfigReader) stringList(key string) ([]string, error) {
	if !cr.viper.IsSet(key) {
		return nil, fmt.Errorf("%w: missing %q key", ErrInvalidConfig, key)
	}

	raw, ok := cr.viper.Get(key).([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q must be a list of strings", ErrInvalidConfig, key)
	}

	list := make([]string, 0, len(raw))
	for _, entry := range raw {
		s, ok := entry.(string)
		if !ok || s == "" {
			return nil, fmt.Errorf("%w: %q must contain non-empty strings", ErrInvalidConfig, key)
		}
		list = append(list, s)
	}

	return list, nil
}

func asSeconds(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Load reads and validates the configuration file in one step.
func Load(filePath string) (Config, error) {
	reader := NewConfigReader()
	if err := reader.ReadFile(filePath); err != nil {
		return Config{}, err
	}

	return reader.Parse()
}

// Update validates a JSON configuration document and writes it to filePath.
// Invalid documents are rejected without touching the file.
func Update(filePath string, data []byte) error {
	reader := NewConfigReader()
	if err := reader.ReadBytes(data); err != nil {
		return err
	}

	if _, err := reader.Parse(); err != nil {
		return err
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
