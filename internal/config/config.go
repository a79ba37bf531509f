// Package config loads application configuration from an optional YAML
// file with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all aula configuration.
type Config struct {
	Classifier ClassifierConfig `yaml:"classifier"`
	Engine     EngineConfig     `yaml:"engine"`
	Server     ServerConfig     `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ClassifierConfig selects and configures the sentiment classifier backend.
type ClassifierConfig struct {
	Backend   string `yaml:"backend"` // "remote" or "onnx"
	URL       string `yaml:"url"`
	ModelPath string `yaml:"model_path"`
	VocabPath string `yaml:"vocab_path"`
}

// EngineConfig holds analysis engine settings.
type EngineConfig struct {
	Validity       string `yaml:"validity"` // "placeholder-set" or "min-length"
	MinLength      int    `yaml:"min_length"`
	DictionaryPath string `yaml:"dictionary_path"` // empty = built-in dictionary
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string `yaml:"port"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no file or overrides are set.
func Default() Config {
	return Config{
		Classifier: ClassifierConfig{
			Backend:   "remote",
			URL:       "http://localhost:8500",
			ModelPath: "models/sentiment.onnx",
			VocabPath: "models/vocab.txt",
		},
		Engine: EngineConfig{
			Validity:  "placeholder-set",
			MinLength: 3,
		},
		Server: ServerConfig{
			Port: "8080",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration: defaults, then the YAML file at path (skipped
// when path is empty), then AULA_* environment variable overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.Classifier.Backend = getenv("AULA_CLASSIFIER", cfg.Classifier.Backend)
	cfg.Classifier.URL = getenv("AULA_CLASSIFIER_URL", cfg.Classifier.URL)
	cfg.Classifier.ModelPath = getenv("AULA_MODEL_PATH", cfg.Classifier.ModelPath)
	cfg.Classifier.VocabPath = getenv("AULA_VOCAB_PATH", cfg.Classifier.VocabPath)
	cfg.Engine.Validity = getenv("AULA_VALIDITY", cfg.Engine.Validity)
	cfg.Engine.MinLength = getenvInt("AULA_MIN_LENGTH", cfg.Engine.MinLength)
	cfg.Engine.DictionaryPath = getenv("AULA_DICTIONARY", cfg.Engine.DictionaryPath)
	cfg.Server.Port = getenv("AULA_PORT", cfg.Server.Port)
	cfg.Logging.Level = getenv("AULA_LOG_LEVEL", cfg.Logging.Level)

	if cfg.Classifier.Backend != "remote" && cfg.Classifier.Backend != "onnx" {
		return Config{}, fmt.Errorf("config: unknown classifier backend %q", cfg.Classifier.Backend)
	}
	if cfg.Engine.Validity != "placeholder-set" && cfg.Engine.Validity != "min-length" {
		return Config{}, fmt.Errorf("config: unknown validity policy %q", cfg.Engine.Validity)
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
