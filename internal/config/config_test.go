package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"AULA_CLASSIFIER", "AULA_CLASSIFIER_URL", "AULA_MODEL_PATH",
		"AULA_VOCAB_PATH", "AULA_VALIDITY", "AULA_MIN_LENGTH",
		"AULA_DICTIONARY", "AULA_PORT", "AULA_LOG_LEVEL",
	} {
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Classifier.Backend != "remote" {
		t.Errorf("default backend = %q, want remote", cfg.Classifier.Backend)
	}
	if cfg.Engine.Validity != "placeholder-set" {
		t.Errorf("default validity = %q, want placeholder-set", cfg.Engine.Validity)
	}
	if cfg.Engine.MinLength != 3 {
		t.Errorf("default min length = %d, want 3", cfg.Engine.MinLength)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("default port = %q, want 8080", cfg.Server.Port)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "aula.yaml")
	content := `classifier:
  backend: onnx
  model_path: /opt/models/sentiment.onnx
engine:
  validity: min-length
  min_length: 4
server:
  port: "9000"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Classifier.Backend != "onnx" {
		t.Errorf("backend = %q, want onnx", cfg.Classifier.Backend)
	}
	if cfg.Classifier.ModelPath != "/opt/models/sentiment.onnx" {
		t.Errorf("model path = %q", cfg.Classifier.ModelPath)
	}
	if cfg.Engine.Validity != "min-length" || cfg.Engine.MinLength != 4 {
		t.Errorf("engine = %+v", cfg.Engine)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("port = %q, want 9000", cfg.Server.Port)
	}
	// Unset file fields keep defaults.
	if cfg.Classifier.URL == "" {
		t.Error("expected default classifier URL to survive partial file")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	os.Setenv("AULA_CLASSIFIER_URL", "http://sentiment:9100")
	os.Setenv("AULA_MIN_LENGTH", "5")
	defer clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Classifier.URL != "http://sentiment:9100" {
		t.Errorf("url = %q", cfg.Classifier.URL)
	}
	if cfg.Engine.MinLength != 5 {
		t.Errorf("min length = %d, want 5", cfg.Engine.MinLength)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	clearEnv(t)
	os.Setenv("AULA_CLASSIFIER", "bogus")
	defer clearEnv(t)

	if _, err := Load(""); err == nil {
		t.Fatal("expected error for unknown backend, got nil")
	}
}

func TestLoadRejectsUnknownValidity(t *testing.T) {
	clearEnv(t)
	os.Setenv("AULA_VALIDITY", "bogus")
	defer clearEnv(t)

	if _, err := Load(""); err == nil {
		t.Fatal("expected error for unknown validity policy, got nil")
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file, got nil")
	}
}
