package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jacobmentalconstruct/tokpatch/internal/prompt"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Ollama.BaseURL != "http://localhost:11434" {
		t.Errorf("BaseURL = %q", cfg.Ollama.BaseURL)
	}
	if cfg.Output.VersionSuffix != "_v2" {
		t.Errorf("VersionSuffix = %q", cfg.Output.VersionSuffix)
	}
	if cfg.Timeout() != 120*time.Second {
		t.Errorf("Timeout() = %v", cfg.Timeout())
	}
}

func TestLoadOverridesAndBackfills(t *testing.T) {
	path := writeConfig(t, `
ollama:
  base_url: http://gpu-box:11434
  model: llama3:8b
output:
  version_suffix: _patched
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Ollama.BaseURL != "http://gpu-box:11434" {
		t.Errorf("BaseURL = %q", cfg.Ollama.BaseURL)
	}
	if cfg.Ollama.Model != "llama3:8b" {
		t.Errorf("Model = %q", cfg.Ollama.Model)
	}
	if cfg.Output.VersionSuffix != "_patched" {
		t.Errorf("VersionSuffix = %q", cfg.Output.VersionSuffix)
	}
	// Untouched sections still get defaults.
	if cfg.Ollama.TimeoutSeconds != 120 {
		t.Errorf("TimeoutSeconds = %d, want 120", cfg.Ollama.TimeoutSeconds)
	}
	if cfg.Output.DefaultFilename != "patched_file.txt" {
		t.Errorf("DefaultFilename = %q", cfg.Output.DefaultFilename)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "ollama: [not a mapping")
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on invalid YAML")
	}
}

func TestSystemPrompt(t *testing.T) {
	cfg := Default()

	t.Run("default", func(t *testing.T) {
		got := cfg.SystemPrompt(prompt.TaskFixIndent)
		if got != prompt.Defaults[prompt.TaskFixIndent] {
			t.Errorf("SystemPrompt = %q", got)
		}
	})

	t.Run("override", func(t *testing.T) {
		cfg.Prompts.FixIndent = "custom indent prompt"
		if got := cfg.SystemPrompt(prompt.TaskFixIndent); got != "custom indent prompt" {
			t.Errorf("SystemPrompt = %q", got)
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		if got := cfg.SystemPrompt(prompt.Task("bogus")); got != "" {
			t.Errorf("SystemPrompt = %q, want empty", got)
		}
	})
}
