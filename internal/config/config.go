// Package config loads tokpatch configuration from a YAML file and
// fills in defaults for anything left unset.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jacobmentalconstruct/tokpatch/internal/prompt"
)

type Config struct {
	Ollama struct {
		BaseURL        string `yaml:"base_url"`
		Model          string `yaml:"model"`
		TimeoutSeconds int    `yaml:"timeout_seconds"` // per AI call, retries included
	} `yaml:"ollama"`

	Prompts struct {
		FixPatch  string `yaml:"fix_patch"`
		FixIndent string `yaml:"fix_indent"`
		AskAI     string `yaml:"ask_ai"`
	} `yaml:"prompts"`

	Output struct {
		Dir             string `yaml:"dir"`
		DefaultFilename string `yaml:"default_filename"`
		VersionSuffix   string `yaml:"version_suffix"`
	} `yaml:"output"`

	Log struct {
		File string `yaml:"file"` // empty disables file logging
	} `yaml:"log"`
}

// Default returns a Config with every field at its built-in default.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the YAML file at path. A missing file is not an error; the
// defaults are returned instead.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Ollama.BaseURL == "" {
		c.Ollama.BaseURL = "http://localhost:11434"
	}
	if c.Ollama.Model == "" {
		c.Ollama.Model = "qwen2.5-coder:7b"
	}
	if c.Ollama.TimeoutSeconds == 0 {
		c.Ollama.TimeoutSeconds = 120
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "patched_outputs"
	}
	if c.Output.DefaultFilename == "" {
		c.Output.DefaultFilename = "patched_file.txt"
	}
	if c.Output.VersionSuffix == "" {
		c.Output.VersionSuffix = "_v2"
	}
}

// Timeout returns the per-call AI timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Ollama.TimeoutSeconds) * time.Second
}

// SystemPrompt returns the configured system prompt for a task, falling
// back to the built-in default when the config leaves it empty.
func (c *Config) SystemPrompt(task prompt.Task) string {
	var override string
	switch task {
	case prompt.TaskFixPatch:
		override = c.Prompts.FixPatch
	case prompt.TaskFixIndent:
		override = c.Prompts.FixIndent
	case prompt.TaskAsk:
		override = c.Prompts.AskAI
	}
	if override != "" {
		return override
	}
	return prompt.Defaults[task]
}
