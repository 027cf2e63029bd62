package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type OpenRouter struct {
	APIKey    string `yaml:"api_key"`
	BaseURL   string `yaml:"base_url"`
	Model     string `yaml:"model"`
	TimeoutMs int    `yaml:"timeout"`
}

type Search struct {
	BaseURL    string `yaml:"base_url"`
	MaxResults int    `yaml:"max_results"`
}

type Config struct {
	OpenRouter   OpenRouter `yaml:"openrouter"`
	Search       Search     `yaml:"search"`
	SystemPrompt string     `yaml:"system_prompt"`
	ProjectRoot  string     `yaml:"project_root"`
}

// Load reads a YAML config file and applies defaults plus env overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.applyDefaults()

	env, err := LoadEnv()
	if err != nil {
		return nil, err
	}
	cfg.applyEnv(env)

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.OpenRouter.BaseURL == "" {
		c.OpenRouter.BaseURL = "https://openrouter.ai/api/v1"
	}
	if c.OpenRouter.TimeoutMs <= 0 {
		c.OpenRouter.TimeoutMs = int(30 * time.Second / time.Millisecond)
	}
	if c.Search.MaxResults <= 0 {
		c.Search.MaxResults = 5
	}
	if c.ProjectRoot == "" {
		c.ProjectRoot = "."
	}
}

// applyEnv lets environment variables win over file values.
func (c *Config) applyEnv(env *EnvVars) {
	if env.LLMApiKey != "" {
		c.OpenRouter.APIKey = env.LLMApiKey
	}
	if env.LLMBaseURL != "" {
		c.OpenRouter.BaseURL = env.LLMBaseURL
	}
	if env.LLMModel != "" {
		c.OpenRouter.Model = env.LLMModel
	}
	if env.ProjectRoot != "" {
		c.ProjectRoot = env.ProjectRoot
	}
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.OpenRouter.TimeoutMs) * time.Millisecond
}
