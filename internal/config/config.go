package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	API   APIConfig   `yaml:"api"`
	State StateConfig `yaml:"state"`
}

type APIConfig struct {
	BaseURL    string `yaml:"base_url"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

type StateConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the configuration used when no config file exists: the
// local dev API and a state directory under the user's home.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = "http://localhost:3000"
	}
	if c.API.TimeoutSec == 0 {
		c.API.TimeoutSec = 30
	}
	if c.State.Dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.State.Dir = filepath.Join(home, ".treinolog")
		} else {
			c.State.Dir = ".treinolog"
		}
	}
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. Env vars use the prefix TREINOLOG_:
//
//	TREINOLOG_API_URL, TREINOLOG_API_TIMEOUT_SEC, TREINOLOG_STATE_DIR
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads path when it exists and falls back to Default (plus env
// overrides) when it does not, so the CLI runs without a config file.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := &Config{}
		applyEnvOverrides(cfg)
		cfg.applyDefaults()
		return cfg, nil
	}
	return Load(path)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TREINOLOG_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("TREINOLOG_API_TIMEOUT_SEC"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil {
			cfg.API.TimeoutSec = sec
		}
	}
	if v := os.Getenv("TREINOLOG_STATE_DIR"); v != "" {
		cfg.State.Dir = v
	}
}

func (c *Config) validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.API.TimeoutSec < 0 {
		return fmt.Errorf("api.timeout_sec must not be negative")
	}
	return nil
}
