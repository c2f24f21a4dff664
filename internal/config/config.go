package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr         string        `yaml:"addr"`
	APITimeout   time.Duration `yaml:"timeout"`
	DatabasePath string        `yaml:"database_path"`
	Oracle       OracleConfig  `yaml:"oracle"`
}

// OracleConfig holds settings for the generative-model client. There is no
// retry or circuit-breaker knob: every failed call is terminal and is
// surfaced to the caller.
type OracleConfig struct {
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultOracleConfig returns a sensible default configuration.
func DefaultOracleConfig() OracleConfig {
	return OracleConfig{
		BaseURL: "http://localhost:11434",
		Model:   "llama3",
		Timeout: 60 * time.Second,
	}
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:         getEnv("PATHFINDER_ADDR", ":3001"),
		APITimeout:   15 * time.Second,
		DatabasePath: getEnv("PATHFINDER_DATABASE_PATH", "pathfinder.db"),
		Oracle:       DefaultOracleConfig(),
	}
	if v := os.Getenv("PATHFINDER_ORACLE_URL"); v != "" {
		cfg.Oracle.BaseURL = v
	}
	if v := os.Getenv("PATHFINDER_ORACLE_MODEL"); v != "" {
		cfg.Oracle.Model = v
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// WriteTimeout returns the server's response write timeout. AI handlers
// block inline on the oracle, so the timeout must cover a full model call
// plus headroom; plain CRUD requests finish well inside either bound.
func (c *Config) WriteTimeout() time.Duration {
	if t := c.Oracle.Timeout + 15*time.Second; t > c.APITimeout {
		return t
	}
	return c.APITimeout
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
