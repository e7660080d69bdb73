package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
	"sutext.github.io/difio/coder"
	"sutext.github.io/difio/xerr"
	"sutext.github.io/difio/xlog"
)

type config struct {
	LogLevel  string `yaml:"logLevel"`
	LogFormat string `yaml:"logFormat"`
	MaxCount  uint32 `yaml:"maxCount"`
	Strict    bool   `yaml:"strict"`
}

func defaultConfig() *config {
	return &config{
		LogLevel:  "info",
		LogFormat: "text",
		MaxCount:  coder.DefaultMaxCount,
	}
}

// readConfig loads path over the defaults. An empty path yields the defaults.
func readConfig(path string) (*config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", xerr.InvalidConfig, path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", xerr.InvalidConfig, path, err)
	}
	return cfg, nil
}

func (c *config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logLevel %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown logFormat %q", c.LogFormat)
	}
	if c.MaxCount == 0 {
		return fmt.Errorf("maxCount must be positive")
	}
	return nil
}

func (c *config) Level() slog.Level {
	return xlog.ParseLevel(c.LogLevel)
}

func (c *config) Logger() *xlog.Logger {
	if c.LogFormat == "json" {
		return xlog.NewJSON(c.Level())
	}
	return xlog.NewText(c.Level())
}

func (c *config) CoderOptions(logger *xlog.Logger) []coder.Option {
	return []coder.Option{
		coder.WithMaxCount(c.MaxCount),
		coder.WithStrict(c.Strict),
		coder.WithLogger(logger),
	}
}
