package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mj1618/wintree/internal/wm"
	"gopkg.in/yaml.v3"
)

// Config is the user configuration read from config.yaml.
type Config struct {
	// IgnoreClasses replaces the default ignore-list when set. An explicit
	// empty list disables class filtering.
	IgnoreClasses []string `yaml:"ignore_classes"`
	// ExtraIgnoreClasses is appended to the ignore-list.
	ExtraIgnoreClasses []string `yaml:"extra_ignore_classes"`
	MaxSiblings        int      `yaml:"max_siblings"`
	CacheTTLMs         int      `yaml:"cache_ttl_ms"`
}

// DefaultCacheTTLMs is the MCP listing cache TTL used when none is configured.
const DefaultCacheTTLMs = 500

func DefaultConfig() *Config {
	return &Config{
		MaxSiblings: wm.DefaultMaxSiblings,
		CacheTTLMs:  DefaultCacheTTLMs,
	}
}

func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, "wintree", "config.yaml"), nil
}

// Load reads the configuration at the default location. A missing file
// yields the defaults.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path, true)
}

// LoadFromPath reads the configuration at path. When optional is set a
// missing file yields the defaults.
func LoadFromPath(path string, optional bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MaxSiblings < 0 {
		return fmt.Errorf("max_siblings must be >= 0, got %d", c.MaxSiblings)
	}
	if c.CacheTTLMs < 0 {
		return fmt.Errorf("cache_ttl_ms must be >= 0, got %d", c.CacheTTLMs)
	}
	return nil
}

// IgnoreList builds the class ignore-list described by c.
func (c *Config) IgnoreList() *wm.IgnoreList {
	var l *wm.IgnoreList
	if c.IgnoreClasses != nil {
		l = wm.NewIgnoreList(c.IgnoreClasses...)
	} else {
		l = wm.DefaultIgnoreList()
	}
	l.Add(c.ExtraIgnoreClasses...)
	return l
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMs) * time.Millisecond
}

// QueryOptions returns the wm options for c.
func (c *Config) QueryOptions(logger *slog.Logger) wm.Options {
	return wm.Options{
		Ignore:      c.IgnoreList(),
		MaxSiblings: c.MaxSiblings,
		Logger:      logger,
	}
}
