// Package config holds runtime configuration for luma, assembled from
// environment variables, flags, and an optional custom-colours file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted by WithEnvConfig.
const (
	EnvListenAddr  = "LUMA_LISTEN_ADDR"
	EnvColoursFile = "LUMA_COLOURS_FILE"
)

// DefaultListenAddr is where the HTTP API listens when nothing else is
// configured.
const DefaultListenAddr = "127.0.0.1:8321"

// Config is the assembled runtime configuration.
type Config struct {
	// ListenAddr is the address for the HTTP API ("host:port").
	ListenAddr string

	// ColoursFile is the path of the custom named-colours YAML file, if any.
	ColoursFile string

	// CustomColours maps user-defined colour names to hex values, loaded
	// from ColoursFile. Values are validated by colour.NewNormalizer, not
	// here.
	CustomColours map[string]string
}

// Builder assembles a Config. Later sources override earlier ones, so the
// conventional order is NewBuilder().WithEnvConfig().With...(flags).Build().
type Builder struct {
	cfg Config
}

// NewBuilder creates a Builder with defaults applied.
func NewBuilder() *Builder {
	return &Builder{cfg: Config{ListenAddr: DefaultListenAddr}}
}

// WithEnvConfig loads configuration from environment variables.
func (b *Builder) WithEnvConfig() *Builder {
	if addr := os.Getenv(EnvListenAddr); addr != "" {
		b.cfg.ListenAddr = addr
	}
	if path := os.Getenv(EnvColoursFile); path != "" {
		b.cfg.ColoursFile = path
	}
	return b
}

// WithListenAddr overrides the listen address. Empty means keep the current
// value, so flag defaults pass through harmlessly.
func (b *Builder) WithListenAddr(addr string) *Builder {
	if addr != "" {
		b.cfg.ListenAddr = addr
	}
	return b
}

// WithColoursFile overrides the custom-colours file path. Empty means keep
// the current value.
func (b *Builder) WithColoursFile(path string) *Builder {
	if path != "" {
		b.cfg.ColoursFile = path
	}
	return b
}

// Build finalises the configuration, loading the custom-colours file when
// one is set.
func (b *Builder) Build() (Config, error) {
	cfg := b.cfg

	if cfg.ColoursFile != "" {
		custom, err := loadColoursFile(cfg.ColoursFile)
		if err != nil {
			return Config{}, err
		}
		cfg.CustomColours = custom
	}

	return cfg, nil
}

// loadColoursFile reads a YAML mapping of colour names to hex values.
func loadColoursFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read colours file: %w", err)
	}

	var colours map[string]string
	if err := yaml.Unmarshal(data, &colours); err != nil {
		return nil, fmt.Errorf("failed to parse colours file: %w", err)
	}

	return colours, nil
}
