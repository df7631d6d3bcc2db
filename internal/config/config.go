// Package config loads the YAML settings shared by the jpoetry commands.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "jpoetry.yaml"

// EnvAddr overrides the listen address of the server.
const EnvAddr = "JPOETRY_ADDR"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds every setting of the server and the CLI.
type Config struct {
	// Addr is the server listen address.
	Addr string `yaml:"addr"`
	// Strict keeps only flawless poems.
	Strict bool `yaml:"strict"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// GlyphsFile replaces the built-in glyph set when set.
	GlyphsFile string `yaml:"glyphs_file"`
	// CORSOrigins lists the origins allowed by the server.
	CORSOrigins []string `yaml:"cors_origins"`
	// MaxTextRunes bounds the text accepted by one request.
	MaxTextRunes int `yaml:"max_text_runes"`

	path string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Addr:         ":8080",
		Strict:       true,
		LogLevel:     "info",
		CORSOrigins:  []string{"*"},
		MaxTextRunes: 4096,
	}
}

// Load reads path over the defaults. A missing file is not an error:
// the defaults are returned as is. The environment is applied last.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		// Fields absent from the file keep their defaults.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		cfg.path = path
	}

	if addr := os.Getenv(EnvAddr); addr != "" {
		cfg.Addr = addr
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the file the config was read from, empty for defaults.
func (c *Config) Path() string {
	return c.path
}

// Validate rejects settings the commands cannot run with.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: empty addr", ErrInvalid)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.MaxTextRunes <= 0 {
		return fmt.Errorf("%w: max_text_runes must be positive, got %d", ErrInvalid, c.MaxTextRunes)
	}
	return nil
}
