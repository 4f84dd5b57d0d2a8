package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/tada/internal/datamanager"
	"github.com/idilsaglam/tada/internal/source"
)

// DefaultPath is read when no --config flag is given. Its absence is not an error.
const DefaultPath = "tada.yml"

// Source kinds.
const (
	SourceMock = "mock"
	SourceFile = "file"
)

// Themes accepted in the theme field.
var Themes = []string{"light", "dark", "classic", "neon", "mono"}

// SourceConfig selects where todos are fetched from.
type SourceConfig struct {
	Kind  string        `yaml:"kind"`            // mock or file
	Delay time.Duration `yaml:"delay,omitempty"` // simulated latency of the mock
	Path  string        `yaml:"path,omitempty"`  // fixture for kind=file
}

// Config represents the top-level tada.yml configuration
type Config struct {
	Theme  string       `yaml:"theme"`
	IDs    string       `yaml:"ids"`
	Source SourceConfig `yaml:"source"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Theme: "light",
		IDs:   datamanager.IDSequential,
		Source: SourceConfig{
			Kind:  SourceMock,
			Delay: source.DefaultDelay,
			Path:  "todos.json",
		},
	}
}

// Load reads and validates the config at path. Fields absent from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file at DefaultPath yields
// Default. An explicitly named file must exist.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	cfg, err := Load(path)
	if err != nil && path == DefaultPath && errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate performs strict validation on the configuration
func (c *Config) Validate() error {
	if !isTheme(c.Theme) {
		return fmt.Errorf("unknown theme %q (expected one of: %s)", c.Theme, strings.Join(Themes, ", "))
	}
	if _, err := datamanager.ParseIDStrategy(c.IDs); err != nil {
		return err
	}

	switch c.Source.Kind {
	case SourceMock:
		if c.Source.Delay < 0 {
			return fmt.Errorf("source.delay must be >= 0, got %s", c.Source.Delay)
		}
	case SourceFile:
		if strings.TrimSpace(c.Source.Path) == "" {
			return fmt.Errorf("source.path is required when source.kind is %q", SourceFile)
		}
	default:
		return fmt.Errorf("unknown source kind %q (expected: mock or file)", c.Source.Kind)
	}
	return nil
}

// NewSource builds the data source the config describes.
func (c *Config) NewSource() source.Source {
	if c.Source.Kind == SourceFile {
		return source.NewFile(c.Source.Path)
	}
	return source.NewMock(c.Source.Delay)
}

func isTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}
