// Package config loads the .c2patext.yaml project configuration.
package config

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file commands look for in the
// working directory.
const DefaultFilename = ".c2patext.yaml"

// Config holds project-level validation settings. All fields are optional
// in the file; an empty UUID list falls back to the default set.
type Config struct {
	// Strict enables description box checks during manifest validation.
	Strict bool `yaml:"strict"`
	// RecognizedUUIDs lists accepted content-type UUIDs in canonical
	// 8-4-4-4-12 form.
	RecognizedUUIDs []string `yaml:"recognized_uuids"`
}

// Default returns the configuration used when no file is present: strict
// mode off, the C2PA manifest store UUID recognized.
func Default() *Config {
	return &Config{
		Strict:          false,
		RecognizedUUIDs: []string{"63327061-0011-0010-8000-00aa00389b71"},
	}
}

// Load reads a YAML configuration file and validates its UUID list. A
// missing file is reported as an explicit not-found error so callers can
// decide whether to fall back to Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("cannot read config file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	for _, s := range cfg.RecognizedUUIDs {
		if _, err := uuid.Parse(s); err != nil {
			return nil, fmt.Errorf("invalid recognized UUID %q in %s: %w", s, path, err)
		}
	}
	if len(cfg.RecognizedUUIDs) == 0 {
		cfg.RecognizedUUIDs = Default().RecognizedUUIDs
	}
	return &cfg, nil
}

// UUIDs returns the recognized UUID list as parsed values. Load validates
// every entry, so entries that fail to parse here are skipped.
func (c *Config) UUIDs() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(c.RecognizedUUIDs))
	for _, s := range c.RecognizedUUIDs {
		id, err := uuid.Parse(s)
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	return out
}
