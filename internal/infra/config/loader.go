// Package config provides configuration loading functionality.
package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/taskmenu/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// knownSections lists the top-level tables understood by the loader.
var knownSections = map[string]bool{
	"log":     true,
	"display": true,
	"notify":  true,
}

// Loader loads configuration from a TOML file.
type Loader struct {
	path string // Path to the config file (empty = defaults only)
}

// NewLoader creates a new Loader for the given file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load returns the file configuration layered over the defaults.
// An empty path yields the default configuration.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()
	if l.path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", l.path, err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", l.path, err)
	}
	cfg.Warnings = unknownSectionWarnings(raw)

	if cfg.Log.Level == "" {
		cfg.Log.Level = domain.DefaultLogLevel
	}
	return cfg, nil
}

// unknownSectionWarnings reports top-level keys the loader ignores.
func unknownSectionWarnings(raw map[string]any) []string {
	var warnings []string
	for section := range raw {
		if !knownSections[section] {
			warnings = append(warnings, fmt.Sprintf("unknown config section %q ignored", section))
		}
	}
	sort.Strings(warnings)
	return warnings
}
