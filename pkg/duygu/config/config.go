// Package config loads engine configuration and assembles components from it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/duygulab/duygu/pkg/duygu/internalerr"
	"github.com/duygulab/duygu/pkg/duygu/score"
)

// Morphology backend names.
const (
	BackendZemberek = "zemberek"
	BackendTable    = "table"
)

// Config is the engine configuration file.
type Config struct {
	// Word list files, one candidate word per line.
	PositiveWords string `yaml:"positive_words"`
	NegativeWords string `yaml:"negative_words"`

	// Optional labeled dataset (CSV: text,label) for evaluation.
	Dataset string `yaml:"dataset"`

	// Optional SQLite database for persisting samples and runs.
	Database string `yaml:"database"`

	// Policy for roots present in both dictionaries:
	// "cancel" (default), "positive", or "negative".
	Overlap string `yaml:"overlap"`

	Morphology Morphology `yaml:"morphology"`
}

// Morphology selects and configures the analysis backend.
type Morphology struct {
	Backend string `yaml:"backend"` // "zemberek" or "table"
	URL     string `yaml:"url"`     // zemberek server base URL
	Table   string `yaml:"table"`   // word table YAML path
}

// Load reads a Config from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks that the configuration is complete enough to build an
// engine from.
func (c *Config) Validate() error {
	if c.PositiveWords == "" {
		return fmt.Errorf("positive_words required: %w", internalerr.ErrInvalidConfig)
	}
	if c.NegativeWords == "" {
		return fmt.Errorf("negative_words required: %w", internalerr.ErrInvalidConfig)
	}
	switch c.Morphology.Backend {
	case BackendZemberek:
		if c.Morphology.URL == "" {
			return fmt.Errorf("morphology.url required for zemberek backend: %w", internalerr.ErrInvalidConfig)
		}
	case BackendTable:
		if c.Morphology.Table == "" {
			return fmt.Errorf("morphology.table required for table backend: %w", internalerr.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("unknown morphology backend %q: %w", c.Morphology.Backend, internalerr.ErrInvalidConfig)
	}
	if _, err := c.OverlapPolicy(); err != nil {
		return err
	}
	return nil
}

// OverlapPolicy parses the configured overlap policy.
func (c *Config) OverlapPolicy() (score.OverlapPolicy, error) {
	switch c.Overlap {
	case "", "cancel":
		return score.OverlapCancel, nil
	case "positive":
		return score.OverlapPositive, nil
	case "negative":
		return score.OverlapNegative, nil
	default:
		return 0, fmt.Errorf("unknown overlap policy %q: %w", c.Overlap, internalerr.ErrInvalidConfig)
	}
}
