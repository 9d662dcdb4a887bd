package config

import (
	"context"
	"fmt"

	"github.com/duygulab/duygu/pkg/duygu/dict"
	"github.com/duygulab/duygu/pkg/duygu/eval"
	"github.com/duygulab/duygu/pkg/duygu/morphology"
	"github.com/duygulab/duygu/pkg/duygu/score"
)

// Loader builds engine components from a configuration file.
type Loader struct {
	Path string

	// ZemberekURL overrides the configured morphology URL when non-empty.
	// Set from the environment by commands.
	ZemberekURL string
}

// Components holds all loaded configuration components.
type Components struct {
	Config   *Config
	Service  morphology.Service
	Positive dict.Set
	Negative dict.Set
	Scorer   *score.Scorer
	Samples  []eval.Sample
}

// Load reads the configuration and constructs the morphology service, the
// polarity dictionaries, and the scorer. A zemberek backend is pinged before
// anything else: without the analysis service every downstream score is
// meaningless, so an unreachable server fails the whole load.
func (l *Loader) Load(ctx context.Context) (*Components, error) {
	cfg, err := Load(l.Path)
	if err != nil {
		return nil, err
	}
	if l.ZemberekURL != "" {
		cfg.Morphology.URL = l.ZemberekURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	comp := &Components{Config: cfg}

	switch cfg.Morphology.Backend {
	case BackendZemberek:
		client := &morphology.Client{BaseURL: cfg.Morphology.URL}
		if err := client.Ping(ctx); err != nil {
			return nil, err
		}
		comp.Service = client
	case BackendTable:
		table, err := morphology.LoadTable(cfg.Morphology.Table)
		if err != nil {
			return nil, fmt.Errorf("load morphology table: %w", err)
		}
		comp.Service = table
	}

	positiveWords, err := dict.LoadWords(cfg.PositiveWords)
	if err != nil {
		return nil, fmt.Errorf("load positive words: %w", err)
	}
	negativeWords, err := dict.LoadWords(cfg.NegativeWords)
	if err != nil {
		return nil, fmt.Errorf("load negative words: %w", err)
	}

	comp.Positive, err = dict.Build(ctx, positiveWords, comp.Service)
	if err != nil {
		return nil, fmt.Errorf("build positive dictionary: %w", err)
	}
	comp.Negative, err = dict.Build(ctx, negativeWords, comp.Service)
	if err != nil {
		return nil, fmt.Errorf("build negative dictionary: %w", err)
	}

	overlap, err := cfg.OverlapPolicy()
	if err != nil {
		return nil, err
	}
	comp.Scorer = &score.Scorer{
		Positive: comp.Positive,
		Negative: comp.Negative,
		Service:  comp.Service,
		Overlap:  overlap,
	}

	if cfg.Dataset != "" {
		comp.Samples, err = eval.LoadCSV(cfg.Dataset)
		if err != nil {
			return nil, fmt.Errorf("load dataset: %w", err)
		}
	}

	return comp, nil
}
