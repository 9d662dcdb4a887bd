// Package duygu classifies Turkish sentences as positive, negative, or
// neutral by matching morphological roots against polarity dictionaries and
// applying a negation-flip heuristic.
package duygu

import (
	"context"
	"time"

	"github.com/duygulab/duygu/pkg/duygu/dict"
	"github.com/duygulab/duygu/pkg/duygu/eval"
	"github.com/duygulab/duygu/pkg/duygu/morphology"
	"github.com/duygulab/duygu/pkg/duygu/score"
	"github.com/duygulab/duygu/pkg/duygu/store"
)

// Engine is the main sentiment analysis facade.
type Engine struct {
	scorer *score.Scorer
	store  store.Store
	ids    *store.IDSource
}

// Options configures an Engine instance.
type Options struct {
	Service  morphology.Service
	Positive dict.Set
	Negative dict.Set
	Overlap  score.OverlapPolicy

	// Store, when set, persists evaluation runs.
	Store store.Store
}

// New creates an Engine with the given dependencies.
func New(opts Options) *Engine {
	return &Engine{
		scorer: &score.Scorer{
			Positive: opts.Positive,
			Negative: opts.Negative,
			Service:  opts.Service,
			Overlap:  opts.Overlap,
		},
		store: opts.Store,
		ids:   store.NewIDSource(),
	}
}

// Close cleanly shuts down the Engine.
func (e *Engine) Close() error {
	if e.store != nil {
		return e.store.Close()
	}
	return nil
}

// Scorer exposes the underlying scorer for callers that manage their own
// tokenization.
func (e *Engine) Scorer() *score.Scorer {
	return e.scorer
}

// Analyze scores a raw sentence.
func (e *Engine) Analyze(ctx context.Context, sentence string) (score.Result, error) {
	return e.scorer.ScoreSentence(ctx, sentence)
}

// Evaluate runs the scorer over a labeled dataset. When a store is
// configured, the samples and the run's aggregate metrics are persisted.
func (e *Engine) Evaluate(ctx context.Context, samples []eval.Sample) (eval.Report, error) {
	report, err := eval.Evaluate(ctx, samples, e.scorer)
	if err != nil {
		return eval.Report{}, err
	}

	if e.store != nil && report.Total > 0 {
		now := time.Now()
		if err := e.store.SaveSamples(ctx, samples); err != nil {
			return eval.Report{}, err
		}
		run := store.Run{
			ID:        e.ids.NewRunID(now),
			CreatedAt: now,
			Samples:   report.Total,
			Accuracy:  report.Accuracy,
			Precision: report.Precision,
			Recall:    report.Recall,
			F1:        report.F1,
		}
		if err := e.store.SaveRun(ctx, run); err != nil {
			return eval.Report{}, err
		}
	}

	return report, nil
}
