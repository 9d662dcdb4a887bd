// Package memstore provides an in-memory store.Store for tests.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/duygulab/duygu/pkg/duygu/eval"
	"github.com/duygulab/duygu/pkg/duygu/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu        sync.RWMutex
	order     []string
	samples   map[string]eval.Sample
	runs      map[string]store.Run
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		samples: make(map[string]eval.Sample),
		runs:    make(map[string]store.Run),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveSamples upserts samples keyed by text, preserving first-seen order.
func (s *Store) SaveSamples(ctx context.Context, samples []eval.Sample) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sample := range samples {
		if sample.Text == "" {
			continue
		}
		if _, ok := s.samples[sample.Text]; !ok {
			s.order = append(s.order, sample.Text)
		}
		s.samples[sample.Text] = sample
	}
	return nil
}

// ListSamples returns all samples in insertion order.
func (s *Store) ListSamples(ctx context.Context) ([]eval.Sample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	samples := make([]eval.Sample, 0, len(s.order))
	for _, text := range s.order {
		samples = append(samples, s.samples[text])
	}
	return samples, nil
}

// SaveRun records an evaluation run.
func (s *Store) SaveRun(ctx context.Context, run store.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]store.Run, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, run)
	}
	// ULIDs sort by creation time.
	sort.Slice(runs, func(i, j int) bool { return runs[i].ID > runs[j].ID })
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}
