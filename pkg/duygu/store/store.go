// Package store persists labeled samples and evaluation runs.
package store

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/duygulab/duygu/pkg/duygu/eval"
)

// Run records the outcome of one evaluation pass over the dataset.
type Run struct {
	ID        string // ULID, sortable by creation time
	CreatedAt time.Time
	Samples   int
	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
}

// Store is the persistence interface for evaluation data.
type Store interface {
	Close() error

	// Samples
	SaveSamples(ctx context.Context, samples []eval.Sample) error
	ListSamples(ctx context.Context) ([]eval.Sample, error)

	// Runs
	SaveRun(ctx context.Context, run Run) error
	ListRuns(ctx context.Context, limit int) ([]Run, error)
}

// IDSource mints monotonic ULIDs for run identifiers. It is not safe for
// concurrent use; runs are recorded by a single writer.
type IDSource struct {
	entropy *ulid.MonotonicEntropy
}

// NewIDSource creates an IDSource seeded with crypto/rand entropy.
func NewIDSource() *IDSource {
	return &IDSource{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// NewRunID returns a fresh run identifier for the given timestamp.
func (s *IDSource) NewRunID(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), s.entropy).String()
}
