package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/duygulab/duygu/pkg/duygu/eval"
	"github.com/duygulab/duygu/pkg/duygu/store"
)

func TestSamplesRoundTrip(t *testing.T) {
	s := New()
	defer s.Close()
	ctx := context.Background()

	samples := []eval.Sample{
		{Text: "Bu film çok güzeldi", Label: eval.LabelPositive},
		{Text: "Bu film çok kötüydü", Label: eval.LabelNegative},
	}
	if err := s.SaveSamples(ctx, samples); err != nil {
		t.Fatalf("SaveSamples: %v", err)
	}

	// Upsert: same text, new label.
	if err := s.SaveSamples(ctx, []eval.Sample{
		{Text: "Bu film çok güzeldi", Label: eval.LabelNegative},
	}); err != nil {
		t.Fatalf("SaveSamples: %v", err)
	}

	got, err := s.ListSamples(ctx)
	if err != nil {
		t.Fatalf("ListSamples: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListSamples returned %d samples, want 2", len(got))
	}
	if got[0].Label != eval.LabelNegative {
		t.Errorf("upsert did not update label: %+v", got[0])
	}
}

func TestRunsNewestFirst(t *testing.T) {
	s := New()
	defer s.Close()
	ctx := context.Background()

	ids := store.NewIDSource()
	base := time.Now()
	for i := 0; i < 3; i++ {
		run := store.Run{
			ID:        ids.NewRunID(base.Add(time.Duration(i) * time.Second)),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
			Samples:   10,
			Accuracy:  float64(i) / 10,
		}
		if err := s.SaveRun(ctx, run); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	runs, err := s.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns returned %d runs, want 2", len(runs))
	}
	if runs[0].ID <= runs[1].ID {
		t.Errorf("runs not newest first: %s before %s", runs[0].ID, runs[1].ID)
	}
	if runs[0].Accuracy != 0.2 {
		t.Errorf("newest run accuracy = %v, want 0.2", runs[0].Accuracy)
	}
}
