package dict

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/duygulab/duygu/pkg/duygu/morphology"
)

// failingService returns an error for every token.
type failingService struct{}

func (failingService) Analyze(ctx context.Context, token string) ([]morphology.Analysis, error) {
	return nil, errors.New("backend down")
}

func newTestService() *morphology.Table {
	table := morphology.NewTable()
	table.Add("güzel", morphology.Analysis{Root: "güzel", Markers: []string{"Adj"}})
	table.Add("güzeldi", morphology.Analysis{Root: "güzel", Markers: []string{"Adj"}})
	table.Add("iyi", morphology.Analysis{Root: "iyi", Markers: []string{"Adj"}})
	table.Add("kötü", morphology.Analysis{Root: "kötü", Markers: []string{"Adj"}})
	return table
}

func TestBuild(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	set, err := Build(ctx, []string{"güzel", "iyi"}, svc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if set.Len() != 2 {
		t.Errorf("set has %d roots, want 2", set.Len())
	}
	if !set.Contains("güzel") || !set.Contains("iyi") {
		t.Errorf("set missing expected roots: %v", set)
	}
}

func TestBuildCollapsesDuplicateRoots(t *testing.T) {
	svc := newTestService()

	// Both inflections reduce to the same root.
	set, err := Build(context.Background(), []string{"güzel", "güzeldi", "güzel"}, svc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if set.Len() != 1 {
		t.Errorf("set has %d roots, want 1", set.Len())
	}
	if !set.Contains("güzel") {
		t.Error("set should contain root güzel")
	}
}

func TestBuildEmptyList(t *testing.T) {
	set, err := Build(context.Background(), nil, newTestService())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if set.Len() != 0 {
		t.Errorf("empty word list should yield empty set, got %d roots", set.Len())
	}
}

func TestBuildSkipsUnanalyzable(t *testing.T) {
	svc := newTestService()

	set, err := Build(context.Background(), []string{"iyi", "bilinmeyen", "  "}, svc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if set.Len() != 1 {
		t.Errorf("set has %d roots, want 1 (unknown and blank entries skipped)", set.Len())
	}
}

func TestBuildDegradesOnServiceError(t *testing.T) {
	set, err := Build(context.Background(), []string{"iyi", "güzel"}, failingService{})
	if err != nil {
		t.Fatalf("Build should not fail on per-word service errors: %v", err)
	}
	if set.Len() != 0 {
		t.Errorf("set has %d roots, want 0", set.Len())
	}
}

func TestBuildCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Build(ctx, []string{"iyi"}, newTestService()); err == nil {
		t.Error("Build with cancelled context should fail")
	}
}

func TestLoadWords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	content := "güzel\n# yorum satırı\n\niyi\n  harika  \n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	words, err := LoadWords(path)
	if err != nil {
		t.Fatalf("LoadWords: %v", err)
	}
	want := []string{"güzel", "iyi", "harika"}
	if len(words) != len(want) {
		t.Fatalf("LoadWords returned %d words, want %d", len(words), len(want))
	}
	for i, w := range want {
		if words[i] != w {
			t.Errorf("words[%d] = %q, want %q", i, words[i], w)
		}
	}
}

func TestLoadWordsMissingFile(t *testing.T) {
	if _, err := LoadWords(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("LoadWords on missing file should fail")
	}
}
