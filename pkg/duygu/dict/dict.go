// Package dict builds polarity dictionaries: sets of canonical roots derived
// from raw word lists through morphological analysis.
package dict

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/duygulab/duygu/pkg/duygu/morphology"
	"github.com/duygulab/duygu/pkg/duygu/tokenize"
)

// Set is a set of canonical roots. It is built once at startup and treated
// as immutable afterwards; scoring only ever reads it.
type Set map[string]struct{}

// Contains reports whether the root is in the set.
func (s Set) Contains(root string) bool {
	_, ok := s[root]
	return ok
}

// Len returns the number of roots in the set.
func (s Set) Len() int {
	return len(s)
}

// Add inserts a root. Intended for construction only.
func (s Set) Add(root string) {
	s[root] = struct{}{}
}

// Build reduces each word to its primary root via the morphology service and
// collects the roots into a Set. Words the service cannot analyze contribute
// nothing, as do per-word service errors — a bad entry never aborts the
// build. Duplicate roots collapse. An empty word list yields an empty set.
func Build(ctx context.Context, words []string, svc morphology.Service) (Set, error) {
	roots := make(Set, len(words))
	for _, word := range words {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		analyses, err := svc.Analyze(ctx, word)
		if err != nil {
			continue
		}
		primary, ok := morphology.Primary(analyses)
		if !ok || primary.Root == "" {
			continue
		}
		roots.Add(tokenize.Lower(primary.Root))
	}
	return roots, nil
}

// LoadWords reads a plain-text word list, one candidate word per line.
// Blank lines and '#' comment lines are skipped.
func LoadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
