package morphology

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Table is an in-memory Service backed by an explicit word table. It serves
// tests, examples, and offline runs where no analysis server is available.
//
// Lookup is case-insensitive on the surface token. The table is read-only
// after construction, so it is safe for concurrent queries.
type Table struct {
	entries map[string][]Analysis
}

// NewTable creates an empty word table.
func NewTable() *Table {
	return &Table{entries: make(map[string][]Analysis)}
}

// Add registers analyses for a surface token. Later additions append after
// earlier ones, so the first Add for a token defines its primary analysis.
func (t *Table) Add(token string, analyses ...Analysis) {
	key := strings.ToLower(token)
	t.entries[key] = append(t.entries[key], analyses...)
}

// Analyze implements Service. Unknown tokens yield a nil slice and no error.
func (t *Table) Analyze(ctx context.Context, token string) ([]Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return t.entries[strings.ToLower(token)], nil
}

// Len returns the number of distinct tokens in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// LoadTable loads a word table from a YAML file.
//
// Expected format:
//
//	words:
//	  - token: güzeldi
//	    root: güzel
//	    markers: [Adj]
//	  - token: değildi
//	    root: değil
//	    markers: [Verb, Neg, Past]
//
// Multiple entries for the same token accumulate as alternative analyses in
// file order.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config struct {
		Words []struct {
			Token   string   `yaml:"token"`
			Root    string   `yaml:"root"`
			Markers []string `yaml:"markers"`
		} `yaml:"words"`
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("morphology table %s: %w", path, err)
	}

	table := NewTable()
	for _, w := range config.Words {
		if w.Token == "" || w.Root == "" {
			continue
		}
		table.Add(w.Token, Analysis{Root: w.Root, Markers: w.Markers})
	}
	return table, nil
}
