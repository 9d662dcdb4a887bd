// Package morphology defines the morphological analysis boundary.
//
// Sentiment scoring never inspects surface forms directly: every token is
// resolved to a root plus a set of morpheme markers by a Service. Any backend
// that satisfies the Service contract is substitutable — a remote Zemberek
// analysis server (Client) or an in-memory word table (Table).
package morphology

import "context"

// Marker names follow Zemberek's morpheme tag vocabulary. Only the two the
// scorer depends on are named here; backends are free to return more.
const (
	MarkerVerb     = "Verb"
	MarkerNegation = "Neg"
)

// Analysis is one morphological reading of a surface token.
type Analysis struct {
	Root    string   `json:"root" yaml:"root"`
	Markers []string `json:"markers,omitempty" yaml:"markers,omitempty"`
}

// HasMarker reports whether the analysis carries the given morpheme marker.
func (a Analysis) HasMarker(marker string) bool {
	for _, m := range a.Markers {
		if m == marker {
			return true
		}
	}
	return false
}

// IsNegatedVerb reports whether the analysis is a verb carrying a negation
// marker. This is the only morpheme combination the scorer reacts to.
func (a Analysis) IsNegatedVerb() bool {
	return a.HasMarker(MarkerVerb) && a.HasMarker(MarkerNegation)
}

// Service resolves a surface token into zero or more morphological analyses,
// ordered most plausible first. An empty result means the token is unknown to
// the backend; callers treat it as non-matching rather than an error.
//
// Backends must tolerate concurrent read queries: a single Service instance
// is shared by every scoring call in the process. Analysis selection must be
// deterministic — the same token always yields the same ordering.
type Service interface {
	Analyze(ctx context.Context, token string) ([]Analysis, error)
}

// Primary returns the first analysis, the one scoring consumes. The second
// return is false when the token had no analysis at all.
func Primary(analyses []Analysis) (Analysis, bool) {
	if len(analyses) == 0 {
		return Analysis{}, false
	}
	return analyses[0], true
}
