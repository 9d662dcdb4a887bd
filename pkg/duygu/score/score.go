// Package score implements rule-based sentiment scoring of Turkish sentences.
//
// Each token is reduced to its morphological root and matched against
// positive and negative root dictionaries. A negation marker on any verb
// flips the sign of the whole sentence score. This sentence-global negation
// scope is a deliberate heuristic simplification: "hiç iyi değildi ama
// oyunculuk güzeldi" flips both clauses, not just the first. Clause-local
// scoping is out of scope for the rule-based design.
//
// A Scorer holds no mutable state across calls, so it is safe to score
// sentences concurrently as long as the morphology backend tolerates
// concurrent read queries.
package score

import (
	"context"

	"github.com/duygulab/duygu/pkg/duygu/dict"
	"github.com/duygulab/duygu/pkg/duygu/morphology"
	"github.com/duygulab/duygu/pkg/duygu/tokenize"
)

// OverlapPolicy decides what a root found in both dictionaries contributes.
type OverlapPolicy int

const (
	// OverlapCancel treats a dual-polarity root as a no-op: no score
	// contribution and no dictionary match. The default.
	OverlapCancel OverlapPolicy = iota
	// OverlapPositive counts a dual-polarity root as a positive match.
	OverlapPositive
	// OverlapNegative counts a dual-polarity root as a negative match.
	OverlapNegative
)

// Predicate describes the sentence predicate found during analysis: the last
// verb in token order, Zemberek style. Informational only — negation
// detection does not depend on it.
type Predicate struct {
	Root    string `json:"root"`
	Negated bool   `json:"negated"`
}

// Features lists the dictionary hits behind a Result.
type Features struct {
	PositiveRoots []string   `json:"positive_roots,omitempty"`
	NegativeRoots []string   `json:"negative_roots,omitempty"`
	Predicate     *Predicate `json:"predicate,omitempty"`
}

// Result is the outcome of scoring one sentence.
//
// Sentiment follows the sign of Score exactly. Confidence is the fraction of
// tokens that matched a dictionary entry — lexical coverage, not statistical
// certainty — and is always in [0,1] regardless of sign.
type Result struct {
	Sentiment  Sentiment `json:"sentiment"`
	Score      float64   `json:"score"`
	Confidence float64   `json:"confidence"`
	Features   Features  `json:"features"`
}

// Scorer scores token sequences against a pair of polarity dictionaries.
// The dictionaries and service are shared read-only references owned by the
// caller; Scorer never mutates them.
type Scorer struct {
	Positive dict.Set
	Negative dict.Set
	Service  morphology.Service
	Overlap  OverlapPolicy
}

// ScoreSentence normalizes a raw sentence and scores the resulting tokens.
func (s *Scorer) ScoreSentence(ctx context.Context, sentence string) (Result, error) {
	return s.Score(ctx, tokenize.Normalize(sentence))
}

// Score runs the scoring pass over an ordered token sequence.
//
// Each token is resolved to its primary morphological analysis once. Two
// independent reductions run over those analyses: one accumulates per-token
// dictionary contributions (+1 positive, -1 negative), the other detects a
// negated verb anywhere in the sentence. The final score is the raw sum,
// sign-flipped when negation was detected.
//
// Tokens with no analysis, and tokens whose analysis lookup fails, count as
// non-matching and non-negating; a single bad token never aborts the
// sentence. An empty token sequence yields a Neutral zero Result.
func (s *Scorer) Score(ctx context.Context, tokens []string) (Result, error) {
	if len(tokens) == 0 {
		return Result{Sentiment: Neutral}, nil
	}

	analyses := make([]morphology.Analysis, len(tokens))
	resolved := make([]bool, len(tokens))
	for i, token := range tokens {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		all, err := s.Service.Analyze(ctx, token)
		if err != nil {
			continue
		}
		if primary, ok := morphology.Primary(all); ok {
			analyses[i] = primary
			resolved[i] = true
		}
	}

	negated := false
	for i := range analyses {
		if resolved[i] && analyses[i].IsNegatedVerb() {
			negated = true
			break
		}
	}

	var (
		raw      float64
		matched  int
		features Features
	)
	for i := range analyses {
		if !resolved[i] {
			continue
		}
		root := tokenize.Lower(analyses[i].Root)
		if root == "" {
			continue
		}

		inPos := s.Positive.Contains(root)
		inNeg := s.Negative.Contains(root)
		if inPos && inNeg {
			switch s.Overlap {
			case OverlapPositive:
				inNeg = false
			case OverlapNegative:
				inPos = false
			default:
				continue
			}
		}

		switch {
		case inPos:
			raw++
			matched++
			features.PositiveRoots = append(features.PositiveRoots, root)
		case inNeg:
			raw--
			matched++
			features.NegativeRoots = append(features.NegativeRoots, root)
		}
	}

	// Zemberek convention: the predicate is the last verb in the sentence.
	for i := len(analyses) - 1; i >= 0; i-- {
		if resolved[i] && analyses[i].HasMarker(morphology.MarkerVerb) {
			features.Predicate = &Predicate{
				Root:    tokenize.Lower(analyses[i].Root),
				Negated: analyses[i].IsNegatedVerb(),
			}
			break
		}
	}

	final := raw
	if negated {
		final = -final
	}

	return Result{
		Sentiment:  classify(final),
		Score:      final,
		Confidence: float64(matched) / float64(len(tokens)),
		Features:   features,
	}, nil
}
