// Package eval runs the scorer over a labeled dataset and computes
// classification metrics.
package eval

import (
	"context"
	"fmt"

	"github.com/bsm/mlmetrics"
	"gonum.org/v1/gonum/stat"

	"github.com/duygulab/duygu/pkg/duygu/score"
)

// Dataset labels. The evaluation corpus is binary: sentences are annotated
// Pozitif or Negatif, never neutral.
const (
	LabelPositive = "Pozitif"
	LabelNegative = "Negatif"
)

// Confusion matrix class indices.
const (
	classNegative = 0
	classPositive = 1
)

// Sample is one labeled sentence.
type Sample struct {
	Text  string
	Label string
}

// Prediction pairs a sample with the scorer's verdict on it.
type Prediction struct {
	Text      string
	Label     string
	Predicted score.Sentiment
	Result    score.Result
	Correct   bool
}

// Report aggregates an evaluation run.
//
// Precision, Recall, and F1 are reported for the positive class. Confidence
// statistics summarize the scorer's lexical coverage across the dataset.
type Report struct {
	Total   int
	Correct int

	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64

	MeanConfidence   float64
	StdDevConfidence float64

	Predictions []Prediction
	Wrong       []Prediction
}

// Evaluate scores every sample and tallies the confusion matrix.
//
// The dataset is binary, so a Neutral verdict is always wrong: it is counted
// against the class opposite to the truth, which penalizes it in both
// precision and recall. Samples with an unknown label are skipped.
func Evaluate(ctx context.Context, samples []Sample, scorer *score.Scorer) (Report, error) {
	mat := mlmetrics.NewConfusionMatrix()

	var report Report
	var confidences []float64

	for _, sample := range samples {
		truth, ok := classOf(sample.Label)
		if !ok {
			continue
		}

		result, err := scorer.ScoreSentence(ctx, sample.Text)
		if err != nil {
			return Report{}, fmt.Errorf("score %q: %w", sample.Text, err)
		}

		predicted := classNegative
		switch result.Sentiment {
		case score.Positive:
			predicted = classPositive
		case score.Negative:
			predicted = classNegative
		case score.Neutral:
			// Count neutral as a miss on the true class.
			predicted = classNegative
			if truth == classNegative {
				predicted = classPositive
			}
		}

		mat.Observe(truth, predicted)
		confidences = append(confidences, result.Confidence)

		pred := Prediction{
			Text:      sample.Text,
			Label:     sample.Label,
			Predicted: result.Sentiment,
			Result:    result,
			Correct:   truth == predicted && result.Sentiment != score.Neutral,
		}
		report.Predictions = append(report.Predictions, pred)
		if pred.Correct {
			report.Correct++
		} else {
			report.Wrong = append(report.Wrong, pred)
		}
		report.Total++
	}

	if report.Total == 0 {
		return report, nil
	}

	report.Accuracy = mat.Accuracy()
	report.Precision = mat.Precision(classPositive)
	report.Recall = mat.Sensitivity(classPositive)
	report.F1 = mat.F1(classPositive)
	report.MeanConfidence = stat.Mean(confidences, nil)
	if len(confidences) > 1 {
		report.StdDevConfidence = stat.StdDev(confidences, nil)
	}

	return report, nil
}

func classOf(label string) (int, bool) {
	switch label {
	case LabelPositive:
		return classPositive, true
	case LabelNegative:
		return classNegative, true
	default:
		return 0, false
	}
}
