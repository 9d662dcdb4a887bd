// Command duygu-cli is the interactive sentiment analysis prompt.
//
// Sentences typed at the prompt are scored and printed with their polarity,
// score, confidence, and matched dictionary features. Entering "q" (or EOF)
// ends the session; if a labeled dataset is configured, the model is then
// evaluated against it and the classification metrics are printed.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/duygulab/duygu/pkg/duygu"
	"github.com/duygulab/duygu/pkg/duygu/config"
	"github.com/duygulab/duygu/pkg/duygu/eval"
	"github.com/duygulab/duygu/pkg/duygu/score"
)

func main() {
	configPath := flag.String("config", "", "Configuration file (required)")
	flag.Parse()

	if *configPath == "" {
		log.Fatal("--config required")
	}

	// Optional .env for local overrides such as ZEMBEREK_URL.
	_ = godotenv.Load()

	ctx := context.Background()

	loader := config.Loader{
		Path:        *configPath,
		ZemberekURL: os.Getenv("ZEMBEREK_URL"),
	}
	components, err := loader.Load(ctx)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	overlap, _ := components.Config.OverlapPolicy()
	engine := duygu.New(duygu.Options{
		Service:  components.Service,
		Positive: components.Positive,
		Negative: components.Negative,
		Overlap:  overlap,
	})
	defer engine.Close()

	fmt.Println("===========================================")
	fmt.Println("  Duygu CLI")
	fmt.Println("  Turkish rule-based sentiment analysis")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("Enter sentences to analyze. Type 'q' to quit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Sentence: ")
		if !scanner.Scan() {
			break
		}

		sentence := strings.TrimSpace(scanner.Text())
		if sentence == "" {
			continue
		}
		if strings.EqualFold(sentence, "q") {
			break
		}

		result, err := engine.Analyze(ctx, sentence)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		printResult(sentence, result)
	}

	if len(components.Samples) > 0 {
		fmt.Printf("\nEvaluating on %d labeled sentences...\n", len(components.Samples))
		report, err := engine.Evaluate(ctx, components.Samples)
		if err != nil {
			log.Fatalf("evaluate: %v", err)
		}
		printReport(report)
	}
}

func printResult(sentence string, result score.Result) {
	fmt.Printf("\nSentence: %s\n", sentence)
	fmt.Printf("Sentiment: %s\n", result.Sentiment)
	fmt.Printf("Score: %+.0f\n", result.Score)
	fmt.Printf("Confidence: %.2f\n", result.Confidence)
	if p := result.Features.Predicate; p != nil {
		fmt.Printf("Predicate: %s (negated: %t)\n", p.Root, p.Negated)
	}
	if len(result.Features.PositiveRoots) > 0 {
		fmt.Printf("Positive roots: %s\n", strings.Join(result.Features.PositiveRoots, ", "))
	}
	if len(result.Features.NegativeRoots) > 0 {
		fmt.Printf("Negative roots: %s\n", strings.Join(result.Features.NegativeRoots, ", "))
	}
	fmt.Println()
}

func printReport(report eval.Report) {
	fmt.Println("\nPerformance Metrics (Percentage):")
	fmt.Printf("Accuracy: %.2f%%\n", report.Accuracy*100)
	fmt.Printf("Precision: %.2f%%\n", report.Precision*100)
	fmt.Printf("Recall: %.2f%%\n", report.Recall*100)
	fmt.Printf("F1 Score: %.2f%%\n", report.F1*100)
	fmt.Printf("Mean confidence: %.2f (stddev %.2f)\n", report.MeanConfidence, report.StdDevConfidence)

	if len(report.Wrong) > 0 {
		fmt.Println("\nIncorrect Predictions:")
		for _, wp := range report.Wrong {
			fmt.Printf("  - Sentence: %s\n", wp.Text)
			fmt.Printf("    True Label: %s\n", wp.Label)
			fmt.Printf("    Predicted: %s\n", wp.Predicted)
		}
	}
}
