// Command duygu-eval runs a one-shot evaluation of the sentiment model over
// the configured labeled dataset and prints the resulting metrics. With
// --save, the samples and the run's aggregates are persisted to the
// configured SQLite database; --history lists earlier runs for comparison.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/duygulab/duygu/pkg/duygu"
	"github.com/duygulab/duygu/pkg/duygu/config"
	"github.com/duygulab/duygu/pkg/duygu/store"
	"github.com/duygulab/duygu/pkg/duygu/store/sqlite"
)

func main() {
	var (
		configPath = flag.String("config", "", "Configuration file (required)")
		save       = flag.Bool("save", false, "Persist the run to the configured database")
		history    = flag.Int("history", 0, "Also list the N most recent stored runs")
		verbose    = flag.Bool("verbose", false, "Print every incorrect prediction")
	)
	flag.Parse()

	if *configPath == "" {
		log.Fatal("--config required")
	}

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
	if len(components.Samples) == 0 {
		log.Fatal("no dataset configured; set 'dataset' in the config file")
	}

	var st store.Store
	if *save || *history > 0 {
		if components.Config.Database == "" {
			log.Fatal("no database configured; set 'database' in the config file")
		}
		st, err = sqlite.Open(ctx, components.Config.Database)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		defer st.Close()
	}

	opts := duygu.Options{
		Service:  components.Service,
		Positive: components.Positive,
		Negative: components.Negative,
	}
	opts.Overlap, _ = components.Config.OverlapPolicy()
	if *save {
		opts.Store = st
	}
	engine := duygu.New(opts)

	report, err := engine.Evaluate(ctx, components.Samples)
	if err != nil {
		log.Fatalf("evaluate: %v", err)
	}

	fmt.Printf("Samples:   %d\n", report.Total)
	fmt.Printf("Correct:   %d\n", report.Correct)
	fmt.Printf("Accuracy:  %.4f\n", report.Accuracy)
	fmt.Printf("Precision: %.4f\n", report.Precision)
	fmt.Printf("Recall:    %.4f\n", report.Recall)
	fmt.Printf("F1:        %.4f\n", report.F1)
	fmt.Printf("Mean confidence: %.4f (stddev %.4f)\n", report.MeanConfidence, report.StdDevConfidence)

	if *verbose {
		for _, wp := range report.Wrong {
			fmt.Printf("WRONG %-8s (true %s, confidence %.2f): %s\n",
				wp.Predicted, wp.Label, wp.Result.Confidence, wp.Text)
		}
	}

	if *history > 0 {
		runs, err := st.ListRuns(ctx, *history)
		if err != nil {
			log.Fatalf("list runs: %v", err)
		}
		fmt.Println("\nRecent runs:")
		for _, run := range runs {
			fmt.Printf("  %s  %s  samples=%d acc=%.4f f1=%.4f\n",
				run.ID, run.CreatedAt.Format("2006-01-02 15:04"), run.Samples, run.Accuracy, run.F1)
		}
	}
}
