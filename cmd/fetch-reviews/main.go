// Command fetch-reviews bootstraps a labeling dataset: it fetches review
// pages, extracts paragraph text, and writes a CSV skeleton with an empty
// label column for hand annotation.
//
// Usage:
//
//	fetch-reviews -out data/reviews.csv URL [URL...]
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/duygulab/duygu/internal/reviews"
)

func main() {
	var (
		out    = flag.String("out", "reviews.csv", "Output CSV path")
		minLen = flag.Int("minlen", 20, "Minimum paragraph length in runes")
	)
	flag.Parse()

	urls := flag.Args()
	if len(urls) == 0 {
		log.Fatal("at least one URL required")
	}

	outFile, err := os.Create(*out)
	if err != nil {
		log.Fatal("create output file:", err)
	}
	defer outFile.Close()

	writer := csv.NewWriter(outFile)
	defer writer.Flush()

	client := &http.Client{Timeout: 30 * time.Second}
	total := 0

	for _, url := range urls {
		paragraphs, err := fetch(client, url, *minLen)
		if err != nil {
			log.Printf("fetch %s: %v", url, err)
			continue
		}
		for _, p := range paragraphs {
			// Label column left blank for hand annotation.
			if err := writer.Write([]string{p, ""}); err != nil {
				log.Fatal("write csv:", err)
			}
		}
		total += len(paragraphs)
		log.Printf("%s: %d paragraphs", url, len(paragraphs))

		// Be nice to the servers
		time.Sleep(200 * time.Millisecond)
	}

	log.Printf("wrote %d paragraphs to %s", total, *out)
}

func fetch(client *http.Client, url string, minLen int) ([]string, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return reviews.Paragraphs(resp.Body, minLen)
}
