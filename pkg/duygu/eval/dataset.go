package eval

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadCSV reads a labeled dataset from a CSV file with two columns per row:
// sentence text and label ("Pozitif" or "Negatif"). A header row is detected
// by its label column and skipped. Blank rows are ignored.
func LoadCSV(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var samples []Sample
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		line++

		if len(record) < 2 {
			continue
		}
		text := strings.TrimSpace(record[0])
		label := strings.TrimSpace(record[1])
		if text == "" {
			continue
		}
		if line == 1 && label != LabelPositive && label != LabelNegative {
			// Header row.
			continue
		}
		samples = append(samples, Sample{Text: text, Label: label})
	}
	return samples, nil
}
