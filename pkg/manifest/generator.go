package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/dtnitsch/letter-frequency/models"
	"github.com/dtnitsch/letter-frequency/pkg/detector"
	"github.com/dtnitsch/letter-frequency/pkg/mapreduce"
	"gopkg.in/yaml.v3"
)

// SourceResult is the counted form of one input source.
type SourceResult struct {
	Source    string
	Hash      string
	SizeBytes int64
	Title     string
	Lines     int
	Counts    map[rune]int
}

// GenerateReport builds a Report from per-source results and the merged table.
// top limits the ranked lists; 0 keeps every letter.
func GenerateReport(config *models.Config, results []SourceResult, totals map[rune]int, language *detector.Result, now time.Time) *Report {
	report := &Report{
		GeneratedAt:     now.UTC().Format(time.RFC3339),
		Workers:         config.WorkerCount,
		InputFormat:     string(config.InputFormat),
		TotalSources:    len(results),
		DistinctLetters: len(totals),
		TopLetters:      mapreduce.TopLetters(totals, config.Top),
		Language:        language,
		Sources:         make([]SourceSummary, 0, len(results)),
	}

	for _, n := range totals {
		report.TotalLetters += n
	}

	report.Letters = make([]LetterEntry, 0, len(totals))
	for _, entry := range mapreduce.Sorted(totals) {
		report.Letters = append(report.Letters, LetterEntry{
			Letter: string(entry.Letter),
			Count:  entry.Count,
			Share:  share(entry.Count, report.TotalLetters),
		})
	}

	for _, result := range results {
		letters := 0
		for _, n := range result.Counts {
			letters += n
		}
		report.TotalLines += result.Lines
		report.Sources = append(report.Sources, SourceSummary{
			Source:     result.Source,
			Hash:       result.Hash,
			SizeBytes:  result.SizeBytes,
			Title:      result.Title,
			Lines:      result.Lines,
			Letters:    letters,
			TopLetters: mapreduce.TopLetters(result.Counts, config.Top),
		})
	}

	return report
}

// Encode writes report to w as YAML or JSON.
func Encode(w io.Writer, report *Report, format string) error {
	return Write(w, report, format)
}

// Write encodes v to w as indented JSON or YAML. An empty format means YAML.
func Write(w io.Writer, v interface{}, format string) error {
	switch format {
	case models.OutputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("error marshalling output: %w", err)
		}
	case models.OutputFormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("error marshalling output: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("error marshalling output: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q (want yaml or json)", format)
	}
	return nil
}

func share(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*10000) / 10000
}
