package manifest

import "github.com/dtnitsch/letter-frequency/pkg/detector"

// Report is the output of a count run: the merged letter table plus a
// summary of every input source.
type Report struct {
	GeneratedAt     string           `json:"generated_at" yaml:"generated_at"`
	Workers         int              `json:"workers" yaml:"workers"`
	InputFormat     string           `json:"input_format" yaml:"input_format"`
	TotalSources    int              `json:"total_sources" yaml:"total_sources"`
	TotalLines      int              `json:"total_lines" yaml:"total_lines"`
	TotalLetters    int              `json:"total_letters" yaml:"total_letters"`
	DistinctLetters int              `json:"distinct_letters" yaml:"distinct_letters"`
	TopLetters      []string         `json:"top_letters" yaml:"top_letters"`
	Letters         []LetterEntry    `json:"letters" yaml:"letters"`
	Language        *detector.Result `json:"language,omitempty" yaml:"language,omitempty"`
	Sources         []SourceSummary  `json:"sources" yaml:"sources"`
}

// LetterEntry is one row of the letter table. Share is the fraction of all
// letters, rounded to four decimal places.
type LetterEntry struct {
	Letter string  `json:"letter" yaml:"letter"`
	Count  int     `json:"count" yaml:"count"`
	Share  float64 `json:"share" yaml:"share"`
}

// SourceSummary describes a single input.
type SourceSummary struct {
	Source     string   `json:"source" yaml:"source"`
	Hash       string   `json:"sha256" yaml:"sha256"`
	SizeBytes  int64    `json:"size_bytes" yaml:"size_bytes"`
	Title      string   `json:"title,omitempty" yaml:"title,omitempty"`
	Lines      int      `json:"lines" yaml:"lines"`
	Letters    int      `json:"letters" yaml:"letters"`
	TopLetters []string `json:"top_letters,omitempty" yaml:"top_letters,omitempty"`
}
