package count

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dtnitsch/letter-frequency/models"
	"github.com/dtnitsch/letter-frequency/pkg/detector"
	"github.com/dtnitsch/letter-frequency/pkg/frequency"
	"github.com/dtnitsch/letter-frequency/pkg/manifest"
	"github.com/dtnitsch/letter-frequency/pkg/mapreduce"
	"github.com/dtnitsch/letter-frequency/pkg/parser"
	"github.com/dtnitsch/letter-frequency/pkg/partition"
	"github.com/dtnitsch/letter-frequency/pkg/storage"
	"github.com/urfave/cli/v2"
)

func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	switch {
	case c.Bool("quiet"):
		logLevel = slog.LevelError
	case c.Bool("verbose"):
		logLevel = slog.LevelDebug
	}
	errWriter := c.App.ErrWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}
	return slog.New(slog.NewJSONHandler(errWriter, &slog.HandlerOptions{Level: logLevel}))
}

// resolveConfig loads the config file, if any, and applies flag overrides.
func resolveConfig(c *cli.Context) (*models.Config, error) {
	config := models.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := models.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	if c.IsSet("workers") {
		config.WorkerCount = c.Int("workers")
	}
	if c.IsSet("top") {
		config.Top = c.Int("top")
	}
	if c.IsSet("input-format") {
		config.InputFormat = models.InputFormat(c.String("input-format"))
	}
	if c.IsSet("format") {
		config.OutputFormat = c.String("format")
	}
	if c.IsSet("detect-language") {
		config.DetectLanguage = c.Bool("detect-language")
	}
	if c.IsSet("languages") {
		config.Languages = c.StringSlice("languages")
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func CountAction(c *cli.Context) error {
	logger := newLogger(c)

	config, err := resolveConfig(c)
	if err != nil {
		return err
	}

	sources := c.Args().Slice()
	if len(sources) == 0 {
		sources = []string{storage.StdinSource}
	}

	stdin := c.App.Reader
	if stdin == nil {
		stdin = os.Stdin
	}
	s := storage.NewStorage(nil, stdin)

	report, err := run(c.Context, logger, config, s, sources)
	if err != nil {
		return err
	}

	return manifest.Encode(c.App.Writer, report, config.OutputFormat)
}

func run(ctx context.Context, logger *slog.Logger, config *models.Config, s *storage.Storage, sources []string) (*manifest.Report, error) {
	startTime := time.Now()
	logger.Info("Loading sources", "source_count", len(sources), "input_format", config.InputFormat)

	loaded, err := s.LoadAll(ctx, sources, storage.DefaultLoadLimit)
	if err != nil {
		return nil, err
	}

	var lang *detector.Detector
	if config.DetectLanguage {
		lang, err = detector.New(config.Languages)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize language detector: %w", err)
		}
	}

	p := &parser.Parser{}
	counter := frequency.NewCounter(logger)

	logger.Info("Starting letter count", "source_count", len(loaded), "workers", config.WorkerCount)
	results := make([]manifest.SourceResult, 0, len(loaded))
	intermediate := make([]map[rune]int, 0, len(loaded))
	var allLines []string

	for _, src := range loaded {
		page, err := p.Parse(models.ParseRequest{
			Source:  src.Name,
			Content: src.Data,
			Format:  config.InputFormat,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", src.Name, err)
		}
		lines := page.ToLines()

		counts, err := counter.Count(lines, config.WorkerCount)
		if err != nil {
			return nil, fmt.Errorf("failed to count letters in %s: %w", src.Name, err)
		}
		logger.Info("Counted source", "source", src.Name, "lines", len(lines), "distinct_letters", len(counts))

		results = append(results, manifest.SourceResult{
			Source:    src.Name,
			Hash:      src.Hash,
			SizeBytes: src.SizeBytes,
			Title:     page.Title,
			Lines:     len(lines),
			Counts:    counts,
		})
		intermediate = append(intermediate, counts)
		if lang != nil {
			allLines = append(allLines, lines...)
		}
	}

	totals := mapreduce.Reduce(intermediate)

	var language *detector.Result
	if lang != nil {
		detected := lang.Detect(allLines)
		language = &detected
		logger.Info("Language detected", "language", detected.Language, "confidence", detected.Confidence)
	}

	logger.Info("Letter count finished", "distinct_letters", len(totals), "elapsed_seconds", time.Since(startTime).Seconds())
	return manifest.GenerateReport(config, results, totals, language, time.Now()), nil
}

// PartitionAction prints the ranges partition.Split assigns to each worker.
func PartitionAction(c *cli.Context) error {
	ranges, err := partition.Split(c.Int("total"), c.Int("workers"))
	if err != nil {
		return err
	}

	type assignment struct {
		Worker int `json:"worker" yaml:"worker"`
		Start  int `json:"start" yaml:"start"`
		End    int `json:"end" yaml:"end"`
		Lines  int `json:"lines" yaml:"lines"`
	}
	assignments := make([]assignment, len(ranges))
	for i, r := range ranges {
		assignments[i] = assignment{Worker: i, Start: r.Start, End: r.End, Lines: r.Len()}
	}

	return manifest.Write(c.App.Writer, assignments, c.String("format"))
}
