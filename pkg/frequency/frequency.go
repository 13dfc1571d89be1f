// Package frequency counts letters across a set of lines with a fixed pool of
// concurrent workers.
//
// The input is split into one contiguous range per worker. Each worker builds
// its own partial table and hands it over exactly once; the aggregator waits
// for every worker and sums the partial tables. Because summation is
// commutative the result never depends on which worker finishes first.
package frequency

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dtnitsch/letter-frequency/pkg/analytics"
	"github.com/dtnitsch/letter-frequency/pkg/mapreduce"
	"github.com/dtnitsch/letter-frequency/pkg/partition"
)

var (
	// ErrInvalidWorkerCount is returned when fewer than one worker is requested.
	ErrInvalidWorkerCount = partition.ErrInvalidWorkerCount
	// ErrLostResult is returned when a worker fails to deliver its table.
	// Every spawned worker must deliver exactly one result, so this is fatal.
	ErrLostResult = errors.New("worker result lost before aggregation")
)

// partial is the one-shot message a worker sends to the aggregator.
type partial struct {
	WorkerID int
	Range    partition.Range
	Counts   map[rune]int
	Error    error
}

// Counter runs letter counts with a shared logger.
type Counter struct {
	logger    *slog.Logger
	analytics *analytics.Analytics
	mapFn     func(lines []string, a *analytics.Analytics) map[rune]int
}

// NewCounter returns a Counter that logs worker progress to logger. A nil
// logger discards everything.
func NewCounter(logger *slog.Logger) *Counter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Counter{
		logger:    logger,
		analytics: &analytics.Analytics{},
		mapFn:     mapreduce.Map,
	}
}

// Frequency counts the case-folded alphabetic letters in lines using
// workerCount concurrent workers.
func Frequency(lines []string, workerCount int) (map[rune]int, error) {
	return NewCounter(nil).Count(lines, workerCount)
}

// Count counts the case-folded alphabetic letters in lines using workerCount
// concurrent workers. lines must not be modified until Count returns.
//
// Either the full table is returned or an error; never a partial result.
func (c *Counter) Count(lines []string, workerCount int) (map[rune]int, error) {
	ranges, err := partition.Split(len(lines), workerCount)
	if err != nil {
		return nil, fmt.Errorf("failed to partition input: %w", err)
	}

	c.logger.Debug("Starting letter count", "lines", len(lines), "workers", workerCount)

	var wg sync.WaitGroup
	results := make(chan partial, workerCount)

	for id, r := range ranges {
		wg.Add(1)
		go c.worker(id, lines, r, &wg, results)
	}

	wg.Wait()
	close(results)

	totals := make(map[rune]int)
	received := 0
	var failures []error
	for result := range results {
		received++
		if result.Error != nil {
			failures = append(failures, result.Error)
			continue
		}
		mapreduce.Merge(totals, result.Counts)
	}

	if len(failures) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrLostResult, errors.Join(failures...))
	}
	if received != workerCount {
		return nil, fmt.Errorf("%w: received %d of %d results", ErrLostResult, received, workerCount)
	}

	c.logger.Debug("Letter count finished", "workers", workerCount, "distinct_letters", len(totals))
	return totals, nil
}

// worker scans its range and sends exactly one message on results, even if
// the scan panics.
func (c *Counter) worker(id int, lines []string, r partition.Range, wg *sync.WaitGroup, results chan<- partial) {
	defer wg.Done()

	result := partial{WorkerID: id, Range: r}
	defer func() {
		if p := recover(); p != nil {
			c.logger.Error("Worker panicked", "worker_id", id, "range", r.String(), "panic", p)
			result.Counts = nil
			result.Error = fmt.Errorf("worker %d on range %s panicked: %v", id, r, p)
		}
		results <- result
	}()

	c.logger.Debug("Worker started", "worker_id", id, "start", r.Start, "end", r.End)
	result.Counts = c.mapFn(lines[r.Start:r.End], c.analytics)
	c.logger.Debug("Worker finished", "worker_id", id, "distinct_letters", len(result.Counts))
}
