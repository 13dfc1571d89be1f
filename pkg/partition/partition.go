// Package partition splits an input of N items into contiguous index ranges,
// one per worker.
package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWorkerCount is returned when fewer than one worker is requested.
	ErrInvalidWorkerCount = errors.New("worker count must be at least 1")
	// ErrInvalidTotal is returned for a negative item count.
	ErrInvalidTotal = errors.New("total items must not be negative")
)

// Range is a half-open index range [Start, End) into the input.
type Range struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Len returns the number of items covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Empty reports whether the range covers no items.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Split divides total items into exactly workers contiguous ranges.
//
// Boundary i sits at round(total*i/workers), rounding half away from zero. The
// remainder is spread across the ranges instead of landing on the last one, and
// when workers > total the surplus ranges are empty.
func Split(total, workers int) ([]Range, error) {
	if workers < 1 {
		return nil, fmt.Errorf("split %d items into %d ranges: %w", total, workers, ErrInvalidWorkerCount)
	}
	if total < 0 {
		return nil, fmt.Errorf("split %d items into %d ranges: %w", total, workers, ErrInvalidTotal)
	}

	ranges := make([]Range, workers)
	start := 0
	for i := 0; i < workers; i++ {
		end := boundary(total, workers, i+1)
		ranges[i] = Range{Start: start, End: end}
		start = end
	}
	return ranges, nil
}

// boundary computes round(total*i/workers) for non-negative operands without
// going through floating point.
func boundary(total, workers, i int) int {
	return (2*total*i + workers) / (2 * workers)
}
