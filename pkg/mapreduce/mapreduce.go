package mapreduce

import "github.com/dtnitsch/letter-frequency/pkg/analytics"

// Map generates a letter frequency table for one contiguous run of lines.
func Map(lines []string, a *analytics.Analytics) map[rune]int {
	return a.LetterFrequency(lines)
}

// Merge adds every count of partial into totals.
func Merge(totals, partial map[rune]int) {
	for letter, count := range partial {
		totals[letter] += count
	}
}

// Reduce aggregates a slice of letter frequency tables into a single table.
// The result does not depend on the order of intermediate.
func Reduce(intermediate []map[rune]int) map[rune]int {
	finalResults := make(map[rune]int)

	for _, counts := range intermediate {
		Merge(finalResults, counts)
	}

	return finalResults
}
