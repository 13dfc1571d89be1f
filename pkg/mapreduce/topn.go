package mapreduce

import (
	"fmt"
	"io"
	"sort"
)

// LetterCount pairs a letter with its occurrence count.
type LetterCount struct {
	Letter rune
	Count  int
}

// Sorted orders a frequency table by count (descending), breaking ties by
// letter so the output is stable across runs.
func Sorted(counts map[rune]int) []LetterCount {
	ss := make([]LetterCount, 0, len(counts))
	for k, v := range counts {
		ss = append(ss, LetterCount{Letter: k, Count: v})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Count != ss[j].Count {
			return ss[i].Count > ss[j].Count
		}
		return ss[i].Letter < ss[j].Letter
	})

	return ss
}

// TopLetters returns the top N letters formatted as "letter:count"
// (e.g., "e:1153"). n <= 0 returns every letter.
func TopLetters(counts map[rune]int, n int) []string {
	ss := Sorted(counts)

	limit := n
	if limit <= 0 || len(ss) < limit {
		limit = len(ss)
	}

	letters := make([]string, limit)
	for i := 0; i < limit; i++ {
		letters[i] = fmt.Sprintf("%c:%d", ss[i].Letter, ss[i].Count)
	}

	return letters
}

// PrintTopLetters writes the top N letters as a numbered list.
func PrintTopLetters(w io.Writer, counts map[rune]int, n int) {
	for i, entry := range TopLetters(counts, n) {
		fmt.Fprintf(w, "%d. %s\n", i+1, entry)
	}
}
