package frequency

import (
	"bytes"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/dtnitsch/letter-frequency/pkg/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// odeToJoy is a short multi-line text used across the property tests.
var odeToJoy = []string{
	"Freude schöner Götterfunken",
	"Tochter aus Elysium,",
	"Wir betreten feuertrunken,",
	"Himmlische, dein Heiligtum!",
	"Deine Zauber binden wieder",
	"Was die Mode streng geteilt;",
	"Alle Menschen werden Brüder,",
	"Wo dein sanfter Flügel weilt.",
}

func sum(counts map[rune]int) int {
	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}

func TestFrequency(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		workers int
		want    map[rune]int
	}{
		{
			name:    "case insensitive",
			lines:   []string{"A", "a"},
			workers: 1,
			want:    map[rune]int{'a': 2},
		},
		{
			name:    "non alphabetic excluded",
			lines:   []string{"123 !@#"},
			workers: 2,
			want:    map[rune]int{},
		},
		{
			name:    "empty input",
			lines:   []string{},
			workers: 4,
			want:    map[rune]int{},
		},
		{
			name:    "nil input",
			lines:   nil,
			workers: 3,
			want:    map[rune]int{},
		},
		{
			name:    "yay hooray",
			lines:   []string{"yay", "hooray"},
			workers: 2,
			want:    map[rune]int{'y': 3, 'a': 2, 'h': 1, 'o': 2, 'r': 1},
		},
		{
			name:    "more workers than lines",
			lines:   []string{"Aa", "Bb"},
			workers: 16,
			want:    map[rune]int{'a': 2, 'b': 2},
		},
		{
			name:    "unicode letters",
			lines:   []string{"ÀÉÎ", "àéî", "Ⅻ"},
			workers: 2,
			want:    map[rune]int{'à': 2, 'é': 2, 'î': 2, 'ⅻ': 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Frequency(tt.lines, tt.workers)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFrequency_InvalidWorkerCount(t *testing.T) {
	for _, workers := range []int{0, -1} {
		got, err := Frequency([]string{"abc"}, workers)
		assert.ErrorIs(t, err, ErrInvalidWorkerCount)
		assert.Nil(t, got)
	}
}

func TestFrequency_WorkerCountInvariance(t *testing.T) {
	want, err := Frequency(odeToJoy, 1)
	require.NoError(t, err)

	for workers := 2; workers <= len(odeToJoy)+4; workers++ {
		got, err := Frequency(odeToJoy, workers)
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers = %d", workers)
	}
}

func TestFrequency_Completeness(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	alphabet := []rune("abcXYZ éÜß 0123 .,!Ωж\t")

	lines := make([]string, 200)
	for i := range lines {
		var sb strings.Builder
		for j := rng.IntN(40); j > 0; j-- {
			sb.WriteRune(alphabet[rng.IntN(len(alphabet))])
		}
		lines[i] = sb.String()
	}

	for _, workers := range []int{1, 3, 8, 64, 500} {
		got, err := Frequency(lines, workers)
		require.NoError(t, err)
		assert.Equal(t, analytics.LetterCount(lines), sum(got), "workers = %d", workers)
		for letter, count := range got {
			assert.Positive(t, count, "letter %q", letter)
		}
	}
}

func TestFrequency_Idempotent(t *testing.T) {
	first, err := Frequency(odeToJoy, 3)
	require.NoError(t, err)
	second, err := Frequency(odeToJoy, 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFrequency_DoesNotMutateInput(t *testing.T) {
	lines := append([]string(nil), odeToJoy...)

	_, err := Frequency(lines, 4)
	require.NoError(t, err)

	assert.Equal(t, odeToJoy, lines)
}

func TestCount_WorkerPanicIsFatal(t *testing.T) {
	c := NewCounter(nil)
	var calls atomic.Int32
	c.mapFn = func(lines []string, a *analytics.Analytics) map[rune]int {
		if calls.Add(1) == 2 {
			panic("boom")
		}
		return a.LetterFrequency(lines)
	}

	got, err := c.Count(odeToJoy, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLostResult)
	assert.Contains(t, err.Error(), "boom")
	assert.Nil(t, got)
	assert.Equal(t, int32(4), calls.Load())
}

func TestCount_EveryWorkerRuns(t *testing.T) {
	c := NewCounter(nil)
	var calls atomic.Int32
	c.mapFn = func(lines []string, a *analytics.Analytics) map[rune]int {
		calls.Add(1)
		return a.LetterFrequency(lines)
	}

	_, err := c.Count([]string{"only one line"}, 6)
	require.NoError(t, err)
	assert.Equal(t, int32(6), calls.Load())
}

func TestCount_LogsWorkerMarkers(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := NewCounter(logger).Count([]string{"yay", "hooray"}, 2)
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, `"msg":"Worker started"`))
	assert.Equal(t, 2, strings.Count(out, `"msg":"Worker finished"`))
	assert.Contains(t, out, `"worker_id":1`)
}
