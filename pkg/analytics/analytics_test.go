package analytics

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestIsAlphabetic(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"ascii lower", 'q', true},
		{"ascii upper", 'Q', true},
		{"digit", '7', false},
		{"space", ' ', false},
		{"punctuation", '!', false},
		{"latin with accent", 'é', true},
		{"greek", 'Ω', true},
		{"cyrillic", 'ж', true},
		{"han", '中', true},
		{"roman numeral letter number", 'Ⅻ', true},
		{"devanagari vowel sign", 'ा', true},
		{"arabic digit", '٣', false},
		{"emoji", '😀', false},
		{"replacement char", '�', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAlphabetic(tt.r))
		})
	}
}

func TestFolder_Fold(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want rune
	}{
		{"ascii upper", 'A', 'a'},
		{"ascii lower", 'z', 'z'},
		{"latin upper with accent", 'É', 'é'},
		{"greek sigma", 'Σ', 'σ'},
		{"cyrillic", 'Ж', 'ж'},
		{"dotted capital i keeps first code point", 'İ', 'i'},
		{"caseless", '中', '中'},
	}

	f := NewFolder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, string(tt.want), string(f.Fold(tt.r)))
		})
	}
}

func TestFolder_FoldMatchesSimpleLowercase(t *testing.T) {
	f := NewFolder()
	for _, r := range "ÀÉÎÕÜŸĀĞİŁŒŠŽΑΔΘΣΩАБЖЯԱՖＡＺ" {
		assert.Equal(t, string(unicode.ToLower(r)), string(f.Fold(r)), "Fold(%U)", r)
	}
}

func TestFolder_FoldCached(t *testing.T) {
	f := NewFolder()
	first := f.Fold('Ä')
	second := f.Fold('Ä')

	assert.Equal(t, 'ä', first)
	assert.Equal(t, first, second)
	assert.Contains(t, f.cache, 'Ä')
}

func TestLetterFrequency(t *testing.T) {
	a := &Analytics{}

	tests := []struct {
		name  string
		lines []string
		want  map[rune]int
	}{
		{
			name:  "nil input",
			lines: nil,
			want:  map[rune]int{},
		},
		{
			name:  "case insensitive",
			lines: []string{"A", "a"},
			want:  map[rune]int{'a': 2},
		},
		{
			name:  "non alphabetic excluded",
			lines: []string{"123 !@#", "\t\n"},
			want:  map[rune]int{},
		},
		{
			name:  "mixed scripts, final sigma folds to sigma",
			lines: []string{"Über straße", "ΣΑΣ"},
			want: map[rune]int{
				'ü': 1, 'b': 1, 'e': 2, 'r': 2, 's': 1, 't': 1, 'a': 1, 'ß': 1,
				'σ': 2, 'α': 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.LetterFrequency(tt.lines))
		})
	}
}

func TestLetterCount(t *testing.T) {
	assert.Equal(t, 0, LetterCount(nil))
	assert.Equal(t, 9, LetterCount([]string{"yay", "hooray!"}))
	assert.Equal(t, 3, LetterCount([]string{"a1b2", "C"}))
}
