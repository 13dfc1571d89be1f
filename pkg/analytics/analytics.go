package analytics

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Analytics holds no state and may be shared by any number of workers.
type Analytics struct{}

// IsAlphabetic reports whether r carries the Unicode Alphabetic property:
// letters, letter numbers (Nl) and the Other_Alphabetic marks.
func IsAlphabetic(r rune) bool {
	if r < utf8.RuneSelf {
		return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
	}
	return unicode.IsLetter(r) || unicode.In(r, unicode.Nl, unicode.Other_Alphabetic)
}

// Folder lowercases single runes, one at a time and without context. For
// every alphabetic rune the result equals unicode.ToLower: U+0130 becomes 'i'
// and a final 'Σ' becomes 'σ', never 'ς'.
//
// A Folder is not safe for concurrent use.
type Folder struct {
	caser cases.Caser
	cache map[rune]rune
}

func NewFolder() *Folder {
	return &Folder{
		caser: cases.Lower(language.Und),
		cache: make(map[rune]rune),
	}
}

// Fold returns the lowercase form of r.
func (f *Folder) Fold(r rune) rune {
	if r < utf8.RuneSelf {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}
	if folded, ok := f.cache[r]; ok {
		return folded
	}

	folded, size := utf8.DecodeRuneInString(f.caser.String(string(r)))
	if size == 0 || folded == utf8.RuneError {
		folded = unicode.ToLower(r)
	}
	f.cache[r] = folded
	return folded
}

// LetterFrequency counts the alphabetic runes of lines, case-folded to
// lowercase. Everything else is skipped.
func (a *Analytics) LetterFrequency(lines []string) map[rune]int {
	folder := NewFolder()
	frequencies := make(map[rune]int)

	for _, line := range lines {
		for _, r := range line {
			if !IsAlphabetic(r) {
				continue
			}
			frequencies[folder.Fold(r)]++
		}
	}

	return frequencies
}

// LetterCount returns the number of alphabetic runes in lines.
func LetterCount(lines []string) int {
	n := 0
	for _, line := range lines {
		for _, r := range line {
			if IsAlphabetic(r) {
				n++
			}
		}
	}
	return n
}
