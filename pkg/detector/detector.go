package detector

import (
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Unknown is reported when no language could be chosen.
const Unknown = "unknown"

// Result is the language guess for a body of text.
type Result struct {
	Language   string  `json:"language" yaml:"language"`             // English name, or "unknown"
	Code       string  `json:"code,omitempty" yaml:"code,omitempty"` // ISO 639-1
	Confidence float64 `json:"confidence" yaml:"confidence"`         // 0-1
}

// Detector guesses which of a fixed set of languages a text is written in.
// It is safe for concurrent use.
type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a detector restricted to the given ISO 639-1 codes. lingua needs
// at least two candidates to choose between.
func New(codes []string) (*Detector, error) {
	languages, err := resolveLanguages(codes)
	if err != nil {
		return nil, err
	}
	if len(languages) < 2 {
		return nil, fmt.Errorf("language detection needs at least 2 languages, got %d", len(languages))
	}

	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			WithMinimumRelativeDistance(0.05).
			Build(),
	}, nil
}

// Detect guesses the language of lines taken as one text.
func (d *Detector) Detect(lines []string) Result {
	text := strings.TrimSpace(strings.Join(lines, "\n"))
	if text == "" {
		return Result{Language: Unknown}
	}

	language, exists := d.detector.DetectLanguageOf(text)
	if !exists {
		return Result{Language: Unknown}
	}

	return Result{
		Language:   language.String(),
		Code:       strings.ToLower(language.IsoCode639_1().String()),
		Confidence: d.detector.ComputeLanguageConfidence(text, language),
	}
}

func resolveLanguages(codes []string) ([]lingua.Language, error) {
	byCode := make(map[string]lingua.Language)
	for _, language := range lingua.AllLanguages() {
		byCode[strings.ToLower(language.IsoCode639_1().String())] = language
	}

	seen := make(map[lingua.Language]bool)
	languages := make([]lingua.Language, 0, len(codes))
	for _, code := range codes {
		language, ok := byCode[strings.ToLower(strings.TrimSpace(code))]
		if !ok {
			return nil, fmt.Errorf("unknown language code %q", code)
		}
		if !seen[language] {
			seen[language] = true
			languages = append(languages, language)
		}
	}
	return languages, nil
}
