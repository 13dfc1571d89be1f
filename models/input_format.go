package models

import (
	"fmt"
	"strings"
)

// InputFormat describes how raw source bytes are turned into lines.
type InputFormat string

const (
	InputFormatText    InputFormat = "text"    // Lines as written
	InputFormatHTML    InputFormat = "html"    // Visible block text of an HTML document
	InputFormatArticle InputFormat = "article" // Main article content of an HTML document
)

// ParseInputFormat resolves a user supplied format name. An empty name means text.
func ParseInputFormat(name string) (InputFormat, error) {
	switch f := InputFormat(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return InputFormatText, nil
	case InputFormatText, InputFormatHTML, InputFormatArticle:
		return f, nil
	default:
		return "", fmt.Errorf("unknown input format %q (want text, html or article)", name)
	}
}
