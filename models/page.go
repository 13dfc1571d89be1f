package models

import "strings"

// Page represents the text content of a single input source.
type Page struct {
	Source  string         `json:"source"`
	Title   string         `json:"title,omitempty"`
	Content []ContentBlock `json:"content"`
}

// ContentBlock represents a semantic block of text on a page.
type ContentBlock struct {
	Type string `json:"type"` // e.g., "line", "h1", "p", "li", "pre"
	Text string `json:"text"`
}

// ToLines returns the text of every block, one line per block line.
// Blocks that span several lines (pre, text input) are split on newlines.
func (p *Page) ToLines() []string {
	lines := make([]string, 0, len(p.Content))

	for _, block := range p.Content {
		if !strings.Contains(block.Text, "\n") {
			lines = append(lines, block.Text)
			continue
		}
		lines = append(lines, strings.Split(block.Text, "\n")...)
	}

	return lines
}
