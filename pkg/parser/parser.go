package parser

import (
	"bytes"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/letter-frequency/internal/common"
	"github.com/dtnitsch/letter-frequency/models"
	"github.com/go-shiori/go-readability"
)

// invisible lists elements whose text never renders.
const invisible = "script,style,noscript,template,head"

type Parser struct{}

// Parse turns raw source bytes into a Page according to req.Format.
func (p *Parser) Parse(req models.ParseRequest) (*models.Page, error) {
	switch req.Format {
	case models.InputFormatText, "":
		return p.parseText(req), nil
	case models.InputFormatHTML:
		return p.parseHTML(req)
	case models.InputFormatArticle:
		return p.parseArticle(req)
	default:
		return nil, fmt.Errorf("unsupported input format %q", req.Format)
	}
}

// ExtractLines is Parse followed by Page.ToLines.
func (p *Parser) ExtractLines(req models.ParseRequest) ([]string, error) {
	page, err := p.Parse(req)
	if err != nil {
		return nil, err
	}
	return page.ToLines(), nil
}

func (p *Parser) parseText(req models.ParseRequest) *models.Page {
	lines := common.SplitLines(req.Content)
	content := make([]models.ContentBlock, len(lines))
	for i, line := range lines {
		content[i] = models.ContentBlock{Type: "line", Text: line}
	}
	return &models.Page{Source: req.Source, Content: content}
}

func (p *Parser) parseHTML(req models.ParseRequest) (*models.Page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(req.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	title := normalizeText(doc.Find("title").First().Text())
	page := &models.Page{Source: req.Source, Title: title}
	if title != "" {
		page.Content = append(page.Content, models.ContentBlock{Type: "title", Text: title})
	}
	page.Content = append(page.Content, visibleBlocks(doc.Selection)...)
	return page, nil
}

// parseArticle uses go-readability to find the main content, then reads the
// visible text of that content with goquery.
func (p *Parser) parseArticle(req models.ParseRequest) (*models.Page, error) {
	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(bytes.NewReader(req.Content), sourceURL(req.Source))
	if err != nil {
		return nil, fmt.Errorf("failed to extract article: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse article HTML: %w", err)
	}

	title := normalizeText(article.Title)
	page := &models.Page{Source: req.Source, Title: title}
	if title != "" {
		page.Content = append(page.Content, models.ContentBlock{Type: "title", Text: title})
	}
	page.Content = append(page.Content, visibleBlocks(doc.Selection)...)
	return page, nil
}

// visibleBlocks returns one block per non-blank rendered text line. Text is
// taken once from the whole body so nested elements are never counted twice.
func visibleBlocks(doc *goquery.Selection) []models.ContentBlock {
	doc.Find(invisible).Remove()

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc
	}

	var blocks []models.ContentBlock
	for _, raw := range strings.Split(root.Text(), "\n") {
		line := normalizeText(raw)
		if line != "" {
			blocks = append(blocks, models.ContentBlock{Type: "text", Text: line})
		}
	}
	return blocks
}

// normalizeText trims surrounding space and collapses runs of whitespace.
func normalizeText(input string) string {
	return strings.Join(strings.Fields(input), " ")
}

// sourceURL gives readability a base URL for resolving relative links.
func sourceURL(source string) *url.URL {
	if common.IsURL(source) {
		if parsed, err := url.Parse(source); err == nil {
			return parsed
		}
	}
	return &url.URL{Scheme: "file", Path: filepath.ToSlash(source)}
}
