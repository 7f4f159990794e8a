package crawler

import (
	"strconv"
	"strings"

	"github.com/IliaW/scraper-api/internal/model"
	"github.com/PuerkitoBio/goquery"
)

// ExtractContent pulls the structured record out of a parsed page.
// Pure and deterministic; malformed markup simply yields empty fields
// thanks to the parser's leniency.
func ExtractContent(doc *goquery.Document) *model.PageContent {
	content := &model.PageContent{
		Headings:   make([]model.Heading, 0),
		Paragraphs: make([]string, 0),
		CodeBlocks: make([]string, 0),
	}

	content.Title = strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find("h1, h2, h3, h4").Each(func(_ int, s *goquery.Selection) {
		level, err := strconv.Atoi(strings.TrimPrefix(goquery.NodeName(s), "h"))
		if err != nil {
			return
		}
		content.Headings = append(content.Headings, model.Heading{
			Level: level,
			Text:  strings.TrimSpace(s.Text()),
		})
	})

	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" {
			content.Paragraphs = append(content.Paragraphs, text)
		}
	})

	doc.Find("code").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" {
			content.CodeBlocks = append(content.CodeBlocks, text)
		}
	})

	return content
}
