package converter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/IliaW/scraper-api/config"
	"github.com/IliaW/scraper-api/internal/model"
	"github.com/nao1215/markdown"
)

const FormatMarkdown = "markdown"

var ErrUnsupportedFormat = errors.New("unsupported document format")

// DocumentConverter renders crawled pages into export documents.
// Markdown is the only supported format.
type DocumentConverter struct {
	cfg *config.ConverterConfig
}

func NewDocumentConverter(cfg *config.ConverterConfig) *DocumentConverter {
	return &DocumentConverter{
		cfg: cfg,
	}
}

// Convert renders the crawl result in the requested format.
func (c *DocumentConverter) Convert(result *model.CrawlResult, format string) (string, error) {
	if format != FormatMarkdown {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	return c.toMarkdown(result)
}

func (c *DocumentConverter) toMarkdown(result *model.CrawlResult) (string, error) {
	var b strings.Builder
	md := markdown.NewMarkdown(&b)

	for _, page := range result.Pages {
		c.writePage(md, page)
		md.HorizontalRule()
	}

	if err := md.Build(); err != nil {
		return "", err
	}

	return b.String(), nil
}

func (c *DocumentConverter) writePage(md *markdown.Markdown, page model.PageRecord) {
	if page.Content == nil {
		return
	}
	if c.cfg.IncludeTitle && page.Content.Title != "" {
		md.H1(page.Content.Title)
	}
	md.PlainText(markdown.Italic("Source: " + page.URL))

	if c.cfg.IncludeHeadings {
		for _, heading := range page.Content.Headings {
			writeHeading(md, heading)
		}
	}

	for _, paragraph := range page.Content.Paragraphs {
		md.PlainText(paragraph)
	}

	if c.cfg.IncludeCodeBlocks {
		for _, codeBlock := range page.Content.CodeBlocks {
			md.CodeBlocks(markdown.SyntaxHighlightNone, codeBlock)
		}
	}
}

func writeHeading(md *markdown.Markdown, heading model.Heading) {
	switch heading.Level {
	case 1:
		md.H1(heading.Text)
	case 2:
		md.H2(heading.Text)
	case 3:
		md.H3(heading.Text)
	case 4:
		md.H4(heading.Text)
	case 5:
		md.H5(heading.Text)
	default:
		md.H6(heading.Text)
	}
}
