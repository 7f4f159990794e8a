package model

// Heading godoc
// @Description A single h1-h4 element in document order
// @Type Heading
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// PageContent godoc
// @Description Structured content extracted from one HTML page
// @Type PageContent
type PageContent struct {
	Title      string    `json:"title"`
	Headings   []Heading `json:"headings"`
	Paragraphs []string  `json:"paragraphs"`
	CodeBlocks []string  `json:"code_blocks"`
}

// PageRecord godoc
// @Description One successfully fetched and parsed page
// @Type PageRecord
type PageRecord struct {
	URL     string       `json:"url"`
	Content *PageContent `json:"content"`
}

// CrawlResult godoc
// @Description Accumulated outcome of one crawl invocation.
// Error is set only when the seed page itself could not be obtained;
// failures on secondary pages are skipped silently.
// @Type CrawlResult
type CrawlResult struct {
	BaseURL string       `json:"base_url"`
	Pages   []PageRecord `json:"pages"`
	Error   string       `json:"error,omitempty"`
}
