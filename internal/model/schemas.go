package model

// ScrapeConfigRequest godoc
// @Description Optional per-job crawler overrides. Absent fields keep
// the server defaults.
// @Type ScrapeConfigRequest
type ScrapeConfigRequest struct {
	MaxPages            *int     `json:"max_pages"`
	RateLimit           *float64 `json:"rate_limit"`
	RespectRobotsTxt    *bool    `json:"respect_robots_txt"`
	ScrapeMultiplePages *bool    `json:"scrape_multiple_pages"`
}

// ScrapeRequest godoc
// @Description Request body for starting a scraping job
// @Type ScrapeRequest
type ScrapeRequest struct {
	URL    string               `json:"url" binding:"required"`
	Config *ScrapeConfigRequest `json:"config"`
}

// ScrapeResponse godoc
// @Description The created job id together with the crawl outcome
// @Type ScrapeResponse
type ScrapeResponse struct {
	JobID   int64        `json:"job_id"`
	BaseURL string       `json:"base_url"`
	Pages   []PageRecord `json:"pages"`
	Error   string       `json:"error,omitempty"`
}

// ConvertRequest godoc
// @Description Formats to render a job's content into
// @Type ConvertRequest
type ConvertRequest struct {
	Formats []string `json:"formats" binding:"required"`
}

// JobSummary godoc
// @Description A job list entry without the content payload
// @Type JobSummary
type JobSummary struct {
	ID        int64  `json:"id"`
	URL       string `json:"url"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
