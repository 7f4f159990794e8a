package model

import "time"

const (
	JobStatusPending   = "pending"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// Job godoc
// @Description A scraping job with its configuration and crawled content
// @Type Job
type Job struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	Status    string    `json:"status"`
	Config    string    `json:"config,omitempty"`  // json-encoded crawler config
	Content   string    `json:"content,omitempty"` // json-encoded CrawlResult
	Timestamp time.Time `json:"timestamp"`
}

// QAPair godoc
// @Description A generated question-answer pair tied to a job
// @Type QAPair
type QAPair struct {
	ID              int64   `json:"id,omitempty"`
	JobID           int64   `json:"job_id,omitempty"`
	Question        string  `json:"question"`
	Answer          string  `json:"answer"`
	ConfidenceScore float64 `json:"confidence_score"`
	Category        string  `json:"category"`
	SourceURL       string  `json:"source_url,omitempty"`
}

// Document godoc
// @Description A converted export document for a job
// @Type Document
type Document struct {
	ID      int64  `json:"id,omitempty"`
	JobID   int64  `json:"job_id"`
	Content string `json:"content"`
	Format  string `json:"format"`
}
