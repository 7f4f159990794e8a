package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IliaW/scraper-api/config"
	"github.com/IliaW/scraper-api/internal/converter"
	"github.com/IliaW/scraper-api/internal/crawler"
	crawlerMock "github.com/IliaW/scraper-api/internal/crawler/mocks"
	"github.com/IliaW/scraper-api/internal/model"
	storageMock "github.com/IliaW/scraper-api/internal/persistence/mocks"
	qaMock "github.com/IliaW/scraper-api/internal/qa/mocks"
	"github.com/IliaW/scraper-api/internal/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		ServiceName: "scraper-api-test",
		CrawlerSettings: &config.CrawlerConfig{
			MaxPages:            100,
			RateLimit:           1,
			RespectRobotsTxt:    true,
			ScrapeMultiplePages: true,
			UserAgent:           "test-bot",
		},
		ConverterSettings: &config.ConverterConfig{
			IncludeTitle:      true,
			IncludeHeadings:   true,
			IncludeCodeBlocks: true,
		},
		TelemetrySettings: &config.TelemetryConfig{
			Enabled: false,
		},
	}
}

func testMetrics(t *testing.T) *telemetry.MetricsProvider {
	t.Helper()
	return telemetry.SetupMetrics(context.Background(), testConfig())
}

type handlerMocks struct {
	jobRepo   *storageMock.JobStorage
	qaRepo    *storageMock.QAPairStorage
	docRepo   *storageMock.DocumentStorage
	generator *qaMock.PairGenerator
	scraper   *crawlerMock.Scraper
}

func newTestHandler(t *testing.T) (*ScraperApiHandler, *handlerMocks) {
	t.Helper()
	m := &handlerMocks{
		jobRepo:   storageMock.NewJobStorage(t),
		qaRepo:    storageMock.NewQAPairStorage(t),
		docRepo:   storageMock.NewDocumentStorage(t),
		generator: qaMock.NewPairGenerator(t),
		scraper:   crawlerMock.NewScraper(t),
	}
	cfg := testConfig()
	metrics := testMetrics(t)
	h := NewScraperApiHandler(cfg, m.jobRepo, m.qaRepo, m.docRepo, m.generator,
		converter.NewDocumentConverter(cfg.ConverterSettings),
		func(crawlCfg *config.CrawlerConfig) crawler.Scraper { return m.scraper },
		metrics.ApiMetrics, metrics.CrawlMetrics)

	return h, m
}

func Test_ScrapeUrl_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testSet := []struct {
		name               string
		body               string
		mockScrape         func() (*model.CrawlResult, error)
		expectedJobStatus  string
		expectedStatusCode int
		expectedResponse   string
	}{
		{
			name: "successful crawl",
			body: `{"url": "https://example.com/docs"}`,
			mockScrape: func() (*model.CrawlResult, error) {
				return &model.CrawlResult{
					BaseURL: "https://example.com/docs",
					Pages: []model.PageRecord{
						{URL: "https://example.com/docs", Content: &model.PageContent{Title: "Docs"}},
					},
				}, nil
			},
			expectedJobStatus:  model.JobStatusCompleted,
			expectedStatusCode: http.StatusOK,
			expectedResponse:   "\"job_id\":1",
		},
		{
			name: "unreachable seed completes the request but fails the job",
			body: `{"url": "https://example.com/docs"}`,
			mockScrape: func() (*model.CrawlResult, error) {
				return &model.CrawlResult{
					BaseURL: "https://example.com/docs",
					Pages:   []model.PageRecord{},
					Error:   "failed to fetch main URL: https://example.com/docs",
				}, nil
			},
			expectedJobStatus:  model.JobStatusFailed,
			expectedStatusCode: http.StatusOK,
			expectedResponse:   "failed to fetch main URL",
		},
		{
			name: "malformed seed",
			body: `{"url": "example.com/docs"}`,
			mockScrape: func() (*model.CrawlResult, error) {
				return nil, fmt.Errorf("%w: example.com/docs", crawler.ErrInvalidSeedUrl)
			},
			expectedJobStatus:  model.JobStatusFailed,
			expectedStatusCode: http.StatusBadRequest,
			expectedResponse:   "invalid seed url",
		},
		{
			name: "robots denied seed",
			body: `{"url": "https://example.com/docs"}`,
			mockScrape: func() (*model.CrawlResult, error) {
				return nil, fmt.Errorf("%w: https://example.com/docs", crawler.ErrDisallowedByRobots)
			},
			expectedJobStatus:  model.JobStatusFailed,
			expectedStatusCode: http.StatusForbidden,
			expectedResponse:   "robots.txt disallows scraping",
		},
		{
			name: "unexpected scraper error",
			body: `{"url": "https://example.com/docs"}`,
			mockScrape: func() (*model.CrawlResult, error) {
				return nil, errors.New("boom")
			},
			expectedJobStatus:  model.JobStatusFailed,
			expectedStatusCode: http.StatusInternalServerError,
			expectedResponse:   "boom",
		},
	}
	for _, test := range testSet {
		t.Run(test.name, func(tt *testing.T) {
			h, m := newTestHandler(tt)
			m.jobRepo.On("Create", mock.Anything, mock.Anything).Return(int64(1), nil)
			m.jobRepo.On("UpdateStatus", int64(1), model.JobStatusRunning).Return(nil)
			result, scrapeErr := test.mockScrape()
			m.scraper.On("Scrape", mock.Anything).Return(result, scrapeErr)
			if scrapeErr != nil {
				m.jobRepo.On("UpdateStatus", int64(1), model.JobStatusFailed).Return(nil)
			} else {
				m.jobRepo.On("UpdateContent", int64(1), test.expectedJobStatus, mock.Anything).Return(nil)
			}

			r := gin.Default()
			r.POST("/scrape", h.ScrapeUrl)
			req, _ := http.NewRequest("POST", "/scrape", strings.NewReader(test.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			responseData, _ := io.ReadAll(w.Body)
			assert.Equal(tt, test.expectedStatusCode, w.Code)
			assert.Contains(tt, string(responseData), test.expectedResponse)
		})
	}
}

func Test_ScrapeUrl_Handler_InvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, _ := newTestHandler(t)

	r := gin.Default()
	r.POST("/scrape", h.ScrapeUrl)
	for _, body := range []string{``, `{}`, `{"config": {"max_pages": 5}}`, `not json`} {
		req, _ := http.NewRequest("POST", "/scrape", strings.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func Test_ScrapeUrl_Handler_CreateJobFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, m := newTestHandler(t)
	m.jobRepo.On("Create", mock.Anything, mock.Anything).Return(int64(0), errors.New("db is down"))

	r := gin.Default()
	r.POST("/scrape", h.ScrapeUrl)
	req, _ := http.NewRequest("POST", "/scrape", strings.NewReader(`{"url": "https://example.com"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func Test_mergeCrawlerConfig(t *testing.T) {
	h, _ := newTestHandler(t)

	merged := h.mergeCrawlerConfig(nil)
	assert.Equal(t, *h.cfg.CrawlerSettings, *merged)

	maxPages := 5
	rateLimit := 2.5
	respectRobots := false
	multiplePages := false
	merged = h.mergeCrawlerConfig(&model.ScrapeConfigRequest{
		MaxPages:            &maxPages,
		RateLimit:           &rateLimit,
		RespectRobotsTxt:    &respectRobots,
		ScrapeMultiplePages: &multiplePages,
	})
	assert.Equal(t, 5, merged.MaxPages)
	assert.Equal(t, 2.5, merged.RateLimit)
	assert.False(t, merged.RespectRobotsTxt)
	assert.False(t, merged.ScrapeMultiplePages)
	assert.Equal(t, "test-bot", merged.UserAgent)

	// non-positive overrides keep the defaults
	zero := 0
	merged = h.mergeCrawlerConfig(&model.ScrapeConfigRequest{MaxPages: &zero})
	assert.Equal(t, 100, merged.MaxPages)

	// the server defaults are never mutated
	assert.Equal(t, 100, h.cfg.CrawlerSettings.MaxPages)
	assert.True(t, h.cfg.CrawlerSettings.RespectRobotsTxt)
}
