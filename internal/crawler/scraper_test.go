package crawler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/IliaW/scraper-api/config"
	"github.com/IliaW/scraper-api/internal/crawler/mocks"
	"github.com/IliaW/scraper-api/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testCrawlMetrics(t *testing.T) *telemetry.CrawlMetrics {
	t.Helper()
	return telemetry.SetupMetrics(context.Background(), &config.Config{
		ServiceName: "scraper-api-test",
		TelemetrySettings: &config.TelemetryConfig{
			Enabled: false,
		},
	}).CrawlMetrics
}

func newTestScraper(t *testing.T, cfg *config.CrawlerConfig) *WebScraper {
	t.Helper()
	limiter := mocks.NewLimiter(t)
	limiter.On("Acquire").Maybe()
	robots := mocks.NewRobotsPolicy(t)
	robots.On("CanFetch", mock.Anything, mock.Anything).Maybe().Return(true)
	fetcher := NewFetcher(limiter, 2*time.Second, cfg.UserAgent)

	return NewWebScraper(cfg, robots, fetcher, testCrawlMetrics(t))
}

func docSiteServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>Docs</title></head><body>
			<h1>Welcome</h1>
			<p>Start here.</p>
			<a href="/a">a</a>
			<a href="/b">b</a>
			<a href="/a">a again</a>
			<a href="/c">c</a>
			<a href="/d">d</a>
			</body></html>`))
	})
	for _, page := range []string{"/a", "/b", "/c", "/d"} {
		title := page
		mux.HandleFunc(page, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html><head><title>` + title + `</title></head><body>
				<p>Secondary page.</p>
				<a href="/never-followed">depth two</a>
				</body></html>`))
		})
	}

	return httptest.NewServer(mux)
}

func Test_WebScraper_SeedIsFirstAndBudgetHolds(t *testing.T) {
	server := docSiteServer()
	defer server.Close()

	scraper := newTestScraper(t, &config.CrawlerConfig{
		MaxPages:            3,
		ScrapeMultiplePages: true,
		UserAgent:           "test-bot",
	})

	result, err := scraper.Scrape(server.URL)
	assert.NoError(t, err)
	assert.Empty(t, result.Error)
	assert.Equal(t, server.URL, result.BaseURL)
	assert.Len(t, result.Pages, 3)
	assert.Equal(t, server.URL, result.Pages[0].URL)
	assert.Equal(t, "Docs", result.Pages[0].Content.Title)
	assert.Equal(t, server.URL+"/a", result.Pages[1].URL)
	assert.Equal(t, server.URL+"/b", result.Pages[2].URL)

	seen := make(map[string]struct{})
	for _, page := range result.Pages {
		_, dup := seen[page.URL]
		assert.False(t, dup, "duplicate page %s", page.URL)
		seen[page.URL] = struct{}{}
	}
}

func Test_WebScraper_DuplicateCandidatesConsumeBudget(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			_, _ = w.Write([]byte(`<html><body>
				<a href="/a">a</a>
				<a href="/a">a</a>
				<a href="/b">b</a>
				</body></html>`))
			return
		}
		_, _ = w.Write([]byte(`<html><body><p>page</p></body></html>`))
	}))
	defer server.Close()

	scraper := newTestScraper(t, &config.CrawlerConfig{
		MaxPages:            3,
		ScrapeMultiplePages: true,
		UserAgent:           "test-bot",
	})

	// candidates are truncated to the budget before the visited set can
	// drop the repeated /a, so /b never gets a slot
	result, err := scraper.Scrape(server.URL)
	assert.NoError(t, err)
	assert.Len(t, result.Pages, 2)
	assert.Equal(t, server.URL+"/a", result.Pages[1].URL)
}

func Test_WebScraper_SinglePageMode(t *testing.T) {
	server := docSiteServer()
	defer server.Close()

	scraper := newTestScraper(t, &config.CrawlerConfig{
		MaxPages:            10,
		ScrapeMultiplePages: false,
		UserAgent:           "test-bot",
	})

	result, err := scraper.Scrape(server.URL)
	assert.NoError(t, err)
	assert.Len(t, result.Pages, 1)
	assert.Equal(t, server.URL, result.Pages[0].URL)
}

func Test_WebScraper_MaxPagesOne(t *testing.T) {
	server := docSiteServer()
	defer server.Close()

	scraper := newTestScraper(t, &config.CrawlerConfig{
		MaxPages:            1,
		ScrapeMultiplePages: true,
		UserAgent:           "test-bot",
	})

	result, err := scraper.Scrape(server.URL)
	assert.NoError(t, err)
	assert.Len(t, result.Pages, 1)
	assert.Equal(t, server.URL, result.Pages[0].URL)
}

func Test_WebScraper_UnreachableSeed(t *testing.T) {
	scraper := newTestScraper(t, &config.CrawlerConfig{
		MaxPages:            3,
		ScrapeMultiplePages: true,
		UserAgent:           "test-bot",
	})

	result, err := scraper.Scrape("http://127.0.0.1:1/docs")
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Contains(t, result.Error, "failed to fetch main URL")
	assert.Empty(t, result.Pages)
}

func Test_WebScraper_MalformedSeed(t *testing.T) {
	scraper := newTestScraper(t, &config.CrawlerConfig{
		MaxPages:  3,
		UserAgent: "test-bot",
	})

	for _, seed := range []string{"example.com/docs", "ftp://example.com", ""} {
		result, err := scraper.Scrape(seed)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrInvalidSeedUrl)
	}
}

func Test_WebScraper_RobotsDeniedSeed(t *testing.T) {
	limiter := mocks.NewLimiter(t)
	robots := mocks.NewRobotsPolicy(t)
	robots.On("CanFetch", "https://example.com/docs", "test-bot").Return(false)
	cfg := &config.CrawlerConfig{
		MaxPages:         3,
		RespectRobotsTxt: true,
		UserAgent:        "test-bot",
	}
	scraper := NewWebScraper(cfg, robots, NewFetcher(limiter, 2*time.Second, cfg.UserAgent),
		testCrawlMetrics(t))

	result, err := scraper.Scrape("https://example.com/docs")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrDisallowedByRobots)
}

func Test_WebScraper_RobotsCheckedOnSeedOnly(t *testing.T) {
	server := docSiteServer()
	defer server.Close()

	limiter := mocks.NewLimiter(t)
	limiter.On("Acquire").Maybe()
	robots := mocks.NewRobotsPolicy(t)
	robots.On("CanFetch", server.URL, "test-bot").Once().Return(true)
	cfg := &config.CrawlerConfig{
		MaxPages:            3,
		RespectRobotsTxt:    true,
		ScrapeMultiplePages: true,
		UserAgent:           "test-bot",
	}
	scraper := NewWebScraper(cfg, robots, NewFetcher(limiter, 2*time.Second, cfg.UserAgent),
		testCrawlMetrics(t))

	result, err := scraper.Scrape(server.URL)
	assert.NoError(t, err)
	assert.Len(t, result.Pages, 3)
	robots.AssertNumberOfCalls(t, "CanFetch", 1)
}

func Test_WebScraper_SecondaryFailuresAreSkipped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			_, _ = w.Write([]byte(`<html><body>
				<a href="/bad">bad</a>
				<a href="/good">good</a>
				</body></html>`))
		case "/bad":
			w.WriteHeader(http.StatusNotFound)
		case "/good":
			_, _ = w.Write([]byte(`<html><head><title>Good</title></head><body><p>fine</p></body></html>`))
		}
	}))
	defer server.Close()

	scraper := newTestScraper(t, &config.CrawlerConfig{
		MaxPages:            5,
		ScrapeMultiplePages: true,
		UserAgent:           "test-bot",
	})

	result, err := scraper.Scrape(server.URL)
	assert.NoError(t, err)
	assert.Empty(t, result.Error)
	assert.Len(t, result.Pages, 2)
	assert.Equal(t, server.URL+"/good", result.Pages[1].URL)
}
