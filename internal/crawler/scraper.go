package crawler

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/IliaW/scraper-api/config"
	"github.com/IliaW/scraper-api/internal/model"
	"github.com/IliaW/scraper-api/internal/telemetry"
	"github.com/IliaW/scraper-api/util"
	"github.com/PuerkitoBio/goquery"
)

var (
	// ErrInvalidSeedUrl aborts a crawl before any network call is made.
	ErrInvalidSeedUrl = errors.New("invalid seed url")
	// ErrDisallowedByRobots means the seed never should have been
	// crawled, as opposed to a seed that was attempted and unreachable.
	ErrDisallowedByRobots = errors.New("robots.txt disallows scraping")
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.0 --name Scraper
type Scraper interface {
	Scrape(seedUrl string) (*model.CrawlResult, error)
}

// WebScraper runs one bounded breadth-first crawl to depth 1: the seed
// page plus links discovered on it, never links found on secondary
// pages. The visited set is owned by a single Scrape invocation and is
// not shared between crawls.
type WebScraper struct {
	cfg     *config.CrawlerConfig
	robots  RobotsPolicy
	fetcher *Fetcher
	metrics *telemetry.CrawlMetrics
}

func NewWebScraper(cfg *config.CrawlerConfig, robots RobotsPolicy, fetcher *Fetcher,
	metrics *telemetry.CrawlMetrics) *WebScraper {
	return &WebScraper{
		cfg:     cfg,
		robots:  robots,
		fetcher: fetcher,
		metrics: metrics,
	}
}

// Scrape fetches the seed page and, when configured, up to
// MaxPages-1 same-domain pages linked from it. A malformed seed or a
// robots-denied seed returns an error and no result; an unreachable
// seed returns a result with the Error field set; unreachable
// secondary pages are skipped silently.
func (s *WebScraper) Scrape(seedUrl string) (*model.CrawlResult, error) {
	if !util.IsValidUrl(seedUrl) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSeedUrl, seedUrl)
	}
	if s.cfg.RespectRobotsTxt && !s.robots.CanFetch(seedUrl, s.cfg.UserAgent) {
		return nil, fmt.Errorf("%w: %s", ErrDisallowedByRobots, seedUrl)
	}

	result := &model.CrawlResult{
		BaseURL: seedUrl,
		Pages:   make([]model.PageRecord, 0),
	}
	visited := make(map[string]struct{})

	body := s.fetcher.Fetch(seedUrl)
	if body == nil {
		result.Error = fmt.Sprintf("failed to fetch main URL: %s", seedUrl)
		s.metrics.SeedFailureCounter(1)
		return result, nil
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		// the parser is lenient with malformed markup; only a broken
		// reader lands here
		result.Error = fmt.Sprintf("failed to parse main URL: %s", seedUrl)
		s.metrics.SeedFailureCounter(1)
		return result, nil
	}
	visited[seedUrl] = struct{}{}
	result.Pages = append(result.Pages, model.PageRecord{
		URL:     seedUrl,
		Content: ExtractContent(doc),
	})

	if s.cfg.ScrapeMultiplePages {
		candidates := ExtractLinks(doc, seedUrl, visited)
		if len(candidates) > s.cfg.MaxPages-1 {
			candidates = candidates[:s.cfg.MaxPages-1]
		}

		for _, link := range candidates {
			if len(visited) >= s.cfg.MaxPages {
				break
			}
			if _, ok := visited[link]; ok {
				continue
			}
			slog.Info("scraping.", slog.String("url", link))
			body := s.fetcher.Fetch(link)
			if body == nil {
				// secondary failures are dropped, the crawl goes on
				continue
			}
			doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
			if err != nil {
				continue
			}
			visited[link] = struct{}{}
			result.Pages = append(result.Pages, model.PageRecord{
				URL:     link,
				Content: ExtractContent(doc),
			})
		}
	}
	s.metrics.PagesCrawledCounter(int64(len(result.Pages)))

	return result, nil
}
