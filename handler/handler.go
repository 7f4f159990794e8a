package handler

import (
	"github.com/IliaW/scraper-api/config"
	"github.com/IliaW/scraper-api/internal/converter"
	"github.com/IliaW/scraper-api/internal/crawler"
	"github.com/IliaW/scraper-api/internal/persistence"
	"github.com/IliaW/scraper-api/internal/qa"
	"github.com/IliaW/scraper-api/internal/telemetry"
)

// ScraperFactory builds a crawl engine bound to one job's immutable
// configuration. The rate limiter behind the returned scraper stays
// process-global regardless of the per-job rate_limit value.
type ScraperFactory func(cfg *config.CrawlerConfig) crawler.Scraper

type ScraperApiHandler struct {
	cfg          *config.Config
	jobRepo      persistence.JobStorage
	qaRepo       persistence.QAPairStorage
	docRepo      persistence.DocumentStorage
	generator    qa.PairGenerator
	converter    *converter.DocumentConverter
	newScraper   ScraperFactory
	metrics      *telemetry.ApiMetrics
	crawlMetrics *telemetry.CrawlMetrics
}

// NewScraperApiHandler wires the api handler. generator may be nil when
// no completions api key is configured; the qa endpoints then respond
// with 503.
func NewScraperApiHandler(cfg *config.Config, jobRepo persistence.JobStorage,
	qaRepo persistence.QAPairStorage, docRepo persistence.DocumentStorage,
	generator qa.PairGenerator, docConverter *converter.DocumentConverter,
	newScraper ScraperFactory, metrics *telemetry.ApiMetrics,
	crawlMetrics *telemetry.CrawlMetrics) *ScraperApiHandler {
	return &ScraperApiHandler{
		cfg:          cfg,
		jobRepo:      jobRepo,
		qaRepo:       qaRepo,
		docRepo:      docRepo,
		generator:    generator,
		converter:    docConverter,
		newScraper:   newScraper,
		metrics:      metrics,
		crawlMetrics: crawlMetrics,
	}
}
