package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/IliaW/scraper-api/config"
	"github.com/IliaW/scraper-api/internal/crawler"
	"github.com/IliaW/scraper-api/internal/model"
	"github.com/gin-gonic/gin"
)

// ScrapeUrl godoc
// @Summary Scrape content from the provided URL
// @Description Create a scraping job, run the bounded crawl synchronously, and return the structured pages
// @Tags Scraper
// @Accept json
// @Produce json
// @Param request body model.ScrapeRequest true "Seed URL and optional crawler overrides"
// @Success 200 {object} model.ScrapeResponse "Job id and crawl outcome"
// @Router /scrape [post]
func (h *ScraperApiHandler) ScrapeUrl(c *gin.Context) {
	var req model.ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body. %s", err.Error())})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	crawlCfg := h.mergeCrawlerConfig(req.Config)
	configJson, err := json.Marshal(crawlCfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode crawler config"})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	jobId, err := h.jobRepo.Create(req.URL, string(configJson))
	if err != nil {
		c.JSON(http.StatusInternalServerError,
			gin.H{"error": fmt.Sprintf("failed to create job. %s", err.Error())})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	if err = h.jobRepo.UpdateStatus(jobId, model.JobStatusRunning); err != nil {
		slog.Error("failed to update job status.", slog.Int64("job_id", jobId),
			slog.String("err", err.Error()))
	}

	result, err := h.newScraper(crawlCfg).Scrape(req.URL)
	if err != nil {
		if updErr := h.jobRepo.UpdateStatus(jobId, model.JobStatusFailed); updErr != nil {
			slog.Error("failed to update job status.", slog.Int64("job_id", jobId),
				slog.String("err", updErr.Error()))
		}
		h.metrics.ErrorResponseCounter(1)
		switch {
		case errors.Is(err, crawler.ErrInvalidSeedUrl):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, crawler.ErrDisallowedByRobots):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	status := model.JobStatusCompleted
	if result.Error != "" {
		status = model.JobStatusFailed
	}
	contentJson, err := json.Marshal(result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode crawl result"})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	if err = h.jobRepo.UpdateContent(jobId, status, string(contentJson)); err != nil {
		slog.Error("failed to save job content.", slog.Int64("job_id", jobId),
			slog.String("err", err.Error()))
	}

	c.JSON(http.StatusOK, model.ScrapeResponse{
		JobID:   jobId,
		BaseURL: result.BaseURL,
		Pages:   result.Pages,
		Error:   result.Error,
	})
	h.metrics.SuccessResponseCounter(1)
}

// mergeCrawlerConfig copies the server defaults and applies the per-job
// overrides the caller sent.
func (h *ScraperApiHandler) mergeCrawlerConfig(req *model.ScrapeConfigRequest) *config.CrawlerConfig {
	crawlCfg := *h.cfg.CrawlerSettings
	if req == nil {
		return &crawlCfg
	}
	if req.MaxPages != nil && *req.MaxPages > 0 {
		crawlCfg.MaxPages = *req.MaxPages
	}
	if req.RateLimit != nil && *req.RateLimit > 0 {
		crawlCfg.RateLimit = *req.RateLimit
	}
	if req.RespectRobotsTxt != nil {
		crawlCfg.RespectRobotsTxt = *req.RespectRobotsTxt
	}
	if req.ScrapeMultiplePages != nil {
		crawlCfg.ScrapeMultiplePages = *req.ScrapeMultiplePages
	}

	return &crawlCfg
}
