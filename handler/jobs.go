package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/IliaW/scraper-api/internal/model"
	"github.com/gin-gonic/gin"
)

const recentJobsLimit = 10

// GetJobs godoc
// @Summary Get the list of recent scraping jobs
// @Description Return the last few jobs without their content payloads
// @Tags Jobs
// @Produce json
// @Success 200 {array} model.JobSummary "Recent jobs"
// @Router /jobs [get]
func (h *ScraperApiHandler) GetJobs(c *gin.Context) {
	jobs, err := h.jobRepo.GetRecent(recentJobsLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError,
			gin.H{"error": fmt.Sprintf("failed to get jobs. %s", err.Error())})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	summaries := make([]model.JobSummary, 0, len(jobs))
	for _, job := range jobs {
		summaries = append(summaries, model.JobSummary{
			ID:        job.ID,
			URL:       job.URL,
			Status:    job.Status,
			Timestamp: job.Timestamp.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, summaries)
	h.metrics.SuccessResponseCounter(1)
}
