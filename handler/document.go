package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/IliaW/scraper-api/internal/converter"
	"github.com/IliaW/scraper-api/internal/model"
	"github.com/gin-gonic/gin"
)

// ConvertJobContent godoc
// @Summary Convert a job's scraped content into export documents
// @Tags Documents
// @Accept json
// @Produce json
// @Param job_id path int true "Job ID"
// @Param request body model.ConvertRequest true "Formats to render"
// @Success 200 {object} string "Conversion completed"
// @Router /documents/convert/{job_id} [post]
func (h *ScraperApiHandler) ConvertJobContent(c *gin.Context) {
	jobId, err := strconv.ParseInt(c.Param("job_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'job_id' path parameter must be an integer"})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	var req model.ConvertRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body. %s", err.Error())})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	job, err := h.jobRepo.GetById(jobId)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("failed to get job. %s", err.Error())})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	if job.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no content found for this job"})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	var result model.CrawlResult
	if err = json.Unmarshal([]byte(job.Content), &result); err != nil {
		c.JSON(http.StatusInternalServerError,
			gin.H{"error": fmt.Sprintf("failed to decode job content. %s", err.Error())})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	for _, format := range req.Formats {
		document, err := h.converter.Convert(&result, format)
		if err != nil {
			if errors.Is(err, converter.ErrUnsupportedFormat) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			} else {
				c.JSON(http.StatusInternalServerError,
					gin.H{"error": fmt.Sprintf("failed to convert documents. %s", err.Error())})
			}
			h.metrics.ErrorResponseCounter(1)
			return
		}
		if _, err = h.docRepo.Save(jobId, document, format); err != nil {
			c.JSON(http.StatusInternalServerError,
				gin.H{"error": fmt.Sprintf("failed to save document. %s", err.Error())})
			h.metrics.ErrorResponseCounter(1)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "conversion completed", "formats": req.Formats})
	h.metrics.SuccessResponseCounter(1)
}

// DownloadDocument godoc
// @Summary Download a converted document
// @Tags Documents
// @Produce plain
// @Param job_id path int true "Job ID"
// @Param format path string true "Document format"
// @Success 200 {string} string "Document content"
// @Router /documents/download/{job_id}/{format} [get]
func (h *ScraperApiHandler) DownloadDocument(c *gin.Context) {
	jobId, err := strconv.ParseInt(c.Param("job_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'job_id' path parameter must be an integer"})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	format := c.Param("format")

	document, err := h.docRepo.GetByJobAndFormat(jobId, format)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("failed to get document. %s", err.Error())})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"document_%d.md\"", jobId))
	c.Data(http.StatusOK, "text/markdown", []byte(document.Content))
	h.metrics.SuccessResponseCounter(1)
}
