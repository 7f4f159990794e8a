package handler

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/IliaW/scraper-api/internal/model"
	"github.com/gin-gonic/gin"
)

// GenerateQaPairs godoc
// @Summary Generate Q&A pairs from a job's scraped content
// @Description Chunk the job content, prompt the completions api, validate and store the resulting pairs
// @Tags QA
// @Produce json
// @Param job_id path int true "Job ID"
// @Param num_pairs query int false "Questions per chunk"
// @Param min_confidence query number false "Minimum confidence score"
// @Success 200 {object} string "Generated pairs"
// @Router /qa/generate/{job_id} [post]
func (h *ScraperApiHandler) GenerateQaPairs(c *gin.Context) {
	if h.generator == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "qa generator is not configured"})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	jobId, err := strconv.ParseInt(c.Param("job_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'job_id' path parameter must be an integer"})
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

	numPairs, _ := strconv.Atoi(c.DefaultQuery("num_pairs", "0"))
	minConfidence, _ := strconv.ParseFloat(c.DefaultQuery("min_confidence", "0"), 64)

	pairs, err := h.generator.Generate(c.Request.Context(), &result, numPairs, minConfidence)
	if err != nil {
		c.JSON(http.StatusInternalServerError,
			gin.H{"error": fmt.Sprintf("failed to generate qa pairs. %s", err.Error())})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	if len(pairs) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "no Q&A pairs could be generated", "qa_pairs": pairs})
		h.metrics.SuccessResponseCounter(1)
		return
	}

	if err = h.qaRepo.SaveAll(jobId, pairs); err != nil {
		c.JSON(http.StatusInternalServerError,
			gin.H{"error": fmt.Sprintf("failed to save qa pairs. %s", err.Error())})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	h.crawlMetrics.QaPairsCounter(int64(len(pairs)))

	c.JSON(http.StatusOK, gin.H{"message": "Q&A generation completed", "qa_pairs": pairs})
	h.metrics.SuccessResponseCounter(1)
}

// GetQaPairs godoc
// @Summary Get stored Q&A pairs for a job
// @Tags QA
// @Produce json
// @Param job_id path int true "Job ID"
// @Success 200 {array} model.QAPair "Stored pairs"
// @Router /qa/{job_id} [get]
func (h *ScraperApiHandler) GetQaPairs(c *gin.Context) {
	jobId, err := strconv.ParseInt(c.Param("job_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'job_id' path parameter must be an integer"})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	pairs, err := h.qaRepo.GetByJobId(jobId)
	if err != nil {
		c.JSON(http.StatusInternalServerError,
			gin.H{"error": fmt.Sprintf("failed to get qa pairs. %s", err.Error())})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	if len(pairs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no Q&A pairs found"})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	c.JSON(http.StatusOK, pairs)
	h.metrics.SuccessResponseCounter(1)
}

// ExportQaPairs godoc
// @Summary Export Q&A pairs in json or csv format
// @Tags QA
// @Produce json
// @Param job_id path int true "Job ID"
// @Param format query string false "json or csv" default(json)
// @Success 200 {object} string "Exported pairs"
// @Router /qa/export/{job_id} [get]
func (h *ScraperApiHandler) ExportQaPairs(c *gin.Context) {
	jobId, err := strconv.ParseInt(c.Param("job_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'job_id' path parameter must be an integer"})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	pairs, err := h.qaRepo.GetByJobId(jobId)
	if err != nil {
		c.JSON(http.StatusInternalServerError,
			gin.H{"error": fmt.Sprintf("failed to get qa pairs. %s", err.Error())})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	if len(pairs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no Q&A pairs found"})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	switch strings.ToLower(c.DefaultQuery("format", "json")) {
	case "json":
		c.JSON(http.StatusOK, gin.H{"qa_pairs": pairs})
	case "csv":
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		_ = w.Write([]string{"question", "answer", "confidence_score", "category"})
		for _, pair := range pairs {
			_ = w.Write([]string{pair.Question, pair.Answer,
				strconv.FormatFloat(pair.ConfidenceScore, 'f', -1, 64), pair.Category})
		}
		w.Flush()
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"qa_pairs_%d.csv\"", jobId))
		c.Data(http.StatusOK, "text/csv", buf.Bytes())
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported format"})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	h.metrics.SuccessResponseCounter(1)
}
