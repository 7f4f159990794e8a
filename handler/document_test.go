package handler

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IliaW/scraper-api/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func Test_ConvertJobContent_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testSet := []struct {
		name               string
		jobId              string
		body               string
		mockJob            func() (*model.Job, error)
		expectSave         bool
		expectedResponse   string
		expectedStatusCode int
	}{
		{
			name:  "markdown conversion",
			jobId: "1",
			body:  `{"formats": ["markdown"]}`,
			mockJob: func() (*model.Job, error) {
				return &model.Job{ID: 1, Content: jobContent}, nil
			},
			expectSave:         true,
			expectedResponse:   "conversion completed",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:  "unsupported format",
			jobId: "1",
			body:  `{"formats": ["pdf"]}`,
			mockJob: func() (*model.Job, error) {
				return &model.Job{ID: 1, Content: jobContent}, nil
			},
			expectedResponse:   "unsupported document format",
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "job id is not an integer",
			jobId:              "abc",
			body:               `{"formats": ["markdown"]}`,
			expectedResponse:   "'job_id' path parameter must be an integer",
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "missing formats in body",
			jobId:              "1",
			body:               `{}`,
			expectedResponse:   "invalid request body",
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:  "job not found",
			jobId: "9",
			body:  `{"formats": ["markdown"]}`,
			mockJob: func() (*model.Job, error) {
				return nil, errors.New("job with id '9' not found")
			},
			expectedResponse:   "failed to get job",
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:  "job has no content",
			jobId: "1",
			body:  `{"formats": ["markdown"]}`,
			mockJob: func() (*model.Job, error) {
				return &model.Job{ID: 1}, nil
			},
			expectedResponse:   "no content found for this job",
			expectedStatusCode: http.StatusBadRequest,
		},
	}
	for _, test := range testSet {
		t.Run(test.name, func(tt *testing.T) {
			h, m := newTestHandler(tt)
			if test.mockJob != nil {
				m.jobRepo.On("GetById", mock.Anything).Return(test.mockJob())
			}
			if test.expectSave {
				m.docRepo.On("Save", int64(1), mock.Anything, "markdown").Return(int64(1), nil)
			}

			r := gin.Default()
			r.POST("/documents/convert/:job_id", h.ConvertJobContent)
			req, _ := http.NewRequest("POST", "/documents/convert/"+test.jobId,
				strings.NewReader(test.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			responseData, _ := io.ReadAll(w.Body)
			assert.Contains(tt, string(responseData), test.expectedResponse)
			assert.Equal(tt, test.expectedStatusCode, w.Code)
		})
	}
}

func Test_ConvertJobContent_Handler_SavesRenderedDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, m := newTestHandler(t)
	m.jobRepo.On("GetById", int64(1)).Return(&model.Job{ID: 1, Content: jobContent}, nil)
	m.docRepo.On("Save", int64(1), mock.MatchedBy(func(document string) bool {
		return strings.Contains(document, "# Docs") && strings.Contains(document, "Some text.")
	}), "markdown").Return(int64(1), nil)

	r := gin.Default()
	r.POST("/documents/convert/:job_id", h.ConvertJobContent)
	req, _ := http.NewRequest("POST", "/documents/convert/1",
		strings.NewReader(`{"formats": ["markdown"]}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func Test_DownloadDocument_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testSet := []struct {
		name               string
		jobId              string
		format             string
		mockStorage        func() (*model.Document, error)
		expectedResponse   string
		expectedStatusCode int
	}{
		{
			name:   "stored document",
			jobId:  "1",
			format: "markdown",
			mockStorage: func() (*model.Document, error) {
				return &model.Document{ID: 1, JobID: 1, Content: "# Docs", Format: "markdown"}, nil
			},
			expectedResponse:   "# Docs",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:   "document not found",
			jobId:  "1",
			format: "markdown",
			mockStorage: func() (*model.Document, error) {
				return nil, errors.New("document not found")
			},
			expectedResponse:   "failed to get document",
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:               "job id is not an integer",
			jobId:              "abc",
			format:             "markdown",
			expectedResponse:   "'job_id' path parameter must be an integer",
			expectedStatusCode: http.StatusBadRequest,
		},
	}
	for _, test := range testSet {
		t.Run(test.name, func(tt *testing.T) {
			h, m := newTestHandler(tt)
			if test.mockStorage != nil {
				m.docRepo.On("GetByJobAndFormat", int64(1), test.format).Return(test.mockStorage())
			}

			r := gin.Default()
			r.GET("/documents/download/:job_id/:format", h.DownloadDocument)
			req, _ := http.NewRequest("GET",
				"/documents/download/"+test.jobId+"/"+test.format, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			responseData, _ := io.ReadAll(w.Body)
			assert.Contains(tt, string(responseData), test.expectedResponse)
			assert.Equal(tt, test.expectedStatusCode, w.Code)
			if test.expectedStatusCode == http.StatusOK {
				assert.Equal(tt, "attachment; filename=\"document_1.md\"",
					w.Header().Get("Content-Disposition"))
				assert.Equal(tt, "text/markdown", w.Header().Get("Content-Type"))
			}
		})
	}
}
