package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/IliaW/scraper-api/internal/model"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.0 --name DocumentStorage
type DocumentStorage interface {
	Save(jobId int64, content string, format string) (int64, error)
	GetByJobAndFormat(jobId int64, format string) (*model.Document, error)
}

type DocumentRepository struct {
	db *sql.DB
	mu sync.Mutex
}

func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{
		db: db,
	}
}

func (r *DocumentRepository) Save(jobId int64, content string, format string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var id int64
	err := r.db.QueryRow(`INSERT INTO web_scraper.document (job_id, content, format)
									VALUES ($1, $2, $3) RETURNING id`,
		jobId, content, format).Scan(&id)
	if err != nil {
		return 0, err
	}
	slog.Debug("document saved to db.", slog.Int64("id", id), slog.String("format", format))

	return id, nil
}

func (r *DocumentRepository) GetByJobAndFormat(jobId int64, format string) (*model.Document, error) {
	var document model.Document
	row := r.db.QueryRow(`SELECT id, job_id, content, format FROM web_scraper.document
									WHERE job_id = $1 AND format = $2`, jobId, format)
	err := row.Scan(&document.ID, &document.JobID, &document.Content, &document.Format)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New(fmt.Sprintf("document for job '%d' in format '%s' not found", jobId, format))
		}
		slog.Debug("failed to get document from database.", slog.String("err", err.Error()))
		return nil, err
	}
	slog.Debug("document fetched from db.")

	return &document, nil
}
