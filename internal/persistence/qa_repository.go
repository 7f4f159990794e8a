package persistence

import (
	"database/sql"
	"log/slog"
	"sync"

	"github.com/IliaW/scraper-api/internal/model"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.0 --name QAPairStorage
type QAPairStorage interface {
	SaveAll(jobId int64, pairs []model.QAPair) error
	GetByJobId(jobId int64) ([]model.QAPair, error)
}

type QAPairRepository struct {
	db *sql.DB
	mu sync.Mutex
}

func NewQAPairRepository(db *sql.DB) *QAPairRepository {
	return &QAPairRepository{
		db: db,
	}
}

func (r *QAPairRepository) SaveAll(jobId int64, pairs []model.QAPair) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	for _, pair := range pairs {
		_, err = tx.Exec(`INSERT INTO web_scraper.qa_pair
								(job_id, question, answer, confidence_score, category, source_url)
								VALUES ($1, $2, $3, $4, $5, $6)`,
			jobId, pair.Question, pair.Answer, pair.ConfidenceScore, pair.Category, pair.SourceURL)
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				slog.Error("failed to rollback transaction.", slog.String("err", rbErr.Error()))
			}
			return err
		}
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	slog.Debug("qa pairs saved to db.", slog.Int64("job_id", jobId), slog.Int("count", len(pairs)))

	return nil
}

func (r *QAPairRepository) GetByJobId(jobId int64) ([]model.QAPair, error) {
	rows, err := r.db.Query(`SELECT id, job_id, question, answer, confidence_score, category, source_url
									FROM web_scraper.qa_pair WHERE job_id = $1`, jobId)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = rows.Close()
		if err != nil {
			slog.Error("failed to close rows.", slog.String("err", err.Error()))
		}
	}()

	pairs := make([]model.QAPair, 0)
	for rows.Next() {
		var pair model.QAPair
		if err = rows.Scan(&pair.ID, &pair.JobID, &pair.Question, &pair.Answer, &pair.ConfidenceScore,
			&pair.Category, &pair.SourceURL); err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	slog.Debug("qa pairs fetched from db.", slog.Int64("job_id", jobId), slog.Int("count", len(pairs)))

	return pairs, nil
}
