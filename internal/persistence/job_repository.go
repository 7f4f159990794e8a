package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/IliaW/scraper-api/internal/model"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.0 --name JobStorage
type JobStorage interface {
	Create(url string, config string) (int64, error)
	GetById(id int64) (*model.Job, error)
	GetRecent(limit int) ([]*model.Job, error)
	UpdateStatus(id int64, status string) error
	UpdateContent(id int64, status string, content string) error
}

type JobRepository struct {
	db *sql.DB
	mu sync.Mutex
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{
		db: db,
	}
}

func (r *JobRepository) Create(url string, config string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var id int64
	err := r.db.QueryRow(`INSERT INTO web_scraper.scraping_job (url, status, config)
									VALUES ($1, $2, $3) RETURNING id`,
		url, model.JobStatusPending, config).Scan(&id)
	if err != nil {
		return 0, err
	}
	slog.Debug("job saved to db.", slog.Int64("id", id))

	return id, nil
}

func (r *JobRepository) GetById(id int64) (*model.Job, error) {
	var job model.Job
	var content sql.NullString
	row := r.db.QueryRow(`SELECT id, url, status, config, content, created_at
									FROM web_scraper.scraping_job WHERE id = $1`, id)
	err := row.Scan(&job.ID, &job.URL, &job.Status, &job.Config, &content, &job.Timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New(fmt.Sprintf("job with id '%d' not found", id))
		}
		slog.Debug("failed to get job from database.", slog.String("err", err.Error()))
		return nil, err
	}
	job.Content = content.String
	slog.Debug("job fetched from db.")

	return &job, nil
}

func (r *JobRepository) GetRecent(limit int) ([]*model.Job, error) {
	rows, err := r.db.Query(`SELECT id, url, status, created_at FROM web_scraper.scraping_job
									ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = rows.Close()
		if err != nil {
			slog.Error("failed to close rows.", slog.String("err", err.Error()))
		}
	}()

	jobs := make([]*model.Job, 0)
	for rows.Next() {
		var job model.Job
		if err = rows.Scan(&job.ID, &job.URL, &job.Status, &job.Timestamp); err != nil {
			return nil, err
		}
		jobs = append(jobs, &job)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	slog.Debug("recent jobs fetched from db.", slog.Int("count", len(jobs)))

	return jobs, nil
}

func (r *JobRepository) UpdateStatus(id int64, status string) error {
	_, err := r.db.Exec("UPDATE web_scraper.scraping_job SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	slog.Debug("job status updated in db.", slog.Int64("id", id), slog.String("status", status))

	return nil
}

func (r *JobRepository) UpdateContent(id int64, status string, content string) error {
	_, err := r.db.Exec("UPDATE web_scraper.scraping_job SET status = $1, content = $2 WHERE id = $3",
		status, content, id)
	if err != nil {
		return err
	}
	slog.Debug("job content updated in db.", slog.Int64("id", id), slog.String("status", status))

	return nil
}
