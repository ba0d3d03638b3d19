package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"campus-helper/internal/domain"
)

type JobRepository interface {
	ListByStatus(ctx context.Context, status string, limit int) ([]domain.Job, error)
}

type jobRepository struct {
	db *sqlx.DB
}

func NewJobRepository(db *sqlx.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) ListByStatus(ctx context.Context, status string, limit int) ([]domain.Job, error) {
	var jobs []domain.Job
	query := `
		SELECT id, user_id, title, description, category, pay_rate, pay_type, location, status, created_at, updated_at
		FROM jobs
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2`

	if err := r.db.SelectContext(ctx, &jobs, query, status, limit); err != nil {
		return nil, storeErr("jobs.list", "jobs", "", err)
	}
	return jobs, nil
}
