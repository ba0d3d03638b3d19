package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"campus-helper/internal/domain"
)

type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
}

type reportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *domain.Report) error {
	query := `
		INSERT INTO reports (id, target_type, target_table, target_id, target_user_id, reporter_user_id, reason, details, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`

	err := r.db.QueryRowxContext(ctx, query,
		report.ID, report.TargetType, report.TargetTable, report.TargetID, report.TargetUserID,
		report.ReporterUserID, report.Reason, report.Details, report.Status,
	).Scan(&report.CreatedAt)
	return storeErr("reports.create", "reports", "", err)
}
