package report

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"campus-helper/internal/domain"
	"campus-helper/internal/repository"
)

type Service interface {
	Submit(ctx context.Context, reporterID uuid.UUID, input domain.CreateReportInput) (*domain.Report, error)
}

type service struct {
	reportRepo repository.ReportRepository
}

func NewService(reportRepo repository.ReportRepository) Service {
	return &service{reportRepo: reportRepo}
}

func (s *service) Submit(ctx context.Context, reporterID uuid.UUID, input domain.CreateReportInput) (*domain.Report, error) {
	if reporterID == uuid.Nil {
		return nil, domain.ErrSignInRequired
	}
	if input.TargetID == uuid.Nil || input.TargetType.Table() == "" {
		return nil, domain.NewValidationError("target_id", "report.target_required")
	}
	reason := strings.TrimSpace(input.Reason)
	if !domain.IsValidReportReason(reason) {
		return nil, domain.NewValidationError("reason", "report.reason_invalid")
	}

	report := &domain.Report{
		ID:             uuid.New(),
		TargetType:     input.TargetType,
		TargetTable:    input.TargetType.Table(),
		TargetID:       input.TargetID,
		TargetUserID:   input.TargetUserID,
		ReporterUserID: reporterID,
		Reason:         reason,
		Details:        strings.TrimSpace(input.Details),
		Status:         domain.ReportStatusOpen,
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}
