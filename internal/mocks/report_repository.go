package mocks

import (
	"context"

	"campus-helper/internal/domain"

	"github.com/stretchr/testify/mock"
)

type ReportRepository struct {
	mock.Mock
}

func (m *ReportRepository) Create(ctx context.Context, report *domain.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}
