package mocks

import (
	"context"

	"campus-helper/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type RatingRepository struct {
	mock.Mock
}

func (m *RatingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *RatingRepository) ListByRatedUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Rating, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}
