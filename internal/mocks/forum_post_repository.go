package mocks

import (
	"context"

	"campus-helper/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ForumPostRepository struct {
	mock.Mock
}

func (m *ForumPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ForumPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ForumPost), args.Error(1)
}

func (m *ForumPostRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ForumPostRepository) ListRecent(ctx context.Context, limit int) ([]domain.ForumPost, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ForumPost), args.Error(1)
}
