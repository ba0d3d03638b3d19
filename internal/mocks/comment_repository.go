package mocks

import (
	"context"

	"campus-helper/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) ListByPost(ctx context.Context, postID uuid.UUID, withParent bool) ([]domain.Comment, error) {
	args := m.Called(ctx, postID, withParent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *CommentRepository) Create(ctx context.Context, comment *domain.Comment, withParent bool) error {
	args := m.Called(ctx, comment, withParent)
	return args.Error(0)
}
