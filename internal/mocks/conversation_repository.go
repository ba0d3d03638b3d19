package mocks

import (
	"context"

	"campus-helper/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ConversationRepository struct {
	mock.Mock
}

func (m *ConversationRepository) ListIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *ConversationRepository) FindWithParticipant(ctx context.Context, conversationIDs []uuid.UUID, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, conversationIDs, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *ConversationRepository) Create(ctx context.Context, conversation *domain.Conversation) error {
	args := m.Called(ctx, conversation)
	return args.Error(0)
}

func (m *ConversationRepository) AddParticipants(ctx context.Context, participants []domain.Participant) error {
	args := m.Called(ctx, participants)
	return args.Error(0)
}

func (m *ConversationRepository) UpsertParticipants(ctx context.Context, participants []domain.Participant) error {
	args := m.Called(ctx, participants)
	return args.Error(0)
}
