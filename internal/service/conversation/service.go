package conversation

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"campus-helper/internal/domain"
	"campus-helper/internal/repository"
)

type Service interface {
	// FindOrCreate returns the direct conversation shared by initiator and
	// counterpart, creating it (optionally tagged with itemID) when none
	// exists. created reports whether a new conversation was provisioned.
	FindOrCreate(ctx context.Context, initiatorID, counterpartID uuid.UUID, itemID *uuid.UUID) (id uuid.UUID, created bool, err error)
}

type service struct {
	convRepo repository.ConversationRepository
}

func NewService(convRepo repository.ConversationRepository) Service {
	return &service{convRepo: convRepo}
}

func (s *service) FindOrCreate(ctx context.Context, initiatorID, counterpartID uuid.UUID, itemID *uuid.UUID) (uuid.UUID, bool, error) {
	if initiatorID == uuid.Nil {
		return uuid.Nil, false, domain.ErrSignInRequired
	}
	if counterpartID == uuid.Nil {
		return uuid.Nil, false, domain.NewValidationError("counterpart_id", "conversation.counterpart_required")
	}
	if initiatorID == counterpartID {
		return uuid.Nil, false, domain.NewValidationError("counterpart_id", "conversation.self_contact")
	}

	existing, err := s.findShared(ctx, initiatorID, counterpartID)
	if err != nil {
		return uuid.Nil, false, err
	}

	members := func(id uuid.UUID) []domain.Participant {
		return []domain.Participant{
			{ConversationID: id, UserID: initiatorID},
			{ConversationID: id, UserID: counterpartID},
		}
	}

	if existing != uuid.Nil {
		if err := s.convRepo.UpsertParticipants(ctx, members(existing)); err != nil {
			return uuid.Nil, false, err
		}
		return existing, false, nil
	}

	conv := &domain.Conversation{
		ID:                uuid.New(),
		StartedBy:         initiatorID,
		MarketplaceItemID: itemID,
	}
	if err := s.convRepo.Create(ctx, conv); err != nil {
		return uuid.Nil, false, err
	}

	if err := s.convRepo.AddParticipants(ctx, members(conv.ID)); err != nil {
		log.Error().Err(err).Str("conversation_id", conv.ID.String()).Msg("conversation created without participants")
		return uuid.Nil, false, &domain.ParticipantError{ConversationID: conv.ID, Err: err}
	}

	return conv.ID, true, nil
}

// findShared returns the earliest created conversation both users take part
// in, or uuid.Nil.
func (s *service) findShared(ctx context.Context, initiatorID, counterpartID uuid.UUID) (uuid.UUID, error) {
	mine, err := s.convRepo.ListIDsByUser(ctx, initiatorID)
	if err != nil {
		return uuid.Nil, err
	}
	if len(mine) == 0 {
		return uuid.Nil, nil
	}

	shared, err := s.convRepo.FindWithParticipant(ctx, mine, counterpartID)
	if err != nil {
		return uuid.Nil, err
	}
	if len(shared) == 0 {
		return uuid.Nil, nil
	}
	return shared[0], nil
}
