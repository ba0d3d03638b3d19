package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"campus-helper/internal/domain"
)

type ConversationRepository interface {
	ListIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	// FindWithParticipant returns the ids among conversationIDs in which
	// userID participates, earliest created first, ties broken by id.
	FindWithParticipant(ctx context.Context, conversationIDs []uuid.UUID, userID uuid.UUID) ([]uuid.UUID, error)
	Create(ctx context.Context, conversation *domain.Conversation) error
	AddParticipants(ctx context.Context, participants []domain.Participant) error
	UpsertParticipants(ctx context.Context, participants []domain.Participant) error
}

type conversationRepository struct {
	db *sqlx.DB
}

func NewConversationRepository(db *sqlx.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) ListIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	query := `SELECT conversation_id FROM conversation_participants WHERE user_id = $1`
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, storeErr("conversations.list", "conversation_participants", "", err)
	}
	return ids, nil
}

func (r *conversationRepository) FindWithParticipant(ctx context.Context, conversationIDs []uuid.UUID, userID uuid.UUID) ([]uuid.UUID, error) {
	if len(conversationIDs) == 0 {
		return nil, nil
	}

	keys := make([]string, len(conversationIDs))
	for i, id := range conversationIDs {
		keys[i] = id.String()
	}

	query := `
		SELECT cp.conversation_id
		FROM conversation_participants cp
		INNER JOIN conversations c ON c.id = cp.conversation_id
		WHERE cp.conversation_id = ANY($1::uuid[]) AND cp.user_id = $2
		ORDER BY c.created_at ASC, c.id ASC`

	var ids []uuid.UUID
	if err := r.db.SelectContext(ctx, &ids, query, pq.Array(keys), userID); err != nil {
		return nil, storeErr("conversations.find", "conversation_participants", "", err)
	}
	return ids, nil
}

func (r *conversationRepository) Create(ctx context.Context, conversation *domain.Conversation) error {
	query := `
		INSERT INTO conversations (id, started_by, marketplace_item_id)
		VALUES ($1, $2, $3)
		RETURNING created_at`

	err := r.db.QueryRowxContext(ctx, query,
		conversation.ID, conversation.StartedBy, conversation.MarketplaceItemID,
	).Scan(&conversation.CreatedAt)
	return storeErr("conversations.create", "conversations", "", err)
}

func (r *conversationRepository) AddParticipants(ctx context.Context, participants []domain.Participant) error {
	if len(participants) == 0 {
		return nil
	}
	query := `
		INSERT INTO conversation_participants (conversation_id, user_id)
		VALUES (:conversation_id, :user_id)`
	_, err := r.db.NamedExecContext(ctx, query, participants)
	return storeErr("conversations.participants", "conversation_participants", "", err)
}

func (r *conversationRepository) UpsertParticipants(ctx context.Context, participants []domain.Participant) error {
	if len(participants) == 0 {
		return nil
	}
	query := `
		INSERT INTO conversation_participants (conversation_id, user_id)
		VALUES (:conversation_id, :user_id)
		ON CONFLICT (conversation_id, user_id) DO NOTHING`
	_, err := r.db.NamedExecContext(ctx, query, participants)
	return storeErr("conversations.participants", "conversation_participants", "", err)
}
