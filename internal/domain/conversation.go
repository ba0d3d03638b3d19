package domain

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	ID                uuid.UUID  `json:"id" db:"id"`
	StartedBy         uuid.UUID  `json:"started_by" db:"started_by"`
	MarketplaceItemID *uuid.UUID `json:"marketplace_item_id" db:"marketplace_item_id"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
}

// Participant is a (conversation, user) membership row. The pair is unique.
type Participant struct {
	ConversationID uuid.UUID `json:"conversation_id" db:"conversation_id"`
	UserID         uuid.UUID `json:"user_id" db:"user_id"`
}

type ContactResult struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	Created        bool      `json:"created"`
	Redirect       string    `json:"redirect"`
}
