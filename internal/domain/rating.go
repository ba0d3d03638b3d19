package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5

	TransactionProfile = "profile"
)

type Rating struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	RatedUserID     uuid.UUID  `json:"rated_user_id" db:"rated_user_id"`
	RaterUserID     uuid.UUID  `json:"rater_user_id" db:"rater_user_id"`
	Rating          int        `json:"rating" db:"rating"`
	Comment         string     `json:"comment" db:"comment"`
	TransactionType string     `json:"transaction_type" db:"transaction_type"`
	TransactionID   *uuid.UUID `json:"transaction_id" db:"transaction_id"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
}

type CreateRatingInput struct {
	RatedUserID uuid.UUID `json:"rated_user_id"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
}
