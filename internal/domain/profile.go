package domain

import "github.com/google/uuid"

type Profile struct {
	ID           uuid.UUID `json:"id" db:"id"`
	FullName     *string   `json:"full_name" db:"full_name"`
	Email        *string   `json:"email" db:"email"`
	Rating       *float64  `json:"rating" db:"rating"`
	TotalRatings *int      `json:"total_ratings" db:"total_ratings"`
}
