package domain

import (
	"time"

	"github.com/google/uuid"
)

type ForumPost struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Category  string    `json:"category" db:"category"`
	Views     int64     `json:"views" db:"views"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	Author *AuthorSummary `json:"author,omitempty" db:"-"`
}

// AuthorSummary is the joined profile shown next to posts and items.
type AuthorSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        *string   `json:"email,omitempty"`
	Rating       *float64  `json:"rating"`
	TotalRatings int       `json:"total_ratings"`
}

func NewAuthorSummary(p *Profile) *AuthorSummary {
	if p == nil {
		return &AuthorSummary{Name: DefaultDisplayName}
	}
	total := 0
	if p.TotalRatings != nil {
		total = *p.TotalRatings
	}
	return &AuthorSummary{
		ID:           p.ID,
		Name:         DisplayName(p.FullName, p.Email),
		Email:        p.Email,
		Rating:       p.Rating,
		TotalRatings: total,
	}
}
