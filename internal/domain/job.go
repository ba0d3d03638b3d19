package domain

import (
	"time"

	"github.com/google/uuid"
)

type PayType string

const (
	PayHourly     PayType = "hourly"
	PayFixed      PayType = "fixed"
	PayNegotiable PayType = "negotiable"
)

type Job struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	PayRate     float64   `json:"pay_rate" db:"pay_rate"`
	PayType     PayType   `json:"pay_type" db:"pay_type"`
	Location    string    `json:"location" db:"location"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	FormattedPay string `json:"formatted_pay" db:"-"`
}

// Highlights is the home page feed. Fallback is set when any list holds
// placeholder rows.
type Highlights struct {
	Jobs     []Job             `json:"jobs"`
	Items    []MarketplaceItem `json:"items"`
	Posts    []ForumPost       `json:"posts"`
	Fallback bool              `json:"fallback"`
}
