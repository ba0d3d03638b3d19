package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ItemStatus string

const (
	ItemAvailable ItemStatus = "available"
	ItemReserved  ItemStatus = "reserved"
	ItemSold      ItemStatus = "sold"
)

type MarketplaceItem struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	UserID      uuid.UUID      `json:"user_id" db:"user_id"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	Category    string         `json:"category" db:"category"`
	Price       float64        `json:"price" db:"price"`
	Condition   string         `json:"condition" db:"condition"`
	Images      pq.StringArray `json:"-" db:"images"`
	Status      ItemStatus     `json:"status" db:"status"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`

	FormattedPrice string         `json:"formatted_price" db:"-"`
	ImageURLs      []string       `json:"images" db:"-"`
	Seller         *AuthorSummary `json:"seller,omitempty" db:"-"`
}
