package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"campus-helper/internal/domain"
)

type MarketplaceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MarketplaceItem, error)
	ListByStatus(ctx context.Context, status domain.ItemStatus, limit int) ([]domain.MarketplaceItem, error)
}

type marketplaceRepository struct {
	db *sqlx.DB
}

func NewMarketplaceRepository(db *sqlx.DB) MarketplaceRepository {
	return &marketplaceRepository{db: db}
}

type itemRow struct {
	ID           uuid.UUID         `db:"id"`
	UserID       uuid.UUID         `db:"user_id"`
	Title        string            `db:"title"`
	Description  string            `db:"description"`
	Category     string            `db:"category"`
	Price        float64           `db:"price"`
	Condition    string            `db:"condition"`
	Images       pq.StringArray    `db:"images"`
	Status       domain.ItemStatus `db:"status"`
	CreatedAt    time.Time         `db:"created_at"`
	UpdatedAt    time.Time         `db:"updated_at"`
	FullName     *string           `db:"full_name"`
	Email        *string           `db:"email"`
	Rating       *float64          `db:"rating"`
	TotalRatings *int              `db:"total_ratings"`
}

func (r itemRow) toDomain() domain.MarketplaceItem {
	return domain.MarketplaceItem{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		Condition:   r.Condition,
		Images:      r.Images,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Seller: domain.NewAuthorSummary(&domain.Profile{
			ID:           r.UserID,
			FullName:     r.FullName,
			Email:        r.Email,
			Rating:       r.Rating,
			TotalRatings: r.TotalRatings,
		}),
	}
}

const itemColumns = `
	m.id, m.user_id, m.title, m.description, m.category, m.price, m.condition,
	COALESCE(m.images, '{}') AS images, m.status, m.created_at, m.updated_at,
	p.full_name, p.email, p.rating, p.total_ratings`

func (r *marketplaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MarketplaceItem, error) {
	var row itemRow
	query := `SELECT` + itemColumns + `
		FROM marketplace_items m
		LEFT JOIN profiles p ON p.id = m.user_id
		WHERE m.id = $1`

	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("items.load", "marketplace_items", "", err)
	}
	item := row.toDomain()
	return &item, nil
}

func (r *marketplaceRepository) ListByStatus(ctx context.Context, status domain.ItemStatus, limit int) ([]domain.MarketplaceItem, error) {
	var rows []itemRow
	query := `SELECT` + itemColumns + `
		FROM marketplace_items m
		LEFT JOIN profiles p ON p.id = m.user_id
		WHERE m.status = $1
		ORDER BY m.created_at DESC
		LIMIT $2`

	if err := r.db.SelectContext(ctx, &rows, query, status, limit); err != nil {
		return nil, storeErr("items.list", "marketplace_items", "", err)
	}

	items := make([]domain.MarketplaceItem, len(rows))
	for i, row := range rows {
		items[i] = row.toDomain()
	}
	return items, nil
}
