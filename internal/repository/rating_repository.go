package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"campus-helper/internal/domain"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *domain.Rating) error
	ListByRatedUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Rating, error)
}

type ratingRepository struct {
	db *sqlx.DB
}

func NewRatingRepository(db *sqlx.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	query := `
		INSERT INTO ratings (id, rated_user_id, rater_user_id, rating, comment, transaction_type, transaction_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err := r.db.QueryRowxContext(ctx, query,
		rating.ID, rating.RatedUserID, rating.RaterUserID, rating.Rating,
		rating.Comment, rating.TransactionType, rating.TransactionID,
	).Scan(&rating.CreatedAt)
	return storeErr("ratings.create", "ratings", "", err)
}

func (r *ratingRepository) ListByRatedUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Rating, error) {
	var ratings []domain.Rating
	query := `
		SELECT id, rated_user_id, rater_user_id, rating, COALESCE(comment, '') AS comment,
			transaction_type, transaction_id, created_at
		FROM ratings
		WHERE rated_user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	if err := r.db.SelectContext(ctx, &ratings, query, userID, limit); err != nil {
		return nil, storeErr("ratings.list", "ratings", "", err)
	}
	return ratings, nil
}
