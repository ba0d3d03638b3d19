package rating

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"campus-helper/internal/domain"
	"campus-helper/internal/repository"
)

const defaultListLimit = 20

type Service interface {
	Submit(ctx context.Context, raterID uuid.UUID, input domain.CreateRatingInput) (*domain.Rating, error)
	ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Rating, error)
}

type service struct {
	ratingRepo repository.RatingRepository
}

func NewService(ratingRepo repository.RatingRepository) Service {
	return &service{ratingRepo: ratingRepo}
}

func (s *service) Submit(ctx context.Context, raterID uuid.UUID, input domain.CreateRatingInput) (*domain.Rating, error) {
	if input.RatedUserID == uuid.Nil {
		return nil, domain.NewValidationError("rated_user_id", "rating.rated_user_required")
	}
	if input.Rating < domain.MinRating || input.Rating > domain.MaxRating {
		return nil, domain.NewValidationError("rating", "rating.out_of_range")
	}
	if raterID == uuid.Nil {
		return nil, domain.ErrSignInRequired
	}
	if raterID == input.RatedUserID {
		return nil, domain.NewValidationError("rated_user_id", "rating.self_rating")
	}

	rating := &domain.Rating{
		ID:              uuid.New(),
		RatedUserID:     input.RatedUserID,
		RaterUserID:     raterID,
		Rating:          input.Rating,
		Comment:         strings.TrimSpace(input.Comment),
		TransactionType: domain.TransactionProfile,
	}

	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *service) ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Rating, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}
	ratings, err := s.ratingRepo.ListByRatedUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if ratings == nil {
		ratings = []domain.Rating{}
	}
	return ratings, nil
}
