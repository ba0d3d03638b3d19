package rating_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campus-helper/internal/domain"
	"campus-helper/internal/mocks"
	"campus-helper/internal/service/rating"
)

func TestRatingService_Submit(t *testing.T) {
	ctx := context.Background()
	rater := uuid.New()
	seller := uuid.New()

	t.Run("Success", func(t *testing.T) {
		repo := new(mocks.RatingRepository)
		svc := rating.NewService(repo)

		repo.On("Create", ctx, mock.MatchedBy(func(r *domain.Rating) bool {
			return r.RaterUserID == rater && r.RatedUserID == seller && r.Rating == 4
		})).Return(nil).Once()

		r, err := svc.Submit(ctx, rater, domain.CreateRatingInput{RatedUserID: seller, Rating: 4, Comment: "  Vânzător de încredere "})

		require.NoError(t, err)
		assert.Equal(t, "Vânzător de încredere", r.Comment)
		assert.Equal(t, domain.TransactionProfile, r.TransactionType)
		repo.AssertExpectations(t)
	})

	invalid := []struct {
		name  string
		rater uuid.UUID
		input domain.CreateRatingInput
		key   string
	}{
		{"below range", rater, domain.CreateRatingInput{RatedUserID: seller, Rating: 0}, "rating.out_of_range"},
		{"above range", rater, domain.CreateRatingInput{RatedUserID: seller, Rating: 6}, "rating.out_of_range"},
		{"no rated user", rater, domain.CreateRatingInput{Rating: 3}, "rating.rated_user_required"},
		{"missing session", uuid.Nil, domain.CreateRatingInput{RatedUserID: seller, Rating: 3}, "auth.sign_in_required"},
		{"self rating", seller, domain.CreateRatingInput{RatedUserID: seller, Rating: 5}, "rating.self_rating"},
	}

	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mocks.RatingRepository)
			svc := rating.NewService(repo)

			r, err := svc.Submit(ctx, tc.rater, tc.input)

			assert.Nil(t, r)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.key, ve.Key)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestRatingService_ListForUser(t *testing.T) {
	ctx := context.Background()
	seller := uuid.New()

	t.Run("Clamps limit", func(t *testing.T) {
		repo := new(mocks.RatingRepository)
		svc := rating.NewService(repo)
		repo.On("ListByRatedUser", ctx, seller, 20).Return(nil, nil).Once()

		ratings, err := svc.ListForUser(ctx, seller, 500)

		require.NoError(t, err)
		assert.NotNil(t, ratings)
		assert.Empty(t, ratings)
		repo.AssertExpectations(t)
	})

	t.Run("Passes limit through", func(t *testing.T) {
		repo := new(mocks.RatingRepository)
		svc := rating.NewService(repo)
		want := []domain.Rating{{ID: uuid.New(), RatedUserID: seller, Rating: 5}}
		repo.On("ListByRatedUser", ctx, seller, 5).Return(want, nil).Once()

		ratings, err := svc.ListForUser(ctx, seller, 5)

		require.NoError(t, err)
		assert.Equal(t, want, ratings)
	})
}
