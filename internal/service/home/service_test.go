package home_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-helper/internal/domain"
	"campus-helper/internal/repository/memory"
	"campus-helper/internal/service/home"
)

type failingJobs struct{}

func (failingJobs) ListByStatus(context.Context, string, int) ([]domain.Job, error) {
	return nil, &domain.StoreError{Op: "jobs.list", Err: errors.New("connection reset")}
}

func TestHomeService_Highlights(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Live data", func(t *testing.T) {
		store := memory.NewStore()
		for i := 0; i < 5; i++ {
			store.PutJob(domain.Job{ID: uuid.New(), Title: "Job", PayRate: 40, PayType: domain.PayHourly, Status: "open", CreatedAt: now.Add(time.Duration(i) * time.Minute)})
		}
		store.PutJob(domain.Job{ID: uuid.New(), Title: "Closed", Status: "closed", CreatedAt: now.Add(time.Hour)})
		store.PutItem(domain.MarketplaceItem{ID: uuid.New(), Title: "Bicicletă", Price: 300, Status: domain.ItemAvailable, CreatedAt: now})
		store.PutItem(domain.MarketplaceItem{ID: uuid.New(), Title: "Vândut", Price: 10, Status: domain.ItemSold, CreatedAt: now})
		store.PutPost(domain.ForumPost{ID: uuid.New(), Title: "Sesiune", CreatedAt: now})

		repos := store.Repositories()
		svc := home.NewService(repos.Job, repos.Marketplace, repos.ForumPost, nil, 0)

		h, err := svc.Highlights(ctx)

		require.NoError(t, err)
		assert.False(t, h.Fallback)
		require.Len(t, h.Jobs, 3)
		assert.Equal(t, "40 RON /oră", h.Jobs[0].FormattedPay)
		assert.True(t, h.Jobs[0].CreatedAt.After(h.Jobs[1].CreatedAt))
		require.Len(t, h.Items, 1)
		assert.Equal(t, "300 RON", h.Items[0].FormattedPrice)
		require.Len(t, h.Posts, 1)
		assert.Equal(t, "Sesiune", h.Posts[0].Title)
	})

	t.Run("Empty list is replaced and flagged", func(t *testing.T) {
		store := memory.NewStore()
		store.PutJob(domain.Job{ID: uuid.New(), Title: "Job", PayRate: 40, PayType: domain.PayHourly, Status: "open", CreatedAt: now})
		store.PutItem(domain.MarketplaceItem{ID: uuid.New(), Title: "Bicicletă", Price: 300, Status: domain.ItemAvailable, CreatedAt: now})

		repos := store.Repositories()
		svc := home.NewService(repos.Job, repos.Marketplace, repos.ForumPost, nil, 0)

		h, err := svc.Highlights(ctx)

		require.NoError(t, err)
		assert.True(t, h.Fallback)
		assert.Equal(t, "Job", h.Jobs[0].Title)
		assert.Equal(t, home.Fallback().Posts[0].Title, h.Posts[0].Title)
		assert.Equal(t, uuid.Nil, h.Posts[0].ID)
	})

	t.Run("Any failure serves placeholder feed", func(t *testing.T) {
		store := memory.NewStore()
		store.PutItem(domain.MarketplaceItem{ID: uuid.New(), Title: "Bicicletă", Status: domain.ItemAvailable, CreatedAt: now})
		repos := store.Repositories()
		svc := home.NewService(failingJobs{}, repos.Marketplace, repos.ForumPost, nil, time.Minute)

		h, err := svc.Highlights(ctx)

		require.NoError(t, err)
		assert.True(t, h.Fallback)
		assert.Len(t, h.Jobs, 3)
		assert.Len(t, h.Items, 3)
		assert.Len(t, h.Posts, 3)
		assert.NotEqual(t, "Bicicletă", h.Items[0].Title)
	})
}

func TestFallback(t *testing.T) {
	h := home.Fallback()

	assert.True(t, h.Fallback)
	assert.Equal(t, "300 RON /proiect", h.Jobs[2].FormattedPay)
	assert.Equal(t, "50 RON", h.Items[0].FormattedPrice)
}

func TestHomeService_HighlightsCache(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := memory.NewStore()
	store.PutPost(domain.ForumPost{ID: uuid.New(), Title: "Primul", CreatedAt: now})
	repos := store.Repositories()
	svc := home.NewService(repos.Job, repos.Marketplace, repos.ForumPost, client, time.Minute)

	first, err := svc.Highlights(ctx)
	require.NoError(t, err)
	require.Equal(t, "Primul", first.Posts[0].Title)
	assert.True(t, mr.Exists("home:highlights"))
	assert.Equal(t, time.Minute, mr.TTL("home:highlights"))

	store.PutPost(domain.ForumPost{ID: uuid.New(), Title: "Al doilea", CreatedAt: now.Add(time.Minute)})

	cached, err := svc.Highlights(ctx)
	require.NoError(t, err)
	assert.Len(t, cached.Posts, 1, "served from cache")

	mr.FastForward(time.Minute + time.Second)

	fresh, err := svc.Highlights(ctx)
	require.NoError(t, err)
	require.Len(t, fresh.Posts, 2)
	assert.Equal(t, "Al doilea", fresh.Posts[0].Title)
}
