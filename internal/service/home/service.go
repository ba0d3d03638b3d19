package home

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"campus-helper/internal/domain"
	"campus-helper/internal/pkg/format"
	"campus-helper/internal/repository"
)

const (
	highlightLimit = 3
	cacheKey       = "home:highlights"
)

type Service interface {
	Highlights(ctx context.Context) (*domain.Highlights, error)
}

type service struct {
	jobRepo  repository.JobRepository
	itemRepo repository.MarketplaceRepository
	postRepo repository.ForumPostRepository
	redis    *redis.Client
	ttl      time.Duration
}

func NewService(jobRepo repository.JobRepository, itemRepo repository.MarketplaceRepository, postRepo repository.ForumPostRepository, redis *redis.Client, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &service{
		jobRepo:  jobRepo,
		itemRepo: itemRepo,
		postRepo: postRepo,
		redis:    redis,
		ttl:      ttl,
	}
}

// Highlights never fails: any store error yields the placeholder feed.
func (s *service) Highlights(ctx context.Context) (*domain.Highlights, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var h domain.Highlights
			if json.Unmarshal([]byte(cached), &h) == nil {
				return &h, nil
			}
		}
	}

	var (
		jobs  []domain.Job
		items []domain.MarketplaceItem
		posts []domain.ForumPost
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jobs, err = s.jobRepo.ListByStatus(gctx, "open", highlightLimit)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.itemRepo.ListByStatus(gctx, domain.ItemAvailable, highlightLimit)
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = s.postRepo.ListRecent(gctx, highlightLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Warn().Err(err).Msg("home highlights unavailable; serving fallback")
		return Fallback(), nil
	}

	fallback := Fallback()
	h := &domain.Highlights{Jobs: jobs, Items: items, Posts: posts}
	if len(h.Jobs) == 0 {
		h.Jobs = fallback.Jobs
		h.Fallback = true
	}
	if len(h.Items) == 0 {
		h.Items = fallback.Items
		h.Fallback = true
	}
	if len(h.Posts) == 0 {
		h.Posts = fallback.Posts
		h.Fallback = true
	}
	decorate(h)

	if s.redis != nil {
		if data, err := json.Marshal(h); err == nil {
			_ = s.redis.Set(ctx, cacheKey, data, s.ttl).Err()
		}
	}

	return h, nil
}

func decorate(h *domain.Highlights) {
	for i := range h.Jobs {
		h.Jobs[i].FormattedPay = format.PayRate(h.Jobs[i].PayRate, h.Jobs[i].PayType)
	}
	for i := range h.Items {
		h.Items[i].FormattedPrice = format.CurrencyRON(h.Items[i].Price)
		if h.Items[i].ImageURLs == nil {
			h.Items[i].ImageURLs = []string{}
		}
	}
}

// Fallback is the placeholder feed shown when live data cannot be loaded.
func Fallback() *domain.Highlights {
	h := &domain.Highlights{
		Fallback: true,
		Jobs: []domain.Job{
			{ID: uuid.Nil, UserID: uuid.Nil, Title: "Asistent de cercetare", Description: "Ajută la colectarea datelor pentru un proiect de laborator.", Category: "cercetare", PayRate: 40, PayType: domain.PayHourly, Location: "Campus", Status: "open"},
			{ID: uuid.Nil, UserID: uuid.Nil, Title: "Meditații matematică", Description: "Caut student pentru meditații la analiză.", Category: "meditatii", PayRate: 60, PayType: domain.PayHourly, Location: "Online", Status: "open"},
			{ID: uuid.Nil, UserID: uuid.Nil, Title: "Design afiș eveniment", Description: "Afiș pentru balul bobocilor.", Category: "design", PayRate: 300, PayType: domain.PayFixed, Location: "Remote", Status: "open"},
		},
		Items: []domain.MarketplaceItem{
			{ID: uuid.Nil, UserID: uuid.Nil, Title: "Manual de programare", Description: "Ediția a doua, ca nou.", Category: "carti", Price: 50, Condition: "bun", Status: domain.ItemAvailable},
			{ID: uuid.Nil, UserID: uuid.Nil, Title: "Calculator științific", Description: "Folosit un semestru.", Category: "echipament", Price: 80, Condition: "foarte bun", Status: domain.ItemAvailable},
			{ID: uuid.Nil, UserID: uuid.Nil, Title: "Notițe examene anul I", Description: "Toate materiile, scanate.", Category: "examene", Price: 20, Condition: "bun", Status: domain.ItemAvailable},
		},
		Posts: []domain.ForumPost{
			{ID: uuid.Nil, UserID: uuid.Nil, Title: "Bine ai venit pe forum", Content: "Autentifică-te pentru a vedea discuțiile complete.", Category: "general"},
			{ID: uuid.Nil, UserID: uuid.Nil, Title: "Cazare pentru semestrul următor", Content: "Schimbăm idei despre cămine și chirii.", Category: "housing"},
			{ID: uuid.Nil, UserID: uuid.Nil, Title: "Evenimente în campus", Content: "Ce se întâmplă săptămâna aceasta.", Category: "events"},
		},
	}
	decorate(h)
	return h
}
