package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"campus-helper/internal/config"
	"campus-helper/internal/repository"
	"campus-helper/internal/service/auth"
	"campus-helper/internal/service/conversation"
	"campus-helper/internal/service/email"
	"campus-helper/internal/service/forum"
	"campus-helper/internal/service/home"
	"campus-helper/internal/service/marketplace"
	"campus-helper/internal/service/rating"
	"campus-helper/internal/service/report"
)

type Services struct {
	Auth         auth.Service
	Forum        forum.Service
	Marketplace  marketplace.Service
	Conversation conversation.Service
	Rating       rating.Service
	Report       report.Service
	Home         home.Service
	Email        email.Service
}

// NewServices wires every service. redis and minioClient may be nil.
func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	authService := auth.NewService(cfg.JWTSecret)
	reportService := report.NewService(repos.Report)
	ratingService := rating.NewService(repos.Rating)
	conversationService := conversation.NewService(repos.Conversation)

	forumService := forum.NewService(repos.Comment, repos.ForumPost, reportService, redis, forum.Options{
		ThreadCacheTTL:   cfg.ThreadCacheTTL,
		ViewDedupeWindow: cfg.ViewDedupeWindow,
	})

	var signer marketplace.ImageSigner
	if minioClient != nil {
		signer = minioClient
	}
	marketplaceService := marketplace.NewService(
		repos.Marketplace,
		repos.Profile,
		conversationService,
		ratingService,
		reportService,
		emailService,
		signer,
		marketplace.Options{
			Bucket:         cfg.MinIOBucket,
			ImageURLExpiry: cfg.ImageURLExpiry,
		},
	)

	homeService := home.NewService(repos.Job, repos.Marketplace, repos.ForumPost, redis, cfg.HomeCacheTTL)

	return &Services{
		Auth:         authService,
		Forum:        forumService,
		Marketplace:  marketplaceService,
		Conversation: conversationService,
		Rating:       ratingService,
		Report:       reportService,
		Home:         homeService,
		Email:        emailService,
	}
}
