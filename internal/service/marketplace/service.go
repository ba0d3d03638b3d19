package marketplace

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"campus-helper/internal/domain"
	"campus-helper/internal/pkg/format"
	"campus-helper/internal/repository"
	"campus-helper/internal/service/conversation"
	"campus-helper/internal/service/email"
	"campus-helper/internal/service/rating"
	"campus-helper/internal/service/report"
)

// ImageSigner issues temporary download URLs for stored images.
// *minio.Client satisfies it.
type ImageSigner interface {
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

type Service interface {
	GetItem(ctx context.Context, userID, itemID uuid.UUID) (*domain.MarketplaceItem, error)
	ListReviews(ctx context.Context, itemID uuid.UUID, limit int) ([]domain.Rating, error)
	SubmitReview(ctx context.Context, raterID, itemID uuid.UUID, input domain.CreateRatingInput) (*domain.Rating, error)
	ReportItem(ctx context.Context, reporterID, itemID uuid.UUID, input domain.CreateReportInput) (*domain.Report, error)
	Contact(ctx context.Context, userID, itemID uuid.UUID) (*domain.ContactResult, error)
}

type Options struct {
	Bucket         string
	ImageURLExpiry time.Duration
}

type service struct {
	itemRepo      repository.MarketplaceRepository
	profileRepo   repository.ProfileRepository
	conversations conversation.Service
	ratings       rating.Service
	reports       report.Service
	emailSvc      email.Service
	signer        ImageSigner
	opts          Options
}

func NewService(
	itemRepo repository.MarketplaceRepository,
	profileRepo repository.ProfileRepository,
	conversations conversation.Service,
	ratings rating.Service,
	reports report.Service,
	emailSvc email.Service,
	signer ImageSigner,
	opts Options,
) Service {
	if opts.ImageURLExpiry <= 0 {
		opts.ImageURLExpiry = time.Hour
	}
	return &service{
		itemRepo:      itemRepo,
		profileRepo:   profileRepo,
		conversations: conversations,
		ratings:       ratings,
		reports:       reports,
		emailSvc:      emailSvc,
		signer:        signer,
		opts:          opts,
	}
}

func (s *service) getItem(ctx context.Context, itemID uuid.UUID) (*domain.MarketplaceItem, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

func (s *service) GetItem(ctx context.Context, userID, itemID uuid.UUID) (*domain.MarketplaceItem, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrSignInRequired
	}

	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	item.FormattedPrice = format.CurrencyRON(item.Price)
	item.ImageURLs = s.signImages(ctx, item.Images)
	return item, nil
}

func (s *service) signImages(ctx context.Context, keys []string) []string {
	urls := []string{}
	if s.signer == nil {
		return urls
	}
	for _, key := range keys {
		u, err := s.signer.PresignedGetObject(ctx, s.opts.Bucket, key, s.opts.ImageURLExpiry, nil)
		if err != nil {
			log.Warn().Err(err).Str("object", key).Msg("presign image failed")
			continue
		}
		urls = append(urls, u.String())
	}
	return urls
}

func (s *service) ListReviews(ctx context.Context, itemID uuid.UUID, limit int) ([]domain.Rating, error) {
	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.ratings.ListForUser(ctx, item.UserID, limit)
}

func (s *service) SubmitReview(ctx context.Context, raterID, itemID uuid.UUID, input domain.CreateRatingInput) (*domain.Rating, error) {
	if raterID == uuid.Nil {
		return nil, domain.ErrSignInRequired
	}
	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	input.RatedUserID = item.UserID
	return s.ratings.Submit(ctx, raterID, input)
}

func (s *service) ReportItem(ctx context.Context, reporterID, itemID uuid.UUID, input domain.CreateReportInput) (*domain.Report, error) {
	if reporterID == uuid.Nil {
		return nil, domain.ErrSignInRequired
	}
	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	sellerID := item.UserID
	input.TargetType = domain.TargetMarketplaceItem
	input.TargetID = item.ID
	input.TargetUserID = &sellerID
	return s.reports.Submit(ctx, reporterID, input)
}

func (s *service) Contact(ctx context.Context, userID, itemID uuid.UUID) (*domain.ContactResult, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrSignInRequired
	}
	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	id := item.ID
	conversationID, created, err := s.conversations.FindOrCreate(ctx, userID, item.UserID, &id)
	if err != nil {
		return nil, err
	}

	if created {
		s.notifySeller(ctx, item, userID, conversationID)
	}

	return &domain.ContactResult{
		ConversationID: conversationID,
		Created:        created,
		Redirect:       fmt.Sprintf("/messages?id=%s", conversationID),
	}, nil
}

func (s *service) notifySeller(ctx context.Context, item *domain.MarketplaceItem, buyerID, conversationID uuid.UUID) {
	if s.emailSvc == nil || item.Seller == nil || item.Seller.Email == nil {
		return
	}

	buyerName := domain.DefaultDisplayName
	if buyer, err := s.profileRepo.GetByID(ctx, buyerID); err == nil && buyer != nil {
		buyerName = domain.DisplayName(buyer.FullName, buyer.Email)
	}

	toEmail := *item.Seller.Email
	sellerName := item.Seller.Name
	title := item.Title
	go func() {
		err := s.emailSvc.SendContactEmail(context.Background(), toEmail, sellerName, buyerName, title, conversationID.String())
		if err != nil {
			log.Warn().Err(err).Str("conversation_id", conversationID.String()).Msg("failed to send contact email")
		}
	}()
}
