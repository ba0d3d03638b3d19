package forum

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"campus-helper/internal/domain"
	"campus-helper/internal/repository"
	"campus-helper/internal/service/report"
)

// commentReportDetailLimit caps how much of a reported comment is copied into
// the report.
const commentReportDetailLimit = 200

type Service interface {
	GetPost(ctx context.Context, userID, postID uuid.UUID) (*domain.ForumPost, error)
	ListComments(ctx context.Context, postID uuid.UUID) (*domain.CommentThread, error)
	Reply(ctx context.Context, userID, postID uuid.UUID, input domain.CreateCommentInput) (*domain.ReplyResult, error)
	ReportPost(ctx context.Context, reporterID, postID uuid.UUID, input domain.CreateReportInput) (*domain.Report, error)
	ReportComment(ctx context.Context, reporterID, commentID uuid.UUID) (*domain.Report, error)
}

type Options struct {
	ThreadCacheTTL   time.Duration
	ViewDedupeWindow time.Duration
}

type service struct {
	commentRepo repository.CommentRepository
	postRepo    repository.ForumPostRepository
	reports     report.Service
	redis       *redis.Client
	opts        Options
}

func NewService(commentRepo repository.CommentRepository, postRepo repository.ForumPostRepository, reports report.Service, redis *redis.Client, opts Options) Service {
	if opts.ThreadCacheTTL <= 0 {
		opts.ThreadCacheTTL = 5 * time.Minute
	}
	if opts.ViewDedupeWindow <= 0 {
		opts.ViewDedupeWindow = time.Hour
	}
	return &service{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		reports:     reports,
		redis:       redis,
		opts:        opts,
	}
}

func threadCacheKey(postID uuid.UUID) string {
	return fmt.Sprintf("forum:comments:%s", postID)
}

func viewKey(postID, userID uuid.UUID) string {
	return fmt.Sprintf("forum:views:%s:%s", postID, userID)
}

func (s *service) GetPost(ctx context.Context, userID, postID uuid.UUID) (*domain.ForumPost, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrSignInRequired
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}

	if s.shouldCountView(ctx, postID, userID) {
		views, err := s.postRepo.IncrementViews(ctx, postID)
		if err != nil {
			log.Warn().Err(err).Str("post_id", postID.String()).Msg("increment views failed")
		} else {
			post.Views = views
		}
	}

	return post, nil
}

// shouldCountView allows one view per user and post inside the dedupe
// window. Without Redis every load counts.
func (s *service) shouldCountView(ctx context.Context, postID, userID uuid.UUID) bool {
	if s.redis == nil {
		return true
	}
	first, err := s.redis.SetNX(ctx, viewKey(postID, userID), 1, s.opts.ViewDedupeWindow).Result()
	if err != nil {
		log.Warn().Err(err).Msg("view dedupe unavailable")
		return true
	}
	return first
}

func (s *service) ListComments(ctx context.Context, postID uuid.UUID) (*domain.CommentThread, error) {
	cacheKey := threadCacheKey(postID)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var thread domain.CommentThread
			if json.Unmarshal([]byte(cached), &thread) == nil {
				return &thread, nil
			}
		}
	}

	comments, threaded, err := s.loadComments(ctx, postID)
	if err != nil {
		return nil, err
	}

	var roots []domain.ThreadedComment
	if threaded {
		roots = BuildThread(comments)
	} else {
		roots = Flat(comments)
	}

	thread := &domain.CommentThread{
		Threaded: threaded,
		Total:    len(comments),
		Comments: roots,
	}

	// A flat thread is not cached so replies nest as soon as the parent
	// column exists.
	if s.redis != nil && threaded {
		if threadJSON, err := json.Marshal(thread); err == nil {
			_ = s.redis.Set(ctx, cacheKey, threadJSON, s.opts.ThreadCacheTTL).Err()
		}
	}

	return thread, nil
}

// loadComments fetches with parent references and falls back to a flat fetch
// when the schema lacks the parent column. No other failure is retried.
func (s *service) loadComments(ctx context.Context, postID uuid.UUID) ([]domain.Comment, bool, error) {
	comments, err := s.commentRepo.ListByPost(ctx, postID, true)
	if err == nil {
		return comments, true, nil
	}
	if !domain.IsMissingColumn(err, domain.CommentsTable, domain.CommentParentColumn) {
		return nil, false, err
	}

	log.Warn().Str("post_id", postID.String()).Msg("parent_id missing from schema; falling back to flat comments")

	comments, err = s.commentRepo.ListByPost(ctx, postID, false)
	if err != nil {
		return nil, false, err
	}
	return comments, false, nil
}

func (s *service) Reply(ctx context.Context, userID, postID uuid.UUID, input domain.CreateCommentInput) (*domain.ReplyResult, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, domain.NewValidationError("content", "comments.content_required")
	}
	if userID == uuid.Nil {
		return nil, domain.ErrSignInRequired
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}

	if input.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.PostID != postID {
			return nil, domain.NewValidationError("parent_id", "comments.parent_not_found")
		}
	}

	comment := &domain.Comment{
		ID:       uuid.New(),
		PostID:   postID,
		UserID:   userID,
		ParentID: input.ParentID,
		Content:  content,
	}
	result := &domain.ReplyResult{Comment: comment, Threaded: true}

	err = s.commentRepo.Create(ctx, comment, comment.ParentID != nil)
	if err != nil && comment.ParentID != nil && domain.IsMissingColumn(err, domain.CommentsTable, domain.CommentParentColumn) {
		log.Warn().Str("post_id", postID.String()).Msg("parent_id not found; retrying insert without parent link")
		comment.ParentID = nil
		result.Threaded = false
		result.Notice = "comments.reply_flattened"
		err = s.commentRepo.Create(ctx, comment, false)
	}
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		_ = s.redis.Del(ctx, threadCacheKey(postID)).Err()
	}

	return result, nil
}

func (s *service) ReportPost(ctx context.Context, reporterID, postID uuid.UUID, input domain.CreateReportInput) (*domain.Report, error) {
	if reporterID == uuid.Nil {
		return nil, domain.ErrSignInRequired
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}

	authorID := post.UserID
	input.TargetType = domain.TargetForumPost
	input.TargetID = post.ID
	input.TargetUserID = &authorID
	return s.reports.Submit(ctx, reporterID, input)
}

func (s *service) ReportComment(ctx context.Context, reporterID, commentID uuid.UUID) (*domain.Report, error) {
	if reporterID == uuid.Nil {
		return nil, domain.ErrSignInRequired
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, domain.ErrCommentNotFound
	}

	authorID := comment.UserID
	return s.reports.Submit(ctx, reporterID, domain.CreateReportInput{
		TargetType:   domain.TargetComment,
		TargetID:     comment.ID,
		TargetUserID: &authorID,
		Reason:       domain.ReasonComment,
		Details:      truncateRunes(comment.Content, commentReportDetailLimit),
	})
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
