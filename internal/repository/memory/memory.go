// Package memory holds in-memory implementations of the repository
// interfaces. They back STORE_DRIVER=memory and the service tests.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"campus-helper/internal/domain"
	"campus-helper/internal/repository"
)

var errUndefinedColumn = errors.New(`column "parent_id" does not exist`)

// Store is a single in-memory database shared by all repositories built from
// it.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	// WithoutParentColumn simulates a schema that predates parent references.
	WithoutParentColumn bool

	comments      []domain.Comment
	posts         map[uuid.UUID]domain.ForumPost
	items         map[uuid.UUID]domain.MarketplaceItem
	jobs          []domain.Job
	profiles      map[uuid.UUID]domain.Profile
	ratings       []domain.Rating
	reports       []domain.Report
	conversations map[uuid.UUID]domain.Conversation
	participants  []domain.Participant
}

func NewStore() *Store {
	return &Store{
		now:           time.Now,
		posts:         make(map[uuid.UUID]domain.ForumPost),
		items:         make(map[uuid.UUID]domain.MarketplaceItem),
		profiles:      make(map[uuid.UUID]domain.Profile),
		conversations: make(map[uuid.UUID]domain.Conversation),
	}
}

// SetClock replaces the timestamp source used for created rows.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) Repositories() *repository.Repositories {
	return &repository.Repositories{
		Comment:      &commentRepository{s},
		ForumPost:    &forumPostRepository{s},
		Marketplace:  &marketplaceRepository{s},
		Job:          &jobRepository{s},
		Profile:      &profileRepository{s},
		Rating:       &ratingRepository{s},
		Report:       &reportRepository{s},
		Conversation: &conversationRepository{s},
	}
}

// Seed helpers.

func (s *Store) PutProfile(p domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.ID] = p
}

func (s *Store) PutPost(p domain.ForumPost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[p.ID] = p
}

func (s *Store) PutItem(i domain.MarketplaceItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[i.ID] = i
}

func (s *Store) PutJob(j domain.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, j)
}

func (s *Store) PutComment(c domain.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments = append(s.comments, c)
}

func (s *Store) PutConversation(c domain.Conversation, members ...uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations[c.ID] = c
	for _, m := range members {
		s.participants = append(s.participants, domain.Participant{ConversationID: c.ID, UserID: m})
	}
}

// Participants returns a copy of every participant row.
func (s *Store) Participants() []domain.Participant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Participant(nil), s.participants...)
}

func (s *Store) ConversationCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conversations)
}

func (s *Store) Reports() []domain.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Report(nil), s.reports...)
}

func (s *Store) authorName(userID uuid.UUID) string {
	p, ok := s.profiles[userID]
	if !ok {
		return domain.DefaultDisplayName
	}
	return domain.DisplayName(p.FullName, p.Email)
}

func (s *Store) authorSummary(userID uuid.UUID) *domain.AuthorSummary {
	p, ok := s.profiles[userID]
	if !ok {
		return domain.NewAuthorSummary(&domain.Profile{ID: userID})
	}
	return domain.NewAuthorSummary(&p)
}

type commentRepository struct{ s *Store }

func (r *commentRepository) ListByPost(_ context.Context, postID uuid.UUID, withParent bool) ([]domain.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if withParent && r.s.WithoutParentColumn {
		return nil, &domain.SchemaError{Table: domain.CommentsTable, Column: domain.CommentParentColumn, Err: errUndefinedColumn}
	}

	var out []domain.Comment
	for _, c := range r.s.comments {
		if c.PostID != postID {
			continue
		}
		c.Author = r.s.authorName(c.UserID)
		if !withParent {
			c.ParentID = nil
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *commentRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.comments {
		if c.ID == id {
			c.Author = r.s.authorName(c.UserID)
			return &c, nil
		}
	}
	return nil, nil
}

func (r *commentRepository) Create(_ context.Context, comment *domain.Comment, withParent bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if withParent && r.s.WithoutParentColumn {
		return &domain.SchemaError{Table: domain.CommentsTable, Column: domain.CommentParentColumn, Err: errUndefinedColumn}
	}

	c := *comment
	if !withParent {
		c.ParentID = nil
	}
	c.CreatedAt = r.s.now()
	comment.CreatedAt = c.CreatedAt
	r.s.comments = append(r.s.comments, c)
	return nil
}

type forumPostRepository struct{ s *Store }

func (r *forumPostRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.ForumPost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.posts[id]
	if !ok {
		return nil, nil
	}
	p.Author = r.s.authorSummary(p.UserID)
	return &p, nil
}

func (r *forumPostRepository) IncrementViews(_ context.Context, id uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.posts[id]
	if !ok {
		return 0, &domain.StoreError{Op: "posts.views", Err: errors.New("no such post")}
	}
	p.Views++
	r.s.posts[id] = p
	return p.Views, nil
}

func (r *forumPostRepository) ListRecent(_ context.Context, limit int) ([]domain.ForumPost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.ForumPost, 0, len(r.s.posts))
	for _, p := range r.s.posts {
		p.Author = r.s.authorSummary(p.UserID)
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return head(out, limit), nil
}

type marketplaceRepository struct{ s *Store }

func (r *marketplaceRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.MarketplaceItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	item, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	item.Seller = r.s.authorSummary(item.UserID)
	return &item, nil
}

func (r *marketplaceRepository) ListByStatus(_ context.Context, status domain.ItemStatus, limit int) ([]domain.MarketplaceItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.MarketplaceItem
	for _, item := range r.s.items {
		if item.Status != status {
			continue
		}
		item.Seller = r.s.authorSummary(item.UserID)
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return head(out, limit), nil
}

type jobRepository struct{ s *Store }

func (r *jobRepository) ListByStatus(_ context.Context, status string, limit int) ([]domain.Job, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.Job
	for _, j := range r.s.jobs {
		if j.Status == status {
			out = append(out, j)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return head(out, limit), nil
}

type profileRepository struct{ s *Store }

func (r *profileRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.profiles[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

type ratingRepository struct{ s *Store }

func (r *ratingRepository) Create(_ context.Context, rating *domain.Rating) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rating.CreatedAt = r.s.now()
	r.s.ratings = append(r.s.ratings, *rating)
	return nil
}

func (r *ratingRepository) ListByRatedUser(_ context.Context, userID uuid.UUID, limit int) ([]domain.Rating, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.Rating
	for _, rt := range r.s.ratings {
		if rt.RatedUserID == userID {
			out = append(out, rt)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return head(out, limit), nil
}

type reportRepository struct{ s *Store }

func (r *reportRepository) Create(_ context.Context, report *domain.Report) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	report.CreatedAt = r.s.now()
	r.s.reports = append(r.s.reports, *report)
	return nil
}

type conversationRepository struct{ s *Store }

func (r *conversationRepository) ListIDsByUser(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var ids []uuid.UUID
	for _, p := range r.s.participants {
		if p.UserID == userID {
			ids = append(ids, p.ConversationID)
		}
	}
	return ids, nil
}

func (r *conversationRepository) FindWithParticipant(_ context.Context, conversationIDs []uuid.UUID, userID uuid.UUID) ([]uuid.UUID, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	wanted := make(map[uuid.UUID]bool, len(conversationIDs))
	for _, id := range conversationIDs {
		wanted[id] = true
	}

	seen := make(map[uuid.UUID]bool)
	var found []domain.Conversation
	for _, p := range r.s.participants {
		if p.UserID != userID || !wanted[p.ConversationID] || seen[p.ConversationID] {
			continue
		}
		c, ok := r.s.conversations[p.ConversationID]
		if !ok {
			continue
		}
		seen[c.ID] = true
		found = append(found, c)
	}

	sort.Slice(found, func(i, j int) bool {
		if !found[i].CreatedAt.Equal(found[j].CreatedAt) {
			return found[i].CreatedAt.Before(found[j].CreatedAt)
		}
		return found[i].ID.String() < found[j].ID.String()
	})

	ids := make([]uuid.UUID, len(found))
	for i, c := range found {
		ids[i] = c.ID
	}
	return ids, nil
}

func (r *conversationRepository) Create(_ context.Context, conversation *domain.Conversation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	conversation.CreatedAt = r.s.now()
	r.s.conversations[conversation.ID] = *conversation
	return nil
}

func (r *conversationRepository) AddParticipants(_ context.Context, participants []domain.Participant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range participants {
		if r.s.hasParticipant(p) {
			return &domain.StoreError{Op: "conversations.participants", Err: errors.New("duplicate participant")}
		}
	}
	r.s.participants = append(r.s.participants, participants...)
	return nil
}

func (r *conversationRepository) UpsertParticipants(_ context.Context, participants []domain.Participant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range participants {
		if !r.s.hasParticipant(p) {
			r.s.participants = append(r.s.participants, p)
		}
	}
	return nil
}

func (s *Store) hasParticipant(p domain.Participant) bool {
	for _, existing := range s.participants {
		if existing == p {
			return true
		}
	}
	return false
}

func head[T any](list []T, limit int) []T {
	if limit > 0 && len(list) > limit {
		return list[:limit]
	}
	return list
}
