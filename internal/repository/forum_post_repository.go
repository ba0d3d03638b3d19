package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"campus-helper/internal/domain"
)

type ForumPostRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ForumPost, error)
	IncrementViews(ctx context.Context, id uuid.UUID) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]domain.ForumPost, error)
}

type forumPostRepository struct {
	db *sqlx.DB
}

func NewForumPostRepository(db *sqlx.DB) ForumPostRepository {
	return &forumPostRepository{db: db}
}

type forumPostRow struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	Title        string    `db:"title"`
	Content      string    `db:"content"`
	Category     string    `db:"category"`
	Views        int64     `db:"views"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
	FullName     *string   `db:"full_name"`
	Email        *string   `db:"email"`
	Rating       *float64  `db:"rating"`
	TotalRatings *int      `db:"total_ratings"`
}

func (r forumPostRow) toDomain() domain.ForumPost {
	return domain.ForumPost{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		Content:   r.Content,
		Category:  r.Category,
		Views:     r.Views,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Author: domain.NewAuthorSummary(&domain.Profile{
			ID:           r.UserID,
			FullName:     r.FullName,
			Email:        r.Email,
			Rating:       r.Rating,
			TotalRatings: r.TotalRatings,
		}),
	}
}

const forumPostColumns = `
	f.id, f.user_id, f.title, f.content, f.category, COALESCE(f.views, 0) AS views, f.created_at, f.updated_at,
	p.full_name, p.email, p.rating, p.total_ratings`

func (r *forumPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ForumPost, error) {
	var row forumPostRow
	query := `SELECT` + forumPostColumns + `
		FROM forum_posts f
		LEFT JOIN profiles p ON p.id = f.user_id
		WHERE f.id = $1`

	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("posts.load", "forum_posts", "", err)
	}
	post := row.toDomain()
	return &post, nil
}

func (r *forumPostRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	var views int64
	query := `UPDATE forum_posts SET views = COALESCE(views, 0) + 1 WHERE id = $1 RETURNING views`
	if err := r.db.QueryRowxContext(ctx, query, id).Scan(&views); err != nil {
		return 0, storeErr("posts.views", "forum_posts", "", err)
	}
	return views, nil
}

func (r *forumPostRepository) ListRecent(ctx context.Context, limit int) ([]domain.ForumPost, error) {
	var rows []forumPostRow
	query := `SELECT` + forumPostColumns + `
		FROM forum_posts f
		LEFT JOIN profiles p ON p.id = f.user_id
		ORDER BY f.created_at DESC
		LIMIT $1`

	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, storeErr("posts.list", "forum_posts", "", err)
	}

	posts := make([]domain.ForumPost, len(rows))
	for i, row := range rows {
		posts[i] = row.toDomain()
	}
	return posts, nil
}
