package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"campus-helper/internal/domain"
)

type CommentRepository interface {
	// ListByPost returns the post's comments oldest first. With withParent
	// false the parent reference is not requested and every ParentID is nil.
	ListByPost(ctx context.Context, postID uuid.UUID, withParent bool) ([]domain.Comment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment, withParent bool) error
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

type commentRow struct {
	ID        uuid.UUID  `db:"id"`
	PostID    uuid.UUID  `db:"post_id"`
	UserID    uuid.UUID  `db:"user_id"`
	ParentID  *uuid.UUID `db:"parent_id"`
	Content   string     `db:"content"`
	CreatedAt time.Time  `db:"created_at"`
	FullName  *string    `db:"full_name"`
	Email     *string    `db:"email"`
}

func (r commentRow) toDomain() domain.Comment {
	return domain.Comment{
		ID:        r.ID,
		PostID:    r.PostID,
		UserID:    r.UserID,
		ParentID:  r.ParentID,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		Author:    domain.DisplayName(r.FullName, r.Email),
	}
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uuid.UUID, withParent bool) ([]domain.Comment, error) {
	parentExpr := "NULL::uuid AS parent_id"
	if withParent {
		parentExpr = "c.parent_id"
	}

	query := fmt.Sprintf(`
		SELECT c.id, c.post_id, c.user_id, %s, c.content, c.created_at, p.full_name, p.email
		FROM forum_comments c
		LEFT JOIN profiles p ON p.id = c.user_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC`, parentExpr)

	var rows []commentRow
	if err := r.db.SelectContext(ctx, &rows, query, postID); err != nil {
		return nil, storeErr("comments.load", domain.CommentsTable, optional(withParent), err)
	}

	comments := make([]domain.Comment, len(rows))
	for i, row := range rows {
		comments[i] = row.toDomain()
	}
	return comments, nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var row commentRow
	query := `
		SELECT c.id, c.post_id, c.user_id, NULL::uuid AS parent_id, c.content, c.created_at, p.full_name, p.email
		FROM forum_comments c
		LEFT JOIN profiles p ON p.id = c.user_id
		WHERE c.id = $1`

	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("comments.load", domain.CommentsTable, "", err)
	}
	c := row.toDomain()
	return &c, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment, withParent bool) error {
	if withParent {
		query := `
			INSERT INTO forum_comments (id, post_id, user_id, parent_id, content)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING created_at`
		err := r.db.QueryRowxContext(ctx, query,
			comment.ID, comment.PostID, comment.UserID, comment.ParentID, comment.Content,
		).Scan(&comment.CreatedAt)
		return storeErr("comments.create", domain.CommentsTable, domain.CommentParentColumn, err)
	}

	query := `
		INSERT INTO forum_comments (id, post_id, user_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`
	err := r.db.QueryRowxContext(ctx, query,
		comment.ID, comment.PostID, comment.UserID, comment.Content,
	).Scan(&comment.CreatedAt)
	return storeErr("comments.create", domain.CommentsTable, "", err)
}

func optional(withParent bool) string {
	if withParent {
		return domain.CommentParentColumn
	}
	return ""
}
