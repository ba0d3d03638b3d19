package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultDisplayName is shown when a profile has neither a name nor an email.
const DefaultDisplayName = "Utilizator Campus Helper"

const CommentsTable = "forum_comments"

// CommentParentColumn may be missing from older schemas.
const CommentParentColumn = "parent_id"

type Comment struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	PostID    uuid.UUID  `json:"post_id" db:"post_id"`
	UserID    uuid.UUID  `json:"user_id" db:"user_id"`
	ParentID  *uuid.UUID `json:"parent_id" db:"parent_id"`
	Content   string     `json:"content" db:"content"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	Author    string     `json:"author" db:"-"`
}

// ThreadedComment is a comment together with its ordered replies. Trees are
// rebuilt on every load and never persisted.
type ThreadedComment struct {
	Comment
	Replies []ThreadedComment `json:"replies"`
}

// CommentThread is the payload returned for a post's comments. Threaded is
// false when the store could not provide parent references and every comment
// is shown at top level.
type CommentThread struct {
	Threaded bool              `json:"threaded"`
	Total    int               `json:"total"`
	Comments []ThreadedComment `json:"comments"`
}

type CreateCommentInput struct {
	ParentID *uuid.UUID `json:"parent_id"`
	Content  string     `json:"content"`
}

// ReplyResult reports whether the parent link had to be dropped on insert.
type ReplyResult struct {
	Comment  *Comment `json:"comment"`
	Threaded bool     `json:"threaded"`
	Notice   string   `json:"notice,omitempty"`
}

// DisplayName resolves an author label from a joined profile.
func DisplayName(fullName, email *string) string {
	if fullName != nil && *fullName != "" {
		return *fullName
	}
	if email != nil && *email != "" {
		return *email
	}
	return DefaultDisplayName
}
