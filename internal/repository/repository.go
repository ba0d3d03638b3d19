package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Comment      CommentRepository
	ForumPost    ForumPostRepository
	Marketplace  MarketplaceRepository
	Job          JobRepository
	Profile      ProfileRepository
	Rating       RatingRepository
	Report       ReportRepository
	Conversation ConversationRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Comment:      NewCommentRepository(db),
		ForumPost:    NewForumPostRepository(db),
		Marketplace:  NewMarketplaceRepository(db),
		Job:          NewJobRepository(db),
		Profile:      NewProfileRepository(db),
		Rating:       NewRatingRepository(db),
		Report:       NewReportRepository(db),
		Conversation: NewConversationRepository(db),
	}
}
