package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportTarget string

const (
	TargetForumPost       ReportTarget = "forum_post"
	TargetComment         ReportTarget = "comment"
	TargetMarketplaceItem ReportTarget = "marketplace_item"
)

// Table returns the storage table the target lives in.
func (t ReportTarget) Table() string {
	switch t {
	case TargetForumPost:
		return "forum_posts"
	case TargetComment:
		return "forum_comments"
	case TargetMarketplaceItem:
		return "marketplace_items"
	default:
		return ""
	}
}

const (
	ReasonSpam       = "spam"
	ReasonScam       = "scam"
	ReasonInsult     = "insult"
	ReasonInaccurate = "inaccurate"
	ReasonOther      = "other"
	ReasonComment    = "comment"

	ReportStatusOpen = "open"
)

func IsValidReportReason(reason string) bool {
	switch reason {
	case ReasonSpam, ReasonScam, ReasonInsult, ReasonInaccurate, ReasonOther, ReasonComment:
		return true
	default:
		return false
	}
}

type Report struct {
	ID             uuid.UUID    `json:"id" db:"id"`
	TargetType     ReportTarget `json:"target_type" db:"target_type"`
	TargetTable    string       `json:"target_table" db:"target_table"`
	TargetID       uuid.UUID    `json:"target_id" db:"target_id"`
	TargetUserID   *uuid.UUID   `json:"target_user_id" db:"target_user_id"`
	ReporterUserID uuid.UUID    `json:"reporter_user_id" db:"reporter_user_id"`
	Reason         string       `json:"reason" db:"reason"`
	Details        string       `json:"details" db:"details"`
	Status         string       `json:"status" db:"status"`
	CreatedAt      time.Time    `json:"created_at" db:"created_at"`
}

type CreateReportInput struct {
	TargetType   ReportTarget `json:"-"`
	TargetID     uuid.UUID    `json:"-"`
	TargetUserID *uuid.UUID   `json:"-"`
	Reason       string       `json:"reason"`
	Details      string       `json:"details"`
}
