package models

import "time"

type ApprovalAction string

const (
	ActionSubmitted     ApprovalAction = "SUBMITTED"
	ActionApproved      ApprovalAction = "APPROVED"
	ActionChangesNeeded ApprovalAction = "CHANGES_NEEDED"
	ActionArchived      ApprovalAction = "ARCHIVED"
	ActionDeleted       ApprovalAction = "DELETED"
	ActionRestored      ApprovalAction = "RESTORED"
)

// ApprovalHistory is one row of the append-only audit ledger. A row is
// written in the same transaction as the article mutation it records and
// is never updated or deleted afterwards.
type ApprovalHistory struct {
	ID         uint           `json:"id" gorm:"primarykey"`
	ArticleID  uint           `json:"article_id" gorm:"not null;index"`
	FromStatus ArticleStatus  `json:"from_status" gorm:"type:varchar(32);not null"`
	ToStatus   ArticleStatus  `json:"to_status" gorm:"type:varchar(32);not null"`
	Action     ApprovalAction `json:"action" gorm:"type:varchar(32);not null"`
	Comment    string         `json:"comment" gorm:"type:text"`
	ActionByID uint           `json:"action_by_id" gorm:"not null"`
	ActionBy   *User          `json:"action_by,omitempty" gorm:"foreignKey:ActionByID"`
	CreatedAt  time.Time      `json:"created_at" gorm:"index"`
}
