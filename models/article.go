package models

import (
	"time"
)

type ArticleStatus string

const (
	StatusDraft           ArticleStatus = "DRAFT"
	StatusPendingApproval ArticleStatus = "PENDING_APPROVAL"
	StatusNeedsChanges    ArticleStatus = "NEEDS_CHANGES"
	StatusPublished       ArticleStatus = "PUBLISHED"
	StatusArchived        ArticleStatus = "ARCHIVED"
	StatusDeleted         ArticleStatus = "DELETED"
)

// Valid reports whether s is one of the six enumerated statuses.
func (s ArticleStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPendingApproval, StatusNeedsChanges,
		StatusPublished, StatusArchived, StatusDeleted:
		return true
	}
	return false
}

// Article is the editorial unit. Status, PreviousStatus, DeletedAt,
// PublishedAt and CurrentReviewerID are owned by the workflow executor;
// nothing else writes them. PreviousStatus and DeletedAt are non-nil
// exactly while Status is DELETED.
type Article struct {
	ID                uint           `json:"id" gorm:"primarykey"`
	UserID            uint           `json:"user_id" gorm:"not null;index"`
	Author            *User          `json:"author,omitempty" gorm:"foreignKey:UserID"`
	Title             string         `json:"title" gorm:"not null"`
	Summary           string         `json:"summary"`
	Content           string         `json:"content" gorm:"type:text"`
	Status            ArticleStatus  `json:"status" gorm:"type:varchar(32);not null;default:'DRAFT';index"`
	PreviousStatus    *ArticleStatus `json:"previous_status,omitempty" gorm:"type:varchar(32)"`
	CurrentReviewerID *uint          `json:"current_reviewer_id"`
	CurrentReviewer   *User          `json:"current_reviewer,omitempty" gorm:"foreignKey:CurrentReviewerID"`
	CategoryID        *uint          `json:"category_id"`
	Category          *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	GameID            *uint          `json:"game_id"`
	Game              *Game          `json:"game,omitempty" gorm:"foreignKey:GameID"`
	PublishedAt       *time.Time     `json:"published_at"`
	DeletedAt         *time.Time     `json:"deleted_at,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}
