package models

import (
	"time"

	"gorm.io/gorm"
)

type Game struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Title       string         `json:"title" gorm:"not null"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null"`
	Synopsis    string         `json:"synopsis" gorm:"type:text"`
	DeveloperID *uint          `json:"developer_id"`
	Developer   *Company       `json:"developer,omitempty" gorm:"foreignKey:DeveloperID"`
	PublisherID *uint          `json:"publisher_id"`
	Publisher   *Company       `json:"publisher,omitempty" gorm:"foreignKey:PublisherID"`
	Platforms   []Platform     `json:"platforms" gorm:"many2many:game_platforms;"`
	ReleaseDate *time.Time     `json:"release_date"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
