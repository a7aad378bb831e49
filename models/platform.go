package models

import (
	"time"

	"gorm.io/gorm"
)

type Platform struct {
	ID           uint           `json:"id" gorm:"primarykey"`
	Name         string         `json:"name" gorm:"uniqueIndex;not null"`
	Abbreviation string         `json:"abbreviation"`
	Manufacturer string         `json:"manufacturer"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}
