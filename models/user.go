package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser         UserRole = "USER"
	RoleModerator    UserRole = "MODERATOR"
	RoleEditor       UserRole = "EDITOR"
	RoleSeniorEditor UserRole = "SENIOR_EDITOR"
	RoleAdmin        UserRole = "ADMIN"
	RoleSysadmin     UserRole = "SYSADMIN"
)

type User struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Username    string         `json:"username" gorm:"uniqueIndex;not null"`
	Email       string         `json:"email" gorm:"uniqueIndex;not null"`
	Password    string         `json:"-" gorm:"not null"`
	Role        UserRole       `json:"role" gorm:"type:varchar(32);default:'USER'"`
	DisplayName string         `json:"display_name"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
