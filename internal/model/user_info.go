package model

import (
	"time"
)

type UserInfo struct {
	ID           int64      `gorm:"primaryKey" json:"id"`
	Nick         string     `gorm:"size:50;uniqueIndex;not null" json:"nick"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	ProfileImg   *string    `gorm:"size:500" json:"profile_img,omitempty"`
	IsAdmin      bool       `gorm:"default:false" json:"is_admin"`
	DeletedAt    *time.Time `gorm:"index" json:"deleted_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (UserInfo) TableName() string {
	return "user_infos"
}
