package model

import (
	"time"
)

type Board struct {
	ID             int64      `gorm:"primaryKey" json:"id"`
	Title          string     `gorm:"size:200;not null" json:"title"`
	WriterID       int64      `gorm:"not null;index" json:"writer_id"`
	CategoryID     int64      `gorm:"not null;index" json:"category_id"`
	Content        string     `gorm:"type:text" json:"content"`
	DeletedAt      *time.Time `gorm:"index" json:"deleted_at,omitempty"`
	DeleteReasonID *int64     `json:"delete_reason_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// 关联
	Writer   *UserInfo `gorm:"foreignKey:WriterID" json:"writer,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Board) TableName() string {
	return "boards"
}

func (b *Board) Deleted() bool {
	return b.DeletedAt != nil || b.DeleteReasonID != nil
}
