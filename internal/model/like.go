package model

import (
	"time"
)

// Like 点赞/点踩记录。同一 (user_id, cmt_id) 至多一行，
// IsLike 与 IsDislike 是两个互不影响的开关，允许同时为 true。
type Like struct {
	ID        int64      `gorm:"primaryKey" json:"id"`
	UserID    int64      `gorm:"not null;index:idx_like_user_cmt" json:"user_id"`
	CmtID     int64      `gorm:"not null;index:idx_like_user_cmt" json:"cmt_id"`
	IsLike    bool       `gorm:"default:false" json:"is_like"`
	IsDislike bool       `gorm:"default:false" json:"is_dislike"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Like) TableName() string {
	return "likes"
}
