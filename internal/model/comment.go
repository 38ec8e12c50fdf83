package model

import (
	"time"
)

type Comment struct {
	ID             int64      `gorm:"primaryKey" json:"id"`
	BoardID        int64      `gorm:"not null;index" json:"board_id"`
	WriterID       int64      `gorm:"not null;index" json:"writer_id"`
	Content        string     `gorm:"type:text;not null" json:"content"`
	ReplyID        *int64     `gorm:"index" json:"reply_id,omitempty"`
	DeletedAt      *time.Time `gorm:"index" json:"deleted_at,omitempty"`
	DeleteReasonID *int64     `json:"delete_reason_id,omitempty"`
	CreatedAt      time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// 关联
	Writer       *UserInfo  `gorm:"foreignKey:WriterID" json:"writer,omitempty"`
	Board        *Board     `gorm:"foreignKey:BoardID" json:"board,omitempty"`
	DeleteReason *Reason    `gorm:"foreignKey:DeleteReasonID" json:"delete_reason,omitempty"`
	Likes        []*Like    `gorm:"foreignKey:CmtID" json:"likes,omitempty"`
	Reports      []*Report  `gorm:"foreignKey:CmtID" json:"reports,omitempty"`
	Replies      []*Comment `gorm:"-" json:"replies,omitempty"`
}

func (Comment) TableName() string {
	return "cmts"
}

// Deleted 软删除判定：删除时间或删除事由任一非空即视为已删除
func (c *Comment) Deleted() bool {
	return c.DeletedAt != nil || c.DeleteReasonID != nil
}
