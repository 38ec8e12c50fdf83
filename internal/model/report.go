package model

import (
	"time"
)

// Report 举报记录。同一举报人对同一评论只允许一条有效记录。
type Report struct {
	ID         int64      `gorm:"primaryKey" json:"id"`
	ReporterID int64      `gorm:"not null;index" json:"reporter_id"`
	CmtID      int64      `gorm:"not null;index" json:"cmt_id"`
	ReasonID   int64      `gorm:"not null" json:"reason_id"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`

	// 关联
	Reason *Reason `gorm:"foreignKey:ReasonID" json:"reason,omitempty"`
}

func (Report) TableName() string {
	return "reports"
}
