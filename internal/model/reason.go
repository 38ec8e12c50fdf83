package model

import (
	"time"
)

// 事由类型
const (
	ReasonTypeCmtReport   = "CMT_REPORT"
	ReasonTypeBoardReport = "BOARD_REPORT"
	ReasonTypeDelete      = "DELETE"
)

// Reason 管理事由（举报理由、删除理由等），按 ReasonType 区分使用场景
type Reason struct {
	ID         int64      `gorm:"primaryKey" json:"id"`
	Title      string     `gorm:"size:100;not null" json:"title"`
	ReasonType string     `gorm:"size:30;not null;index" json:"reason_type"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (Reason) TableName() string {
	return "reasons"
}
