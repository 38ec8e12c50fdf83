package repository

import (
	"gorm.io/gorm"

	"github.com/clashcrash/board_go_server/internal/model"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// GetActive 获取某人对某评论的有效举报
func (r *ReportRepository) GetActive(reporterID, cmtID int64) (*model.Report, error) {
	var report model.Report
	err := r.db.
		Where("reporter_id = ? AND cmt_id = ? AND deleted_at IS NULL", reporterID, cmtID).
		First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// Create 创建举报
func (r *ReportRepository) Create(report *model.Report) error {
	return r.db.Create(report).Error
}

// GetWithReasonByID 获取举报及事由（worker 发通知用）
func (r *ReportRepository) GetWithReasonByID(id int64) (*model.Report, error) {
	var report model.Report
	err := r.db.Preload("Reason").Where("id = ?", id).First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}
