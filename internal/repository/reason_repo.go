package repository

import (
	"gorm.io/gorm"

	"github.com/clashcrash/board_go_server/internal/model"
)

type ReasonRepository struct {
	db *gorm.DB
}

func NewReasonRepository(db *gorm.DB) *ReasonRepository {
	return &ReasonRepository{db: db}
}

// GetActiveByIDAndType 获取指定场景下的有效事由
func (r *ReasonRepository) GetActiveByIDAndType(id int64, reasonType string) (*model.Reason, error) {
	var reason model.Reason
	err := r.db.
		Where("id = ? AND reason_type = ? AND deleted_at IS NULL", id, reasonType).
		First(&reason).Error
	if err != nil {
		return nil, err
	}
	return &reason, nil
}

// ListActiveByType 按场景列出有效事由
func (r *ReasonRepository) ListActiveByType(reasonType string) ([]*model.Reason, error) {
	var reasons []*model.Reason
	err := r.db.
		Where("reason_type = ? AND deleted_at IS NULL", reasonType).
		Order("id ASC").
		Find(&reasons).Error
	return reasons, err
}
