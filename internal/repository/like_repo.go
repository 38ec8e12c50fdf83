package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/clashcrash/board_go_server/internal/model"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Get 获取某用户对某评论的有效点赞记录
func (r *LikeRepository) Get(userID, cmtID int64) (*model.Like, error) {
	var like model.Like
	err := r.db.
		Where("user_id = ? AND cmt_id = ? AND deleted_at IS NULL", userID, cmtID).
		First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

// Create 首次互动时惰性创建零状态记录
func (r *LikeRepository) Create(like *model.Like) error {
	return r.db.Create(like).Error
}

// Update 写回开关状态
func (r *LikeRepository) Update(like *model.Like) error {
	return r.db.Save(like).Error
}

// PurgeDeletedBefore 物理清除早于指定时间软删除的记录
func (r *LikeRepository) PurgeDeletedBefore(before time.Time) (int64, error) {
	result := r.db.
		Where("deleted_at IS NOT NULL AND deleted_at < ?", before).
		Delete(&model.Like{})
	return result.RowsAffected, result.Error
}
