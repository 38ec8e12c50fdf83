package repository

import (
	"gorm.io/gorm"

	"github.com/clashcrash/board_go_server/internal/model"
)

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

// Create 创建帖子
func (r *BoardRepository) Create(board *model.Board) error {
	return r.db.Create(board).Error
}

// GetLiveByID 获取未删除的帖子
func (r *BoardRepository) GetLiveByID(id int64) (*model.Board, error) {
	var board model.Board
	err := r.db.
		Where("id = ? AND deleted_at IS NULL AND delete_reason_id IS NULL", id).
		First(&board).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// GetWithCategoryByID 获取帖子及分类
func (r *BoardRepository) GetWithCategoryByID(id int64) (*model.Board, error) {
	var board model.Board
	err := r.db.Preload("Category").Where("id = ?", id).First(&board).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// GetWithCategoryByIDs 批量获取帖子及分类，按 ID 建索引返回
func (r *BoardRepository) GetWithCategoryByIDs(ids []int64) (map[int64]*model.Board, error) {
	if len(ids) == 0 {
		return map[int64]*model.Board{}, nil
	}

	var boards []*model.Board
	err := r.db.Preload("Category").Where("id IN ?", ids).Find(&boards).Error
	if err != nil {
		return nil, err
	}

	result := make(map[int64]*model.Board, len(boards))
	for _, b := range boards {
		result[b.ID] = b
	}
	return result, nil
}

// ListLive 帖子列表（仅存活），最新在前
func (r *BoardRepository) ListLive(categoryID int64, search string, limit int) ([]*model.Board, error) {
	query := r.db.
		Preload("Writer").
		Preload("Category").
		Where("deleted_at IS NULL AND delete_reason_id IS NULL")

	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	if search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var boards []*model.Board
	err := query.Order("created_at DESC").Find(&boards).Error
	return boards, err
}
