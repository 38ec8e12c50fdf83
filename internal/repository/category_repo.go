package repository

import (
	"gorm.io/gorm"

	"github.com/clashcrash/board_go_server/internal/model"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetByID 根据 ID 获取分类
func (r *CategoryRepository) GetByID(id int64) (*model.Category, error) {
	var category model.Category
	err := r.db.Where("id = ?", id).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// List 全部分类
func (r *CategoryRepository) List() ([]*model.Category, error) {
	var categories []*model.Category
	err := r.db.Order("id ASC").Find(&categories).Error
	return categories, err
}
