package repository

import (
	"gorm.io/gorm"

	"github.com/clashcrash/board_go_server/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create 创建用户
func (r *UserRepository) Create(user *model.UserInfo) error {
	return r.db.Create(user).Error
}

// GetByID 根据 ID 获取用户
func (r *UserRepository) GetByID(id int64) (*model.UserInfo, error) {
	var user model.UserInfo
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetLiveByID 获取未注销的用户
func (r *UserRepository) GetLiveByID(id int64) (*model.UserInfo, error) {
	var user model.UserInfo
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByNick 根据昵称获取用户
func (r *UserRepository) GetByNick(nick string) (*model.UserInfo, error) {
	var user model.UserInfo
	err := r.db.Where("nick = ? AND deleted_at IS NULL", nick).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update 更新用户资料
func (r *UserRepository) Update(user *model.UserInfo) error {
	return r.db.Save(user).Error
}
