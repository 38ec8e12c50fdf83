package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/clashcrash/board_go_server/internal/model/dto"
	"github.com/clashcrash/board_go_server/internal/pkg/assets"
	"github.com/clashcrash/board_go_server/internal/repository"
)

type UserService struct {
	userRepo *repository.UserRepository
	assets   *assets.Resolver
}

func NewUserService(userRepo *repository.UserRepository, assets *assets.Resolver) *UserService {
	return &UserService{userRepo: userRepo, assets: assets}
}

// Profile 当前用户资料
func (s *UserService) Profile(userID int64) (*dto.UserProfile, error) {
	user, err := s.userRepo.GetLiveByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &dto.UserProfile{
		ID:         user.ID,
		Nick:       user.Nick,
		ProfileImg: s.assets.ProfileURL(user.ProfileImg),
		IsAdmin:    user.IsAdmin,
		CreatedAt:  user.CreatedAt.Format(time.RFC3339),
	}, nil
}

// IsAdmin 判断用户是否为管理员
func (s *UserService) IsAdmin(userID int64) bool {
	user, err := s.userRepo.GetLiveByID(userID)
	if err != nil {
		return false
	}
	return user.IsAdmin
}

// UpdateProfile 修改昵称/头像
func (s *UserService) UpdateProfile(userID int64, req *dto.UpdateProfileRequest) error {
	user, err := s.userRepo.GetLiveByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if req.Nick != "" && req.Nick != user.Nick {
		if _, err := s.userRepo.GetByNick(req.Nick); err == nil {
			return ErrNickTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		user.Nick = req.Nick
	}
	if req.ProfileImg != "" {
		img := req.ProfileImg
		user.ProfileImg = &img
	}

	return s.userRepo.Update(user)
}
