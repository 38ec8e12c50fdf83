package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/clashcrash/board_go_server/internal/model"
	"github.com/clashcrash/board_go_server/internal/model/dto"
	"github.com/clashcrash/board_go_server/internal/repository"
)

var (
	ErrNickTaken          = errors.New("昵称已被使用")
	ErrInvalidCredentials = errors.New("昵称或密码错误")
)

type AuthService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register 注册新用户
func (s *AuthService) Register(req *dto.RegisterRequest) (*model.UserInfo, error) {
	if _, err := s.userRepo.GetByNick(req.Nick); err == nil {
		return nil, ErrNickTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.UserInfo{
		Nick:         req.Nick,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login 校验凭证，会话由 handler 写入
func (s *AuthService) Login(req *dto.LoginRequest) (*model.UserInfo, error) {
	user, err := s.userRepo.GetByNick(req.Nick)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
