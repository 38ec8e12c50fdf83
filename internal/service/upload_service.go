package service

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/clashcrash/board_go_server/config"
	"github.com/clashcrash/board_go_server/internal/model/dto"
	"github.com/clashcrash/board_go_server/internal/pkg/assets"
	"github.com/clashcrash/board_go_server/internal/pkg/oss"
)

var (
	ErrFileTooLarge      = errors.New("文件超过大小限制")
	ErrBadExtension      = errors.New("不支持的文件类型")
	ErrUploadUnavailable = errors.New("图片上传暂不可用")
)

type UploadService struct {
	ossClient *oss.Client // 可为 nil（未配置 OSS）
	assets    *assets.Resolver
	cfg       *config.UploadConfig
}

func NewUploadService(ossClient *oss.Client, assets *assets.Resolver, cfg *config.UploadConfig) *UploadService {
	return &UploadService{
		ossClient: ossClient,
		assets:    assets,
		cfg:       cfg,
	}
}

// UploadImage 上传帖子/评论配图，返回存储名和预览 URL
func (s *UploadService) UploadImage(userID int64, filename string, data []byte) (*dto.UploadImgData, error) {
	if s.cfg.MaxSize > 0 && int64(len(data)) > s.cfg.MaxSize {
		return nil, ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !s.allowed(ext) {
		return nil, ErrBadExtension
	}

	if s.ossClient == nil {
		return nil, ErrUploadUnavailable
	}

	name, err := s.ossClient.UploadImage(userID, data, ext)
	if err != nil {
		return nil, err
	}

	return &dto.UploadImgData{
		Name: name,
		URL:  s.assets.URL(name),
	}, nil
}

func (s *UploadService) allowed(ext string) bool {
	for _, allowed := range s.cfg.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
