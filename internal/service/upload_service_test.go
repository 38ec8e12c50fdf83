package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clashcrash/board_go_server/config"
)

func newUploadService() *UploadService {
	return NewUploadService(nil, newTestResolver(), &config.UploadConfig{
		MaxSize:           1024,
		AllowedExtensions: []string{".png", ".jpg"},
	})
}

func TestUploadImage_Validation(t *testing.T) {
	svc := newUploadService()

	_, err := svc.UploadImage(1, "big.png", make([]byte, 2048))
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = svc.UploadImage(1, "script.exe", []byte("data"))
	assert.ErrorIs(t, err, ErrBadExtension)

	// 大小写不敏感的扩展名
	_, err = svc.UploadImage(1, "photo.PNG", []byte("data"))
	assert.NotErrorIs(t, err, ErrBadExtension)
}

func TestUploadImage_UnavailableWithoutOSS(t *testing.T) {
	svc := newUploadService()

	_, err := svc.UploadImage(1, "photo.png", []byte("data"))
	assert.ErrorIs(t, err, ErrUploadUnavailable)
}
