package cron

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/clashcrash/board_go_server/internal/repository"
)

// 软删除点赞记录的保留期
const likeRetention = 30 * 24 * time.Hour

// Service 进程内定时任务：临时上传目录清理 + 过期软删除记录清除
type Service struct {
	likeRepo    *repository.LikeRepository
	tempDir     string
	expireHours int
	stopChan    chan struct{}
}

func NewService(likeRepo *repository.LikeRepository, tempDir string, expireHours int) *Service {
	return &Service{
		likeRepo:    likeRepo,
		tempDir:     tempDir,
		expireHours: expireHours,
		stopChan:    make(chan struct{}),
	}
}

// Start 启动定时任务
func (s *Service) Start() {
	go s.runTempCleanup()
	go s.runLikePurge()
	log.Println("Cron service started (temp cleanup + like purge)")
}

// Stop 停止定时任务
func (s *Service) Stop() {
	close(s.stopChan)
	log.Println("Cron service stopped")
}

// runTempCleanup 每小时清理过期的临时上传文件
func (s *Service) runTempCleanup() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanTempDir()
		}
	}
}

// runLikePurge 每日清除过了保留期的软删除点赞记录
func (s *Service) runLikePurge() {
	now := time.Now().UTC()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	timer := time.NewTimer(nextMidnight.Sub(now))

	for {
		select {
		case <-s.stopChan:
			timer.Stop()
			return
		case <-timer.C:
			count, err := s.likeRepo.PurgeDeletedBefore(time.Now().Add(-likeRetention))
			if err != nil {
				log.Printf("Like purge failed: %v", err)
			} else if count > 0 {
				log.Printf("Purged %d stale like rows", count)
			}
			timer.Reset(24 * time.Hour)
		}
	}
}

func (s *Service) cleanTempDir() {
	if s.tempDir == "" {
		return
	}

	expireTime := time.Now().Add(-time.Duration(s.expireHours) * time.Hour)
	entries, err := os.ReadDir(s.tempDir)
	if err != nil {
		log.Printf("Failed to read temp dir: %v", err)
		return
	}

	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(expireTime) {
			path := filepath.Join(s.tempDir, entry.Name())
			if err := os.RemoveAll(path); err != nil {
				log.Printf("Failed to remove %s: %v", path, err)
			}
		}
	}
}
