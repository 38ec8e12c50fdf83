package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/clashcrash/board_go_server/config"
	"github.com/clashcrash/board_go_server/internal/database"
	"github.com/clashcrash/board_go_server/internal/model"
)

var (
	dryRun       = flag.Bool("dry-run", true, "Dry run mode, don't actually delete anything")
	uploadExpire = flag.Int("upload-expire", 24, "Hours to keep temp upload files")
	likeRetain   = flag.Int("like-retain", 30, "Days to keep soft-deleted like rows")
	cleanUploads = flag.Bool("clean-uploads", true, "Clean expired temp upload files")
	cleanLikes   = flag.Bool("clean-likes", true, "Purge aged soft-deleted like rows")
)

func main() {
	flag.Parse()

	log.Println("🧹 Starting cleanup task...")
	log.Printf("Mode: dry-run=%v", *dryRun)

	// 加载配置
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	deletedFiles := 0
	deletedSize := int64(0)
	purgedLikes := int64(0)

	// 1. 清理过期的临时上传文件
	if *cleanUploads {
		log.Printf("\n📦 Cleaning temp upload files (older than %d hours)...", *uploadExpire)
		size, count := cleanExpiredUploads(cfg.Upload.TempDir, *uploadExpire, *dryRun)
		deletedSize += size
		deletedFiles += count
	}

	// 2. 清除过了保留期的软删除点赞记录
	if *cleanLikes {
		log.Printf("\n👍 Purging soft-deleted like rows (older than %d days)...", *likeRetain)
		purgedLikes = purgeStaleLikes(cfg, *likeRetain, *dryRun)
	}

	// 输出统计
	log.Println("\n" + strings.Repeat("=", 60))
	log.Println("📊 Cleanup Summary")
	log.Println(strings.Repeat("=", 60))
	log.Printf("Deleted files: %d", deletedFiles)
	log.Printf("Freed space: %s", formatSize(deletedSize))
	log.Printf("Purged like rows: %d", purgedLikes)
	if *dryRun {
		log.Println("\n⚠️  DRY RUN MODE - Nothing was actually deleted")
		log.Println("   Run with -dry-run=false to actually delete")
	} else {
		log.Println("\n✅ Cleanup completed!")
	}
	log.Println(strings.Repeat("=", 60))
}

// cleanExpiredUploads 清理过期的临时上传文件
func cleanExpiredUploads(uploadDir string, expireHours int, dryRun bool) (int64, int) {
	if uploadDir == "" {
		log.Println("Temp dir not configured, skipping")
		return 0, 0
	}

	expireTime := time.Now().Add(-time.Duration(expireHours) * time.Hour)
	var totalSize int64
	var count int

	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		log.Printf("Failed to read upload dir: %v", err)
		return 0, 0
	}

	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(expireTime) {
			path := filepath.Join(uploadDir, entry.Name())
			size := info.Size()
			if entry.IsDir() {
				size = getDirSize(path)
			}
			totalSize += size

			log.Printf("  - %s (%s, %s old)",
				entry.Name(),
				formatSize(size),
				time.Since(info.ModTime()).Round(time.Hour))

			if !dryRun {
				if err := os.RemoveAll(path); err != nil {
					log.Printf("    ❌ Failed to delete: %v", err)
					continue
				}
			}
			count++
		}
	}

	log.Printf("Found %d expired entries (total: %s)", count, formatSize(totalSize))

	return totalSize, count
}

// purgeStaleLikes 清除过了保留期的软删除点赞记录
func purgeStaleLikes(cfg *config.Config, retainDays int, dryRun bool) int64 {
	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		log.Printf("Failed to connect database: %v", err)
		return 0
	}

	before := time.Now().AddDate(0, 0, -retainDays)

	if dryRun {
		var count int64
		err := db.Model(&model.Like{}).
			Where("deleted_at IS NOT NULL AND deleted_at < ?", before).
			Count(&count).Error
		if err != nil {
			log.Printf("Failed to count stale like rows: %v", err)
			return 0
		}
		log.Printf("Would purge %d like rows", count)
		return count
	}

	result := db.
		Where("deleted_at IS NOT NULL AND deleted_at < ?", before).
		Delete(&model.Like{})
	if result.Error != nil {
		log.Printf("Failed to purge stale like rows: %v", result.Error)
		return 0
	}
	log.Printf("Purged %d like rows", result.RowsAffected)

	return result.RowsAffected
}

func getDirSize(dir string) int64 {
	var size int64
	filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	return size
}

func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(size)/float64(div), "KMGT"[exp])
}
