package main

import (
	"context"
	"fmt"
	"log"

	gormsessions "github.com/gin-contrib/sessions/gorm"

	"github.com/clashcrash/board_go_server/config"
	"github.com/clashcrash/board_go_server/internal/api"
	"github.com/clashcrash/board_go_server/internal/api/handler"
	"github.com/clashcrash/board_go_server/internal/database"
	"github.com/clashcrash/board_go_server/internal/pkg/assets"
	"github.com/clashcrash/board_go_server/internal/pkg/cron"
	"github.com/clashcrash/board_go_server/internal/pkg/oss"
	"github.com/clashcrash/board_go_server/internal/pkg/pubsub"
	"github.com/clashcrash/board_go_server/internal/pkg/queue"
	"github.com/clashcrash/board_go_server/internal/pkg/ws"
	"github.com/clashcrash/board_go_server/internal/repository"
	"github.com/clashcrash/board_go_server/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化数据库
	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	log.Println("Database connected")

	// 初始化 Redis
	rdb, err := database.NewRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}
	log.Println("Redis connected")

	// 初始化 OSS（可选）
	var ossClient *oss.Client
	if cfg.OSS.Endpoint != "" && cfg.OSS.AccessKeyID != "" {
		ossClient, err = oss.NewClient(&cfg.OSS)
		if err != nil {
			log.Printf("Warning: Failed to init OSS client: %v", err)
		} else {
			log.Println("OSS client initialized")
		}
	}

	// 会话存储落在同一个数据库
	sessionStore := gormsessions.NewStore(db, true, []byte(cfg.Session.Secret))

	// 初始化 Queue 和 Pub/Sub
	reportQueue := queue.NewQueue(rdb, cfg.Queue.ReportQueue)
	publisher := pubsub.NewPublisher(rdb)
	subscriber := pubsub.NewSubscriber(rdb)

	// 初始化 WebSocket Hub
	wsHub := ws.NewHub()

	// 评论事件经 Redis 广播，本实例只推给自己持有连接的用户
	go func() {
		err := subscriber.Subscribe(context.Background(), func(event *pubsub.CommentEvent) {
			if !wsHub.IsOnline(event.UserID) {
				return
			}
			_ = wsHub.SendToUser(event.UserID, &ws.Notification{
				Type:     event.Type,
				FromNick: event.FromNick,
				CmtID:    event.CmtID,
				BoardID:  event.BoardID,
				Preview:  event.Preview,
			})
		})
		if err != nil && err != context.Canceled {
			log.Printf("Comment event subscriber stopped: %v", err)
		}
	}()

	// 初始化 Repository
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	reportRepo := repository.NewReportRepository(db)
	reasonRepo := repository.NewReasonRepository(db)

	// 初始化 Service
	assetResolver := assets.NewResolver(&cfg.Assets)
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, assetResolver)
	boardService := service.NewBoardService(boardRepo, commentRepo, categoryRepo, reasonRepo)
	commentQueryService := service.NewCommentQueryService(commentRepo, boardRepo, assetResolver)
	commentService := service.NewCommentService(
		commentRepo, boardRepo, userRepo, likeRepo, reportRepo, reasonRepo,
		assetResolver, publisher, reportQueue,
	)
	uploadService := service.NewUploadService(ossClient, assetResolver, &cfg.Upload)

	// 初始化 Handler
	handlers := &api.Handlers{
		Auth:      handler.NewAuthHandler(authService, userService),
		User:      handler.NewUserHandler(userService),
		Comment:   handler.NewCommentHandler(commentQueryService, commentService, userService),
		Board:     handler.NewBoardHandler(boardService),
		Upload:    handler.NewUploadHandler(uploadService),
		WebSocket: handler.NewWebSocketHandler(wsHub, cfg.CORS.AllowedOrigins),
	}

	// 进程内定时任务
	cronService := cron.NewService(likeRepo, cfg.Upload.TempDir, 24)
	cronService.Start()
	defer cronService.Stop()

	engine := api.SetupRouter(cfg, sessionStore, handlers)

	// 启动服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := engine.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
