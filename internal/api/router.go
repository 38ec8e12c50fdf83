package api

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/clashcrash/board_go_server/config"
	"github.com/clashcrash/board_go_server/internal/api/handler"
	"github.com/clashcrash/board_go_server/internal/api/middleware"
)

// Handlers 路由所需的全部 handler
type Handlers struct {
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Comment   *handler.CommentHandler
	Board     *handler.BoardHandler
	Upload    *handler.UploadHandler
	WebSocket *handler.WebSocketHandler
}

// SetupRouter 注册全部路由
func SetupRouter(cfg *config.Config, store sessions.Store, h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(sessions.Sessions(cfg.Session.CookieName, store))

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
		}

		user := v1.Group("/user", middleware.Auth())
		{
			user.GET("/profile", h.User.GetProfile)
			user.PUT("/profile", h.User.UpdateProfile)
		}

		cmts := v1.Group("/cmts")
		{
			cmts.GET("", middleware.OptionalAuth(), h.Comment.List)
			cmts.POST("", middleware.Auth(), h.Comment.Create)
			cmts.PUT("/:id", middleware.Auth(), h.Comment.Update)
			cmts.DELETE("/:id", middleware.Auth(), h.Comment.Delete)
			cmts.POST("/:id/like", middleware.Auth(), h.Comment.Like)
			cmts.POST("/:id/report", middleware.Auth(), h.Comment.Report)
		}

		boards := v1.Group("/boards")
		{
			boards.GET("", h.Board.List)
			boards.GET("/:id", h.Board.Get)
			boards.POST("", middleware.Auth(), h.Board.Create)
		}

		v1.GET("/categories", h.Board.ListCategories)
		v1.GET("/reasons/report", h.Board.ListReportReasons)

		v1.POST("/upload/img", middleware.Auth(), h.Upload.UploadImg)

		v1.GET("/ws", middleware.Auth(), h.WebSocket.Connect)
	}

	return r
}
