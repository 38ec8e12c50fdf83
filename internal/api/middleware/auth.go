package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/clashcrash/board_go_server/internal/pkg/response"
)

const (
	UserIDKey = "userID"

	// 会话里保存用户 ID 的键
	sessionUserKey = "userId"
)

// Auth 会话认证中间件，未登录直接拒绝
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUserID(c)
		if !ok {
			response.AuthError(c, "")
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// OptionalAuth 可选认证中间件（不强制要求登录）
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := sessionUserID(c); ok {
			c.Set(UserIDKey, userID)
		}
		c.Next()
	}
}

// GetUserID 从上下文获取用户 ID
func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := userID.(int64)
	return id, ok
}

// SetSessionUser 登录成功后把用户 ID 写入会话
func SetSessionUser(c *gin.Context, userID int64) error {
	session := sessions.Default(c)
	session.Set(sessionUserKey, userID)
	return session.Save()
}

// ClearSession 退出登录时清空会话
func ClearSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}

func sessionUserID(c *gin.Context) (int64, bool) {
	session := sessions.Default(c)
	v := session.Get(sessionUserKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok && id > 0
}
