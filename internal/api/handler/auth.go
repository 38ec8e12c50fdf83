package handler

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/clashcrash/board_go_server/internal/api/middleware"
	"github.com/clashcrash/board_go_server/internal/model/dto"
	"github.com/clashcrash/board_go_server/internal/pkg/response"
	"github.com/clashcrash/board_go_server/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	userService *service.UserService
}

func NewAuthHandler(authService *service.AuthService, userService *service.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

// Register 注册
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		switch err {
		case service.ErrNickTaken:
			response.DuplicateError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	if err := middleware.SetSessionUser(c, user.ID); err != nil {
		log.Printf("Failed to save session for user %d: %v", user.ID, err)
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "注册成功", gin.H{"id": user.ID, "nick": user.Nick})
}

// Login 登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	user, err := h.authService.Login(&req)
	if err != nil {
		switch err {
		case service.ErrInvalidCredentials:
			response.AuthError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	if err := middleware.SetSessionUser(c, user.ID); err != nil {
		log.Printf("Failed to save session for user %d: %v", user.ID, err)
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "登录成功", gin.H{"id": user.ID, "nick": user.Nick})
}

// Logout 退出登录
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := middleware.ClearSession(c); err != nil {
		log.Printf("Failed to clear session: %v", err)
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "已退出登录", nil)
}
