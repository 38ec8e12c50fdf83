package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/clashcrash/board_go_server/internal/api/middleware"
	"github.com/clashcrash/board_go_server/internal/pkg/response"
	"github.com/clashcrash/board_go_server/internal/service"
)

type UploadHandler struct {
	uploadService *service.UploadService
}

func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadImg 上传配图
// POST /api/v1/upload/img
func (h *UploadHandler) UploadImg(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	fileHeader, err := c.FormFile("img")
	if err != nil {
		response.ParamError(c, "缺少图片文件")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.ServerError(c, "")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	result, err := h.uploadService.UploadImage(userID, fileHeader.Filename, data)
	if err != nil {
		switch err {
		case service.ErrFileTooLarge, service.ErrBadExtension:
			response.ParamError(c, err.Error())
		case service.ErrUploadUnavailable:
			response.ServerError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, result)
}
