package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clashcrash/board_go_server/internal/api/middleware"
	"github.com/clashcrash/board_go_server/internal/model/dto"
	"github.com/clashcrash/board_go_server/internal/pkg/response"
	"github.com/clashcrash/board_go_server/internal/service"
)

type BoardHandler struct {
	boardService *service.BoardService
}

func NewBoardHandler(boardService *service.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

// List 帖子列表
// GET /api/v1/boards
func (h *BoardHandler) List(c *gin.Context) {
	var q dto.ListBoardsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ParamError(c, err.Error())
		return
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 20
	}

	items, err := h.boardService.List(&q)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, items)
}

// Get 单个帖子
// GET /api/v1/boards/:id
func (h *BoardHandler) Get(c *gin.Context) {
	boardID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的帖子ID")
		return
	}

	item, err := h.boardService.Get(boardID)
	if err != nil {
		switch err {
		case service.ErrBoardNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, item)
}

// Create 发帖
// POST /api/v1/boards
func (h *BoardHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	board, err := h.boardService.Create(userID, &req)
	if err != nil {
		switch err {
		case service.ErrCategoryNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "发帖成功", gin.H{"id": board.ID})
}

// ListCategories 分类列表
// GET /api/v1/categories
func (h *BoardHandler) ListCategories(c *gin.Context) {
	items, err := h.boardService.ListCategories()
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, items)
}

// ListReportReasons 举报事由列表
// GET /api/v1/reasons/report
func (h *BoardHandler) ListReportReasons(c *gin.Context) {
	items, err := h.boardService.ListReportReasons()
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, items)
}
