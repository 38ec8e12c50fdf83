package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clashcrash/board_go_server/internal/api/middleware"
	"github.com/clashcrash/board_go_server/internal/model/dto"
	"github.com/clashcrash/board_go_server/internal/pkg/response"
	"github.com/clashcrash/board_go_server/internal/service"
)

type CommentHandler struct {
	queryService   *service.CommentQueryService
	commentService *service.CommentService
	userService    *service.UserService
}

func NewCommentHandler(
	queryService *service.CommentQueryService,
	commentService *service.CommentService,
	userService *service.UserService,
) *CommentHandler {
	return &CommentHandler{
		queryService:   queryService,
		commentService: commentService,
		userService:    userService,
	}
}

// List 获取评论列表
// GET /api/v1/cmts
func (h *CommentHandler) List(c *gin.Context) {
	var q dto.ListCommentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 20
	}

	userID, _ := middleware.GetUserID(c)

	// 已删除内容的视图仅限管理员
	if q.OnlyDeleted || q.IsDeleted {
		if userID == 0 || !h.userService.IsAdmin(userID) {
			response.PermissionError(c, "")
			return
		}
	}

	data, err := h.queryService.List(&service.ListFilter{
		Limit:       q.Limit,
		UserID:      userID,
		BoardID:     q.BoardID,
		WriterID:    q.WriterID,
		Search:      q.Search,
		SearchType:  q.SearchType,
		Sort:        q.Sort,
		IsOwn:       q.IsOwn,
		IsFlat:      q.IsFlat,
		OnlyDeleted: q.OnlyDeleted,
		IsDeleted:   q.IsDeleted,
	})
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, data)
}

// Create 发表评论
// POST /api/v1/cmts
func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	comment, err := h.commentService.Add(userID, &req)
	if err != nil {
		switch err {
		case service.ErrTargetNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrEmptyContent:
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "评论成功", gin.H{"id": comment.ID})
}

// Update 编辑评论
// PUT /api/v1/cmts/:id
func (h *CommentHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	cmtID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的评论ID")
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	if err := h.commentService.Update(userID, cmtID, &req); err != nil {
		switch err {
		case service.ErrCommentNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrEmptyContent, service.ErrContentUnparsable:
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "修改成功", nil)
}

// Delete 删除评论
// DELETE /api/v1/cmts/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	cmtID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的评论ID")
		return
	}

	if err := h.commentService.Delete(userID, cmtID); err != nil {
		switch err {
		case service.ErrCommentNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "删除成功", nil)
}

// Like 点赞/点踩
// POST /api/v1/cmts/:id/like
func (h *CommentHandler) Like(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	cmtID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的评论ID")
		return
	}

	var req dto.LikeCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	if err := h.commentService.Like(userID, cmtID, req.IsDislike); err != nil {
		switch err {
		case service.ErrCommentNotFound, service.ErrUserNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, nil)
}

// Report 举报评论
// POST /api/v1/cmts/:id/report
func (h *CommentHandler) Report(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	cmtID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的评论ID")
		return
	}

	var req dto.ReportCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	if err := h.commentService.Report(userID, cmtID, req.ReasonID); err != nil {
		switch err {
		case service.ErrCommentNotFound, service.ErrUserNotFound, service.ErrReasonNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrAlreadyReported:
			response.DuplicateError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "举报成功", nil)
}
