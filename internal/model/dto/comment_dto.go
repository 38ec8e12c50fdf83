package dto

// ListCommentsQuery 评论列表查询参数
type ListCommentsQuery struct {
	Limit       int    `form:"limit,default=20"`
	BoardID     int64  `form:"boardId"`
	WriterID    int64  `form:"writerId"`
	Search      string `form:"search"`
	SearchType  string `form:"searchType"` // content / writer / contentWriter
	Sort        string `form:"sort"`       // old / recently / like(默认)
	IsOwn       bool   `form:"isOwn"`
	IsFlat      bool   `form:"isFlat"`
	OnlyDeleted bool   `form:"onlyDeleted"`
	IsDeleted   bool   `form:"isDeleted"` // 管理视图：不做墓碑化，原样输出已删除内容
}

// CreateCommentRequest 发表评论。BoardID 与 ReplyID 二选一，
// 回复时新评论挂在 ReplyID 所属帖子下。
type CreateCommentRequest struct {
	BoardID *int64 `json:"board_id,omitempty"`
	ReplyID *int64 `json:"reply_id,omitempty"`
	Content string `json:"content"`
	Img     string `json:"img,omitempty"`
}

// UpdateCommentRequest 编辑评论
type UpdateCommentRequest struct {
	Content     string `json:"content"`
	ReImg       string `json:"re_img,omitempty"`
	IsDeleteImg bool   `json:"is_delete_img"`
}

// LikeCommentRequest 点赞/点踩（二者独立开关）
type LikeCommentRequest struct {
	IsDislike bool `json:"is_dislike"`
}

// ReportCommentRequest 举报评论
type ReportCommentRequest struct {
	ReasonID int64 `json:"reason_id" binding:"required"`
}

// CommentItem 评论视图节点
type CommentItem struct {
	ID            int64          `json:"id"`
	Writer        string         `json:"writer"`
	WriterID      int64          `json:"writer_id"`
	WriterProfile string         `json:"writer_profile"`
	Content       string         `json:"content"`
	Like          int            `json:"like"`
	Dislike       int            `json:"dislike"`
	IsDoLike      bool           `json:"is_do_like"`
	IsDoDislike   bool           `json:"is_do_dislike"`
	IsDidReport   bool           `json:"is_did_report"`
	IsDeleted     bool           `json:"is_deleted"`
	BoardID       int64          `json:"board_id"`
	BoardTitle    string         `json:"board_title"`
	Category      string         `json:"category"`
	CategoryPath  string         `json:"category_path"`
	BoardCmtCnt   int64          `json:"board_cmt_cnt"`
	ReplyID       *int64         `json:"reply_id,omitempty"`
	ReplyUserID   *int64         `json:"reply_user_id,omitempty"`
	ReplyUser     string         `json:"reply_user,omitempty"`
	CreatedAt     string         `json:"created_at"`
	ContainCmt    []*CommentItem `json:"contain_cmt"`
}

// CommentListData 评论列表响应：列表 + 截断前的匹配总数
type CommentListData struct {
	CmtList []*CommentItem `json:"cmt_list"`
	CmtCnt  int64          `json:"cmt_cnt"`
}
