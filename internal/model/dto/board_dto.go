package dto

// CreateBoardRequest 发帖请求
type CreateBoardRequest struct {
	Title      string `json:"title" binding:"required,min=1,max=200"`
	CategoryID int64  `json:"category_id" binding:"required"`
	Content    string `json:"content"`
	Img        string `json:"img,omitempty"`
}

// ListBoardsQuery 帖子列表查询参数
type ListBoardsQuery struct {
	Limit      int    `form:"limit,default=20"`
	CategoryID int64  `form:"categoryId"`
	Search     string `form:"search"`
}

// BoardItem 帖子视图
type BoardItem struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Writer       string `json:"writer"`
	WriterID     int64  `json:"writer_id"`
	Category     string `json:"category"`
	CategoryPath string `json:"category_path"`
	CmtCnt       int64  `json:"cmt_cnt"`
	CreatedAt    string `json:"created_at"`
}

// CategoryItem 分类视图
type CategoryItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// ReasonItem 管理事由视图
type ReasonItem struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
