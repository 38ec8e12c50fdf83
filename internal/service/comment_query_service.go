package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/clashcrash/board_go_server/internal/model"
	"github.com/clashcrash/board_go_server/internal/model/dto"
	"github.com/clashcrash/board_go_server/internal/pkg/assets"
	"github.com/clashcrash/board_go_server/internal/pkg/cmtfmt"
	"github.com/clashcrash/board_go_server/internal/repository"
)

// 墓碑评论的展示文案
const (
	tombstoneMarker     = "(*已删除的评论)"
	deletedByUserText   = "该评论已被用户删除"
	deletedByReasonText = "该评论因'%s'被删除"
)

// 排序方式
const (
	SortOld      = "old"
	SortRecently = "recently"
	SortLike     = "like"
)

// 搜索方式
const (
	SearchContent       = "content"
	SearchWriter        = "writer"
	SearchContentWriter = "contentWriter"
)

// ListFilter 评论列表查询入参
type ListFilter struct {
	Limit       int
	UserID      int64 // 0 表示未登录，个性化标记全为 false
	BoardID     int64
	WriterID    int64
	Search      string
	SearchType  string
	Sort        string
	IsOwn       bool
	IsFlat      bool
	OnlyDeleted bool
	IsDeleted   bool // 管理视图：已删除评论不墓碑化，原样输出
}

type CommentQueryService struct {
	commentRepo *repository.CommentRepository
	boardRepo   *repository.BoardRepository
	assets      *assets.Resolver
}

func NewCommentQueryService(
	commentRepo *repository.CommentRepository,
	boardRepo *repository.BoardRepository,
	assets *assets.Resolver,
) *CommentQueryService {
	return &CommentQueryService{
		commentRepo: commentRepo,
		boardRepo:   boardRepo,
		assets:      assets,
	}
}

// List 查询评论列表。
//
// 排序的限制方式是不对称的：old/recently 把 LIMIT 下推到 SQL，
// like 排序需要按点赞数聚合，因此取回全部匹配行后在内存里排序截断。
// 评论量可控时可以接受，这里保持该行为。
func (s *CommentQueryService) List(f *ListFilter) (*dto.CommentListData, error) {
	filter := s.buildFilter(f)

	var (
		candidates []*model.Comment
		err        error
	)
	switch f.Sort {
	case SortOld:
		candidates, err = s.commentRepo.List(filter, "cmts.created_at ASC", f.Limit)
	case SortRecently:
		candidates, err = s.commentRepo.List(filter, "cmts.created_at DESC", f.Limit)
	default: // like 及其它值
		candidates, err = s.commentRepo.List(filter, "cmts.created_at ASC", 0)
		if err == nil {
			sort.SliceStable(candidates, func(i, j int) bool {
				return likeCount(candidates[i]) > likeCount(candidates[j])
			})
			if f.Limit > 0 && len(candidates) > f.Limit {
				candidates = candidates[:f.Limit]
			}
		}
	}
	if err != nil {
		return nil, err
	}

	total, err := s.commentRepo.Count(filter)
	if err != nil {
		return nil, err
	}

	items, err := s.assemble(candidates, f)
	if err != nil {
		return nil, err
	}

	return &dto.CommentListData{CmtList: items, CmtCnt: total}, nil
}

func (s *CommentQueryService) buildFilter(f *ListFilter) *repository.CommentFilter {
	filter := &repository.CommentFilter{}

	if f.IsFlat {
		filter.LiveOnly = true
	} else {
		filter.TopLevelOnly = true
	}
	if f.OnlyDeleted {
		// 管理视图覆盖平铺模式的存活限定
		filter.LiveOnly = false
		filter.OnlyDeleted = true
	}

	if f.Search != "" {
		switch f.SearchType {
		case SearchContent:
			filter.ContentLike = f.Search
		case SearchWriter:
			filter.WriterNickLike = f.Search
		case SearchContentWriter:
			filter.ContentLike = f.Search
			filter.WriterNickLike = f.Search
		}
	}

	if f.IsOwn && f.UserID != 0 {
		filter.WriterID = f.UserID
	}
	if f.WriterID != 0 {
		filter.WriterID = f.WriterID
	}
	filter.BoardID = f.BoardID

	return filter
}

// assemble 把候选行装配成视图树。
// 回复不逐节点查询：回复与根帖子共享 board_id，按候选涉及的帖子一次捞取
// 全部回复，建邻接表后深度优先装配。
func (s *CommentQueryService) assemble(candidates []*model.Comment, f *ListFilter) ([]*dto.CommentItem, error) {
	if len(candidates) == 0 {
		return []*dto.CommentItem{}, nil
	}

	boardIDs := make([]int64, 0, len(candidates))
	seen := make(map[int64]struct{})
	for _, c := range candidates {
		if _, ok := seen[c.BoardID]; !ok {
			seen[c.BoardID] = struct{}{}
			boardIDs = append(boardIDs, c.BoardID)
		}
	}

	boards, err := s.boardRepo.GetWithCategoryByIDs(boardIDs)
	if err != nil {
		return nil, err
	}

	boardCmtCnt := make(map[int64]int64, len(boardIDs))
	for _, id := range boardIDs {
		cnt, err := s.commentRepo.CountLiveByBoardID(id)
		if err != nil {
			return nil, err
		}
		boardCmtCnt[id] = cnt
	}

	// 父节点索引：候选 + 全部回复，回复对象（replyUser）从这里解析
	parents := make(map[int64]*model.Comment, len(candidates))
	for _, c := range candidates {
		parents[c.ID] = c
	}

	children := make(map[int64][]*model.Comment)
	if !f.IsFlat {
		replies, err := s.commentRepo.ListRepliesByBoardIDs(boardIDs)
		if err != nil {
			return nil, err
		}
		for _, reply := range replies {
			parents[reply.ID] = reply
			children[*reply.ReplyID] = append(children[*reply.ReplyID], reply)
		}
	} else {
		// 平铺模式不挂子树，但仍要解析每条回复指向的对象
		var replyIDs []int64
		for _, c := range candidates {
			if c.ReplyID != nil {
				if _, ok := parents[*c.ReplyID]; !ok {
					replyIDs = append(replyIDs, *c.ReplyID)
				}
			}
		}
		targets, err := s.commentRepo.GetWithWriterByIDs(replyIDs)
		if err != nil {
			return nil, err
		}
		for _, t := range targets {
			parents[t.ID] = t
		}
	}

	ctx := &assembleContext{
		filter:      f,
		boards:      boards,
		boardCmtCnt: boardCmtCnt,
		parents:     parents,
		children:    children,
	}

	items := make([]*dto.CommentItem, 0, len(candidates))
	for _, c := range candidates {
		if item := s.buildItem(c, ctx); item != nil {
			items = append(items, item)
		}
	}
	return items, nil
}

type assembleContext struct {
	filter      *ListFilter
	boards      map[int64]*model.Board
	boardCmtCnt map[int64]int64
	parents     map[int64]*model.Comment
	children    map[int64][]*model.Comment
}

// buildItem 深度优先装配一个视图节点。
// 已删除评论默认整体丢弃，但仍有存活回复时保留为墓碑节点，
// 正文替换为脱敏文案，以维持回复链的连续性。
func (s *CommentQueryService) buildItem(c *model.Comment, ctx *assembleContext) *dto.CommentItem {
	var childItems []*dto.CommentItem
	if !ctx.filter.IsFlat {
		for _, child := range ctx.children[c.ID] {
			if item := s.buildItem(child, ctx); item != nil {
				childItems = append(childItems, item)
			}
		}
	}

	if !ctx.filter.IsDeleted && c.Deleted() && len(childItems) == 0 {
		return nil
	}

	var like, dislike int
	var isDoLike, isDoDislike bool
	for _, l := range c.Likes {
		if l.IsLike {
			like++
		}
		if l.IsDislike {
			dislike++
		}
		if ctx.filter.UserID != 0 && l.UserID == ctx.filter.UserID {
			isDoLike = l.IsLike
			isDoDislike = l.IsDislike
		}
	}

	isDidReport := false
	if ctx.filter.UserID != 0 {
		for _, rep := range c.Reports {
			if rep.ReporterID == ctx.filter.UserID {
				isDidReport = true
				break
			}
		}
	}

	item := &dto.CommentItem{
		ID:          c.ID,
		WriterID:    c.WriterID,
		Like:        like,
		Dislike:     dislike,
		IsDoLike:    isDoLike,
		IsDoDislike: isDoDislike,
		IsDidReport: isDidReport,
		IsDeleted:   c.Deleted(),
		BoardID:     c.BoardID,
		ReplyID:     c.ReplyID,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		ContainCmt:  childItems,
	}
	if item.ContainCmt == nil {
		item.ContainCmt = []*dto.CommentItem{}
	}

	if c.Writer != nil {
		item.Writer = c.Writer.Nick
		item.WriterProfile = s.assets.ProfileURL(c.Writer.ProfileImg)
	}

	if board, ok := ctx.boards[c.BoardID]; ok {
		item.BoardTitle = board.Title
		if board.Category != nil {
			item.Category = board.Category.Name
			item.CategoryPath = board.Category.Path
		}
	}
	item.BoardCmtCnt = ctx.boardCmtCnt[c.BoardID]

	if c.ReplyID != nil {
		if parent, ok := ctx.parents[*c.ReplyID]; ok && parent.Writer != nil {
			item.ReplyUser = parent.Writer.Nick
			item.ReplyUserID = &parent.Writer.ID
		}
	}

	switch {
	case ctx.filter.IsDeleted:
		item.Content = c.Content
	case c.Deleted():
		text := deletedByUserText
		if c.DeleteReason != nil {
			text = fmt.Sprintf(deletedByReasonText, c.DeleteReason.Title)
		}
		item.Content = cmtfmt.Make(text, tombstoneMarker, "")
	default:
		item.Content = c.Content
	}

	return item
}

func likeCount(c *model.Comment) int {
	n := 0
	for _, l := range c.Likes {
		if l.IsLike {
			n++
		}
	}
	return n
}
