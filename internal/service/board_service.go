package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/clashcrash/board_go_server/internal/model"
	"github.com/clashcrash/board_go_server/internal/model/dto"
	"github.com/clashcrash/board_go_server/internal/repository"
)

var (
	ErrBoardNotFound    = errors.New("帖子不存在或已删除")
	ErrCategoryNotFound = errors.New("分类不存在")
)

type BoardService struct {
	boardRepo    *repository.BoardRepository
	commentRepo  *repository.CommentRepository
	categoryRepo *repository.CategoryRepository
	reasonRepo   *repository.ReasonRepository
}

func NewBoardService(
	boardRepo *repository.BoardRepository,
	commentRepo *repository.CommentRepository,
	categoryRepo *repository.CategoryRepository,
	reasonRepo *repository.ReasonRepository,
) *BoardService {
	return &BoardService{
		boardRepo:    boardRepo,
		commentRepo:  commentRepo,
		categoryRepo: categoryRepo,
		reasonRepo:   reasonRepo,
	}
}

// Create 发帖
func (s *BoardService) Create(userID int64, req *dto.CreateBoardRequest) (*model.Board, error) {
	if _, err := s.categoryRepo.GetByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	board := &model.Board{
		Title:      req.Title,
		WriterID:   userID,
		CategoryID: req.CategoryID,
		Content:    req.Content,
	}
	if err := s.boardRepo.Create(board); err != nil {
		return nil, err
	}

	return board, nil
}

// List 帖子列表（含存活评论数）
func (s *BoardService) List(q *dto.ListBoardsQuery) ([]*dto.BoardItem, error) {
	boards, err := s.boardRepo.ListLive(q.CategoryID, q.Search, q.Limit)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.BoardItem, 0, len(boards))
	for _, b := range boards {
		item, err := s.buildItem(b)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Get 单个帖子
func (s *BoardService) Get(id int64) (*dto.BoardItem, error) {
	board, err := s.boardRepo.GetWithCategoryByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}
	if board.Deleted() {
		return nil, ErrBoardNotFound
	}

	return s.buildItem(board)
}

// ListCategories 可选的帖子分类
func (s *BoardService) ListCategories() ([]*dto.CategoryItem, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CategoryItem, 0, len(categories))
	for _, c := range categories {
		items = append(items, &dto.CategoryItem{ID: c.ID, Name: c.Name, Path: c.Path})
	}
	return items, nil
}

// ListReportReasons 评论举报可选事由
func (s *BoardService) ListReportReasons() ([]*dto.ReasonItem, error) {
	reasons, err := s.reasonRepo.ListActiveByType(model.ReasonTypeCmtReport)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ReasonItem, 0, len(reasons))
	for _, r := range reasons {
		items = append(items, &dto.ReasonItem{ID: r.ID, Title: r.Title})
	}
	return items, nil
}

func (s *BoardService) buildItem(b *model.Board) (*dto.BoardItem, error) {
	cmtCnt, err := s.commentRepo.CountLiveByBoardID(b.ID)
	if err != nil {
		return nil, err
	}

	item := &dto.BoardItem{
		ID:        b.ID,
		Title:     b.Title,
		WriterID:  b.WriterID,
		CmtCnt:    cmtCnt,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
	if b.Writer != nil {
		item.Writer = b.Writer.Nick
	}
	if b.Category != nil {
		item.Category = b.Category.Name
		item.CategoryPath = b.Category.Path
	}
	return item, nil
}
