package service

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/clashcrash/board_go_server/internal/model"
	"github.com/clashcrash/board_go_server/internal/model/dto"
	"github.com/clashcrash/board_go_server/internal/pkg/assets"
	"github.com/clashcrash/board_go_server/internal/pkg/cmtfmt"
	"github.com/clashcrash/board_go_server/internal/pkg/pubsub"
	"github.com/clashcrash/board_go_server/internal/pkg/queue"
	"github.com/clashcrash/board_go_server/internal/repository"
)

var (
	ErrCommentNotFound   = errors.New("评论不存在或已删除")
	ErrTargetNotFound    = errors.New("评论对象不存在")
	ErrEmptyContent      = errors.New("内容和图片不能同时为空")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrReasonNotFound    = errors.New("举报事由不存在")
	ErrAlreadyReported   = errors.New("已举报过该评论")
	ErrContentUnparsable = errors.New("评论内容格式异常")
)

const previewLen = 30

type CommentService struct {
	commentRepo *repository.CommentRepository
	boardRepo   *repository.BoardRepository
	userRepo    *repository.UserRepository
	likeRepo    *repository.LikeRepository
	reportRepo  *repository.ReportRepository
	reasonRepo  *repository.ReasonRepository
	assets      *assets.Resolver
	publisher   *pubsub.Publisher // 可为 nil（测试、worker 场景）
	reportQueue *queue.Queue      // 可为 nil
}

func NewCommentService(
	commentRepo *repository.CommentRepository,
	boardRepo *repository.BoardRepository,
	userRepo *repository.UserRepository,
	likeRepo *repository.LikeRepository,
	reportRepo *repository.ReportRepository,
	reasonRepo *repository.ReasonRepository,
	assets *assets.Resolver,
	publisher *pubsub.Publisher,
	reportQueue *queue.Queue,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		boardRepo:   boardRepo,
		userRepo:    userRepo,
		likeRepo:    likeRepo,
		reportRepo:  reportRepo,
		reasonRepo:  reasonRepo,
		assets:      assets,
		publisher:   publisher,
		reportQueue: reportQueue,
	}
}

// Add 发表评论。BoardID/ReplyID 必须能解析出一个存活目标；
// 回复时新评论继承父评论的 board_id，整条回复链共享根帖子。
func (s *CommentService) Add(userID int64, req *dto.CreateCommentRequest) (*model.Comment, error) {
	var board *model.Board
	if req.BoardID != nil {
		b, err := s.boardRepo.GetLiveByID(*req.BoardID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		board = b
	}
	var parent *model.Comment
	if req.ReplyID != nil {
		p, err := s.commentRepo.GetLiveByID(*req.ReplyID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		parent = p
	}
	if board == nil && parent == nil {
		return nil, ErrTargetNotFound
	}

	if req.Content == "" && req.Img == "" {
		return nil, ErrEmptyContent
	}

	var content string
	if req.Img != "" {
		content = cmtfmt.Make(req.Content, "", s.assets.URL(req.Img))
	} else {
		content = cmtfmt.Make(req.Content, "", "")
	}

	comment := &model.Comment{
		WriterID: userID,
		Content:  content,
	}
	if parent != nil {
		comment.BoardID = parent.BoardID
		comment.ReplyID = req.ReplyID
	} else {
		comment.BoardID = board.ID
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	if parent != nil && parent.WriterID != userID {
		s.notifyReply(userID, parent, comment)
	}

	return comment, nil
}

// Update 编辑评论。先解包已存内容以便仅改文字时保留图片；
// isDeleteImg 时放弃原图，重新打包纯文字内容。
func (s *CommentService) Update(userID, cmtID int64, req *dto.UpdateCommentRequest) error {
	if req.Content == "" && req.ReImg == "" {
		return ErrEmptyContent
	}

	target, err := s.commentRepo.GetOwnedLive(userID, cmtID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if _, ok := cmtfmt.Parse(target.Content); !ok {
		return ErrContentUnparsable
	}

	var content string
	ok := true
	switch {
	case req.ReImg != "":
		content, ok = cmtfmt.Remake(target.Content, cmtfmt.MarkerEdited, req.Content, s.assets.URL(req.ReImg))
	case req.IsDeleteImg:
		content = cmtfmt.Make(req.Content, cmtfmt.MarkerEdited, "")
	default:
		content, ok = cmtfmt.Remake(target.Content, cmtfmt.MarkerEdited, req.Content, "")
	}
	if !ok {
		return ErrContentUnparsable
	}

	return s.commentRepo.UpdateContent(target.ID, content)
}

// Delete 软删除本人评论：加删除标记、落删除时间，原文和图片留在存储里
func (s *CommentService) Delete(userID, cmtID int64) error {
	target, err := s.commentRepo.GetOwnedLive(userID, cmtID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	content, ok := cmtfmt.Remake(target.Content, cmtfmt.MarkerDeleted, "", "")
	if !ok {
		return ErrContentUnparsable
	}

	return s.commentRepo.SoftDelete(target.ID, content)
}

// Like 点赞/点踩开关。首次互动惰性建零状态记录，
// isDislike 只翻转对应开关，另一个开关不受影响。
func (s *CommentService) Like(userID, cmtID int64, isDislike bool) error {
	if _, err := s.commentRepo.GetLiveByID(cmtID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if _, err := s.userRepo.GetLiveByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	like, err := s.likeRepo.Get(userID, cmtID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		like = &model.Like{UserID: userID, CmtID: cmtID}
		if err := s.likeRepo.Create(like); err != nil {
			return err
		}
	}

	if isDislike {
		like.IsDislike = !like.IsDislike
	} else {
		like.IsLike = !like.IsLike
	}

	return s.likeRepo.Update(like)
}

// Report 举报评论。同一人对同一评论重复举报直接拒绝。
func (s *CommentService) Report(userID, cmtID, reasonID int64) error {
	comment, err := s.commentRepo.GetLiveByID(cmtID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if _, err := s.userRepo.GetLiveByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if _, err := s.reasonRepo.GetActiveByIDAndType(reasonID, model.ReasonTypeCmtReport); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReasonNotFound
		}
		return err
	}

	if _, err := s.reportRepo.GetActive(userID, cmtID); err == nil {
		return ErrAlreadyReported
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	report := &model.Report{
		ReporterID: userID,
		CmtID:      cmtID,
		ReasonID:   reasonID,
	}
	if err := s.reportRepo.Create(report); err != nil {
		return err
	}

	if s.reportQueue != nil {
		msg := &queue.ReportMessage{
			ReportID:   report.ID,
			CmtID:      cmtID,
			BoardID:    comment.BoardID,
			ReporterID: userID,
			ReasonID:   reasonID,
		}
		if err := s.reportQueue.Push(context.Background(), msg); err != nil {
			log.Printf("Failed to enqueue report %d: %v", report.ID, err)
		}
	}

	return nil
}

// notifyReply 回复通知，失败只记日志不影响主流程
func (s *CommentService) notifyReply(fromUserID int64, parent, comment *model.Comment) {
	if s.publisher == nil {
		return
	}

	fromNick := ""
	if from, err := s.userRepo.GetByID(fromUserID); err == nil {
		fromNick = from.Nick
	}

	preview := ""
	if parts, ok := cmtfmt.Parse(comment.Content); ok {
		preview = parts.Content
		if runes := []rune(preview); len(runes) > previewLen {
			preview = string(runes[:previewLen])
		}
	}

	event := &pubsub.CommentEvent{
		Type:       pubsub.EventTypeReply,
		UserID:     parent.WriterID,
		FromUserID: fromUserID,
		FromNick:   fromNick,
		CmtID:      comment.ID,
		BoardID:    comment.BoardID,
		Preview:    preview,
	}
	if err := s.publisher.PublishCommentEvent(context.Background(), event); err != nil {
		log.Printf("Failed to publish reply event for cmt %d: %v", comment.ID, err)
	}
}
