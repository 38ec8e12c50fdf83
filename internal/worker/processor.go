package worker

import (
	"context"
	"fmt"
	"log"

	"github.com/clashcrash/board_go_server/config"
	"github.com/clashcrash/board_go_server/internal/pkg/cmtfmt"
	"github.com/clashcrash/board_go_server/internal/pkg/email"
	"github.com/clashcrash/board_go_server/internal/pkg/queue"
	"github.com/clashcrash/board_go_server/internal/repository"
)

// Processor 消费举报队列，向版主发送通知邮件
type Processor struct {
	reportRepo  *repository.ReportRepository
	commentRepo *repository.CommentRepository
	boardRepo   *repository.BoardRepository
	userRepo    *repository.UserRepository
	emailSvc    *email.Service
	cfg         *config.Config
}

func NewProcessor(
	reportRepo *repository.ReportRepository,
	commentRepo *repository.CommentRepository,
	boardRepo *repository.BoardRepository,
	userRepo *repository.UserRepository,
	emailSvc *email.Service,
	cfg *config.Config,
) *Processor {
	return &Processor{
		reportRepo:  reportRepo,
		commentRepo: commentRepo,
		boardRepo:   boardRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
		cfg:         cfg,
	}
}

// Process 处理一条举报任务
func (p *Processor) Process(ctx context.Context, msg *queue.ReportMessage) error {
	report, err := p.reportRepo.GetWithReasonByID(msg.ReportID)
	if err != nil {
		return fmt.Errorf("failed to load report %d: %w", msg.ReportID, err)
	}

	comment, err := p.commentRepo.GetByID(report.CmtID)
	if err != nil {
		return fmt.Errorf("failed to load cmt %d: %w", report.CmtID, err)
	}

	preview := comment.Content
	if parts, ok := cmtfmt.Parse(comment.Content); ok {
		preview = parts.Content
	}

	boardTitle := ""
	if board, err := p.boardRepo.GetWithCategoryByID(comment.BoardID); err == nil {
		boardTitle = board.Title
	}

	reporterNick := ""
	if reporter, err := p.userRepo.GetByID(report.ReporterID); err == nil {
		reporterNick = reporter.Nick
	}

	reasonTitle := ""
	if report.Reason != nil {
		reasonTitle = report.Reason.Title
	}

	for _, moderator := range p.cfg.Email.Moderators {
		if err := p.emailSvc.SendReportNotice(moderator, boardTitle, preview, reasonTitle, reporterNick); err != nil {
			log.Printf("Failed to notify moderator %s for report %d: %v", moderator, msg.ReportID, err)
		}
	}

	return nil
}
