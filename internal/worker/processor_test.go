package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clashcrash/board_go_server/config"
	"github.com/clashcrash/board_go_server/internal/model"
	"github.com/clashcrash/board_go_server/internal/pkg/email"
	"github.com/clashcrash/board_go_server/internal/pkg/queue"
	"github.com/clashcrash/board_go_server/internal/repository"
	"github.com/clashcrash/board_go_server/internal/testutil"
)

func TestProcess_LoadsReportContext(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	writer := testutil.TestUser(t, db)
	reporter := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db)
	board := testutil.TestBoard(t, db, writer, category)
	cmt := testutil.TestComment(t, db, writer, board)
	reason := testutil.TestReason(t, db, model.ReasonTypeCmtReport, "垃圾广告")
	report := testutil.TestReport(t, db, reporter, cmt, reason)

	// 没有配置版主时只做数据装配，不发邮件
	cfg := &config.Config{}
	processor := NewProcessor(
		repository.NewReportRepository(db),
		repository.NewCommentRepository(db),
		repository.NewBoardRepository(db),
		repository.NewUserRepository(db),
		email.NewService(&cfg.Email),
		cfg,
	)

	msg := &queue.ReportMessage{
		ReportID:   report.ID,
		CmtID:      cmt.ID,
		BoardID:    board.ID,
		ReporterID: reporter.ID,
		ReasonID:   reason.ID,
	}
	assert.NoError(t, processor.Process(context.Background(), msg))
}

func TestProcess_MissingReportFails(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	cfg := &config.Config{}
	processor := NewProcessor(
		repository.NewReportRepository(db),
		repository.NewCommentRepository(db),
		repository.NewBoardRepository(db),
		repository.NewUserRepository(db),
		email.NewService(&cfg.Email),
		cfg,
	)

	err := processor.Process(context.Background(), &queue.ReportMessage{ReportID: 9999})
	require.Error(t, err)
}
