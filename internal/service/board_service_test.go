package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/clashcrash/board_go_server/internal/model"
	"github.com/clashcrash/board_go_server/internal/model/dto"
	"github.com/clashcrash/board_go_server/internal/repository"
	"github.com/clashcrash/board_go_server/internal/testutil"
)

func newBoardService(db *gorm.DB) *BoardService {
	return NewBoardService(
		repository.NewBoardRepository(db),
		repository.NewCommentRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewReasonRepository(db),
	)
}

func TestBoardCreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	writer := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db)

	svc := newBoardService(db)
	board, err := svc.Create(writer.ID, &dto.CreateBoardRequest{
		Title:      "新帖子",
		CategoryID: category.ID,
		Content:    "正文",
	})
	require.NoError(t, err)

	item, err := svc.Get(board.ID)
	require.NoError(t, err)
	assert.Equal(t, "新帖子", item.Title)
	assert.Equal(t, category.Name, item.Category)
	assert.Equal(t, int64(0), item.CmtCnt)
}

func TestBoardCreate_BadCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	writer := testutil.TestUser(t, db)

	svc := newBoardService(db)
	_, err := svc.Create(writer.ID, &dto.CreateBoardRequest{Title: "帖子", CategoryID: 9999})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestBoardGet_CmtCntExcludesDeleted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	writer := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db)
	board := testutil.TestBoard(t, db, writer, category)

	testutil.TestComment(t, db, writer, board)
	testutil.TestComment(t, db, writer, board, testutil.UserDeleted())

	svc := newBoardService(db)
	item, err := svc.Get(board.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.CmtCnt)
}

func TestListReportReasons_FiltersByType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	report := testutil.TestReason(t, db, model.ReasonTypeCmtReport, "垃圾广告")
	testutil.TestReason(t, db, model.ReasonTypeDelete, "违规内容")

	svc := newBoardService(db)
	items, err := svc.ListReportReasons()
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, report.ID, items[0].ID)
	assert.Equal(t, "垃圾广告", items[0].Title)
}

func TestListCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	testutil.TestCategory(t, db)
	testutil.TestCategory(t, db)

	svc := newBoardService(db)
	items, err := svc.ListCategories()
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
