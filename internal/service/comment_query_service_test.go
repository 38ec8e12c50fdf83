package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/clashcrash/board_go_server/config"
	"github.com/clashcrash/board_go_server/internal/model"
	"github.com/clashcrash/board_go_server/internal/pkg/assets"
	"github.com/clashcrash/board_go_server/internal/pkg/cmtfmt"
	"github.com/clashcrash/board_go_server/internal/repository"
	"github.com/clashcrash/board_go_server/internal/testutil"
)

func newTestResolver() *assets.Resolver {
	return assets.NewResolver(&config.AssetsConfig{
		BaseURL:           "https://img.example.com/",
		DefaultProfileImg: "default.png",
	})
}

func newQueryService(db *gorm.DB) *CommentQueryService {
	return NewCommentQueryService(
		repository.NewCommentRepository(db),
		repository.NewBoardRepository(db),
		newTestResolver(),
	)
}

func TestList_TombstoneKeptWithLiveReply(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	writer := testutil.TestUser(t, db)
	replier := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db)
	board := testutil.TestBoard(t, db, writer, category)

	parent := testutil.TestComment(t, db, writer, board, testutil.UserDeleted())
	reply := testutil.TestReply(t, db, replier, parent)

	svc := newQueryService(db)
	data, err := svc.List(&ListFilter{Limit: 20, Sort: SortOld})
	require.NoError(t, err)

	require.Len(t, data.CmtList, 1)
	item := data.CmtList[0]
	assert.Equal(t, parent.ID, item.ID)
	assert.True(t, item.IsDeleted)
	assert.Equal(t, cmtfmt.Make(deletedByUserText, tombstoneMarker, ""), item.Content)

	require.Len(t, item.ContainCmt, 1)
	assert.Equal(t, reply.ID, item.ContainCmt[0].ID)
	assert.False(t, item.ContainCmt[0].IsDeleted)
	assert.Equal(t, reply.Content, item.ContainCmt[0].Content)
}

func TestList_DeletedWithoutRepliesDropped(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	writer := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db)
	board := testutil.TestBoard(t, db, writer, category)

	testutil.TestComment(t, db, writer, board, testutil.UserDeleted())
	live := testutil.TestComment(t, db, writer, board)

	svc := newQueryService(db)
	data, err := svc.List(&ListFilter{Limit: 20, Sort: SortOld})
	require.NoError(t, err)

	require.Len(t, data.CmtList, 1)
	assert.Equal(t, live.ID, data.CmtList[0].ID)
}

func TestList_DeletedWithOnlyDeletedRepliesDropped(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	writer := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db)
	board := testutil.TestBoard(t, db, writer, category)

	// 回复链整体删除时整棵子树都不应出现
	parent := testutil.TestComment(t, db, writer, board, testutil.UserDeleted())
	testutil.TestReply(t, db, writer, parent, testutil.UserDeleted())

	svc := newQueryService(db)
	data, err := svc.List(&ListFilter{Limit: 20, Sort: SortOld})
	require.NoError(t, err)

	assert.Empty(t, data.CmtList)
}

func TestList_AdminDeletedTombstoneShowsReason(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	writer := testutil.TestUser(t, db)
	replier := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db)
	board := testutil.TestBoard(t, db, writer, category)
	reason := testutil.TestReason(t, db, model.ReasonTypeDelete, "违规内容")

	parent := testutil.TestComment(t, db, writer, board, testutil.AdminDeleted(reason.ID))
	testutil.TestReply(t, db, replier, parent)

	svc := newQueryService(db)
	data, err := svc.List(&ListFilter{Limit: 20, Sort: SortOld})
	require.NoError(t, err)

	require.Len(t, data.CmtList, 1)
	expected := cmtfmt.Make(fmt.Sprintf(deletedByReasonText, reason.Title), tombstoneMarker, "")
	assert.Equal(t, expected, data.CmtList[0].Content)
}

func TestList_OnlyDeletedIncludesUserDeleted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	writer := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db)
	board := testutil.TestBoard(t, db, writer, category)
	reason := testutil.TestReason(t, db, model.ReasonTypeDelete, "违规内容")

	testutil.TestComment(t, db, writer, board)
	userDeleted := testutil.TestComment(t, db, writer, board, testutil.UserDeleted())
	adminDeleted := testutil.TestComment(t, db, writer, board, testutil.AdminDeleted(reason.ID))

	svc := newQueryService(db)
	data, err := svc.List(&ListFilter{Limit: 20, Sort: SortOld, OnlyDeleted: true, IsDeleted: true})
	require.NoError(t, err)

	// 无事由的用户自删评论也要进管理视图
	require.Len(t, data.CmtList, 2)
	ids := []int64{data.CmtList[0].ID, data.CmtList[1].ID}
	assert.Contains(t, ids, userDeleted.ID)
	assert.Contains(t, ids, adminDeleted.ID)

	// 管理视图不脱敏，原样输出存储内容
	for _, item := range data.CmtList {
		assert.True(t, item.IsDeleted)
		if item.ID == userDeleted.ID {
			assert.Equal(t, userDeleted.Content, item.Content)
		}
	}
}

func TestList_SortLikeTruncatesAfterSorting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	writer := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db)
	board := testutil.TestBoard(t, db, writer, category)

	likers := []*model.UserInfo{
		testutil.TestUser(t, db),
		testutil.TestUser(t, db),
		testutil.TestUser(t, db),
	}

	base := time.Now().Add(-time.Hour)
	cmtA := testutil.TestComment(t, db, writer, board, testutil.WithCreatedAt(base))
	cmtB := testutil.TestComment(t, db, writer, board, testutil.WithCreatedAt(base.Add(time.Minute)))
	cmtC := testutil.TestComment(t, db, writer, board, testutil.WithCreatedAt(base.Add(2*time.Minute)))

	// A: 1赞，B: 3赞，C: 2赞
	testutil.TestLike(t, db, likers[0], cmtA, true, false)
	for _, u := range likers {
		testutil.TestLike(t, db, u, cmtB, true, false)
	}
	testutil.TestLike(t, db, likers[0], cmtC, true, false)
	testutil.TestLike(t, db, likers[1], cmtC, true, false)

	svc := newQueryService(db)
	data, err := svc.List(&ListFilter{Limit: 2, Sort: SortLike})
	require.NoError(t, err)

	// 先全量按点赞数排序再截断，而不是截断后排序
	require.Len(t, data.CmtList, 2)
	assert.Equal(t, cmtB.ID, data.CmtList[0].ID)
	assert.Equal(t, 3, data.CmtList[0].Like)
	assert.Equal(t, cmtC.ID, data.CmtList[1].ID)
	assert.Equal(t, 2, data.CmtList[1].Like)

	// 总数不受截断影响
	assert.Equal(t, int64(3), data.CmtCnt)
}

func TestList_SortOldAndRecently(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	writer := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db)
	board := testutil.TestBoard(t, db, writer, category)

	base := time.Now().Add(-time.Hour)
	first := testutil.TestComment(t, db, writer, board, testutil.WithCreatedAt(base))
	second := testutil.TestComment(t, db, writer, board, testutil.WithCreatedAt(base.Add(time.Minute)))

	svc := newQueryService(db)

	data, err := svc.List(&ListFilter{Limit: 20, Sort: SortOld})
	require.NoError(t, err)
	require.Len(t, data.CmtList, 2)
	assert.Equal(t, first.ID, data.CmtList[0].ID)

	data, err = svc.List(&ListFilter{Limit: 20, Sort: SortRecently})
	require.NoError(t, err)
	require.Len(t, data.CmtList, 2)
	assert.Equal(t, second.ID, data.CmtList[0].ID)
}

func TestList_FlatModeResolvesReplyUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	parentWriter := testutil.TestUser(t, db, testutil.WithNick("楼主"))
	replier := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db)
	board := testutil.TestBoard(t, db, parentWriter, category)

	base := time.Now().Add(-time.Hour)
	parent := testutil.TestComment(t, db, parentWriter, board, testutil.WithCreatedAt(base))
	reply := testutil.TestReply(t, db, replier, parent, testutil.WithCreatedAt(base.Add(time.Minute)))

	svc := newQueryService(db)
	data, err := svc.List(&ListFilter{Limit: 20, Sort: SortOld, IsFlat: true})
	require.NoError(t, err)

	// 平铺模式下回复与顶层评论并列，不挂子树
	require.Len(t, data.CmtList, 2)
	assert.Empty(t, data.CmtList[0].ContainCmt)

	replyItem := data.CmtList[1]
	assert.Equal(t, reply.ID, replyItem.ID)
	assert.Empty(t, replyItem.ContainCmt)
	assert.Equal(t, "楼主", replyItem.ReplyUser)
	require.NotNil(t, replyItem.ReplyUserID)
	assert.Equal(t, parentWriter.ID, *replyItem.ReplyUserID)
}

func TestList_SearchVariants(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	alice := testutil.TestUser(t, db, testutil.WithNick("alice"))
	bob := testutil.TestUser(t, db, testutil.WithNick("bob"))
	category := testutil.TestCategory(t, db)
	board := testutil.TestBoard(t, db, alice, category)

	aliceCmt := testutil.TestComment(t, db, alice, board, testutil.WithContent("今天天气不错"))
	bobCmt := testutil.TestComment(t, db, bob, board, testutil.WithContent("附议"))

	// contentWriter 语义专用：正文和昵称只各命中一半的行不应出现
	weather := testutil.TestUser(t, db, testutil.WithNick("weather"))
	bothMatch := testutil.TestComment(t, db, weather, board, testutil.WithContent("weather is fine"))
	testutil.TestComment(t, db, weather, board, testutil.WithContent("只有昵称命中"))
	testutil.TestComment(t, db, alice, board, testutil.WithContent("weather tomorrow"))

	svc := newQueryService(db)

	data, err := svc.List(&ListFilter{Limit: 20, Sort: SortOld, Search: "天气", SearchType: SearchContent})
	require.NoError(t, err)
	require.Len(t, data.CmtList, 1)
	assert.Equal(t, aliceCmt.ID, data.CmtList[0].ID)

	data, err = svc.List(&ListFilter{Limit: 20, Sort: SortOld, Search: "bob", SearchType: SearchWriter})
	require.NoError(t, err)
	require.Len(t, data.CmtList, 1)
	assert.Equal(t, bobCmt.ID, data.CmtList[0].ID)

	// 正文与昵称两个条件同时生效（AND），而不是任一命中
	data, err = svc.List(&ListFilter{Limit: 20, Sort: SortOld, Search: "weather", SearchType: SearchContentWriter})
	require.NoError(t, err)
	require.Len(t, data.CmtList, 1)
	assert.Equal(t, bothMatch.ID, data.CmtList[0].ID)
}

func TestList_PersonalFlags(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	writer := testutil.TestUser(t, db)
	viewer := testutil.TestUser(t, db)
	other := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db)
	board := testutil.TestBoard(t, db, writer, category)
	reason := testutil.TestReason(t, db, model.ReasonTypeCmtReport, "垃圾广告")

	cmt := testutil.TestComment(t, db, writer, board)
	testutil.TestLike(t, db, viewer, cmt, true, false)
	testutil.TestLike(t, db, other, cmt, false, true)
	testutil.TestReport(t, db, viewer, cmt, reason)

	svc := newQueryService(db)

	// 登录用户能看到自己的互动状态
	data, err := svc.List(&ListFilter{Limit: 20, Sort: SortOld, UserID: viewer.ID})
	require.NoError(t, err)
	require.Len(t, data.CmtList, 1)
	item := data.CmtList[0]
	assert.Equal(t, 1, item.Like)
	assert.Equal(t, 1, item.Dislike)
	assert.True(t, item.IsDoLike)
	assert.False(t, item.IsDoDislike)
	assert.True(t, item.IsDidReport)

	// 未登录时个性化标记全为 false
	data, err = svc.List(&ListFilter{Limit: 20, Sort: SortOld})
	require.NoError(t, err)
	item = data.CmtList[0]
	assert.False(t, item.IsDoLike)
	assert.False(t, item.IsDidReport)
}

func TestList_BoardMetadata(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	writer := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db)
	board := testutil.TestBoard(t, db, writer, category)

	parent := testutil.TestComment(t, db, writer, board)
	testutil.TestReply(t, db, writer, parent)

	svc := newQueryService(db)
	data, err := svc.List(&ListFilter{Limit: 20, Sort: SortOld})
	require.NoError(t, err)

	require.Len(t, data.CmtList, 1)
	item := data.CmtList[0]
	assert.Equal(t, board.Title, item.BoardTitle)
	assert.Equal(t, category.Name, item.Category)
	assert.Equal(t, category.Path, item.CategoryPath)
	assert.Equal(t, int64(2), item.BoardCmtCnt)
}

func TestList_OwnCommentsOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	alice := testutil.TestUser(t, db)
	bob := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db)
	board := testutil.TestBoard(t, db, alice, category)

	aliceCmt := testutil.TestComment(t, db, alice, board)
	testutil.TestComment(t, db, bob, board)

	svc := newQueryService(db)
	data, err := svc.List(&ListFilter{Limit: 20, Sort: SortOld, UserID: alice.ID, IsOwn: true})
	require.NoError(t, err)

	require.Len(t, data.CmtList, 1)
	assert.Equal(t, aliceCmt.ID, data.CmtList[0].ID)
}
