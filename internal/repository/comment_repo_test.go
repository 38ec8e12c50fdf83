package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clashcrash/board_go_server/internal/model"
	"github.com/clashcrash/board_go_server/internal/testutil"
)

func TestCommentFilter_OnlyDeletedCoversBothShapes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	writer := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db)
	board := testutil.TestBoard(t, db, writer, category)
	reason := testutil.TestReason(t, db, model.ReasonTypeDelete, "违规内容")

	testutil.TestComment(t, db, writer, board)
	userDeleted := testutil.TestComment(t, db, writer, board, testutil.UserDeleted())
	adminDeleted := testutil.TestComment(t, db, writer, board, testutil.AdminDeleted(reason.ID))

	repo := NewCommentRepository(db)
	comments, err := repo.List(&CommentFilter{OnlyDeleted: true}, "cmts.created_at ASC", 0)
	require.NoError(t, err)

	require.Len(t, comments, 2)
	ids := []int64{comments[0].ID, comments[1].ID}
	assert.Contains(t, ids, userDeleted.ID)
	assert.Contains(t, ids, adminDeleted.ID)
}

func TestCommentFilter_WriterNickLike(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	alice := testutil.TestUser(t, db, testutil.WithNick("alice"))
	bob := testutil.TestUser(t, db, testutil.WithNick("bob"))
	category := testutil.TestCategory(t, db)
	board := testutil.TestBoard(t, db, alice, category)

	target := testutil.TestComment(t, db, alice, board)
	testutil.TestComment(t, db, bob, board)

	repo := NewCommentRepository(db)
	comments, err := repo.List(&CommentFilter{WriterNickLike: "ali"}, "cmts.created_at ASC", 0)
	require.NoError(t, err)

	require.Len(t, comments, 1)
	assert.Equal(t, target.ID, comments[0].ID)
}

func TestCommentList_PreloadsSkipDeletedInteractions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	writer := testutil.TestUser(t, db)
	liker := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db)
	board := testutil.TestBoard(t, db, writer, category)

	cmt := testutil.TestComment(t, db, writer, board)
	live := testutil.TestLike(t, db, liker, cmt, true, false)
	stale := testutil.TestLike(t, db, writer, cmt, true, false)
	require.NoError(t, db.Model(stale).Update("deleted_at", time.Now()).Error)

	repo := NewCommentRepository(db)
	comments, err := repo.List(&CommentFilter{}, "cmts.created_at ASC", 0)
	require.NoError(t, err)

	require.Len(t, comments, 1)
	require.Len(t, comments[0].Likes, 1)
	assert.Equal(t, live.ID, comments[0].Likes[0].ID)
}

func TestListRepliesByBoardIDs_CoversNestedReplies(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	writer := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db)
	board := testutil.TestBoard(t, db, writer, category)
	otherBoard := testutil.TestBoard(t, db, writer, category)

	parent := testutil.TestComment(t, db, writer, board)
	reply := testutil.TestReply(t, db, writer, parent)
	nested := testutil.TestReply(t, db, writer, reply)
	otherParent := testutil.TestComment(t, db, writer, otherBoard)
	testutil.TestReply(t, db, writer, otherParent)

	repo := NewCommentRepository(db)
	replies, err := repo.ListRepliesByBoardIDs([]int64{board.ID})
	require.NoError(t, err)

	// 深层回复也共享根帖子的 board_id，一次查询全部取到
	require.Len(t, replies, 2)
	ids := []int64{replies[0].ID, replies[1].ID}
	assert.Contains(t, ids, reply.ID)
	assert.Contains(t, ids, nested.ID)
}

func TestSoftDelete_SingleUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	writer := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db)
	board := testutil.TestBoard(t, db, writer, category)
	cmt := testutil.TestComment(t, db, writer, board)

	repo := NewCommentRepository(db)
	require.NoError(t, repo.SoftDelete(cmt.ID, "改写后的内容"))

	reloaded, err := repo.GetByID(cmt.ID)
	require.NoError(t, err)
	assert.NotNil(t, reloaded.DeletedAt)
	assert.Equal(t, "改写后的内容", reloaded.Content)

	_, err = repo.GetLiveByID(cmt.ID)
	assert.Error(t, err)
}

func TestGetOwnedLive_ChecksOwnership(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	writer := testutil.TestUser(t, db)
	other := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db)
	board := testutil.TestBoard(t, db, writer, category)
	cmt := testutil.TestComment(t, db, writer, board)

	repo := NewCommentRepository(db)

	got, err := repo.GetOwnedLive(writer.ID, cmt.ID)
	require.NoError(t, err)
	assert.Equal(t, cmt.ID, got.ID)

	_, err = repo.GetOwnedLive(other.ID, cmt.ID)
	assert.Error(t, err)
}
