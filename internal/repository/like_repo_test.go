package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clashcrash/board_go_server/internal/testutil"
)

func TestLikePurgeDeletedBefore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	writer := testutil.TestUser(t, db)
	liker := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db)
	board := testutil.TestBoard(t, db, writer, category)
	cmt := testutil.TestComment(t, db, writer, board)

	testutil.TestLike(t, db, liker, cmt, true, false)
	stale := testutil.TestLike(t, db, writer, cmt, true, false)
	recent := testutil.TestLike(t, db, testutil.TestUser(t, db), cmt, false, true)

	old := time.Now().Add(-40 * 24 * time.Hour)
	require.NoError(t, db.Model(stale).Update("deleted_at", old).Error)
	require.NoError(t, db.Model(recent).Update("deleted_at", time.Now()).Error)

	repo := NewLikeRepository(db)
	count, err := repo.PurgeDeletedBefore(time.Now().Add(-30 * 24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// 存活记录与保留期内的软删除记录不受影响
	_, err = repo.Get(liker.ID, cmt.ID)
	assert.NoError(t, err)

	var remaining int64
	require.NoError(t, db.Table("likes").Count(&remaining).Error)
	assert.Equal(t, int64(2), remaining)
}
