package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/clashcrash/board_go_server/internal/model"
)

var fixtureSeq int64

func nextSeq() int64 {
	return atomic.AddInt64(&fixtureSeq, 1)
}

// TestUser 创建测试用户
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*model.UserInfo)) *model.UserInfo {
	t.Helper()

	user := &model.UserInfo{
		Nick:         fmt.Sprintf("testuser_%d", nextSeq()),
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuvwxyz123456", // bcrypt hash placeholder
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// WithNick 设置昵称
func WithNick(nick string) func(*model.UserInfo) {
	return func(u *model.UserInfo) {
		u.Nick = nick
	}
}

// AsAdmin 设置为管理员
func AsAdmin() func(*model.UserInfo) {
	return func(u *model.UserInfo) {
		u.IsAdmin = true
	}
}

// TestCategory 创建测试分类
func TestCategory(t *testing.T, db *gorm.DB) *model.Category {
	t.Helper()

	seq := nextSeq()
	category := &model.Category{
		Name: fmt.Sprintf("分类%d", seq),
		Path: fmt.Sprintf("cat-%d", seq),
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}

	return category
}

// TestBoard 创建测试帖子
func TestBoard(t *testing.T, db *gorm.DB, writer *model.UserInfo, category *model.Category, opts ...func(*model.Board)) *model.Board {
	t.Helper()

	board := &model.Board{
		Title:      fmt.Sprintf("测试帖子 %d", nextSeq()),
		WriterID:   writer.ID,
		CategoryID: category.ID,
		Content:    "帖子正文",
	}

	for _, opt := range opts {
		opt(board)
	}

	if err := db.Create(board).Error; err != nil {
		t.Fatalf("Failed to create test board: %v", err)
	}

	return board
}

// TestComment 创建测试顶层评论
func TestComment(t *testing.T, db *gorm.DB, writer *model.UserInfo, board *model.Board, opts ...func(*model.Comment)) *model.Comment {
	t.Helper()

	comment := &model.Comment{
		BoardID:  board.ID,
		WriterID: writer.ID,
		Content:  fmt.Sprintf("评论内容 %d", nextSeq()),
	}

	for _, opt := range opts {
		opt(comment)
	}

	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("Failed to create test comment: %v", err)
	}

	return comment
}

// TestReply 创建测试回复（board_id 继承父评论）
func TestReply(t *testing.T, db *gorm.DB, writer *model.UserInfo, parent *model.Comment, opts ...func(*model.Comment)) *model.Comment {
	t.Helper()

	reply := &model.Comment{
		BoardID:  parent.BoardID,
		WriterID: writer.ID,
		Content:  fmt.Sprintf("回复内容 %d", nextSeq()),
		ReplyID:  &parent.ID,
	}

	for _, opt := range opts {
		opt(reply)
	}

	if err := db.Create(reply).Error; err != nil {
		t.Fatalf("Failed to create test reply: %v", err)
	}

	return reply
}

// WithContent 设置评论内容
func WithContent(content string) func(*model.Comment) {
	return func(c *model.Comment) {
		c.Content = content
	}
}

// UserDeleted 模拟用户自行删除（仅 deleted_at）
func UserDeleted() func(*model.Comment) {
	return func(c *model.Comment) {
		now := time.Now()
		c.DeletedAt = &now
	}
}

// AdminDeleted 模拟管理删除（deleted_at + 删除事由）
func AdminDeleted(reasonID int64) func(*model.Comment) {
	return func(c *model.Comment) {
		now := time.Now()
		c.DeletedAt = &now
		c.DeleteReasonID = &reasonID
	}
}

// WithCreatedAt 设置创建时间
func WithCreatedAt(at time.Time) func(*model.Comment) {
	return func(c *model.Comment) {
		c.CreatedAt = at
	}
}

// TestLike 创建点赞记录
func TestLike(t *testing.T, db *gorm.DB, user *model.UserInfo, cmt *model.Comment, isLike, isDislike bool) *model.Like {
	t.Helper()

	like := &model.Like{
		UserID:    user.ID,
		CmtID:     cmt.ID,
		IsLike:    isLike,
		IsDislike: isDislike,
	}

	if err := db.Create(like).Error; err != nil {
		t.Fatalf("Failed to create test like: %v", err)
	}

	return like
}

// TestReason 创建管理事由
func TestReason(t *testing.T, db *gorm.DB, reasonType, title string) *model.Reason {
	t.Helper()

	reason := &model.Reason{
		Title:      title,
		ReasonType: reasonType,
	}

	if err := db.Create(reason).Error; err != nil {
		t.Fatalf("Failed to create test reason: %v", err)
	}

	return reason
}

// TestReport 创建举报记录
func TestReport(t *testing.T, db *gorm.DB, reporter *model.UserInfo, cmt *model.Comment, reason *model.Reason) *model.Report {
	t.Helper()

	report := &model.Report{
		ReporterID: reporter.ID,
		CmtID:      cmt.ID,
		ReasonID:   reason.ID,
	}

	if err := db.Create(report).Error; err != nil {
		t.Fatalf("Failed to create test report: %v", err)
	}

	return report
}
