package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/clashcrash/board_go_server/internal/model"
)

// CommentFilter 评论列表查询条件。各条件为 AND 关系，零值表示不限定。
type CommentFilter struct {
	TopLevelOnly   bool   // 仅顶层评论（reply_id IS NULL）
	LiveOnly       bool   // 仅未删除（平铺模式）
	OnlyDeleted    bool   // 仅已删除（管理视图，deleted_at 或 delete_reason_id 任一非空）
	BoardID        int64
	WriterID       int64
	ContentLike    string // 正文子串
	WriterNickLike string // 作者昵称子串（需关联 user_infos）
}

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create 创建评论
func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID 根据 ID 获取评论
func (r *CommentRepository) GetByID(id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetLiveByID 获取未删除的评论
func (r *CommentRepository) GetLiveByID(id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.
		Where("id = ? AND deleted_at IS NULL AND delete_reason_id IS NULL", id).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetOwnedLive 获取指定作者的未删除评论，所有权校验在查询条件里完成
func (r *CommentRepository) GetOwnedLive(writerID, id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.
		Where("id = ? AND writer_id = ? AND deleted_at IS NULL AND delete_reason_id IS NULL", id, writerID).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetWithWriterByIDs 批量获取评论及作者（平铺模式下解析回复对象用）
func (r *CommentRepository) GetWithWriterByIDs(ids []int64) ([]*model.Comment, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var comments []*model.Comment
	err := r.db.Preload("Writer").Where("id IN ?", ids).Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) applyFilter(f *CommentFilter) *gorm.DB {
	query := r.db.Model(&model.Comment{})

	if f.TopLevelOnly {
		query = query.Where("cmts.reply_id IS NULL")
	}
	if f.LiveOnly {
		query = query.Where("cmts.deleted_at IS NULL AND cmts.delete_reason_id IS NULL")
	}
	if f.OnlyDeleted {
		query = query.Where("cmts.deleted_at IS NOT NULL OR cmts.delete_reason_id IS NOT NULL")
	}
	if f.BoardID != 0 {
		query = query.Where("cmts.board_id = ?", f.BoardID)
	}
	if f.WriterID != 0 {
		query = query.Where("cmts.writer_id = ?", f.WriterID)
	}
	if f.ContentLike != "" {
		query = query.Where("cmts.content LIKE ?", "%"+f.ContentLike+"%")
	}
	if f.WriterNickLike != "" {
		query = query.
			Joins("JOIN user_infos ON user_infos.id = cmts.writer_id").
			Where("user_infos.nick LIKE ?", "%"+f.WriterNickLike+"%")
	}

	return query
}

// List 按条件查询候选评论，作者/点赞/举报/删除事由一并装载。
// limit <= 0 时不限制条数（点赞排序分支在内存中截断）。
func (r *CommentRepository) List(f *CommentFilter, order string, limit int) ([]*model.Comment, error) {
	query := r.applyFilter(f).
		Preload("Writer").
		Preload("Likes", "deleted_at IS NULL").
		Preload("Reports", "deleted_at IS NULL").
		Preload("DeleteReason").
		Order(order)

	if limit > 0 {
		query = query.Limit(limit)
	}

	var comments []*model.Comment
	err := query.Find(&comments).Error
	return comments, err
}

// Count 统计满足条件的评论总数（截断前）
func (r *CommentRepository) Count(f *CommentFilter) (int64, error) {
	var count int64
	err := r.applyFilter(f).Count(&count).Error
	return count, err
}

// ListRepliesByBoardIDs 取出若干帖子下的全部回复（含已删除，树装配时再裁剪）。
// 回复继承根帖子的 board_id，因此一次按帖子捞取即可覆盖任意嵌套深度。
func (r *CommentRepository) ListRepliesByBoardIDs(boardIDs []int64) ([]*model.Comment, error) {
	if len(boardIDs) == 0 {
		return nil, nil
	}

	var replies []*model.Comment
	err := r.db.
		Preload("Writer").
		Preload("Likes", "deleted_at IS NULL").
		Preload("Reports", "deleted_at IS NULL").
		Preload("DeleteReason").
		Where("board_id IN ? AND reply_id IS NOT NULL", boardIDs).
		Order("created_at DESC").
		Find(&replies).Error
	return replies, err
}

// CountLiveByBoardID 统计帖子下存活评论数
func (r *CommentRepository) CountLiveByBoardID(boardID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Comment{}).
		Where("board_id = ? AND deleted_at IS NULL AND delete_reason_id IS NULL", boardID).
		Count(&count).Error
	return count, err
}

// SoftDelete 软删除：单条 UPDATE 同时落删除时间与改写后的内容
func (r *CommentRepository) SoftDelete(id int64, content string) error {
	return r.db.Model(&model.Comment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"deleted_at": time.Now(),
			"content":    content,
		}).Error
}

// UpdateContent 编辑：改写内容并刷新更新时间
func (r *CommentRepository) UpdateContent(id int64, content string) error {
	return r.db.Model(&model.Comment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": time.Now(),
		}).Error
}
