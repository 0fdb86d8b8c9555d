package dao

import (
	"Nova/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{Repo: NewRepo[models.Comment](db)}
}

func (d *CommentDAO) Create(tx *gorm.DB, comment *models.Comment) error {
	return tx.Create(comment).Error
}

// GetByID 查询未删除的评论
func (d *CommentDAO) GetByID(ctx context.Context, commentID uint64) (*models.Comment, error) {
	var comment models.Comment
	err := d.Db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", commentID).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByIDAny 查询评论，包含已软删除的行（删除接口做幂等判断用）
func (d *CommentDAO) GetByIDAny(ctx context.Context, commentID uint64) (*models.Comment, error) {
	var comment models.Comment
	err := d.Db.WithContext(ctx).
		Where("id = ?", commentID).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListTopLevel 取目标下的顶级评论页
// sort: latest(默认) / oldest / hot
func (d *CommentDAO) ListTopLevel(ctx context.Context, targetType string, targetID uint64, sort string, offset, limit int) ([]*models.Comment, error) {
	var order string
	switch sort {
	case "oldest":
		order = "created_at ASC"
	case "hot":
		order = "like_count DESC, reply_count DESC, created_at DESC"
	default:
		order = "created_at DESC"
	}

	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("target_type = ? AND target_id = ? AND parent_id IS NULL AND deleted_at IS NULL", targetType, targetID).
		Order(order).
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

func (d *CommentDAO) CountTopLevel(ctx context.Context, targetType string, targetID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("target_type = ? AND target_id = ? AND parent_id IS NULL AND deleted_at IS NULL", targetType, targetID).
		Count(&count).Error
	return count, err
}

// ListByParentIDs 取一层子回复，嵌套加载逐层调用
// 按 created_at 正序返回，组装时同一父节点下即为时间正序
func (d *CommentDAO) ListByParentIDs(ctx context.Context, parentIDs []uint64) ([]*models.Comment, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	var replies []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("parent_id IN ? AND deleted_at IS NULL", parentIDs).
		Order("created_at ASC").
		Find(&replies).Error
	return replies, err
}

func (d *CommentDAO) UpdateContent(ctx context.Context, commentID uint64, content string) error {
	return d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", commentID).
		Update("content", content).Error
}

func (d *CommentDAO) SoftDelete(tx *gorm.DB, commentID uint64, now time.Time) error {
	return tx.Model(&models.Comment{}).
		Where("id = ? AND deleted_at IS NULL", commentID).
		UpdateColumn("deleted_at", now).Error
}

// UnpinAll 取消目标下所有未删除评论的置顶
func (d *CommentDAO) UnpinAll(tx *gorm.DB, targetType string, targetID uint64) error {
	return tx.Model(&models.Comment{}).
		Where("target_type = ? AND target_id = ? AND is_pinned = 1 AND deleted_at IS NULL", targetType, targetID).
		UpdateColumn("is_pinned", 0).Error
}

func (d *CommentDAO) Pin(tx *gorm.DB, commentID uint64) error {
	return tx.Model(&models.Comment{}).
		Where("id = ?", commentID).
		UpdateColumn("is_pinned", 1).Error
}
