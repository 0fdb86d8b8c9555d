package dao

import (
	"Nova/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type ArticleDAO struct {
	Repo[models.Article]
}

func NewArticleDAO(db *gorm.DB) *ArticleDAO {
	return &ArticleDAO{Repo: NewRepo[models.Article](db)}
}

// GetByID 查询未删除的文章
func (d *ArticleDAO) GetByID(ctx context.Context, articleID uint64) (*models.Article, error) {
	var article models.Article
	err := d.Db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", articleID).
		First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (d *ArticleDAO) Create(ctx context.Context, article *models.Article) error {
	return d.Db.WithContext(ctx).Create(article).Error
}

func (d *ArticleDAO) Update(ctx context.Context, articleID uint64, values map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ?", articleID).
		Updates(values).Error
}

func (d *ArticleDAO) SoftDelete(ctx context.Context, articleID uint64, now time.Time) error {
	return d.Db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ? AND deleted_at IS NULL", articleID).
		UpdateColumn("deleted_at", now).Error
}

// ListByAuthors 按作者集合取最新文章，feed 源查询
func (d *ArticleDAO) ListByAuthors(ctx context.Context, userIDs []uint64, offset, limit int) ([]*models.Article, error) {
	var articles []*models.Article
	err := d.Db.WithContext(ctx).
		Where("user_id IN ? AND deleted_at IS NULL", userIDs).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

func (d *ArticleDAO) CountByAuthors(ctx context.Context, userIDs []uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Article{}).
		Where("user_id IN ? AND deleted_at IS NULL", userIDs).
		Count(&count).Error
	return count, err
}

// BatchGetByIDs 批量查询，收藏列表组装用（包含已删除之外的行）
func (d *ArticleDAO) BatchGetByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.Article, error) {
	result := make(map[uint64]*models.Article)
	if len(ids) == 0 {
		return result, nil
	}
	var articles []*models.Article
	err := d.Db.WithContext(ctx).
		Where("id IN ? AND deleted_at IS NULL", ids).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	for _, article := range articles {
		result[article.ID] = article
	}
	return result, nil
}
