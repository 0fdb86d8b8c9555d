package dao

import (
	"Nova/models"
	"context"

	"gorm.io/gorm"
)

type QuestionDAO struct {
	Repo[models.Question]
}

func NewQuestionDAO(db *gorm.DB) *QuestionDAO {
	return &QuestionDAO{Repo: NewRepo[models.Question](db)}
}

func (d *QuestionDAO) GetByID(ctx context.Context, questionID uint64) (*models.Question, error) {
	var question models.Question
	err := d.Db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", questionID).
		First(&question).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (d *QuestionDAO) Create(ctx context.Context, question *models.Question) error {
	return d.Db.WithContext(ctx).Create(question).Error
}

func (d *QuestionDAO) Update(ctx context.Context, questionID uint64, values map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.Question{}).
		Where("id = ?", questionID).
		Updates(values).Error
}

func (d *QuestionDAO) ListByAuthors(ctx context.Context, userIDs []uint64, offset, limit int) ([]*models.Question, error) {
	var questions []*models.Question
	err := d.Db.WithContext(ctx).
		Where("user_id IN ? AND deleted_at IS NULL", userIDs).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&questions).Error
	return questions, err
}

func (d *QuestionDAO) CountByAuthors(ctx context.Context, userIDs []uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Question{}).
		Where("user_id IN ? AND deleted_at IS NULL", userIDs).
		Count(&count).Error
	return count, err
}

// --- 问题关注 ---

type QuestionFollowDAO struct {
	Repo[models.QuestionFollow]
}

func NewQuestionFollowDAO(db *gorm.DB) *QuestionFollowDAO {
	return &QuestionFollowDAO{Repo: NewRepo[models.QuestionFollow](db)}
}

func (d *QuestionFollowDAO) Exists(ctx context.Context, questionID, userID uint64) (bool, error) {
	return d.IsExist(ctx, "question_id = ? AND user_id = ?", questionID, userID)
}

func (d *QuestionFollowDAO) Create(tx *gorm.DB, follow *models.QuestionFollow) error {
	return tx.Create(follow).Error
}

func (d *QuestionFollowDAO) Delete(tx *gorm.DB, questionID, userID uint64) (int64, error) {
	result := tx.Where("question_id = ? AND user_id = ?", questionID, userID).
		Delete(&models.QuestionFollow{})
	return result.RowsAffected, result.Error
}
