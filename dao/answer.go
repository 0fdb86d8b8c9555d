package dao

import (
	"Nova/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type AnswerDAO struct {
	Repo[models.Answer]
}

func NewAnswerDAO(db *gorm.DB) *AnswerDAO {
	return &AnswerDAO{Repo: NewRepo[models.Answer](db)}
}

func (d *AnswerDAO) GetByID(ctx context.Context, answerID uint64) (*models.Answer, error) {
	var answer models.Answer
	err := d.Db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", answerID).
		First(&answer).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (d *AnswerDAO) Create(ctx context.Context, answer *models.Answer) error {
	return d.Db.WithContext(ctx).Create(answer).Error
}

func (d *AnswerDAO) UpdateContent(ctx context.Context, answerID uint64, content string) error {
	return d.Db.WithContext(ctx).
		Model(&models.Answer{}).
		Where("id = ?", answerID).
		Update("content", content).Error
}

func (d *AnswerDAO) SoftDelete(tx *gorm.DB, answerID uint64, now time.Time) error {
	return tx.Model(&models.Answer{}).
		Where("id = ? AND deleted_at IS NULL", answerID).
		UpdateColumn("deleted_at", now).Error
}

// ListByQuestion 按问题分页取回答
// sort: default(赞同数倒序) / latest / oldest / hot
func (d *AnswerDAO) ListByQuestion(ctx context.Context, questionID uint64, sort string, offset, limit int) ([]*models.Answer, error) {
	var order string
	switch sort {
	case "latest":
		order = "created_at DESC"
	case "oldest":
		order = "created_at ASC"
	case "hot":
		order = "comment_count DESC, upvote_count DESC"
	default:
		order = "upvote_count DESC"
	}

	var answers []*models.Answer
	err := d.Db.WithContext(ctx).
		Where("question_id = ? AND deleted_at IS NULL", questionID).
		Order(order).
		Offset(offset).
		Limit(limit).
		Find(&answers).Error
	return answers, err
}

func (d *AnswerDAO) CountByQuestion(ctx context.Context, questionID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Answer{}).
		Where("question_id = ? AND deleted_at IS NULL", questionID).
		Count(&count).Error
	return count, err
}

func (d *AnswerDAO) BatchGetByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.Answer, error) {
	result := make(map[uint64]*models.Answer)
	if len(ids) == 0 {
		return result, nil
	}
	var answers []*models.Answer
	err := d.Db.WithContext(ctx).
		Where("id IN ? AND deleted_at IS NULL", ids).
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	for _, answer := range answers {
		result[answer.ID] = answer
	}
	return result, nil
}
