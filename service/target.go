package service

import (
	"Nova/dao"
	"Nova/models"
	"Nova/pkg/response"
	"context"

	"gorm.io/gorm"
)

const (
	TargetArticle = "article"
	TargetAnswer  = "answer"
	TargetVideo   = "video"
	TargetComment = "comment"
)

// CounterHandle 指向承载计数列的内容行；为 nil 表示该目标类型没有计数列
type CounterHandle struct {
	Owner any
	ID    uint64
}

// TargetContext 是多态目标解析的结果，评论/点赞/收藏共用
type TargetContext struct {
	Type    string
	ID      uint64
	OwnerID uint64
	Counter *CounterHandle
}

// Adjust 在调用方事务内增减目标的计数列，目标无计数列时直接返回
func (t *TargetContext) Adjust(tx *gorm.DB, column string, delta int64) error {
	if t.Counter == nil {
		return nil
	}
	return dao.AdjustCounter(tx, t.Counter.Owner, t.Counter.ID, column, delta)
}

// ReadCount 读取目标计数列的当前值，无计数列时返回 0
func (t *TargetContext) ReadCount(db *gorm.DB, column string) (int64, error) {
	if t.Counter == nil {
		return 0, nil
	}
	return dao.ReadCounter(db, t.Counter.Owner, t.Counter.ID, column)
}

var _ ITargetService = (*TargetService)(nil)

type ITargetService interface {
	ResolveCommentTarget(ctx context.Context, targetType string, targetID uint64) (*TargetContext, error)
	ResolveLikeTarget(ctx context.Context, targetType string, targetID uint64) (*TargetContext, error)
	ResolveFavoriteTarget(ctx context.Context, targetType string, targetID uint64) (*TargetContext, error)
}

type TargetService struct {
	ArticleDAO *dao.ArticleDAO
	AnswerDAO  *dao.AnswerDAO
}

// 每个功能各自有一个封闭的目标类型集合，集合外的类型一律拒绝

func (s *TargetService) ResolveCommentTarget(ctx context.Context, targetType string, targetID uint64) (*TargetContext, error) {
	switch targetType {
	case TargetArticle:
		return s.resolveArticle(ctx, targetID)
	case TargetAnswer:
		return s.resolveAnswer(ctx, targetID)
	default:
		return nil, response.NewValidation("不支持的评论目标类型: " + targetType)
	}
}

func (s *TargetService) ResolveLikeTarget(ctx context.Context, targetType string, targetID uint64) (*TargetContext, error) {
	switch targetType {
	case TargetArticle:
		return s.resolveArticle(ctx, targetID)
	case TargetAnswer:
		return s.resolveAnswer(ctx, targetID)
	case TargetVideo:
		// 视频没有内容行也没有计数列，点赞关系表本身就是全部状态
		return &TargetContext{Type: TargetVideo, ID: targetID}, nil
	default:
		return nil, response.NewValidation("不支持的点赞目标类型: " + targetType)
	}
}

func (s *TargetService) ResolveFavoriteTarget(ctx context.Context, targetType string, targetID uint64) (*TargetContext, error) {
	switch targetType {
	case TargetArticle:
		return s.resolveArticle(ctx, targetID)
	case TargetAnswer:
		return s.resolveAnswer(ctx, targetID)
	default:
		return nil, response.NewValidation("不支持的收藏目标类型: " + targetType)
	}
}

func (s *TargetService) resolveArticle(ctx context.Context, articleID uint64) (*TargetContext, error) {
	article, err := s.ArticleDAO.GetByID(ctx, articleID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, response.NewNotFound("文章不存在")
		}
		return nil, err
	}
	return &TargetContext{
		Type:    TargetArticle,
		ID:      article.ID,
		OwnerID: article.UserID,
		Counter: &CounterHandle{Owner: &models.Article{}, ID: article.ID},
	}, nil
}

func (s *TargetService) resolveAnswer(ctx context.Context, answerID uint64) (*TargetContext, error) {
	answer, err := s.AnswerDAO.GetByID(ctx, answerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, response.NewNotFound("回答不存在")
		}
		return nil, err
	}
	return &TargetContext{
		Type:    TargetAnswer,
		ID:      answer.ID,
		OwnerID: answer.UserID,
		Counter: &CounterHandle{Owner: &models.Answer{}, ID: answer.ID},
	}, nil
}
