package service

import (
	"Nova/dao"
	"Nova/models"
	"Nova/pkg/snowflake"
	"Nova/types"
	"context"

	"gorm.io/gorm"
)

var _ IFavoriteService = (*FavoriteService)(nil)

type IFavoriteService interface {
	Favorite(ctx context.Context, userID uint64, req *types.FavoriteRequest) error
	Unfavorite(ctx context.Context, userID uint64, req *types.FavoriteRequest) error
	ListByUser(ctx context.Context, userID uint64, targetType string, page, pageSize int) (*types.PageResult[*types.FavoriteItem], error)
}

type FavoriteService struct {
	FavoriteDAO *dao.FavoriteDAO
	ArticleDAO  *dao.ArticleDAO
	AnswerDAO   *dao.AnswerDAO
	UserDAO     *dao.UserDAO
	Targets     ITargetService
}

func (s *FavoriteService) Favorite(ctx context.Context, userID uint64, req *types.FavoriteRequest) error {
	target, err := s.Targets.ResolveFavoriteTarget(ctx, req.TargetType, req.TargetID)
	if err != nil {
		return err
	}

	exists, err := s.FavoriteDAO.Exists(ctx, userID, target.Type, target.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return s.FavoriteDAO.Transaction(ctx, func(tx *gorm.DB) error {
		favorite := &models.Favorite{
			ID:         uint64(snowflake.GenID()),
			UserID:     userID,
			TargetType: target.Type,
			TargetID:   target.ID,
		}
		if err := s.FavoriteDAO.Create(tx, favorite); err != nil {
			return err
		}
		return target.Adjust(tx, dao.ColFavoriteCount, 1)
	})
}

func (s *FavoriteService) Unfavorite(ctx context.Context, userID uint64, req *types.FavoriteRequest) error {
	target, err := s.Targets.ResolveFavoriteTarget(ctx, req.TargetType, req.TargetID)
	if err != nil {
		return err
	}

	return s.FavoriteDAO.Transaction(ctx, func(tx *gorm.DB) error {
		rows, err := s.FavoriteDAO.Delete(tx, userID, target.Type, target.ID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return nil
		}
		return target.Adjust(tx, dao.ColFavoriteCount, -1)
	})
}

func (s *FavoriteService) ListByUser(ctx context.Context, userID uint64, targetType string, page, pageSize int) (*types.PageResult[*types.FavoriteItem], error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	favorites, err := s.FavoriteDAO.ListByUser(ctx, userID, targetType, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.FavoriteDAO.CountByUser(ctx, userID, targetType)
	if err != nil {
		return nil, err
	}

	var articleIDs, answerIDs []uint64
	for _, f := range favorites {
		switch f.TargetType {
		case TargetArticle:
			articleIDs = append(articleIDs, f.TargetID)
		case TargetAnswer:
			answerIDs = append(answerIDs, f.TargetID)
		}
	}
	articles, err := s.ArticleDAO.BatchGetByIDs(ctx, articleIDs)
	if err != nil {
		return nil, err
	}
	answers, err := s.AnswerDAO.BatchGetByIDs(ctx, answerIDs)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]uint64, 0, len(favorites))
	for _, a := range articles {
		authorIDs = append(authorIDs, a.UserID)
	}
	for _, a := range answers {
		authorIDs = append(authorIDs, a.UserID)
	}
	authors, err := s.UserDAO.BatchGetByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	items := make([]*types.FavoriteItem, 0, len(favorites))
	for _, f := range favorites {
		item := &types.FavoriteItem{
			ID:         f.ID,
			TargetType: f.TargetType,
			CreatedAt:  f.CreatedAt,
		}
		// 收藏后被删除的内容仍保留收藏行，此时摘要字段留空
		switch f.TargetType {
		case TargetArticle:
			if a, ok := articles[f.TargetID]; ok {
				createdAt := a.CreatedAt
				item.Target = types.FavoriteTargetInfo{ID: a.ID, Title: a.Title, CreatedAt: &createdAt}
				if u, ok := authors[a.UserID]; ok {
					item.Target.AuthorName = u.Nickname
				}
			}
		case TargetAnswer:
			if a, ok := answers[f.TargetID]; ok {
				createdAt := a.CreatedAt
				item.Target = types.FavoriteTargetInfo{ID: a.ID, CreatedAt: &createdAt}
				if u, ok := authors[a.UserID]; ok {
					item.Target.AuthorName = u.Nickname
				}
			}
		}
		items = append(items, item)
	}
	return types.NewPageResult(items, page, pageSize, total), nil
}
