package service

import (
	"Nova/dao"
	"Nova/models"
	"Nova/pkg/log"
	"Nova/pkg/response"
	"Nova/pkg/snowflake"
	"Nova/types"
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IArticleService = (*ArticleService)(nil)

type IArticleService interface {
	Create(ctx context.Context, userID uint64, req *types.ArticleRequest) (*types.ArticleResponse, error)
	Get(ctx context.Context, articleID uint64) (*types.ArticleResponse, error)
	Update(ctx context.Context, userID, articleID uint64, req *types.ArticleRequest) error
	Delete(ctx context.Context, userID, articleID uint64) error
	ListByAuthor(ctx context.Context, authorID uint64, page, pageSize int) (*types.PageResult[*types.ArticleResponse], error)
}

type ArticleService struct {
	ArticleDAO *dao.ArticleDAO
	UserDAO    *dao.UserDAO
}

func (s *ArticleService) Create(ctx context.Context, userID uint64, req *types.ArticleRequest) (*types.ArticleResponse, error) {
	article := &models.Article{
		ID:         uint64(snowflake.GenID()),
		UserID:     userID,
		Title:      req.Title,
		Summary:    req.Summary,
		CoverImage: req.CoverImage,
		Content:    req.Content,
	}
	if err := s.ArticleDAO.Create(ctx, article); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, article), nil
}

func (s *ArticleService) Get(ctx context.Context, articleID uint64) (*types.ArticleResponse, error) {
	article, err := s.ArticleDAO.GetByID(ctx, articleID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, response.NewNotFound("文章不存在")
		}
		return nil, err
	}
	// 浏览数直接在读路径自增，失败不影响内容返回
	if err := dao.AdjustCounter(s.ArticleDAO.Db.WithContext(ctx), &models.Article{}, articleID, dao.ColViewCount, 1); err != nil {
		log.L.Warn("浏览数自增失败", zap.Uint64("article_id", articleID), zap.Error(err))
	} else {
		article.ViewCount++
	}
	return s.toResponse(ctx, article), nil
}

func (s *ArticleService) Update(ctx context.Context, userID, articleID uint64, req *types.ArticleRequest) error {
	article, err := s.ArticleDAO.GetByID(ctx, articleID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NewNotFound("文章不存在")
		}
		return err
	}
	if article.UserID != userID {
		return response.NewForbidden("只能修改自己的文章")
	}
	return s.ArticleDAO.Update(ctx, articleID, map[string]any{
		"title":       req.Title,
		"summary":     req.Summary,
		"cover_image": req.CoverImage,
		"content":     req.Content,
	})
}

func (s *ArticleService) Delete(ctx context.Context, userID, articleID uint64) error {
	article, err := s.ArticleDAO.GetByID(ctx, articleID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// 已删除的文章重复删除直接成功
			return nil
		}
		return err
	}
	if article.UserID != userID {
		return response.NewForbidden("只能删除自己的文章")
	}
	return s.ArticleDAO.SoftDelete(ctx, articleID, time.Now())
}

func (s *ArticleService) ListByAuthor(ctx context.Context, authorID uint64, page, pageSize int) (*types.PageResult[*types.ArticleResponse], error) {
	page, pageSize = normalizePage(page, pageSize)
	articles, err := s.ArticleDAO.ListByAuthors(ctx, []uint64{authorID}, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.ArticleDAO.CountByAuthors(ctx, []uint64{authorID})
	if err != nil {
		return nil, err
	}
	author := types.UserSummary{ID: authorID}
	if u, err := s.UserDAO.GetByID(ctx, authorID); err == nil {
		author = types.UserSummary{ID: u.ID, Nickname: u.Nickname, Avatar: u.Avatar}
	}
	items := make([]*types.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		resp := buildArticleResponse(a)
		resp.Author = author
		items = append(items, resp)
	}
	return types.NewPageResult(items, page, pageSize, total), nil
}

func (s *ArticleService) toResponse(ctx context.Context, article *models.Article) *types.ArticleResponse {
	resp := buildArticleResponse(article)
	if author, err := s.UserDAO.GetByID(ctx, article.UserID); err == nil {
		resp.Author = types.UserSummary{ID: author.ID, Nickname: author.Nickname, Avatar: author.Avatar}
	}
	return resp
}

func buildArticleResponse(article *models.Article) *types.ArticleResponse {
	return &types.ArticleResponse{
		ID:            article.ID,
		Title:         article.Title,
		Summary:       article.Summary,
		CoverImage:    article.CoverImage,
		Content:       article.Content,
		ViewCount:     article.ViewCount,
		LikeCount:     article.LikeCount,
		CommentCount:  article.CommentCount,
		FavoriteCount: article.FavoriteCount,
		CreatedAt:     article.CreatedAt,
		Author:        types.UserSummary{ID: article.UserID},
	}
}
