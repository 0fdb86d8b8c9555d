package service

import (
	"Nova/dao"
	"Nova/models"
	"Nova/types"
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

const (
	FeedTypeAll       = "all"
	FeedTypeArticles  = "articles"
	FeedTypeQuestions = "questions"
	FeedTypeVideos    = "videos"

	// all 模式下单个来源最多预取 500 条，避免深翻页时把关注历史全拉出来
	feedFetchCap = 500
)

var _ IFeedService = (*FeedService)(nil)

type IFeedService interface {
	GetFeed(ctx context.Context, userID uint64, feedType string, page, pageSize int) (*types.PageResult[*types.FeedItem], error)
}

type FeedService struct {
	FollowDAO   *dao.FollowDAO
	ArticleDAO  *dao.ArticleDAO
	QuestionDAO *dao.QuestionDAO
	UserDAO     *dao.UserDAO
}

func (s *FeedService) GetFeed(ctx context.Context, userID uint64, feedType string, page, pageSize int) (*types.PageResult[*types.FeedItem], error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	followingIDs, err := s.FollowDAO.GetFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	// 没有关注任何人就不发查询，直接返回空页
	if len(followingIDs) == 0 {
		return types.NewPageResult([]*types.FeedItem{}, page, pageSize, 0), nil
	}

	switch feedType {
	case FeedTypeArticles:
		return s.articlePage(ctx, followingIDs, page, pageSize)
	case FeedTypeQuestions:
		return s.questionPage(ctx, followingIDs, page, pageSize)
	case FeedTypeVideos:
		// 视频流尚未接入，固定返回空页
		return types.NewPageResult([]*types.FeedItem{}, page, pageSize, 0), nil
	default:
		return s.mergedPage(ctx, followingIDs, page, pageSize)
	}
}

func (s *FeedService) articlePage(ctx context.Context, authorIDs []uint64, page, pageSize int) (*types.PageResult[*types.FeedItem], error) {
	articles, err := s.ArticleDAO.ListByAuthors(ctx, authorIDs, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.ArticleDAO.CountByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	items, err := s.assemble(ctx, articles, nil)
	if err != nil {
		return nil, err
	}
	return types.NewPageResult(items, page, pageSize, total), nil
}

func (s *FeedService) questionPage(ctx context.Context, authorIDs []uint64, page, pageSize int) (*types.PageResult[*types.FeedItem], error) {
	questions, err := s.QuestionDAO.ListByAuthors(ctx, authorIDs, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.QuestionDAO.CountByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	items, err := s.assemble(ctx, nil, questions)
	if err != nil {
		return nil, err
	}
	return types.NewPageResult(items, page, pageSize, total), nil
}

// mergedPage 对每个来源按创建时间各预取一个窗口，归并后再切页。
// total 取各来源真实总数之和，深页的可用页数可能被高估，这是换取
// 不做全量跨源排序的代价
func (s *FeedService) mergedPage(ctx context.Context, authorIDs []uint64, page, pageSize int) (*types.PageResult[*types.FeedItem], error) {
	fetchSize := page * pageSize * 3
	if fetchSize > feedFetchCap {
		fetchSize = feedFetchCap
	}

	var (
		articles      []*models.Article
		questions     []*models.Question
		articleTotal  int64
		questionTotal int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		articles, err = s.ArticleDAO.ListByAuthors(gctx, authorIDs, 0, fetchSize)
		return err
	})
	g.Go(func() error {
		var err error
		questions, err = s.QuestionDAO.ListByAuthors(gctx, authorIDs, 0, fetchSize)
		return err
	})
	g.Go(func() error {
		var err error
		articleTotal, err = s.ArticleDAO.CountByAuthors(gctx, authorIDs)
		return err
	})
	g.Go(func() error {
		var err error
		questionTotal, err = s.QuestionDAO.CountByAuthors(gctx, authorIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged, err := s.assemble(ctx, articles, questions)
	if err != nil {
		return nil, err
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	start := (page - 1) * pageSize
	if start > len(merged) {
		start = len(merged)
	}
	end := start + pageSize
	if end > len(merged) {
		end = len(merged)
	}
	return types.NewPageResult(merged[start:end], page, pageSize, articleTotal+questionTotal), nil
}

// assemble 把两类内容行转成统一的流条目，对该类型无意义的计数字段留 nil
func (s *FeedService) assemble(ctx context.Context, articles []*models.Article, questions []*models.Question) ([]*types.FeedItem, error) {
	authorIDs := make([]uint64, 0, len(articles)+len(questions))
	for _, a := range articles {
		authorIDs = append(authorIDs, a.UserID)
	}
	for _, q := range questions {
		authorIDs = append(authorIDs, q.UserID)
	}
	authors, err := s.UserDAO.BatchGetByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	items := make([]*types.FeedItem, 0, len(articles)+len(questions))
	for _, a := range articles {
		likeCount, commentCount := a.LikeCount, a.CommentCount
		items = append(items, &types.FeedItem{
			Type: TargetArticle,
			Content: types.FeedContent{
				ID:           a.ID,
				Title:        a.Title,
				Summary:      a.Summary,
				CoverImage:   a.CoverImage,
				ViewCount:    a.ViewCount,
				LikeCount:    &likeCount,
				CommentCount: &commentCount,
			},
			Author:    authorSummary(authors, a.UserID),
			CreatedAt: a.CreatedAt,
		})
	}
	for _, q := range questions {
		answerCount, followCount := q.AnswerCount, q.FollowCount
		items = append(items, &types.FeedItem{
			Type: "question",
			Content: types.FeedContent{
				ID:          q.ID,
				Title:       q.Title,
				Summary:     q.Description,
				ViewCount:   q.ViewCount,
				AnswerCount: &answerCount,
				FollowCount: &followCount,
			},
			Author:    authorSummary(authors, q.UserID),
			CreatedAt: q.CreatedAt,
		})
	}
	return items, nil
}

func authorSummary(authors map[uint64]*models.User, userID uint64) types.UserSummary {
	if u, ok := authors[userID]; ok {
		return types.UserSummary{ID: u.ID, Nickname: u.Nickname, Avatar: u.Avatar}
	}
	return types.UserSummary{ID: userID}
}
