package service

import (
	"Nova/dao"
	"Nova/dao/cache"
	"Nova/models"
	"Nova/pkg/log"
	"Nova/pkg/response"
	"Nova/pkg/snowflake"
	"Nova/types"
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 顶级评论下最多展开 5 层回复，更深的回复不随列表返回
const maxReplyDepth = 5

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	Create(ctx context.Context, userID uint64, req *types.CreateCommentRequest) (*types.CommentResponse, error)
	List(ctx context.Context, viewerID uint64, targetType string, targetID uint64, sort string, page, pageSize int) (*types.PageResult[*types.CommentListItem], error)
	Update(ctx context.Context, userID, commentID uint64, content string) error
	Delete(ctx context.Context, userID, commentID uint64) error
	Like(ctx context.Context, userID, commentID uint64) (*types.CommentLikeResponse, error)
	Unlike(ctx context.Context, userID, commentID uint64) (*types.CommentLikeResponse, error)
	Pin(ctx context.Context, userID, commentID uint64) error
	Unpin(ctx context.Context, userID, commentID uint64) error
}

type CommentService struct {
	CommentDAO      *dao.CommentDAO
	LikeDAO         *dao.LikeDAO
	UserDAO         *dao.UserDAO
	NotificationDAO *dao.NotificationDAO
	LikedCache      *cache.LikedCache
	Targets         ITargetService
}

func (s *CommentService) Create(ctx context.Context, userID uint64, req *types.CreateCommentRequest) (*types.CommentResponse, error) {
	target, err := s.Targets.ResolveCommentTarget(ctx, req.TargetType, req.TargetID)
	if err != nil {
		return nil, err
	}

	var parent *models.Comment
	if req.ParentID != nil {
		parent, err = s.CommentDAO.GetByID(ctx, *req.ParentID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, response.NewNotFound("父评论不存在")
			}
			return nil, err
		}
		// 回复必须挂在同一个目标下的评论上
		if parent.TargetType != req.TargetType || parent.TargetID != req.TargetID {
			return nil, response.NewValidation("父评论不属于该目标")
		}
	}

	comment := &models.Comment{
		ID:         uint64(snowflake.GenID()),
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
		UserID:     userID,
		ParentID:   req.ParentID,
		Content:    strings.TrimSpace(req.Content),
	}

	err = s.CommentDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.CommentDAO.Create(tx, comment); err != nil {
			return err
		}
		if err := target.Adjust(tx, dao.ColCommentCount, 1); err != nil {
			return err
		}
		if parent != nil {
			return dao.AdjustCounter(tx, &models.Comment{}, parent.ID, dao.ColReplyCount, 1)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyTargetOwner(ctx, userID, target, comment)

	return &types.CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}, nil
}

// notifyTargetOwner 给目标作者写一条评论通知，失败只记日志不影响主流程
func (s *CommentService) notifyTargetOwner(ctx context.Context, userID uint64, target *TargetContext, comment *models.Comment) {
	if target.OwnerID == 0 || target.OwnerID == userID {
		return
	}
	notification := &models.Notification{
		ID:         uint64(snowflake.GenID()),
		UserID:     target.OwnerID,
		SenderID:   userID,
		Type:       "comment",
		Title:      "收到新评论",
		Content:    comment.Content,
		TargetType: target.Type,
		TargetID:   target.ID,
	}
	if err := s.NotificationDAO.Create(ctx, notification); err != nil {
		log.L.Warn("写入评论通知失败",
			zap.Uint64("comment_id", comment.ID),
			zap.Uint64("owner_id", target.OwnerID),
			zap.Error(err))
	}
}

func (s *CommentService) List(ctx context.Context, viewerID uint64, targetType string, targetID uint64, sort string, page, pageSize int) (*types.PageResult[*types.CommentListItem], error) {
	if _, err := s.Targets.ResolveCommentTarget(ctx, targetType, targetID); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	topLevel, err := s.CommentDAO.ListTopLevel(ctx, targetType, targetID, sort, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.CommentDAO.CountTopLevel(ctx, targetType, targetID)
	if err != nil {
		return nil, err
	}

	all := make([]*models.Comment, 0, len(topLevel))
	all = append(all, topLevel...)

	// 逐层加载回复，某一层为空就提前结束
	frontier := commentIDs(topLevel)
	for depth := 0; depth < maxReplyDepth && len(frontier) > 0; depth++ {
		children, err := s.CommentDAO.ListByParentIDs(ctx, frontier)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			break
		}
		all = append(all, children...)
		frontier = commentIDs(children)
	}

	likedMap, err := s.LikeDAO.BatchCheckLiked(ctx, viewerID, TargetComment, commentIDs(all))
	if err != nil {
		return nil, err
	}
	authorMap, err := s.UserDAO.BatchGetByIDs(ctx, commentUserIDs(all))
	if err != nil {
		return nil, err
	}

	items := assembleCommentTree(topLevel, all, likedMap, authorMap)
	return types.NewPageResult(items, page, pageSize, total), nil
}

func commentIDs(comments []*models.Comment) []uint64 {
	ids := make([]uint64, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}
	return ids
}

func commentUserIDs(comments []*models.Comment) []uint64 {
	seen := make(map[uint64]struct{}, len(comments))
	ids := make([]uint64, 0, len(comments))
	for _, c := range comments {
		if _, ok := seen[c.UserID]; ok {
			continue
		}
		seen[c.UserID] = struct{}{}
		ids = append(ids, c.UserID)
	}
	return ids
}

// assembleCommentTree 把打平的评论集合组装成嵌套树，
// 回复只挂到直接父节点上，顺序为创建时间升序
func assembleCommentTree(topLevel, all []*models.Comment, likedMap map[uint64]bool, authorMap map[uint64]*models.User) []*types.CommentListItem {
	nodes := make(map[uint64]*types.CommentListItem, len(all))
	for _, c := range all {
		item := &types.CommentListItem{
			ID:         c.ID,
			Content:    c.Content,
			ParentID:   c.ParentID,
			LikeCount:  c.LikeCount,
			ReplyCount: c.ReplyCount,
			Liked:      likedMap[c.ID],
			Pinned:     c.IsPinned(),
			CreatedAt:  c.CreatedAt,
			Replies:    []*types.CommentListItem{},
		}
		if author, ok := authorMap[c.UserID]; ok {
			item.Author = types.UserSummary{ID: author.ID, Nickname: author.Nickname, Avatar: author.Avatar}
		}
		nodes[c.ID] = item
	}
	// ListByParentIDs 已按创建时间升序返回，按序追加即可
	for _, c := range all {
		if c.ParentID == nil {
			continue
		}
		if parent, ok := nodes[*c.ParentID]; ok {
			parent.Replies = append(parent.Replies, nodes[c.ID])
		}
	}
	items := make([]*types.CommentListItem, 0, len(topLevel))
	for _, c := range topLevel {
		items = append(items, nodes[c.ID])
	}
	return items
}

func (s *CommentService) Update(ctx context.Context, userID, commentID uint64, content string) error {
	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NewNotFound("评论不存在")
		}
		return err
	}
	if comment.UserID != userID {
		return response.NewForbidden("只能修改自己的评论")
	}
	return s.CommentDAO.UpdateContent(ctx, commentID, strings.TrimSpace(content))
}

func (s *CommentService) Delete(ctx context.Context, userID, commentID uint64) error {
	comment, err := s.CommentDAO.GetByIDAny(ctx, commentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NewNotFound("评论不存在")
		}
		return err
	}
	target, err := s.Targets.ResolveCommentTarget(ctx, comment.TargetType, comment.TargetID)
	if err != nil && !response.IsNotFound(err) {
		return err
	}
	if comment.UserID != userID && (target == nil || target.OwnerID != userID) {
		return response.NewForbidden("无权删除该评论")
	}
	// 已删除的评论重复删除直接成功，计数不再扣减
	if comment.IsDeleted() {
		return nil
	}

	return s.CommentDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.CommentDAO.SoftDelete(tx, commentID, time.Now()); err != nil {
			return err
		}
		if target != nil {
			if err := target.Adjust(tx, dao.ColCommentCount, -1); err != nil {
				return err
			}
		}
		if comment.ParentID != nil {
			return dao.AdjustCounter(tx, &models.Comment{}, *comment.ParentID, dao.ColReplyCount, -1)
		}
		return nil
	})
}

func (s *CommentService) Like(ctx context.Context, userID, commentID uint64) (*types.CommentLikeResponse, error) {
	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, response.NewNotFound("评论不存在")
		}
		return nil, err
	}

	liked, err := s.isCommentLiked(ctx, userID, commentID)
	if err != nil {
		return nil, err
	}
	if !liked {
		err = s.CommentDAO.Transaction(ctx, func(tx *gorm.DB) error {
			like := &models.Like{
				ID:         uint64(snowflake.GenID()),
				UserID:     userID,
				TargetType: TargetComment,
				TargetID:   commentID,
			}
			if err := s.LikeDAO.Create(tx, like); err != nil {
				return err
			}
			return dao.AdjustCounter(tx, &models.Comment{}, commentID, dao.ColLikeCount, 1)
		})
		if err != nil {
			return nil, err
		}
		if err := s.LikedCache.Add(ctx, userID, commentID); err != nil {
			log.L.Warn("点赞缓存写入失败", zap.Uint64("comment_id", commentID), zap.Error(err))
		}
	}

	count, err := dao.ReadCounter(s.CommentDAO.Db, &models.Comment{}, comment.ID, dao.ColLikeCount)
	if err != nil {
		return nil, err
	}
	return &types.CommentLikeResponse{LikeCount: count, Liked: true}, nil
}

func (s *CommentService) Unlike(ctx context.Context, userID, commentID uint64) (*types.CommentLikeResponse, error) {
	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, response.NewNotFound("评论不存在")
		}
		return nil, err
	}

	err = s.CommentDAO.Transaction(ctx, func(tx *gorm.DB) error {
		rows, err := s.LikeDAO.Delete(tx, userID, TargetComment, commentID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return nil
		}
		return dao.AdjustCounter(tx, &models.Comment{}, commentID, dao.ColLikeCount, -1)
	})
	if err != nil {
		return nil, err
	}
	if err := s.LikedCache.Remove(ctx, userID, commentID); err != nil {
		log.L.Warn("点赞缓存清除失败", zap.Uint64("comment_id", commentID), zap.Error(err))
	}

	count, err := dao.ReadCounter(s.CommentDAO.Db, &models.Comment{}, comment.ID, dao.ColLikeCount)
	if err != nil {
		return nil, err
	}
	return &types.CommentLikeResponse{LikeCount: count, Liked: false}, nil
}

func (s *CommentService) isCommentLiked(ctx context.Context, userID, commentID uint64) (bool, error) {
	if liked, hit := s.LikedCache.IsLiked(ctx, userID, commentID); hit && liked {
		return true, nil
	}
	return s.LikeDAO.Exists(ctx, userID, TargetComment, commentID)
}

func (s *CommentService) Pin(ctx context.Context, userID, commentID uint64) error {
	comment, target, err := s.loadForPin(ctx, userID, commentID)
	if err != nil {
		return err
	}
	if comment.IsPinned() {
		return nil
	}
	// 先清掉同目标下的旧置顶再设置新置顶，同一事务内保证互斥
	return s.CommentDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.CommentDAO.UnpinAll(tx, target.Type, target.ID); err != nil {
			return err
		}
		return s.CommentDAO.Pin(tx, commentID)
	})
}

func (s *CommentService) Unpin(ctx context.Context, userID, commentID uint64) error {
	comment, _, err := s.loadForPin(ctx, userID, commentID)
	if err != nil {
		return err
	}
	if !comment.IsPinned() {
		return nil
	}
	return s.CommentDAO.UnpinAll(s.CommentDAO.Db.WithContext(ctx), comment.TargetType, comment.TargetID)
}

func (s *CommentService) loadForPin(ctx context.Context, userID, commentID uint64) (*models.Comment, *TargetContext, error) {
	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, response.NewNotFound("评论不存在")
		}
		return nil, nil, err
	}
	target, err := s.Targets.ResolveCommentTarget(ctx, comment.TargetType, comment.TargetID)
	if err != nil {
		return nil, nil, err
	}
	if target.OwnerID != userID {
		return nil, nil, response.NewForbidden("只有目标作者可以置顶评论")
	}
	return comment, target, nil
}
