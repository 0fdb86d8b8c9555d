package service

import (
	"Nova/dao"
	"Nova/pkg/response"
	"Nova/types"
	"context"

	"gorm.io/gorm"
)

var _ INotificationService = (*NotificationService)(nil)

type INotificationService interface {
	List(ctx context.Context, userID uint64, page, pageSize int) (*types.NotificationList, error)
	MarkRead(ctx context.Context, userID, notificationID uint64) error
	MarkAllRead(ctx context.Context, userID uint64) (int64, error)
	UnreadCount(ctx context.Context, userID uint64) (int64, error)
}

type NotificationService struct {
	NotificationDAO *dao.NotificationDAO
}

func (s *NotificationService) List(ctx context.Context, userID uint64, page, pageSize int) (*types.NotificationList, error) {
	page, pageSize = normalizePage(page, pageSize)
	rows, err := s.NotificationDAO.ListByUser(ctx, userID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.NotificationDAO.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	unread, err := s.NotificationDAO.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]*types.NotificationItem, 0, len(rows))
	for _, n := range rows {
		items = append(items, &types.NotificationItem{
			ID:         n.ID,
			SenderID:   n.SenderID,
			Type:       n.Type,
			Title:      n.Title,
			Content:    n.Content,
			TargetType: n.TargetType,
			TargetID:   n.TargetID,
			Read:       n.Read,
			CreatedAt:  n.CreatedAt,
		})
	}
	paged := types.NewPageResult(items, page, pageSize, total)
	return &types.NotificationList{
		Items:       items,
		Pagination:  paged.Pagination,
		UnreadCount: unread,
	}, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uint64) error {
	notification, err := s.NotificationDAO.GetByID(ctx, notificationID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NewNotFound("通知不存在")
		}
		return err
	}
	if notification.UserID != userID {
		return response.NewForbidden("只能操作自己的通知")
	}
	return s.NotificationDAO.MarkRead(ctx, notificationID)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint64) (int64, error) {
	return s.NotificationDAO.MarkAllRead(ctx, userID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	return s.NotificationDAO.CountUnread(ctx, userID)
}
