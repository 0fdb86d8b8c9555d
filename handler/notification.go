package handler

import (
	"Nova/config"
	"Nova/middleware"
	"Nova/pkg/context"
	"Nova/pkg/response"
	"Nova/service"
	"Nova/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	Config              *config.Config
	NotificationService service.INotificationService
}

func (h *NotificationHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	notifications := r.Group("/v1/notifications", authorize)
	notifications.GET("", context.Wrap(h.List))
	notifications.POST("/:id/read", context.Wrap(h.MarkRead))
	notifications.POST("/read-all", context.Wrap(h.MarkAllRead))
	notifications.GET("/unread-count", context.Wrap(h.UnreadCount))
}

func (h *NotificationHandler) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	page, pageSize := parsePageQuery(c)
	result, err := h.NotificationService.List(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *NotificationHandler) MarkRead(c *gin.Context) error {
	notificationID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	if err := h.NotificationService.MarkRead(c.Request.Context(), userID, notificationID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	updated, err := h.NotificationService.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, types.NotificationMarkAllResponse{Updated: updated})
	return nil
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	count, err := h.NotificationService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, types.NotificationUnreadCountResponse{Count: count})
	return nil
}
