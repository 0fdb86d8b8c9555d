package handler

import (
	"Nova/config"
	"Nova/middleware"
	"Nova/pkg/context"
	"Nova/pkg/response"
	"Nova/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	Config        *config.Config
	FollowService service.IFollowService
}

func (h *FollowHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	viewer := middleware.OptionalAuth([]byte(h.Config.Jwt.Secret))

	users := r.Group("/v1/users")
	users.POST("/:id/follow", authorize, context.Wrap(h.Follow))
	users.DELETE("/:id/follow", authorize, context.Wrap(h.Unfollow))
	users.GET("/:id/following", viewer, context.Wrap(h.ListFollowing))
	users.GET("/:id/followers", viewer, context.Wrap(h.ListFollowers))
}

func (h *FollowHandler) Follow(c *gin.Context) error {
	followingID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	if err := h.FollowService.Follow(c.Request.Context(), userID, followingID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *FollowHandler) Unfollow(c *gin.Context) error {
	followingID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	if err := h.FollowService.Unfollow(c.Request.Context(), userID, followingID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *FollowHandler) ListFollowing(c *gin.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	page, pageSize := parsePageQuery(c)
	viewerID := context.GetOptionalUserID(c)
	result, err := h.FollowService.ListFollowing(c.Request.Context(), viewerID, userID, page, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *FollowHandler) ListFollowers(c *gin.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	page, pageSize := parsePageQuery(c)
	viewerID := context.GetOptionalUserID(c)
	result, err := h.FollowService.ListFollowers(c.Request.Context(), viewerID, userID, page, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}
