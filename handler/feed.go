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

type FeedHandler struct {
	Config      *config.Config
	FeedService service.IFeedService
}

func (h *FeedHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	r.GET("/v1/feed", authorize, context.Wrap(h.GetFeed))
}

// GetFeed 关注流，type 可选 all/articles/questions
func (h *FeedHandler) GetFeed(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	page, pageSize := parsePageQuery(c)
	feedType := c.DefaultQuery("type", "all")

	result, err := h.FeedService.GetFeed(c.Request.Context(), userID, feedType, page, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}
