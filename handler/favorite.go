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

type FavoriteHandler struct {
	Config          *config.Config
	FavoriteService service.IFavoriteService
}

func (h *FavoriteHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	favorites := r.Group("/v1/favorites")
	favorites.POST("", authorize, context.Wrap(h.Favorite))
	favorites.DELETE("", authorize, context.Wrap(h.Unfavorite))
	favorites.GET("", authorize, context.Wrap(h.List))
}

func (h *FavoriteHandler) Favorite(c *gin.Context) error {
	var req types.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	if err := h.FavoriteService.Favorite(c.Request.Context(), userID, &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *FavoriteHandler) Unfavorite(c *gin.Context) error {
	var req types.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	if err := h.FavoriteService.Unfavorite(c.Request.Context(), userID, &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *FavoriteHandler) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	page, pageSize := parsePageQuery(c)
	result, err := h.FavoriteService.ListByUser(c.Request.Context(), userID, c.Query("target_type"), page, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}
