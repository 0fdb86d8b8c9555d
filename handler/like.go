package handler

import (
	"Nova/config"
	"Nova/middleware"
	"Nova/pkg/context"
	"Nova/pkg/response"
	"Nova/service"
	"Nova/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	Config      *config.Config
	LikeService service.ILikeService
}

func (h *LikeHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	viewer := middleware.OptionalAuth([]byte(h.Config.Jwt.Secret))

	likes := r.Group("/v1/likes")
	likes.POST("", authorize, context.Wrap(h.Like))
	likes.DELETE("", authorize, context.Wrap(h.Unlike))
	likes.GET("/status", viewer, context.Wrap(h.Status))
}

func (h *LikeHandler) Like(c *gin.Context) error {
	var req types.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	result, err := h.LikeService.Like(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *LikeHandler) Unlike(c *gin.Context) error {
	var req types.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	result, err := h.LikeService.Unlike(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *LikeHandler) Status(c *gin.Context) error {
	targetType := c.Query("target_type")
	targetID, err := strconv.ParseUint(c.Query("target_id"), 10, 64)
	if err != nil || targetID == 0 {
		return response.NewError(http.StatusBadRequest, "target_id参数错误")
	}
	viewerID := context.GetOptionalUserID(c)
	result, err := h.LikeService.Status(c.Request.Context(), viewerID, targetType, targetID)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}
