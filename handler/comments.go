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

type CommentsHandler struct {
	Config          *config.Config
	CommentsService service.ICommentService
}

func (ch *CommentsHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(ch.Config.Jwt.Secret))
	viewer := middleware.OptionalAuth([]byte(ch.Config.Jwt.Secret))

	comments := r.Group("/v1/comments")
	comments.POST("", authorize, context.Wrap(ch.CreateComment))
	comments.GET("", viewer, context.Wrap(ch.ListComments))
	comments.PUT("/:id", authorize, context.Wrap(ch.UpdateComment))
	comments.DELETE("/:id", authorize, context.Wrap(ch.DeleteComment))
	comments.POST("/:id/like", authorize, context.Wrap(ch.LikeComment))
	comments.POST("/:id/unlike", authorize, context.Wrap(ch.UnlikeComment))
	comments.POST("/:id/pin", authorize, context.Wrap(ch.PinComment))
	comments.POST("/:id/unpin", authorize, context.Wrap(ch.UnpinComment))
}

// CreateComment 创建评论或回复
func (ch *CommentsHandler) CreateComment(c *gin.Context) error {
	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	comment, err := ch.CommentsService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, comment)
	return nil
}

// ListComments 获取某个目标下的评论树，匿名可读
func (ch *CommentsHandler) ListComments(c *gin.Context) error {
	targetType := c.Query("target_type")
	targetID, err := strconv.ParseUint(c.Query("target_id"), 10, 64)
	if err != nil || targetID == 0 {
		return response.NewError(http.StatusBadRequest, "target_id参数错误")
	}
	page, pageSize := parsePageQuery(c)
	viewerID := context.GetOptionalUserID(c)

	result, err := ch.CommentsService.List(c.Request.Context(), viewerID, targetType, targetID, c.Query("sort"), page, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (ch *CommentsHandler) UpdateComment(c *gin.Context) error {
	commentID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	if err := ch.CommentsService.Update(c.Request.Context(), userID, commentID, req.Content); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (ch *CommentsHandler) DeleteComment(c *gin.Context) error {
	commentID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	if err := ch.CommentsService.Delete(c.Request.Context(), userID, commentID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (ch *CommentsHandler) LikeComment(c *gin.Context) error {
	commentID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	result, err := ch.CommentsService.Like(c.Request.Context(), userID, commentID)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (ch *CommentsHandler) UnlikeComment(c *gin.Context) error {
	commentID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	result, err := ch.CommentsService.Unlike(c.Request.Context(), userID, commentID)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (ch *CommentsHandler) PinComment(c *gin.Context) error {
	commentID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	if err := ch.CommentsService.Pin(c.Request.Context(), userID, commentID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (ch *CommentsHandler) UnpinComment(c *gin.Context) error {
	commentID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	if err := ch.CommentsService.Unpin(c.Request.Context(), userID, commentID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
