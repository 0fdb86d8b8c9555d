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

type QuestionHandler struct {
	Config          *config.Config
	QuestionService service.IQuestionService
}

func (h *QuestionHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	viewer := middleware.OptionalAuth([]byte(h.Config.Jwt.Secret))

	questions := r.Group("/v1/questions")
	questions.POST("", authorize, context.Wrap(h.Create))
	questions.GET("/:id", viewer, context.Wrap(h.Get))
	questions.POST("/:id/follow", authorize, context.Wrap(h.Follow))
	questions.DELETE("/:id/follow", authorize, context.Wrap(h.Unfollow))
}

func (h *QuestionHandler) Create(c *gin.Context) error {
	var req types.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	question, err := h.QuestionService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, question)
	return nil
}

func (h *QuestionHandler) Get(c *gin.Context) error {
	questionID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	viewerID := context.GetOptionalUserID(c)
	question, err := h.QuestionService.Get(c.Request.Context(), viewerID, questionID)
	if err != nil {
		return err
	}
	response.Success(c, question)
	return nil
}

func (h *QuestionHandler) Follow(c *gin.Context) error {
	questionID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	if err := h.QuestionService.FollowQuestion(c.Request.Context(), userID, questionID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *QuestionHandler) Unfollow(c *gin.Context) error {
	questionID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	if err := h.QuestionService.UnfollowQuestion(c.Request.Context(), userID, questionID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
