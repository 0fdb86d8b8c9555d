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

type AnswerHandler struct {
	Config        *config.Config
	AnswerService service.IAnswerService
	VoteService   service.IVoteService
}

func (h *AnswerHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	viewer := middleware.OptionalAuth([]byte(h.Config.Jwt.Secret))

	r.POST("/v1/questions/:id/answers", authorize, context.Wrap(h.CreateAnswer))
	r.GET("/v1/questions/:id/answers", viewer, context.Wrap(h.ListAnswers))

	answers := r.Group("/v1/answers")
	answers.PUT("/:id", authorize, context.Wrap(h.UpdateAnswer))
	answers.DELETE("/:id", authorize, context.Wrap(h.DeleteAnswer))
	answers.POST("/:id/vote", authorize, context.Wrap(h.Vote))
	answers.DELETE("/:id/vote", authorize, context.Wrap(h.CancelVote))
}

func (h *AnswerHandler) CreateAnswer(c *gin.Context) error {
	questionID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req types.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	answer, err := h.AnswerService.Create(c.Request.Context(), userID, questionID, &req)
	if err != nil {
		return err
	}
	response.Success(c, answer)
	return nil
}

func (h *AnswerHandler) ListAnswers(c *gin.Context) error {
	questionID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	page, pageSize := parsePageQuery(c)
	viewerID := context.GetOptionalUserID(c)

	result, err := h.AnswerService.ListByQuestion(c.Request.Context(), viewerID, questionID, c.Query("sort"), page, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *AnswerHandler) UpdateAnswer(c *gin.Context) error {
	answerID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req types.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	if err := h.AnswerService.Update(c.Request.Context(), userID, answerID, &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *AnswerHandler) DeleteAnswer(c *gin.Context) error {
	answerID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	if err := h.AnswerService.Delete(c.Request.Context(), userID, answerID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// Vote 对回答投票，重复同向投票幂等
func (h *AnswerHandler) Vote(c *gin.Context) error {
	answerID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req types.AnswerVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	result, err := h.VoteService.Vote(c.Request.Context(), userID, answerID, req.Type)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *AnswerHandler) CancelVote(c *gin.Context) error {
	answerID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	result, err := h.VoteService.CancelVote(c.Request.Context(), userID, answerID)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}
