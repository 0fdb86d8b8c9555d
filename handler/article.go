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

type ArticleHandler struct {
	Config         *config.Config
	ArticleService service.IArticleService
}

func (h *ArticleHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	articles := r.Group("/v1/articles")
	articles.POST("", authorize, context.Wrap(h.Create))
	articles.GET("/:id", context.Wrap(h.Get))
	articles.PUT("/:id", authorize, context.Wrap(h.Update))
	articles.DELETE("/:id", authorize, context.Wrap(h.Delete))

	r.GET("/v1/users/:id/articles", context.Wrap(h.ListByAuthor))
}

func (h *ArticleHandler) Create(c *gin.Context) error {
	var req types.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	article, err := h.ArticleService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, article)
	return nil
}

func (h *ArticleHandler) Get(c *gin.Context) error {
	articleID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	article, err := h.ArticleService.Get(c.Request.Context(), articleID)
	if err != nil {
		return err
	}
	response.Success(c, article)
	return nil
}

func (h *ArticleHandler) Update(c *gin.Context) error {
	articleID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req types.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	if err := h.ArticleService.Update(c.Request.Context(), userID, articleID, &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *ArticleHandler) Delete(c *gin.Context) error {
	articleID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	if err := h.ArticleService.Delete(c.Request.Context(), userID, articleID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *ArticleHandler) ListByAuthor(c *gin.Context) error {
	authorID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	page, pageSize := parsePageQuery(c)
	result, err := h.ArticleService.ListByAuthor(c.Request.Context(), authorID, page, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}
