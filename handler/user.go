package handler

import (
	"Nova/config"
	"Nova/pkg/context"
	"Nova/pkg/response"
	"Nova/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Config      *config.Config
	UserService service.IUserService
}

func (h *UserHandler) RegisterRouter(r gin.IRouter) {
	r.GET("/v1/users/:id", context.Wrap(h.GetProfile))
}

func (h *UserHandler) GetProfile(c *gin.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	user, err := h.UserService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}
