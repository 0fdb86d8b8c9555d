package handler

import (
	"net/http"
	"strconv"

	"Nova/pkg/response"

	"github.com/gin-gonic/gin"
)

func parseIDParam(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(http.StatusBadRequest, name+"参数错误")
	}
	return id, nil
}

func parsePageQuery(c *gin.Context) (int, int) {
	page := 1
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	pageSize := 20
	if v, err := strconv.Atoi(c.Query("page_size")); err == nil && v > 0 && v <= 100 {
		pageSize = v
	}
	return page, pageSize
}
