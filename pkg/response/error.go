package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// 业务错误三类：参数/状态校验失败、无权操作、目标不存在。
// 核心服务只返回这三类 BizError 或底层存储错误。

func NewValidation(msg string) *BizError {
	return NewError(http.StatusBadRequest, msg)
}

func NewForbidden(msg string) *BizError {
	return NewError(http.StatusForbidden, msg)
}

func NewNotFound(msg string) *BizError {
	return NewError(http.StatusNotFound, msg)
}

func IsNotFound(err error) bool {
	be, ok := err.(*BizError)
	return ok && be.Code == http.StatusNotFound
}

func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.JSON(http.StatusInternalServerError, Response{
					Code: 500,
					Msg:  "系统异常",
				})
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			if be, ok := err.(*BizError); ok {
				Fail(c, be.Code, be.Msg)
			} else {
				Fail(c, 500, err.Error())
			}
			c.Abort()
		}
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
