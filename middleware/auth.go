package middleware

import (
	"net/http"
	"strings"

	"Nova/pkg/jwt"
	"Nova/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 要求请求携带合法的 Bearer token，否则直接 401
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseAuthHeader(c, secret)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "未登录")
			return
		}
		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// OptionalAuth 允许匿名访问：没带 token 或 token 无效时查看者按 0 处理
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseAuthHeader(c, secret); ok {
			c.Set("user_id", claims.UserID)
		}
		c.Next()
	}
}

func parseAuthHeader(c *gin.Context, secret []byte) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}
	claims, err := jwt.ParseToken(secret, "access", parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}
