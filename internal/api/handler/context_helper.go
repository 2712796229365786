package handler

import (
	"github.com/gin-gonic/gin"

	"musok-platform/backend/internal/model"
	"musok-platform/backend/pkg/response"
)

// MustGetUserID Gin 컨텍스트에서 user_id 를 안전하게 추출한다.
// JWT 미들웨어가 주입하지 않았으면 401 응답을 쓰고 false 를 반환하므로
// 호출 측은 ok=false 일 때 바로 return 하면 된다.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return "", false
	}
	return s, true
}

// MustGetRole Gin 컨텍스트에서 role 을 안전하게 추출한다.
func MustGetRole(c *gin.Context) (model.Role, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return "", false
	}
	s, ok := v.(string)
	if !ok || !model.Role(s).IsValid() {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return "", false
	}
	return model.Role(s), true
}
