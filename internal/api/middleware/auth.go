package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"musok-platform/backend/pkg/jwt"
	"musok-platform/backend/pkg/redis"
	"musok-platform/backend/pkg/response"
)

// JWTAuth JWT 인증 미들웨어.
// Authorization: Bearer <token> 에서 Access Token 을 추출해 검증하고,
// Redis 블랙리스트(로그아웃된 토큰)를 확인한다. rdb 가 nil 이면 생략.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "인증 헤더가 없습니다")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "인증 헤더 형식이 잘못되었습니다")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "토큰이 유효하지 않거나 만료되었습니다")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "토큰 유형이 잘못되었습니다")
			c.Abort()
			return
		}

		if rdb != nil {
			blacklisted, err := rdb.IsTokenBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && blacklisted {
				response.Unauthorized(c, 10002, "로그아웃된 토큰입니다")
				c.Abort()
				return
			}
		}

		// 사용자 정보를 컨텍스트에 주입
		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RoleAuth 역할 권한 미들웨어.
// 현재 사용자가 지정된 역할 중 하나인지 확인한다.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, 10002, "인증되지 않았습니다")
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "접근 권한이 없습니다")
		c.Abort()
	}
}
