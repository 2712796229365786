package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"musok-platform/backend/pkg/response"
)

// BodyLimit 요청 본문 크기 제한 미들웨어.
// maxBytes 를 초과하는 본문은 읽는 시점에 실패한다
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				response.Error(c, http.StatusRequestEntityTooLarge, 10005, "요청 본문이 너무 큽니다")
				return
			}
		}
	}
}
