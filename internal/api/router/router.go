package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"musok-platform/backend/config"
	"musok-platform/backend/internal/api/handler"
	"musok-platform/backend/internal/api/middleware"
	"musok-platform/backend/pkg/jwt"
	"musok-platform/backend/pkg/redis"
)

// Setup Gin 라우터 엔진 초기화
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 전역 미들웨어 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB

	// ── 헬스 체크 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 인증 모듈 (비인증). 크리덴셜 스터핑 방지를 위해 속도 제한 적용
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			auth.POST("/signup", h.Auth.Signup)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// 공개 조회 (비인증): 무속인 탐색과 가용 슬롯 확인
		v1.GET("/shamans", h.Shaman.List)
		v1.GET("/bookings/available-slots", h.Booking.AvailableSlots)

		// 인증 필요 라우트
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 인증 모듈 (인증 필요)
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// 무속인 모듈
			// /shamans/me 는 /shamans/:id 보다 먼저 등록해야 한다
			authorized.GET("/shamans/me", middleware.RoleAuth("shaman"), h.Shaman.GetMyProfile)
			authorized.PUT("/shamans/me", middleware.RoleAuth("shaman"), h.Shaman.UpdateMyProfile)
			authorized.GET("/shamans/:id", h.Shaman.Get)

			// 예약 모듈
			bookings := authorized.Group("/bookings")
			{
				bookings.POST("", middleware.RoleAuth("customer"), h.Booking.Create)
				bookings.POST("/manual", middleware.RoleAuth("shaman"), h.Booking.CreateManual)
				bookings.GET("", h.Booking.List)
				bookings.GET("/:id", h.Booking.Get)
				bookings.PATCH("/:id/status", middleware.RoleAuth("customer", "shaman"), h.Booking.UpdateStatus)
			}

			// 일정 모듈 (무속인 전용)
			schedule := authorized.Group("/schedule", middleware.RoleAuth("shaman"))
			{
				schedule.GET("", h.Schedule.Get)
				schedule.PUT("/weekly-hours", h.Schedule.SaveWeeklyHours)
				schedule.POST("/off-days", h.Schedule.AddOffDay)
				schedule.DELETE("/off-days/:id", h.Schedule.DeleteOffDay)
			}

			// 대시보드 모듈 (무속인 전용)
			dashboard := authorized.Group("/dashboard", middleware.RoleAuth("shaman"))
			{
				dashboard.GET("/day", h.Booking.DayView)
				dashboard.GET("/calendar", h.Booking.MonthlyCalendar)
			}

			// 내보내기 모듈 (무속인 전용)
			export := authorized.Group("/export", middleware.RoleAuth("shaman"))
			{
				export.GET("/bookings", h.Export.ExportBookings)
				export.GET("/calendar.ics", h.Export.CalendarFeed)
			}

			// 관리자 모듈
			admin := authorized.Group("/admin", middleware.RoleAuth("admin"))
			{
				admin.GET("/shamans/pending", h.Shaman.ListPending)
				admin.PUT("/shamans/:id/review", h.Shaman.Review)
			}
		}
	}

	return r
}
