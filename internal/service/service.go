package service

import (
	"go.uber.org/zap"

	"musok-platform/backend/config"
	"musok-platform/backend/internal/repository"
	"musok-platform/backend/pkg/jwt"
	"musok-platform/backend/pkg/redis"
)

// Service 모든 Service 의 집약 진입점
type Service struct {
	Auth         AuthService
	Shaman       ShamanService
	Availability AvailabilityService
	Booking      BookingService
	Schedule     ScheduleService
	Export       ExportService
}

// NewService Service 집약체 생성
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	availability := NewAvailabilityService(cfg, repo, logger)
	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Shaman:       NewShamanService(repo, logger),
		Availability: availability,
		Booking:      NewBookingService(repo, availability, logger),
		Schedule:     NewScheduleService(repo, logger),
		Export:       NewExportService(repo, logger),
	}
}
