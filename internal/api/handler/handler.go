package handler

import "musok-platform/backend/internal/service"

// Handler 모든 Handler 의 집약 진입점
type Handler struct {
	Auth     *AuthHandler
	Shaman   *ShamanHandler
	Booking  *BookingHandler
	Schedule *ScheduleHandler
	Export   *ExportHandler
}

// NewHandler Handler 집약체 생성
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(svc.Auth),
		Shaman:   NewShamanHandler(svc.Shaman),
		Booking:  NewBookingHandler(svc.Booking, svc.Availability),
		Schedule: NewScheduleHandler(svc.Schedule),
		Export:   NewExportHandler(svc.Export),
	}
}
