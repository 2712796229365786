package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"musok-platform/backend/internal/dto"
	"musok-platform/backend/internal/service"
	"musok-platform/backend/pkg/response"
)

// BookingHandler 예약 모듈 HTTP 처리기
type BookingHandler struct {
	bookingSvc      service.BookingService
	availabilitySvc service.AvailabilityService
}

// NewBookingHandler BookingHandler 생성
func NewBookingHandler(bookingSvc service.BookingService, availabilitySvc service.AvailabilityService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc, availabilitySvc: availabilitySvc}
}

// AvailableSlots 예약 가능 시간대 조회 (공개)
// GET /api/v1/bookings/available-slots?shaman_id=xxx&date=YYYY-MM-DD
func (h *BookingHandler) AvailableSlots(c *gin.Context) {
	var req dto.AvailableSlotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "조회 조건 검증에 실패했습니다")
		return
	}

	slots, err := h.availabilitySvc.AvailableSlots(c.Request.Context(), req.ShamanID, req.Date)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, gin.H{"slots": slots})
}

// Create 온라인 예약 생성 (고객)
// POST /api/v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 값 검증에 실패했습니다")
		return
	}

	booking, err := h.bookingSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.Created(c, booking)
}

// CreateManual 수동 예약 생성 (무속인)
// POST /api/v1/bookings/manual
func (h *BookingHandler) CreateManual(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateManualBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 값 검증에 실패했습니다")
		return
	}

	booking, err := h.bookingSvc.CreateManual(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.Created(c, booking)
}

// List 예약 목록 (역할별 범위 제한)
// GET /api/v1/bookings?status=pending
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.BookingListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "조회 조건 검증에 실패했습니다")
		return
	}

	list, err := h.bookingSvc.List(c.Request.Context(), userID, role, req.Status)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// Get 예약 상세
// GET /api/v1/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "예약 ID가 없습니다")
		return
	}

	booking, err := h.bookingSvc.GetByID(c.Request.Context(), id, userID, role)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, booking)
}

// UpdateStatus 예약 상태 전이 (승인/거절/완료/취소)
// PATCH /api/v1/bookings/:id/status
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "예약 ID가 없습니다")
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 값 검증에 실패했습니다")
		return
	}

	booking, err := h.bookingSvc.UpdateStatus(c.Request.Context(), id, userID, role, &req)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, booking)
}

// DayView 일별 현황 (무속인 대시보드)
// GET /api/v1/dashboard/day?date=YYYY-MM-DD
func (h *BookingHandler) DayView(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.DayViewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "조회 조건 검증에 실패했습니다")
		return
	}

	view, err := h.bookingSvc.DayView(c.Request.Context(), userID, req.Date)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, view)
}

// MonthlyCalendar 월별 캘린더 (무속인 대시보드)
// GET /api/v1/dashboard/calendar?year=2026&month=9
func (h *BookingHandler) MonthlyCalendar(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CalendarRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "조회 조건 검증에 실패했습니다")
		return
	}

	cal, err := h.bookingSvc.MonthlyCalendar(c.Request.Context(), userID, req.Year, req.Month)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, cal)
}

func (h *BookingHandler) handleBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 13001, "잘못된 날짜 형식입니다")
	case errors.Is(err, service.ErrInvalidSlot):
		response.BadRequest(c, 13002, "잘못된 시간대입니다")
	case errors.Is(err, service.ErrInvalidConsultation):
		response.BadRequest(c, 13003, "잘못된 상담 유형입니다")
	case errors.Is(err, service.ErrPastDate):
		response.BadRequest(c, 13004, "과거 날짜는 선택할 수 없습니다")
	case errors.Is(err, service.ErrShamanNotBookable):
		response.BadRequest(c, 13005, "예약할 수 없는 무속인입니다")
	case errors.Is(err, service.ErrSlotConflict):
		response.Conflict(c, 13006, "이미 예약된 시간대가 포함되어 있습니다")
	case errors.Is(err, service.ErrMissingCustomerName):
		response.BadRequest(c, 13007, "고객명은 필수입니다")
	case errors.Is(err, service.ErrMissingRejectionReason):
		response.BadRequest(c, 13008, "거절 사유는 필수입니다")
	case errors.Is(err, service.ErrIllegalTransition):
		response.BadRequest(c, 13009, "허용되지 않는 상태 변경입니다")
	case errors.Is(err, service.ErrBookingNotFound):
		response.NotFound(c, 13010, "예약을 찾을 수 없습니다")
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, 10003, "접근 권한이 없습니다")
	case errors.Is(err, service.ErrShamanNotFound):
		response.NotFound(c, 12001, "무속인 프로필을 찾을 수 없습니다")
	default:
		response.InternalError(c)
	}
}
