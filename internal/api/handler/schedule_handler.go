package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"musok-platform/backend/internal/dto"
	"musok-platform/backend/internal/service"
	"musok-platform/backend/pkg/response"
)

// ScheduleHandler 일정 모듈 HTTP 처리기 (무속인 전용)
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler ScheduleHandler 생성
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// Get 내 일정 조회 (주간 근무 시간 + 휴무일)
// GET /api/v1/schedule
func (h *ScheduleHandler) Get(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	schedule, err := h.scheduleSvc.GetSchedule(c.Request.Context(), userID)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, schedule)
}

// SaveWeeklyHours 주간 근무 시간 일괄 저장 (7행 필수)
// PUT /api/v1/schedule/weekly-hours
func (h *ScheduleHandler) SaveWeeklyHours(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SaveWeeklyHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 값 검증에 실패했습니다")
		return
	}

	rows, err := h.scheduleSvc.SaveWeeklyHours(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, gin.H{"weekly_hours": rows})
}

// AddOffDay 휴무일 등록
// POST /api/v1/schedule/off-days
func (h *ScheduleHandler) AddOffDay(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.AddOffDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 값 검증에 실패했습니다")
		return
	}

	offDay, err := h.scheduleSvc.AddOffDay(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.Created(c, offDay)
}

// DeleteOffDay 휴무일 삭제
// DELETE /api/v1/schedule/off-days/:id
func (h *ScheduleHandler) DeleteOffDay(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "휴무일 ID가 없습니다")
		return
	}

	if err := h.scheduleSvc.DeleteOffDay(c.Request.Context(), userID, id); err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShamanNotFound):
		response.NotFound(c, 12001, "무속인 프로필을 찾을 수 없습니다")
	case errors.Is(err, service.ErrInvalidWeeklyHours):
		response.BadRequest(c, 14001, "주간 일정은 요일별 7행이어야 합니다")
	case errors.Is(err, service.ErrInvalidSlot):
		response.BadRequest(c, 13002, "잘못된 시간대입니다")
	case errors.Is(err, service.ErrPastDate):
		response.BadRequest(c, 13004, "과거 날짜는 선택할 수 없습니다")
	case errors.Is(err, service.ErrOffDayExists):
		response.Conflict(c, 14002, "이미 등록된 휴무일입니다")
	case errors.Is(err, service.ErrOffDayNotFound):
		response.NotFound(c, 14003, "휴무일을 찾을 수 없습니다")
	default:
		response.InternalError(c)
	}
}
