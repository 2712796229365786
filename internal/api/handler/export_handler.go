package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"musok-platform/backend/internal/service"
	"musok-platform/backend/pkg/response"
)

// ExportHandler 내보내기 모듈 HTTP 처리기 (무속인 전용)
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler ExportHandler 생성
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportBookings 월별 예약 내역 Excel 다운로드
// GET /api/v1/export/bookings?year=2026&month=9
func (h *ExportHandler) ExportBookings(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2020 || year > 2100 {
		response.BadRequest(c, 10001, "year 값이 잘못되었습니다")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(c, 10001, "month 값이 잘못되었습니다")
		return
	}

	buf, filename, err := h.exportSvc.ExportMonthlyBookings(c.Request.Context(), userID, year, month)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// CalendarFeed 예약 iCalendar 피드
// GET /api/v1/export/calendar.ics
func (h *ExportHandler) CalendarFeed(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	feed, err := h.exportSvc.CalendarFeed(c.Request.Context(), userID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=bookings.ics")
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShamanNotFound):
		response.NotFound(c, 12001, "무속인 프로필을 찾을 수 없습니다")
	case errors.Is(err, service.ErrExportNoBookings):
		response.NotFound(c, 15001, "해당 월에 예약이 없습니다")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
