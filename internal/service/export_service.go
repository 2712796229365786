package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"musok-platform/backend/internal/model"
	"musok-platform/backend/internal/repository"
)

// ── 내보내기 모듈 비즈니스 에러 ──

var (
	ErrExportNoBookings   = errors.New("해당 월에 예약이 없습니다")
	ErrExportGenerateFail = errors.New("엑셀 파일 생성에 실패했습니다")
)

const seoulTimezone = "Asia/Seoul"

// ExportService 내보내기 비즈니스 인터페이스
//
// 설계 메모:
//   - 월별 예약 내역을 Excel (.xlsx) 로 다운로드
//   - 확정 예약을 iCalendar (RFC 5545) 피드로 제공해 외부 캘린더 앱에서 구독
//   - Excel 은 bytes.Buffer 로 반환하고 Handler 층에서 응답 헤더를 설정한다
type ExportService interface {
	// ExportMonthlyBookings 월별 예약 내역을 Excel 로 생성
	ExportMonthlyBookings(ctx context.Context, shamanUserID string, year, month int) (*bytes.Buffer, string, error)
	// CalendarFeed 확정/대기 예약의 iCalendar 피드 (오늘부터 90일)
	CalendarFeed(ctx context.Context, shamanUserID string) (string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService ExportService 인스턴스 생성
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

// ═══════════════════════════════════════════════════════════
// ExportMonthlyBookings — 월별 예약 내역 Excel
// ═══════════════════════════════════════════════════════════
//
// 출력 형식:
//   - Sheet "예약 내역"
//   - 열: 날짜 / 시작 / 소요 / 고객 / 상담 유형 / 상태 / 경로 / 금액
//   - 마지막 행: 완료 예약 기준 매출 합계

func (s *exportService) ExportMonthlyBookings(ctx context.Context, shamanUserID string, year, month int) (*bytes.Buffer, string, error) {
	shaman, err := s.repo.Shaman.GetByUserID(ctx, shamanUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrShamanNotFound
		}
		s.logger.Error("무속인 조회 실패", zap.Error(err))
		return nil, "", err
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)

	bookings, err := s.repo.Booking.ListByShamanBetween(
		ctx, shaman.ShamanID, first.Format(dateLayout), last.Format(dateLayout))
	if err != nil {
		s.logger.Error("월별 예약 조회 실패", zap.Error(err))
		return nil, "", err
	}
	if len(bookings) == 0 {
		return nil, "", ErrExportNoBookings
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "예약 내역"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"날짜", "시작", "소요", "고객", "상담 유형", "상태", "경로", "금액(원)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDEBF7"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err == nil {
		f.SetCellStyle(sheet, "A1", "H1", headerStyle)
	}

	statusLabels := map[model.BookingStatus]string{
		model.BookingPending:   "대기",
		model.BookingConfirmed: "확정",
		model.BookingCompleted: "완료",
		model.BookingCancelled: "취소",
		model.BookingRejected:  "거절",
	}
	sourceLabels := map[model.BookingSource]string{
		model.SourceOnline: "온라인",
		model.SourceManual: "수동",
	}

	revenue := 0
	for i := range bookings {
		b := &bookings[i]
		row := i + 2

		customer := "-"
		if b.ManualCustomerName != nil {
			customer = *b.ManualCustomerName
		} else if b.Customer != nil {
			customer = b.Customer.FullName
		}

		values := []interface{}{
			b.BookingDate,
			string(b.StartSlot),
			model.DurationLabel(b.Duration),
			customer,
			b.ConsultationType,
			statusLabels[b.Status],
			sourceLabels[b.Source],
			b.TotalPrice,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
		}

		if b.Status == model.BookingCompleted {
			revenue += b.TotalPrice
		}
	}

	sumRow := len(bookings) + 2
	sumCell, _ := excelize.CoordinatesToCellName(7, sumRow)
	f.SetCellValue(sheet, sumCell, "매출 합계")
	revCell, _ := excelize.CoordinatesToCellName(8, sumRow)
	f.SetCellValue(sheet, revCell, revenue)

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "D", "E", 14)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		s.logger.Error("엑셀 생성 실패", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("bookings_%04d%02d.xlsx", year, month)
	return &buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// CalendarFeed — 예약 iCalendar 피드
// ═══════════════════════════════════════════════════════════
//
// 외부 캘린더 앱 구독용. pending/confirmed 예약만 이벤트로 내보내고,
// 슬롯은 Asia/Seoul 기준 로컬 시각으로 변환한다.

func (s *exportService) CalendarFeed(ctx context.Context, shamanUserID string) (string, error) {
	shaman, err := s.repo.Shaman.GetByUserID(ctx, shamanUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrShamanNotFound
		}
		return "", err
	}

	loc, err := time.LoadLocation(seoulTimezone)
	if err != nil {
		loc = time.Local
	}

	from := s.now().In(loc)
	to := from.AddDate(0, 0, 90)

	bookings, err := s.repo.Booking.ListByShamanBetween(
		ctx, shaman.ShamanID, from.Format(dateLayout), to.Format(dateLayout))
	if err != nil {
		s.logger.Error("예약 조회 실패", zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//musok-platform//booking-feed//KO")
	cal.SetXWRCalName(shaman.BusinessName + " 예약 일정")
	cal.SetXWRTimezone(seoulTimezone)

	for i := range bookings {
		b := &bookings[i]
		if !b.Status.OccupiesSlots() {
			continue
		}

		start, endT, err := slotInterval(b, loc)
		if err != nil {
			s.logger.Warn("슬롯 시각 변환 실패",
				zap.String("booking_id", b.BookingID), zap.Error(err))
			continue
		}

		event := cal.AddEvent(b.BookingID + "@musok-platform")
		event.SetCreatedTime(b.CreatedAt)
		event.SetDtStampTime(b.CreatedAt)
		event.SetStartAt(start)
		event.SetEndAt(endT)
		event.SetSummary(fmt.Sprintf("[%s] %s 상담", statusFeedLabel(b.Status), b.ConsultationType))
		if b.Notes != "" {
			event.SetDescription(b.Notes)
		}
	}

	return cal.Serialize(), nil
}

// slotInterval 예약의 점유 슬롯을 (시작, 종료) 시각 구간으로 변환
func slotInterval(b *model.Booking, loc *time.Location) (time.Time, time.Time, error) {
	occupied := b.OccupiedSlots()
	if len(occupied) == 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("점유 슬롯 없음")
	}

	start, err := time.ParseInLocation(
		dateLayout+" 15:04", b.BookingDate+" "+string(occupied[0]), loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	lastStart, err := time.ParseInLocation(
		dateLayout+" 15:04", b.BookingDate+" "+string(occupied[len(occupied)-1]), loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, lastStart.Add(time.Hour), nil
}

func statusFeedLabel(status model.BookingStatus) string {
	if status == model.BookingPending {
		return "대기"
	}
	return "확정"
}
