package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"musok-platform/backend/internal/dto"
	"musok-platform/backend/internal/model"
	"musok-platform/backend/internal/repository"
	pkgerrors "musok-platform/backend/pkg/errors"
)

// ── 예약 모듈 비즈니스 에러 ──

var (
	ErrShamanNotBookable      = errors.New("예약할 수 없는 무속인입니다")
	ErrPastDate               = errors.New("과거 날짜는 선택할 수 없습니다")
	ErrInvalidSlot            = errors.New("잘못된 시간대입니다")
	ErrInvalidConsultation    = errors.New("잘못된 상담 유형입니다")
	ErrSlotConflict           = errors.New("이미 예약된 시간대가 포함되어 있습니다")
	ErrMissingCustomerName    = errors.New("고객명은 필수입니다")
	ErrMissingRejectionReason = errors.New("거절 사유는 필수입니다")
	ErrBookingNotFound        = errors.New("예약을 찾을 수 없습니다")
	ErrIllegalTransition      = errors.New("허용되지 않는 상태 변경입니다")
	ErrForbidden              = errors.New("접근 권한이 없습니다")
)

// BookingService 예약 비즈니스 인터페이스
type BookingService interface {
	// Create 온라인 예약 생성 (고객). 소요 시간 = 인원수, pending 으로 시작
	Create(ctx context.Context, req *dto.CreateBookingRequest, customerID string) (*dto.BookingResponse, error)
	// CreateManual 수동 예약 생성 (무속인 본인). confirmed 로 시작
	CreateManual(ctx context.Context, shamanUserID string, req *dto.CreateManualBookingRequest) (*dto.BookingResponse, error)
	// UpdateStatus 역할 기반 상태 전이
	UpdateStatus(ctx context.Context, bookingID, actorUserID string, role model.Role, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error)
	List(ctx context.Context, actorUserID string, role model.Role, status string) ([]dto.BookingResponse, error)
	GetByID(ctx context.Context, bookingID, actorUserID string, role model.Role) (*dto.BookingResponse, error)
	// DayView 무속인 대시보드: 특정 날짜의 예약 목록 + 가용 슬롯
	DayView(ctx context.Context, shamanUserID, date string) (*dto.DayViewResponse, error)
	// MonthlyCalendar 무속인 대시보드: 월별 일자 집계 + 요약 통계
	MonthlyCalendar(ctx context.Context, shamanUserID string, year, month int) (*dto.CalendarResponse, error)
}

type bookingService struct {
	repo         *repository.Repository
	availability AvailabilityService
	logger       *zap.Logger
	// now 테스트에서 기준 시각을 고정하기 위한 훅
	now func() time.Time
}

// NewBookingService BookingService 인스턴스 생성
func NewBookingService(repo *repository.Repository, availability AvailabilityService, logger *zap.Logger) BookingService {
	return &bookingService{
		repo:         repo,
		availability: availability,
		logger:       logger,
		now:          time.Now,
	}
}

// ────────────────────── Create (온라인) ──────────────────────

func (s *bookingService) Create(ctx context.Context, req *dto.CreateBookingRequest, customerID string) (*dto.BookingResponse, error) {
	// 1. 예약 대상 검증: 승인된 무속인만 예약 가능
	shaman, err := s.repo.Shaman.GetByID(ctx, req.ShamanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShamanNotBookable
		}
		s.logger.Error("무속인 조회 실패", zap.Error(err))
		return nil, err
	}
	if !shaman.IsBookable() {
		return nil, ErrShamanNotBookable
	}

	// 2. 입력 검증
	startSlot := model.TimeSlot(req.StartSlot)
	if !model.IsValidSlot(startSlot) {
		return nil, ErrInvalidSlot
	}
	if !model.IsValidSpecialty(req.ConsultationType) {
		return nil, ErrInvalidConsultation
	}
	// ISO 날짜는 문자열 비교로 충분하다 (단일 로컬 타임존 전제)
	if req.Date < s.today() {
		return nil, ErrPastDate
	}

	// 3. 인원수 1명당 1시간: duration = partySize
	duration := req.PartySize

	booking := &model.Booking{
		CustomerID:       &customerID,
		ShamanID:         shaman.ShamanID,
		BookingDate:      req.Date,
		StartSlot:        startSlot,
		Duration:         duration,
		PartySize:        req.PartySize,
		ConsultationType: req.ConsultationType,
		Notes:            req.Notes,
		TotalPrice:       shaman.BasePrice, // 기본 요금 고정 (시간 비례 아님)
		Status:           model.BookingPending,
		Source:           model.SourceOnline,
	}

	if err := s.createChecked(ctx, booking); err != nil {
		return nil, err
	}
	return s.toBookingResponse(booking), nil
}

// ────────────────────── CreateManual (수동) ──────────────────────

func (s *bookingService) CreateManual(ctx context.Context, shamanUserID string, req *dto.CreateManualBookingRequest) (*dto.BookingResponse, error) {
	shaman, err := s.repo.Shaman.GetByUserID(ctx, shamanUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShamanNotFound
		}
		s.logger.Error("무속인 조회 실패", zap.Error(err))
		return nil, err
	}

	customerName := strings.TrimSpace(req.CustomerName)
	if customerName == "" {
		return nil, ErrMissingCustomerName
	}
	if !model.IsValidSpecialty(req.ConsultationType) {
		return nil, ErrInvalidConsultation
	}

	startSlot := model.TimeSlot(req.StartSlot)
	duration := 1
	if req.Duration != nil {
		duration = *req.Duration
	}

	// 종일(0) 은 첫 슬롯부터 카탈로그 전체로 정규화
	if duration == model.WholeDayDuration {
		startSlot = model.AllTimeSlots[0]
		duration = len(model.AllTimeSlots)
	}

	if !model.IsValidSlot(startSlot) {
		return nil, ErrInvalidSlot
	}
	if req.Date < s.today() {
		return nil, ErrPastDate
	}

	// 카탈로그 끝을 넘는 요청은 전개 결과 길이로 잘라서 기록
	occupied := model.OccupiedSlots(startSlot, duration)
	duration = len(occupied)

	totalPrice := shaman.BasePrice
	if req.TotalPrice != nil {
		totalPrice = *req.TotalPrice
	}

	booking := &model.Booking{
		ShamanID:            shaman.ShamanID,
		BookingDate:         req.Date,
		StartSlot:           startSlot,
		Duration:            duration,
		PartySize:           1,
		ConsultationType:    req.ConsultationType,
		Notes:               req.Notes,
		TotalPrice:          totalPrice,
		Status:              model.BookingConfirmed, // 사전 합의된 예약이므로 승인 단계 생략
		Source:              model.SourceManual,
		ManualCustomerName:  &customerName,
		ManualCustomerPhone: req.CustomerPhone,
	}

	if err := s.createChecked(ctx, booking); err != nil {
		return nil, err
	}
	return s.toBookingResponse(booking), nil
}

// createChecked 충돌 사전 확인 후 저장. 사전 확인을 통과해도 저장 시점의
// 유니크 제약 충돌(동시 요청)은 ErrSlotConflict 로 동일하게 보고된다.
func (s *bookingService) createChecked(ctx context.Context, booking *model.Booking) error {
	booked, err := s.availability.OccupiedSlots(ctx, booking.ShamanID, booking.BookingDate)
	if err != nil {
		return err
	}
	for _, t := range booking.OccupiedSlots() {
		if booked[t] {
			return ErrSlotConflict
		}
	}

	if err := s.repo.Booking.CreateWithSlots(ctx, booking); err != nil {
		if errors.Is(err, pkgerrors.ErrUniqueViolation) {
			return ErrSlotConflict
		}
		s.logger.Error("예약 생성 실패", zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── UpdateStatus ──────────────────────

func (s *bookingService) UpdateStatus(ctx context.Context, bookingID, actorUserID string, role model.Role, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error) {
	booking, err := s.repo.Booking.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("예약 조회 실패", zap.String("id", bookingID), zap.Error(err))
		return nil, err
	}

	// 소유권 검증
	switch role {
	case model.RoleCustomer:
		if booking.CustomerID == nil || *booking.CustomerID != actorUserID {
			return nil, ErrForbidden
		}
	case model.RoleShaman:
		shaman, err := s.repo.Shaman.GetByUserID(ctx, actorUserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrForbidden
			}
			return nil, err
		}
		if shaman.ShamanID != booking.ShamanID {
			return nil, ErrForbidden
		}
	default:
		// 상태 전이는 당사자(고객/무속인)만 가능
		return nil, ErrForbidden
	}

	next := model.BookingStatus(req.Status)
	if !model.TransitionAllowed(role, booking.Status, next) {
		return nil, ErrIllegalTransition
	}

	if next == model.BookingRejected {
		if req.RejectionReason == nil || strings.TrimSpace(*req.RejectionReason) == "" {
			return nil, ErrMissingRejectionReason
		}
		booking.RejectionReason = req.RejectionReason
	}

	booking.Status = next
	if err := s.repo.Booking.UpdateStatus(ctx, booking); err != nil {
		s.logger.Error("예약 상태 변경 실패", zap.String("id", bookingID), zap.Error(err))
		return nil, err
	}
	return s.toBookingResponse(booking), nil
}

// ────────────────────── List / GetByID ──────────────────────

func (s *bookingService) List(ctx context.Context, actorUserID string, role model.Role, status string) ([]dto.BookingResponse, error) {
	filters := repository.BookingFilters{Status: model.BookingStatus(status)}

	switch role {
	case model.RoleCustomer:
		filters.CustomerID = actorUserID
	case model.RoleShaman:
		shaman, err := s.repo.Shaman.GetByUserID(ctx, actorUserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrShamanNotFound
			}
			return nil, err
		}
		filters.ShamanID = shaman.ShamanID
	default:
		return nil, ErrForbidden
	}

	bookings, err := s.repo.Booking.List(ctx, filters)
	if err != nil {
		s.logger.Error("예약 목록 조회 실패", zap.Error(err))
		return nil, err
	}

	result := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		result = append(result, *s.toBookingResponse(&bookings[i]))
	}
	return result, nil
}

func (s *bookingService) GetByID(ctx context.Context, bookingID, actorUserID string, role model.Role) (*dto.BookingResponse, error) {
	booking, err := s.repo.Booking.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	switch role {
	case model.RoleCustomer:
		if booking.CustomerID == nil || *booking.CustomerID != actorUserID {
			return nil, ErrForbidden
		}
	case model.RoleShaman:
		shaman, err := s.repo.Shaman.GetByUserID(ctx, actorUserID)
		if err != nil || shaman.ShamanID != booking.ShamanID {
			return nil, ErrForbidden
		}
	case model.RoleAdmin:
		// 관리자는 전체 조회 가능
	default:
		return nil, ErrForbidden
	}

	return s.toBookingResponse(booking), nil
}

// ────────────────────── DayView ──────────────────────

func (s *bookingService) DayView(ctx context.Context, shamanUserID, date string) (*dto.DayViewResponse, error) {
	shaman, err := s.repo.Shaman.GetByUserID(ctx, shamanUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShamanNotFound
		}
		return nil, err
	}

	bookings, err := s.repo.Booking.ListByShamanAndDate(ctx, shaman.ShamanID, date)
	if err != nil {
		s.logger.Error("일별 예약 조회 실패", zap.Error(err))
		return nil, err
	}

	slots, err := s.availability.AvailableSlots(ctx, shaman.ShamanID, date)
	if err != nil {
		return nil, err
	}

	list := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		list = append(list, *s.toBookingResponse(&bookings[i]))
	}

	return &dto.DayViewResponse{Bookings: list, AvailableSlots: slots}, nil
}

// ────────────────────── MonthlyCalendar ──────────────────────

func (s *bookingService) MonthlyCalendar(ctx context.Context, shamanUserID string, year, month int) (*dto.CalendarResponse, error) {
	shaman, err := s.repo.Shaman.GetByUserID(ctx, shamanUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShamanNotFound
		}
		return nil, err
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	fromDate := first.Format(dateLayout)
	toDate := last.Format(dateLayout)

	bookings, err := s.repo.Booking.ListByShamanBetween(ctx, shaman.ShamanID, fromDate, toDate)
	if err != nil {
		s.logger.Error("월별 예약 조회 실패", zap.Error(err))
		return nil, err
	}

	offDays, err := s.repo.Schedule.ListOffDays(ctx, shaman.ShamanID, fromDate, toDate)
	if err != nil {
		s.logger.Error("휴무일 조회 실패", zap.Error(err))
		return nil, err
	}

	// 일자별 집계
	byDate := make(map[string]*dto.CalendarDay)
	order := make([]string, 0)
	dayFor := func(date string) *dto.CalendarDay {
		if d, ok := byDate[date]; ok {
			return d
		}
		d := &dto.CalendarDay{Date: date}
		byDate[date] = d
		order = append(order, date)
		return d
	}

	for i := range bookings {
		d := dayFor(bookings[i].BookingDate)
		d.TotalCount++
		switch bookings[i].Status {
		case model.BookingPending:
			d.PendingCount++
		case model.BookingConfirmed:
			d.ConfirmedCount++
		case model.BookingCompleted:
			d.CompletedCount++
		case model.BookingCancelled:
			d.CancelledCount++
		}
	}

	// 예약이 없어도 휴무일은 캘린더에 표시
	for i := range offDays {
		dayFor(offDays[i].OffDate).IsOffDay = true
	}

	days := make([]dto.CalendarDay, 0, len(order))
	for _, date := range order {
		days = append(days, *byDate[date])
	}

	summary, err := s.dashboardSummary(ctx, shaman.ShamanID)
	if err != nil {
		return nil, err
	}

	return &dto.CalendarResponse{Days: days, Summary: *summary}, nil
}

// dashboardSummary 오늘/이번 주/이번 달 기준 요약 통계
func (s *bookingService) dashboardSummary(ctx context.Context, shamanID string) (*dto.DashboardSummary, error) {
	now := s.now()
	today := now.Format(dateLayout)

	// 이번 주 (일요일 시작)
	weekStart := now.AddDate(0, 0, -int(now.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 6)

	// 이번 달
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	monthBookings, err := s.repo.Booking.ListByShamanBetween(
		ctx, shamanID, monthStart.Format(dateLayout), monthEnd.Format(dateLayout))
	if err != nil {
		return nil, err
	}

	pendings, err := s.repo.Booking.List(ctx, repository.BookingFilters{
		ShamanID: shamanID,
		Status:   model.BookingPending,
	})
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummary{PendingTotal: len(pendings)}
	weekFrom := weekStart.Format(dateLayout)
	weekTo := weekEnd.Format(dateLayout)

	for i := range monthBookings {
		b := &monthBookings[i]
		if b.Status == model.BookingCancelled || b.Status == model.BookingRejected {
			continue
		}
		if b.BookingDate == today {
			summary.TodayBookings++
		}
		if b.BookingDate >= weekFrom && b.BookingDate <= weekTo {
			summary.ThisWeekBookings++
		}
		if b.Status == model.BookingCompleted {
			summary.ThisMonthRevenue += b.TotalPrice
		}
	}
	return summary, nil
}

// ── 내부 헬퍼 ──

func (s *bookingService) today() string {
	return s.now().Format(dateLayout)
}

func (s *bookingService) toBookingResponse(b *model.Booking) *dto.BookingResponse {
	occupied := b.OccupiedSlots()
	slots := make([]string, 0, len(occupied))
	for _, t := range occupied {
		slots = append(slots, string(t))
	}

	resp := &dto.BookingResponse{
		ID:                  b.BookingID,
		CustomerID:          b.CustomerID,
		ShamanID:            b.ShamanID,
		Date:                b.BookingDate,
		StartSlot:           string(b.StartSlot),
		Duration:            b.Duration,
		DurationLabel:       model.DurationLabel(b.Duration),
		OccupiedSlots:       slots,
		PartySize:           b.PartySize,
		ConsultationType:    b.ConsultationType,
		Notes:               b.Notes,
		TotalPrice:          b.TotalPrice,
		Status:              string(b.Status),
		RejectionReason:     b.RejectionReason,
		Source:              string(b.Source),
		ManualCustomerName:  b.ManualCustomerName,
		ManualCustomerPhone: b.ManualCustomerPhone,
		CreatedAt:           b.CreatedAt.Format(timestampLayout),
		UpdatedAt:           b.UpdatedAt.Format(timestampLayout),
	}

	if b.Shaman != nil {
		resp.Shaman = &dto.ShamanBrief{
			ID:            b.Shaman.ShamanID,
			BusinessName:  b.Shaman.BusinessName,
			Region:        b.Shaman.Region,
			District:      b.Shaman.District,
			BasePrice:     b.Shaman.BasePrice,
			AverageRating: b.Shaman.AverageRating,
			Specialties:   []string(b.Shaman.Specialties),
		}
	}
	if b.Customer != nil {
		resp.Customer = &dto.CustomerBrief{
			ID:       b.Customer.UserID,
			FullName: b.Customer.FullName,
			Email:    b.Customer.Email,
			Phone:    b.Customer.Phone,
		}
	}
	return resp
}
