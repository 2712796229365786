package dto

// ── 예약 모듈 DTO ──

// AvailableSlotsRequest 예약 가능 시간대 조회 조건
type AvailableSlotsRequest struct {
	ShamanID string `form:"shaman_id" binding:"required,uuid"`
	Date     string `form:"date"      binding:"required,datetime=2006-01-02"`
}

// SlotAvailability 슬롯별 가용 여부
type SlotAvailability struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// CreateBookingRequest 온라인 예약 생성 요청 (고객)
// 소요 시간은 인원수와 동일 (1명당 1시간)
type CreateBookingRequest struct {
	ShamanID         string `json:"shaman_id"         binding:"required,uuid"`
	Date             string `json:"date"              binding:"required,datetime=2006-01-02"`
	StartSlot        string `json:"start_slot"        binding:"required"`
	PartySize        int    `json:"party_size"        binding:"required,min=1,max=4"`
	ConsultationType string `json:"consultation_type" binding:"required"`
	Notes            string `json:"notes"             binding:"omitempty,max=1000"`
}

// CreateManualBookingRequest 수동 예약 생성 요청 (무속인)
// duration 0 은 종일 예약
type CreateManualBookingRequest struct {
	Date             string  `json:"date"              binding:"required,datetime=2006-01-02"`
	StartSlot        string  `json:"start_slot"        binding:"required"`
	Duration         *int    `json:"duration"          binding:"omitempty,min=0,max=15"`
	ConsultationType string  `json:"consultation_type" binding:"required"`
	CustomerName     string  `json:"customer_name"     binding:"required,max=100"`
	CustomerPhone    *string `json:"customer_phone"    binding:"omitempty,max=20"`
	Notes            string  `json:"notes"             binding:"omitempty,max=1000"`
	TotalPrice       *int    `json:"total_price"       binding:"omitempty,min=0"`
}

// UpdateBookingStatusRequest 예약 상태 변경 요청
type UpdateBookingStatusRequest struct {
	Status          string  `json:"status"           binding:"required,oneof=confirmed rejected completed cancelled"`
	RejectionReason *string `json:"rejection_reason" binding:"omitempty,max=500"`
}

// BookingListRequest 예약 목록 조회 조건
type BookingListRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed completed cancelled rejected"`
}

// BookingResponse 예약 응답
type BookingResponse struct {
	ID                  string         `json:"id"`
	CustomerID          *string        `json:"customer_id,omitempty"`
	ShamanID            string         `json:"shaman_id"`
	Date                string         `json:"date"`
	StartSlot           string         `json:"start_slot"`
	Duration            int            `json:"duration"`
	DurationLabel       string         `json:"duration_label"`
	OccupiedSlots       []string       `json:"occupied_slots"`
	PartySize           int            `json:"party_size"`
	ConsultationType    string         `json:"consultation_type"`
	Notes               string         `json:"notes"`
	TotalPrice          int            `json:"total_price"`
	Status              string         `json:"status"`
	RejectionReason     *string        `json:"rejection_reason,omitempty"`
	Source              string         `json:"source"`
	ManualCustomerName  *string        `json:"manual_customer_name,omitempty"`
	ManualCustomerPhone *string        `json:"manual_customer_phone,omitempty"`
	Shaman              *ShamanBrief   `json:"shaman,omitempty"`
	Customer            *CustomerBrief `json:"customer,omitempty"`
	CreatedAt           string         `json:"created_at"`
	UpdatedAt           string         `json:"updated_at"`
}

// CustomerBrief 예약 응답에 포함되는 고객 요약 정보
type CustomerBrief struct {
	ID       string  `json:"id"`
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
}

// ── 대시보드 DTO ──

// DayViewRequest 일별 현황 조회 조건
type DayViewRequest struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

// DayViewResponse 일별 현황 (해당 날짜의 예약 + 가용 슬롯)
type DayViewResponse struct {
	Bookings       []BookingResponse  `json:"bookings"`
	AvailableSlots []SlotAvailability `json:"available_slots"`
}

// CalendarRequest 월별 캘린더 조회 조건
type CalendarRequest struct {
	Year  int `form:"year"  binding:"required,min=2020,max=2100"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// CalendarDay 캘린더 상의 하루 집계
type CalendarDay struct {
	Date           string `json:"date"`
	TotalCount     int    `json:"total_count"`
	PendingCount   int    `json:"pending_count"`
	ConfirmedCount int    `json:"confirmed_count"`
	CompletedCount int    `json:"completed_count"`
	CancelledCount int    `json:"cancelled_count"`
	IsOffDay       bool   `json:"is_off_day"`
}

// CalendarResponse 월별 캘린더 응답
type CalendarResponse struct {
	Days    []CalendarDay    `json:"days"`
	Summary DashboardSummary `json:"summary"`
}

// DashboardSummary 대시보드 요약 통계
type DashboardSummary struct {
	TodayBookings    int `json:"today_bookings"`
	PendingTotal     int `json:"pending_total"`
	ThisWeekBookings int `json:"this_week_bookings"`
	ThisMonthRevenue int `json:"this_month_revenue"`
}
