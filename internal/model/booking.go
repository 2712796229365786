package model

// BookingStatus 예약 상태
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
	BookingRejected  BookingStatus = "rejected"
)

// IsValid 정의된 예약 상태인지 여부
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled, BookingRejected:
		return true
	}
	return false
}

// OccupiesSlots pending/confirmed 상태만 슬롯을 점유한다.
// completed/cancelled/rejected 는 가용성 계산에서 제외된다.
func (s BookingStatus) OccupiesSlots() bool {
	return s == BookingPending || s == BookingConfirmed
}

// BookingSource 예약 생성 경로
type BookingSource string

const (
	SourceOnline BookingSource = "online" // 고객이 직접 예약 (승인 대기로 시작)
	SourceManual BookingSource = "manual" // 무속인이 전화 예약 등을 대신 입력 (확정으로 시작)
)

// TransitionAllowed 역할별 상태 전이 허용 표.
// 허용 전이 전체:
//   customer: pending|confirmed → cancelled
//   shaman:   pending → confirmed|rejected, confirmed → completed
// completed/cancelled/rejected 는 종결 상태로 어떤 역할도 벗어날 수 없다.
func TransitionAllowed(role Role, from, to BookingStatus) bool {
	switch role {
	case RoleCustomer:
		return to == BookingCancelled &&
			(from == BookingPending || from == BookingConfirmed)
	case RoleShaman:
		switch from {
		case BookingPending:
			return to == BookingConfirmed || to == BookingRejected
		case BookingConfirmed:
			return to == BookingCompleted
		}
		return false
	default:
		return false
	}
}

// Booking 예약 테이블 — bookings
type Booking struct {
	BookingID           string        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"booking_id"`
	CustomerID          *string       `gorm:"type:uuid"                                      json:"customer_id,omitempty"` // 수동 예약은 NULL
	ShamanID            string        `gorm:"type:uuid;not null;index:idx_bookings_shaman_date" json:"shaman_id"`
	BookingDate         string        `gorm:"type:char(10);not null;index:idx_bookings_shaman_date" json:"booking_date"` // YYYY-MM-DD
	StartSlot           TimeSlot      `gorm:"type:char(5);not null"                          json:"start_slot"`
	Duration            int           `gorm:"type:smallint;not null;default:1"               json:"duration"`
	PartySize           int           `gorm:"type:smallint;not null;default:1"               json:"party_size"`
	ConsultationType    string        `gorm:"type:varchar(20);not null"                      json:"consultation_type"`
	Notes               string        `gorm:"type:text;not null;default:''"                  json:"notes"`
	TotalPrice          int           `gorm:"not null;default:0"                             json:"total_price"`
	Status              BookingStatus `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	RejectionReason     *string       `gorm:"type:varchar(500)"                              json:"rejection_reason,omitempty"`
	Source              BookingSource `gorm:"type:varchar(10);not null;default:'online'"     json:"source"`
	ManualCustomerName  *string       `gorm:"type:varchar(100)"                              json:"manual_customer_name,omitempty"`
	ManualCustomerPhone *string       `gorm:"type:varchar(20)"                               json:"manual_customer_phone,omitempty"`
	BaseModel

	// 연관
	Shaman   *Shaman `gorm:"foreignKey:ShamanID;references:ShamanID"   json:"shaman,omitempty"`
	Customer *User   `gorm:"foreignKey:CustomerID;references:UserID"   json:"customer,omitempty"`
}

// TableName 테이블명 지정
func (Booking) TableName() string { return "bookings" }

// OccupiedSlots 이 예약이 점유하는 슬롯 전개
func (b *Booking) OccupiedSlots() []TimeSlot {
	return OccupiedSlots(b.StartSlot, b.Duration)
}

// BookingSlot 슬롯 점유 테이블 — booking_slots
// pending/confirmed 예약의 점유 슬롯을 1행 1슬롯으로 전개해 보관한다.
// (shaman_id, booking_date, time_slot) 유니크 제약이 동시 생성 레이스를
// DB 수준에서 차단하는 핵심 장치다.
type BookingSlot struct {
	BookingID   string   `gorm:"type:uuid;primaryKey"                    json:"booking_id"`
	ShamanID    string   `gorm:"type:uuid;not null;uniqueIndex:uq_booking_slots_occupancy" json:"shaman_id"`
	BookingDate string   `gorm:"type:char(10);not null;uniqueIndex:uq_booking_slots_occupancy" json:"booking_date"`
	TimeSlot    TimeSlot `gorm:"type:char(5);primaryKey;uniqueIndex:uq_booking_slots_occupancy" json:"time_slot"`
}

// TableName 테이블명 지정
func (BookingSlot) TableName() string { return "booking_slots" }
