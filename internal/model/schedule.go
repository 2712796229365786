package model

import "time"

// WeeklyHour 주간 근무 시간 테이블 — weekly_hours
// 무속인별 요일(0=일..6=토)당 정확히 1행. 7행 일괄 upsert 로만 갱신된다.
type WeeklyHour struct {
	WeeklyHourID string        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"weekly_hour_id"`
	ShamanID     string        `gorm:"type:uuid;not null;uniqueIndex:uq_weekly_hours" json:"shaman_id"`
	DayOfWeek    int           `gorm:"type:smallint;not null;uniqueIndex:uq_weekly_hours" json:"day_of_week"`
	IsWorking    bool          `gorm:"not null;default:true"                          json:"is_working"`
	TimeSlots    TimeSlotArray `gorm:"type:text[];not null"                           json:"time_slots"`
	UpdatedAt    time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`
}

// TableName 테이블명 지정
func (WeeklyHour) TableName() string { return "weekly_hours" }

// DefaultWeeklyHours 미설정 무속인의 기본 패턴: 월~금 전체 슬롯 근무, 주말 휴무
func DefaultWeeklyHours(shamanID string) []WeeklyHour {
	rows := make([]WeeklyHour, 0, 7)
	for day := 0; day <= 6; day++ {
		working := day >= 1 && day <= 5
		slots := TimeSlotArray{}
		if working {
			slots = append(slots, AllTimeSlots...)
		}
		rows = append(rows, WeeklyHour{
			ShamanID:  shamanID,
			DayOfWeek: day,
			IsWorking: working,
			TimeSlots: slots,
		})
	}
	return rows
}

// OffDay 휴무일 테이블 — off_days
// 무속인별 날짜당 1행. 주간 일정보다 우선한다.
type OffDay struct {
	OffDayID  string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"off_day_id"`
	ShamanID  string    `gorm:"type:uuid;not null;uniqueIndex:uq_off_days"     json:"shaman_id"`
	OffDate   string    `gorm:"type:char(10);not null;uniqueIndex:uq_off_days" json:"off_date"` // YYYY-MM-DD
	Reason    *string   `gorm:"type:varchar(200)"                              json:"reason,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 테이블명 지정
func (OffDay) TableName() string { return "off_days" }
