package dto

// ── 일정 모듈 DTO ──

// WeeklyHourInput 주간 근무 시간 한 요일 입력
type WeeklyHourInput struct {
	DayOfWeek int      `json:"day_of_week" binding:"min=0,max=6"`
	IsWorking bool     `json:"is_working"`
	TimeSlots []string `json:"time_slots"`
}

// SaveWeeklyHoursRequest 주간 근무 시간 일괄 저장 요청 (요일별 7행 필수)
type SaveWeeklyHoursRequest struct {
	WeeklyHours []WeeklyHourInput `json:"weekly_hours" binding:"required,len=7,dive"`
}

// WeeklyHourResponse 주간 근무 시간 응답
type WeeklyHourResponse struct {
	DayOfWeek int      `json:"day_of_week"`
	IsWorking bool     `json:"is_working"`
	TimeSlots []string `json:"time_slots"`
}

// AddOffDayRequest 휴무일 등록 요청
type AddOffDayRequest struct {
	OffDate string  `json:"off_date" binding:"required,datetime=2006-01-02"`
	Reason  *string `json:"reason"   binding:"omitempty,max=200"`
}

// OffDayResponse 휴무일 응답
type OffDayResponse struct {
	ID        string  `json:"id"`
	OffDate   string  `json:"off_date"`
	Reason    *string `json:"reason,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// ScheduleResponse 일정 조회 응답 (주간 근무 시간 + 휴무일)
type ScheduleResponse struct {
	WeeklyHours []WeeklyHourResponse `json:"weekly_hours"`
	OffDays     []OffDayResponse     `json:"off_days"`
}
