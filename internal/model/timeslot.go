package model

import "fmt"

// TimeSlot 예약 가능한 시간대 하나. 카탈로그는 09:00~23:00 매시 정각 15개로
// 고정되어 있으며 임의의 시각은 허용하지 않는다.
type TimeSlot string

// AllTimeSlots 시간대 카탈로그 (시계 순서 = 정렬 순서)
var AllTimeSlots = []TimeSlot{
	"09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
	"19:00", "20:00", "21:00", "22:00", "23:00",
}

// WholeDayDuration duration 0 은 "종일" 센티널
const WholeDayDuration = 0

// SlotIndex 카탈로그 내 인덱스. 카탈로그에 없으면 -1
func SlotIndex(t TimeSlot) int {
	for i, s := range AllTimeSlots {
		if s == t {
			return i
		}
	}
	return -1
}

// IsValidSlot 카탈로그에 포함된 시간대인지 여부
func IsValidSlot(t TimeSlot) bool {
	return SlotIndex(t) >= 0
}

// OccupiedSlots (시작 슬롯, duration) 이 점유하는 연속 슬롯 목록을 카탈로그
// 순서로 반환한다. duration 0(종일)은 시작 슬롯부터 카탈로그 끝까지이며,
// 카탈로그 끝을 넘는 duration 은 끝에서 잘린다(slice 동작과 동일).
func OccupiedSlots(start TimeSlot, duration int) []TimeSlot {
	startIdx := SlotIndex(start)
	if startIdx < 0 {
		return nil
	}
	d := duration
	if d == WholeDayDuration {
		d = len(AllTimeSlots)
	}
	end := startIdx + d
	if end > len(AllTimeSlots) {
		end = len(AllTimeSlots)
	}
	return AllTimeSlots[startIdx:end]
}

// DurationLabel 표시용 소요 시간 라벨. 0 또는 카탈로그 길이 이상이면 "종일"
func DurationLabel(duration int) string {
	if duration == WholeDayDuration || duration >= len(AllTimeSlots) {
		return "종일"
	}
	return fmt.Sprintf("%d시간", duration)
}
