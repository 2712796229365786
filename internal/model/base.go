package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// ── PostgreSQL TEXT[] 커스텀 타입 ──

// StringArray PostgreSQL TEXT[] 에 대응. GORM Scanner/Valuer 구현.
type StringArray []string

// Scan PostgreSQL 의 {a,b,c} 텍스트를 []string 으로 파싱
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = nil
		return nil
	}
	var s string
	switch v := src.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("StringArray.Scan: unsupported type %T", src)
	}
	s = strings.Trim(s, "{}")
	if s == "" {
		*a = StringArray{}
		return nil
	}
	parts := strings.Split(s, ",")
	arr := make(StringArray, 0, len(parts))
	for _, p := range parts {
		arr = append(arr, strings.Trim(strings.TrimSpace(p), `"`))
	}
	*a = arr
	return nil
}

// Value []string 을 PostgreSQL {a,b,c} 텍스트로 직렬화
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return "{" + strings.Join(a, ",") + "}", nil
}

// TimeSlotArray TEXT[] 에 저장되는 시간대 목록
type TimeSlotArray []TimeSlot

// Scan PostgreSQL 배열 텍스트를 []TimeSlot 으로 파싱
func (a *TimeSlotArray) Scan(src interface{}) error {
	var raw StringArray
	if err := raw.Scan(src); err != nil {
		return err
	}
	if raw == nil {
		*a = nil
		return nil
	}
	arr := make(TimeSlotArray, 0, len(raw))
	for _, s := range raw {
		arr = append(arr, TimeSlot(s))
	}
	*a = arr
	return nil
}

// Value []TimeSlot 을 PostgreSQL 배열 텍스트로 직렬화
func (a TimeSlotArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	raw := make(StringArray, 0, len(a))
	for _, s := range a {
		raw = append(raw, string(s))
	}
	return raw.Value()
}

// Contains 목록 포함 여부
func (a TimeSlotArray) Contains(t TimeSlot) bool {
	for _, s := range a {
		if s == t {
			return true
		}
	}
	return false
}

// BaseModel 공통 타임스탬프 필드 (모든 비즈니스 모델에 임베드)
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
