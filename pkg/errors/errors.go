package errors

import "errors"

// ErrUniqueViolation 저장소 계층에서 유니크 제약 위반을 식별하기 위한 공통 에러.
// booking_slots 의 (shaman_id, booking_date, time_slot) 제약이나
// off_days 의 (shaman_id, off_date) 제약 충돌 시 이 에러로 매핑된다.
var ErrUniqueViolation = errors.New("유니크 제약 조건을 위반했습니다")
