package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"musok-platform/backend/config"
	"musok-platform/backend/internal/dto"
	"musok-platform/backend/internal/model"
	"musok-platform/backend/internal/repository"
)

// ── 가용성 모듈 비즈니스 에러 ──

var ErrInvalidDate = errors.New("잘못된 날짜 형식입니다")

const dateLayout = "2006-01-02"
const timestampLayout = "2006-01-02T15:04:05Z"

// AvailabilityService 예약 가능 시간대 계산 인터페이스.
// 읽기 전용이며 예약 생성과 동시에 호출되어도 안전하다
// (쓰기 측 정합성은 booking_slots 유니크 제약이 보장).
type AvailabilityService interface {
	// AvailableSlots 카탈로그 순서대로 전체 슬롯의 가용 여부를 반환
	AvailableSlots(ctx context.Context, shamanID, date string) ([]dto.SlotAvailability, error)
	// OccupiedSlots 해당 날짜에 pending/confirmed 예약이 점유한 슬롯 집합
	OccupiedSlots(ctx context.Context, shamanID, date string) (map[model.TimeSlot]bool, error)
}

type availabilityService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAvailabilityService AvailabilityService 인스턴스 생성
func NewAvailabilityService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) AvailabilityService {
	return &availabilityService{cfg: cfg, repo: repo, logger: logger}
}

func (s *availabilityService) AvailableSlots(ctx context.Context, shamanID, date string) ([]dto.SlotAvailability, error) {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	// 1. 휴무일이면 전체 불가
	if _, err := s.repo.Schedule.GetOffDayByDate(ctx, shamanID, date); err == nil {
		return allSlots(false), nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("휴무일 조회 실패", zap.Error(err))
		return nil, err
	}

	// 2. 요일별 주간 일정 (0=일..6=토)
	dayOfWeek := int(parsed.Weekday())
	var nominallyOpen model.TimeSlotArray

	row, err := s.repo.Schedule.GetWeeklyHour(ctx, shamanID, dayOfWeek)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// 일정 미설정: 정책 플래그에 따라 전체 개방 또는 전체 폐쇄
		if !s.cfg.Booking.DefaultOpen {
			return allSlots(false), nil
		}
		nominallyOpen = model.TimeSlotArray(model.AllTimeSlots)
	case err != nil:
		s.logger.Error("주간 일정 조회 실패", zap.Error(err))
		return nil, err
	case !row.IsWorking:
		return allSlots(false), nil
	default:
		nominallyOpen = row.TimeSlots
	}

	// 3. 점유 슬롯
	booked, err := s.OccupiedSlots(ctx, shamanID, date)
	if err != nil {
		return nil, err
	}

	// 4. 결과 조합
	result := make([]dto.SlotAvailability, 0, len(model.AllTimeSlots))
	for _, t := range model.AllTimeSlots {
		result = append(result, dto.SlotAvailability{
			Time:      string(t),
			Available: nominallyOpen.Contains(t) && !booked[t],
		})
	}
	return result, nil
}

func (s *availabilityService) OccupiedSlots(ctx context.Context, shamanID, date string) (map[model.TimeSlot]bool, error) {
	slots, err := s.repo.Booking.ListOccupiedSlots(ctx, shamanID, date)
	if err != nil {
		s.logger.Error("점유 슬롯 조회 실패", zap.Error(err))
		return nil, err
	}
	booked := make(map[model.TimeSlot]bool, len(slots))
	for _, t := range slots {
		booked[t] = true
	}
	return booked, nil
}

// allSlots 전체 슬롯을 동일한 가용 여부로 채운 목록
func allSlots(available bool) []dto.SlotAvailability {
	result := make([]dto.SlotAvailability, 0, len(model.AllTimeSlots))
	for _, t := range model.AllTimeSlots {
		result = append(result, dto.SlotAvailability{Time: string(t), Available: available})
	}
	return result
}
