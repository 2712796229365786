package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"musok-platform/backend/internal/dto"
	"musok-platform/backend/internal/model"
	"musok-platform/backend/internal/repository"
	pkgerrors "musok-platform/backend/pkg/errors"
)

// ── 일정 모듈 비즈니스 에러 ──

var (
	ErrInvalidWeeklyHours = errors.New("주간 일정은 요일별 7행이어야 합니다")
	ErrOffDayExists       = errors.New("이미 등록된 휴무일입니다")
	ErrOffDayNotFound     = errors.New("휴무일을 찾을 수 없습니다")
)

// ScheduleService 일정(주간 근무 시간 + 휴무일) 비즈니스 인터페이스
type ScheduleService interface {
	// GetSchedule 주간 일정과 오늘 이후의 휴무일 조회. 미설정 시 기본 패턴 반환
	GetSchedule(ctx context.Context, shamanUserID string) (*dto.ScheduleResponse, error)
	// SaveWeeklyHours 7행 일괄 저장. 부분 갱신은 허용하지 않는다
	SaveWeeklyHours(ctx context.Context, shamanUserID string, req *dto.SaveWeeklyHoursRequest) ([]dto.WeeklyHourResponse, error)
	AddOffDay(ctx context.Context, shamanUserID string, req *dto.AddOffDayRequest) (*dto.OffDayResponse, error)
	DeleteOffDay(ctx context.Context, shamanUserID, offDayID string) error
}

type scheduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewScheduleService ScheduleService 인스턴스 생성
func NewScheduleService(repo *repository.Repository, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, logger: logger, now: time.Now}
}

func (s *scheduleService) GetSchedule(ctx context.Context, shamanUserID string) (*dto.ScheduleResponse, error) {
	shaman, err := s.resolveShaman(ctx, shamanUserID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.Schedule.ListWeeklyHours(ctx, shaman.ShamanID)
	if err != nil {
		s.logger.Error("주간 일정 조회 실패", zap.Error(err))
		return nil, err
	}
	// 아직 저장한 적이 없으면 기본 패턴을 보여준다 (DB 에는 쓰지 않음)
	if len(rows) == 0 {
		rows = model.DefaultWeeklyHours(shaman.ShamanID)
	}

	offDays, err := s.repo.Schedule.ListOffDays(ctx, shaman.ShamanID, s.now().Format(dateLayout), "")
	if err != nil {
		s.logger.Error("휴무일 조회 실패", zap.Error(err))
		return nil, err
	}

	resp := &dto.ScheduleResponse{
		WeeklyHours: make([]dto.WeeklyHourResponse, 0, len(rows)),
		OffDays:     make([]dto.OffDayResponse, 0, len(offDays)),
	}
	for i := range rows {
		resp.WeeklyHours = append(resp.WeeklyHours, toWeeklyHourResponse(&rows[i]))
	}
	for i := range offDays {
		resp.OffDays = append(resp.OffDays, toOffDayResponse(&offDays[i]))
	}
	return resp, nil
}

func (s *scheduleService) SaveWeeklyHours(ctx context.Context, shamanUserID string, req *dto.SaveWeeklyHoursRequest) ([]dto.WeeklyHourResponse, error) {
	shaman, err := s.resolveShaman(ctx, shamanUserID)
	if err != nil {
		return nil, err
	}

	// 요일 0..6 이 정확히 한 번씩 등장해야 한다
	seen := [7]bool{}
	rows := make([]model.WeeklyHour, 0, 7)
	for _, input := range req.WeeklyHours {
		if input.DayOfWeek < 0 || input.DayOfWeek > 6 || seen[input.DayOfWeek] {
			return nil, ErrInvalidWeeklyHours
		}
		seen[input.DayOfWeek] = true

		slots := make(model.TimeSlotArray, 0, len(input.TimeSlots))
		for _, raw := range input.TimeSlots {
			t := model.TimeSlot(raw)
			if !model.IsValidSlot(t) {
				return nil, ErrInvalidSlot
			}
			slots = append(slots, t)
		}

		rows = append(rows, model.WeeklyHour{
			ShamanID:  shaman.ShamanID,
			DayOfWeek: input.DayOfWeek,
			IsWorking: input.IsWorking,
			TimeSlots: slots,
		})
	}

	if err := s.repo.Schedule.UpsertWeeklyHours(ctx, rows); err != nil {
		s.logger.Error("주간 일정 저장 실패", zap.Error(err))
		return nil, err
	}

	result := make([]dto.WeeklyHourResponse, 0, len(rows))
	for i := range rows {
		result = append(result, toWeeklyHourResponse(&rows[i]))
	}
	return result, nil
}

func (s *scheduleService) AddOffDay(ctx context.Context, shamanUserID string, req *dto.AddOffDayRequest) (*dto.OffDayResponse, error) {
	shaman, err := s.resolveShaman(ctx, shamanUserID)
	if err != nil {
		return nil, err
	}

	if req.OffDate < s.now().Format(dateLayout) {
		return nil, ErrPastDate
	}

	offDay := &model.OffDay{
		ShamanID: shaman.ShamanID,
		OffDate:  req.OffDate,
		Reason:   req.Reason,
	}
	if err := s.repo.Schedule.CreateOffDay(ctx, offDay); err != nil {
		if errors.Is(err, pkgerrors.ErrUniqueViolation) {
			return nil, ErrOffDayExists
		}
		s.logger.Error("휴무일 등록 실패", zap.Error(err))
		return nil, err
	}

	resp := toOffDayResponse(offDay)
	return &resp, nil
}

func (s *scheduleService) DeleteOffDay(ctx context.Context, shamanUserID, offDayID string) error {
	shaman, err := s.resolveShaman(ctx, shamanUserID)
	if err != nil {
		return err
	}

	affected, err := s.repo.Schedule.DeleteOffDay(ctx, offDayID, shaman.ShamanID)
	if err != nil {
		s.logger.Error("휴무일 삭제 실패", zap.Error(err))
		return err
	}
	// 타인의 휴무일은 존재 여부를 노출하지 않고 동일하게 처리
	if affected == 0 {
		return ErrOffDayNotFound
	}
	return nil
}

// resolveShaman 사용자 ID 로 본인의 무속인 프로필을 찾는다
func (s *scheduleService) resolveShaman(ctx context.Context, userID string) (*model.Shaman, error) {
	shaman, err := s.repo.Shaman.GetByUserID(ctx, userID)
	if err != nil {
		return nil, ErrShamanNotFound
	}
	return shaman, nil
}

func toWeeklyHourResponse(row *model.WeeklyHour) dto.WeeklyHourResponse {
	slots := make([]string, 0, len(row.TimeSlots))
	for _, t := range row.TimeSlots {
		slots = append(slots, string(t))
	}
	return dto.WeeklyHourResponse{
		DayOfWeek: row.DayOfWeek,
		IsWorking: row.IsWorking,
		TimeSlots: slots,
	}
}

func toOffDayResponse(offDay *model.OffDay) dto.OffDayResponse {
	return dto.OffDayResponse{
		ID:        offDay.OffDayID,
		OffDate:   offDay.OffDate,
		Reason:    offDay.Reason,
		CreatedAt: offDay.CreatedAt.Format(timestampLayout),
	}
}
