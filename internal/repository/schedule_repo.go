package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"musok-platform/backend/internal/model"
	pkgerrors "musok-platform/backend/pkg/errors"
)

// ScheduleRepository 일정(주간 근무 시간 + 휴무일) 데이터 접근 인터페이스
type ScheduleRepository interface {
	ListWeeklyHours(ctx context.Context, shamanID string) ([]model.WeeklyHour, error)
	GetWeeklyHour(ctx context.Context, shamanID string, dayOfWeek int) (*model.WeeklyHour, error)
	// UpsertWeeklyHours 7행 일괄 upsert. (shaman_id, day_of_week) 기준 교체
	UpsertWeeklyHours(ctx context.Context, rows []model.WeeklyHour) error
	ListOffDays(ctx context.Context, shamanID, fromDate, toDate string) ([]model.OffDay, error)
	GetOffDayByDate(ctx context.Context, shamanID, date string) (*model.OffDay, error)
	// CreateOffDay 휴무일 등록. (shaman_id, off_date) 중복 시 ErrUniqueViolation
	CreateOffDay(ctx context.Context, offDay *model.OffDay) error
	GetOffDayByID(ctx context.Context, id string) (*model.OffDay, error)
	DeleteOffDay(ctx context.Context, id, shamanID string) (int64, error)
}

type scheduleRepo struct {
	db *gorm.DB
}

// NewScheduleRepo ScheduleRepository 인스턴스 생성
func NewScheduleRepo(db *gorm.DB) ScheduleRepository {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) ListWeeklyHours(ctx context.Context, shamanID string) ([]model.WeeklyHour, error) {
	var rows []model.WeeklyHour
	err := r.db.WithContext(ctx).
		Where("shaman_id = ?", shamanID).
		Order("day_of_week ASC").
		Find(&rows).Error
	return rows, err
}

func (r *scheduleRepo) GetWeeklyHour(ctx context.Context, shamanID string, dayOfWeek int) (*model.WeeklyHour, error) {
	var row model.WeeklyHour
	err := r.db.WithContext(ctx).
		Where("shaman_id = ? AND day_of_week = ?", shamanID, dayOfWeek).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *scheduleRepo) UpsertWeeklyHours(ctx context.Context, rows []model.WeeklyHour) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "shaman_id"}, {Name: "day_of_week"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"is_working", "time_slots", "updated_at",
			}),
		}).Create(&rows).Error
	})
}

func (r *scheduleRepo) ListOffDays(ctx context.Context, shamanID, fromDate, toDate string) ([]model.OffDay, error) {
	var offDays []model.OffDay
	db := r.db.WithContext(ctx).Where("shaman_id = ?", shamanID)

	if fromDate != "" {
		db = db.Where("off_date >= ?", fromDate)
	}
	if toDate != "" {
		db = db.Where("off_date <= ?", toDate)
	}

	err := db.Order("off_date ASC").Find(&offDays).Error
	return offDays, err
}

func (r *scheduleRepo) GetOffDayByDate(ctx context.Context, shamanID, date string) (*model.OffDay, error) {
	var offDay model.OffDay
	err := r.db.WithContext(ctx).
		Where("shaman_id = ? AND off_date = ?", shamanID, date).
		First(&offDay).Error
	if err != nil {
		return nil, err
	}
	return &offDay, nil
}

func (r *scheduleRepo) CreateOffDay(ctx context.Context, offDay *model.OffDay) error {
	err := r.db.WithContext(ctx).Create(offDay).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return pkgerrors.ErrUniqueViolation
		}
		return err
	}
	return nil
}

func (r *scheduleRepo) GetOffDayByID(ctx context.Context, id string) (*model.OffDay, error) {
	var offDay model.OffDay
	err := r.db.WithContext(ctx).Where("off_day_id = ?", id).First(&offDay).Error
	if err != nil {
		return nil, err
	}
	return &offDay, nil
}

func (r *scheduleRepo) DeleteOffDay(ctx context.Context, id, shamanID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("off_day_id = ? AND shaman_id = ?", id, shamanID).
		Delete(&model.OffDay{})
	return result.RowsAffected, result.Error
}
