package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"musok-platform/backend/internal/model"
	pkgerrors "musok-platform/backend/pkg/errors"
)

// BookingFilters 예약 목록 검색 조건
type BookingFilters struct {
	CustomerID string
	ShamanID   string
	Status     model.BookingStatus
}

// BookingRepository 예약 데이터 접근 인터페이스
type BookingRepository interface {
	// CreateWithSlots 예약과 슬롯 점유 행을 단일 트랜잭션으로 기록한다.
	// booking_slots 유니크 제약 충돌 시 pkg/errors.ErrUniqueViolation 반환.
	CreateWithSlots(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	List(ctx context.Context, filters BookingFilters) ([]model.Booking, error)
	ListByShamanAndDate(ctx context.Context, shamanID, date string) ([]model.Booking, error)
	ListByShamanBetween(ctx context.Context, shamanID, fromDate, toDate string) ([]model.Booking, error)
	// ListOccupiedSlots 해당 날짜에 pending/confirmed 예약이 점유한 슬롯 목록
	ListOccupiedSlots(ctx context.Context, shamanID, date string) ([]model.TimeSlot, error)
	// UpdateStatus 상태 갱신. 점유 상태(pending/confirmed)를 벗어나는 전이에서는
	// 같은 트랜잭션 안에서 슬롯 점유 행을 해제한다.
	UpdateStatus(ctx context.Context, booking *model.Booking) error
}

type bookingRepo struct {
	db *gorm.DB
}

// NewBookingRepo BookingRepository 인스턴스 생성
func NewBookingRepo(db *gorm.DB) BookingRepository {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) CreateWithSlots(ctx context.Context, booking *model.Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(booking).Error; err != nil {
			return err
		}

		occupied := booking.OccupiedSlots()
		slots := make([]model.BookingSlot, 0, len(occupied))
		for _, t := range occupied {
			slots = append(slots, model.BookingSlot{
				BookingID:   booking.BookingID,
				ShamanID:    booking.ShamanID,
				BookingDate: booking.BookingDate,
				TimeSlot:    t,
			})
		}
		return tx.Create(&slots).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return pkgerrors.ErrUniqueViolation
		}
		return err
	}
	return nil
}

func (r *bookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.WithContext(ctx).
		Preload("Shaman").
		Preload("Customer").
		Where("booking_id = ?", id).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepo) List(ctx context.Context, filters BookingFilters) ([]model.Booking, error) {
	var bookings []model.Booking
	db := r.db.WithContext(ctx)

	if filters.CustomerID != "" {
		db = db.Where("customer_id = ?", filters.CustomerID).Preload("Shaman")
	}
	if filters.ShamanID != "" {
		db = db.Where("shaman_id = ?", filters.ShamanID).Preload("Customer")
	}
	if filters.Status != "" {
		db = db.Where("status = ?", filters.Status)
	}

	err := db.Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepo) ListByShamanAndDate(ctx context.Context, shamanID, date string) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("shaman_id = ? AND booking_date = ?", shamanID, date).
		Order("start_slot ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepo) ListByShamanBetween(ctx context.Context, shamanID, fromDate, toDate string) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Where("shaman_id = ? AND booking_date >= ? AND booking_date <= ?", shamanID, fromDate, toDate).
		Order("booking_date ASC, start_slot ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepo) ListOccupiedSlots(ctx context.Context, shamanID, date string) ([]model.TimeSlot, error) {
	var slots []model.TimeSlot
	err := r.db.WithContext(ctx).
		Model(&model.BookingSlot{}).
		Where("shaman_id = ? AND booking_date = ?", shamanID, date).
		Order("time_slot ASC").
		Pluck("time_slot", &slots).Error
	return slots, err
}

func (r *bookingRepo) UpdateStatus(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Booking{}).
			Where("booking_id = ?", booking.BookingID).
			Updates(map[string]interface{}{
				"status":           booking.Status,
				"rejection_reason": booking.RejectionReason,
				"updated_at":       gorm.Expr("NOW()"),
			}).Error; err != nil {
			return err
		}

		// 점유 해제: 더 이상 슬롯을 차지하지 않는 상태로 전이한 경우
		if !booking.Status.OccupiesSlots() {
			if err := tx.Where("booking_id = ?", booking.BookingID).
				Delete(&model.BookingSlot{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
