package repository

import "gorm.io/gorm"

// Repository 모든 Repository 의 집약 진입점
type Repository struct {
	User     UserRepository
	Shaman   ShamanRepository
	Booking  BookingRepository
	Schedule ScheduleRepository
}

// NewRepository Repository 집약체 생성
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:     NewUserRepo(db),
		Shaman:   NewShamanRepo(db),
		Booking:  NewBookingRepo(db),
		Schedule: NewScheduleRepo(db),
	}
}
