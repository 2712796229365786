package repository

import (
	"context"

	"gorm.io/gorm"

	"musok-platform/backend/internal/model"
)

// ShamanFilters 무속인 목록 검색 조건
type ShamanFilters struct {
	Region    string
	District  string
	Specialty string
	MinPrice  *int
	MaxPrice  *int
	Status    model.ShamanStatus
}

// ShamanRepository 무속인 프로필 데이터 접근 인터페이스
type ShamanRepository interface {
	Create(ctx context.Context, shaman *model.Shaman) error
	GetByID(ctx context.Context, id string) (*model.Shaman, error)
	GetByUserID(ctx context.Context, userID string) (*model.Shaman, error)
	List(ctx context.Context, filters ShamanFilters) ([]model.Shaman, error)
	Update(ctx context.Context, shaman *model.Shaman) error
}

type shamanRepo struct {
	db *gorm.DB
}

// NewShamanRepo ShamanRepository 인스턴스 생성
func NewShamanRepo(db *gorm.DB) ShamanRepository {
	return &shamanRepo{db: db}
}

func (r *shamanRepo) Create(ctx context.Context, shaman *model.Shaman) error {
	return r.db.WithContext(ctx).Create(shaman).Error
}

func (r *shamanRepo) GetByID(ctx context.Context, id string) (*model.Shaman, error) {
	var shaman model.Shaman
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("shaman_id = ?", id).
		First(&shaman).Error
	if err != nil {
		return nil, err
	}
	return &shaman, nil
}

func (r *shamanRepo) GetByUserID(ctx context.Context, userID string) (*model.Shaman, error) {
	var shaman model.Shaman
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&shaman).Error
	if err != nil {
		return nil, err
	}
	return &shaman, nil
}

func (r *shamanRepo) List(ctx context.Context, filters ShamanFilters) ([]model.Shaman, error) {
	var shamans []model.Shaman
	db := r.db.WithContext(ctx)

	if filters.Status != "" {
		db = db.Where("status = ?", filters.Status)
	}
	if filters.Region != "" {
		db = db.Where("region = ?", filters.Region)
	}
	if filters.District != "" {
		db = db.Where("district = ?", filters.District)
	}
	if filters.Specialty != "" {
		db = db.Where("? = ANY(specialties)", filters.Specialty)
	}
	if filters.MinPrice != nil {
		db = db.Where("base_price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		db = db.Where("base_price <= ?", *filters.MaxPrice)
	}

	err := db.Order("average_rating DESC, created_at DESC").Find(&shamans).Error
	return shamans, err
}

func (r *shamanRepo) Update(ctx context.Context, shaman *model.Shaman) error {
	return r.db.WithContext(ctx).Save(shaman).Error
}
