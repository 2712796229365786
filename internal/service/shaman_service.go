package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"musok-platform/backend/internal/dto"
	"musok-platform/backend/internal/model"
	"musok-platform/backend/internal/repository"
)

// ── 무속인 모듈 비즈니스 에러 ──

var (
	ErrShamanNotFound    = errors.New("무속인 프로필을 찾을 수 없습니다")
	ErrInvalidSpecialty  = errors.New("잘못된 전문 분야입니다")
	ErrInvalidStatusFlow = errors.New("변경할 수 없는 프로필 상태입니다")
)

// ShamanService 무속인 프로필 비즈니스 인터페이스
type ShamanService interface {
	List(ctx context.Context, req *dto.ShamanListRequest) ([]dto.ShamanResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ShamanResponse, error)
	GetMyProfile(ctx context.Context, userID string) (*dto.ShamanResponse, error)
	UpdateMyProfile(ctx context.Context, userID string, req *dto.UpdateMyProfileRequest) (*dto.ShamanResponse, error)
	ListPending(ctx context.Context) ([]dto.ShamanResponse, error)
	Review(ctx context.Context, shamanID string, req *dto.AdminReviewShamanRequest) (*dto.ShamanResponse, error)
}

type shamanService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewShamanService ShamanService 인스턴스 생성
func NewShamanService(repo *repository.Repository, logger *zap.Logger) ShamanService {
	return &shamanService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

// List 공개 목록. 승인된 프로필만 노출한다.
func (s *shamanService) List(ctx context.Context, req *dto.ShamanListRequest) ([]dto.ShamanResponse, error) {
	filters := repository.ShamanFilters{
		Region:    req.Region,
		District:  req.District,
		Specialty: req.Specialty,
		MinPrice:  req.MinPrice,
		MaxPrice:  req.MaxPrice,
		Status:    model.ShamanApproved,
	}

	shamans, err := s.repo.Shaman.List(ctx, filters)
	if err != nil {
		s.logger.Error("무속인 목록 조회 실패", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ShamanResponse, 0, len(shamans))
	for i := range shamans {
		result = append(result, *toShamanResponse(&shamans[i]))
	}
	return result, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *shamanService) GetByID(ctx context.Context, id string) (*dto.ShamanResponse, error) {
	shaman, err := s.repo.Shaman.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShamanNotFound
		}
		s.logger.Error("무속인 조회 실패", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toShamanResponse(shaman), nil
}

// ────────────────────── GetMyProfile ──────────────────────

func (s *shamanService) GetMyProfile(ctx context.Context, userID string) (*dto.ShamanResponse, error) {
	shaman, err := s.findByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toShamanResponse(shaman), nil
}

// ────────────────────── UpdateMyProfile ──────────────────────

func (s *shamanService) UpdateMyProfile(ctx context.Context, userID string, req *dto.UpdateMyProfileRequest) (*dto.ShamanResponse, error) {
	shaman, err := s.findByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Specialties != nil {
		for _, sp := range req.Specialties {
			if !model.IsValidSpecialty(sp) {
				return nil, ErrInvalidSpecialty
			}
		}
		shaman.Specialties = model.StringArray(req.Specialties)
	}
	if req.BusinessName != nil {
		shaman.BusinessName = *req.BusinessName
	}
	if req.Description != nil {
		shaman.Description = *req.Description
	}
	if req.YearsExperience != nil {
		shaman.YearsExperience = *req.YearsExperience
	}
	if req.Region != nil {
		shaman.Region = *req.Region
	}
	if req.District != nil {
		shaman.District = *req.District
	}
	if req.Address != nil {
		shaman.Address = *req.Address
	}
	if req.BasePrice != nil {
		shaman.BasePrice = *req.BasePrice
	}

	if err := s.repo.Shaman.Update(ctx, shaman); err != nil {
		s.logger.Error("무속인 프로필 수정 실패", zap.Error(err))
		return nil, err
	}
	return toShamanResponse(shaman), nil
}

// ────────────────────── 관리자 승인 ──────────────────────

func (s *shamanService) ListPending(ctx context.Context) ([]dto.ShamanResponse, error) {
	shamans, err := s.repo.Shaman.List(ctx, repository.ShamanFilters{Status: model.ShamanPending})
	if err != nil {
		s.logger.Error("승인 대기 목록 조회 실패", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ShamanResponse, 0, len(shamans))
	for i := range shamans {
		result = append(result, *toShamanResponse(&shamans[i]))
	}
	return result, nil
}

// Review 관리자 심사. pending → approved|rejected, approved → suspended 만 허용
func (s *shamanService) Review(ctx context.Context, shamanID string, req *dto.AdminReviewShamanRequest) (*dto.ShamanResponse, error) {
	shaman, err := s.repo.Shaman.GetByID(ctx, shamanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShamanNotFound
		}
		return nil, err
	}

	next := model.ShamanStatus(req.Status)
	switch {
	case shaman.Status == model.ShamanPending &&
		(next == model.ShamanApproved || next == model.ShamanRejected):
	case shaman.Status == model.ShamanApproved && next == model.ShamanSuspended:
	default:
		return nil, ErrInvalidStatusFlow
	}

	shaman.Status = next
	if err := s.repo.Shaman.Update(ctx, shaman); err != nil {
		s.logger.Error("무속인 상태 변경 실패", zap.String("id", shamanID), zap.Error(err))
		return nil, err
	}
	return toShamanResponse(shaman), nil
}

// ── 내부 헬퍼 ──

func (s *shamanService) findByUserID(ctx context.Context, userID string) (*model.Shaman, error) {
	shaman, err := s.repo.Shaman.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShamanNotFound
		}
		s.logger.Error("무속인 조회 실패", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return shaman, nil
}

func toShamanResponse(shaman *model.Shaman) *dto.ShamanResponse {
	return &dto.ShamanResponse{
		ID:              shaman.ShamanID,
		BusinessName:    shaman.BusinessName,
		Description:     shaman.Description,
		Specialties:     []string(shaman.Specialties),
		YearsExperience: shaman.YearsExperience,
		Region:          shaman.Region,
		District:        shaman.District,
		Address:         shaman.Address,
		BasePrice:       shaman.BasePrice,
		Status:          string(shaman.Status),
		TotalBookings:   shaman.TotalBookings,
		AverageRating:   shaman.AverageRating,
		CreatedAt:       shaman.CreatedAt.Format(timestampLayout),
	}
}
