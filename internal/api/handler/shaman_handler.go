package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"musok-platform/backend/internal/dto"
	"musok-platform/backend/internal/service"
	"musok-platform/backend/pkg/response"
)

// ShamanHandler 무속인 모듈 HTTP 처리기
type ShamanHandler struct {
	shamanSvc service.ShamanService
}

// NewShamanHandler ShamanHandler 생성
func NewShamanHandler(shamanSvc service.ShamanService) *ShamanHandler {
	return &ShamanHandler{shamanSvc: shamanSvc}
}

// List 공개 무속인 목록 (승인된 프로필만)
// GET /api/v1/shamans
func (h *ShamanHandler) List(c *gin.Context) {
	var req dto.ShamanListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "검색 조건 검증에 실패했습니다")
		return
	}

	list, err := h.shamanSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// Get 무속인 상세
// GET /api/v1/shamans/:id
func (h *ShamanHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "무속인 ID가 없습니다")
		return
	}

	shaman, err := h.shamanSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleShamanError(c, err)
		return
	}

	response.OK(c, shaman)
}

// GetMyProfile 내 프로필 조회 (무속인)
// GET /api/v1/shamans/me
func (h *ShamanHandler) GetMyProfile(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	shaman, err := h.shamanSvc.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleShamanError(c, err)
		return
	}

	response.OK(c, shaman)
}

// UpdateMyProfile 내 프로필 수정 (무속인)
// PUT /api/v1/shamans/me
func (h *ShamanHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateMyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 값 검증에 실패했습니다")
		return
	}

	shaman, err := h.shamanSvc.UpdateMyProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleShamanError(c, err)
		return
	}

	response.OK(c, shaman)
}

// ListPending 승인 대기 목록 (관리자)
// GET /api/v1/admin/shamans/pending
func (h *ShamanHandler) ListPending(c *gin.Context) {
	list, err := h.shamanSvc.ListPending(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// Review 승인/거절/정지 처리 (관리자)
// PUT /api/v1/admin/shamans/:id/review
func (h *ShamanHandler) Review(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "무속인 ID가 없습니다")
		return
	}

	var req dto.AdminReviewShamanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 값 검증에 실패했습니다")
		return
	}

	shaman, err := h.shamanSvc.Review(c.Request.Context(), id, &req)
	if err != nil {
		h.handleShamanError(c, err)
		return
	}

	response.OK(c, shaman)
}

func (h *ShamanHandler) handleShamanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShamanNotFound):
		response.NotFound(c, 12001, "무속인 프로필을 찾을 수 없습니다")
	case errors.Is(err, service.ErrInvalidSpecialty):
		response.BadRequest(c, 12002, "잘못된 전문 분야입니다")
	case errors.Is(err, service.ErrInvalidStatusFlow):
		response.BadRequest(c, 12003, "변경할 수 없는 프로필 상태입니다")
	default:
		response.InternalError(c)
	}
}
