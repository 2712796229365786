package dto

// ── 무속인 모듈 DTO ──

// ShamanListRequest 무속인 목록 검색 조건
type ShamanListRequest struct {
	Region    string `form:"region"    binding:"omitempty,max=50"`
	District  string `form:"district"  binding:"omitempty,max=50"`
	Specialty string `form:"specialty" binding:"omitempty,max=20"`
	MinPrice  *int   `form:"min_price" binding:"omitempty,min=0"`
	MaxPrice  *int   `form:"max_price" binding:"omitempty,min=0"`
}

// UpdateMyProfileRequest 내 프로필 수정 요청 (무속인)
type UpdateMyProfileRequest struct {
	BusinessName    *string  `json:"business_name"    binding:"omitempty,min=2,max=100"`
	Description     *string  `json:"description"      binding:"omitempty,max=2000"`
	Specialties     []string `json:"specialties"      binding:"omitempty,max=8"`
	YearsExperience *int     `json:"years_experience" binding:"omitempty,min=0,max=80"`
	Region          *string  `json:"region"           binding:"omitempty,max=50"`
	District        *string  `json:"district"         binding:"omitempty,max=50"`
	Address         *string  `json:"address"          binding:"omitempty,max=255"`
	BasePrice       *int     `json:"base_price"       binding:"omitempty,min=0"`
}

// AdminReviewShamanRequest 관리자 승인/거절 요청
type AdminReviewShamanRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected suspended"`
}

// ShamanResponse 무속인 프로필 응답
type ShamanResponse struct {
	ID              string   `json:"id"`
	BusinessName    string   `json:"business_name"`
	Description     string   `json:"description"`
	Specialties     []string `json:"specialties"`
	YearsExperience int      `json:"years_experience"`
	Region          string   `json:"region"`
	District        string   `json:"district"`
	Address         string   `json:"address"`
	BasePrice       int      `json:"base_price"`
	Status          string   `json:"status"`
	TotalBookings   int      `json:"total_bookings"`
	AverageRating   float64  `json:"average_rating"`
	CreatedAt       string   `json:"created_at"`
}

// ShamanBrief 예약 응답에 포함되는 무속인 요약 정보
type ShamanBrief struct {
	ID           string   `json:"id"`
	BusinessName string   `json:"business_name"`
	Region       string   `json:"region"`
	District     string   `json:"district"`
	BasePrice    int      `json:"base_price"`
	AverageRating float64 `json:"average_rating"`
	Specialties  []string `json:"specialties"`
}
