package dto

// ── 인증 모듈 DTO ──

// SignupRequest 회원가입 요청
type SignupRequest struct {
	Email    string  `json:"email"     binding:"required,email"`
	Password string  `json:"password"  binding:"required,min=8,max=72"`
	FullName string  `json:"full_name" binding:"required,min=2,max=100"`
	Phone    *string `json:"phone"     binding:"omitempty,max=20"`
	// 역할은 customer 또는 shaman 만 선택 가능 (admin 은 발급 불가)
	Role string `json:"role" binding:"required,oneof=customer shaman"`
}

// LoginRequest 로그인 요청
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest 토큰 갱신 요청
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse 토큰 쌍 응답
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // Access Token 유효기간(초)
	User         UserResponse `json:"user"`
}

// UserResponse 사용자 정보 응답 (민감 정보 제외)
type UserResponse struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone,omitempty"`
	Role     string  `json:"role"`
}
