package model

// Role 사용자 역할. 문자열 비교가 흩어지지 않도록 닫힌 타입으로 관리한다.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleShaman   Role = "shaman"
	RoleAdmin    Role = "admin"
)

// IsValid 정의된 역할인지 여부
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleShaman, RoleAdmin:
		return true
	}
	return false
}

// User 사용자 테이블 — users
type User struct {
	UserID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Email        string  `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string  `gorm:"type:varchar(255);not null"                     json:"-"`
	FullName     string  `gorm:"type:varchar(100);not null"                     json:"full_name"`
	Phone        *string `gorm:"type:varchar(20)"                               json:"phone,omitempty"`
	Role         Role    `gorm:"type:varchar(20);not null;default:'customer'"   json:"role"`
	BaseModel
}

// TableName 테이블명 지정
func (User) TableName() string { return "users" }
