package model

// ShamanStatus 무속인 프로필 승인 상태
type ShamanStatus string

const (
	ShamanPending   ShamanStatus = "pending"
	ShamanApproved  ShamanStatus = "approved"
	ShamanRejected  ShamanStatus = "rejected"
	ShamanSuspended ShamanStatus = "suspended"
)

// Specialties 상담 전문 분야 카탈로그
var Specialties = []string{"굿", "점술", "사주", "타로", "궁합", "작명", "풍수", "해몽"}

// IsValidSpecialty 카탈로그에 포함된 전문 분야인지 여부
func IsValidSpecialty(s string) bool {
	for _, sp := range Specialties {
		if sp == s {
			return true
		}
	}
	return false
}

// Shaman 무속인 프로필 테이블 — shamans
type Shaman struct {
	ShamanID        string       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"shaman_id"`
	UserID          string       `gorm:"type:uuid;not null;uniqueIndex"                 json:"user_id"`
	BusinessName    string       `gorm:"type:varchar(100);not null"                     json:"business_name"`
	Description     string       `gorm:"type:text;not null;default:''"                  json:"description"`
	Specialties     StringArray  `gorm:"type:text[];not null"                           json:"specialties"`
	YearsExperience int          `gorm:"type:smallint;not null;default:0"               json:"years_experience"`
	Region          string       `gorm:"type:varchar(50);not null;default:''"           json:"region"`
	District        string       `gorm:"type:varchar(50);not null;default:''"           json:"district"`
	Address         string       `gorm:"type:varchar(255);not null;default:''"          json:"address"`
	BasePrice       int          `gorm:"not null;default:0"                             json:"base_price"`
	Status          ShamanStatus `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	TotalBookings   int          `gorm:"not null;default:0"                             json:"total_bookings"`
	AverageRating   float64      `gorm:"type:numeric(3,2);not null;default:0"           json:"average_rating"`
	BaseModel

	// 연관
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName 테이블명 지정
func (Shaman) TableName() string { return "shamans" }

// IsBookable 예약을 받을 수 있는 상태인지 여부 (승인 완료만 가능)
func (s *Shaman) IsBookable() bool {
	return s.Status == ShamanApproved
}
